package app

import (
	"gorm.io/gorm"

	"github.com/yungbote/aedb-backend/internal/data/repos"
	"github.com/yungbote/aedb-backend/internal/platform/logger"
)

type Repos struct {
	User     repos.UserRepo
	Post     repos.PostRepo
	Category repos.CategoryRepo
	Group    repos.GroupRepo
	Manual   repos.ManualRepo
	Reel     repos.ReelRepo
	Roll     repos.RollRepo
	Speed    repos.SpeedRepo
}

func wireRepos(db *gorm.DB, log *logger.Logger) Repos {
	log.Info("Wiring repos...")
	return Repos{
		User:     repos.NewUserRepo(db, log),
		Post:     repos.NewPostRepo(db, log),
		Category: repos.NewCategoryRepo(db, log),
		Group:    repos.NewGroupRepo(db, log),
		Manual:   repos.NewManualRepo(db, log),
		Reel:     repos.NewReelRepo(db, log),
		Roll:     repos.NewRollRepo(db, log),
		Speed:    repos.NewSpeedRepo(db, log),
	}
}
