package repos

import (
	"gorm.io/gorm"

	"github.com/yungbote/aedb-backend/internal/data/repos/manuals"
	"github.com/yungbote/aedb-backend/internal/data/repos/posts"
	"github.com/yungbote/aedb-backend/internal/data/repos/speed"
	"github.com/yungbote/aedb-backend/internal/data/repos/user"
	"github.com/yungbote/aedb-backend/internal/platform/logger"
)

type UserRepo = user.UserRepo
type PostRepo = posts.PostRepo

type CategoryRepo = manuals.CategoryRepo
type GroupRepo = manuals.GroupRepo
type ManualRepo = manuals.ManualRepo
type ManualFilter = manuals.ManualFilter

type ReelRepo = speed.ReelRepo
type RollRepo = speed.RollRepo
type SpeedRepo = speed.SpeedRepo

func NewUserRepo(db *gorm.DB, baseLog *logger.Logger) UserRepo { return user.NewUserRepo(db, baseLog) }
func NewPostRepo(db *gorm.DB, baseLog *logger.Logger) PostRepo { return posts.NewPostRepo(db, baseLog) }

func NewCategoryRepo(db *gorm.DB, baseLog *logger.Logger) CategoryRepo {
	return manuals.NewCategoryRepo(db, baseLog)
}
func NewGroupRepo(db *gorm.DB, baseLog *logger.Logger) GroupRepo { return manuals.NewGroupRepo(db, baseLog) }
func NewManualRepo(db *gorm.DB, baseLog *logger.Logger) ManualRepo {
	return manuals.NewManualRepo(db, baseLog)
}

func NewReelRepo(db *gorm.DB, baseLog *logger.Logger) ReelRepo   { return speed.NewReelRepo(db, baseLog) }
func NewRollRepo(db *gorm.DB, baseLog *logger.Logger) RollRepo   { return speed.NewRollRepo(db, baseLog) }
func NewSpeedRepo(db *gorm.DB, baseLog *logger.Logger) SpeedRepo { return speed.NewSpeedRepo(db, baseLog) }
