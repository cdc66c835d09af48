package app

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/yungbote/aedb-backend/internal/platform/logger"
	"github.com/yungbote/aedb-backend/internal/platform/objstore"
	"github.com/yungbote/aedb-backend/internal/services"
)

type Services struct {
	Auth    services.AuthService
	Post    services.PostService
	Catalog services.CatalogService
	Speed   services.SpeedService
	File    services.FileService
	Bucket  objstore.BucketService
}

func wireServices(db *gorm.DB, log *logger.Logger, cfg Settings, repoSet Repos, bucket objstore.BucketService) (Services, error) {
	log.Info("Wiring services...")

	if bucket == nil {
		var err error
		bucket, err = objstore.NewBucketService(log, objstore.Config{
			ServiceName:     cfg.AWSServiceName,
			Region:          cfg.AWSRegion,
			Endpoint:        cfg.AWSEndpoint,
			Bucket:          cfg.AWSBucketName,
			AccessKeyID:     cfg.AWSAccessKeyID,
			SecretAccessKey: cfg.AWSSecretAccessKey,
		})
		if err != nil {
			return Services{}, fmt.Errorf("init bucket service: %w", err)
		}
	}

	authService := services.NewAuthService(db, log, repoSet.User, cfg.TokenKey, cfg.AccessTokenTTL)
	postService := services.NewPostService(db, log, repoSet.Post)
	catalogService := services.NewCatalogService(db, log, repoSet.Category, repoSet.Group, repoSet.Manual)
	speedService := services.NewSpeedService(db, log, repoSet.Reel, repoSet.Roll, repoSet.Speed)
	fileService := services.NewFileService(log, bucket, catalogService)

	return Services{
		Auth:    authService,
		Post:    postService,
		Catalog: catalogService,
		Speed:   speedService,
		File:    fileService,
		Bucket:  bucket,
	}, nil
}
