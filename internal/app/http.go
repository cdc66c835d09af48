package app

import (
	"database/sql"
	"fmt"

	apphttp "github.com/yungbote/aedb-backend/internal/http"
	httpH "github.com/yungbote/aedb-backend/internal/http/handlers"
	httpMW "github.com/yungbote/aedb-backend/internal/http/middleware"
	"github.com/yungbote/aedb-backend/internal/observability"
	"github.com/yungbote/aedb-backend/internal/platform/logger"
)

type Middleware struct {
	Auth *httpMW.AuthMiddleware
}

type Handlers struct {
	Health  *httpH.HealthHandler
	Auth    *httpH.AuthHandler
	Post    *httpH.PostHandler
	Catalog *httpH.CatalogHandler
	Upload  *httpH.UploadHandler
	Speed   *httpH.SpeedHandler
	Docs    *httpH.DocsHandler
}

func wireHandlers(log *logger.Logger, sqlDB *sql.DB, services Services) (Handlers, error) {
	log.Info("Wiring handlers...")
	docs, err := httpH.NewDocsHandler()
	if err != nil {
		return Handlers{}, fmt.Errorf("load api description: %w", err)
	}
	return Handlers{
		Health:  httpH.NewHealthHandler(sqlDB),
		Auth:    httpH.NewAuthHandler(services.Auth),
		Post:    httpH.NewPostHandler(services.Post),
		Catalog: httpH.NewCatalogHandler(services.Catalog),
		Upload:  httpH.NewUploadHandler(services.File),
		Speed:   httpH.NewSpeedHandler(services.Speed),
		Docs:    docs,
	}, nil
}

func wireMiddleware(log *logger.Logger, services Services) Middleware {
	log.Info("Wiring middleware...")
	return Middleware{
		Auth: httpMW.NewAuthMiddleware(log, services.Auth),
	}
}

func wireRouterConfig(log *logger.Logger, cfg Settings, metrics *observability.Metrics, handlers Handlers, middleware Middleware) apphttp.RouterConfig {
	log.Info("Wiring router...")
	var serviceName string
	if cfg.OTelEnabled {
		serviceName = ServiceName
	}
	return apphttp.RouterConfig{
		Log:         log,
		ServiceName: serviceName,
		Metrics:     metrics,

		CORS:       corsOptions(cfg.CORS()),
		DocsAccess: cfg.DocsAccess,
		StaticDir:  cfg.StaticDir,
		MediaDir:   cfg.MediaDir,

		AuthHandler:    handlers.Auth,
		AuthMiddleware: middleware.Auth,
		PostHandler:    handlers.Post,
		CatalogHandler: handlers.Catalog,
		UploadHandler:  handlers.Upload,
		SpeedHandler:   handlers.Speed,
		DocsHandler:    handlers.Docs,

		HealthHandler: handlers.Health,
	}
}

func corsOptions(p CORSParams) httpMW.CORSOptions {
	return httpMW.CORSOptions{
		AllowOrigins:     p.AllowOrigins,
		AllowCredentials: p.AllowCredentials,
		AllowMethods:     p.AllowMethods,
		AllowHeaders:     p.AllowHeaders,
	}
}
