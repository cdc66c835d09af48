package http

import (
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	httpH "github.com/yungbote/aedb-backend/internal/http/handlers"
	httpMW "github.com/yungbote/aedb-backend/internal/http/middleware"
	"github.com/yungbote/aedb-backend/internal/observability"
	"github.com/yungbote/aedb-backend/internal/platform/logger"
)

const APIPrefix = "/api/v1"

type RouterConfig struct {
	Log         *logger.Logger
	ServiceName string
	Metrics     *observability.Metrics

	CORS       httpMW.CORSOptions
	DocsAccess bool
	StaticDir  string
	MediaDir   string

	AuthHandler    *httpH.AuthHandler
	AuthMiddleware *httpMW.AuthMiddleware
	PostHandler    *httpH.PostHandler
	CatalogHandler *httpH.CatalogHandler
	UploadHandler  *httpH.UploadHandler
	SpeedHandler   *httpH.SpeedHandler
	DocsHandler    *httpH.DocsHandler

	HealthHandler *httpH.HealthHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	if cfg.ServiceName != "" {
		r.Use(otelgin.Middleware(cfg.ServiceName))
	}
	r.Use(httpMW.AttachTraceContext())
	r.Use(httpMW.RequestLogger(cfg.Log))
	r.Use(httpMW.Metrics(cfg.Metrics))
	r.Use(httpMW.CORS(cfg.CORS))
	r.Use(httpMW.DocsBlocker(cfg.DocsAccess))

	// Health
	if cfg.HealthHandler != nil {
		r.GET("/healthcheck", cfg.HealthHandler.HealthCheck)
	}
	if cfg.Metrics != nil {
		r.GET("/metrics", gin.WrapF(cfg.Metrics.WriteHTTP))
	}

	// Docs (gated by DocsBlocker)
	if cfg.DocsHandler != nil {
		r.GET("/openapi.json", cfg.DocsHandler.Spec)
		r.GET("/docs", cfg.DocsHandler.Swagger)
		r.GET("/redoc", cfg.DocsHandler.Redoc)
	}

	// Files
	if cfg.StaticDir != "" {
		r.Static("/static", cfg.StaticDir)
	}
	if cfg.MediaDir != "" {
		r.Static("/media", cfg.MediaDir)
	}

	api := r.Group(APIPrefix)
	{
		// Auth (public)
		if cfg.AuthHandler != nil {
			api.POST("/auth/register", cfg.AuthHandler.Register)
			api.POST("/auth/login", cfg.AuthHandler.Login)
		}

		// Posts
		if cfg.PostHandler != nil {
			api.GET("/posts", cfg.PostHandler.List)
			api.GET("/posts/:id", cfg.PostHandler.Get)
		}

		// Catalog
		if cfg.CatalogHandler != nil {
			api.GET("/categories", cfg.CatalogHandler.ListCategories)
			api.GET("/categories/:id", cfg.CatalogHandler.GetCategory)
			api.GET("/categories/:id/groups", cfg.CatalogHandler.ListCategoryGroups)
			api.GET("/groups", cfg.CatalogHandler.ListGroups)
			api.GET("/groups/:id", cfg.CatalogHandler.GetGroup)
			api.GET("/groups/:id/manuals", cfg.CatalogHandler.ListGroupManuals)
			api.GET("/manuals", cfg.CatalogHandler.ListManuals)
			api.GET("/manuals/:id", cfg.CatalogHandler.GetManual)
		}

		// Speeds
		if cfg.SpeedHandler != nil {
			api.GET("/reels", cfg.SpeedHandler.ListReels)
			api.GET("/reels/:id", cfg.SpeedHandler.GetReel)
			api.GET("/reels/:id/rolls", cfg.SpeedHandler.ListReelRolls)
			api.GET("/rolls", cfg.SpeedHandler.ListRolls)
			api.GET("/rolls/:id", cfg.SpeedHandler.GetRoll)
			api.GET("/rolls/:id/speeds", cfg.SpeedHandler.ListRollSpeeds)
			api.GET("/speeds", cfg.SpeedHandler.ListSpeeds)
			api.GET("/speeds/:id", cfg.SpeedHandler.GetSpeed)
		}
	}

	protected := api.Group("")
	{
		// Middleware
		if cfg.AuthMiddleware != nil {
			protected.Use(cfg.AuthMiddleware.RequireAuth())
		}

		// Auth (protected)
		if cfg.AuthHandler != nil {
			protected.GET("/auth/me", cfg.AuthHandler.Me)
		}

		// Posts
		if cfg.PostHandler != nil {
			protected.POST("/posts", cfg.PostHandler.Create)
			protected.PUT("/posts/:id", cfg.PostHandler.Update)
			protected.DELETE("/posts/:id", cfg.PostHandler.Delete)
		}

		// Catalog
		if cfg.CatalogHandler != nil {
			protected.POST("/categories", cfg.CatalogHandler.CreateCategory)
			protected.PUT("/categories/:id", cfg.CatalogHandler.UpdateCategory)
			protected.DELETE("/categories/:id", cfg.CatalogHandler.DeleteCategory)
			protected.POST("/groups", cfg.CatalogHandler.CreateGroup)
			protected.PUT("/groups/:id", cfg.CatalogHandler.UpdateGroup)
			protected.DELETE("/groups/:id", cfg.CatalogHandler.DeleteGroup)
			protected.POST("/manuals", cfg.CatalogHandler.CreateManual)
			protected.PUT("/manuals/:id", cfg.CatalogHandler.UpdateManual)
			protected.DELETE("/manuals/:id", cfg.CatalogHandler.DeleteManual)
		}
		if cfg.UploadHandler != nil {
			protected.POST("/manuals/upload", cfg.UploadHandler.UploadManual)
		}

		// Speeds
		if cfg.SpeedHandler != nil {
			protected.POST("/reels", cfg.SpeedHandler.CreateReel)
			protected.PUT("/reels/:id", cfg.SpeedHandler.UpdateReel)
			protected.DELETE("/reels/:id", cfg.SpeedHandler.DeleteReel)
			protected.POST("/rolls", cfg.SpeedHandler.CreateRoll)
			protected.PUT("/rolls/:id", cfg.SpeedHandler.UpdateRoll)
			protected.DELETE("/rolls/:id", cfg.SpeedHandler.DeleteRoll)
			protected.POST("/speeds", cfg.SpeedHandler.CreateSpeed)
			protected.PUT("/speeds/:id", cfg.SpeedHandler.UpdateSpeed)
			protected.DELETE("/speeds/:id", cfg.SpeedHandler.DeleteSpeed)
		}
	}

	return r
}
