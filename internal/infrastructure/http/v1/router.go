// Package v1 provides HTTP API version 1.
package v1

import (
	"github.com/gin-gonic/gin"

	"floorspace/internal/domain/objects"
	"floorspace/internal/infrastructure/http/v1/handlers"
	"floorspace/internal/infrastructure/http/v1/middleware"
	"floorspace/internal/infrastructure/metrics"
	"floorspace/internal/metadata"
	"floorspace/pkg/logger"
)

// DefaultMaxBodyBytes is used when RouterConfig.MaxBodyBytes is not set.
const DefaultMaxBodyBytes = 32 << 20

// RouterConfig holds router configuration.
type RouterConfig struct {
	// Logger for request logging
	Logger *logger.Logger

	// MetadataRegistry stores entity definitions
	MetadataRegistry *metadata.Registry

	// Metrics is optional; nil disables /metrics and request instrumentation
	Metrics *metrics.Metrics

	// MaxBodyBytes bounds decoded request bodies
	MaxBodyBytes int64
}

// NewRouter creates and configures the Gin router.
func NewRouter(cfg RouterConfig) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	if cfg.Logger == nil {
		cfg.Logger = logger.Default()
	}
	if cfg.MetadataRegistry == nil {
		cfg.MetadataRegistry = metadata.Default()
	}
	if cfg.MaxBodyBytes <= 0 {
		cfg.MaxBodyBytes = DefaultMaxBodyBytes
	}

	router := gin.New()

	// Global middleware (order matters!)
	router.Use(middleware.Recovery())
	router.Use(middleware.Trace())
	router.Use(middleware.Logger(cfg.Logger))
	if cfg.Metrics != nil {
		// Must wrap ErrorHandler to observe the rendered error status.
		router.Use(middleware.Metrics(cfg.Metrics))
	}
	router.Use(middleware.ErrorHandler())
	if cfg.Metrics != nil {
		router.GET("/metrics", gin.WrapH(cfg.Metrics.Handler()))
	}

	healthHandler := handlers.NewHealthHandler(cfg.MetadataRegistry)
	health := router.Group("/health")
	{
		health.GET("/live", healthHandler.Live)
		health.GET("/info", healthHandler.Info)
	}

	// A nil *metrics.Metrics must not become a non-nil interface.
	var recorder objects.LookupRecorder
	if cfg.Metrics != nil {
		recorder = cfg.Metrics
	}
	service := objects.NewService(cfg.MetadataRegistry, recorder)

	v1 := router.Group("/api/v1")
	v1.Use(middleware.Body(cfg.MaxBodyBytes))
	{
		registerMetaRoutes(v1, cfg, service)
		registerObjectRoutes(v1, service)
	}

	return router
}

// registerMetaRoutes registers entity type descriptor endpoints.
func registerMetaRoutes(rg *gin.RouterGroup, cfg RouterConfig, service *objects.Service) {
	handler := handlers.NewMetadataHandler(handlers.NewBaseHandler(), cfg.MetadataRegistry, service)
	meta := rg.Group("/meta")
	{
		meta.GET("", handler.ListEntities)
		meta.GET("/:type", handler.GetEntity)
		meta.GET("/:type/fields/:key", handler.GetField)
		meta.POST("/:type/new", handler.NewObject)
	}
}

// registerObjectRoutes registers snapshot lookup endpoints.
func registerObjectRoutes(rg *gin.RouterGroup, service *objects.Service) {
	handler := handlers.NewObjectsHandler(handlers.NewBaseHandler(), service)
	objs := rg.Group("/objects")
	{
		objs.POST("/lookup", handler.Lookup)
		objs.POST("/display", handler.Display)
	}
}
