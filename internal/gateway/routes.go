package gateway

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"products-api/internal/config"
	"products-api/internal/middleware"
)

// Version is reported by the health endpoint
const Version = "1.0.0"

// RouterConfig holds configuration for setting up routes
type RouterConfig struct {
	Dispatcher  Dispatcher
	Logger      logrus.FieldLogger
	HTTP        config.HTTPConfig
	AllowOrigin string
}

// NewEngine builds a gin engine emulating the API Gateway in front of the dispatcher
func NewEngine(cfg *RouterConfig) *gin.Engine {
	engine := gin.New()
	SetupMiddleware(engine, cfg)
	SetupRoutes(engine, cfg)
	return engine
}

// SetupMiddleware configures global middleware
func SetupMiddleware(engine *gin.Engine, cfg *RouterConfig) {
	engine.Use(middleware.RequestID())
	engine.Use(middleware.Recovery(cfg.Logger))
	engine.Use(middleware.StructuredLogger(cfg.Logger))
	engine.Use(middleware.PerformanceMonitor(cfg.Logger, time.Second))
	engine.Use(middleware.ErrorHandler(cfg.Logger))
	engine.Use(middleware.CORS(cfg.AllowOrigin))
	engine.Use(middleware.SecurityHeaders())
	engine.Use(middleware.RequestSizeLimit(cfg.HTTP.MaxBodyBytes))
	engine.Use(middleware.RateLimiter(cfg.Logger, cfg.HTTP.RateLimitRPS, cfg.HTTP.RateLimitBurst))
}

// SetupRoutes registers the health check and hands every other path to the dispatcher
func SetupRoutes(engine *gin.Engine, cfg *RouterConfig) {
	engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":          "healthy",
			"timestamp":       time.Now().UTC(),
			"version":         Version,
			"deployment_mode": config.CurrentRuntime().Mode(),
		})
	})

	// The dispatcher owns routing, including 404 and 405 outcomes
	engine.NoRoute(Handler(cfg.Dispatcher))
}
