package router

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/denisAlshanov/rustyreel/internal/api/handlers"
	"github.com/denisAlshanov/rustyreel/internal/api/middleware"
	"github.com/denisAlshanov/rustyreel/internal/config"
	"github.com/denisAlshanov/rustyreel/internal/models"
	"github.com/denisAlshanov/rustyreel/internal/utils"
)

type Router struct {
	engine *gin.Engine
	config *config.Config
}

func NewRouter(cfg *config.Config, brandingHandler *handlers.BrandingHandler, wisdomHandler *handlers.WisdomHandler, healthHandler *handlers.HealthHandler) *Router {
	if cfg.Server.Host == "0.0.0.0" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()

	engine.Use(middleware.CorrelationIDMiddleware())
	engine.Use(gin.CustomRecovery(recoverWithError))

	health := engine.Group("/")
	{
		health.GET("/health", healthHandler.Health)
		health.GET("/ready", healthHandler.Readiness)
		health.GET("/live", healthHandler.Liveness)
	}

	engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := engine.Group("/api/v1")
	api.Use(middleware.APIKeyMiddleware(&cfg.API))
	{
		api.GET("/branding", brandingHandler.GetBranding) // /api/v1/branding?video=...
		api.GET("/wisdom", wisdomHandler.GetWisdom)       // /api/v1/wisdom
	}

	return &Router{
		engine: engine,
		config: cfg,
	}
}

// recoverWithError answers a panicking request with an INTERNAL_ERROR body.
func recoverWithError(c *gin.Context, recovered any) {
	utils.LogError(c.Request.Context(), "Recovered from panic", fmt.Errorf("%v", recovered), utils.Fields{
		"path": c.Request.URL.Path,
	})

	appErr := utils.NewInternalError()
	c.AbortWithStatusJSON(appErr.StatusCode, models.ErrorResponse{
		Error:     appErr,
		RequestID: c.GetString("request_id"),
		Timestamp: time.Now().Format(time.RFC3339),
	})
}

func (r *Router) Engine() *gin.Engine {
	return r.engine
}

// Server wraps the engine in an http.Server listening on the configured
// address, so the caller can shut it down gracefully.
func (r *Router) Server() *http.Server {
	return &http.Server{
		Addr:              r.config.Addr(),
		Handler:           r.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}
}
