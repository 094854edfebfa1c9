package http

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/khoahotran/user-registry/pkg/logger"
)

const healthTimeout = 2 * time.Second

type Pinger interface {
	Ping(ctx context.Context) error
}

func NewRouter(userHandler *UserHandler, db Pinger, log logger.Logger) *gin.Engine {
	router := gin.New()
	router.Use(
		RequestIDMiddleware(),
		LoggerMiddleware(log),
		RecoveryMiddleware(log),
		ErrorMiddleware(log),
	)

	router.GET("/health", func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), healthTimeout)
		defer cancel()
		if err := db.Ping(ctx); err != nil {
			log.Error("Health check failed", err)
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "DOWN"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "UP"})
	})

	api := router.Group("/api/v1")
	userHandler.RegisterRoutes(api)

	return router
}
