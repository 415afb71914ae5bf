package httpframework

import (
	"os"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/predictgate/predictgate/pkg/middleware"
	"github.com/rs/zerolog/log"
)

var (
	router *gin.Engine
	once   sync.Once
)

// Init initializes the gin engine with the given middlewares.
// Gin runs in release mode when APP_ENV is production; the access logger and
// recovery middlewares are always appended last.
func Init(middlewares ...gin.HandlerFunc) {
	once.Do(func() {
		env := os.Getenv("APP_ENV")
		if env == "prod" || env == "production" {
			gin.SetMode(gin.ReleaseMode)
		}
		router = gin.New()
		middlewares = append(middlewares, middleware.HTTPLogger(), middleware.HTTPRecovery())
		router.Use(middlewares...)
	})
}

// Instance returns the shared gin engine.
func Instance() *gin.Engine {
	if router == nil {
		log.Fatal().Msg("Router not initialized")
	}
	return router
}
