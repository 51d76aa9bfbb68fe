package middleware

import (
	"time"

	"safeher/config"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func CORS(cfg *config.SystemConfigs) gin.HandlerFunc {
	// No configured origins means a development box; allow everything the
	// way the app's dev server expects.
	if len(cfg.Config.FrontendUrls) == 0 {
		return cors.Default()
	}

	return cors.New(cors.Config{
		AllowOrigins: cfg.Config.FrontendUrls,
		AllowMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders: []string{
			"Origin",
			"Content-Type",
			"Accept",
			"Authorization",
			"X-Requested-With",
		},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	})
}
