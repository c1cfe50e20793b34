package router

import (
	"fmt"
	"time"

	"github.com/Princegupta101/instinctive/internal/handlers"
	"github.com/Princegupta101/instinctive/internal/middleware"
	"github.com/Princegupta101/instinctive/internal/web"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func NewRouter(h *handlers.Handler, allowedOrigins []string, log *zap.Logger) (*gin.Engine, error) {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(log.Named("http")))

	r.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowMethods:     []string{"GET", "PATCH", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Accept", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	templates, err := web.Templates()
	if err != nil {
		return nil, fmt.Errorf("parsing templates: %w", err)
	}
	r.SetHTMLTemplate(templates)

	for _, dir := range []string{"videos", "thumbnails"} {
		assets, err := web.Assets(dir)
		if err != nil {
			return nil, fmt.Errorf("loading %s: %w", dir, err)
		}
		r.StaticFS("/"+dir, assets)
	}

	r.GET("/", h.Dashboard)

	api := r.Group("/api")
	{
		api.GET("/health", h.HealthCheck)
		api.GET("/cameras", h.ListCameras)

		incidents := api.Group("/incidents")
		{
			incidents.GET("", h.ListIncidents)
			incidents.PATCH("/:id/resolve", h.ResolveIncident)
		}
	}

	return r, nil
}
