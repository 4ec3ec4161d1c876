package main

import (
	"net/http"
	"os"

	"github.com/buurtmarkt/backend/internal/config"
	"github.com/buurtmarkt/backend/internal/events"
	"github.com/buurtmarkt/backend/internal/store"
	"github.com/buurtmarkt/backend/pkg/logger"
	"github.com/buurtmarkt/backend/pkg/metrics"
	"github.com/buurtmarkt/backend/pkg/middleware"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	logger.Init(os.Getenv("LOG_LEVEL"))

	cfg, err := config.Load("events")
	if err != nil {
		logger.Fatalf("failed to load config: %v", err)
	}

	st, err := store.Open(cfg.Store.File, events.DefaultDatabase())
	if err != nil {
		logger.Fatalf("failed to open document store %s: %v", cfg.Store.File, err)
	}

	r := gin.New()
	r.Use(middleware.CORS(), gin.Logger(), gin.Recovery(), middleware.Metrics("events"))
	if cfg.RateLimit.Enabled {
		r.Use(middleware.RateLimit(cfg.RateLimit.RPS, cfg.RateLimit.Burst))
	}

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "healthy")
	})
	metrics.RegisterCollectors(prometheus.DefaultRegisterer)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	events.RegisterRoutes(r, events.NewService(st))

	addr := cfg.Server.Host + ":" + cfg.Server.Port
	logger.Infof("Starting events service on %s (db=%s)", addr, cfg.Store.File)
	if err := r.Run(addr); err != nil {
		logger.Fatalf("server failed: %v", err)
	}
}
