package main

import (
	"context"
	"net/http"
	"os"

	"github.com/buurtmarkt/backend/internal/config"
	"github.com/buurtmarkt/backend/internal/recipes"
	"github.com/buurtmarkt/backend/pkg/logger"
	"github.com/buurtmarkt/backend/pkg/metrics"
	"github.com/buurtmarkt/backend/pkg/middleware"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
)

func main() {
	logger.Init(os.Getenv("LOG_LEVEL"))

	cfg, err := config.Load("recipes")
	if err != nil {
		logger.Fatalf("failed to load config: %v", err)
	}
	if cfg.Recipes.APIKey == "" {
		logger.Warn("RECIPE_API_KEY is not set; upstream calls will be rejected")
	}

	// Redis-backed cache when configured, in-memory TTL cache otherwise.
	var cache recipes.Cache = recipes.NewMemoryCache()
	if cfg.Redis.Host != "" {
		rdb := redis.NewClient(&redis.Options{Addr: cfg.Redis.Host + ":" + cfg.Redis.Port, Password: cfg.Redis.Password})
		if err := rdb.Ping(context.Background()).Err(); err != nil {
			logger.Warnf("failed to connect to Redis (%s:%s): %v, falling back to memory cache", cfg.Redis.Host, cfg.Redis.Port, err)
		} else {
			logger.Infof("Using Redis recipe cache at %s:%s", cfg.Redis.Host, cfg.Redis.Port)
			cache = recipes.NewRedisCache(rdb)
		}
	}

	client := recipes.NewClient(cfg.Recipes.APIURL, cfg.Recipes.APIKey, cache, cfg.Recipes.CacheTTL)
	productsClient := recipes.NewProductsClient(cfg.Services.ProductsURL)

	r := gin.New()
	r.Use(middleware.CORS(), gin.Logger(), gin.Recovery(), middleware.Metrics("recipes"))
	if cfg.RateLimit.Enabled {
		r.Use(middleware.RateLimit(cfg.RateLimit.RPS, cfg.RateLimit.Burst))
	}

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "healthy")
	})
	metrics.RegisterCollectors(prometheus.DefaultRegisterer)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	recipes.RegisterRoutes(r, client, productsClient)

	addr := cfg.Server.Host + ":" + cfg.Server.Port
	logger.Infof("Starting recipes service on %s", addr)
	if err := r.Run(addr); err != nil {
		logger.Fatalf("server failed: %v", err)
	}
}
