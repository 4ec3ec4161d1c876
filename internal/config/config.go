package config

import (
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds the runtime configuration of one service instance.
type Config struct {
	Server    ServerConfig
	Store     StoreConfig
	Redis     RedisConfig
	RateLimit RateLimitConfig
	Recipes   RecipesConfig
	Geocode   GeocodeConfig
	Services  ServicesConfig
}

type ServerConfig struct {
	Port        string
	Host        string
	Environment string
}

type StoreConfig struct {
	// File is the path of the JSON document backing this service.
	File string
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
}

type RateLimitConfig struct {
	Enabled bool
	RPS     float64
	Burst   int
}

type RecipesConfig struct {
	APIURL   string
	APIKey   string
	CacheTTL time.Duration
}

type GeocodeConfig struct {
	URL string
}

// ServicesConfig holds the origins of sibling services reached over HTTP.
type ServicesConfig struct {
	ProductsURL string
}

// serviceDefaults carries the per-service port and document file defaults.
var serviceDefaults = map[string]struct {
	Port   string
	DBFile string
}{
	"events":   {"3016", "events.json"},
	"markets":  {"3012", "markets.json"},
	"products": {"3013", "products.json"},
	"shops":    {"3014", "shops.json"},
	"recipes":  {"3011", ""},
}

// Load reads configuration for the named service from environment variables
// and an optional .env file.
func Load(service string) (*Config, error) {
	_ = godotenv.Load()

	viper.AutomaticEnv()

	def := serviceDefaults[service]
	viper.SetDefault("SERVER_PORT", def.Port)
	viper.SetDefault("SERVER_HOST", "0.0.0.0")
	viper.SetDefault("SERVER_ENVIRONMENT", "development")
	viper.SetDefault("DB_FILE", def.DBFile)
	viper.SetDefault("RATE_LIMIT_ENABLED", false)
	viper.SetDefault("RATE_LIMIT_RPS", 25.0)
	viper.SetDefault("RATE_LIMIT_BURST", 50)
	viper.SetDefault("RECIPE_API_URL", "https://api.spoonacular.com/recipes")
	viper.SetDefault("RECIPE_CACHE_TTL", 300)
	viper.SetDefault("GEOCODE_URL", "https://nominatim.openstreetmap.org/search")
	viper.SetDefault("PRODUCTS_URL", "http://products:3013")

	cfg := &Config{
		Server: ServerConfig{
			Port:        viper.GetString("SERVER_PORT"),
			Host:        viper.GetString("SERVER_HOST"),
			Environment: viper.GetString("SERVER_ENVIRONMENT"),
		},
		Store: StoreConfig{
			File: viper.GetString("DB_FILE"),
		},
		Redis: RedisConfig{
			Host:     viper.GetString("REDIS_HOST"),
			Port:     viper.GetString("REDIS_PORT"),
			Password: viper.GetString("REDIS_PASSWORD"),
		},
		RateLimit: RateLimitConfig{
			Enabled: viper.GetBool("RATE_LIMIT_ENABLED"),
			RPS:     viper.GetFloat64("RATE_LIMIT_RPS"),
			Burst:   viper.GetInt("RATE_LIMIT_BURST"),
		},
		Recipes: RecipesConfig{
			APIURL:   viper.GetString("RECIPE_API_URL"),
			APIKey:   viper.GetString("RECIPE_API_KEY"),
			CacheTTL: time.Duration(viper.GetInt("RECIPE_CACHE_TTL")) * time.Second,
		},
		Geocode: GeocodeConfig{
			URL: viper.GetString("GEOCODE_URL"),
		},
		Services: ServicesConfig{
			ProductsURL: viper.GetString("PRODUCTS_URL"),
		},
	}

	return cfg, nil
}
