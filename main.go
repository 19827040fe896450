package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"

	"cora/internal/controller"
	"cora/internal/middleware"
	"cora/internal/ratelimit"
	"cora/internal/report"
	"cora/internal/services"
	"cora/internal/store"
)

type Config struct {
	Port               int      `mapstructure:"port"`
	Address            string   `mapstructure:"address"`
	DatabasePath       string   `mapstructure:"database_path"`
	CacheBackend       string   `mapstructure:"cache_backend"`
	RedisAddr          string   `mapstructure:"redis_addr"`
	RedisPassword      string   `mapstructure:"redis_password"`
	RedisDB            int      `mapstructure:"redis_db"`
	CORSAllowedOrigins []string `mapstructure:"cors_allowed_origins"`
	LogLevel           string   `mapstructure:"log_level"`
}

func main() {
	_ = godotenv.Load()

	v := viper.New()

	v.SetDefault("port", 8080)
	v.SetDefault("address", "0.0.0.0")
	v.SetDefault("database_path", "cora.db")
	v.SetDefault("cache_backend", "memory")
	v.SetDefault("redis_addr", "localhost:6379")
	v.SetDefault("redis_password", "")
	v.SetDefault("redis_db", 0)
	v.SetDefault("cors_allowed_origins", []string{"*"})
	v.SetDefault("log_level", "info")

	v.AutomaticEnv()

	var config Config

	if err := v.Unmarshal(&config); err != nil {
		log.Fatal().Err(err).Msg("failed to parse configuration")
	}

	level, err := zerolog.ParseLevel(config.LogLevel)

	if err != nil {
		level = zerolog.InfoLevel
	}

	zerolog.SetGlobalLevel(level)

	log.Info().Str("address", config.Address).Int("port", config.Port).Msg("starting cora")

	databaseService := services.NewDatabaseService(services.DatabaseServiceConfig{
		DatabasePath: config.DatabasePath,
	})

	if err := databaseService.Init(); err != nil {
		log.Fatal().Err(err).Msg("failed to initialize database")
	}

	database := databaseService.GetDatabase()

	counterStore := newCounterStore(config)
	limiter := ratelimit.New(counterStore)

	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(middleware.NewZerologMiddleware(level).Middleware())
	engine.Use(cors.New(cors.Config{
		AllowOrigins: config.CORSAllowedOrigins,
		AllowMethods: []string{"GET", "POST", "DELETE", "HEAD"},
		AllowHeaders: []string{"Content-Type", middleware.IdentityHeader},
	}))
	engine.Use(middleware.NewRateLimitMiddleware(limiter).Middleware())

	apiGroup := engine.Group("/api/v1")

	healthController := controller.NewHealthController(apiGroup)
	expensesController := controller.NewExpensesController(apiGroup, database)
	jobsController := controller.NewJobsController(apiGroup, database)
	reportsController := controller.NewReportsController(apiGroup, report.NewGormStats(database))

	healthController.SetupRoutes()
	expensesController.SetupRoutes()
	jobsController.SetupRoutes()
	reportsController.SetupRoutes()

	addr := fmt.Sprintf("%s:%d", config.Address, config.Port)

	log.Info().Str("address", addr).Msg("server listening")

	if err := http.ListenAndServe(addr, engine); err != nil {
		log.Error().Err(err).Msg("server error")
		os.Exit(1)
	}
}

// newCounterStore picks the rate limit backend. A misconfigured or unreachable
// backend degrades to the no-op store so the limiter fails open instead of
// taking the service down.
func newCounterStore(config Config) store.Store {
	switch config.CacheBackend {
	case "redis":
		redisStore, err := store.NewRedisStore(store.RedisConfig{
			Addr:     config.RedisAddr,
			Password: config.RedisPassword,
			DB:       config.RedisDB,
		})
		if err != nil {
			log.Warn().Err(err).Msg("redis unavailable, rate limiting disabled")
			return store.NewNoopStore()
		}
		return redisStore
	case "none":
		log.Warn().Msg("rate limiting disabled by configuration")
		return store.NewNoopStore()
	default:
		return store.NewMemoryStore()
	}
}
