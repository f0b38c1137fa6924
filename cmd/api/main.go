package main

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/playspot/arena-scheduler/internal/config"
	dbpkg "github.com/playspot/arena-scheduler/internal/db"
	"github.com/playspot/arena-scheduler/internal/ratelimit"
	"github.com/playspot/arena-scheduler/internal/routes"
)

func main() {

	_ = godotenv.Load()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	cfg := config.Load()
	db := dbpkg.NewDB(cfg)

	// Redis keeps the public rate limit shared across replicas; without
	// it each process counts on its own.
	var limiterStore ratelimit.Store
	if cfg.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
		})
		limiterStore = ratelimit.NewRedisStore(rdb)
		log.Info().Str("addr", cfg.RedisAddr).Msg("rate limiter backed by redis")
	} else {
		limiterStore = ratelimit.NewMemoryStore()
		log.Warn().Msg("REDIS_ADDR not set, rate limiter is per-process")
	}

	r := gin.Default()

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, cfg, limiterStore)

	log.Info().Str("addr", cfg.Addr()).Msg("server running")
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatal().Err(err).Msg("failed to start server")
	}
}
