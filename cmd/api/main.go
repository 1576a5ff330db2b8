package main

import (
	"context"
	"errors"
	"net/http"

	"github.com/joho/godotenv"

	_ "github.com/newsdesk/news-api/docs"
	"github.com/newsdesk/news-api/internal/api"
	mongodb "github.com/newsdesk/news-api/internal/infrastructure/db/mongo"
	redisdb "github.com/newsdesk/news-api/internal/infrastructure/db/redis"
	"github.com/newsdesk/news-api/internal/pkg/config"
	"github.com/newsdesk/news-api/pkg/logger"
)

// @title           News API
// @version         1.0
// @description     REST backend for user accounts, authentication and news articles.
// @BasePath        /
//
// @securityDefinitions.apikey BearerAuth
// @in   header
// @name Authorization
func main() {
	// Missing .env is fine; real environments set variables directly.
	_ = godotenv.Load()

	cfg := config.Load()
	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx := context.Background()

	client, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongodb connection failed")
	}
	defer func() { _ = client.Disconnect(context.Background()) }()

	// Unique indexes on username and email back the registration conflict
	// checks; create them before accepting traffic.
	if err := mongodb.NewUserRepository(db).EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("index creation failed")
	}

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer func() { _ = rdb.Close() }()

	e := api.NewRouter(db, rdb, cfg, log)

	log.Info().
		Str("port", cfg.Port).
		Str("env", cfg.Env).
		Str("database", cfg.Mongo.Database).
		Msg("starting news api")

	if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
