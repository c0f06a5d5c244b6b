package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"books_scraper/config"
	"books_scraper/data/cache"
	"books_scraper/data/db/postgres"
	redisClient "books_scraper/data/redis"
	"books_scraper/data/session"
	"books_scraper/internal/httpserver"
	"books_scraper/internal/parser"
	"books_scraper/internal/repository"
	"books_scraper/internal/service/bookService"
	"books_scraper/internal/transport/web"
	"books_scraper/utils"
)

func main() {
	cfg := config.MustLoad()

	setupLogger(cfg)

	slog.Debug("config", slog.Any("cfg", cfg))

	ctx := utils.CreateCtxWithRqID(context.Background())

	postgresDb := postgres.MustInitPostgres(cfg)
	defer postgresDb.Close()

	postgresRepo := repository.NewPostgresRepo(postgresDb)

	redisClient := redisClient.MustInitRedis(cfg)
	defer redisClient.Close()

	redisSession := session.NewRedisSession(cfg, redisClient)

	redisCache := cache.NewRedisCache(cfg, redisClient)

	booksParser := parser.NewBooksToScrapeParser(cfg)

	booksService := bookService.New(cfg, postgresRepo, redisCache, booksParser)

	// the one-shot scrape: runs only when the books table is empty
	if err := booksService.Init(ctx); err != nil {
		slog.Error("failed to initialize catalog", slog.String("err", err.Error()))
		panic(err)
	}

	webController := web.NewController(cfg, booksService, redisSession)

	server := httpserver.New(cfg, webController)

	server.Start()
	defer server.Stop()

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)

	<-interrupt
}

func setupLogger(cfg *config.Config) {
	var logLevel slog.Level

	switch cfg.LogLevel {
	case "debug":
		logLevel = slog.LevelDebug
	case "info":
		logLevel = slog.LevelInfo
	case "warning":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	log := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel}))
	slog.SetDefault(log)
}
