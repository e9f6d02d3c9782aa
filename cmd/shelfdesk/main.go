package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"

	"shelfdesk/internal/app"
	"shelfdesk/internal/config"
	"shelfdesk/internal/util"
)

func main() {
	configPath := flag.String("config", config.ConfigPath, "path to config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	requestTimeout, err := config.ParseRequestTimeout(cfg.RequestTimeout)
	if err != nil {
		log.Fatalf("failed to parse request timeout: %v", err)
	}
	tokenTTL, err := config.ParseTokenTTL(cfg.TokenTTL)
	if err != nil {
		log.Fatalf("failed to parse token TTL: %v", err)
	}

	logger := util.InitLogger(cfg.LogLevel)

	a, err := app.New(app.Config{
		APIBaseURL:     cfg.APIBaseURL,
		RequestTimeout: requestTimeout,
		RedisAddr:      cfg.RedisAddr,
		RedisPassword:  cfg.RedisPassword,
		TokenKey:       cfg.TokenKey,
		TokenTTL:       tokenTTL,
		NotifyStream:   cfg.NotifyStream,
		MinioEndpoint:  cfg.MinioEndpoint,
		MinioAccessKey: cfg.MinioAccessKey,
		MinioSecretKey: cfg.MinioSecretKey,
		MinioBucket:    cfg.MinioBucket,
		MinioUseSSL:    cfg.MinioUseSSL,
		Logger:         logger,
	})
	if err != nil {
		log.Fatalf("failed to init app: %v", err)
	}

	ctx := context.Background()
	if err := a.RefreshAll(ctx); err != nil {
		logger.Error("initial refresh incomplete", "err", err)
		os.Exit(1)
	}

	slog.Info("catalog synced",
		"books", a.Books.Store().Snapshot().Total,
		"categories", a.Categories.Store().Snapshot().Total,
		"publishers", a.Publishers.Store().Snapshot().Total,
		"users", a.Users.Store().Snapshot().Total,
	)
}
