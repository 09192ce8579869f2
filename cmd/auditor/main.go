package main

import (
	"context"
	"fmt"
	"github.com/ariefcatur/go-storefront.git/internal/audit"
	"github.com/ariefcatur/go-storefront.git/internal/config"
	"github.com/ariefcatur/go-storefront.git/internal/events"
	kafkax "github.com/ariefcatur/go-storefront.git/internal/kafka"
	"github.com/ariefcatur/go-storefront.git/internal/logx"
	"github.com/ariefcatur/go-storefront.git/internal/postgres"
	"github.com/ariefcatur/go-storefront.git/internal/redisx"
	"github.com/joho/godotenv"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	logx.Configure(logx.Config{Level: cfg.LogLevel, Service: cfg.ServiceName + "-auditor"})
	logger := logx.WithComponent("auditor")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// DB
	db, err := postgres.Connect(ctx, cfg.PostgresDSN)
	if err != nil {
		logger.Fatal().Err(err).Msg("db connect")
	}
	defer db.Close()
	repo := &audit.Repo{DB: db}
	if err := repo.EnsureSchema(ctx); err != nil {
		logger.Fatal().Err(err).Msg("ensure schema")
	}

	// Redis
	rdb := redisx.New(cfg.RedisAddr)
	defer rdb.Close()

	if rev, err := repo.Latest(ctx, cfg.StorageKey); err == nil {
		cached, _ := redisx.Exists(ctx, rdb, fmt.Sprintf(redisx.KeyCatalogRevision, cfg.StorageKey))
		logger.Info().Str("revision", rev.ID).Time("saved_at", rev.SavedAt).Int("stores", rev.Stores).Bool("cached", cached).Msg("latest catalog revision")
	}

	svc := &audit.Service{
		Repo:        repo,
		Redis:       rdb,
		ServiceName: "auditor",
		Logger:      logger,
	}

	cons := kafkax.NewConsumer(cfg.KafkaBrokers, cfg.AuditorGroup, events.TopicCatalogSaved, cfg.AuditorWorkers, logger)
	done := make(chan struct{})
	go func() {
		defer close(done)
		logger.Info().Str("group", cfg.AuditorGroup).Str("topic", events.TopicCatalogSaved).Int("workers", cfg.AuditorWorkers).Msg("auditor consumer started")
		if err := cons.Start(ctx, svc.HandleCatalogSaved); err != nil {
			logger.Error().Err(err).Msg("consumer exit")
			cancel()
		}
	}()

	// graceful shutdown
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	select {
	case <-sig:
	case <-ctx.Done():
	}
	logger.Info().Msg("shutting down consumer...")
	cancel()
	<-done
}
