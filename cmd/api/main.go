package main

import (
	"context"
	"errors"
	"github.com/ariefcatur/go-storefront.git/internal/admin"
	"github.com/ariefcatur/go-storefront.git/internal/catalog"
	"github.com/ariefcatur/go-storefront.git/internal/config"
	"github.com/ariefcatur/go-storefront.git/internal/events"
	"github.com/ariefcatur/go-storefront.git/internal/httpx"
	kafkax "github.com/ariefcatur/go-storefront.git/internal/kafka"
	"github.com/ariefcatur/go-storefront.git/internal/kv"
	"github.com/ariefcatur/go-storefront.git/internal/logx"
	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	logx.Configure(logx.Config{Level: cfg.LogLevel, Service: cfg.ServiceName})
	logger := logx.WithComponent("main")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Persistence backend
	store, err := kv.Open(ctx, kv.Options{
		Backend:     cfg.StoreBackend,
		Path:        cfg.StorePath,
		PostgresDSN: cfg.PostgresDSN,
		RedisAddr:   cfg.RedisAddr,
	})
	if err != nil {
		logger.Fatal().Err(err).Str("backend", cfg.StoreBackend).Msg("open store")
	}
	defer store.Close()

	repo := catalog.NewRepository(store, cfg.StorageKey, logx.WithComponent("catalog"))
	session := admin.NewSession(ctx, repo, catalog.NewEditor(), logx.WithComponent("admin"))

	// Kafka producers, lifetime independent of the signal context so they
	// can flush after the server stops.
	var (
		savedPub    kafkax.Publisher = kafkax.Discard{}
		checkoutPub kafkax.Publisher = kafkax.Discard{}
		producers   []*kafkax.Producer
	)
	prodCtx, prodCancel := context.WithCancel(context.Background())
	defer prodCancel()
	if cfg.EventsEnabled {
		ps := kafkax.NewProducer(cfg.KafkaBrokers, events.TopicCatalogSaved, 64, logx.WithComponent("kafka"))
		pc := kafkax.NewProducer(cfg.KafkaBrokers, events.TopicCheckoutStarted, 1024, logx.WithComponent("kafka"))
		ps.Start(prodCtx)
		pc.Start(prodCtx)
		savedPub, checkoutPub = ps, pc
		producers = append(producers, ps, pc)
	}

	router := httpx.NewRouter()
	(&httpx.AdminHandler{
		Session:    session,
		Producer:   savedPub,
		Service:    cfg.ServiceName,
		StorageKey: cfg.StorageKey,
		RateLimit:  cfg.AdminRateLimit,
		Logger:     logx.WithComponent("admin"),
	}).Register(router)
	(&httpx.StorefrontHandler{
		Catalog:  repo,
		Producer: checkoutPub,
		Service:  cfg.ServiceName,
	}).Register(router)

	srv := &http.Server{Addr: cfg.HTTPAddr, Handler: router, ReadHeaderTimeout: 5 * time.Second}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info().Str("addr", cfg.HTTPAddr).Str("backend", cfg.StoreBackend).Msg("HTTP listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info().Msg("shutting down...")
		sctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(sctx)
	})
	if err := g.Wait(); err != nil {
		logger.Error().Err(err).Msg("server exit")
	}

	if session.Dirty() {
		logger.Warn().Msg("exiting with unsaved draft changes")
	}
	for _, p := range producers {
		p.Close()
	}
	for _, p := range producers {
		p.WaitClosed()
	}
}
