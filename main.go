package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"mortgage-agent/catalog"
	"mortgage-agent/config"
	httpLayer "mortgage-agent/http"
	"mortgage-agent/logger"
	"mortgage-agent/repository"
	"mortgage-agent/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		os.Stderr.WriteString("invalid configuration: " + err.Error() + "\n")
		os.Exit(1)
	}

	log := logger.New(logger.Config{Level: cfg.LogLevel, Pretty: cfg.LogPretty})
	logger.SetGlobalLogger(log)

	catalogRepo, closeRepo := newCatalogRepository(cfg, log)
	defer closeRepo()

	var source catalog.Source = catalog.EmbeddedSource{}
	if cfg.CatalogPath != "" {
		source = catalog.NewFileSource(cfg.CatalogPath)
	}

	refreshJob := catalog.NewRefreshJob(source, catalogRepo, log)
	if err := refreshJob.Run(); err != nil {
		// A shared store may still hold a snapshot from another instance.
		log.Error().Err(err).Msg("Initial catalog load failed")
	}

	scheduler := catalog.NewScheduler(log)
	if err := scheduler.AddJob(cfg.CatalogRefreshSchedule, refreshJob); err != nil {
		log.Fatal().Err(err).Str("schedule", cfg.CatalogRefreshSchedule).Msg("Invalid refresh schedule")
	}
	scheduler.Start()
	defer scheduler.Stop()

	advisor := service.NewAdvisorService(catalogRepo, log)
	offerHandler := httpLayer.NewOfferHandler(advisor, log)

	rateLimiter := httpLayer.NewRateLimiter(cfg.RateLimitCapacity, cfg.RateLimitWindow)
	defer rateLimiter.Stop()

	server := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      httpLayer.NewRouter(offerHandler, rateLimiter, log),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Info().Str("addr", server.Addr).Msg("Starting HTTP server")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		log.Error().Err(err).Msg("Error starting server")
		return
	case <-quit:
		log.Info().Msg("Shutting down server...")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Error during server shutdown")
	}

	log.Info().Msg("Server exited")
}

func newCatalogRepository(cfg *config.Config, log zerolog.Logger) (repository.CatalogRepository, func()) {
	if cfg.RedisAddr == "" {
		log.Info().Msg("Using in-memory catalog store")
		return repository.NewCatalogRepositoryMemory(), func() {}
	}

	client := redis.NewClient(&redis.Options{
		Addr: cfg.RedisAddr,
	})
	log.Info().Str("addr", cfg.RedisAddr).Msg("Using redis catalog store")

	return repository.NewCatalogRepositoryRedis(client, cfg.RedisCatalogKey), func() {
		if err := client.Close(); err != nil {
			log.Warn().Err(err).Msg("Error closing redis client")
		}
	}
}
