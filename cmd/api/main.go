package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/oggyb/twilio-bridge/internal/cache"
	"github.com/oggyb/twilio-bridge/internal/cache/redis"
	"github.com/oggyb/twilio-bridge/internal/config"
	"github.com/oggyb/twilio-bridge/internal/handler"
	"github.com/oggyb/twilio-bridge/internal/logger"
	routes "github.com/oggyb/twilio-bridge/internal/router"
	"github.com/oggyb/twilio-bridge/internal/server"
	"github.com/oggyb/twilio-bridge/internal/service"
	"github.com/oggyb/twilio-bridge/internal/sms"
	"golang.org/x/sync/errgroup"
)

func main() {
	// Base context for the whole application lifetime.
	rootCtx := context.Background()

	// Load configuration from environment/.env.
	cfg := config.New()
	log := logger.New(cfg.App.LogLevel).With("app", cfg.App.Name, "env", cfg.App.Env)

	// Init SMS provider client. Without credentials there is nothing to serve.
	smsClient, err := sms.NewTwilioClient(
		cfg.TwilioConfig(),
		&http.Client{Timeout: cfg.Worker.ProviderTimeout},
		log,
	)
	if err != nil {
		log.Error("invalid twilio configuration", "error", err)
		os.Exit(1)
	}

	// Init cache.
	var lookupCache cache.Cache
	if cfg.Lookup.CacheEnabled {
		rc := redis.New(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		defer rc.Close()
		if err := rc.Ping(rootCtx); err != nil {
			log.Error("failed to connect to redis", "addr", cfg.Redis.Addr, "error", err)
			os.Exit(1)
		}
		lookupCache = rc
	}

	// Init services.
	msgSvc := service.NewMessagingService(smsClient, lookupCache, log, service.Options{
		AccountID:       smsClient.AccountID(),
		ReplyMessage:    cfg.SMS.ReplyMessage,
		CacheTTL:        cfg.Lookup.CacheTTL,
		MaxWorkers:      cfg.Worker.MaxWorkers,
		ProviderTimeout: cfg.Worker.ProviderTimeout,
	})

	// Handlers
	deps := routes.AppDeps{
		Home:    handler.NewHomeHandler(msgSvc),
		Message: handler.NewMessageHandler(msgSvc, validator.New(validator.WithRequiredStructEnabled())),
		Webhook: handler.NewWebhookHandler(msgSvc),
	}

	// Init Server
	addr := fmt.Sprintf("%s:%s", cfg.API.Host, cfg.API.Port)
	srv := server.New(addr, deps, log)

	// Create a context that is cancelled on SIGINT/SIGTERM (Ctrl+C, docker stop etc.).
	ctx, stop := signal.NotifyContext(rootCtx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Info("HTTP server listening", "addr", addr)
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		// Block until we receive a shutdown signal or the server dies.
		<-gctx.Done()
		log.Info("shutdown signal received, starting graceful shutdown")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Error("server stopped with error", "error", err)
		os.Exit(1)
	}
	log.Info("shutdown complete")
}
