// Package main provides the entry point for the Rusty Reel bot.
// @title Rusty Reel API
// @version 1.0
// @description DeArrow branding lookups and fox wisdom, the same commands the chat bot serves.

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /

// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
// @description API key authentication

package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/denisAlshanov/rustyreel/docs"
	"github.com/denisAlshanov/rustyreel/internal/api/handlers"
	"github.com/denisAlshanov/rustyreel/internal/api/router"
	"github.com/denisAlshanov/rustyreel/internal/config"
	"github.com/denisAlshanov/rustyreel/internal/services/dearrow"
	"github.com/denisAlshanov/rustyreel/internal/services/telegram"
	"github.com/denisAlshanov/rustyreel/internal/services/wisdom"
	"github.com/denisAlshanov/rustyreel/internal/utils"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	utils.SetLogLevel(cfg.LogLevel)
	logger := utils.GetLogger()
	logger.Info("Starting Rusty Reel")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// The core sets no deadline of its own; the transport bounds each lookup.
	brandingClient := dearrow.NewClient(
		&http.Client{Timeout: cfg.DeArrow.Timeout},
		dearrow.WithUserAgent(cfg.DeArrow.UserAgent),
	)
	dispenser := wisdom.NewDispenser()
	logger.Infof("Loaded %d wisdom quotes", dispenser.Len())

	checkers := map[string]handlers.HealthChecker{}

	var bot *telegram.Bot
	if cfg.TelegramEnabled() {
		bot, err = telegram.NewBot(&cfg.Telegram, telegram.DispatcherDeps{
			Branding: brandingClient,
			Wisdom:   dispenser,
			Cooldown: telegram.NewCooldown(cfg.Wisdom.Cooldown),
		})
		if err != nil {
			logger.Fatalf("Failed to initialize Telegram bot: %v", err)
		}

		logger.Info("Connecting to Telegram...")
		if err := bot.Connect(ctx); err != nil {
			logger.Fatalf("Failed to connect to Telegram: %v", err)
		}
		checkers["telegram"] = bot
	} else {
		logger.Warn("TELEGRAM_BOT_TOKEN not set, running the HTTP API only")
	}

	r := router.NewRouter(cfg,
		handlers.NewBrandingHandler(brandingClient),
		handlers.NewWisdomHandler(dispenser),
		handlers.NewHealthHandler(checkers),
	)
	srv := r.Server()

	errCh := make(chan error, 2)

	go func() {
		logger.Infof("Starting server on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	botDone := make(chan struct{})
	if bot != nil {
		go func() {
			defer close(botDone)
			if err := bot.Run(ctx); err != nil {
				errCh <- err
			}
		}()
	} else {
		close(botDone)
	}

	select {
	case <-ctx.Done():
		logger.Info("Shutting down...")
	case err := <-errCh:
		logger.Errorf("Service failed: %v", err)
		stop()
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Errorf("Failed to shut down HTTP server: %v", err)
	}

	if bot != nil {
		if err := bot.Close(); err != nil {
			logger.Errorf("Failed to close Telegram bot: %v", err)
		}
	}

	select {
	case <-botDone:
	case <-shutdownCtx.Done():
		logger.Warn("Timed out waiting for in-flight commands")
	}

	logger.Info("Shutdown complete")
}
