// homefolio - Personal Homepage and Admin Console API
// SPDX-License-Identifier: MIT

// Command server runs the homefolio HTTP API.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"homefolio/internal/api"
	"homefolio/internal/auth"
	"homefolio/internal/cache"
	"homefolio/internal/config"
	"homefolio/internal/feed"
	"homefolio/internal/logging"
	"homefolio/internal/netease"
	"homefolio/internal/settings"
	"homefolio/internal/steam"
)

func main() {
	if err := run(); err != nil {
		logging.Error().Err(err).Msg("Server exited with error")
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logging.Init(logging.Config{
		Level:     cfg.Logging.Level,
		Format:    cfg.Logging.Format,
		Caller:    cfg.Logging.Caller,
		Timestamp: true,
	})

	credentials, err := auth.NewCredentials(cfg.Security.AdminUsername, cfg.Security.AdminPassword)
	if err != nil {
		return err
	}
	if !credentials.Enabled() {
		logging.Warn().Msg("ADMIN_USERNAME/ADMIN_PASSWORD not set; admin login is disabled")
	}

	providerCache := cache.New(cfg.Steam.CacheTTL)
	defer providerCache.Stop()

	server := api.NewServer(api.Options{
		Config:      cfg,
		Store:       settings.New(cfg.Settings.Path),
		Cache:       providerCache,
		Steam:       steam.NewClient(cfg.Steam.BaseURL, cfg.Steam.Timeout),
		Netease:     netease.NewClient(cfg.Netease.MusicU, cfg.Netease.BaseURL, cfg.Netease.Timeout),
		Feed:        feed.NewFetcher(cfg.Server.Timeout),
		JWT:         auth.NewJWTManager(cfg.Security.JWTSecret, cfg.Security.SessionTimeout),
		Credentials: credentials,
	})
	defer server.Close()

	httpServer := &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           server.Router(),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       cfg.Server.Timeout,
		WriteTimeout:      cfg.Server.Timeout,
		IdleTimeout:       2 * cfg.Server.Timeout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logging.Info().
			Str("addr", httpServer.Addr).
			Str("version", api.Version).
			Msg("HTTP server listening")
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logging.Info().Msg("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return err
	}
	logging.Info().Msg("Shutdown complete")
	return nil
}
