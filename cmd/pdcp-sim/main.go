// Command pdcp-sim runs a small fleet of simulated PDCP bearers (one SRB
// and a pair of DRBs) loop-backed through internal/simrlc, persisting
// their handover state to Valkey and exposing a debug HTTP surface to
// drive test traffic and reestablishment.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/l2sim/pdcp-entity/internal/config"
	"github.com/l2sim/pdcp-entity/internal/cryptolocal"
	"github.com/l2sim/pdcp-entity/internal/cryptoremote"
	"github.com/l2sim/pdcp-entity/internal/handoverstore"
	"github.com/l2sim/pdcp-entity/internal/pdcp"
	"github.com/l2sim/pdcp-entity/internal/simserver"
	"github.com/l2sim/pdcp-entity/internal/simulator"
	"github.com/l2sim/pdcp-entity/pkg/valkey"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	initLogger(cfg)

	slog.Info("starting pdcp-sim",
		"listen_addr", cfg.ListenAddr,
		"use_remote_crypto", cfg.UseRemoteCrypto,
	)

	valkeyClient, err := valkey.NewClient(valkey.DefaultOptions().
		WithAddr(cfg.ValkeyAddr()).
		WithPassword(cfg.ValkeyPass))
	if err != nil {
		slog.Error("failed to connect to valkey", "error", err)
		os.Exit(1)
	}
	defer valkeyClient.Close()

	store := handoverstore.New(valkeyClient, handoverstore.DefaultTTL)
	crypto := buildCryptoProvider(cfg)

	sim := simulator.New(slog.Default(), store, crypto)
	if err := provisionDefaultBearers(sim, cfg); err != nil {
		slog.Error("failed to provision default bearers", "error", err)
		os.Exit(1)
	}

	handler := simserver.NewHandler(sim, slog.Default())
	srv := simserver.New(cfg, handler)

	go func() {
		if err := srv.Run(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down pdcp-sim")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("shutdown error", "error", err)
	}

	slog.Info("pdcp-sim stopped")
}

func initLogger(cfg *config.Config) {
	level := slog.LevelInfo
	switch strings.ToUpper(cfg.LogLevel) {
	case "DEBUG":
		level = slog.LevelDebug
	case "WARN":
		level = slog.LevelWarn
	case "ERROR":
		level = slog.LevelError
	}

	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	logger := slog.New(handler).With("app", "pdcp-sim")
	slog.SetDefault(logger)
}

func buildCryptoProvider(cfg *config.Config) pdcp.CryptoProvider {
	if cfg.UseRemoteCrypto {
		return cryptoremote.NewClient(cfg.CryptoBackendURL, "pdcp-sim")
	}
	return cryptolocal.New([]byte("pdcp-sim-demo-key-16"))
}

// provisionDefaultBearers brings up one SRB and two DRBs, the fixed test
// bed the debug surface operates against. A future iteration could read
// the bearer set from cfg instead of hardcoding it here.
func provisionDefaultBearers(sim *simulator.Simulator, cfg *config.Config) error {
	if _, err := sim.Provision(pdcp.SRB, pdcp.RLCModeAM, 5, 0, false, 1, 1); err != nil {
		return err
	}
	if _, err := sim.Provision(pdcp.DRB, pdcp.RLCModeUM, 7, cfg.DefaultDiscardTime, false, 5, 5); err != nil {
		return err
	}
	if _, err := sim.Provision(pdcp.DRB, pdcp.RLCModeAM, 12, cfg.DefaultDiscardTime, true, 6, 6); err != nil {
		return err
	}
	return nil
}
