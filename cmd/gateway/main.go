// Package main implements the entry point for the mealgrid edge gateway.
// The gateway exposes REST and GraphQL surfaces over the Order and
// Restaurant backend services and publishes best-effort domain events for
// order mutations.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/mealgrid/gateway/adapter"
	"github.com/mealgrid/gateway/config"
	"github.com/mealgrid/gateway/event"
	"github.com/mealgrid/gateway/gateway/server"
)

// Build information constants
const (
	Version   = "0.1.0"
	BuildTime = "dev"
	appName   = "mealgrid-gateway"
)

func main() {
	// Add panic recovery
	defer func() {
		if r := recover(); r != nil {
			buf := make([]byte, 4096)
			n := runtime.Stack(buf, false)
			_, _ = fmt.Fprintf(os.Stderr, "PANIC: %v\nStack trace:\n%s\n", r, string(buf[:n]))
			os.Exit(2)
		}
	}()

	if err := run(); err != nil {
		slog.Error("Application failed", "error", err, "exit_code", 1)
		os.Exit(1)
	}
}

func run() error {
	cliCfg := parseFlags()
	if err := validateFlags(cliCfg); err != nil {
		return fmt.Errorf("invalid flags: %w", err)
	}

	if cliCfg.ShowVersion {
		fmt.Printf("%s version %s\n", appName, Version)
		return nil
	}
	if cliCfg.ShowHelp {
		printDetailedHelp()
		return nil
	}

	logger := setupLogger(cliCfg.LogLevel, cliCfg.LogFormat)
	slog.SetDefault(logger)

	slog.Info("Starting gateway",
		"version", Version,
		"build_time", BuildTime,
		"config_path", cliCfg.ConfigPath)

	cfg, err := loadConfiguration(cliCfg.ConfigPath)
	if err != nil {
		return err
	}

	if cliCfg.Validate {
		slog.Info("Configuration is valid")
		return nil
	}

	// Backend adapters and the event publisher never fail startup: an
	// unreachable dependency comes up degraded and surfaces report it
	// per request.
	orders := adapter.DialOrder(cfg.OrderService.Addr, logger)
	defer func() { _ = orders.Close() }()

	restaurants := adapter.DialRestaurant(cfg.RestaurantService.Addr, logger)
	defer func() { _ = restaurants.Close() }()

	publisher := event.Connect(cfg.Bus.URL, logger)
	defer publisher.Close()

	srv, err := server.New(server.Options{
		ListenAddr:  cfg.ListenAddr,
		Orders:      orders,
		Restaurants: restaurants,
		Events:      publisher,
		Logger:      logger,
	})
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errChan := make(chan error, 1)
	go func() {
		errChan <- srv.Start(ctx, nil)
	}()

	select {
	case <-ctx.Done():
		slog.Info("Shutdown signal received")
		if err := srv.Stop(cliCfg.ShutdownTimeout); err != nil {
			return err
		}
		return <-errChan

	case err := <-errChan:
		return err
	}
}

func loadConfiguration(path string) (*config.Config, error) {
	cfg, err := config.NewLoader().LoadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load configuration: %w", err)
	}

	cfg.ApplyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate configuration: %w", err)
	}

	slog.Info("Configuration loaded",
		"listen_addr", cfg.ListenAddr,
		"order_service", cfg.OrderService.Addr,
		"restaurant_service", cfg.RestaurantService.Addr,
		"bus_url", cfg.Bus.URL)

	return cfg, nil
}
