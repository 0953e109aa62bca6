package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"

	"github.com/sanverite/skinmock/internal/api"
	"github.com/sanverite/skinmock/internal/config"
	"github.com/sanverite/skinmock/internal/core"
	"github.com/sanverite/skinmock/internal/logger"
)

// CLI overrides. Zero values leave the config file or defaults in place.
var CLI struct {
	Version         kong.VersionFlag
	Config          string        `help:"Config file path." type:"path" default:"skinmock.toml" env:"SKINMOCK_CONFIG"`
	Listen          string        `help:"HTTP listen address." env:"SKINMOCK_LISTEN"`
	Quiet           bool          `help:"Disable debug logging and gin debug mode." env:"SKINMOCK_QUIET"`
	LogFile         string        `help:"Also write logs to this rotating file." type:"path" env:"SKINMOCK_LOG_FILE"`
	ShutdownTimeout time.Duration `help:"Graceful shutdown timeout." env:"SKINMOCK_SHUTDOWN_TIMEOUT"`
}

func main() {
	kong.Parse(&CLI,
		kong.Name("skinmock"),
		kong.Description("Mock backend for the skincare tracking front-end"),
		kong.UsageOnError(),
		kong.Vars{"version": "v0.1.0"},
	)

	cfg, err := resolveConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	lg, closer, err := logger.New(logger.Config{Debug: cfg.Debug, File: cfg.LogFile})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: init logger: %v\n", err)
		os.Exit(1)
	}
	defer closer.Close()

	if err := run(cfg, lg); err != nil {
		lg.Error("skinmock: exiting", "err", err)
		closer.Close()
		os.Exit(1)
	}
}

func resolveConfig() (config.Config, error) {
	cfg, err := config.Load(CLI.Config)
	if err != nil {
		return config.Config{}, err
	}
	if CLI.Listen != "" {
		cfg.Listen = CLI.Listen
	}
	if CLI.Quiet {
		cfg.Debug = false
	}
	if CLI.LogFile != "" {
		cfg.LogFile = CLI.LogFile
	}
	if CLI.ShutdownTimeout != 0 {
		cfg.ShutdownTimeout = CLI.ShutdownTimeout
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func run(cfg config.Config, lg *log.Logger) error {
	if cfg.Debug {
		gin.SetMode(gin.DebugMode)
		gin.DebugPrintRouteFunc = func(method, path, handler string, _ int) {
			lg.Debug("route", "method", method, "path", path, "handler", handler)
		}
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	history := core.NewHistoryStore(core.SeedHistory())
	lg.Info("skinmock: history seeded", "entries", history.Len())

	srv := api.NewServer(history, api.ServerOptions{
		Addr:              cfg.Listen,
		ReadTimeout:       cfg.ReadTimeout,
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
		WriteTimeout:      cfg.WriteTimeout,
		IdleTimeout:       cfg.IdleTimeout,
		ShutdownTimeout:   cfg.ShutdownTimeout,
		Logger:            lg,
	})

	errCh := srv.Start()

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return fmt.Errorf("serve: %w", err)
	case sig := <-signals:
		lg.Info("skinmock: received signal, shutting down", "signal", sig)
	}

	if err := srv.Stop(context.Background()); err != nil {
		lg.Error("skinmock: graceful shutdown error", "err", err)
	}
	lg.Info("skinmock: stopped")
	return nil
}
