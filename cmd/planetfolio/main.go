// Package main is the entry point for planetfolio.
package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/Faultbox/planetfolio/internal/app"
	"github.com/Faultbox/planetfolio/internal/config"
	"github.com/Faultbox/planetfolio/internal/logger"
)

func main() {
	// Parse CLI flags first
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if out := config.WriteConfigPath(); out != "" {
		if err := cfg.SaveTo(out); err != nil {
			fmt.Fprintf(os.Stderr, "Write config error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Config written to %s\n", out)
		return
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	path := config.ResolvePath()
	logger.Info("=== Planetfolio ===", zap.String("config", path))
	logger.Sugar.Debugf("Config: %+v", cfg)

	a, err := app.New(cfg, app.Options{
		ConfigPath:    path,
		Watch:         config.WatchEnabled(),
		ScreenshotDir: "screenshots",
	})
	if err != nil {
		logger.Error("failed to create app", zap.Error(err))
		os.Exit(1)
	}
	defer a.Close()

	if err := a.Run(); err != nil {
		logger.Error("app error", zap.Error(err))
		os.Exit(1)
	}

	logger.Info("app closed normally")
}
