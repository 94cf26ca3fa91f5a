// Package main is the entry point for navview, an interactive terminal
// viewer for the tilenav path engine.
package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/Faultbox/tilenav/internal/config"
	"github.com/Faultbox/tilenav/internal/logger"
)

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	// Log to file only; tcell owns the terminal.
	if err := logger.InitWithFileConfig(cfg.Logging.Level,
		logger.DefaultFileConfig(cfg.Logging.LogFile), false); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("=== navview ===", zap.String("map", cfg.Map.Path))

	v, err := NewViewer(cfg)
	if err != nil {
		logger.Error("failed to create viewer", zap.Error(err))
		fmt.Fprintf(os.Stderr, "navview: %v\n", err)
		os.Exit(1)
	}
	defer v.Close()

	if err := v.Run(); err != nil {
		logger.Error("viewer error", zap.Error(err))
		os.Exit(1)
	}

	logger.Info("viewer closed normally")
}
