// Package main is the entry point for the marchview shader preview.
package main

import (
	"errors"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/Faultbox/marchview/internal/app"
	"github.com/Faultbox/marchview/internal/config"
	"github.com/Faultbox/marchview/internal/logger"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	cfg, err := config.Load(args, os.Stderr)
	switch {
	case errors.Is(err, config.ErrHelp):
		return 0
	case errors.Is(err, config.ErrFlags):
		// already reported with usage
		return 1
	case errors.Is(err, config.ErrNoInput):
		fmt.Fprintln(os.Stderr, "No input file specified. Try running the program again with the --help option.")
		return 1
	case err != nil:
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		return 1
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		return 1
	}
	defer logger.Sync()

	logger.Info("=== marchview ===")
	logger.Sugar.Debugf("Config: %+v", cfg)

	if cfg.SavePath != "" {
		if err := cfg.SaveTo(cfg.SavePath); err != nil {
			logger.Error("failed to save config", zap.String("path", cfg.SavePath), zap.Error(err))
			return 1
		}
		logger.Info("config saved", zap.String("path", cfg.SavePath))
	}

	a, err := app.New(cfg)
	if err != nil {
		logger.Error("failed to start preview", zap.Error(err))
		return 1
	}
	defer a.Close()

	a.Run()

	logger.Info("preview closed normally")
	return 0
}
