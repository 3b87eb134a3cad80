package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/dbehnke/dsd-go/internal/engine"
	"github.com/dbehnke/dsd-go/pkg/config"
	"github.com/dbehnke/dsd-go/pkg/logger"
)

var (
	version   = "dev"
	gitCommit = "unknown"
	buildTime = "unknown"
)

func main() {
	configFile := flag.String("config", "config.yaml", "Path to configuration file")
	showVersion := flag.Bool("version", false, "Show version information")
	validate := flag.Bool("validate", false, "Validate configuration and exit")
	flag.Parse()

	if *showVersion {
		fmt.Printf("dsd-go %s\n", version)
		fmt.Printf("Git Commit: %s\n", gitCommit)
		fmt.Printf("Built: %s\n", buildTime)
		os.Exit(0)
	}

	log := logger.New(logger.Config{
		Level:  "info",
		Format: "text",
	})

	log.Info("Starting dsd-go",
		logger.String("version", version),
		logger.String("commit", gitCommit),
		logger.String("build_time", buildTime))

	cfg, err := config.Load(*configFile)
	if err != nil {
		log.Error("Failed to load configuration", logger.Error(err))
		os.Exit(1)
	}

	if *validate {
		log.Info("Configuration is valid")
		os.Exit(0)
	}

	log.Info("Configuration loaded successfully",
		logger.String("config_file", *configFile))

	log = logger.New(logger.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
	})

	log.Debug("Debug logging enabled")

	eng, err := engine.New(cfg, log)
	if err != nil {
		log.Error("Failed to build decoder engine", logger.Error(err))
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	runErr := make(chan error, 1)
	go func() {
		runErr <- eng.Run(ctx)
	}()

	select {
	case sig := <-sigChan:
		log.Info("Received shutdown signal", logger.String("signal", sig.String()))
		cancel()
		<-runErr
	case err := <-runErr:
		if err != nil && err != context.Canceled {
			log.Error("Decoder engine stopped with error", logger.Error(err))
		}
	}

	log.Info("dsd-go stopped")
}
