package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"phish-lab/internal"
	"phish-lab/observability"
	"phish-lab/repositories"
	"phish-lab/report"
	"phish-lab/services"
	"syscall"

	"github.com/dgraph-io/badger/v4"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// 1. Configuration & Logger
	_ = godotenv.Load()
	config, err := internal.LoadConfig()
	if err != nil {
		return err
	}
	log := logs.GetLoggerFromString(config.LogLevel)

	// 2. Optional model registry
	var repository repositories.IModelRepository
	if config.BadgerFilepath != "" {
		db, err := badger.Open(badger.DefaultOptions(config.BadgerFilepath).
			WithLoggingLevel(badger.WARNING))
		if err != nil {
			return fmt.Errorf("database opening failed: %w", err)
		}
		defer func() {
			log.Debug("Closing BadgerDB...")
			_ = db.Close()
		}()
		repository = repositories.NewModelRepository(db, log)
	}

	// 3. Optional metrics
	var metrics *observability.TrainingMetrics
	if config.MetricsFilepath != "" {
		metrics = observability.NewTrainingMetrics()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	service, err := services.NewTrainingService(log, services.TrainingOptions{
		CorpusPath:  config.CorpusPath,
		ModelPath:   config.ModelPath,
		TestSize:    config.TestSize,
		SplitSeed:   config.SplitSeed,
		Alpha:       config.Alpha,
		MetricsPath: config.MetricsFilepath,
	}, repository, metrics)
	if err != nil {
		return err
	}

	// 4. Train
	result, err := service.Run(ctx)
	if err != nil {
		return err
	}
	return report.Write(os.Stdout, result.Summary(config.ModelPath), config.Colours)
}
