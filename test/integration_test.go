package test

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"phish-lab/bayes"
	"phish-lab/domain"
	"phish-lab/features"
	"phish-lab/observability"
	"phish-lab/repositories"
	"phish-lab/serializer"
	"phish-lab/services"
	"testing"

	"github.com/dgraph-io/badger/v4"
	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
)

func Test_Scenario(t *testing.T) {
	ctx := context.Background()
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)

	db, err := badger.Open(badger.DefaultOptions(t.TempDir()).
		WithLoggingLevel(badger.ERROR))
	req.NoError(err)
	defer db.Close()
	repository := repositories.NewModelRepository(db, log)

	dir := t.TempDir()
	options := services.TrainingOptions{
		CorpusPath:  filepath.Join("testdata", "phishing_dataset.csv"),
		ModelPath:   filepath.Join(dir, "model.json"),
		TestSize:    0.2,
		SplitSeed:   42,
		Alpha:       1,
		MetricsPath: filepath.Join(dir, "phish_lab.prom"),
	}

	// 1. Train twice on the fixture corpus
	var results []services.TrainingResult
	for range 2 {
		service, err := services.NewTrainingService(log, options, repository, observability.NewTrainingMetrics())
		req.NoError(err)
		result, err := service.Run(ctx)
		req.NoError(err)
		results = append(results, result)
	}
	req.Equal(results[0].Document, results[1].Document)
	req.NotEqual(results[0].ID, results[1].ID)

	// 2. The registry keeps both runs, newest first
	records, err := repository.List(0)
	req.NoError(err)
	req.Len(records, 2)
	req.Equal(results[1].ID, records[0].ID)

	// 3. The latest document scores unseen URLs
	latest, err := repository.Latest()
	req.NoError(err)
	model, err := serializer.Decode(bytes.NewReader(latest.Document))
	req.NoError(err)
	extractor, err := features.NewExtractor()
	req.NoError(err)
	classifier, err := bayes.NewClassifier(extractor, model)
	req.NoError(err)

	label, _ := classifier.Classify("http://verify-login-bank.tk")
	req.Equal(domain.Phishing, label)
	label, _ = classifier.Classify("https://mysite.org")
	req.Equal(domain.Legitimate, label)

	// 4. The metrics textfile was exported
	content, err := os.ReadFile(options.MetricsPath)
	req.NoError(err)
	req.Contains(string(content), "phish_lab_vocabulary_size")
	req.Contains(string(content), `phish_lab_samples{class="phishing",split="train"}`)
}

func Test_ExternalCorpus(t *testing.T) {
	req := require.New(t)
	cfg, err := LoadConfig()
	req.NoError(err)
	if cfg.CorpusPath == "" {
		t.Skip("PHISH_CORPUS_PATH not set")
	}

	options := services.TrainingOptions{
		CorpusPath: cfg.CorpusPath,
		ModelPath:  filepath.Join(t.TempDir(), "model.json"),
		TestSize:   cfg.TestSize,
		SplitSeed:  cfg.SplitSeed,
		Alpha:      1,
	}
	service, err := services.NewTrainingService(logs.GetLoggerFromLevel(slog.LevelInfo), options, nil, nil)
	req.NoError(err)
	result, err := service.Run(context.Background())
	req.NoError(err)

	loaded, err := serializer.ReadFile(options.ModelPath)
	req.NoError(err)
	req.Equal(result.Model, loaded)
	req.True(loaded.Finite())
}
