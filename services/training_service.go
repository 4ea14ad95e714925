package services

import (
	"context"
	"fmt"
	"log/slog"
	"phish-lab/bayes"
	"phish-lab/dataset"
	"phish-lab/domain"
	"phish-lab/features"
	"phish-lab/observability"
	"phish-lab/report"
	"phish-lab/repositories"
	"phish-lab/serializer"
	"phish-lab/vectorizer"
	"time"

	"github.com/google/uuid"
)

type ITrainingService interface {
	Run(ctx context.Context) (TrainingResult, error)
}

type TrainingOptions struct {
	CorpusPath  string
	ModelPath   string
	TestSize    float64
	SplitSeed   uint64
	Alpha       float64
	MetricsPath string
}

// TrainingService runs the batch pipeline: load, extract, split, build the
// vocabulary, vectorize, fit, serialize, evaluate. Registry and metrics are
// optional and only touched after the document is on disk.
type TrainingService struct {
	log        *slog.Logger
	options    TrainingOptions
	loader     *dataset.Loader
	extractor  *features.Extractor
	trainer    *bayes.Trainer
	repository repositories.IModelRepository
	metrics    *observability.TrainingMetrics
	now        func() time.Time
}

type TrainingResult struct {
	ID           uuid.UUID
	TrainedAt    time.Time
	Model        domain.Model
	Document     []byte
	TrainSamples []domain.Sample
	TestSamples  []domain.Sample
	Evaluation   domain.Evaluation
}

func NewTrainingService(
	log *slog.Logger,
	options TrainingOptions,
	repository repositories.IModelRepository,
	metrics *observability.TrainingMetrics,
) (*TrainingService, error) {
	extractor, err := features.NewExtractor()
	if err != nil {
		return nil, err
	}
	trainer, err := bayes.NewTrainer(log, options.Alpha)
	if err != nil {
		return nil, err
	}
	return &TrainingService{
		log:        log,
		options:    options,
		loader:     dataset.NewLoader(log),
		extractor:  extractor,
		trainer:    trainer,
		repository: repository,
		metrics:    metrics,
		now:        time.Now,
	}, nil
}

func (s *TrainingService) Run(ctx context.Context) (TrainingResult, error) {
	start := s.now()

	samples, err := s.loader.LoadFile(s.options.CorpusPath)
	if err != nil {
		return TrainingResult{}, err
	}
	start = s.stageDone(ctx, "load", start)

	tokens := s.extractor.ExtractAll(dataset.URLs(samples))
	start = s.stageDone(ctx, "extract", start)
	if err = ctx.Err(); err != nil {
		return TrainingResult{}, err
	}

	trainIdx, testIdx, err := dataset.SplitIndices(len(samples), s.options.TestSize, s.options.SplitSeed)
	if err != nil {
		return TrainingResult{}, err
	}
	trainSamples, testSamples := dataset.Pick(samples, trainIdx), dataset.Pick(samples, testIdx)
	trainTokens, testTokens := dataset.Pick(tokens, trainIdx), dataset.Pick(tokens, testIdx)
	s.log.Debug("Corpus split", "train", len(trainSamples), "test", len(testSamples), "seed", s.options.SplitSeed)

	vocabulary, err := vectorizer.Build(trainTokens)
	if err != nil {
		return TrainingResult{}, err
	}
	vectors := vocabulary.TransformAll(trainTokens)
	start = s.stageDone(ctx, "vectorize", start)
	if err = ctx.Err(); err != nil {
		return TrainingResult{}, err
	}

	model, err := s.trainer.Fit(vocabulary, vectors, dataset.Labels(trainSamples))
	if err != nil {
		return TrainingResult{}, err
	}
	start = s.stageDone(ctx, "fit", start)
	if err = ctx.Err(); err != nil {
		return TrainingResult{}, err
	}

	document, err := serializer.Save(s.options.ModelPath, model)
	if err != nil {
		return TrainingResult{}, err
	}
	s.log.Info("Model written", "path", s.options.ModelPath, "bytes", len(document))
	start = s.stageDone(ctx, "serialize", start)

	evaluation, err := evaluate(model, vocabulary, testTokens, dataset.Labels(testSamples))
	if err != nil {
		return TrainingResult{}, err
	}
	s.stageDone(ctx, "evaluate", start)

	result := TrainingResult{
		ID:           uuid.New(),
		TrainedAt:    s.now().UTC(),
		Model:        model,
		Document:     document,
		TrainSamples: trainSamples,
		TestSamples:  testSamples,
		Evaluation:   evaluation,
	}
	s.log.Info(report.AccuracyLine(evaluation), "id", result.ID, "test", evaluation.Total())

	if err = s.register(result); err != nil {
		return result, err
	}
	if err = s.exportMetrics(result); err != nil {
		return result, err
	}
	return result, nil
}

// Summary describes the run for the report table.
func (r TrainingResult) Summary(modelPath string) report.Summary {
	return report.Summary{
		ModelPath:      modelPath,
		TrainSamples:   len(r.TrainSamples),
		TestSamples:    len(r.TestSamples),
		VocabularySize: r.Model.VocabularySize(),
		Evaluation:     r.Evaluation,
	}
}

func evaluate(model domain.Model, vocabulary vectorizer.Vocabulary, tokens [][]string, labels []domain.Label) (domain.Evaluation, error) {
	var evaluation domain.Evaluation
	for i, row := range tokens {
		predicted, _, err := bayes.Predict(model, vocabulary.Transform(row))
		if err != nil {
			return domain.Evaluation{}, err
		}
		evaluation.Record(labels[i], predicted)
	}
	return evaluation, nil
}

func (s *TrainingService) register(result TrainingResult) error {
	if s.repository == nil {
		return nil
	}
	accuracy, _ := result.Evaluation.Accuracy()
	err := s.repository.Store(repositories.ModelRecord{
		ID:        result.ID,
		TrainedAt: result.TrainedAt,
		Accuracy:  accuracy,
		Samples:   len(result.TrainSamples) + len(result.TestSamples),
		Document:  result.Document,
	})
	if err != nil {
		return fmt.Errorf("model registry: %w", err)
	}
	return nil
}

func (s *TrainingService) exportMetrics(result TrainingResult) error {
	if s.metrics == nil {
		return nil
	}
	s.metrics.ObserveSamples("train", result.TrainSamples)
	s.metrics.ObserveSamples("test", result.TestSamples)
	s.metrics.SetVocabularySize(result.Model.VocabularySize())
	if accuracy, ok := result.Evaluation.Accuracy(); ok {
		s.metrics.SetAccuracy(accuracy)
	}
	if err := s.metrics.SampleProcessMemory(); err != nil {
		s.log.Warn("Process memory unavailable", "err", err)
	}
	s.metrics.MarkCompleted(result.TrainedAt)

	if s.options.MetricsPath == "" {
		return nil
	}
	if err := s.metrics.WriteTextfile(s.options.MetricsPath); err != nil {
		return fmt.Errorf("metrics textfile: %w", err)
	}
	return nil
}

// stageDone records how long a stage took and returns the start of the next.
func (s *TrainingService) stageDone(ctx context.Context, stage string, start time.Time) time.Time {
	now := s.now()
	elapsed := now.Sub(start)
	if s.metrics != nil {
		s.metrics.ObserveStage(stage, elapsed)
	}
	s.log.DebugContext(ctx, "Stage done", "stage", stage, "elapsed", elapsed)
	return now
}
