package bayes

import (
	"fmt"
	"log/slog"
	"math"
	"phish-lab/domain"
	"phish-lab/errors"
	"phish-lab/vectorizer"
)

// DefaultAlpha is Laplace smoothing.
const DefaultAlpha = 1.0

// Trainer fits a multinomial Naive Bayes model on count vectors.
type Trainer struct {
	log   *slog.Logger
	alpha float64
}

func NewTrainer(log *slog.Logger, alpha float64) (*Trainer, error) {
	if !(alpha > 0) || math.IsInf(alpha, 0) {
		return nil, fmt.Errorf("%w: %v", errors.ErrInvalidSmoothing, alpha)
	}
	return &Trainer{log: log, alpha: alpha}, nil
}

// Fit computes
//
//	class_log_prior[c]     = log(N_c / N)
//	feature_log_prob[c][j] = log((F_cj + alpha) / (T_c + alpha*|V|))
//
// where F_cj sums token j over the samples of class c and T_c = sum_j F_cj.
// A class without samples is an error rather than a -Inf prior.
func (t *Trainer) Fit(vocabulary vectorizer.Vocabulary, vectors [][]int, labels []domain.Label) (domain.Model, error) {
	size := vocabulary.Size()
	if size == 0 {
		return domain.Model{}, errors.ErrEmptyVocabulary
	}
	if len(vectors) == 0 {
		return domain.Model{}, errors.ErrEmptyTrainingSet
	}
	if len(vectors) != len(labels) {
		return domain.Model{}, fmt.Errorf("%w: %d vectors for %d labels",
			errors.ErrInvalidTrainingData, len(vectors), len(labels))
	}

	var classCount [domain.NumClasses]int
	var featureCount [domain.NumClasses][]int
	for c := range featureCount {
		featureCount[c] = make([]int, size)
	}

	for i, vector := range vectors {
		label := labels[i]
		if !label.Valid() {
			return domain.Model{}, fmt.Errorf("%w: label %d at row %d", errors.ErrInvalidTrainingData, label, i)
		}
		if len(vector) != size {
			return domain.Model{}, fmt.Errorf("%w: row %d has %d columns, vocabulary has %d",
				errors.ErrDimensionMismatch, i, len(vector), size)
		}
		classCount[label]++
		for j, count := range vector {
			if count < 0 {
				return domain.Model{}, fmt.Errorf("%w: negative count at row %d column %d",
					errors.ErrInvalidTrainingData, i, j)
			}
			featureCount[label][j] += count
		}
	}

	model := domain.Model{FeatureNames: vocabulary.Names()}
	total := float64(len(vectors))
	for c := 0; c < domain.NumClasses; c++ {
		if classCount[c] == 0 {
			return domain.Model{}, fmt.Errorf("%w: %s", errors.ErrDegenerateClass, domain.Label(c))
		}
		model.ClassLogPrior[c] = math.Log(float64(classCount[c]) / total)

		tokens := 0
		for _, count := range featureCount[c] {
			tokens += count
		}
		denominator := float64(tokens) + t.alpha*float64(size)

		row := make([]float64, size)
		for j, count := range featureCount[c] {
			row[j] = math.Log((float64(count) + t.alpha) / denominator)
		}
		model.FeatureLogProb[c] = row

		t.log.Debug("Class fitted",
			"class", domain.Label(c).String(),
			"samples", classCount[c],
			"tokens", tokens)
	}

	if !model.Finite() {
		return domain.Model{}, errors.ErrNonFiniteParameter
	}

	t.log.Info("Model trained", "samples", len(vectors), "vocabulary", size, "alpha", t.alpha)
	return model, nil
}
