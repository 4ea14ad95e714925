package bayes

import (
	"fmt"
	"phish-lab/domain"
	"phish-lab/errors"
	"phish-lab/features"
	"phish-lab/vectorizer"
)

// Scores returns class_log_prior[c] + sum_j x_j * feature_log_prob[c][j] for
// both classes. Terms are accumulated onto the prior in index order; another
// runtime must keep that order to reproduce the scores bit for bit.
func Scores(model domain.Model, counts []int) ([domain.NumClasses]float64, error) {
	var scores [domain.NumClasses]float64
	if len(counts) != model.VocabularySize() {
		return scores, fmt.Errorf("%w: %d counts for %d tokens",
			errors.ErrDimensionMismatch, len(counts), model.VocabularySize())
	}
	for c := 0; c < domain.NumClasses; c++ {
		score := model.ClassLogPrior[c]
		for j, x := range counts {
			score += float64(x) * model.FeatureLogProb[c][j]
		}
		scores[c] = score
	}
	return scores, nil
}

// Predict picks the class with the highest score. Ties go to Legitimate.
func Predict(model domain.Model, counts []int) (domain.Label, [domain.NumClasses]float64, error) {
	scores, err := Scores(model, counts)
	if err != nil {
		return domain.Legitimate, scores, err
	}
	if scores[domain.Phishing] > scores[domain.Legitimate] {
		return domain.Phishing, scores, nil
	}
	return domain.Legitimate, scores, nil
}

// Classifier scores raw URLs against a trained model, the same way an
// external runtime does from the serialized document.
type Classifier struct {
	extractor  *features.Extractor
	vocabulary vectorizer.Vocabulary
	model      domain.Model
}

func NewClassifier(extractor *features.Extractor, model domain.Model) (*Classifier, error) {
	if !model.WellShaped() {
		return nil, fmt.Errorf("%w: parameters do not match the vocabulary", errors.ErrDimensionMismatch)
	}
	vocabulary, err := vectorizer.NewVocabulary(model.FeatureNames)
	if err != nil {
		return nil, err
	}
	return &Classifier{extractor: extractor, vocabulary: vocabulary, model: model}, nil
}

func (c *Classifier) Classify(url string) (domain.Label, [domain.NumClasses]float64) {
	// Shapes are checked in NewClassifier, Predict cannot fail here.
	label, scores, _ := Predict(c.model, c.vocabulary.Transform(c.extractor.Extract(url)))
	return label, scores
}
