package bayes

import (
	"math"
	"phish-lab/domain"
	"phish-lab/errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestClassifier_ScenarioURL(t *testing.T) {
	req := require.New(t)
	model, extractor := fitScenario(t)
	classifier, err := NewClassifier(extractor, model)
	req.NoError(err)

	// Tokens: login, verify, bank, verify, suspicious_tld
	label, scores := classifier.Classify("http://verify-login-bank.tk")

	legitimate := math.Log(0.5) + math.Log(1.0/9) + math.Log(2.0/9) + math.Log(1.0/9) + 2*math.Log(1.0/9)
	phishing := math.Log(0.5) + math.Log(2.0/16) + math.Log(2.0/16) + math.Log(2.0/16) + 2*math.Log(5.0/16)
	req.InDelta(legitimate, scores[domain.Legitimate], 1e-12)
	req.InDelta(phishing, scores[domain.Phishing], 1e-12)
	req.Equal(domain.Phishing, label)

	// Scoring again gives the very same numbers
	again, againScores := classifier.Classify("http://verify-login-bank.tk")
	req.Equal(label, again)
	req.Equal(scores, againScores)
}

func TestPredict_TieGoesToLegitimate(t *testing.T) {
	req := require.New(t)
	model := domain.Model{
		FeatureNames:   []string{"login"},
		ClassLogPrior:  [domain.NumClasses]float64{math.Log(0.5), math.Log(0.5)},
		FeatureLogProb: [domain.NumClasses][]float64{{0}, {0}},
	}

	label, scores, err := Predict(model, []int{3})
	req.NoError(err)
	req.Equal(scores[0], scores[1])
	req.Equal(domain.Legitimate, label)
}

func TestScores_NoTokensIsPrior(t *testing.T) {
	req := require.New(t)
	model, _ := fitScenario(t)

	scores, err := Scores(model, make([]int, model.VocabularySize()))
	req.NoError(err)
	req.Equal(model.ClassLogPrior, scores)
}

func TestScores_DimensionMismatch(t *testing.T) {
	model, _ := fitScenario(t)
	_, err := Scores(model, []int{1, 2})
	require.ErrorIs(t, err, errors.ErrDimensionMismatch)
}

func TestClassifier_UnseenTokensIgnored(t *testing.T) {
	req := require.New(t)
	model, extractor := fitScenario(t)
	classifier, err := NewClassifier(extractor, model)
	req.NoError(err)

	// payment and transaction are not in the scenario vocabulary
	label, scores := classifier.Classify("http://payment-transaction.example")
	req.Equal(model.ClassLogPrior, scores)
	req.Equal(domain.Legitimate, label)
}

func TestNewClassifier_RejectsMalformedModel(t *testing.T) {
	req := require.New(t)
	model, extractor := fitScenario(t)

	model.FeatureLogProb[domain.Phishing] = model.FeatureLogProb[domain.Phishing][:3]
	_, err := NewClassifier(extractor, model)
	req.ErrorIs(err, errors.ErrDimensionMismatch)
}
