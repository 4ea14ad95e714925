package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseLabel(t *testing.T) {
	tests := []struct {
		raw      string
		expected Label
	}{
		{"bad", Phishing},
		{"good", Legitimate},
		{"Bad", Legitimate},
		{" bad", Legitimate},
		{"", Legitimate},
		{"phishing", Legitimate},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			require.Equal(t, tt.expected, ParseLabel(tt.raw))
		})
	}
}

func TestIsExpectedRawLabel(t *testing.T) {
	req := require.New(t)
	req.True(IsExpectedRawLabel("bad"))
	req.True(IsExpectedRawLabel("good"))
	req.False(IsExpectedRawLabel("BAD"))
	req.False(IsExpectedRawLabel("malicious"))
}

func TestEvaluation_Metrics(t *testing.T) {
	req := require.New(t)
	var e Evaluation

	// Given nothing recorded, ratios are undefined
	_, ok := e.Accuracy()
	req.False(ok)

	e.Record(Phishing, Phishing)
	e.Record(Phishing, Legitimate)
	e.Record(Legitimate, Legitimate)
	e.Record(Legitimate, Legitimate)
	e.Record(Legitimate, Phishing)

	req.Equal(Evaluation{TruePositive: 1, FalsePositive: 1, TrueNegative: 2, FalseNegative: 1}, e)
	req.Equal(5, e.Total())

	accuracy, ok := e.Accuracy()
	req.True(ok)
	req.InDelta(0.6, accuracy, 1e-12)

	precision, ok := e.Precision()
	req.True(ok)
	req.InDelta(0.5, precision, 1e-12)

	recall, ok := e.Recall()
	req.True(ok)
	req.InDelta(0.5, recall, 1e-12)
}

func TestModel_Checks(t *testing.T) {
	req := require.New(t)
	model := Model{
		FeatureNames:   []string{"a", "b"},
		ClassLogPrior:  [NumClasses]float64{-0.5, -1},
		FeatureLogProb: [NumClasses][]float64{{-1, -2}, {-3, -4}},
	}
	req.True(model.WellShaped())
	req.True(model.Finite())
	req.Equal(2, model.VocabularySize())

	model.FeatureLogProb[1] = []float64{-1}
	req.False(model.WellShaped())
}
