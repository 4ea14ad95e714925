package domain

import "math"

const NumClasses = 2

// Model holds the parameters of a trained multinomial Naive Bayes classifier.
// All probabilities are natural logarithms. Rows of FeatureLogProb are indexed
// by Label and columns by the position of the token in FeatureNames.
type Model struct {
	FeatureNames   []string
	ClassLogPrior  [NumClasses]float64
	FeatureLogProb [NumClasses][]float64
}

// VocabularySize returns |V|.
func (m Model) VocabularySize() int {
	return len(m.FeatureNames)
}

// Finite reports whether every parameter is a finite number.
func (m Model) Finite() bool {
	for c := 0; c < NumClasses; c++ {
		if math.IsNaN(m.ClassLogPrior[c]) || math.IsInf(m.ClassLogPrior[c], 0) {
			return false
		}
		for _, v := range m.FeatureLogProb[c] {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return false
			}
		}
	}
	return true
}

// WellShaped reports whether both rows have one column per vocabulary token.
func (m Model) WellShaped() bool {
	for c := 0; c < NumClasses; c++ {
		if len(m.FeatureLogProb[c]) != len(m.FeatureNames) {
			return false
		}
	}
	return true
}
