package serializer

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"phish-lab/domain"
	"phish-lab/errors"
	"phish-lab/vectorizer"
)

// Document is the model format read by external scorers.
//
// Probabilities are natural logarithms (base e) stored as IEEE-754 doubles in
// their shortest round-trip decimal form. Index 0 of class_log_prior and the
// first row of feature_log_prob belong to legitimate URLs, index 1 to
// phishing. Columns follow feature_names.
type Document struct {
	FeatureNames   []string    `json:"feature_names"`
	ClassLogPrior  []float64   `json:"class_log_prior"`
	FeatureLogProb [][]float64 `json:"feature_log_prob"`
}

func Serialize(model domain.Model) (Document, error) {
	if err := validate(model); err != nil {
		return Document{}, err
	}
	doc := Document{
		FeatureNames:   append([]string(nil), model.FeatureNames...),
		ClassLogPrior:  model.ClassLogPrior[:],
		FeatureLogProb: make([][]float64, domain.NumClasses),
	}
	for c := 0; c < domain.NumClasses; c++ {
		doc.FeatureLogProb[c] = append([]float64(nil), model.FeatureLogProb[c]...)
	}
	return doc, nil
}

// Model converts a decoded document back into model parameters, checking the
// shape contract.
func (d Document) Model() (domain.Model, error) {
	if len(d.ClassLogPrior) != domain.NumClasses {
		return domain.Model{}, fmt.Errorf("%w: class_log_prior has %d entries", errors.ErrInvalidDocument, len(d.ClassLogPrior))
	}
	if len(d.FeatureLogProb) != domain.NumClasses {
		return domain.Model{}, fmt.Errorf("%w: feature_log_prob has %d rows", errors.ErrInvalidDocument, len(d.FeatureLogProb))
	}
	model := domain.Model{FeatureNames: append([]string(nil), d.FeatureNames...)}
	copy(model.ClassLogPrior[:], d.ClassLogPrior)
	for c := 0; c < domain.NumClasses; c++ {
		model.FeatureLogProb[c] = append([]float64(nil), d.FeatureLogProb[c]...)
	}
	if err := validate(model); err != nil {
		return domain.Model{}, fmt.Errorf("%w: %w", errors.ErrInvalidDocument, err)
	}
	return model, nil
}

func validate(model domain.Model) error {
	if _, err := vectorizer.NewVocabulary(model.FeatureNames); err != nil {
		return err
	}
	if !model.WellShaped() {
		return fmt.Errorf("%w: feature_log_prob rows must have %d columns", errors.ErrDimensionMismatch, model.VocabularySize())
	}
	if !model.Finite() {
		return errors.ErrNonFiniteParameter
	}
	return nil
}

// Marshal renders the document of model as JSON, newline terminated.
func Marshal(model domain.Model) ([]byte, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, model); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func Encode(w io.Writer, model domain.Model) error {
	doc, err := Serialize(model)
	if err != nil {
		return err
	}
	return json.NewEncoder(w).Encode(doc)
}

// Decode reads a document. Unknown top-level fields are rejected.
func Decode(r io.Reader) (domain.Model, error) {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	var doc Document
	if err := dec.Decode(&doc); err != nil {
		return domain.Model{}, fmt.Errorf("%w: %w", errors.ErrInvalidDocument, err)
	}
	return doc.Model()
}
