package errors

import "fmt"

var (
	ErrCorpusUnreadable = fmt.Errorf("corpus cannot be read")
	ErrCorpusNotText    = fmt.Errorf("corpus is not a text file")
	ErrEmptyCorpus      = fmt.Errorf("corpus has no samples")
	ErrMissingColumns   = fmt.Errorf("corpus is missing a required column")
	ErrMalformedCorpus  = fmt.Errorf("corpus record is malformed")

	ErrInvalidSplit = fmt.Errorf("invalid train/test split parameters")

	ErrEmptyVocabulary   = fmt.Errorf("vocabulary is empty")
	ErrInvalidVocabulary = fmt.Errorf("vocabulary must be sorted and unique")

	ErrEmptyTrainingSet    = fmt.Errorf("no training samples")
	ErrInvalidTrainingData = fmt.Errorf("invalid training data")
	ErrDegenerateClass     = fmt.Errorf("a class has no training samples")
	ErrInvalidSmoothing    = fmt.Errorf("smoothing constant must be positive and finite")
	ErrNonFiniteParameter  = fmt.Errorf("model parameter is not finite")
	ErrDimensionMismatch   = fmt.Errorf("count vector does not match vocabulary size")

	ErrSerialization   = fmt.Errorf("model document cannot be written")
	ErrInvalidDocument = fmt.Errorf("model document is invalid")

	ErrModelNotFound = fmt.Errorf("no model stored")

	ErrInvalidConfig = fmt.Errorf("invalid configuration")
)
