package domain

// Evaluation is the confusion matrix of a model on the held-out split, with
// phishing as the positive class.
type Evaluation struct {
	TruePositive  int
	FalsePositive int
	TrueNegative  int
	FalseNegative int
}

func (e *Evaluation) Record(actual, predicted Label) {
	switch {
	case actual == Phishing && predicted == Phishing:
		e.TruePositive++
	case actual == Legitimate && predicted == Phishing:
		e.FalsePositive++
	case actual == Legitimate && predicted == Legitimate:
		e.TrueNegative++
	default:
		e.FalseNegative++
	}
}

func (e Evaluation) Total() int {
	return e.TruePositive + e.FalsePositive + e.TrueNegative + e.FalseNegative
}

// Accuracy returns false when nothing was evaluated.
func (e Evaluation) Accuracy() (float64, bool) {
	return ratio(e.TruePositive+e.TrueNegative, e.Total())
}

func (e Evaluation) Precision() (float64, bool) {
	return ratio(e.TruePositive, e.TruePositive+e.FalsePositive)
}

func (e Evaluation) Recall() (float64, bool) {
	return ratio(e.TruePositive, e.TruePositive+e.FalseNegative)
}

func ratio(num, den int) (float64, bool) {
	if den == 0 {
		return 0, false
	}
	return float64(num) / float64(den), true
}
