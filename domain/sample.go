package domain

// Label is the binary class of a URL. Its value doubles as the row index in
// the model parameters.
type Label int

const (
	Legitimate Label = iota
	Phishing
)

const (
	PhishingRawLabel   = "bad"
	LegitimateRawLabel = "good"
)

// ParseLabel maps a raw corpus label to a Label. Only the exact string "bad" is
// phishing, every other value is legitimate.
func ParseLabel(raw string) Label {
	if raw == PhishingRawLabel {
		return Phishing
	}
	return Legitimate
}

// IsExpectedRawLabel reports whether a raw label is one of the two values the
// corpus is supposed to contain.
func IsExpectedRawLabel(raw string) bool {
	return raw == PhishingRawLabel || raw == LegitimateRawLabel
}

func (l Label) String() string {
	switch l {
	case Legitimate:
		return "legitimate"
	case Phishing:
		return "phishing"
	default:
		return "unknown"
	}
}

func (l Label) Valid() bool {
	return l == Legitimate || l == Phishing
}

type Sample struct {
	URL   string
	Label Label
}
