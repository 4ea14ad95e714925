package mimetypes

import "mime"

type MIME string

const (
	Unknown   MIME = "unknown"
	TextPlain MIME = "text/plain"
	TextCSV   MIME = "text/csv"
	TextTSV   MIME = "text/tab-separated-values"
)

// CorpusTypes are the sniffed types accepted for a training corpus. Small CSV
// files are often sniffed as plain text.
var CorpusTypes = []MIME{TextCSV, TextPlain}

func Matches(detected string, expected MIME) (MIME, bool) {
	mt, _, err := mime.ParseMediaType(detected)
	if err != nil {
		return Unknown, false
	}
	return expected, mt == string(expected)
}

// MatchesAny returns the first expected type the detected one matches.
func MatchesAny(detected string, expected ...MIME) (MIME, bool) {
	for _, e := range expected {
		if m, ok := Matches(detected, e); ok {
			return m, true
		}
	}
	return Unknown, false
}
