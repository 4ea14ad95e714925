package dataset

import (
	"bytes"
	"encoding/csv"
	stderrors "errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"phish-lab/domain"
	"phish-lab/domain/mimetypes"
	"phish-lab/errors"
	"slices"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/samber/lo"
)

const (
	ColumnURL   = "URL"
	ColumnLabel = "Label"

	sniffSize = 3072
)

type Loader struct {
	log *slog.Logger
}

func NewLoader(log *slog.Logger) *Loader {
	return &Loader{log: log}
}

// LoadFile reads a CSV corpus from disk. The head of the file is sniffed first
// so that a binary or compressed file fails fast instead of as a CSV error.
func (l *Loader) LoadFile(path string) ([]domain.Sample, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errors.ErrCorpusUnreadable, err)
	}
	defer f.Close()

	head := make([]byte, sniffSize)
	n, err := io.ReadFull(f, head)
	if err != nil && !stderrors.Is(err, io.EOF) && !stderrors.Is(err, io.ErrUnexpectedEOF) {
		return nil, fmt.Errorf("%w: %w", errors.ErrCorpusUnreadable, err)
	}
	if n == 0 {
		return nil, fmt.Errorf("%w: %s is empty", errors.ErrEmptyCorpus, path)
	}
	head = head[:n]

	detected := mimetype.Detect(head).String()
	mime, ok := mimetypes.MatchesAny(detected, mimetypes.CorpusTypes...)
	if !ok {
		return nil, fmt.Errorf("%w: %s detected as %s", errors.ErrCorpusNotText, path, detected)
	}
	l.log.Debug("Corpus sniffed", "path", path, "mime", mime)

	return l.Read(io.MultiReader(bytes.NewReader(head), f))
}

// Read parses CSV rows with a header holding at least the URL and Label
// columns. Labels are coerced with domain.ParseLabel; values other than "good"
// and "bad" are reported once each at warning level.
func (l *Loader) Read(r io.Reader) ([]domain.Sample, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	header, err := reader.Read()
	if stderrors.Is(err, io.EOF) {
		return nil, errors.ErrEmptyCorpus
	}
	if err != nil {
		return nil, fmt.Errorf("%w: header: %w", errors.ErrMalformedCorpus, err)
	}
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], "\ufeff")
	}

	urlIdx := lo.IndexOf(header, ColumnURL)
	labelIdx := lo.IndexOf(header, ColumnLabel)
	if urlIdx < 0 || labelIdx < 0 {
		missing := lo.Filter([]string{ColumnURL, ColumnLabel}, func(column string, _ int) bool {
			return !lo.Contains(header, column)
		})
		return nil, fmt.Errorf("%w: %s", errors.ErrMissingColumns, strings.Join(missing, ", "))
	}
	width := max(urlIdx, labelIdx) + 1

	var samples []domain.Sample
	unexpected := make(map[string]int)
	for {
		record, err := reader.Read()
		if stderrors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %w", errors.ErrMalformedCorpus, err)
		}
		if len(record) < width {
			line, _ := reader.FieldPos(0)
			return nil, fmt.Errorf("%w: line %d has %d fields, need %d",
				errors.ErrMalformedCorpus, line, len(record), width)
		}

		raw := record[labelIdx]
		if !domain.IsExpectedRawLabel(raw) {
			unexpected[raw]++
		}
		samples = append(samples, domain.Sample{
			URL:   record[urlIdx],
			Label: domain.ParseLabel(raw),
		})
	}

	if len(samples) == 0 {
		return nil, errors.ErrEmptyCorpus
	}

	labels := lo.Keys(unexpected)
	slices.Sort(labels)
	for _, raw := range labels {
		l.log.Warn("Unexpected label coerced to legitimate", "label", raw, "count", unexpected[raw])
	}

	phishing := lo.CountBy(samples, func(s domain.Sample) bool {
		return s.Label == domain.Phishing
	})
	l.log.Info("Corpus loaded", "samples", len(samples), "phishing", phishing, "legitimate", len(samples)-phishing)
	return samples, nil
}

func URLs(samples []domain.Sample) []string {
	return lo.Map(samples, func(s domain.Sample, _ int) string {
		return s.URL
	})
}

func Labels(samples []domain.Sample) []domain.Label {
	return lo.Map(samples, func(s domain.Sample, _ int) domain.Label {
		return s.Label
	})
}
