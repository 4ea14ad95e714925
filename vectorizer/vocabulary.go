package vectorizer

import (
	"fmt"
	"phish-lab/errors"
	"slices"

	"github.com/samber/lo"
)

// Vocabulary is a frozen token to index mapping. Tokens are sorted
// lexicographically and a token's position is its index. A Vocabulary never
// grows after it is built.
type Vocabulary struct {
	names []string
	index map[string]int
}

// Build collects the distinct tokens of the training corpus.
func Build(corpus [][]string) (Vocabulary, error) {
	names := lo.Uniq(lo.Flatten(corpus))
	if len(names) == 0 {
		return Vocabulary{}, errors.ErrEmptyVocabulary
	}
	slices.Sort(names)
	return newVocabulary(names), nil
}

// NewVocabulary rebuilds a vocabulary from serialized feature names, which
// must already be sorted and unique.
func NewVocabulary(names []string) (Vocabulary, error) {
	if len(names) == 0 {
		return Vocabulary{}, errors.ErrEmptyVocabulary
	}
	for i := 1; i < len(names); i++ {
		if names[i-1] >= names[i] {
			return Vocabulary{}, fmt.Errorf("%w: %q at %d follows %q", errors.ErrInvalidVocabulary, names[i], i, names[i-1])
		}
	}
	return newVocabulary(slices.Clone(names)), nil
}

func newVocabulary(names []string) Vocabulary {
	index := make(map[string]int, len(names))
	for i, name := range names {
		index[name] = i
	}
	return Vocabulary{names: names, index: index}
}

func (v Vocabulary) Size() int {
	return len(v.names)
}

// Names returns a copy of the tokens in index order.
func (v Vocabulary) Names() []string {
	return slices.Clone(v.names)
}

func (v Vocabulary) Index(token string) (int, bool) {
	i, ok := v.index[token]
	return i, ok
}

// Transform counts the occurrences of each vocabulary token. Unknown tokens
// are dropped.
func (v Vocabulary) Transform(tokens []string) []int {
	counts := make([]int, len(v.names))
	for _, token := range tokens {
		if i, ok := v.index[token]; ok {
			counts[i]++
		}
	}
	return counts
}

func (v Vocabulary) TransformAll(corpus [][]string) [][]int {
	return lo.Map(corpus, func(tokens []string, _ int) []int {
		return v.Transform(tokens)
	})
}
