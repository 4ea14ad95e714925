package features

import (
	"regexp"
	"slices"
	"strings"

	goahocorasick "github.com/anknown/ahocorasick"
	"github.com/samber/lo"
)

const (
	TokenHasIP         = "has_ip"
	TokenSuspiciousTLD = "suspicious_tld"
	TokenHasHTTPS      = "has_https"
)

// Keywords is walked entry by entry when emitting tokens. "verify" is listed
// twice, so a URL containing it yields the token twice.
var Keywords = []string{
	"login", "signin", "verify", "account", "bank", "secure", "update",
	"confirm", "password", "security", "alert", "suspicious", "unusual",
	"verify", "validate", "authenticate", "payment", "transaction",
}

var SuspiciousTLDs = []string{".xyz", ".tk", ".pw", ".info", ".biz"}

// dottedQuad is unanchored and does not bound octets to 0-255.
var dottedQuad = regexp.MustCompile(`\d{1,3}\.\d{1,3}\.\d{1,3}\.\d{1,3}`)

// Extractor turns a raw URL into its ordered list of feature tokens.
// It holds no mutable state and can be shared.
type Extractor struct {
	matcher  *goahocorasick.Machine
	keywords []string
}

// NewExtractor builds the keyword automaton. The double-array trie behind it
// needs unique keys in sorted order.
func NewExtractor() (*Extractor, error) {
	patterns := lo.Uniq(Keywords)
	slices.Sort(patterns)

	m := new(goahocorasick.Machine)
	if err := m.Build(lo.Map(patterns, func(k string, _ int) []rune {
		return []rune(k)
	})); err != nil {
		return nil, err
	}
	return &Extractor{matcher: m, keywords: slices.Clone(Keywords)}, nil
}

// Extract returns the tokens of url in a fixed order: keyword hits in list
// order, then has_ip, suspicious_tld and has_https.
func (e *Extractor) Extract(url string) []string {
	lower := strings.ToLower(url)
	found := e.keywordsIn(lower)

	tokens := make([]string, 0, len(e.keywords)+3)
	for _, keyword := range e.keywords {
		if _, ok := found[keyword]; ok {
			tokens = append(tokens, keyword)
		}
	}

	if dottedQuad.MatchString(url) {
		tokens = append(tokens, TokenHasIP)
	}
	if lo.ContainsBy(SuspiciousTLDs, func(tld string) bool {
		return strings.Contains(lower, tld)
	}) {
		tokens = append(tokens, TokenSuspiciousTLD)
	}
	if strings.Contains(lower, "https") {
		tokens = append(tokens, TokenHasHTTPS)
	}
	return tokens
}

// ExtractAll applies Extract to every URL, preserving order.
func (e *Extractor) ExtractAll(urls []string) [][]string {
	return lo.Map(urls, func(url string, _ int) []string {
		return e.Extract(url)
	})
}

// keywordsIn returns the distinct keywords occurring anywhere in lower.
func (e *Extractor) keywordsIn(lower string) map[string]struct{} {
	found := make(map[string]struct{})
	if lower == "" {
		return found
	}
	for _, term := range e.matcher.MultiPatternSearch([]rune(lower), false) {
		found[string(term.Word)] = struct{}{}
	}
	return found
}

// Join renders tokens the way they are shown in diagnostics: space separated.
func Join(tokens []string) string {
	return strings.Join(tokens, " ")
}

// Vocabulary returns every token the extractor can emit, sorted and unique.
func Vocabulary() []string {
	all := append(lo.Uniq(Keywords), TokenHasIP, TokenSuspiciousTLD, TokenHasHTTPS)
	slices.Sort(all)
	return all
}
