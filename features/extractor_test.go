package features

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func newExtractor(t *testing.T) *Extractor {
	t.Helper()
	extractor, err := NewExtractor()
	require.NoError(t, err)
	return extractor
}

func TestExtractor_Extract(t *testing.T) {
	extractor := newExtractor(t)

	tests := []struct {
		name     string
		url      string
		expected []string
	}{
		{
			name:     "Single keyword",
			url:      "http://example.com/login",
			expected: []string{"login"},
		},
		{
			name:     "Duplicated keyword entry emits verify twice",
			url:      "http://secure-bank-verify.tk",
			expected: []string{"verify", "bank", "secure", "verify", "suspicious_tld"},
		},
		{
			name:     "Https only",
			url:      "https://mysite.org",
			expected: []string{"has_https"},
		},
		{
			name:     "Dotted quad with keywords",
			url:      "http://192.168.0.1/login/verify",
			expected: []string{"login", "verify", "verify", "has_ip"},
		},
		{
			name:     "Keywords in list order whatever their position in the url",
			url:      "http://verify-login-bank.tk",
			expected: []string{"login", "verify", "bank", "verify", "suspicious_tld"},
		},
		{
			name:     "Case insensitive keywords and scheme",
			url:      "HTTPS://PayPal.Example.INFO/SignIn?Update=1",
			expected: []string{"signin", "update", "suspicious_tld", "has_https"},
		},
		{
			name:     "Overlapping keywords are all found",
			url:      "http://x.com/accountransaction",
			expected: []string{"account", "transaction"},
		},
		{
			name:     "Several suspicious tlds give one token",
			url:      "http://a.xyz.tk.pw",
			expected: []string{"suspicious_tld"},
		},
		{
			name:     "Octets are not bounded",
			url:      "http://999.999.999.999/",
			expected: []string{"has_ip"},
		},
		{
			name:     "Three groups is not a dotted quad",
			url:      "http://10.0.0/",
			expected: []string{},
		},
		{
			name:     "Empty url",
			url:      "",
			expected: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, extractor.Extract(tt.url))
		})
	}
}

func TestExtractor_LoginAlwaysDetected(t *testing.T) {
	req := require.New(t)
	extractor := newExtractor(t)
	rng := rand.New(rand.NewPCG(1, 2))
	alphabet := []rune("abcdefghijklmnopqrstuvwxyz0123456789./-_?=&:ABCXYZ")

	random := func() string {
		var b strings.Builder
		n := rng.IntN(20)
		for i := 0; i < n; i++ {
			b.WriteRune(alphabet[rng.IntN(len(alphabet))])
		}
		return b.String()
	}

	for i := 0; i < 500; i++ {
		url := random() + "login" + random()
		req.Contains(extractor.Extract(url), "login", url)
	}
}

func TestExtractor_DottedQuadAlwaysDetected(t *testing.T) {
	req := require.New(t)
	extractor := newExtractor(t)
	rng := rand.New(rand.NewPCG(3, 4))

	for i := 0; i < 500; i++ {
		url := fmt.Sprintf("http://%d.%d.%d.%d/path",
			rng.IntN(1000), rng.IntN(1000), rng.IntN(1000), rng.IntN(1000))
		req.Contains(extractor.Extract(url), TokenHasIP, url)
	}
}

func TestExtractor_Deterministic(t *testing.T) {
	req := require.New(t)
	extractor := newExtractor(t)
	other := newExtractor(t)

	urls := []string{
		"http://secure-bank-verify.tk",
		"https://account-update.biz/confirm/password",
		"http://10.1.2.3/transaction/payment",
		"",
	}
	for _, url := range urls {
		first := extractor.Extract(url)
		req.Equal(first, extractor.Extract(url))
		req.Equal(first, other.Extract(url))
	}
}

func TestExtractAll_PreservesOrder(t *testing.T) {
	req := require.New(t)
	extractor := newExtractor(t)

	got := extractor.ExtractAll([]string{"https://a.org", "http://b.com/login"})
	req.Equal([][]string{{"has_https"}, {"login"}}, got)
}

func TestJoin(t *testing.T) {
	require.Equal(t, "login verify has_ip", Join([]string{"login", "verify", "has_ip"}))
	require.Equal(t, "", Join(nil))
}

func TestVocabulary_ClosedTokenSet(t *testing.T) {
	req := require.New(t)
	vocabulary := Vocabulary()

	req.Len(vocabulary, 20)
	req.IsIncreasing(vocabulary)
	req.Contains(vocabulary, TokenHasIP)
	req.Contains(vocabulary, TokenSuspiciousTLD)
	req.Contains(vocabulary, TokenHasHTTPS)
	req.Len(Keywords, 18, "the keyword list itself is untouched")
}
