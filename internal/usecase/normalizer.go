package usecase

import (
	"math"
	"strconv"
	"strings"
)

// defaultCurrencyTokens are the currency markers stripped before parsing.
// Longer tokens first so "AED" is removed whole.
var defaultCurrencyTokens = []string{"AED", "$"}

// NumericNormalizer converts locale/currency-formatted report cells into
// numbers. Best-effort by contract: a cell that still fails to parse after
// cleaning becomes 0, never an error. Malformed cells in a 50k-row export
// must not abort the whole reconciliation.
type NumericNormalizer struct {
	currencyTokens []string
	stripPercent   bool
}

// NewNumericNormalizer creates a normalizer with the given currency token
// set. An empty set falls back to the defaults (AED, $).
func NewNumericNormalizer(currencyTokens []string, stripPercent bool) *NumericNormalizer {
	if len(currencyTokens) == 0 {
		currencyTokens = defaultCurrencyTokens
	}
	return &NumericNormalizer{
		currencyTokens: currencyTokens,
		stripPercent:   stripPercent,
	}
}

// Normalize parses a raw cell into a float64.
// Cleaning order: currency tokens, non-breaking spaces, thousands
// separators, surrounding whitespace, then an optional trailing percent
// sign. NaN/Inf parses are coerced to 0 so no sentinel leaks into
// downstream arithmetic.
func (n *NumericNormalizer) Normalize(cell string) float64 {
	if cell == "" {
		return 0
	}

	cleaned := cell
	for _, token := range n.currencyTokens {
		cleaned = removeFold(cleaned, token)
	}
	cleaned = strings.ReplaceAll(cleaned, " ", "")
	cleaned = strings.ReplaceAll(cleaned, ",", "")
	cleaned = strings.TrimSpace(cleaned)
	if n.stripPercent {
		cleaned = strings.TrimSpace(strings.TrimSuffix(cleaned, "%"))
	}

	value, err := strconv.ParseFloat(cleaned, 64)
	if err != nil || math.IsNaN(value) || math.IsInf(value, 0) {
		return 0
	}
	return value
}

// removeFold removes every case-insensitive occurrence of token from s.
func removeFold(s, token string) string {
	if token == "" {
		return s
	}
	lower := strings.ToLower(s)
	lowerToken := strings.ToLower(token)
	for {
		idx := strings.Index(lower, lowerToken)
		if idx < 0 {
			return s
		}
		s = s[:idx] + s[idx+len(token):]
		lower = lower[:idx] + lower[idx+len(token):]
	}
}
