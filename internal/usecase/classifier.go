package usecase

import (
	"strings"

	"github.com/brandaudit/backend/internal/domain"
)

// BrandClassifier assigns one of the known brand labels to a product from
// whatever text signals a report row offers. Pure and stateless: the same
// signals always produce the same label.
type BrandClassifier struct {
	rules []brandRule
}

// brandRule is a compiled rule: signal tokens pre-uppercased once.
type brandRule struct {
	name    string
	signals []string
}

// NewBrandClassifier compiles an ordered rule table. An empty table falls
// back to domain.DefaultBrandRules. Rule order is the tie-break and is
// preserved exactly.
func NewBrandClassifier(rules []domain.BrandRule) *BrandClassifier {
	if len(rules) == 0 {
		rules = domain.DefaultBrandRules
	}
	compiled := make([]brandRule, 0, len(rules))
	for _, r := range rules {
		signals := make([]string, 0, len(r.Signals))
		for _, s := range r.Signals {
			if s == "" {
				continue
			}
			signals = append(signals, strings.ToUpper(s))
		}
		compiled = append(compiled, brandRule{name: r.Name, signals: signals})
	}
	return &BrandClassifier{rules: compiled}
}

// Classify scans the concatenated signals (title, SKU, campaign name, in
// the order given) for brand tokens. The earliest declared brand with any
// token hit wins; tokens like "CL_" vs "CLP" overlap, so declaration order
// is the deterministic tie-break. No usable signal returns Unmapped.
func (c *BrandClassifier) Classify(signals ...string) string {
	var sb strings.Builder
	for _, signal := range signals {
		if strings.TrimSpace(signal) == "" {
			continue
		}
		sb.WriteString(" ")
		sb.WriteString(strings.ToUpper(signal))
	}
	text := sb.String()
	if text == "" {
		return domain.BrandUnmapped
	}

	for _, rule := range c.rules {
		for _, token := range rule.signals {
			if strings.Contains(text, token) {
				return rule.name
			}
		}
	}
	return domain.BrandUnmapped
}

// Brands returns the rule labels in declaration order, for per-brand views
// and workbook sheets.
func (c *BrandClassifier) Brands() []string {
	names := make([]string, len(c.rules))
	for i, r := range c.rules {
		names[i] = r.name
	}
	return names
}
