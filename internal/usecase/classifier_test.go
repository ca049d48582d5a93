package usecase

import (
	"testing"

	"github.com/brandaudit/backend/internal/domain"
)

func TestClassify(t *testing.T) {
	c := NewBrandClassifier(nil)

	tests := []struct {
		name    string
		signals []string
		want    string
	}{
		{"SKU prefix", []string{"", "CL_OUD_100ML", ""}, "Creation Lamis"},
		{"title keyword", []string{"DORALL Collection EDP 100ml", "", ""}, "Dorall Collection"},
		{"campaign name only", []string{"", "", "JPD | Exact | Top Sellers"}, "Jean Paul Dupont"},
		{"case-insensitive", []string{"maison fragrance gift set"}, "Maison de l'Avenir"},
		{"no signal matches", []string{"Generic Perfume 100ml", "SKU-0001"}, domain.BrandUnmapped},
		{"all fields empty", []string{"", "", ""}, domain.BrandUnmapped},
		{"no fields at all", nil, domain.BrandUnmapped},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := c.Classify(tt.signals...); got != tt.want {
				t.Errorf("Classify(%v) = %q, want %q", tt.signals, got, tt.want)
			}
		})
	}
}

func TestClassifyTieBreak(t *testing.T) {
	// "AB" is a prefix of "ABC": a text containing "ABC" hits both rules,
	// and the earliest declared brand must win every time.
	rules := []domain.BrandRule{
		{Name: "First", Signals: []string{"AB"}},
		{Name: "Second", Signals: []string{"ABC"}},
	}
	c := NewBrandClassifier(rules)

	for i := 0; i < 100; i++ {
		if got := c.Classify("sku ABC-123"); got != "First" {
			t.Fatalf("run %d: Classify = %q, want First (declaration-order tie-break)", i, got)
		}
	}

	// Reversed declaration order flips the winner: the tie-break is the
	// table order, not the token length.
	reversed := NewBrandClassifier([]domain.BrandRule{rules[1], rules[0]})
	if got := reversed.Classify("sku ABC-123"); got != "Second" {
		t.Errorf("Classify = %q, want Second when declared first", got)
	}
}

func TestClassifyDefaultTableOverlaps(t *testing.T) {
	c := NewBrandClassifier(nil)

	// "CPL" is a Creation Lamis token even though "CP_" belongs to CP
	// Trendies: Creation Lamis is declared earlier.
	if got := c.Classify("CPL_NOIR_50ML"); got != "Creation Lamis" {
		t.Errorf("Classify(CPL...) = %q, want Creation Lamis", got)
	}
}

func TestClassifyIsPure(t *testing.T) {
	c := NewBrandClassifier(nil)

	first := c.Classify("PC_ Rose 100ml")
	for i := 0; i < 10; i++ {
		if got := c.Classify("PC_ Rose 100ml"); got != first {
			t.Fatalf("classification not deterministic: %q then %q", first, got)
		}
	}
}

func TestBrands(t *testing.T) {
	c := NewBrandClassifier(nil)
	brands := c.Brands()

	if len(brands) != len(domain.DefaultBrandRules) {
		t.Fatalf("Brands() returned %d labels, want %d", len(brands), len(domain.DefaultBrandRules))
	}
	for i, rule := range domain.DefaultBrandRules {
		if brands[i] != rule.Name {
			t.Errorf("Brands()[%d] = %q, want %q (declaration order)", i, brands[i], rule.Name)
		}
	}
}
