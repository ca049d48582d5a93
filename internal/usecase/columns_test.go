package usecase

import (
	"errors"
	"testing"

	"github.com/brandaudit/backend/internal/domain"
)

func TestResolveColumn(t *testing.T) {
	t.Run("first declared header wins", func(t *testing.T) {
		headers := []string{"Ordered Product Sales (Total)", "Units Ordered Product Sales"}
		got, ok := ResolveColumn(headers, []string{"ordered product sales"}, nil)
		if !ok {
			t.Fatal("expected a match")
		}
		if got != "Ordered Product Sales (Total)" {
			t.Errorf("ResolveColumn = %q, want the first declared header", got)
		}
	})

	t.Run("case-insensitive substring match", func(t *testing.T) {
		headers := []string{"Advertised ASIN", "Spend"}
		got, ok := ResolveColumn(headers, []string{"advertised asin"}, nil)
		if !ok || got != "Advertised ASIN" {
			t.Errorf("ResolveColumn = %q, %v; want Advertised ASIN, true", got, ok)
		}
	})

	t.Run("surrounding whitespace in header is trimmed", func(t *testing.T) {
		headers := []string{"  Quantity Available  "}
		got, ok := ResolveColumn(headers, []string{"quantity available"}, nil)
		if !ok || got != "  Quantity Available  " {
			t.Errorf("ResolveColumn = %q, %v; want the original header back", got, ok)
		}
	})

	t.Run("exclude term vetoes a match", func(t *testing.T) {
		headers := []string{"(Parent) ASIN", "(Child) ASIN"}
		got, ok := ResolveColumn(headers, []string{"asin"}, []string{"parent"})
		if !ok || got != "(Child) ASIN" {
			t.Errorf("ResolveColumn = %q, %v; want (Child) ASIN, true", got, ok)
		}
	})

	t.Run("absence is signalled, not an error", func(t *testing.T) {
		headers := []string{"Spend", "Clicks"}
		_, ok := ResolveColumn(headers, []string{"campaign name"}, nil)
		if ok {
			t.Error("expected no match")
		}
	})

	t.Run("any keyword may match", func(t *testing.T) {
		headers := []string{"Item Name"}
		got, ok := ResolveColumn(headers, []string{"title", "item name"}, nil)
		if !ok || got != "Item Name" {
			t.Errorf("ResolveColumn = %q, %v; want Item Name, true", got, ok)
		}
	})
}

func TestResolveRoles(t *testing.T) {
	specs := []columnSpec{
		{role: domain.RoleProductID, keywords: []string{"asin"}, critical: true},
		{role: domain.RoleQuantity, keywords: []string{"quantity available"}},
	}

	t.Run("maps present roles and skips absent optional ones", func(t *testing.T) {
		headers := []string{"asin", "warehouse-condition-code"}
		cols, err := resolveRoles(domain.SourceInventoryReport, headers, specs)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cols[domain.RoleProductID] != "asin" {
			t.Errorf("RoleProductID = %q, want asin", cols[domain.RoleProductID])
		}
		if _, ok := cols[domain.RoleQuantity]; ok {
			t.Error("expected RoleQuantity to be absent")
		}
	})

	t.Run("missing critical role is fatal and carries the headers searched", func(t *testing.T) {
		headers := []string{"sku", "quantity available"}
		_, err := resolveRoles(domain.SourceInventoryReport, headers, specs)
		if !errors.Is(err, domain.ErrMissingColumn) {
			t.Fatalf("error = %v, want ErrMissingColumn", err)
		}

		var missing *domain.MissingColumnError
		if !errors.As(err, &missing) {
			t.Fatalf("error type = %T, want *MissingColumnError", err)
		}
		if missing.Role != domain.RoleProductID {
			t.Errorf("Role = %v, want RoleProductID", missing.Role)
		}
		if len(missing.Headers) != 2 {
			t.Errorf("Headers = %v, want the 2 headers seen", missing.Headers)
		}
		if len(missing.Keywords) != 1 || missing.Keywords[0] != "asin" {
			t.Errorf("Keywords = %v, want [asin]", missing.Keywords)
		}
	})
}
