package usecase

import (
	"sort"

	"github.com/brandaudit/backend/internal/domain"
)

// defaultWindowDays is the reporting window used when the caller supplies
// none; the upstream reports cover a trailing month.
const defaultWindowDays = 30

// MetricsEngine fills in the derived performance ratios on merged records.
// Pure, per-record, order-independent field additions; it never touches
// the summed inputs.
type MetricsEngine struct {
	windowDays int
}

// NewMetricsEngine creates an engine for the given reporting window length.
func NewMetricsEngine(windowDays int) *MetricsEngine {
	if windowDays <= 0 {
		windowDays = defaultWindowDays
	}
	return &MetricsEngine{windowDays: windowDays}
}

// WindowDays returns the reporting window the engine divides by for DRR.
func (e *MetricsEngine) WindowDays() int {
	return e.windowDays
}

// Apply computes the ratio fields for every record in place. Every
// division is zero-guarded: a product with spend but no sales yields 0,
// not Inf.
func (e *MetricsEngine) Apply(records []domain.ProductRecord) {
	for i := range records {
		r := &records[i]
		r.ACOS = safeDiv(r.AdSpend, r.AdSales)
		r.TACOS = safeDiv(r.AdSpend, r.GrossSales)
		r.ROAS = safeDiv(r.AdSales, r.AdSpend)
		r.OrganicSales = r.GrossSales - r.AdSales
		r.AdContribution = safeDiv(r.AdSales, r.GrossSales)
		r.CTR = safeDiv(r.Clicks, r.Impressions)
		r.CVR = safeDiv(r.AdOrders, r.Clicks)
		r.DRR = safeDiv(r.GrossSales, float64(e.windowDays))
	}
}

// Rollups groups records by brand, sums the numeric fields, and recomputes
// the ratios from those sums. Ratio-of-sums, never sum-of-ratios: a brand's
// ACOS is brand spend over brand ad sales, not the mean of per-product
// ACOS values, which would be statistically meaningless. Sorted by gross
// sales descending.
func (e *MetricsEngine) Rollups(records []domain.ProductRecord) []domain.BrandRollup {
	byBrand := make(map[string]*domain.BrandRollup)
	var order []string
	for _, r := range records {
		rollup, ok := byBrand[r.Brand]
		if !ok {
			rollup = &domain.BrandRollup{Brand: r.Brand}
			byBrand[r.Brand] = rollup
			order = append(order, r.Brand)
		}
		rollup.Products++
		rollup.Stock += r.Stock
		rollup.GrossSales += r.GrossSales
		rollup.AdSales += r.AdSales
		rollup.AdSpend += r.AdSpend
		rollup.Clicks += r.Clicks
		rollup.Impressions += r.Impressions
	}

	rollups := make([]domain.BrandRollup, 0, len(order))
	for _, brand := range order {
		rollup := byBrand[brand]
		rollup.ACOS = safeDiv(rollup.AdSpend, rollup.AdSales)
		rollup.TACOS = safeDiv(rollup.AdSpend, rollup.GrossSales)
		rollup.ROAS = safeDiv(rollup.AdSales, rollup.AdSpend)
		rollup.OrganicSales = rollup.GrossSales - rollup.AdSales
		rollup.AdContribution = safeDiv(rollup.AdSales, rollup.GrossSales)
		rollup.CTR = safeDiv(rollup.Clicks, rollup.Impressions)
		rollup.DRR = safeDiv(rollup.GrossSales, float64(e.windowDays))
		rollups = append(rollups, *rollup)
	}

	sort.SliceStable(rollups, func(i, j int) bool {
		if rollups[i].GrossSales != rollups[j].GrossSales {
			return rollups[i].GrossSales > rollups[j].GrossSales
		}
		return rollups[i].Brand < rollups[j].Brand
	})
	return rollups
}

// Totals sums the portfolio overview figures across all records.
func Totals(records []domain.ProductRecord) domain.PortfolioTotals {
	var totals domain.PortfolioTotals
	totals.Products = len(records)
	for _, r := range records {
		totals.GrossSales += r.GrossSales
		totals.AdSales += r.AdSales
		totals.AdSpend += r.AdSpend
		totals.Stock += r.Stock
	}
	return totals
}

// safeDiv divides a by b, returning 0 when the denominator is 0. Keeps
// Inf/NaN out of every downstream consumer.
func safeDiv(a, b float64) float64 {
	if b == 0 {
		return 0
	}
	return a / b
}
