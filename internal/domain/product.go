package domain

// UnidentifiedASIN is the placeholder identifier for report rows that carry
// a real sales or spend signal but no usable ASIN. Keeping them under one
// placeholder keeps the totals honest without ever merging them into a real
// product.
const UnidentifiedASIN = "(unidentified)"

// UnknownName is the display name used when neither the curated reference
// table nor the business report can name a product.
const UnknownName = "N/A"

// ProductRecord is the unified audit entity, one per distinct ASIN observed
// in any of the three reports. Numeric fields are sums over the source rows
// for that ASIN; ratio fields are filled in by the metrics engine.
type ProductRecord struct {
	ASIN        string `json:"asin"`
	Brand       string `json:"brand"`
	DisplayName string `json:"displayName"`
	Campaigns   string `json:"campaigns,omitempty"` // de-duplicated campaign names, audit display only

	Stock        float64 `json:"stock"`
	GrossSales   float64 `json:"grossSales"`
	AdSales      float64 `json:"adSales"`
	AdSpend      float64 `json:"adSpend"`
	Clicks       float64 `json:"clicks"`
	Impressions  float64 `json:"impressions"`
	AdOrders     float64 `json:"adOrders"`
	UnitsOrdered float64 `json:"unitsOrdered"`
	Sessions     float64 `json:"sessions"`

	ACOS           float64 `json:"acos"`
	TACOS          float64 `json:"tacos"`
	ROAS           float64 `json:"roas"`
	OrganicSales   float64 `json:"organicSales"`
	AdContribution float64 `json:"adContribution"`
	CTR            float64 `json:"ctr"`
	CVR            float64 `json:"cvr"`
	DRR            float64 `json:"drr"`
}

// BrandRollup holds per-brand sums with ratios recomputed from those sums.
// Ratios here are never averages of per-product ratios.
type BrandRollup struct {
	Brand       string  `json:"brand"`
	Products    int     `json:"products"`
	Stock       float64 `json:"stock"`
	GrossSales  float64 `json:"grossSales"`
	AdSales     float64 `json:"adSales"`
	AdSpend     float64 `json:"adSpend"`
	Clicks      float64 `json:"clicks"`
	Impressions float64 `json:"impressions"`

	ACOS           float64 `json:"acos"`
	TACOS          float64 `json:"tacos"`
	ROAS           float64 `json:"roas"`
	OrganicSales   float64 `json:"organicSales"`
	AdContribution float64 `json:"adContribution"`
	CTR            float64 `json:"ctr"`
	DRR            float64 `json:"drr"`
}

// PortfolioTotals is the top-line overview across every product in the run.
type PortfolioTotals struct {
	Products   int     `json:"products"`
	GrossSales float64 `json:"grossSales"`
	AdSales    float64 `json:"adSales"`
	AdSpend    float64 `json:"adSpend"`
	Stock      float64 `json:"stock"`
}

// AuditResult is one complete reconciliation run: the unified product table
// (sorted by gross sales descending), the brand summary, and the overview
// totals. Immutable once built; presentation layers only read it.
type AuditResult struct {
	RunID        string            `json:"run_id"`
	GeneratedAt  string            `json:"generated_at"`
	WindowDays   int               `json:"window_days"`
	Attribution  AttributionPolicy `json:"attribution"`
	Totals       PortfolioTotals   `json:"totals"`
	Products     []ProductRecord   `json:"products"`
	BrandSummary []BrandRollup     `json:"brand_summary"`
}
