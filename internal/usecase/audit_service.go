package usecase

import (
	"log"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/brandaudit/backend/internal/domain"
)

// AuditConfig holds the run-independent configuration of the audit service.
type AuditConfig struct {
	WindowDays     int
	Attribution    domain.AttributionPolicy
	BrandRules     []domain.BrandRule
	CurrencyTokens []string
}

// RunOptions are per-request overrides. Zero values fall back to the
// configured defaults.
type RunOptions struct {
	WindowDays  int
	Attribution domain.AttributionPolicy
}

// AuditService runs the full reconciliation: three raw reports in, one
// immutable AuditResult out. Every invocation is a fresh computation;
// nothing is shared or persisted between runs.
type AuditService struct {
	config     AuditConfig
	classifier *BrandClassifier
	normalizer *NumericNormalizer
}

// NewAuditService creates the service, compiling the brand rule table once.
func NewAuditService(config AuditConfig) *AuditService {
	if config.WindowDays <= 0 {
		config.WindowDays = defaultWindowDays
	}
	if !config.Attribution.Valid() {
		config.Attribution = domain.AttributionTotal
	}
	return &AuditService{
		config:     config,
		classifier: NewBrandClassifier(config.BrandRules),
		normalizer: NewNumericNormalizer(config.CurrencyTokens, true),
	}
}

// Run reconciles the three reports into the unified product table.
// Pipeline: aggregate each source independently, outer-join on ASIN,
// derive the ratios, sort by gross sales descending, roll up per brand.
// Any aggregation error (a missing join key, an empty report) aborts the
// run before any partial output exists.
func (s *AuditService) Run(ad, business, inventory *domain.RawTable, opts RunOptions) (*domain.AuditResult, error) {
	for _, table := range []*domain.RawTable{ad, business, inventory} {
		if table == nil || len(table.Rows) == 0 {
			return nil, domain.ErrEmptyReport
		}
	}

	attribution := opts.Attribution
	if !attribution.Valid() {
		attribution = s.config.Attribution
	}
	windowDays := opts.WindowDays
	if windowDays <= 0 {
		windowDays = s.config.WindowDays
	}

	aggregator := NewAggregator(s.normalizer, s.classifier, attribution)

	invLines, err := aggregator.AggregateInventory(inventory)
	if err != nil {
		return nil, err
	}
	salesLines, err := aggregator.AggregateSales(business)
	if err != nil {
		return nil, err
	}
	adLines, err := aggregator.AggregateAds(ad)
	if err != nil {
		return nil, err
	}

	records := MergeSources(invLines, salesLines, adLines, s.classifier)

	engine := NewMetricsEngine(windowDays)
	engine.Apply(records)
	sortByGrossSales(records)

	result := &domain.AuditResult{
		RunID:        uuid.NewString(),
		GeneratedAt:  time.Now().UTC().Format(time.RFC3339),
		WindowDays:   windowDays,
		Attribution:  attribution,
		Totals:       Totals(records),
		Products:     records,
		BrandSummary: engine.Rollups(records),
	}

	log.Printf("[AUDIT] run %s: %d products (%d inventory / %d sales / %d ad lines), attribution=%s",
		result.RunID, len(records), len(invLines), len(salesLines), len(adLines), attribution)
	return result, nil
}

// Brands exposes the configured brand labels in declaration order.
func (s *AuditService) Brands() []string {
	return s.classifier.Brands()
}

// BrandView filters a result's products to one brand, preserving the
// gross-sales ordering.
func BrandView(result *domain.AuditResult, brand string) []domain.ProductRecord {
	var view []domain.ProductRecord
	for _, r := range result.Products {
		if r.Brand == brand {
			view = append(view, r)
		}
	}
	return view
}

// sortByGrossSales orders records by gross sales descending, ASIN
// ascending as the deterministic tie-break.
func sortByGrossSales(records []domain.ProductRecord) {
	sort.SliceStable(records, func(i, j int) bool {
		if records[i].GrossSales != records[j].GrossSales {
			return records[i].GrossSales > records[j].GrossSales
		}
		return records[i].ASIN < records[j].ASIN
	})
}
