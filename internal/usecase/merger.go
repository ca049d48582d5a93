package usecase

import (
	"strings"

	"github.com/brandaudit/backend/internal/domain"
)

// MergeSources produces one ProductRecord per ASIN observed in any of the
// three aggregated tables, a full outer join. Stock-only products (no
// sales yet) and sales-only products (stock feed temporarily missing) are
// both legitimate; an inner join would silently hide inventory or revenue.
// Because each aggregate is already keyed by ASIN, the union of keys is
// exhaustive and partitioning: a duplicate output row is structurally
// impossible.
//
// Brand precedence per record:
//  1. the inventory-side SKU hint: seller SKUs encode brand prefixes and
//     are the least ambiguous signal;
//  2. reclassification over business title + SKU + campaign names;
//  3. Unmapped.
//
// Display name: curated reference table, then the business-report title,
// then the unknown-product sentinel.
func MergeSources(
	inv map[string]*InventoryLine,
	sales map[string]*SalesLine,
	ads map[string]*AdLine,
	classifier *BrandClassifier,
) []domain.ProductRecord {
	asins := make(map[string]bool, len(inv)+len(sales)+len(ads))
	for asin := range inv {
		asins[asin] = true
	}
	for asin := range sales {
		asins[asin] = true
	}
	for asin := range ads {
		asins[asin] = true
	}

	records := make([]domain.ProductRecord, 0, len(asins))
	for asin := range asins {
		record := domain.ProductRecord{ASIN: asin, Brand: domain.BrandUnmapped}

		var title, sku, campaigns string
		if line, ok := inv[asin]; ok {
			record.Stock = line.Stock
			record.Brand = line.Brand
		}
		if line, ok := sales[asin]; ok {
			record.GrossSales = line.GrossSales
			record.UnitsOrdered = line.UnitsOrdered
			record.Sessions = line.Sessions
			title = line.Title
			sku = line.SKU
		}
		if line, ok := ads[asin]; ok {
			record.AdSales = line.AdSales
			record.AdSpend = line.AdSpend
			record.Clicks = line.Clicks
			record.Impressions = line.Impressions
			record.AdOrders = line.Orders
			campaigns = strings.Join(line.Campaigns, "; ")
		}
		record.Campaigns = campaigns

		if record.Brand == domain.BrandUnmapped {
			record.Brand = classifier.Classify(title, sku, campaigns)
		}
		record.DisplayName = resolveDisplayName(asin, title)

		records = append(records, record)
	}
	return records
}

// resolveDisplayName picks the product name shown in the audit: the
// curated override table wins over the report title, which wins over the
// new/unidentified sentinel.
func resolveDisplayName(asin, title string) string {
	if name, ok := domain.NameReference[asin]; ok {
		return name
	}
	if title != "" {
		return title
	}
	return domain.UnknownName
}
