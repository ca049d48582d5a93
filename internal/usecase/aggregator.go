package usecase

import (
	"strings"

	"github.com/brandaudit/backend/internal/domain"
)

// sellableCondition is the inventory condition code for stock that can
// actually be sold. Compared case- and whitespace-insensitively.
const sellableCondition = "SELLABLE"

// InventoryLine is the per-ASIN reduction of the inventory report.
type InventoryLine struct {
	ASIN  string
	Brand string // hint classified from seller SKUs; Unmapped when none hit
	Stock float64
}

// SalesLine is the per-ASIN reduction of the business report.
type SalesLine struct {
	ASIN         string
	Title        string
	SKU          string
	GrossSales   float64
	UnitsOrdered float64
	Sessions     float64
}

// AdLine is the per-ASIN reduction of the advertising report.
type AdLine struct {
	ASIN        string
	AdSales     float64
	AdSpend     float64
	Clicks      float64
	Impressions float64
	Orders      float64
	Campaigns   []string // de-duplicated, in first-seen order
}

// Aggregator reduces each raw report to one line per ASIN. The three
// reports have no cross dependency, so the reductions can run in any
// order.
type Aggregator struct {
	normalizer  *NumericNormalizer
	classifier  *BrandClassifier
	attribution domain.AttributionPolicy
}

// NewAggregator wires the aggregator with its normalizer, classifier and
// the ad-sales attribution policy.
func NewAggregator(n *NumericNormalizer, c *BrandClassifier, attribution domain.AttributionPolicy) *Aggregator {
	if !attribution.Valid() {
		attribution = domain.AttributionTotal
	}
	return &Aggregator{normalizer: n, classifier: c, attribution: attribution}
}

// inventorySpecs discovers the inventory report's columns. Only the
// identifier is critical; a missing condition column means the export is
// already sellable-only.
var inventorySpecs = []columnSpec{
	{role: domain.RoleProductID, keywords: []string{"asin"}, critical: true},
	{role: domain.RoleQuantity, keywords: []string{"quantity available", "quantity"}},
	{role: domain.RoleConditionCode, keywords: []string{"warehouse-condition-code", "condition"}},
	{role: domain.RoleSKU, keywords: []string{"seller-sku", "sku"}},
}

// businessSpecs discovers the business report's columns. The parent-ASIN
// column is excluded explicitly: it precedes the child column in every
// known export and would otherwise win the first-match rule.
var businessSpecs = []columnSpec{
	{role: domain.RoleProductID, keywords: []string{"child asin", "asin"}, exclude: []string{"parent"}, critical: true},
	{role: domain.RoleSalesAmount, keywords: []string{"ordered product sales"}, exclude: []string{"b2b"}},
	{role: domain.RoleTitle, keywords: []string{"title", "item name"}},
	{role: domain.RoleSKU, keywords: []string{"sku"}},
	{role: domain.RoleUnitsOrdered, keywords: []string{"units ordered"}, exclude: []string{"b2b"}},
	{role: domain.RoleSessionsTotal, keywords: []string{"sessions - total", "sessions"}, exclude: []string{"b2b", "percentage"}},
}

// adSpecs builds the ad report's column specs for the given attribution
// policy. "7 Day Total Sales" includes halo/other-SKU sales; the advertised
// variant counts only the promoted SKU itself.
func adSpecs(attribution domain.AttributionPolicy) []columnSpec {
	salesKeywords := []string{"7 day total sales", "14 day total sales", "total sales"}
	if attribution == domain.AttributionAdvertisedSKU {
		salesKeywords = []string{"7 day advertised sku sales", "14 day advertised sku sales", "advertised sku sales"}
	}
	return []columnSpec{
		{role: domain.RoleProductID, keywords: []string{"advertised asin", "asin"}, critical: true},
		{role: domain.RoleSalesAmount, keywords: salesKeywords},
		{role: domain.RoleSpendAmount, keywords: []string{"spend", "cost"}, exclude: []string{"acos", "cost of sales"}},
		{role: domain.RoleClicks, keywords: []string{"clicks"}},
		{role: domain.RoleImpressions, keywords: []string{"impressions"}},
		{role: domain.RoleOrders, keywords: []string{"7 day total orders", "orders"}},
		{role: domain.RoleCampaignName, keywords: []string{"campaign name", "campaign"}},
	}
}

// AggregateInventory reduces the inventory report to sellable stock per
// ASIN with a brand hint from the seller SKU. Non-sellable rows are
// filtered before grouping: damaged or reserved stock cannot be sold and
// must never inflate displayed stock. Rows without an ASIN are dropped;
// stock with no identifier cannot be reconciled to anything.
func (a *Aggregator) AggregateInventory(table *domain.RawTable) (map[string]*InventoryLine, error) {
	cols, err := resolveRoles(domain.SourceInventoryReport, table.Headers, inventorySpecs)
	if err != nil {
		return nil, err
	}

	idCol := cols[domain.RoleProductID]
	qtyCol, hasQty := cols[domain.RoleQuantity]
	condCol, hasCond := cols[domain.RoleConditionCode]
	skuCol, hasSKU := cols[domain.RoleSKU]

	lines := make(map[string]*InventoryLine)
	for _, row := range table.Rows {
		if hasCond {
			cond := strings.ToUpper(strings.TrimSpace(row[condCol]))
			if cond != sellableCondition {
				continue
			}
		}

		asin := strings.TrimSpace(row[idCol])
		if asin == "" {
			continue
		}

		line, ok := lines[asin]
		if !ok {
			line = &InventoryLine{ASIN: asin, Brand: domain.BrandUnmapped}
			lines[asin] = line
		}
		if hasQty {
			line.Stock += a.normalizer.Normalize(row[qtyCol])
		}
		if hasSKU && line.Brand == domain.BrandUnmapped {
			line.Brand = a.classifier.Classify(row[skuCol])
		}
	}
	return lines, nil
}

// AggregateSales reduces the business report to gross sales per ASIN.
// Titles and SKUs keep the first non-empty value. A row without an ASIN
// that still reports sales is kept under the unidentified placeholder so
// revenue never silently disappears.
func (a *Aggregator) AggregateSales(table *domain.RawTable) (map[string]*SalesLine, error) {
	cols, err := resolveRoles(domain.SourceBusinessReport, table.Headers, businessSpecs)
	if err != nil {
		return nil, err
	}

	idCol := cols[domain.RoleProductID]
	salesCol, hasSales := cols[domain.RoleSalesAmount]
	titleCol, hasTitle := cols[domain.RoleTitle]
	skuCol, hasSKU := cols[domain.RoleSKU]
	unitsCol, hasUnits := cols[domain.RoleUnitsOrdered]
	sessionsCol, hasSessions := cols[domain.RoleSessionsTotal]

	lines := make(map[string]*SalesLine)
	for _, row := range table.Rows {
		var sales float64
		if hasSales {
			sales = a.normalizer.Normalize(row[salesCol])
		}

		asin := strings.TrimSpace(row[idCol])
		if asin == "" {
			if sales == 0 {
				continue
			}
			asin = domain.UnidentifiedASIN
		}

		line, ok := lines[asin]
		if !ok {
			line = &SalesLine{ASIN: asin}
			lines[asin] = line
		}
		line.GrossSales += sales
		if hasUnits {
			line.UnitsOrdered += a.normalizer.Normalize(row[unitsCol])
		}
		if hasSessions {
			line.Sessions += a.normalizer.Normalize(row[sessionsCol])
		}
		if hasTitle && line.Title == "" {
			line.Title = strings.TrimSpace(row[titleCol])
		}
		if hasSKU && line.SKU == "" {
			line.SKU = strings.TrimSpace(row[skuCol])
		}
	}
	return lines, nil
}

// AggregateAds reduces the advertising report to spend and attributed
// sales per ASIN. A product advertised in several campaigns becomes one
// line; campaign names are kept de-duplicated for audit display only.
// Identifier-less rows with real spend or sales go to the unidentified
// placeholder.
func (a *Aggregator) AggregateAds(table *domain.RawTable) (map[string]*AdLine, error) {
	cols, err := resolveRoles(domain.SourceAdReport, table.Headers, adSpecs(a.attribution))
	if err != nil {
		return nil, err
	}

	idCol := cols[domain.RoleProductID]
	salesCol, hasSales := cols[domain.RoleSalesAmount]
	spendCol, hasSpend := cols[domain.RoleSpendAmount]
	clicksCol, hasClicks := cols[domain.RoleClicks]
	imprCol, hasImpr := cols[domain.RoleImpressions]
	ordersCol, hasOrders := cols[domain.RoleOrders]
	campCol, hasCamp := cols[domain.RoleCampaignName]

	lines := make(map[string]*AdLine)
	seen := make(map[string]map[string]bool) // asin -> campaign names already kept
	for _, row := range table.Rows {
		var sales, spend float64
		if hasSales {
			sales = a.normalizer.Normalize(row[salesCol])
		}
		if hasSpend {
			spend = a.normalizer.Normalize(row[spendCol])
		}

		asin := strings.TrimSpace(row[idCol])
		if asin == "" {
			if sales == 0 && spend == 0 {
				continue
			}
			asin = domain.UnidentifiedASIN
		}

		line, ok := lines[asin]
		if !ok {
			line = &AdLine{ASIN: asin}
			lines[asin] = line
			seen[asin] = make(map[string]bool)
		}
		line.AdSales += sales
		line.AdSpend += spend
		if hasClicks {
			line.Clicks += a.normalizer.Normalize(row[clicksCol])
		}
		if hasImpr {
			line.Impressions += a.normalizer.Normalize(row[imprCol])
		}
		if hasOrders {
			line.Orders += a.normalizer.Normalize(row[ordersCol])
		}
		if hasCamp {
			if name := strings.TrimSpace(row[campCol]); name != "" && !seen[asin][name] {
				seen[asin][name] = true
				line.Campaigns = append(line.Campaigns, name)
			}
		}
	}
	return lines, nil
}
