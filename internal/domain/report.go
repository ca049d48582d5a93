package domain

// Row is a single report row, mapping header text to the raw cell value.
type Row map[string]string

// RawTable represents one fully materialized report as uploaded.
// Headers preserve the column order of the source file; resolver matching
// depends on that order being intact.
type RawTable struct {
	Headers []string `json:"headers"`
	Rows    []Row    `json:"rows"`
}

// ColumnRole is the semantic role a report column plays, independent of the
// exact header text a given export version uses.
type ColumnRole string

const (
	RoleProductID     ColumnRole = "product_id"
	RoleSalesAmount   ColumnRole = "sales_amount"
	RoleSpendAmount   ColumnRole = "spend_amount"
	RoleTitle         ColumnRole = "title"
	RoleSKU           ColumnRole = "sku"
	RoleCampaignName  ColumnRole = "campaign_name"
	RoleQuantity      ColumnRole = "quantity"
	RoleConditionCode ColumnRole = "condition_code"
	RoleUnitsOrdered  ColumnRole = "units_ordered"
	RoleSessionsTotal ColumnRole = "sessions_total"
	RoleClicks        ColumnRole = "clicks"
	RoleImpressions   ColumnRole = "impressions"
	RoleOrders        ColumnRole = "orders"
)

// SourceKind identifies which of the three reports a table came from.
type SourceKind string

const (
	SourceAdReport        SourceKind = "ad_report"
	SourceBusinessReport  SourceKind = "business_report"
	SourceInventoryReport SourceKind = "inventory_report"
)

// AttributionPolicy selects which ad-sales figure feeds ACOS/ROAS:
// the campaign's total attributed sales (including halo/other-SKU sales)
// or only sales of the advertised SKU itself.
type AttributionPolicy string

const (
	AttributionTotal         AttributionPolicy = "total"
	AttributionAdvertisedSKU AttributionPolicy = "advertised"
)

// Valid reports whether the policy is one of the known values.
func (p AttributionPolicy) Valid() bool {
	return p == AttributionTotal || p == AttributionAdvertisedSKU
}
