package domain

// BrandUnmapped is the sentinel brand for products no rule matched.
// Surfaced in output for manual triage; never an error.
const BrandUnmapped = "Unmapped"

// BrandRule maps one brand label to the signal tokens that identify it in
// titles, seller SKUs and campaign names. Tokens are matched as
// case-insensitive substrings.
type BrandRule struct {
	Name    string   `json:"name" mapstructure:"name"`
	Signals []string `json:"signals" mapstructure:"signals"`
}

// DefaultBrandRules is the known brand portfolio in priority order.
// Declaration order is the tie-break: some signal tokens are prefixes of
// others ("CL_" vs "CLP", "PC" vs "PCB"), so the earliest declared brand
// with any hit always wins. Keep this a slice; a map would destroy the
// tie-break.
var DefaultBrandRules = []BrandRule{
	{Name: "Maison de l'Avenir", Signals: []string{"MAISON", "MA_", "JPP", "CEB", "PGN", "VGA"}},
	{Name: "Creation Lamis", Signals: []string{"LAMIS", "CL_", "CL |", "CLP", "CPL", "3DM", "CLAM"}},
	{Name: "Jean Paul Dupont", Signals: []string{"DUPONT", "JPD"}},
	{Name: "Paris Collection", Signals: []string{"PARIS COLLECTION", "PC_", "PC |", "PCB", "PCH", "PCBC", "PCF", "PCK", "PCL"}},
	{Name: "Dorall Collection", Signals: []string{"DORALL", "DC_", "DC |", "DCL"}},
	{Name: "CP Trendies", Signals: []string{"TRENDIES", "CPT", "CP_", "CPMK", "CPM", "CPN", "TGJ", "COCP"}},
}

// NameReference is the curated ASIN-to-name override table for products
// whose business-report titles are ambiguous or rebranded. Checked before
// falling back to the report title.
var NameReference = map[string]string{
	"B0DGLJHCJJ": "Oud Opulence",
	"B0DGLJKQHN": "Nova Noir",
	"B0DGLLBR1R": "Majestic Millennium",
	"B0DG919KGY": "Jardin De Jade",
	"B0DGLJJZX8": "Opulent Odyssey",
	"B0DGLHZCNX": "Aurora Opulence",
	"B0DGLHTX18": "Oud Intense",
	"B0DGLHTYB2": "Midnight Solstice",
	"B0DGLM8XYD": "Vortex Echo",
	"B0DGLJYGKW": "Avenir Triumph",
	"B0DZX2RL6P": "Noir Intense",
	"B0DGLKQJBY": "Nebula Nectar",
	"B0DGLHHJFZ": "Electra Elixir",
	"B0DGLM918B": "Ethereal Embrace",
	"B0DGLLSH43": "Eternal Oud",
}
