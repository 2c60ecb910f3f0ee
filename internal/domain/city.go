package domain

// City is a US market we generate landing pages for. Rows are defined at
// build time in the catalog and never mutated.
type City struct {
	Slug          string
	Name          string
	State         string
	Region        string
	Population    int
	CostIndex     float64 // cost-of-living ratio, 100 = national average
	WageRange     Range   // observed hourly wage range across industries
	TopIndustries []string
	SearchTier    int // 1 = highest search volume
	ActiveMarket  bool
}

// Location is the older, country-scoped variant of City (US/UK) carried by a
// legacy subset of pages. Kept as a separate table; see DESIGN.md before
// attempting to unify it with City.
type Location struct {
	Slug      string
	Name      string
	Country   string // "US" or "UK"
	Region    string
	CostIndex float64
	WageRange Range
}

// Range is a closed numeric interval, Min <= Max.
type Range struct {
	Min float64
	Max float64
}
