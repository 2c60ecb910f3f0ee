package catalog

import "careersite/internal/domain"

// locations is the legacy country-scoped table kept alongside Cities. UK
// support only exists here; the US rows overlap with Cities on purpose and
// the two tables are not unified. See DESIGN.md.
var locations = []domain.Location{
	{Slug: "new-york", Name: "New York", Country: "US", Region: "Northeast",
		CostIndex: 168, WageRange: domain.Range{Min: 16.00, Max: 32.00}},
	{Slug: "los-angeles", Name: "Los Angeles", Country: "US", Region: "West",
		CostIndex: 145, WageRange: domain.Range{Min: 16.50, Max: 29.00}},
	{Slug: "chicago", Name: "Chicago", Country: "US", Region: "Midwest",
		CostIndex: 107, WageRange: domain.Range{Min: 15.00, Max: 27.00}},
	{Slug: "london", Name: "London", Country: "UK", Region: "Greater London",
		CostIndex: 152, WageRange: domain.Range{Min: 11.50, Max: 22.00}},
	{Slug: "manchester", Name: "Manchester", Country: "UK", Region: "North West",
		CostIndex: 98, WageRange: domain.Range{Min: 10.50, Max: 18.00}},
	{Slug: "birmingham", Name: "Birmingham", Country: "UK", Region: "West Midlands",
		CostIndex: 94, WageRange: domain.Range{Min: 10.50, Max: 17.50}},
}
