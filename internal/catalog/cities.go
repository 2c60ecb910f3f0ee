package catalog

import "careersite/internal/domain"

var cities = []domain.City{
	{
		Slug: "austin", Name: "Austin", State: "TX", Region: "South",
		Population: 961855, CostIndex: 103,
		WageRange:     domain.Range{Min: 14.50, Max: 26.00},
		TopIndustries: []string{"hospitality", "events", "warehouse & logistics"},
		SearchTier:    1, ActiveMarket: true,
	},
	{
		Slug: "dallas", Name: "Dallas", State: "TX", Region: "South",
		Population: 1304379, CostIndex: 101,
		WageRange:     domain.Range{Min: 14.00, Max: 25.50},
		TopIndustries: []string{"warehouse & logistics", "retail", "facilities"},
		SearchTier:    1, ActiveMarket: true,
	},
	{
		Slug: "houston", Name: "Houston", State: "TX", Region: "South",
		Population: 2304580, CostIndex: 96,
		WageRange:     domain.Range{Min: 13.50, Max: 24.00},
		TopIndustries: []string{"warehouse & logistics", "hospitality", "industrial"},
		SearchTier:    1, ActiveMarket: true,
	},
	{
		Slug: "philadelphia", Name: "Philadelphia", State: "PA", Region: "Northeast",
		Population: 1603797, CostIndex: 102,
		WageRange:     domain.Range{Min: 14.00, Max: 25.00},
		TopIndustries: []string{"warehouse & logistics", "healthcare", "retail"},
		SearchTier:    1, ActiveMarket: true,
	},
	{
		Slug: "boston", Name: "Boston", State: "MA", Region: "Northeast",
		Population: 675647, CostIndex: 148,
		WageRange:     domain.Range{Min: 16.50, Max: 30.00},
		TopIndustries: []string{"hospitality", "events", "healthcare"},
		SearchTier:    2, ActiveMarket: true,
	},
	{
		Slug: "chicago", Name: "Chicago", State: "IL", Region: "Midwest",
		Population: 2746388, CostIndex: 107,
		WageRange:     domain.Range{Min: 15.00, Max: 27.00},
		TopIndustries: []string{"warehouse & logistics", "hospitality", "events"},
		SearchTier:    1, ActiveMarket: true,
	},
	{
		Slug: "phoenix", Name: "Phoenix", State: "AZ", Region: "West",
		Population: 1608139, CostIndex: 104,
		WageRange:     domain.Range{Min: 14.00, Max: 24.50},
		TopIndustries: []string{"warehouse & logistics", "retail", "facilities"},
		SearchTier:    2, ActiveMarket: true,
	},
	{
		Slug: "atlanta", Name: "Atlanta", State: "GA", Region: "South",
		Population: 498715, CostIndex: 99,
		WageRange:     domain.Range{Min: 13.50, Max: 24.00},
		TopIndustries: []string{"warehouse & logistics", "events", "hospitality"},
		SearchTier:    1, ActiveMarket: true,
	},
	{
		Slug: "denver", Name: "Denver", State: "CO", Region: "West",
		Population: 715522, CostIndex: 112,
		WageRange:     domain.Range{Min: 15.50, Max: 27.50},
		TopIndustries: []string{"hospitality", "events", "retail"},
		SearchTier:    2, ActiveMarket: true,
	},
	{
		Slug: "seattle", Name: "Seattle", State: "WA", Region: "West",
		Population: 737015, CostIndex: 135,
		WageRange:     domain.Range{Min: 17.00, Max: 30.00},
		TopIndustries: []string{"warehouse & logistics", "hospitality", "events"},
		SearchTier:    2, ActiveMarket: true,
	},
	{
		Slug: "miami", Name: "Miami", State: "FL", Region: "South",
		Population: 442241, CostIndex: 110,
		WageRange:     domain.Range{Min: 13.50, Max: 24.50},
		TopIndustries: []string{"hospitality", "events", "retail"},
		SearchTier:    2, ActiveMarket: true,
	},
	{
		Slug: "columbus", Name: "Columbus", State: "OH", Region: "Midwest",
		Population: 905748, CostIndex: 92,
		WageRange:     domain.Range{Min: 13.00, Max: 22.50},
		TopIndustries: []string{"warehouse & logistics", "retail", "facilities"},
		SearchTier:    3, ActiveMarket: false,
	},
}
