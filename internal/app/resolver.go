package app

import (
	"fmt"

	"careersite/internal/catalog"
	"careersite/internal/domain"
)

// IndustryToken ties a URL/display token to the internal industry enum.
// "warehouse" and "industrial" both map to IndustryIndustrial but stay
// distinct tokens: URLs and display copy say "warehouse" while the role
// table says "industrial". Keep this indirection, do not conflate the two
// strings.
type IndustryToken struct {
	Token    string
	Display  string
	Industry domain.Industry
}

var industryTokens = map[string]IndustryToken{
	"warehouse":   {Token: "warehouse", Display: "Warehouse", Industry: domain.IndustryIndustrial},
	"industrial":  {Token: "industrial", Display: "Industrial", Industry: domain.IndustryIndustrial},
	"hospitality": {Token: "hospitality", Display: "Hospitality", Industry: domain.IndustryHospitality},
	"retail":      {Token: "retail", Display: "Retail", Industry: domain.IndustryRetail},
	"facilities":  {Token: "facilities", Display: "Facilities", Industry: domain.IndustryFacilities},
}

// canonicalTokens is the fixed token set enumerated per city, one per
// industry enum value (industrial surfaces as "warehouse").
var canonicalTokens = []string{"warehouse", "hospitality", "retail", "facilities"}

// ResolvedPage carries the concrete entities a classified slug refers to.
// Only the fields relevant to the archetype are set.
type ResolvedPage struct {
	Slug           string
	Classification domain.Classification

	City     *domain.City
	Season   *domain.Season
	Event    *domain.Event
	Article  *domain.Article
	Industry *IndustryToken
	Year     string

	// Roles is the role subset the page ranks or lists: the industry's
	// roles for industry-scoped pages, the whole table for ranking pages.
	Roles []domain.Role
}

type Resolver struct {
	cat *catalog.Catalog
}

func NewResolver(cat *catalog.Catalog) *Resolver {
	return &Resolver{cat: cat}
}

// Resolve looks up every entity named by the classification's parameters.
// A missing entity is terminal: domain.ErrNotFound, no partial pages.
func (r *Resolver) Resolve(slug string, c domain.Classification) (ResolvedPage, error) {
	rp := ResolvedPage{Slug: slug, Classification: c}

	switch c.Archetype {
	case domain.ArchetypeUnknown:
		return rp, domain.ErrUnknownSlug

	case domain.ArchetypeSeasonalHub:
		season, ok := r.cat.Season(c.Params[domain.ParamSeason])
		if !ok {
			return rp, fmt.Errorf("season %q: %w", c.Params[domain.ParamSeason], domain.ErrNotFound)
		}
		tok, ok := industryTokens[c.Params[domain.ParamIndustry]]
		if !ok {
			return rp, fmt.Errorf("industry %q: %w", c.Params[domain.ParamIndustry], domain.ErrNotFound)
		}
		rp.Season, rp.Industry, rp.Year = &season, &tok, c.Params[domain.ParamYear]
		rp.Roles = r.cat.RolesByIndustry(tok.Industry)
		return rp, nil

	case domain.ArchetypeEventHiring:
		event, ok := r.cat.Event(c.Params[domain.ParamEvent])
		if !ok {
			return rp, fmt.Errorf("event %q: %w", c.Params[domain.ParamEvent], domain.ErrNotFound)
		}
		rp.Event, rp.Year = &event, c.Params[domain.ParamYear]
		return rp, nil

	case domain.ArchetypeSeasonalLocation:
		season, ok := r.cat.Season(c.Params[domain.ParamSeason])
		if !ok {
			return rp, fmt.Errorf("season %q: %w", c.Params[domain.ParamSeason], domain.ErrNotFound)
		}
		city, ok := r.cat.City(c.Params[domain.ParamCity])
		if !ok {
			return rp, fmt.Errorf("city %q: %w", c.Params[domain.ParamCity], domain.ErrNotFound)
		}
		rp.Season, rp.City = &season, &city
		return rp, nil

	case domain.ArchetypeHowToFindWork, domain.ArchetypeBestPaying:
		city, ok := r.cat.City(c.Params[domain.ParamCity])
		if !ok {
			return rp, fmt.Errorf("city %q: %w", c.Params[domain.ParamCity], domain.ErrNotFound)
		}
		rp.City = &city
		rp.Roles = r.cat.Roles
		return rp, nil

	case domain.ArchetypeIndustryLocation:
		tok, ok := industryTokens[c.Params[domain.ParamIndustry]]
		if !ok {
			return rp, fmt.Errorf("industry %q: %w", c.Params[domain.ParamIndustry], domain.ErrNotFound)
		}
		city, ok := r.cat.City(c.Params[domain.ParamCity])
		if !ok {
			return rp, fmt.Errorf("city %q: %w", c.Params[domain.ParamCity], domain.ErrNotFound)
		}
		rp.Industry, rp.City = &tok, &city
		rp.Roles = r.cat.RolesByIndustry(tok.Industry)
		return rp, nil

	case domain.ArchetypeGuide:
		article, ok := r.cat.Article(c.Params[domain.ParamGuide])
		if !ok {
			return rp, fmt.Errorf("guide %q: %w", c.Params[domain.ParamGuide], domain.ErrNotFound)
		}
		rp.Article = &article
		return rp, nil
	}

	return rp, domain.ErrUnknownSlug
}
