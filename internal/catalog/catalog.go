// Package catalog holds the reference data every page is generated from.
// Tables are package-level literals, loaded once via New and treated as
// read-only for the lifetime of the process. There is deliberately no
// mutation path.
package catalog

import (
	"fmt"

	"careersite/internal/domain"
)

type Catalog struct {
	Cities    []domain.City
	Roles     []domain.Role
	Locations []domain.Location
	Seasons   []domain.Season
	Events    []domain.Event
	Articles  []domain.Article

	cityBySlug    map[string]int
	roleBySlug    map[string]int
	seasonBySlug  map[string]int
	eventBySlug   map[string]int
	articleBySlug map[string]int
}

// New builds the catalog from the shipped tables and validates referential
// integrity. A dangling cross-reference or a malformed range is a data bug
// caught here, at process start, not a runtime condition to recover from.
func New() (*Catalog, error) {
	c := &Catalog{
		Cities:    cities,
		Roles:     roles,
		Locations: locations,
		Seasons:   seasons,
		Events:    events,
		Articles:  articles,
	}
	if err := c.index(); err != nil {
		return nil, err
	}
	if err := c.validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Catalog) index() error {
	c.cityBySlug = map[string]int{}
	for i, v := range c.Cities {
		if _, dup := c.cityBySlug[v.Slug]; dup {
			return fmt.Errorf("catalog: duplicate city slug %q", v.Slug)
		}
		c.cityBySlug[v.Slug] = i
	}
	c.roleBySlug = map[string]int{}
	for i, v := range c.Roles {
		if _, dup := c.roleBySlug[v.Slug]; dup {
			return fmt.Errorf("catalog: duplicate role slug %q", v.Slug)
		}
		c.roleBySlug[v.Slug] = i
	}
	c.seasonBySlug = map[string]int{}
	for i, v := range c.Seasons {
		if _, dup := c.seasonBySlug[v.Slug]; dup {
			return fmt.Errorf("catalog: duplicate season slug %q", v.Slug)
		}
		c.seasonBySlug[v.Slug] = i
	}
	c.eventBySlug = map[string]int{}
	for i, v := range c.Events {
		if _, dup := c.eventBySlug[v.Slug]; dup {
			return fmt.Errorf("catalog: duplicate event slug %q", v.Slug)
		}
		c.eventBySlug[v.Slug] = i
	}
	c.articleBySlug = map[string]int{}
	for i, v := range c.Articles {
		if _, dup := c.articleBySlug[v.Slug]; dup {
			return fmt.Errorf("catalog: duplicate article slug %q", v.Slug)
		}
		c.articleBySlug[v.Slug] = i
	}
	seen := map[string]bool{}
	for _, v := range c.Locations {
		if seen[v.Slug] {
			return fmt.Errorf("catalog: duplicate location slug %q", v.Slug)
		}
		seen[v.Slug] = true
	}
	return nil
}

func (c *Catalog) validate() error {
	for _, city := range c.Cities {
		if city.CostIndex <= 0 {
			return fmt.Errorf("catalog: city %q cost index must be positive", city.Slug)
		}
		if err := checkRange(city.WageRange, "city "+city.Slug); err != nil {
			return err
		}
	}
	for _, loc := range c.Locations {
		if loc.Country != "US" && loc.Country != "UK" {
			return fmt.Errorf("catalog: location %q has unsupported country %q", loc.Slug, loc.Country)
		}
		if loc.CostIndex <= 0 {
			return fmt.Errorf("catalog: location %q cost index must be positive", loc.Slug)
		}
		if err := checkRange(loc.WageRange, "location "+loc.Slug); err != nil {
			return err
		}
	}
	for _, r := range c.Roles {
		if !r.Industry.Valid() {
			return fmt.Errorf("catalog: role %q has unknown industry %q", r.Slug, r.Industry)
		}
		if err := checkRange(r.BaseRate, "role "+r.Slug); err != nil {
			return err
		}
	}
	for _, s := range c.Seasons {
		for _, ind := range s.Industries {
			if !ind.Valid() {
				return fmt.Errorf("catalog: season %q references unknown industry %q", s.Slug, ind)
			}
		}
		if len(s.Months) == 0 {
			return fmt.Errorf("catalog: season %q has no active months", s.Slug)
		}
	}
	for _, e := range c.Events {
		for _, ind := range e.Industries {
			if !ind.Valid() {
				return fmt.Errorf("catalog: event %q references unknown industry %q", e.Slug, ind)
			}
		}
		for _, citySlug := range e.Cities {
			if _, ok := c.cityBySlug[citySlug]; !ok {
				return fmt.Errorf("catalog: event %q references unknown city %q", e.Slug, citySlug)
			}
		}
	}
	for _, a := range c.Articles {
		for _, rel := range a.Related {
			if _, ok := c.articleBySlug[rel]; !ok {
				return fmt.Errorf("catalog: article %q references unknown article %q", a.Slug, rel)
			}
		}
	}
	return nil
}

func checkRange(r domain.Range, what string) error {
	if r.Min <= 0 || r.Max <= 0 {
		return fmt.Errorf("catalog: %s has non-positive rate", what)
	}
	if r.Min > r.Max {
		return fmt.Errorf("catalog: %s has min > max", what)
	}
	return nil
}

// Lookups return copies; callers cannot mutate the tables through them.

func (c *Catalog) City(slug string) (domain.City, bool) {
	i, ok := c.cityBySlug[slug]
	if !ok {
		return domain.City{}, false
	}
	return c.Cities[i], true
}

func (c *Catalog) Role(slug string) (domain.Role, bool) {
	i, ok := c.roleBySlug[slug]
	if !ok {
		return domain.Role{}, false
	}
	return c.Roles[i], true
}

func (c *Catalog) Season(slug string) (domain.Season, bool) {
	i, ok := c.seasonBySlug[slug]
	if !ok {
		return domain.Season{}, false
	}
	return c.Seasons[i], true
}

func (c *Catalog) Event(slug string) (domain.Event, bool) {
	i, ok := c.eventBySlug[slug]
	if !ok {
		return domain.Event{}, false
	}
	return c.Events[i], true
}

func (c *Catalog) Article(slug string) (domain.Article, bool) {
	i, ok := c.articleBySlug[slug]
	if !ok {
		return domain.Article{}, false
	}
	return c.Articles[i], true
}

// RolesByIndustry returns the roles for one industry in table order, so that
// downstream rankings stay stable.
func (c *Catalog) RolesByIndustry(ind domain.Industry) []domain.Role {
	var out []domain.Role
	for _, r := range c.Roles {
		if r.Industry == ind {
			out = append(out, r)
		}
	}
	return out
}
