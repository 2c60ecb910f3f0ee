package app

import (
	"regexp"
	"strings"

	"careersite/internal/catalog"
	"careersite/internal/domain"
)

// Classifier maps a raw URL slug to a page archetype plus extracted
// parameters. Classification is total and deterministic: any input yields a
// Classification, unmatched input yields ArchetypeUnknown, and nothing here
// ever returns an error or panics.
//
// Precedence is encoded as an explicit rule slice evaluated in order, first
// match wins. The order matters: several archetypes share lexical shape
// (see the year guard on seasonal-location rules).
type Classifier struct {
	rules []rule
}

type rule struct {
	name      string
	archetype domain.Archetype
	match     func(slug string) (map[string]string, bool)
}

// Rules returns the rule names in evaluation order, for inspection and
// ambiguity tests.
func (c *Classifier) Rules() []string {
	out := make([]string, len(c.rules))
	for i, r := range c.rules {
		out[i] = r.name
	}
	return out
}

var (
	reSeasonalHub = regexp.MustCompile(`^([a-z][a-z-]*)-([a-z]+)-jobs-(\d{4})$`)
	reEventHiring = regexp.MustCompile(`^([a-z][a-z-]*)-(?:hiring|jobs)-(\d{4})$`)
	reHowToFind   = regexp.MustCompile(`^how-to-find-temp-work-in-([a-z][a-z-]*)$`)
	reBestPaying  = regexp.MustCompile(`^best-paying-temp-jobs-([a-z][a-z-]*)$`)
	reIndustryLoc = regexp.MustCompile(`^([a-z]+)-jobs-([a-z][a-z-]*)$`)
	reGuide       = regexp.MustCompile(`^career-hub/guides/([a-z0-9][a-z0-9-]*)$`)
	reBareYear    = regexp.MustCompile(`^\d{4}$`)
)

// seasonalPrefix maps a URL prefix to the season it belongs to. Longer
// prefixes are listed first so matching is unambiguous.
type seasonalPrefix struct {
	prefix string
	season string
}

var seasonalPrefixes = []seasonalPrefix{
	{"christmas-temp-jobs", "holiday"},
	{"back-to-school-jobs", "back-to-school"},
	{"black-friday-jobs", "holiday"},
	{"holiday-temp-jobs", "holiday"},
	{"summer-temp-jobs", "summer"},
	{"spring-temp-jobs", "spring"},
}

// NewClassifier builds the rule table. Season and event slug sets come from
// the catalog so the classifier and the reference data cannot drift apart.
func NewClassifier(cat *catalog.Catalog) *Classifier {
	seasonSlugs := map[string]bool{}
	for _, s := range cat.Seasons {
		seasonSlugs[s.Slug] = true
	}
	eventSlugs := map[string]bool{}
	for _, e := range cat.Events {
		eventSlugs[e.Slug] = true
	}

	rules := []rule{
		{
			// most specific shape first: {season}-{industry}-jobs-{YYYY}
			name: "seasonal-hub", archetype: domain.ArchetypeSeasonalHub,
			match: func(slug string) (map[string]string, bool) {
				m := reSeasonalHub.FindStringSubmatch(slug)
				if m == nil || !seasonSlugs[m[1]] {
					return nil, false
				}
				if _, ok := industryTokens[m[2]]; !ok {
					return nil, false
				}
				return map[string]string{
					domain.ParamSeason:   m[1],
					domain.ParamIndustry: m[2],
					domain.ParamYear:     m[3],
				}, true
			},
		},
		{
			// {event}-(hiring|jobs)-{YYYY}; event must be a known event slug
			name: "event-hiring", archetype: domain.ArchetypeEventHiring,
			match: func(slug string) (map[string]string, bool) {
				m := reEventHiring.FindStringSubmatch(slug)
				if m == nil || !eventSlugs[m[1]] {
					return nil, false
				}
				return map[string]string{
					domain.ParamEvent: m[1],
					domain.ParamYear:  m[2],
				}, true
			},
		},
		{
			// {seasonal-prefix}-{city}. The captured suffix must not itself
			// be a bare 4-digit year, otherwise a year-less hub slug like
			// back-to-school-jobs-2026 would be misread as a city page.
			name: "seasonal-location", archetype: domain.ArchetypeSeasonalLocation,
			match: func(slug string) (map[string]string, bool) {
				for _, sp := range seasonalPrefixes {
					rest, ok := strings.CutPrefix(slug, sp.prefix+"-")
					if !ok || rest == "" {
						continue
					}
					if reBareYear.MatchString(rest) {
						return nil, false
					}
					return map[string]string{
						domain.ParamSeason: sp.season,
						domain.ParamCity:   rest,
					}, true
				}
				return nil, false
			},
		},
		{
			name: "how-to-find-work", archetype: domain.ArchetypeHowToFindWork,
			match: func(slug string) (map[string]string, bool) {
				m := reHowToFind.FindStringSubmatch(slug)
				if m == nil {
					return nil, false
				}
				return map[string]string{domain.ParamCity: m[1]}, true
			},
		},
		{
			name: "best-paying", archetype: domain.ArchetypeBestPaying,
			match: func(slug string) (map[string]string, bool) {
				m := reBestPaying.FindStringSubmatch(slug)
				if m == nil {
					return nil, false
				}
				return map[string]string{domain.ParamCity: m[1]}, true
			},
		},
		{
			// generic {industry}-jobs-{city}, industry token whitelisted so
			// non-industry tokens cannot fall through and be misclassified
			name: "industry-location", archetype: domain.ArchetypeIndustryLocation,
			match: func(slug string) (map[string]string, bool) {
				m := reIndustryLoc.FindStringSubmatch(slug)
				if m == nil {
					return nil, false
				}
				if _, ok := industryTokens[m[1]]; !ok {
					return nil, false
				}
				return map[string]string{
					domain.ParamIndustry: m[1],
					domain.ParamCity:     m[2],
				}, true
			},
		},
		{
			name: "guide", archetype: domain.ArchetypeGuide,
			match: func(slug string) (map[string]string, bool) {
				m := reGuide.FindStringSubmatch(slug)
				if m == nil {
					return nil, false
				}
				return map[string]string{domain.ParamGuide: m[1]}, true
			},
		},
	}

	return &Classifier{rules: rules}
}

// Classify evaluates the rule table in order and returns the first match.
// Slugs are case-sensitive lowercase; a single leading slash is tolerated
// so full request paths can be fed in directly.
func (c *Classifier) Classify(slug string) domain.Classification {
	slug = strings.TrimPrefix(slug, "/")
	for _, r := range c.rules {
		if params, ok := r.match(slug); ok {
			return domain.Classification{Archetype: r.archetype, Params: params}
		}
	}
	return domain.Classification{Archetype: domain.ArchetypeUnknown}
}
