package domain

import "errors"

// Archetype is one of the fixed page shapes the classifier can produce.
type Archetype string

const (
	ArchetypeSeasonalHub      Archetype = "seasonal-hub"
	ArchetypeEventHiring      Archetype = "event-hiring"
	ArchetypeSeasonalLocation Archetype = "seasonal-location"
	ArchetypeHowToFindWork    Archetype = "how-to-find-work"
	ArchetypeBestPaying       Archetype = "best-paying"
	ArchetypeIndustryLocation Archetype = "industry-location"
	ArchetypeGuide            Archetype = "guide"
	ArchetypeUnknown          Archetype = "unknown"
)

// Classification is the classifier's verdict for a slug: the archetype plus
// the parameters extracted from it. Params is nil for ArchetypeUnknown.
type Classification struct {
	Archetype Archetype
	Params    map[string]string
}

// Param keys used across classifier, resolver and enumerator.
const (
	ParamCity     = "city"
	ParamSeason   = "season"
	ParamEvent    = "event"
	ParamIndustry = "industry"
	ParamYear     = "year"
	ParamGuide    = "guide"
)

// PagePayload is the fully assembled page: visible copy plus the structured
// documents that mirror it.
type PagePayload struct {
	Slug        string    `json:"slug"`
	Archetype   Archetype `json:"archetype"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Sections    []Section `json:"sections"`
	FAQs        []FAQ     `json:"faqs"`

	// StructuredData holds schema.org-like documents (JobPosting, FAQPage).
	// Any figure in here is the same formatted string rendered in Sections;
	// both come from one calculator call.
	StructuredData []StructuredDoc `json:"structuredData"`
}

// StructuredDoc marshals with sorted keys, which keeps output reproducible.
type StructuredDoc map[string]any

// The page pipeline has exactly two failure kinds; both surface as a 404.
var (
	// ErrUnknownSlug: no classifier rule matched.
	ErrUnknownSlug = errors.New("unknown slug")
	// ErrNotFound: a rule matched but a referenced entity does not exist.
	ErrNotFound = errors.New("page not found")
)
