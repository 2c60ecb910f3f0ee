package app

import (
	"fmt"
	"strings"
	"time"

	"careersite/internal/domain"
)

// Assembler turns a resolved page into the final payload. Output is
// deterministic given the resolved entities and the date: structured data
// reuses the exact formatted strings rendered in the visible sections, never
// recomputing a figure on its own.
type Assembler struct {
	baseURL string
}

func NewAssembler(baseURL string) *Assembler {
	return &Assembler{baseURL: strings.TrimSuffix(baseURL, "/")}
}

func (a *Assembler) Assemble(rp ResolvedPage, now time.Time) domain.PagePayload {
	switch rp.Classification.Archetype {
	case domain.ArchetypeSeasonalHub:
		return a.seasonalHub(rp)
	case domain.ArchetypeEventHiring:
		return a.eventHiring(rp)
	case domain.ArchetypeSeasonalLocation:
		return a.seasonalLocation(rp)
	case domain.ArchetypeHowToFindWork:
		return a.howToFindWork(rp)
	case domain.ArchetypeBestPaying:
		return a.bestPaying(rp, now)
	case domain.ArchetypeIndustryLocation:
		return a.industryLocation(rp, now)
	case domain.ArchetypeGuide:
		return a.guide(rp)
	}
	// resolver never hands an unknown archetype to the assembler
	return domain.PagePayload{Slug: rp.Slug, Archetype: rp.Classification.Archetype}
}

func (a *Assembler) industryLocation(rp ResolvedPage, now time.Time) domain.PagePayload {
	city, tok := *rp.City, *rp.Industry
	ranked := RankRoles(rp.Roles, city.CostIndex)
	shifts := EstimateOpenShifts(city.Slug, tok.Token, city.TopIndustries)

	rateStr := FormatRate(rankedOverall(ranked))

	title := fmt.Sprintf("%s Jobs in %s, %s", tok.Display, city.Name, city.State)
	desc := fmt.Sprintf("Find flexible %s jobs in %s. Around %d open shifts, paying %s.",
		strings.ToLower(tok.Display), city.Name, shifts, rateStr)

	sections := []domain.Section{
		{
			Heading: fmt.Sprintf("%s work in %s", tok.Display, city.Name),
			Body: fmt.Sprintf("%s has around %d open %s shifts right now. Rates run %s, adjusted for the local cost of living.",
				city.Name, shifts, strings.ToLower(tok.Display), rateStr),
		},
		rolesSection(ranked),
		{
			Heading: fmt.Sprintf("Why %s", city.Name),
			Body: fmt.Sprintf("%s's busiest sectors are %s, and it sits in the %s region with a population of %s.",
				city.Name, joinList(city.TopIndustries), city.Region, formatPopulation(city.Population)),
		},
	}

	faqs := industryCityFAQs(city, tok, rateStr, shifts)
	docs := []domain.StructuredDoc{
		a.jobPostingDoc(rp.Slug, title, desc, city, rankedOverall(ranked), now),
		faqDoc(faqs),
	}

	return domain.PagePayload{
		Slug: rp.Slug, Archetype: domain.ArchetypeIndustryLocation,
		Title: title, Description: desc,
		Sections: sections, FAQs: faqs, StructuredData: docs,
	}
}

func (a *Assembler) bestPaying(rp ResolvedPage, now time.Time) domain.PagePayload {
	city := *rp.City
	ranked := RankRoles(rp.Roles, city.CostIndex)

	title := fmt.Sprintf("Best Paying Temp Jobs in %s, %s", city.Name, city.State)
	var top string
	if len(ranked) > 0 {
		top = fmt.Sprintf("%s at %s", ranked[0].Role.Title, FormatRate(ranked[0].Adjusted))
	}
	desc := fmt.Sprintf("The highest paying temp jobs in %s, ranked by locally adjusted rate. Top spot: %s.", city.Name, top)

	var b strings.Builder
	for i, rr := range ranked {
		fmt.Fprintf(&b, "%d. %s (%s) at %s. ", i+1, rr.Role.Title, rr.Role.Industry, FormatRate(rr.Adjusted))
	}
	sections := []domain.Section{
		{
			Heading: fmt.Sprintf("Top paying temp roles in %s", city.Name),
			Body:    strings.TrimSpace(b.String()),
		},
		{
			Heading: "How these rates are set",
			Body: fmt.Sprintf("National base rates are adjusted by %s's cost-of-living index (%s), and never fall below each role's national minimum.",
				city.Name, FormatMoney(city.CostIndex)),
		},
	}

	faqs := bestPayingFAQs(city, ranked)
	docs := []domain.StructuredDoc{faqDoc(faqs)}
	if len(ranked) > 0 {
		docs = append([]domain.StructuredDoc{
			a.jobPostingDoc(rp.Slug, title, desc, city, ranked[0].Adjusted, now),
		}, docs...)
	}

	return domain.PagePayload{
		Slug: rp.Slug, Archetype: domain.ArchetypeBestPaying,
		Title: title, Description: desc,
		Sections: sections, FAQs: faqs, StructuredData: docs,
	}
}

func (a *Assembler) howToFindWork(rp ResolvedPage) domain.PagePayload {
	city := *rp.City
	ranked := RankRoles(rp.Roles, city.CostIndex)
	rateStr := FormatRate(rankedOverall(ranked))

	title := fmt.Sprintf("How to Find Temp Work in %s, %s", city.Name, city.State)
	desc := fmt.Sprintf("A local guide to picking up temp shifts in %s, where rates run %s.", city.Name, rateStr)

	sections := []domain.Section{
		{
			Heading: fmt.Sprintf("Finding shifts in %s", city.Name),
			Body: fmt.Sprintf("Temp work in %s moves through %s. Pay runs %s depending on the role and shift, with differentials for overnight and weekend work.",
				city.Name, joinList(city.TopIndustries), rateStr),
		},
		{
			Heading: "Getting your first shift",
			Body: "Complete your profile, add any certifications, and claim an open shift. First-timers clear fastest through entry roles like warehouse associate and event staff, then unlock higher-rate shifts through ratings.",
		},
		{
			Heading: "Timing the market",
			Body: fmt.Sprintf("Demand in %s peaks around its %s calendar. Watch for seasonal surges; posted rates rise with them.",
				city.Name, joinList(city.TopIndustries)),
		},
	}

	faqs := []domain.FAQ{
		{
			Question: fmt.Sprintf("How much does temp work pay in %s?", city.Name),
			Answer:   fmt.Sprintf("Rates in %s currently run %s depending on role, shift and certifications.", city.Name, rateStr),
		},
		{
			Question: fmt.Sprintf("What temp work is easiest to get in %s?", city.Name),
			Answer:   fmt.Sprintf("Entry roles in %s hire continuously and rarely require prior experience.", joinList(city.TopIndustries)),
		},
	}

	return domain.PagePayload{
		Slug: rp.Slug, Archetype: domain.ArchetypeHowToFindWork,
		Title: title, Description: desc,
		Sections: sections, FAQs: faqs,
		StructuredData: []domain.StructuredDoc{faqDoc(faqs)},
	}
}

func (a *Assembler) seasonalHub(rp ResolvedPage) domain.PagePayload {
	season, tok := *rp.Season, *rp.Industry
	title := fmt.Sprintf("%s %s Jobs %s", season.Name, tok.Display, rp.Year)
	window := SeasonWindow(season.Months)
	desc := fmt.Sprintf("%s hiring for %s roles in %s: demand is %s from %s, paying %s.",
		season.Name, strings.ToLower(tok.Display), rp.Year, season.DemandLevel, window, season.PayIncrease)

	sections := []domain.Section{
		{
			Heading: fmt.Sprintf("%s %s hiring outlook", season.Name, strings.ToLower(tok.Display)),
			Body: fmt.Sprintf("Demand for %s roles is %s across %s, with pay running %s.",
				strings.ToLower(tok.Display), season.DemandLevel, window, season.PayIncrease),
		},
		{Heading: "Hiring timeline", Body: season.HiringTimeline},
		tipsSection(season.Tips),
	}
	if len(rp.Roles) > 0 {
		sections = append(sections, rolesSection(RankRoles(rp.Roles, 100)))
	}

	faqs := []domain.FAQ{
		{
			Question: fmt.Sprintf("When does %s %s hiring start for %s?", strings.ToLower(season.Name), strings.ToLower(tok.Display), rp.Year),
			Answer:   season.HiringTimeline,
		},
		{
			Question: fmt.Sprintf("How much more does %s work pay during %s?", strings.ToLower(tok.Display), strings.ToLower(season.Name)),
			Answer:   fmt.Sprintf("Seasonal rates run %s while demand stays %s.", season.PayIncrease, season.DemandLevel),
		},
	}

	return domain.PagePayload{
		Slug: rp.Slug, Archetype: domain.ArchetypeSeasonalHub,
		Title: title, Description: desc,
		Sections: sections, FAQs: faqs,
		StructuredData: []domain.StructuredDoc{faqDoc(faqs)},
	}
}

func (a *Assembler) eventHiring(rp ResolvedPage) domain.PagePayload {
	event := *rp.Event
	title := fmt.Sprintf("%s Hiring %s", event.Name, rp.Year)
	scope := "nationwide"
	if len(event.Cities) > 0 {
		scope = "in " + joinList(event.Cities)
	}
	desc := fmt.Sprintf("%s on %s drives surge hiring %s, paying %s.",
		event.Name, event.Date.Format("January 2, 2006"), scope, event.PayIncrease)

	sections := []domain.Section{
		{
			Heading: fmt.Sprintf("%s surge hiring", event.Name),
			Body: fmt.Sprintf("%s lands on %s. Surge staffing runs %s across %s, with rates %s.",
				event.Name, event.Date.Format("January 2, 2006"), scope,
				industriesList(event.Industries), event.PayIncrease),
		},
		tipsSection(event.Tips),
	}

	faqs := []domain.FAQ{
		{
			Question: fmt.Sprintf("When is %s in %s?", event.Name, rp.Year),
			Answer:   fmt.Sprintf("%s falls on %s.", event.Name, event.Date.Format("January 2, 2006")),
		},
		{
			Question: fmt.Sprintf("How much extra does %s work pay?", event.Name),
			Answer:   fmt.Sprintf("Rates run %s.", event.PayIncrease),
		},
	}

	return domain.PagePayload{
		Slug: rp.Slug, Archetype: domain.ArchetypeEventHiring,
		Title: title, Description: desc,
		Sections: sections, FAQs: faqs,
		StructuredData: []domain.StructuredDoc{faqDoc(faqs)},
	}
}

func (a *Assembler) seasonalLocation(rp ResolvedPage) domain.PagePayload {
	season, city := *rp.Season, *rp.City
	window := SeasonWindow(season.Months)
	title := fmt.Sprintf("%s Jobs in %s, %s", season.Name, city.Name, city.State)
	desc := fmt.Sprintf("%s hiring in %s runs %s with %s demand, paying %s.",
		season.Name, city.Name, window, season.DemandLevel, season.PayIncrease)

	sections := []domain.Section{
		{
			Heading: fmt.Sprintf("%s work in %s", season.Name, city.Name),
			Body: fmt.Sprintf("%s demand in %s is %s from %s. Local employers across %s add shifts, with pay %s.",
				season.Name, city.Name, season.DemandLevel, window,
				joinList(city.TopIndustries), season.PayIncrease),
		},
		{Heading: "Hiring timeline", Body: season.HiringTimeline},
		tipsSection(season.Tips),
	}

	faqs := []domain.FAQ{
		{
			Question: fmt.Sprintf("When should I apply for %s work in %s?", strings.ToLower(season.Name), city.Name),
			Answer:   season.HiringTimeline,
		},
		{
			Question: fmt.Sprintf("What does %s work pay in %s?", strings.ToLower(season.Name), city.Name),
			Answer:   fmt.Sprintf("Seasonal rates in %s run %s during the %s window.", city.Name, season.PayIncrease, window),
		},
	}

	return domain.PagePayload{
		Slug: rp.Slug, Archetype: domain.ArchetypeSeasonalLocation,
		Title: title, Description: desc,
		Sections: sections, FAQs: faqs,
		StructuredData: []domain.StructuredDoc{faqDoc(faqs)},
	}
}

func (a *Assembler) guide(rp ResolvedPage) domain.PagePayload {
	art := *rp.Article
	sections := make([]domain.Section, len(art.Sections), len(art.Sections)+1)
	copy(sections, art.Sections)
	if len(art.KeyTakeaways) > 0 {
		sections = append(sections, domain.Section{
			Heading: "Key takeaways",
			Body:    joinSentences(art.KeyTakeaways),
		})
	}

	desc := ""
	if len(art.Sections) > 0 {
		desc = firstSentence(art.Sections[0].Body)
	}

	return domain.PagePayload{
		Slug: rp.Slug, Archetype: domain.ArchetypeGuide,
		Title: art.Title, Description: desc,
		Sections: sections, FAQs: art.FAQs,
		StructuredData: []domain.StructuredDoc{faqDoc(art.FAQs)},
	}
}

// ---- structured data ----

// jobPostingDoc builds the JobPosting-like document. The salary strings are
// the same FormatMoney output used in the visible copy; they are passed in
// pre-formatted, never recomputed here.
func (a *Assembler) jobPostingDoc(slug, title, desc string, city domain.City, pay domain.Range, now time.Time) domain.StructuredDoc {
	return domain.StructuredDoc{
		"@context":       "https://schema.org",
		"@type":          "JobPosting",
		"title":          title,
		"description":    desc,
		"url":            a.baseURL + "/" + slug,
		"datePosted":     now.Format("2006-01-02"),
		"employmentType": "TEMPORARY",
		"jobLocation": domain.StructuredDoc{
			"@type": "Place",
			"address": domain.StructuredDoc{
				"@type":           "PostalAddress",
				"addressLocality": city.Name,
				"addressRegion":   city.State,
				"addressCountry":  "US",
			},
		},
		"baseSalary": domain.StructuredDoc{
			"@type":    "MonetaryAmount",
			"currency": "USD",
			"value": domain.StructuredDoc{
				"@type":    "QuantitativeValue",
				"minValue": FormatMoney(pay.Min),
				"maxValue": FormatMoney(pay.Max),
				"unitText": "HOUR",
			},
		},
	}
}

// faqDoc mirrors the visible FAQ list exactly.
func faqDoc(faqs []domain.FAQ) domain.StructuredDoc {
	items := make([]domain.StructuredDoc, len(faqs))
	for i, f := range faqs {
		items[i] = domain.StructuredDoc{
			"@type": "Question",
			"name":  f.Question,
			"acceptedAnswer": domain.StructuredDoc{
				"@type": "Answer",
				"text":  f.Answer,
			},
		}
	}
	return domain.StructuredDoc{
		"@context":   "https://schema.org",
		"@type":      "FAQPage",
		"mainEntity": items,
	}
}

// ---- section and FAQ helpers ----

func rolesSection(ranked []RankedRole) domain.Section {
	var b strings.Builder
	for _, rr := range ranked {
		fmt.Fprintf(&b, "%s: %s. ", rr.Role.Title, FormatRate(rr.Adjusted))
	}
	return domain.Section{Heading: "Open roles and rates", Body: strings.TrimSpace(b.String())}
}

func tipsSection(tips []string) domain.Section {
	return domain.Section{Heading: "Tips from the field", Body: joinSentences(tips)}
}

func industryCityFAQs(city domain.City, tok IndustryToken, rateStr string, shifts int) []domain.FAQ {
	return []domain.FAQ{
		{
			Question: fmt.Sprintf("How much do %s jobs pay in %s?", strings.ToLower(tok.Display), city.Name),
			Answer:   fmt.Sprintf("%s jobs in %s currently pay %s, adjusted for local cost of living.", tok.Display, city.Name, rateStr),
		},
		{
			Question: fmt.Sprintf("How many %s shifts are open in %s?", strings.ToLower(tok.Display), city.Name),
			Answer:   fmt.Sprintf("There are around %d open %s shifts in %s right now.", shifts, strings.ToLower(tok.Display), city.Name),
		},
		{
			Question: fmt.Sprintf("Do I need experience for %s work in %s?", strings.ToLower(tok.Display), city.Name),
			Answer:   "Entry-level shifts are open to first-timers; specialized roles list their requirements on the shift.",
		},
	}
}

func bestPayingFAQs(city domain.City, ranked []RankedRole) []domain.FAQ {
	faqs := []domain.FAQ{
		{
			Question: fmt.Sprintf("Why do rates in %s differ from national rates?", city.Name),
			Answer:   fmt.Sprintf("Rates scale with %s's cost-of-living index of %s, and never drop below each role's national minimum.", city.Name, FormatMoney(city.CostIndex)),
		},
	}
	if len(ranked) > 0 {
		faqs = append([]domain.FAQ{{
			Question: fmt.Sprintf("What is the best paying temp job in %s?", city.Name),
			Answer:   fmt.Sprintf("%s currently tops the list at %s.", ranked[0].Role.Title, FormatRate(ranked[0].Adjusted)),
		}}, faqs...)
	}
	return faqs
}

func rankedOverall(ranked []RankedRole) domain.Range {
	if len(ranked) == 0 {
		return domain.Range{}
	}
	overall := ranked[0].Adjusted
	for _, rr := range ranked[1:] {
		if rr.Adjusted.Min < overall.Min {
			overall.Min = rr.Adjusted.Min
		}
		if rr.Adjusted.Max > overall.Max {
			overall.Max = rr.Adjusted.Max
		}
	}
	return overall
}

func industriesList(inds []domain.Industry) string {
	ss := make([]string, len(inds))
	for i, v := range inds {
		ss[i] = string(v)
	}
	return joinList(ss)
}

func joinList(ss []string) string {
	switch len(ss) {
	case 0:
		return ""
	case 1:
		return ss[0]
	case 2:
		return ss[0] + " and " + ss[1]
	default:
		return strings.Join(ss[:len(ss)-1], ", ") + ", and " + ss[len(ss)-1]
	}
}

func joinSentences(ss []string) string {
	var b strings.Builder
	for _, s := range ss {
		b.WriteString(s)
		if !strings.HasSuffix(s, ".") {
			b.WriteString(".")
		}
		b.WriteString(" ")
	}
	return strings.TrimSpace(b.String())
}

func firstSentence(s string) string {
	if i := strings.Index(s, ". "); i >= 0 {
		return s[:i+1]
	}
	return s
}

func formatPopulation(p int) string {
	s := fmt.Sprintf("%d", p)
	var b strings.Builder
	for i, r := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	return b.String()
}
