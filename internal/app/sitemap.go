package app

import (
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"sort"
	"sync"
	"time"

	"golang.org/x/sync/semaphore"

	"careersite/internal/catalog"
	"careersite/internal/domain"
)

// ChangeFreq is the sitemap changefreq enum.
type ChangeFreq string

const (
	FreqAlways  ChangeFreq = "always"
	FreqHourly  ChangeFreq = "hourly"
	FreqDaily   ChangeFreq = "daily"
	FreqWeekly  ChangeFreq = "weekly"
	FreqMonthly ChangeFreq = "monthly"
	FreqYearly  ChangeFreq = "yearly"
	FreqNever   ChangeFreq = "never"
)

// Entry is one sitemap row. Path has no leading slash.
type Entry struct {
	Path       string
	LastMod    string // ISO date
	ChangeFreq ChangeFreq
	Priority   float64
}

// Enumerator produces the complete URL set by walking the reference tables
// directly. It deliberately does not go through the classifier: it is the
// second, independent definition of the route space, and VerifyRoundTrip is
// what keeps the two definitions from diverging.
type Enumerator struct {
	cat     *catalog.Catalog
	baseURL string
}

func NewEnumerator(cat *catalog.Catalog, baseURL string) *Enumerator {
	return &Enumerator{cat: cat, baseURL: baseURL}
}

// Enumerate walks every table cross-product and returns the full URL set,
// sorted by path. Output depends only on the tables and now's date, so the
// sitemap is regenerable byte for byte.
func (e *Enumerator) Enumerate(now time.Time) []Entry {
	lastmod := now.Format("2006-01-02")
	year := fmt.Sprintf("%d", now.Year())

	var entries []Entry
	add := func(path string, freq ChangeFreq, prio float64) {
		entries = append(entries, Entry{Path: path, LastMod: lastmod, ChangeFreq: freq, Priority: prio})
	}

	// city x four fixed industry tokens
	for _, city := range e.cat.Cities {
		for _, tok := range canonicalTokens {
			add(tok+"-jobs-"+city.Slug, FreqWeekly, 0.8)
		}
		// city x two fixed intent templates
		add("how-to-find-temp-work-in-"+city.Slug, FreqMonthly, 0.7)
		add("best-paying-temp-jobs-"+city.Slug, FreqWeekly, 0.7)
	}

	// seasonal prefix x city
	for _, sp := range seasonalPrefixes {
		for _, city := range e.cat.Cities {
			add(sp.prefix+"-"+city.Slug, FreqMonthly, 0.6)
		}
	}

	// season hubs: season x its affected industries, current year
	for _, season := range e.cat.Seasons {
		for _, ind := range season.Industries {
			add(season.Slug+"-"+urlTokenFor(ind)+"-jobs-"+year, FreqWeekly, 0.9)
		}
	}

	// events, dated by the event itself
	for _, event := range e.cat.Events {
		add(fmt.Sprintf("%s-hiring-%d", event.Slug, event.Date.Year()), FreqWeekly, 0.9)
	}

	// guides
	for _, art := range e.cat.Articles {
		add("career-hub/guides/"+art.Slug, FreqMonthly, 0.5)
	}

	sort.Slice(entries, func(i, j int) bool { return entries[i].Path < entries[j].Path })
	return entries
}

// urlTokenFor returns the canonical URL token for an industry; industrial
// surfaces as "warehouse" on every URL.
func urlTokenFor(ind domain.Industry) string {
	if ind == domain.IndustryIndustrial {
		return "warehouse"
	}
	return string(ind)
}

// VerifyRoundTrip re-classifies and re-resolves every enumerated path.
// Every URL the sitemap claims exists must resolve to a real page; any
// Unknown or NotFound is a build-breaking defect, returned as one error
// listing the offending paths. Work is fanned out over bounded workers;
// each path check is independent.
func VerifyRoundTrip(ctx context.Context, cl *Classifier, rs *Resolver, entries []Entry, workers int) error {
	if workers <= 0 {
		workers = 4
	}
	sem := semaphore.NewWeighted(int64(workers))

	var (
		mu  sync.Mutex
		bad []string
		wg  sync.WaitGroup
	)
	for _, ent := range entries {
		ent := ent
		if err := sem.Acquire(ctx, 1); err != nil {
			return err
		}
		wg.Add(1)
		go func() {
			defer wg.Done()
			defer sem.Release(1)

			c := cl.Classify(ent.Path)
			if c.Archetype == domain.ArchetypeUnknown {
				mu.Lock()
				bad = append(bad, ent.Path+" (unknown)")
				mu.Unlock()
				return
			}
			if _, err := rs.Resolve(ent.Path, c); err != nil {
				mu.Lock()
				bad = append(bad, fmt.Sprintf("%s (%v)", ent.Path, err))
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	if len(bad) > 0 {
		sort.Strings(bad)
		return fmt.Errorf("sitemap round-trip failed for %d paths: %v", len(bad), bad)
	}
	return nil
}

// ---- XML rendering ----

type urlsetXML struct {
	XMLName xml.Name `xml:"urlset"`
	Xmlns   string   `xml:"xmlns,attr"`
	URLs    []urlXML `xml:"url"`
}

type urlXML struct {
	Loc        string `xml:"loc"`
	LastMod    string `xml:"lastmod"`
	ChangeFreq string `xml:"changefreq"`
	Priority   string `xml:"priority"`
}

// WriteXML renders the sitemap document. Priorities are fixed to one
// decimal so the byte output is stable.
func (e *Enumerator) WriteXML(w io.Writer, entries []Entry) error {
	set := urlsetXML{Xmlns: "http://www.sitemaps.org/schemas/sitemap/0.9"}
	set.URLs = make([]urlXML, len(entries))
	for i, ent := range entries {
		set.URLs[i] = urlXML{
			Loc:        e.baseURL + "/" + ent.Path,
			LastMod:    ent.LastMod,
			ChangeFreq: string(ent.ChangeFreq),
			Priority:   fmt.Sprintf("%.1f", ent.Priority),
		}
	}
	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(set); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\n")
	return err
}
