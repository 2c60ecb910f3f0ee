package app_test

import (
	"bytes"
	"context"
	"sort"
	"strings"
	"testing"
	"time"

	"careersite/internal/app"
)

func TestEnumerate_SortedUniqueAndDated(t *testing.T) {
	cat := mustCatalog(t)
	e := app.NewEnumerator(cat, "https://www.flexshifts.example")
	now := time.Date(2026, time.March, 5, 12, 0, 0, 0, time.UTC)

	entries := e.Enumerate(now)
	if len(entries) == 0 {
		t.Fatal("no entries enumerated")
	}
	if !sort.SliceIsSorted(entries, func(i, j int) bool { return entries[i].Path < entries[j].Path }) {
		t.Error("entries not sorted by path")
	}
	seen := map[string]bool{}
	for _, ent := range entries {
		if seen[ent.Path] {
			t.Errorf("duplicate path %q", ent.Path)
		}
		seen[ent.Path] = true
		if ent.LastMod != "2026-03-05" {
			t.Errorf("path %q lastmod = %q", ent.Path, ent.LastMod)
		}
	}

	for _, want := range []string{
		"warehouse-jobs-philadelphia",
		"best-paying-temp-jobs-austin",
		"how-to-find-temp-work-in-chicago",
		"christmas-temp-jobs-dallas",
		"black-friday-hiring-2026",
		"career-hub/guides/pay-explained",
	} {
		if !seen[want] {
			t.Errorf("missing expected path %q", want)
		}
	}
}

// Every URL the sitemap emits must classify and resolve back to a page.
// This is the invariant that keeps the enumerator and the classifier, two
// independent definitions of the route space, from drifting apart.
func TestEnumerate_RoundTripsThroughClassifier(t *testing.T) {
	cat := mustCatalog(t)
	cl := app.NewClassifier(cat)
	rs := app.NewResolver(cat)
	e := app.NewEnumerator(cat, "https://www.flexshifts.example")
	now := time.Date(2026, time.March, 5, 12, 0, 0, 0, time.UTC)

	entries := e.Enumerate(now)
	if err := app.VerifyRoundTrip(context.Background(), cl, rs, entries, 8); err != nil {
		t.Fatalf("round trip: %v", err)
	}
}

func TestVerifyRoundTrip_ReportsBadPaths(t *testing.T) {
	cat := mustCatalog(t)
	cl := app.NewClassifier(cat)
	rs := app.NewResolver(cat)

	entries := []app.Entry{
		{Path: "warehouse-jobs-philadelphia"},
		{Path: "not-a-real-page"},
		{Path: "warehouse-jobs-atlantis"},
	}
	err := app.VerifyRoundTrip(context.Background(), cl, rs, entries, 2)
	if err == nil {
		t.Fatal("expected error for bad paths")
	}
	msg := err.Error()
	if !strings.Contains(msg, "2 paths") {
		t.Errorf("error %q does not count 2 bad paths", msg)
	}
	if !strings.Contains(msg, "not-a-real-page") || !strings.Contains(msg, "warehouse-jobs-atlantis") {
		t.Errorf("error %q does not name the bad paths", msg)
	}
}

func TestWriteXML_ByteStable(t *testing.T) {
	cat := mustCatalog(t)
	e := app.NewEnumerator(cat, "https://www.flexshifts.example")
	now := time.Date(2026, time.March, 5, 12, 0, 0, 0, time.UTC)
	entries := e.Enumerate(now)

	var a, b bytes.Buffer
	if err := e.WriteXML(&a, entries); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := e.WriteXML(&b, entries); err != nil {
		t.Fatalf("write: %v", err)
	}
	if !bytes.Equal(a.Bytes(), b.Bytes()) {
		t.Fatal("sitemap XML differs between renders")
	}

	out := a.String()
	if !strings.HasPrefix(out, "<?xml") {
		t.Error("missing XML declaration")
	}
	if !strings.Contains(out, `<urlset xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">`) {
		t.Error("missing urlset namespace")
	}
	if !strings.Contains(out, "<loc>https://www.flexshifts.example/warehouse-jobs-philadelphia</loc>") {
		t.Error("missing absolute loc entry")
	}
	if !strings.Contains(out, "<priority>0.8</priority>") {
		t.Error("missing fixed-precision priority")
	}
}

func TestWriteXML_EventDatedByEventYear(t *testing.T) {
	cat := mustCatalog(t)
	e := app.NewEnumerator(cat, "https://www.flexshifts.example")

	// enumerate in a different year; event paths still carry the event's own year
	now := time.Date(2027, time.January, 10, 0, 0, 0, 0, time.UTC)
	entries := e.Enumerate(now)
	var found bool
	for _, ent := range entries {
		if ent.Path == "black-friday-hiring-2026" {
			found = true
		}
		if ent.Path == "black-friday-hiring-2027" {
			t.Error("event path dated by enumeration year, want event year")
		}
	}
	if !found {
		t.Error("black-friday-hiring-2026 not enumerated")
	}
}
