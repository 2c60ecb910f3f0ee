package app_test

import (
	"errors"
	"testing"

	"careersite/internal/app"
	"careersite/internal/domain"
)

func TestResolve_IndustryLocation(t *testing.T) {
	cat := mustCatalog(t)
	cl := app.NewClassifier(cat)
	rs := app.NewResolver(cat)

	c := cl.Classify("warehouse-jobs-philadelphia")
	rp, err := rs.Resolve("warehouse-jobs-philadelphia", c)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if rp.City == nil || rp.City.Slug != "philadelphia" {
		t.Fatalf("expected philadelphia, got %+v", rp.City)
	}

	// "warehouse" is a display token for the internal "industrial" enum;
	// the indirection must hold, not a string equality
	if rp.Industry == nil || rp.Industry.Token != "warehouse" || rp.Industry.Industry != domain.IndustryIndustrial {
		t.Fatalf("unexpected industry token: %+v", rp.Industry)
	}
	if len(rp.Roles) == 0 {
		t.Fatalf("expected industrial roles")
	}
	for _, r := range rp.Roles {
		if r.Industry != domain.IndustryIndustrial {
			t.Errorf("role %s has industry %s, want industrial", r.Slug, r.Industry)
		}
	}
}

func TestResolve_NotFound(t *testing.T) {
	cat := mustCatalog(t)
	cl := app.NewClassifier(cat)
	rs := app.NewResolver(cat)

	// classifies fine, but no such city exists
	for _, slug := range []string{
		"warehouse-jobs-atlantis",
		"best-paying-temp-jobs-atlantis",
		"how-to-find-temp-work-in-atlantis",
		"christmas-temp-jobs-atlantis",
		"career-hub/guides/no-such-guide",
	} {
		c := cl.Classify(slug)
		if c.Archetype == domain.ArchetypeUnknown {
			t.Fatalf("%q should classify before failing resolution", slug)
		}
		_, err := rs.Resolve(slug, c)
		if !errors.Is(err, domain.ErrNotFound) {
			t.Errorf("Resolve(%q) error = %v, want ErrNotFound", slug, err)
		}
	}
}

func TestResolve_UnknownIsTerminal(t *testing.T) {
	cat := mustCatalog(t)
	rs := app.NewResolver(cat)

	_, err := rs.Resolve("whatever", domain.Classification{Archetype: domain.ArchetypeUnknown})
	if !errors.Is(err, domain.ErrUnknownSlug) {
		t.Fatalf("error = %v, want ErrUnknownSlug", err)
	}
}

func TestResolve_SeasonalLocation(t *testing.T) {
	cat := mustCatalog(t)
	cl := app.NewClassifier(cat)
	rs := app.NewResolver(cat)

	c := cl.Classify("christmas-temp-jobs-dallas")
	rp, err := rs.Resolve("christmas-temp-jobs-dallas", c)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if rp.Season == nil || rp.Season.Slug != "holiday" {
		t.Fatalf("expected holiday season, got %+v", rp.Season)
	}
	if rp.City == nil || rp.City.Slug != "dallas" {
		t.Fatalf("expected dallas, got %+v", rp.City)
	}
}

func TestResolve_RankingPagesGetAllRoles(t *testing.T) {
	cat := mustCatalog(t)
	cl := app.NewClassifier(cat)
	rs := app.NewResolver(cat)

	c := cl.Classify("best-paying-temp-jobs-austin")
	rp, err := rs.Resolve("best-paying-temp-jobs-austin", c)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if len(rp.Roles) != len(cat.Roles) {
		t.Fatalf("ranking page should see all %d roles, got %d", len(cat.Roles), len(rp.Roles))
	}
}
