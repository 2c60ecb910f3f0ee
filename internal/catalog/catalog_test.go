package catalog

import (
	"testing"

	"careersite/internal/domain"
)

func TestNew_ShippedTablesAreValid(t *testing.T) {
	cat, err := New()
	if err != nil {
		t.Fatalf("shipped tables failed validation: %v", err)
	}
	if len(cat.Cities) == 0 || len(cat.Roles) == 0 || len(cat.Seasons) == 0 ||
		len(cat.Events) == 0 || len(cat.Articles) == 0 || len(cat.Locations) == 0 {
		t.Fatal("one or more tables are empty")
	}
}

func TestLookups(t *testing.T) {
	cat, err := New()
	if err != nil {
		t.Fatalf("catalog: %v", err)
	}

	city, ok := cat.City("austin")
	if !ok {
		t.Fatal("austin missing")
	}
	if city.CostIndex != 103 {
		t.Errorf("austin cost index = %v, want 103", city.CostIndex)
	}

	if _, ok := cat.City("atlantis"); ok {
		t.Error("lookup of unknown city succeeded")
	}
	if _, ok := cat.Role("warehouse-associate"); !ok {
		t.Error("warehouse-associate missing")
	}
	if _, ok := cat.Season("holiday"); !ok {
		t.Error("holiday season missing")
	}
	if _, ok := cat.Event("black-friday"); !ok {
		t.Error("black-friday event missing")
	}
	if _, ok := cat.Article("pay-explained"); !ok {
		t.Error("pay-explained article missing")
	}
}

func TestLookups_ReturnCopies(t *testing.T) {
	cat, err := New()
	if err != nil {
		t.Fatalf("catalog: %v", err)
	}
	city, _ := cat.City("austin")
	city.CostIndex = 999

	again, _ := cat.City("austin")
	if again.CostIndex == 999 {
		t.Fatal("lookup returned a mutable reference into the table")
	}
}

func TestRolesByIndustry_TableOrder(t *testing.T) {
	cat, err := New()
	if err != nil {
		t.Fatalf("catalog: %v", err)
	}
	got := cat.RolesByIndustry(domain.IndustryIndustrial)
	if len(got) == 0 {
		t.Fatal("no industrial roles")
	}
	// subset must preserve the full table's relative order
	pos := map[string]int{}
	for i, r := range cat.Roles {
		pos[r.Slug] = i
	}
	for i := 1; i < len(got); i++ {
		if pos[got[i-1].Slug] > pos[got[i].Slug] {
			t.Fatalf("order broken at %s before %s", got[i-1].Slug, got[i].Slug)
		}
	}
}

func TestValidate_CatchesDanglingEventCity(t *testing.T) {
	c := &Catalog{
		Cities: []domain.City{{
			Slug: "austin", Name: "Austin", CostIndex: 103,
			WageRange: domain.Range{Min: 14, Max: 26},
		}},
		Events: []domain.Event{{Slug: "sxsw", Name: "SXSW", Cities: []string{"atlantis"}}},
	}
	if err := c.index(); err != nil {
		t.Fatalf("index: %v", err)
	}
	if err := c.validate(); err == nil {
		t.Fatal("dangling event city passed validation")
	}
}

func TestValidate_CatchesBadRange(t *testing.T) {
	c := &Catalog{
		Roles: []domain.Role{{
			Slug: "bad", Industry: domain.IndustryRetail,
			BaseRate: domain.Range{Min: 20, Max: 10},
		}},
	}
	if err := c.index(); err != nil {
		t.Fatalf("index: %v", err)
	}
	if err := c.validate(); err == nil {
		t.Fatal("inverted range passed validation")
	}
}

func TestIndex_CatchesDuplicateSlug(t *testing.T) {
	c := &Catalog{
		Cities: []domain.City{
			{Slug: "austin", CostIndex: 103, WageRange: domain.Range{Min: 14, Max: 26}},
			{Slug: "austin", CostIndex: 103, WageRange: domain.Range{Min: 14, Max: 26}},
		},
	}
	if err := c.index(); err == nil {
		t.Fatal("duplicate slug passed indexing")
	}
}
