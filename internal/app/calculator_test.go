package app_test

import (
	"testing"
	"time"

	"careersite/internal/app"
	"careersite/internal/domain"
)

func TestAdjustPay_ScalesAndRounds(t *testing.T) {
	base := domain.Range{Min: 15.00, Max: 21.00}

	got := app.AdjustPay(base, 103)
	if got.Min != 15.45 || got.Max != 21.63 {
		t.Fatalf("adjust at 103: got %+v", got)
	}

	// index 100 is identity
	got = app.AdjustPay(base, 100)
	if got != base {
		t.Fatalf("adjust at 100: got %+v", got)
	}
}

// A below-average cost index must not imply a lower wage floor than the
// role's stated minimum. The clamp is deliberate.
func TestAdjustPay_FloorsMinAtBase(t *testing.T) {
	base := domain.Range{Min: 15.00, Max: 21.00}
	got := app.AdjustPay(base, 92)
	if got.Min != base.Min {
		t.Fatalf("min = %v, want floored at %v", got.Min, base.Min)
	}
	if got.Max != 19.32 {
		t.Fatalf("max = %v, want 19.32", got.Max)
	}
}

func TestPayFloorInvariant_AllPairs(t *testing.T) {
	cat := mustCatalog(t)
	for _, city := range cat.Cities {
		for _, role := range cat.Roles {
			adj := app.AdjustPay(role.BaseRate, city.CostIndex)
			if adj.Min < role.BaseRate.Min {
				t.Errorf("pay floor violated: role=%s city=%s adj.Min=%v base.Min=%v",
					role.Slug, city.Slug, adj.Min, role.BaseRate.Min)
			}
		}
	}
}

func TestRankRoles_OrderAndDeterminism(t *testing.T) {
	cat := mustCatalog(t)

	r1 := app.RankRoles(cat.Roles, 103)
	r2 := app.RankRoles(cat.Roles, 103)
	if len(r1) != len(cat.Roles) {
		t.Fatalf("ranked %d roles, want %d", len(r1), len(cat.Roles))
	}
	for i := range r1 {
		if r1[i].Role.Slug != r2[i].Role.Slug {
			t.Fatalf("rank order differs between calls at %d: %s vs %s", i, r1[i].Role.Slug, r2[i].Role.Slug)
		}
		if i > 0 && r1[i].Adjusted.Max > r1[i-1].Adjusted.Max {
			t.Fatalf("not descending at %d: %v > %v", i, r1[i].Adjusted.Max, r1[i-1].Adjusted.Max)
		}
	}

	// Austin's cost index is 103, so the top entry is the role with the
	// highest baseRate.Max * 1.03
	var wantTop domain.Role
	var best float64
	for _, r := range cat.Roles {
		if v := r.BaseRate.Max * 1.03; v > best {
			best = v
			wantTop = r
		}
	}
	if r1[0].Role.Slug != wantTop.Slug {
		t.Fatalf("top ranked = %s, want %s", r1[0].Role.Slug, wantTop.Slug)
	}
}

func TestRankRoles_StableTies(t *testing.T) {
	roles := []domain.Role{
		{Slug: "a", BaseRate: domain.Range{Min: 10, Max: 20}},
		{Slug: "b", BaseRate: domain.Range{Min: 12, Max: 20}},
		{Slug: "c", BaseRate: domain.Range{Min: 11, Max: 20}},
	}
	ranked := app.RankRoles(roles, 100)
	for i, want := range []string{"a", "b", "c"} {
		if ranked[i].Role.Slug != want {
			t.Fatalf("tie order not stable: got %s at %d, want %s", ranked[i].Role.Slug, i, want)
		}
	}
}

func TestEstimateOpenShifts_Deterministic(t *testing.T) {
	top := []string{"warehouse & logistics", "retail"}
	a := app.EstimateOpenShifts("philadelphia", "warehouse", top)
	for i := 0; i < 5; i++ {
		if b := app.EstimateOpenShifts("philadelphia", "warehouse", top); b != a {
			t.Fatalf("estimate changed between calls: %d vs %d", a, b)
		}
	}
}

func TestEstimateOpenShifts_Bands(t *testing.T) {
	matched := app.EstimateOpenShifts("philadelphia", "warehouse", []string{"warehouse & logistics"})
	if matched < 40 || matched > 119 {
		t.Fatalf("matched estimate %d outside [40,119]", matched)
	}
	unmatched := app.EstimateOpenShifts("philadelphia", "warehouse", []string{"healthcare"})
	if unmatched < 10 || unmatched > 39 {
		t.Fatalf("unmatched estimate %d outside [10,39]", unmatched)
	}
}

func TestEstimateOpenShifts_VariesByKey(t *testing.T) {
	top := []string{"warehouse & logistics"}
	a := app.EstimateOpenShifts("philadelphia", "warehouse", top)
	b := app.EstimateOpenShifts("dallas", "warehouse", top)
	c := app.EstimateOpenShifts("chicago", "warehouse", top)
	if a == b && b == c {
		t.Fatalf("estimates identical across cities (%d); hash not keyed on city", a)
	}
}

func TestFormatRate(t *testing.T) {
	got := app.FormatRate(domain.Range{Min: 15, Max: 21.625})
	if got != "$15.00-$21.63/hr" {
		t.Fatalf("FormatRate = %q", got)
	}
}

func TestSeasonWindow(t *testing.T) {
	tests := []struct {
		months []time.Month
		want   string
	}{
		{[]time.Month{time.October, time.November, time.December}, "October through December"},
		{[]time.Month{time.August, time.September}, "August and September"},
		{[]time.Month{time.June}, "June"},
		{nil, ""},
	}
	for _, tt := range tests {
		if got := app.SeasonWindow(tt.months); got != tt.want {
			t.Errorf("SeasonWindow(%v) = %q, want %q", tt.months, got, tt.want)
		}
	}
}
