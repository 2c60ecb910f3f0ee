package app

import (
	"fmt"
	"hash/fnv"
	"math"
	"sort"
	"strings"
	"time"

	"careersite/internal/domain"
)

// Pure derived-value functions. Everything in this file is deterministic
// given its inputs; page output must be reproducible for golden tests.

// AdjustPay scales a base rate by the city's cost-of-living index and rounds
// to cents. The min is then floored at the base min: a below-average cost
// index must not imply a lower wage floor than the role's stated minimum.
func AdjustPay(base domain.Range, costIndex float64) domain.Range {
	f := costIndex / 100
	adj := domain.Range{Min: round2(base.Min * f), Max: round2(base.Max * f)}
	if adj.Min < base.Min {
		adj.Min = base.Min
	}
	return adj
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// RankedRole is a role with its locale-adjusted range, as ranked for a city.
type RankedRole struct {
	Role     domain.Role
	Adjusted domain.Range
}

// RankRoles orders roles by adjusted max rate descending. The sort is
// stable, so ties keep original table order and two calls with identical
// inputs produce identical order.
func RankRoles(roles []domain.Role, costIndex float64) []RankedRole {
	out := make([]RankedRole, len(roles))
	for i, r := range roles {
		out[i] = RankedRole{Role: r, Adjusted: AdjustPay(r.BaseRate, costIndex)}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Adjusted.Max > out[j].Adjusted.Max
	})
	return out
}

// Shift-count estimate bands. The number is a plausible-looking figure, not
// live inventory; cities whose top industries overlap the page's industry
// land in the higher band.
const (
	shiftBaseMatched   = 40
	shiftSpanMatched   = 80
	shiftBaseUnmatched = 10
	shiftSpanUnmatched = 30
)

// EstimateOpenShifts returns the open-shift figure shown on industry pages.
// It is a deterministic hash of (citySlug, industry) so the same page always
// renders the same number.
func EstimateOpenShifts(citySlug, industry string, topIndustries []string) int {
	h := fnv.New32a()
	h.Write([]byte(citySlug))
	h.Write([]byte{0})
	h.Write([]byte(industry))
	n := int(h.Sum32())

	if industryOverlaps(industry, topIndustries) {
		return shiftBaseMatched + n%shiftSpanMatched
	}
	return shiftBaseUnmatched + n%shiftSpanUnmatched
}

// industryOverlaps reports a textual overlap between the page industry and
// a city's top-industries list, in either direction ("warehouse" overlaps
// "warehouse & logistics").
func industryOverlaps(industry string, topIndustries []string) bool {
	ind := strings.ToLower(industry)
	for _, t := range topIndustries {
		t = strings.ToLower(t)
		if strings.Contains(t, ind) || strings.Contains(ind, t) {
			return true
		}
	}
	return false
}

// FormatRate renders a pay range for display. Every surface that shows a
// figure goes through this one formatter so visible text and structured
// data cannot drift.
func FormatRate(r domain.Range) string {
	return fmt.Sprintf("$%s-$%s/hr", FormatMoney(r.Min), FormatMoney(r.Max))
}

func FormatMoney(v float64) string {
	return fmt.Sprintf("%.2f", v)
}

// SeasonWindow renders a season's active months as display copy, e.g.
// "October through December" or "August and September".
func SeasonWindow(months []time.Month) string {
	switch len(months) {
	case 0:
		return ""
	case 1:
		return months[0].String()
	case 2:
		return months[0].String() + " and " + months[1].String()
	default:
		return months[0].String() + " through " + months[len(months)-1].String()
	}
}
