package catalog

import (
	"time"

	"careersite/internal/domain"
)

var seasons = []domain.Season{
	{
		Slug: "holiday", Name: "Holiday Season",
		Months: []time.Month{time.October, time.November, time.December},
		Industries: []domain.Industry{
			domain.IndustryIndustrial, domain.IndustryRetail, domain.IndustryHospitality,
		},
		DemandLevel:    "peak",
		PayIncrease:    "15-25% above base rates",
		HiringTimeline: "Postings open in late September, peak onboarding runs mid-October through Black Friday, and extra shifts continue through the first week of January for returns processing.",
		Tips: []string{
			"Apply before mid-October; the best warehouse shifts fill first",
			"Stack evening retail shifts with daytime warehouse blocks for full weeks",
			"Confirm holiday pay differentials before accepting a shift",
		},
		Keywords: []string{"holiday jobs", "christmas temp work", "seasonal warehouse"},
	},
	{
		Slug: "summer", Name: "Summer Season",
		Months: []time.Month{time.June, time.July, time.August},
		Industries: []domain.Industry{
			domain.IndustryHospitality, domain.IndustryFacilities,
		},
		DemandLevel:    "high",
		PayIncrease:    "10-15% above base rates",
		HiringTimeline: "Venues and caterers staff up from late April; festival and stadium work peaks June through August.",
		Tips: []string{
			"Event staff roles favor applicants with open weekend availability",
			"Outdoor shifts often pay a heat differential; ask before claiming",
		},
		Keywords: []string{"summer jobs", "festival staff", "stadium work"},
	},
	{
		Slug: "spring", Name: "Spring Season",
		Months: []time.Month{time.March, time.April, time.May},
		Industries: []domain.Industry{
			domain.IndustryFacilities, domain.IndustryHospitality,
		},
		DemandLevel:    "moderate",
		PayIncrease:    "5-10% above base rates",
		HiringTimeline: "Deep-clean and turnover contracts start in March; wedding and conference season ramps through May.",
		Tips: []string{
			"Facilities crews add weekend deep-clean shifts in March and April",
			"Banquet server demand doubles once wedding season opens",
		},
		Keywords: []string{"spring cleaning jobs", "wedding season staff"},
	},
	{
		Slug: "back-to-school", Name: "Back to School",
		Months: []time.Month{time.August, time.September},
		Industries: []domain.Industry{
			domain.IndustryRetail, domain.IndustryIndustrial,
		},
		DemandLevel:    "high",
		PayIncrease:    "10-20% above base rates",
		HiringTimeline: "Retail resets and distribution surges run from late July through the third week of September.",
		Tips: []string{
			"Overnight reset crews pay above the posted range",
			"Distribution centers add weekend waves through Labor Day",
		},
		Keywords: []string{"back to school jobs", "retail reset crew"},
	},
}

var events = []domain.Event{
	{
		Slug: "prime-day", Name: "Prime Day",
		Date:        time.Date(2026, time.July, 14, 0, 0, 0, 0, time.UTC),
		Cities:      nil, // national
		Industries:  []domain.Industry{domain.IndustryIndustrial},
		PayIncrease: "20-30% above base rates during the surge week",
		Tips: []string{
			"Fulfillment centers begin surge staffing two weeks ahead",
			"Night-shift sort roles carry the largest differentials",
		},
	},
	{
		Slug: "black-friday", Name: "Black Friday",
		Date:        time.Date(2026, time.November, 27, 0, 0, 0, 0, time.UTC),
		Cities:      nil,
		Industries:  []domain.Industry{domain.IndustryRetail, domain.IndustryIndustrial},
		PayIncrease: "25-40% above base rates on the day itself",
		Tips: []string{
			"Claim shifts the week they post; Black Friday rosters close early",
			"Doorbuster support shifts start as early as 3 AM",
		},
	},
	{
		Slug: "cyber-monday", Name: "Cyber Monday",
		Date:        time.Date(2026, time.November, 30, 0, 0, 0, 0, time.UTC),
		Cities:      nil,
		Industries:  []domain.Industry{domain.IndustryIndustrial},
		PayIncrease: "20-30% above base rates through the fulfillment week",
		Tips: []string{
			"Volume lands on warehouses, not stores; look for pick-pack shifts",
			"Surge scheduling usually runs the full week after Thanksgiving",
		},
	},
	{
		Slug: "sxsw", Name: "SXSW",
		Date:        time.Date(2026, time.March, 13, 0, 0, 0, 0, time.UTC),
		Cities:      []string{"austin"},
		Industries:  []domain.Industry{domain.IndustryHospitality, domain.IndustryFacilities},
		PayIncrease: "30-50% above base rates across the festival window",
		Tips: []string{
			"Badge-check and venue crew shifts post about six weeks out",
			"Downtown venues pay premiums for overnight changeover crews",
		},
	},
}
