package catalog

import "careersite/internal/domain"

var articles = []domain.Article{
	{
		Slug: "certifications", Title: "Certifications That Raise Your Hourly Rate",
		Category: "skills",
		Sections: []domain.Section{
			{Heading: "Why certifications matter for temp work", Body: "Certified workers clear shift requirements automatically and skip manual vetting, so they see more shifts and higher rates. A forklift card alone moves you into a different pay band."},
			{Heading: "The certifications worth getting first", Body: "Forklift certification, a food handler card, and OSHA 10 cover the three biggest shift categories. Each takes a day or less to earn and pays for itself within a couple of shifts."},
			{Heading: "Keeping certifications current", Body: "Most cards expire every two to three years. Set renewal reminders; an expired card silently filters you out of eligible shifts."},
		},
		KeyTakeaways: []string{
			"Forklift certification typically adds $3-4 per hour",
			"Food handler cards unlock most kitchen and catering shifts",
			"Expired cards remove you from matching, renew early",
		},
		FAQs: []domain.FAQ{
			{Question: "How much does forklift certification cost?", Answer: "Usually $60 to $150 for a one-day course, and some staffing programs reimburse it after your first certified shift."},
		},
		Related: []string{"first-shift-guide", "career-paths"},
	},
	{
		Slug: "first-shift-guide", Title: "Your First Temp Shift: What to Expect",
		Category: "getting-started",
		Sections: []domain.Section{
			{Heading: "Before you leave home", Body: "Re-read the shift details for dress code, parking and check-in contact. Arriving 15 minutes early is the single strongest signal you can send on a first shift."},
			{Heading: "On site", Body: "Find the shift lead named in your confirmation, not the front desk. You will get a short safety briefing and a station assignment; ask questions during the briefing, not mid-task."},
			{Heading: "After the shift", Body: "Confirm your hours in the app before leaving the parking lot. Ratings from your first few shifts drive which shifts you see next."},
		},
		KeyTakeaways: []string{
			"Arrive 15 minutes early with ID",
			"Check in with the shift lead, not the front desk",
			"Verify your logged hours the same day",
		},
		FAQs: []domain.FAQ{
			{Question: "What happens if I need to cancel?", Answer: "Cancel inside the app as early as possible. Late cancellations lower your reliability score and reduce the shifts offered to you."},
		},
		Related: []string{"certifications"},
	},
	{
		Slug: "career-paths", Title: "From Temp Shifts to Full-Time Offers",
		Category: "growth",
		Sections: []domain.Section{
			{Heading: "Temp work as an audition", Body: "Supervisors treat reliable temps as pre-screened candidates. Repeating shifts at the same site is the fastest route to a conversion conversation."},
			{Heading: "Which industries convert most", Body: "Warehouses convert steadily year-round; retail converts in January after the holiday season; hospitality converts through banquet captain tracks."},
			{Heading: "Making the ask", Body: "After ten or so shifts at one site, ask the supervisor directly about permanent openings. Most conversions start with that question, not a job posting."},
		},
		KeyTakeaways: []string{
			"Repeat shifts at one site to build a conversion case",
			"January is the strongest month for retail conversions",
		},
		FAQs: []domain.FAQ{
			{Question: "Do conversions reset my pay?", Answer: "Permanent offers usually match or beat your temp rate and add benefits; ask for the full package in writing."},
		},
		Related: []string{"certifications", "seasonal-strategy"},
	},
	{
		Slug: "seasonal-strategy", Title: "Planning a Year of Seasonal Work",
		Category: "growth",
		Sections: []domain.Section{
			{Heading: "The seasonal calendar", Body: "Holiday warehouse and retail work carries October through December, spring facilities and wedding work carries March through May, and summer events carry June through August. Stacking all three covers most of the year."},
			{Heading: "Bridging the gaps", Body: "January and September are the slow months. Certifications earned then pay off when the next surge opens."},
		},
		KeyTakeaways: []string{
			"Three seasonal surges can cover ten months of the year",
			"Use slow months for certifications and recertifications",
		},
		FAQs: []domain.FAQ{
			{Question: "When should I apply for holiday work?", Answer: "Late September. Waiting until November means competing for the leftover shifts."},
		},
		Related: []string{"career-paths"},
	},
	{
		Slug: "pay-explained", Title: "How Temp Pay Rates Are Set",
		Category: "pay",
		Sections: []domain.Section{
			{Heading: "Base rates and local adjustment", Body: "Every role carries a national base range that gets adjusted by the local cost of living. Higher-cost markets pay above base; lower-cost markets never pay below the role's stated minimum."},
			{Heading: "Differentials and surges", Body: "Overnight, weekend, and seasonal-surge differentials stack on top of the adjusted rate. The posted range on a shift already includes them."},
		},
		KeyTakeaways: []string{
			"Local cost of living scales the national base range",
			"The role minimum is a hard floor in every market",
		},
		FAQs: []domain.FAQ{
			{Question: "Why does the same role pay differently by city?", Answer: "Rates scale with each city's cost-of-living index, with the role's national minimum as a floor."},
		},
		Related: []string{"certifications"},
	},
	{
		Slug: "uk-temp-work", Title: "Temp Work in the UK: Key Differences",
		Category: "getting-started",
		Sections: []domain.Section{
			{Heading: "Pay and rights", Body: "UK temp work is governed by agency worker regulations: after twelve weeks in the same role you are entitled to the same pay as permanent staff. Rates are quoted per hour in GBP."},
			{Heading: "Markets", Body: "London, Manchester and Birmingham carry the deepest shift markets, led by hospitality and events."},
		},
		KeyTakeaways: []string{
			"Twelve-week rule aligns temp and permanent pay",
			"London rates carry the largest cost-of-living uplift",
		},
		FAQs: []domain.FAQ{
			{Question: "Do I need a National Insurance number?", Answer: "Yes, before your first paid shift; you can start work while the application is in progress."},
		},
		Related: []string{"first-shift-guide"},
	},
}
