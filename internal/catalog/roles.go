package catalog

import "careersite/internal/domain"

var roles = []domain.Role{
	{
		Slug: "warehouse-associate", Title: "Warehouse Associate",
		Industry: domain.IndustryIndustrial,
		BaseRate: domain.Range{Min: 15.00, Max: 21.00},
		Skills:   []string{"Picking and packing", "RF scanner operation", "Pallet jack use"},
		Requirements: []string{
			"Able to lift 50 lbs",
			"Comfortable standing for full shifts",
		},
		CareerPath: []string{"Warehouse Associate", "Lead Associate", "Shift Supervisor"},
		FAQs: []domain.FAQ{
			{Question: "Do I need experience to work as a warehouse associate?", Answer: "No. Most warehouse associate shifts are open to first-timers; training happens on site during your first shift."},
			{Question: "What should I wear to a warehouse shift?", Answer: "Closed-toe shoes, long pants, and weather-appropriate layers. Some sites require high-visibility vests, which are provided."},
		},
	},
	{
		Slug: "forklift-operator", Title: "Forklift Operator",
		Industry: domain.IndustryIndustrial,
		BaseRate: domain.Range{Min: 18.00, Max: 25.00},
		Skills:   []string{"Sit-down forklift", "Stand-up reach truck", "Load balancing"},
		Requirements: []string{
			"Current forklift certification",
			"6+ months powered equipment experience",
		},
		CareerPath: []string{"Forklift Operator", "Equipment Trainer", "Warehouse Manager"},
		FAQs: []domain.FAQ{
			{Question: "Is forklift certification required?", Answer: "Yes. You need a current certification before your first shift; recertification courses typically take one day."},
			{Question: "Which forklift types pay the most?", Answer: "Stand-up reach trucks and order pickers usually command the top of the range."},
		},
	},
	{
		Slug: "event-staff", Title: "Event Staff",
		Industry: domain.IndustryHospitality,
		BaseRate: domain.Range{Min: 14.00, Max: 20.00},
		Skills:   []string{"Guest services", "Ticket scanning", "Crowd flow"},
		Requirements: []string{
			"Comfortable working evenings and weekends",
			"Reliable transportation to venues",
		},
		CareerPath: []string{"Event Staff", "Team Lead", "Event Coordinator"},
		FAQs: []domain.FAQ{
			{Question: "How long are typical event shifts?", Answer: "Most run 5 to 8 hours around the event itself, with call times 1 to 2 hours before doors."},
			{Question: "Can I pick which events I work?", Answer: "Yes. Shifts are claimed per event, so you choose the venues and dates that fit your schedule."},
		},
	},
	{
		Slug: "banquet-server", Title: "Banquet Server",
		Industry: domain.IndustryHospitality,
		BaseRate: domain.Range{Min: 16.00, Max: 24.00},
		Skills:   []string{"Plated service", "Tray carrying", "Table setting"},
		Requirements: []string{
			"Previous serving experience preferred",
			"Black-and-white service attire",
		},
		CareerPath: []string{"Banquet Server", "Banquet Captain", "Catering Manager"},
		FAQs: []domain.FAQ{
			{Question: "Do banquet servers keep tips?", Answer: "Depends on the venue; many banquet contracts build a service charge into the hourly rate shown."},
			{Question: "What experience do I need?", Answer: "Six months of restaurant or catering service is usually enough for higher-end venues."},
		},
	},
	{
		Slug: "line-cook", Title: "Line Cook",
		Industry: domain.IndustryHospitality,
		BaseRate: domain.Range{Min: 16.50, Max: 23.00},
		Skills:   []string{"Station prep", "Grill and saute", "Food safety"},
		Requirements: []string{
			"Food handler card",
			"1+ year kitchen experience",
		},
		CareerPath: []string{"Line Cook", "Lead Cook", "Sous Chef"},
		FAQs: []domain.FAQ{
			{Question: "Do I need my own knives?", Answer: "Most kitchens provide equipment, but experienced cooks often bring a basic knife roll."},
			{Question: "Are temp line cook shifts full service?", Answer: "You are slotted into one station alongside the permanent brigade, not handed the whole line."},
		},
	},
	{
		Slug: "retail-associate", Title: "Retail Associate",
		Industry: domain.IndustryRetail,
		BaseRate: domain.Range{Min: 13.50, Max: 18.50},
		Skills:   []string{"POS systems", "Stocking and merchandising", "Customer service"},
		Requirements: []string{
			"Weekend availability",
			"Comfortable on your feet",
		},
		CareerPath: []string{"Retail Associate", "Keyholder", "Store Supervisor"},
		FAQs: []domain.FAQ{
			{Question: "When does seasonal retail hiring start?", Answer: "Stores start staffing up in late September and October, well before the holiday rush."},
			{Question: "Can seasonal retail turn permanent?", Answer: "Often. Strong seasonal associates are regularly offered permanent spots in January."},
		},
	},
	{
		Slug: "stocking-associate", Title: "Stocking Associate",
		Industry: domain.IndustryRetail,
		BaseRate: domain.Range{Min: 14.00, Max: 19.50},
		Skills:   []string{"Overnight stocking", "Planogram reading", "Backroom organization"},
		Requirements: []string{
			"Able to lift 40 lbs",
			"Overnight availability preferred",
		},
		CareerPath: []string{"Stocking Associate", "Inventory Lead", "Operations Supervisor"},
		FAQs: []domain.FAQ{
			{Question: "Are stocking shifts always overnight?", Answer: "Mostly, and overnight shifts usually carry a pay differential above the posted base."},
			{Question: "Is stocking physically demanding?", Answer: "Yes, it involves repeated lifting and ladder work; wear supportive shoes."},
		},
	},
	{
		Slug: "janitorial-crew", Title: "Janitorial Crew",
		Industry: domain.IndustryFacilities,
		BaseRate: domain.Range{Min: 13.00, Max: 17.50},
		Skills:   []string{"Commercial cleaning", "Floor care machines", "Chemical handling"},
		Requirements: []string{
			"Background check",
			"Evening availability",
		},
		CareerPath: []string{"Janitorial Crew", "Site Lead", "Facilities Coordinator"},
		FAQs: []domain.FAQ{
			{Question: "What does a janitorial shift cover?", Answer: "Common areas, restrooms and floors on a set checklist; specialized work like window rigs is separate."},
			{Question: "Are supplies provided?", Answer: "Yes. Sites supply all equipment and chemicals along with handling training."},
		},
	},
	{
		Slug: "maintenance-tech", Title: "Maintenance Technician",
		Industry: domain.IndustryFacilities,
		BaseRate: domain.Range{Min: 17.00, Max: 24.50},
		Skills:   []string{"Basic electrical", "Plumbing repairs", "Preventive maintenance"},
		Requirements: []string{
			"2+ years maintenance experience",
			"Own basic hand tools",
		},
		CareerPath: []string{"Maintenance Technician", "Senior Tech", "Facilities Manager"},
		FAQs: []domain.FAQ{
			{Question: "Do maintenance techs need licenses?", Answer: "Not for general work; licensed trades handle anything past basic electrical or plumbing."},
			{Question: "Is on-call work required?", Answer: "Temp maintenance shifts are scheduled blocks, not on-call rotations."},
		},
	},
}
