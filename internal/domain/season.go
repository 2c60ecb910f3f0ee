package domain

import "time"

// Season is a recurring hiring window (holiday peak, summer, ...).
type Season struct {
	Slug           string
	Name           string
	Months         []time.Month // active months, in calendar order
	Industries     []Industry
	DemandLevel    string // qualitative: "high" | "peak" | "moderate"
	PayIncrease    string // display copy, e.g. "15-25% above base rates"
	HiringTimeline string
	Tips           []string
	Keywords       []string
}

// Event is a dated hiring surge (Prime Day, Black Friday, ...). An empty
// Cities list means the event applies nationally.
type Event struct {
	Slug        string
	Name        string
	Date        time.Time
	Cities      []string // city slugs; empty = national
	Industries  []Industry
	PayIncrease string
	Tips        []string
}
