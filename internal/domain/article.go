package domain

// Article is a hand-authored career-hub guide. Related must only reference
// slugs of other articles in the same table; the catalog enforces this at
// load time.
type Article struct {
	Slug         string
	Title        string
	Category     string
	Sections     []Section
	KeyTakeaways []string
	FAQs         []FAQ
	Related      []string
}

type Section struct {
	Heading string `json:"heading"`
	Body    string `json:"body"`
}
