package domain

// Industry is the closed internal enum for role categories. URL and display
// surfaces sometimes use other tokens (notably "warehouse" for industrial);
// that mapping lives in the resolver, not here.
type Industry string

const (
	IndustryHospitality Industry = "hospitality"
	IndustryIndustrial  Industry = "industrial"
	IndustryRetail      Industry = "retail"
	IndustryFacilities  Industry = "facilities"
)

func (i Industry) Valid() bool {
	switch i {
	case IndustryHospitality, IndustryIndustrial, IndustryRetail, IndustryFacilities:
		return true
	}
	return false
}

type Role struct {
	Slug         string
	Title        string
	Industry     Industry
	BaseRate     Range // national base hourly rate before locale adjustment
	Skills       []string
	Requirements []string
	CareerPath   []string
	FAQs         []FAQ
}

type FAQ struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}
