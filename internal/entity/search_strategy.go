package entity

// SearchStrategy is a single candidate query for one subject. Strategies are
// generated in descending confidence order and tried until one yields a
// profile link.
type SearchStrategy struct {
	Query       string
	Description string
	Confidence  int
}

// Confidence tiers. Higher tiers combine more roster fields and therefore
// produce more trustworthy matches.
const (
	ConfidenceNameTitleCompany = 4
	ConfidenceNameCompany      = 3
	ConfidenceNameTitle        = 2
	ConfidenceNameOnly         = 1
)
