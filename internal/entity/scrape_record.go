package entity

import "time"

// ScrapeRecord mirrors one row of the output store. It is created once per
// subject that resolved to a novel profile link and never mutated afterwards.
type ScrapeRecord struct {
	QueryName       string
	QueryTitle      string
	QueryCompany    string
	ProfileLink     string
	ConfidenceScore int
	ResolvedAt      time.Time
}
