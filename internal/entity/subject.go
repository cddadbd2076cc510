package entity

import "strings"

// Subject represents one person from the input roster. Only the name is
// required; title and company widen the search strategies when present.
type Subject struct {
	Name    string
	Title   string
	Company string
}

// HasName reports whether the subject carries a usable name. Subjects
// without one are skipped by the resolver before any search is issued.
func (s Subject) HasName() bool {
	return strings.TrimSpace(s.Name) != ""
}
