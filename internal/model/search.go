package model

import "strings"

// SearchCriteria filters trains by case-insensitive substring match. An
// empty field matches every train, so the zero value lists the whole
// registry.
type SearchCriteria struct {
	Origin      string
	Destination string
	Date        string
}

func (c SearchCriteria) Matches(t *Train) bool {
	return containsFold(t.Origin, c.Origin) &&
		containsFold(t.Destination, c.Destination) &&
		containsFold(t.Date, c.Date)
}

func containsFold(text, term string) bool {
	if term == "" {
		return true
	}
	return strings.Contains(strings.ToLower(text), strings.ToLower(term))
}
