// Package models defines the domain types shared across repositories,
// services, and handlers.
package models

import "strings"

// DailyVerse is a scripture passage with a short reflection and prayer.
// A community admin may pin a custom verse, which takes priority over
// generated ones until explicitly refreshed.
type DailyVerse struct {
	Reference  string `json:"reference"`
	Text       string `json:"text"`
	Reflection string `json:"reflection"`
	Prayer     string `json:"prayer"`
}

// Valid reports whether the verse has the minimum usable content. Reflection
// and prayer may be blank; reference and text may not.
func (v DailyVerse) Valid() bool {
	return strings.TrimSpace(v.Reference) != "" && strings.TrimSpace(v.Text) != ""
}
