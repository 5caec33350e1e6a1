package models

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Circle is a small-group listing shown on the community page.
type Circle struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Members int    `json:"members"`
	Initial string `json:"initial"`
	Color   string `json:"color"`
}

// CircleInitial derives the display initial from a circle name: the uppercased
// first rune, or empty for a blank name.
func CircleInitial(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return ""
	}
	r, _ := utf8.DecodeRuneInString(name)
	return string(unicode.ToUpper(r))
}

// SyncInitial recomputes the initial from the current name.
func (c *Circle) SyncInitial() {
	c.Initial = CircleInitial(c.Name)
}
