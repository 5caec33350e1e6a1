package models

import "fmt"

// ResourceCategory is a shelf in the resource library. Items is a denormalized
// count of files filed under the category title and is recomputed on every
// library save.
type ResourceCategory struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Items    int    `json:"items"`
	IconType string `json:"iconType"`
}

// ResourceFile is an uploaded or hand-entered library entry. Data holds the
// base64 payload for uploaded files and is empty for metadata-only rows.
type ResourceFile struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Type     string `json:"type"`
	Size     string `json:"size"`
	Category string `json:"category"`
	Data     string `json:"data,omitempty"`
}

// Library bundles categories and files so the resource page edits both as a
// single all-or-nothing unit.
type Library struct {
	Categories []ResourceCategory `json:"categories"`
	Files      []ResourceFile     `json:"files"`
}

// DefaultLibrary is the library state before any admin edits.
func DefaultLibrary() Library {
	return Library{
		Categories: []ResourceCategory{
			{ID: "1", Title: "Study Guides", IconType: "file"},
			{ID: "2", Title: "Video Series", IconType: "video"},
			{ID: "3", Title: "Audio Teachings", IconType: "audio"},
			{ID: "4", Title: "Commentaries", IconType: "book"},
		},
		Files: []ResourceFile{},
	}
}

// Recount recomputes every category's item count from the file list. Files
// whose category matches no existing title simply stop being counted.
func (l *Library) Recount() {
	counts := make(map[string]int, len(l.Categories))
	for _, f := range l.Files {
		counts[f.Category]++
	}
	for i := range l.Categories {
		l.Categories[i].Items = counts[l.Categories[i].Title]
	}
}

// HumanSize renders a byte count the way the library lists file sizes.
func HumanSize(n int64) string {
	switch {
	case n >= 1<<20:
		return fmt.Sprintf("%.1f MB", float64(n)/(1<<20))
	case n >= 1<<10:
		return fmt.Sprintf("%.0f KB", float64(n)/(1<<10))
	default:
		return fmt.Sprintf("%d B", n)
	}
}
