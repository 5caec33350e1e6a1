package models

// Resource is a quick-link resource shown on the home page.
type Resource struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Type  string `json:"type"`
	Link  string `json:"link"`
}

// DefaultQuickResources seeds the home page resource list.
func DefaultQuickResources() []Resource {
	return []Resource{
		{ID: "1", Title: "New Testament Overview", Type: "PDF", Link: "#"},
		{ID: "2", Title: "Guided Prayer - Peace", Type: "MP3", Link: "#"},
		{ID: "3", Title: "Prayer Request Form", Type: "DOC", Link: "#"},
	}
}
