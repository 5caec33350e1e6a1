package models

// Comment is a reply attached to a community post.
type Comment struct {
	ID      string `json:"id"`
	Author  string `json:"author"`
	Content string `json:"content"`
	Time    string `json:"time"`
	IsAdmin bool   `json:"isAdmin,omitempty"`
}

// Post is a community feed entry. Comments holds the denormalized count and
// must equal len(CommentsList) after every mutation.
type Post struct {
	ID           string    `json:"id"`
	Author       string    `json:"author"`
	Avatar       string    `json:"avatar"`
	Time         string    `json:"time"`
	Content      string    `json:"content"`
	Likes        int       `json:"likes"`
	Loves        int       `json:"loves"`
	Shares       int       `json:"shares"`
	Comments     int       `json:"comments"`
	CommentsList []Comment `json:"commentsList"`
	Timestamp    int64     `json:"timestamp"`
}

// AddComment appends a comment and keeps the counter in sync with the list.
func (p *Post) AddComment(c Comment) {
	p.CommentsList = append(p.CommentsList, c)
	p.Comments = len(p.CommentsList)
}

// Author display names. Posting identity is derived from the session, never
// from client input.
const (
	AuthorAdmin  = "Admin Shepherd"
	AuthorMember = "Community Member"
)
