package models

// Reaction records which reactions the shared browsing context has applied to
// a single post. Both flags may be set at once.
type Reaction struct {
	Liked bool `json:"liked,omitempty"`
	Loved bool `json:"loved,omitempty"`
}

// ReactionLedger maps post IDs to the reactions applied to them. It is what
// makes like/love toggles symmetric rather than unbounded increments.
type ReactionLedger map[string]Reaction

// PrayedLedger maps prayer request IDs to whether "I am praying" has already
// been pressed for them. Entries are never removed, only added.
type PrayedLedger map[string]bool

// ReactionKind names a toggleable post reaction.
type ReactionKind string

const (
	ReactionLike ReactionKind = "like"
	ReactionLove ReactionKind = "love"
)

// Valid reports whether the kind is one of the known reactions.
func (k ReactionKind) Valid() bool {
	return k == ReactionLike || k == ReactionLove
}
