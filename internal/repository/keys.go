// Package repository maps domain collections onto the key-value store. Each
// collection is one JSON document under a namespaced key; repositories load
// the whole document, let services mutate it, and write it back.
package repository

// Prefix namespaces every key this application owns. A full data reset wipes
// exactly this prefix.
const Prefix = "s4j:"

const (
	keyPosts       = Prefix + "community_posts"
	keyPrayers     = Prefix + "prayer_requests"
	keyReactions   = Prefix + "user_reactions"
	keyPrayedFor   = Prefix + "prayed_for"
	keyCircles     = Prefix + "circles"
	keyMeetingInfo = Prefix + "meeting_info"
	keyResources   = Prefix + "resources"
	keyCategories  = Prefix + "resource_categories"
	keyFiles       = Prefix + "resource_files"
	keyCustomVerse = Prefix + "custom_verse"
	keyHasSeeded   = Prefix + "has_seeded"
	keyAdminEpoch  = Prefix + "admin_epoch"
)
