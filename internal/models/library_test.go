package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLibrary_Recount(t *testing.T) {
	lib := Library{
		Categories: []ResourceCategory{
			{ID: "1", Title: "Study Guides", Items: 99},
			{ID: "2", Title: "Video Series", Items: 0},
		},
		Files: []ResourceFile{
			{ID: "a", Name: "James Overview", Category: "Study Guides"},
			{ID: "b", Name: "Romans Deep Dive", Category: "Study Guides"},
			{ID: "c", Name: "Orphaned Teaching", Category: "Renamed Away"},
		},
	}

	lib.Recount()

	assert.Equal(t, 2, lib.Categories[0].Items)
	assert.Equal(t, 0, lib.Categories[1].Items)
}

func TestHumanSize(t *testing.T) {
	tests := []struct {
		bytes    int64
		expected string
	}{
		{512, "512 B"},
		{2048, "2 KB"},
		{1572864, "1.5 MB"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, HumanSize(tt.bytes))
	}
}

func TestCircleInitial(t *testing.T) {
	tests := []struct {
		name     string
		expected string
	}{
		{"young adults", "Y"},
		{"Prayer Warriors", "P"},
		{"  whitespace lead", "W"},
		{"", ""},
		{"éclairs fellowship", "É"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, CircleInitial(tt.name))
	}
}

func TestPost_AddComment(t *testing.T) {
	p := Post{ID: "1", Comments: 0}
	p.AddComment(Comment{ID: "c1", Author: AuthorMember, Content: "Amen"})
	p.AddComment(Comment{ID: "c2", Author: AuthorAdmin, Content: "Blessings", IsAdmin: true})

	assert.Equal(t, 2, p.Comments)
	assert.Len(t, p.CommentsList, 2)
}

func TestStudyPlan_Validate(t *testing.T) {
	valid := StudyPlan{Topic: "Forgiveness", Overview: "A week on letting go"}
	for i := 1; i <= StudyPlanDays; i++ {
		valid.Days = append(valid.Days, StudyPlanDay{
			Day: i, Title: "Day", Scripture: "John 3:16", Focus: "Grace", ActionStep: "Pray",
		})
	}
	assert.NoError(t, valid.Validate())

	short := valid
	short.Days = short.Days[:5]
	assert.Error(t, short.Validate())

	incomplete := valid
	incomplete.Days = append([]StudyPlanDay{}, valid.Days...)
	incomplete.Days[3].Scripture = ""
	assert.Error(t, incomplete.Validate())

	noTopic := valid
	noTopic.Topic = "  "
	assert.Error(t, noTopic.Validate())
}

func TestDailyVerse_Valid(t *testing.T) {
	assert.True(t, DailyVerse{Reference: "Psalm 23:1", Text: "The Lord is my shepherd"}.Valid())
	assert.False(t, DailyVerse{Reference: "", Text: "text"}.Valid())
	assert.False(t, DailyVerse{Reference: "Psalm 23:1", Text: "   "}.Valid())
}
