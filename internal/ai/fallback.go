package ai

import (
	"math/rand"

	"soulshub/internal/models"
)

// AskFallbackMessage is returned when a question cannot be answered, so the
// page always has something to render.
const AskFallbackMessage = "I'm sorry, I couldn't process that question right now."

// fallbackVerses is shown when verse generation fails. Readers get scripture
// either way.
var fallbackVerses = []models.DailyVerse{
	{
		Reference:  "John 3:16",
		Text:       "For God so loved the world, that he gave his only begotten Son, that whosoever believeth in him should not perish, but have everlasting life.",
		Reflection: "Love gave first. Whatever today holds, it begins from being already loved.",
		Prayer:     "Father, thank You for loving us first. Help me rest in that love today. Amen.",
	},
	{
		Reference:  "Jeremiah 29:11",
		Text:       "For I know the plans I have for you, declares the Lord, plans for welfare and not for evil, to give you a future and a hope.",
		Reflection: "Uncertainty about tomorrow does not mean tomorrow is unplanned.",
		Prayer:     "Lord, when I cannot see the road ahead, remind me that You can. Amen.",
	},
	{
		Reference:  "Philippians 4:13",
		Text:       "I can do all things through Christ which strengtheneth me.",
		Reflection: "Strength here is not self-confidence but borrowed confidence.",
		Prayer:     "Jesus, be my strength where mine runs out today. Amen.",
	},
	{
		Reference:  "Psalm 23:1",
		Text:       "The Lord is my shepherd; I shall not want.",
		Reflection: "A shepherd's job is the whole sheep: provision, direction, protection.",
		Prayer:     "Shepherd of my soul, lead me today and quiet my wanting. Amen.",
	},
	{
		Reference:  "Proverbs 3:5-6",
		Text:       "Trust in the Lord with all thine heart; and lean not unto thine own understanding. In all thy ways acknowledge him, and he shall direct thy paths.",
		Reflection: "Trust is most real exactly where understanding stops.",
		Prayer:     "Lord, I hand You the parts of my life I cannot figure out. Direct my path. Amen.",
	},
}

// FallbackVerse returns one of the built-in verses at pseudo-random.
func FallbackVerse() models.DailyVerse {
	return fallbackVerses[rand.Intn(len(fallbackVerses))]
}
