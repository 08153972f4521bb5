package content

import (
	"strings"

	"github.com/MKhiriev/viral-craft/models"
)

// MaxSuggestions is the number of template bullets included in a description.
const MaxSuggestions = 4

var suggestions = map[models.ContentCategory][]string{
	models.CategoryDance: {
		"• Sync movements with beat drops and audio cues",
		"• Use quick cuts between different angles",
		"• Add mirror or split-screen effects for comparison",
		"• Include slow-motion highlights of key moves",
		"• Use trending dance hashtags and challenges",
	},
	models.CategoryFood: {
		"• Capture close-up shots with satisfying sound effects",
		"• Add text overlay with ratings or taste reactions",
		"• Use trending food styling and presentation techniques",
		"• Include before/during/after shots",
		"• Add popular food-related audio clips",
	},
	models.CategoryTutorial: {
		"• Break down into clear step-by-step segments",
		"• Use text overlays for each step",
		"• Include before/after comparison shots",
		"• Add time-lapse for longer processes",
		"• Use educational trending formats",
	},
	models.CategoryPet: {
		"• Capture cute pet reaction shots",
		"• Use trending pet sounds and effects",
		"• Include popular pet challenge formats",
		"• Add funny captions and text overlays",
		"• Use pet-specific viral audio clips",
	},
	models.CategoryReaction: {
		"• Use split-screen reaction format",
		"• Add trending reaction sounds and effects",
		"• Include emotional text overlays",
		"• Capture genuine expressions and responses",
		"• Use popular reaction challenge formats",
	},
	models.CategoryBeauty: {
		"• Use good lighting and close-up shots",
		"• Add before/after transformation reveals",
		"• Include trending beauty audio and effects",
		"• Use popular makeup/skincare formats",
		"• Add product recommendations and links",
	},
	models.CategoryLifestyle: {
		"• Show transformation process with time-lapse",
		"• Use aesthetic trending effects and filters",
		"• Add satisfying organization moments",
		"• Include trending lifestyle audio",
		"• Use popular home/lifestyle formats",
	},
	models.CategoryComedy: {
		"• Perfect timing with comedic beats",
		"• Use trending comedy audio and sound effects",
		"• Add funny text overlays and captions",
		"• Include popular comedy formats and structures",
		"• Use relatable humor and situations",
	},
	models.CategoryGeneral: {
		"• Apply trending visual effects for engagement",
		"• Include popular audio elements",
		"• Use current meme formats and structures",
		"• Add dynamic transitions and cuts",
		"• Include trending hashtags and challenges",
	},
}

const platformTips = "\n🎯 Platform Optimization Tips:\n" +
	"• TikTok: Hook viewers in first 3 seconds\n" +
	"• Instagram Reels: Use trending audio and hashtags\n" +
	"• YouTube Shorts: Strong thumbnail and title\n"

// Suggestions returns the template bullets for category, falling back to
// the general set for unknown categories.
func Suggestions(category models.ContentCategory) []string {
	s, ok := suggestions[category]
	if !ok {
		s = suggestions[models.CategoryGeneral]
	}

	return append([]string(nil), s...)
}

// Describe renders the multi-line enhancement text for a prompt.
func Describe(prompt string, category models.ContentCategory, appliedTrends []string) string {
	var b strings.Builder

	b.WriteString("🎬 Enhanced version of your idea: \"")
	b.WriteString(prompt)
	b.WriteString("\"\n\n🚀 AI Suggestions:\n")

	s := Suggestions(category)
	for _, line := range s[:min(len(s), MaxSuggestions)] {
		b.WriteString(line)
		b.WriteByte('\n')
	}

	b.WriteString("\n✨ Trending elements applied: ")
	b.WriteString(strings.Join(appliedTrends, ", "))
	b.WriteByte('\n')

	b.WriteString(platformTips)

	return b.String()
}
