package content

import (
	"strings"
	"testing"

	"github.com/MKhiriev/viral-craft/models"
	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		prompt string
		want   models.ContentCategory
	}{
		{"My DANCE routine", models.CategoryDance},
		{"cooking pasta at midnight", models.CategoryFood},
		{"How To fold a shirt", models.CategoryTutorial},
		{"my dog sleeping", models.CategoryPet},
		{"reacting to old videos", models.CategoryReaction},
		{"skincare morning", models.CategoryBeauty},
		{"organize my desk", models.CategoryLifestyle},
		{"a funny prank", models.CategoryComedy},
		{"sunset over the sea", models.CategoryGeneral},
		{"", models.CategoryGeneral},
		// priority: dance beats pet, food beats comedy
		{"dance challenge with my pet dog", models.CategoryDance},
		{"funny food fails", models.CategoryFood},
	}

	for _, tt := range tests {
		t.Run(tt.prompt, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.prompt))
			assert.Equal(t, Classify(tt.prompt), Classify(tt.prompt))
		})
	}
}

func TestDescribe(t *testing.T) {
	got := Describe("my cat", models.CategoryPet, []string{"POV Format", "Glitch Effect"})

	want := "🎬 Enhanced version of your idea: \"my cat\"\n\n🚀 AI Suggestions:\n" +
		"• Capture cute pet reaction shots\n" +
		"• Use trending pet sounds and effects\n" +
		"• Include popular pet challenge formats\n" +
		"• Add funny captions and text overlays\n" +
		"\n✨ Trending elements applied: POV Format, Glitch Effect\n" +
		"\n🎯 Platform Optimization Tips:\n" +
		"• TikTok: Hook viewers in first 3 seconds\n" +
		"• Instagram Reels: Use trending audio and hashtags\n" +
		"• YouTube Shorts: Strong thumbnail and title\n"

	assert.Equal(t, want, got)
}

func TestDescribe_NoTrendsAndUnknownCategory(t *testing.T) {
	got := Describe("x", models.ContentCategory("music"), nil)

	assert.Contains(t, got, "• Apply trending visual effects for engagement\n")
	assert.Contains(t, got, "✨ Trending elements applied: \n")
	assert.NotContains(t, got, "• Include trending hashtags and challenges")
	assert.Equal(t, MaxSuggestions, strings.Count(got, "\n• ")-3)
}

func TestSuggestions_ReturnsCopy(t *testing.T) {
	s := Suggestions(models.CategoryDance)
	s[0] = "changed"
	assert.NotEqual(t, "changed", Suggestions(models.CategoryDance)[0])
}

func TestPlatforms(t *testing.T) {
	assert.Equal(t, []string{"TikTok", "Instagram Reels", "Pinterest"}, Platforms(models.CategoryFood))
	assert.Equal(t, []string{"YouTube Shorts", "TikTok", "Instagram Reels"}, Platforms(models.CategoryTutorial))
	assert.Equal(t, []string{"TikTok", "Instagram Reels", "YouTube Shorts"}, Platforms(models.CategoryReaction))
}

func TestHashtags(t *testing.T) {
	assert.Equal(t, "#dancevideo #viral #trending #fyp", Hashtags(models.CategoryDance))
}
