package content

import "github.com/MKhiriev/viral-craft/models"

const (
	PlatformTikTok    = "TikTok"
	PlatformReels     = "Instagram Reels"
	PlatformShorts    = "YouTube Shorts"
	PlatformPinterest = "Pinterest"
)

// BestPostingTime is the posting window attached to every generation.
const BestPostingTime = "6-9 PM or 12-3 PM"

var defaultPlatforms = []string{PlatformTikTok, PlatformReels, PlatformShorts}

// reaction is intentionally absent and uses defaultPlatforms.
var platforms = map[models.ContentCategory][]string{
	models.CategoryDance:     {PlatformTikTok, PlatformReels, PlatformShorts},
	models.CategoryFood:      {PlatformTikTok, PlatformReels, PlatformPinterest},
	models.CategoryTutorial:  {PlatformShorts, PlatformTikTok, PlatformReels},
	models.CategoryPet:       {PlatformTikTok, PlatformReels, PlatformShorts},
	models.CategoryBeauty:    {PlatformReels, PlatformTikTok, PlatformShorts},
	models.CategoryLifestyle: {PlatformReels, PlatformPinterest, PlatformTikTok},
	models.CategoryComedy:    {PlatformTikTok, PlatformReels, PlatformShorts},
	models.CategoryGeneral:   {PlatformTikTok, PlatformReels, PlatformShorts},
}

// Platforms returns the suggested platforms for category in priority order.
func Platforms(category models.ContentCategory) []string {
	p, ok := platforms[category]
	if !ok {
		p = defaultPlatforms
	}

	return append([]string(nil), p...)
}

// Hashtags returns the hashtag line for category.
func Hashtags(category models.ContentCategory) string {
	return "#" + string(category) + "video #viral #trending #fyp"
}
