package trends

import "github.com/MKhiriev/viral-craft/models"

func sound(name, category string, popularity float64) models.TrendItem {
	return models.TrendItem{Name: name, Type: models.TrendSound, Category: category, Popularity: popularity}
}

func effect(name, category string, popularity float64) models.TrendItem {
	return models.TrendItem{Name: name, Type: models.TrendEffect, Category: category, Popularity: popularity}
}

func meme(name, category string, popularity float64) models.TrendItem {
	return models.TrendItem{Name: name, Type: models.TrendMeme, Category: category, Popularity: popularity}
}

// DefaultCatalog returns the built-in catalog of 21 items.
func DefaultCatalog() *Catalog {
	return NewCatalog([]models.TrendItem{
		sound("Viral Dance Beat #1", "dance", 95),
		sound("Trending Audio Clip", "comedy", 88),
		sound("Popular Song Remix", "music", 92),
		sound("Comedy Sound Effect", "comedy", 85),
		sound("Motivational Speech Clip", "inspiration", 78),
		sound("Satisfying ASMR Sound", "asmr", 82),
		sound("Trending Meme Audio", "meme", 90),

		effect("Neon Glow Transition", "transition", 88),
		effect("Glitch Effect", "artistic", 85),
		effect("Zoom Blur", "dynamic", 80),
		effect("Color Pop Filter", "color", 87),
		effect("Vintage Film Look", "retro", 75),
		effect("3D Perspective Shift", "modern", 91),
		effect("Lightning Fast Cuts", "dynamic", 89),

		meme("POV Format", "storytelling", 92),
		meme("Before/After", "transformation", 86),
		meme("Day in My Life", "lifestyle", 83),
		meme("Rating Things", "review", 79),
		meme("Explaining to My Past Self", "educational", 88),
		meme("Get Ready With Me", "beauty", 81),
		meme("Things I Wish I Knew", "advice", 84),
	})
}
