package models

// TrendType tags a trend item as a sound, a visual effect or a meme format.
type TrendType string

const (
	TrendSound  TrendType = "sound"
	TrendEffect TrendType = "effect"
	TrendMeme   TrendType = "meme"
)

// TrendTypes lists trend types in the order they are drawn and reported.
var TrendTypes = []TrendType{TrendSound, TrendEffect, TrendMeme}

// TrendItem is a named catalog entry.
type TrendItem struct {
	Name       string    `json:"name"`
	Type       TrendType `json:"-"`
	Category   string    `json:"category"`
	Popularity float64   `json:"popularity"`
}

// ContentCategory describes the subject matter of a prompt.
type ContentCategory string

const (
	CategoryDance     ContentCategory = "dance"
	CategoryFood      ContentCategory = "food"
	CategoryTutorial  ContentCategory = "tutorial"
	CategoryPet       ContentCategory = "pet"
	CategoryReaction  ContentCategory = "reaction"
	CategoryBeauty    ContentCategory = "beauty"
	CategoryLifestyle ContentCategory = "lifestyle"
	CategoryComedy    ContentCategory = "comedy"
	CategoryGeneral   ContentCategory = "general"
)
