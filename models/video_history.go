package models

import (
	"encoding/json"
	"time"
)

// VideoHistory is one generation request attributed to a user.
// Records are owned by their user and removed with it.
type VideoHistory struct {
	ID                 int64           `json:"id"`
	UserID             int64           `json:"-"`
	Prompt             string          `json:"prompt"`
	Description        string          `json:"description"`
	AppliedTrends      StringList      `json:"applied_trends"`
	ViralScore         float64         `json:"viral_score"`
	ContentCategory    ContentCategory `json:"content_category"`
	SuggestedPlatforms StringList      `json:"suggested_platforms"`
	CreatedAt          time.Time       `json:"created_at"`
	IsFavorite         bool            `json:"is_favorite"`

	// Canned marks a demo account record. It is encoded with only the
	// fields such records carry.
	Canned bool `json:"-"`
}

// cannedVideoHistory is the JSON shape of a demo account record.
type cannedVideoHistory struct {
	ID            int64      `json:"id"`
	Prompt        string     `json:"prompt"`
	ViralScore    float64    `json:"viral_score"`
	CreatedAt     time.Time  `json:"created_at"`
	AppliedTrends StringList `json:"applied_trends"`
}

func (v VideoHistory) MarshalJSON() ([]byte, error) {
	if v.Canned {
		return json.Marshal(cannedVideoHistory{
			ID:            v.ID,
			Prompt:        v.Prompt,
			ViralScore:    v.ViralScore,
			CreatedAt:     v.CreatedAt,
			AppliedTrends: v.AppliedTrends,
		})
	}

	type plain VideoHistory
	return json.Marshal(plain(v))
}

// TableName returns the name of the database table
// associated with the VideoHistory model.
func (v VideoHistory) TableName() string {
	return "video_history"
}
