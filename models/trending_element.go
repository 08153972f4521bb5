package models

import "time"

// TrendingElement is a persisted catalog row with usage accounting.
//
// It is not referenced by VideoHistory: applied trends are stored there as
// plain names.
type TrendingElement struct {
	ID         int64     `json:"id"`
	Name       string    `json:"name"`
	Type       TrendType `json:"type"`
	Category   string    `json:"category"`
	Popularity float64   `json:"popularity"`
	UsageCount int64     `json:"usage_count"`
	IsActive   bool      `json:"is_active"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the TrendingElement model.
func (t TrendingElement) TableName() string {
	return "trending_elements"
}
