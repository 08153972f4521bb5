// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package trends holds the catalog of trending sounds, effects and meme
// formats used to decorate generated video concepts.
//
// A [Catalog] is immutable once built; every accessor returns a copy so
// callers may sort or modify results freely.
package trends

import (
	"github.com/MKhiriev/viral-craft/models"
)

const (
	// PopularThreshold is the exclusive lower bound of popularity for an
	// item to be drawn into a generation.
	PopularThreshold = 80

	// MinPopularity and MaxPopularity bound every jittered popularity.
	MinPopularity = 70
	MaxPopularity = 98

	// SnapshotSize is the number of items reported per type.
	SnapshotSize = 5
)

// Catalog is an ordered, read-only table of trend items.
type Catalog struct {
	items []models.TrendItem
}

// NewCatalog builds a catalog from items. The slice is copied.
func NewCatalog(items []models.TrendItem) *Catalog {
	return &Catalog{items: append([]models.TrendItem(nil), items...)}
}

// All returns every item in catalog order.
func (c *Catalog) All() []models.TrendItem {
	return append([]models.TrendItem(nil), c.items...)
}

// Len returns the number of items.
func (c *Catalog) Len() int {
	return len(c.items)
}

// ByType returns the items of type t in catalog order.
func (c *Catalog) ByType(t models.TrendType) []models.TrendItem {
	var out []models.TrendItem
	for _, item := range c.items {
		if item.Type == t {
			out = append(out, item)
		}
	}

	return out
}

// Popular returns the items of type t whose popularity exceeds
// PopularThreshold.
func (c *Catalog) Popular(t models.TrendType) []models.TrendItem {
	var out []models.TrendItem
	for _, item := range c.items {
		if item.Type == t && item.Popularity > PopularThreshold {
			out = append(out, item)
		}
	}

	return out
}

// Find returns the item named name.
func (c *Catalog) Find(name string) (models.TrendItem, bool) {
	for _, item := range c.items {
		if item.Name == name {
			return item, true
		}
	}

	return models.TrendItem{}, false
}

// ClampPopularity bounds p to [MinPopularity, MaxPopularity].
func ClampPopularity(p float64) float64 {
	return max(MinPopularity, min(MaxPopularity, p))
}
