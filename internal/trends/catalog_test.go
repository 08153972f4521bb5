// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package trends

import (
	"testing"

	"github.com/MKhiriev/viral-craft/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalog_Shape(t *testing.T) {
	c := DefaultCatalog()

	assert.Equal(t, 21, c.Len())
	for _, tt := range models.TrendTypes {
		assert.Len(t, c.ByType(tt), 7, "type %s", tt)
	}
}

func TestDefaultCatalog_UniqueNames(t *testing.T) {
	seen := map[string]bool{}
	for _, item := range DefaultCatalog().All() {
		assert.False(t, seen[item.Name], "duplicate %q", item.Name)
		seen[item.Name] = true
	}
}

func TestPopular_StrictlyAboveThreshold(t *testing.T) {
	c := DefaultCatalog()

	effects := c.Popular(models.TrendEffect)
	require.Len(t, effects, 5)
	for _, e := range effects {
		assert.Greater(t, e.Popularity, float64(PopularThreshold))
		assert.NotEqual(t, "Zoom Blur", e.Name)
	}

	assert.Len(t, c.Popular(models.TrendSound), 6)
	assert.Len(t, c.Popular(models.TrendMeme), 6)
}

func TestCatalog_IsImmutable(t *testing.T) {
	items := []models.TrendItem{sound("a", "x", 90)}
	c := NewCatalog(items)

	items[0].Name = "changed"
	all := c.All()
	all[0].Popularity = 1

	got, ok := c.Find("a")
	require.True(t, ok)
	assert.Equal(t, float64(90), got.Popularity)
}

func TestFind_Missing(t *testing.T) {
	_, ok := DefaultCatalog().Find("nope")
	assert.False(t, ok)
}

func TestClampPopularity(t *testing.T) {
	assert.Equal(t, float64(70), ClampPopularity(60))
	assert.Equal(t, float64(98), ClampPopularity(101))
	assert.Equal(t, float64(85), ClampPopularity(85))
}
