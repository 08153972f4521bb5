// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/viral-craft/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatementBuilder_PlaceholdersPerDialect(t *testing.T) {
	pg, _, err := buildFindUserQuery(statementBuilder(DialectPostgres), map[string]any{"id": int64(1)})
	require.NoError(t, err)
	assert.Contains(t, pg, "id = $1")

	lite, _, err := buildFindUserQuery(statementBuilder(DialectSQLite), map[string]any{"id": int64(1)})
	require.NoError(t, err)
	assert.Contains(t, lite, "id = ?")
	assert.NotContains(t, lite, "$1")
}

func Test_buildCreateUserQuery(t *testing.T) {
	user := models.User{
		Username:           "alice",
		Email:              "a@x.io",
		PasswordHash:       "hash",
		IsActive:           true,
		FavoriteCategories: models.StringList{"dance"},
		SubscriptionPlan:   models.SubscriptionFree,
	}

	query, args, err := buildCreateUserQuery(statementBuilder(DialectPostgres), user)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(query, "INSERT INTO users"))
	assert.Contains(t, query, "RETURNING id, username, email, password_hash")
	assert.Contains(t, query, "$8")
	require.Len(t, args, 8)
	assert.Equal(t, "alice", args[0])
	assert.Equal(t, models.StringList{"dance"}, args[6])
}

func Test_buildIncrementStatsQuery(t *testing.T) {
	query, args, err := buildIncrementStatsQuery(statementBuilder(DialectPostgres), 7, 88)
	require.NoError(t, err)

	assert.Contains(t, query, "videos_generated = videos_generated + 1")
	assert.Contains(t, query, "total_viral_score = total_viral_score + $1")
	assert.Contains(t, query, "WHERE id = $2")
	assert.Equal(t, []any{float64(88), int64(7)}, args)
}

func Test_buildUpdateProfileQuery(t *testing.T) {
	b := statementBuilder(DialectSQLite)

	query, args, err := buildUpdateProfileQuery(b, 1, models.ProfileUpdate{})
	require.NoError(t, err)
	assert.Empty(t, query)
	assert.Empty(t, args)

	bio := "hi"
	cats := models.StringList{}
	query, args, err = buildUpdateProfileQuery(b, 1, models.ProfileUpdate{Bio: &bio, FavoriteCategories: &cats})
	require.NoError(t, err)

	// squirrel sorts SetMap keys
	assert.Contains(t, query, "SET bio = ?, favorite_categories = ?")
	assert.NotContains(t, query, "email")
	assert.Equal(t, []any{"hi", models.StringList{}, int64(1)}, args)
}

func Test_buildListVideosQuery(t *testing.T) {
	query, args, err := buildListVideosQuery(statementBuilder(DialectPostgres), 3)
	require.NoError(t, err)

	assert.Contains(t, query, "FROM video_history WHERE user_id = $1")
	assert.Contains(t, query, "ORDER BY created_at DESC, id DESC")
	assert.Equal(t, []any{int64(3)}, args)
}

func Test_buildSetFavoriteQuery_ScopedToUser(t *testing.T) {
	query, args, err := buildSetFavoriteQuery(statementBuilder(DialectSQLite), 3, 9, true)
	require.NoError(t, err)

	assert.Contains(t, query, "SET is_favorite = ?")
	assert.Contains(t, query, "id = ?")
	assert.Contains(t, query, "user_id = ?")
	assert.Equal(t, []any{true, int64(9), int64(3)}, args)
}

func Test_buildSeedTrendsQuery(t *testing.T) {
	items := []models.TrendItem{
		{Name: "a", Type: models.TrendSound, Category: "x", Popularity: 90},
		{Name: "b", Type: models.TrendMeme, Category: "y", Popularity: 81},
	}
	now := time.Now()

	query, args, err := buildSeedTrendsQuery(statementBuilder(DialectPostgres), items, now)
	require.NoError(t, err)

	assert.Contains(t, query, "INSERT INTO trending_elements")
	assert.True(t, strings.HasSuffix(query, "ON CONFLICT (name) DO NOTHING"))
	assert.Contains(t, query, "$16")
	require.Len(t, args, 16)
	assert.Equal(t, "a", args[0])
	assert.Equal(t, "sound", args[1])
	assert.Equal(t, "meme", args[9])
}

func Test_buildListTrendsQuery(t *testing.T) {
	b := statementBuilder(DialectSQLite)

	query, args, err := buildListTrendsQuery(b, 5)
	require.NoError(t, err)
	assert.Contains(t, query, "ORDER BY usage_count DESC, name ASC")
	assert.Contains(t, query, "LIMIT 5")
	assert.Equal(t, []any{true}, args)

	query, _, err = buildListTrendsQuery(b, 0)
	require.NoError(t, err)
	assert.NotContains(t, query, "LIMIT")
}

func Test_buildIncrementUsageQuery(t *testing.T) {
	now := time.Now()
	query, args, err := buildIncrementUsageQuery(statementBuilder(DialectPostgres), []string{"a", "b"}, now)
	require.NoError(t, err)

	assert.Contains(t, query, "usage_count = usage_count + 1")
	assert.Contains(t, query, "updated_at = $1")
	assert.Contains(t, query, "name IN ($2,$3)")
	assert.Equal(t, []any{now, "a", "b"}, args)
}
