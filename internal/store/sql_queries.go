package store

import (
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/viral-craft/models"
)

var (
	userColumns = []string{
		"id", "username", "email", "password_hash", "created_at", "last_login",
		"is_active", "bio", "favorite_categories", "subscription_plan",
		"videos_generated", "total_viral_score",
	}

	videoColumns = []string{
		"id", "user_id", "prompt", "description", "applied_trends", "viral_score",
		"content_category", "suggested_platforms", "created_at", "is_favorite",
	}

	trendColumns = []string{
		"id", "name", "type", "category", "popularity", "usage_count",
		"is_active", "created_at", "updated_at",
	}
)

func returning(columns []string) string {
	return "RETURNING " + strings.Join(columns, ", ")
}

// ── users ─────────────────────────────────────────────────────────────────────

func buildCreateUserQuery(b sq.StatementBuilderType, user models.User) (string, []any, error) {
	return b.Insert(models.User{}.TableName()).
		Columns("username", "email", "password_hash", "created_at", "is_active",
			"bio", "favorite_categories", "subscription_plan").
		Values(user.Username, user.Email, user.PasswordHash, user.CreatedAt, user.IsActive,
			user.Bio, user.FavoriteCategories, user.SubscriptionPlan).
		Suffix(returning(userColumns)).
		ToSql()
}

func buildFindUserQuery(b sq.StatementBuilderType, where sq.Eq) (string, []any, error) {
	return b.Select(userColumns...).
		From(models.User{}.TableName()).
		Where(where).
		Limit(1).
		ToSql()
}

func buildUpdateUserQuery(b sq.StatementBuilderType, id int64, set map[string]any) (string, []any, error) {
	return b.Update(models.User{}.TableName()).
		SetMap(set).
		Where(sq.Eq{"id": id}).
		ToSql()
}

// buildIncrementStatsQuery adds one video and score to the user's totals
// relative to the stored values.
func buildIncrementStatsQuery(b sq.StatementBuilderType, id int64, score float64) (string, []any, error) {
	return b.Update(models.User{}.TableName()).
		Set("videos_generated", sq.Expr("videos_generated + 1")).
		Set("total_viral_score", sq.Expr("total_viral_score + ?", score)).
		Where(sq.Eq{"id": id}).
		ToSql()
}

// buildUpdateProfileQuery returns an empty query when update carries no
// persisted field.
func buildUpdateProfileQuery(b sq.StatementBuilderType, id int64, update models.ProfileUpdate) (string, []any, error) {
	set := make(map[string]any, 3)
	if update.Email != nil {
		set["email"] = *update.Email
	}
	if update.Bio != nil {
		set["bio"] = *update.Bio
	}
	if update.FavoriteCategories != nil {
		set["favorite_categories"] = *update.FavoriteCategories
	}

	if len(set) == 0 {
		return "", nil, nil
	}

	return buildUpdateUserQuery(b, id, set)
}

func buildDeleteUserQuery(b sq.StatementBuilderType, id int64) (string, []any, error) {
	return b.Delete(models.User{}.TableName()).
		Where(sq.Eq{"id": id}).
		ToSql()
}

// ── video history ─────────────────────────────────────────────────────────────

func buildCreateVideoQuery(b sq.StatementBuilderType, video models.VideoHistory) (string, []any, error) {
	return b.Insert(models.VideoHistory{}.TableName()).
		Columns("user_id", "prompt", "description", "applied_trends", "viral_score",
			"content_category", "suggested_platforms", "created_at", "is_favorite").
		Values(video.UserID, video.Prompt, video.Description, video.AppliedTrends, video.ViralScore,
			string(video.ContentCategory), video.SuggestedPlatforms, video.CreatedAt, video.IsFavorite).
		Suffix(returning(videoColumns)).
		ToSql()
}

func buildListVideosQuery(b sq.StatementBuilderType, userID int64) (string, []any, error) {
	return b.Select(videoColumns...).
		From(models.VideoHistory{}.TableName()).
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at DESC", "id DESC").
		ToSql()
}

func buildSetFavoriteQuery(b sq.StatementBuilderType, userID, videoID int64, favorite bool) (string, []any, error) {
	return b.Update(models.VideoHistory{}.TableName()).
		Set("is_favorite", favorite).
		Where(sq.Eq{"id": videoID, "user_id": userID}).
		ToSql()
}

// ── trending elements ─────────────────────────────────────────────────────────

// buildSeedTrendsQuery inserts all items in one statement, skipping names
// that already exist.
func buildSeedTrendsQuery(b sq.StatementBuilderType, items []models.TrendItem, now time.Time) (string, []any, error) {
	insert := b.Insert(models.TrendingElement{}.TableName()).
		Columns("name", "type", "category", "popularity", "usage_count", "is_active", "created_at", "updated_at")

	for _, item := range items {
		insert = insert.Values(item.Name, string(item.Type), item.Category, item.Popularity, 0, true, now, now)
	}

	return insert.Suffix("ON CONFLICT (name) DO NOTHING").ToSql()
}

func buildListTrendsQuery(b sq.StatementBuilderType, limit uint64) (string, []any, error) {
	query := b.Select(trendColumns...).
		From(models.TrendingElement{}.TableName()).
		Where(sq.Eq{"is_active": true}).
		OrderBy("usage_count DESC", "name ASC")

	if limit > 0 {
		query = query.Limit(limit)
	}

	return query.ToSql()
}

func buildSetPopularityQuery(b sq.StatementBuilderType, name string, popularity float64, now time.Time) (string, []any, error) {
	return b.Update(models.TrendingElement{}.TableName()).
		Set("popularity", popularity).
		Set("updated_at", now).
		Where(sq.Eq{"name": name}).
		ToSql()
}

func buildIncrementUsageQuery(b sq.StatementBuilderType, names []string, now time.Time) (string, []any, error) {
	return b.Update(models.TrendingElement{}.TableName()).
		Set("usage_count", sq.Expr("usage_count + 1")).
		Set("updated_at", now).
		Where(sq.Eq{"name": names}).
		ToSql()
}
