package store

import "github.com/MKhiriev/viral-craft/models"

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (models.User, error) {
	var u models.User
	err := row.Scan(
		&u.UserID,
		&u.Username,
		&u.Email,
		&u.PasswordHash,
		&u.CreatedAt,
		&u.LastLogin,
		&u.IsActive,
		&u.Bio,
		&u.FavoriteCategories,
		&u.SubscriptionPlan,
		&u.VideosGenerated,
		&u.TotalViralScore,
	)

	return u, err
}

func scanVideo(row rowScanner) (models.VideoHistory, error) {
	var v models.VideoHistory
	err := row.Scan(
		&v.ID,
		&v.UserID,
		&v.Prompt,
		&v.Description,
		&v.AppliedTrends,
		&v.ViralScore,
		&v.ContentCategory,
		&v.SuggestedPlatforms,
		&v.CreatedAt,
		&v.IsFavorite,
	)

	return v, err
}

func scanTrend(row rowScanner) (models.TrendingElement, error) {
	var t models.TrendingElement
	err := row.Scan(
		&t.ID,
		&t.Name,
		&t.Type,
		&t.Category,
		&t.Popularity,
		&t.UsageCount,
		&t.IsActive,
		&t.CreatedAt,
		&t.UpdatedAt,
	)

	return t, err
}
