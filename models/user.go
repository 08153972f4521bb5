package models

import (
	"math"
	"time"
)

// SubscriptionFree is the plan every new account starts on.
const SubscriptionFree = "free"

// User represents an application account together with its profile and
// usage statistics.
type User struct {
	// UserID is the internal unique identifier of the user.
	UserID int64 `json:"id"`

	// Username is the unique login name.
	Username string `json:"username"`

	// Email is the unique contact address.
	Email string `json:"email"`

	// PasswordHash is the salted bcrypt hash of the password.
	// It is never exposed via JSON.
	PasswordHash string `json:"-"`

	CreatedAt time.Time  `json:"created_at"`
	LastLogin *time.Time `json:"last_login"`

	// IsActive is a soft-deactivation flag. No endpoint clears it.
	IsActive bool `json:"is_active"`

	Bio                string     `json:"bio"`
	FavoriteCategories StringList `json:"favorite_categories"`
	SubscriptionPlan   string     `json:"subscription_plan"`

	// VideosGenerated is the cumulative number of attributed generations.
	VideosGenerated int64 `json:"videos_generated"`

	// TotalViralScore is the cumulative sum of viral scores of all
	// attributed generations.
	TotalViralScore float64 `json:"-"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// AverageViralScore returns TotalViralScore / VideosGenerated rounded to one
// decimal place, or 0 when no videos were generated.
func (u User) AverageViralScore() float64 {
	if u.VideosGenerated <= 0 {
		return 0
	}

	return math.Round(u.TotalViralScore/float64(u.VideosGenerated)*10) / 10
}

// ProfileUpdate carries the profile fields a user may change.
// Nil fields are left untouched.
type ProfileUpdate struct {
	Email              *string
	Bio                *string
	FavoriteCategories *StringList
}

// IsEmpty reports whether the update carries no persisted field.
func (p ProfileUpdate) IsEmpty() bool {
	return p.Email == nil && p.Bio == nil && p.FavoriteCategories == nil
}
