package models

import "encoding/json"

// RegisterRequest is the body of POST /api/register.
type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest is the body of POST /api/login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// AuthResponse is returned by register and login.
// User is either [RegisteredUser] or [LoggedInUser].
type AuthResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	User    any    `json:"user"`
	Token   string `json:"token"`
}

// RegisteredUser is the user section of a registration response.
type RegisteredUser struct {
	Username  string `json:"username"`
	Email     string `json:"email"`
	CreatedAt string `json:"created_at"`
}

// LoggedInUser is the user section of a login response.
type LoggedInUser struct {
	Username  string `json:"username"`
	LastLogin string `json:"last_login"`
}

// Profile is the public view of an account.
type Profile struct {
	UserID             string     `json:"user_id"`
	Username           string     `json:"username"`
	Email              string     `json:"email"`
	Bio                string     `json:"bio,omitempty"`
	CreatedAt          string     `json:"created_at"`
	Subscription       string     `json:"subscription"`
	VideosGenerated    int64      `json:"videos_generated"`
	ViralScoreAvg      float64    `json:"viral_score_avg"`
	FavoriteCategories StringList `json:"favorite_categories"`
}

// ProfileResponse is returned by GET /api/profile.
type ProfileResponse struct {
	Success bool    `json:"success"`
	Profile Profile `json:"profile"`
}

// UpdateProfileResponse is returned by PUT /api/profile.
type UpdateProfileResponse struct {
	Success       bool     `json:"success"`
	Message       string   `json:"message"`
	UpdatedFields []string `json:"updated_fields"`
}

// HistoryResponse is returned by GET /api/history.
type HistoryResponse struct {
	Success bool           `json:"success"`
	History []VideoHistory `json:"history"`
	Total   int            `json:"total"`
}

// FavoriteRequest is the body of POST /api/favorites.
// VideoID is empty when the field is absent; a present null is kept as the
// literal "null".
type FavoriteRequest struct {
	VideoID json.RawMessage `json:"video_id"`
}

// MessageResponse is a plain acknowledgement.
type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// SubscriptionFeatures lists the feature flags of a plan.
type SubscriptionFeatures struct {
	HDExport        bool `json:"hd_export"`
	UnlimitedVideos bool `json:"unlimited_videos"`
	PremiumTrends   bool `json:"premium_trends"`
	Analytics       bool `json:"analytics"`
}

// UpgradeOption describes a paid tier.
type UpgradeOption struct {
	Plan     string   `json:"plan"`
	Price    string   `json:"price"`
	Features []string `json:"features"`
}

// Subscription describes the plan and usage of an account.
type Subscription struct {
	Plan            string               `json:"plan"`
	VideosRemaining int64                `json:"videos_remaining"`
	VideosTotal     int64                `json:"videos_total"`
	ResetDate       string               `json:"reset_date"`
	Features        SubscriptionFeatures `json:"features"`
	UpgradeOptions  []UpgradeOption      `json:"upgrade_options"`
}

// SubscriptionResponse is returned by GET /api/subscription.
type SubscriptionResponse struct {
	Success      bool         `json:"success"`
	Subscription Subscription `json:"subscription"`
}

// GenerateVideoRequest is the body of POST /api/generate-video.
type GenerateVideoRequest struct {
	Prompt string `json:"prompt"`
}

// Recommendations holds posting advice attached to a generation.
type Recommendations struct {
	BestPostingTime   string `json:"bestPostingTime"`
	SuggestedHashtags string `json:"suggestedHashtags"`
	EstimatedReach    string `json:"estimatedReach"`
}

// GenerateVideoResponse is returned by POST /api/generate-video.
type GenerateVideoResponse struct {
	Success             bool            `json:"success"`
	Description         string          `json:"description"`
	AppliedTrends       []string        `json:"appliedTrends"`
	EstimatedViralScore int             `json:"estimatedViralScore"`
	SuggestedPlatforms  []string        `json:"suggestedPlatforms"`
	ContentCategory     ContentCategory `json:"contentCategory"`
	ProcessingTime      float64         `json:"processingTime"`
	GeneratedAt         int64           `json:"generatedAt"`
	Recommendations     Recommendations `json:"recommendations"`
}

// TrendSnapshotItem is a catalog item with jittered popularity.
type TrendSnapshotItem struct {
	Name       string  `json:"name"`
	Popularity float64 `json:"popularity"`
	Category   string  `json:"category"`
}

// TrendingSnapshot is returned by GET /api/trending-elements.
type TrendingSnapshot struct {
	Sounds      []TrendSnapshotItem `json:"sounds"`
	Effects     []TrendSnapshotItem `json:"effects"`
	Memes       []TrendSnapshotItem `json:"memes"`
	LastUpdated string              `json:"lastUpdated"`
	TotalTrends int                 `json:"totalTrends"`
}

// CategoryPerformance is a row of the top-performing categories table.
type CategoryPerformance struct {
	Category      ContentCategory `json:"category"`
	AvgViralScore int             `json:"avgViralScore"`
	Growth        string          `json:"growth"`
}

// PlatformInsight is a row of the per-platform insights table.
type PlatformInsight struct {
	BestTime   string `json:"bestTime"`
	Engagement string `json:"engagement"`
	Trending   string `json:"trending"`
}

// Analytics is returned by GET /api/analytics.
type Analytics struct {
	TopPerformingCategories []CategoryPerformance      `json:"topPerformingCategories"`
	PlatformInsights        map[string]PlatformInsight `json:"platformInsights"`
	ViralFactors            []string                   `json:"viralFactors"`
	MostUsedTrends          []TrendingElement          `json:"mostUsedTrends,omitempty"`
}

// Health is returned by GET /api/health.
type Health struct {
	Status   string `json:"status"`
	Service  string `json:"service"`
	Database string `json:"database"`
	Version  string `json:"version"`
}

// ErrorResponse is the body of every non-2xx JSON response.
type ErrorResponse struct {
	Error              string   `json:"error"`
	Message            string   `json:"message,omitempty"`
	AvailableEndpoints []string `json:"available_endpoints,omitempty"`
}
