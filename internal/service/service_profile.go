package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/viral-craft/internal/logger"
	"github.com/MKhiriev/viral-craft/internal/store"
	"github.com/MKhiriev/viral-craft/internal/validators"
	"github.com/MKhiriev/viral-craft/models"
)

// Profile fields accepted by UpdateProfile, in reporting order.
const (
	ProfileFieldEmail              = "email"
	ProfileFieldBio                = "bio"
	ProfileFieldFavoriteCategories = "favorite_categories"
	ProfileFieldPreferences        = "preferences"
)

var profileAllowList = []string{
	ProfileFieldEmail,
	ProfileFieldBio,
	ProfileFieldFavoriteCategories,
	ProfileFieldPreferences,
}

const (
	// FreeMonthlyQuota is the number of generations per calendar month on
	// the free plan.
	FreeMonthlyQuota = 5

	// Unlimited is reported as the quota of paid plans.
	Unlimited = -1

	PlanPro      = "pro"
	PlanBusiness = "business"
)

var planFeatures = map[string]models.SubscriptionFeatures{
	models.SubscriptionFree: {},
	PlanPro:                 {HDExport: true, UnlimitedVideos: true, PremiumTrends: true},
	PlanBusiness:            {HDExport: true, UnlimitedVideos: true, PremiumTrends: true, Analytics: true},
}

// upgradeTiers is ordered from the cheapest plan up.
var upgradeTiers = []models.UpgradeOption{
	{Plan: PlanPro, Price: "$19.99/month", Features: []string{"Unlimited videos", "HD export", "Premium trends"}},
	{Plan: PlanBusiness, Price: "$49.99/month", Features: []string{"All Pro features", "Team collaboration", "Analytics dashboard"}},
}

// upgradeOptionsFrom returns the tiers above plan. Unknown plans are
// treated as free.
func upgradeOptionsFrom(plan string) []models.UpgradeOption {
	start := 0
	for i, tier := range upgradeTiers {
		if tier.Plan == plan {
			start = i + 1
		}
	}

	options := make([]models.UpgradeOption, 0, len(upgradeTiers)-start)
	for _, tier := range upgradeTiers[start:] {
		tier.Features = append([]string(nil), tier.Features...)
		options = append(options, tier)
	}

	return options
}

// profileService implements ProfileService. With nil repositories it serves
// canned demo data and acknowledges writes without persisting them.
type profileService struct {
	users  store.UserRepository
	videos store.VideoHistoryRepository

	now func() time.Time

	logger *logger.Logger
}

func NewProfileService(users store.UserRepository, videos store.VideoHistoryRepository, logger *logger.Logger) ProfileService {
	return &profileService{
		users:  users,
		videos: videos,
		now:    time.Now,
		logger: logger,
	}
}

func (s *profileService) persisted() bool {
	return s.users != nil && s.videos != nil
}

// userID resolves identity to a stored user id.
func (s *profileService) userID(identity models.Identity) (int64, error) {
	id, ok := identity.PersistedID()
	if !ok {
		return 0, ErrUnknownIdentity
	}

	return id, nil
}

func (s *profileService) GetProfile(ctx context.Context, identity models.Identity) (models.Profile, error) {
	if !s.persisted() {
		return demoProfile(identity), nil
	}

	id, err := s.userID(identity)
	if err != nil {
		return models.Profile{}, err
	}

	user, err := s.users.FindUserByID(ctx, id)
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("id", id).Msg("failed to fetch profile")
		return models.Profile{}, fmt.Errorf("failed to fetch profile: %w", err)
	}

	return models.Profile{
		UserID:             identity.UserID,
		Username:           user.Username,
		Email:              user.Email,
		Bio:                user.Bio,
		CreatedAt:          formatTimestamp(user.CreatedAt),
		Subscription:       user.SubscriptionPlan,
		VideosGenerated:    user.VideosGenerated,
		ViralScoreAvg:      user.AverageViralScore(),
		FavoriteCategories: user.FavoriteCategories,
	}, nil
}

// UpdateProfile honours only the allow-listed keys of fields; any other key
// is dropped silently. "preferences" is acknowledged but has no storage.
func (s *profileService) UpdateProfile(ctx context.Context, identity models.Identity, fields map[string]json.RawMessage) ([]string, error) {
	if len(fields) == 0 {
		return nil, ErrNoDataProvided
	}

	updated := make([]string, 0, len(profileAllowList))
	for _, name := range profileAllowList {
		if _, ok := fields[name]; ok {
			updated = append(updated, name)
		}
	}

	if !s.persisted() {
		return updated, nil
	}

	id, err := s.userID(identity)
	if err != nil {
		return nil, err
	}

	update, err := decodeProfileUpdate(fields)
	if err != nil {
		return nil, err
	}
	if update.IsEmpty() {
		return updated, nil
	}

	if err = s.users.UpdateProfile(ctx, id, update); err != nil {
		logger.FromContext(ctx).Err(err).Int64("id", id).Msg("failed to update profile")
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}

	return updated, nil
}

func decodeProfileUpdate(fields map[string]json.RawMessage) (models.ProfileUpdate, error) {
	var update models.ProfileUpdate

	if raw, ok := fields[ProfileFieldEmail]; ok {
		var email string
		if err := json.Unmarshal(raw, &email); err != nil {
			return update, fmt.Errorf("%w: %s", ErrInvalidProfileField, ProfileFieldEmail)
		}
		email = strings.TrimSpace(email)
		if !strings.Contains(email, "@") {
			return update, validators.ErrInvalidEmail
		}
		update.Email = &email
	}

	if raw, ok := fields[ProfileFieldBio]; ok {
		var bio string
		if err := json.Unmarshal(raw, &bio); err != nil {
			return update, fmt.Errorf("%w: %s", ErrInvalidProfileField, ProfileFieldBio)
		}
		update.Bio = &bio
	}

	if raw, ok := fields[ProfileFieldFavoriteCategories]; ok {
		var categories []string
		if err := json.Unmarshal(raw, &categories); err != nil {
			return update, fmt.Errorf("%w: %s", ErrInvalidProfileField, ProfileFieldFavoriteCategories)
		}
		list := models.StringList(categories)
		if list == nil {
			list = models.StringList{}
		}
		update.FavoriteCategories = &list
	}

	return update, nil
}

func (s *profileService) GetHistory(ctx context.Context, identity models.Identity) ([]models.VideoHistory, error) {
	if !s.persisted() {
		return demoHistory(), nil
	}

	id, err := s.userID(identity)
	if err != nil {
		return nil, err
	}

	history, err := s.videos.ListByUser(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch history: %w", err)
	}

	return history, nil
}

// AddFavorite marks a history record of the caller. The demo mode only
// acknowledges the request.
func (s *profileService) AddFavorite(ctx context.Context, identity models.Identity, videoID json.RawMessage) error {
	if !s.persisted() {
		return nil
	}

	id, err := s.userID(identity)
	if err != nil {
		return err
	}

	vid, err := parseVideoID(videoID)
	if err != nil {
		return err
	}

	if err = s.videos.SetFavorite(ctx, id, vid, true); err != nil {
		logger.FromContext(ctx).Err(err).Int64("id", id).Int64("video_id", vid).Msg("failed to add favorite")
		return fmt.Errorf("failed to add favorite: %w", err)
	}

	return nil
}

// parseVideoID accepts a JSON number or a numeric JSON string.
func parseVideoID(raw json.RawMessage) (int64, error) {
	var id int64
	if err := json.Unmarshal(raw, &id); err != nil {
		var s string
		if json.Unmarshal(raw, &s) != nil {
			return 0, ErrInvalidVideoID
		}
		if id, err = strconv.ParseInt(strings.TrimSpace(s), 10, 64); err != nil {
			return 0, ErrInvalidVideoID
		}
	}

	if id <= 0 {
		return 0, ErrInvalidVideoID
	}

	return id, nil
}

// GetSubscription reports the plan of the caller. Free-plan usage counts
// the generations recorded since the first day of the current month (UTC).
func (s *profileService) GetSubscription(ctx context.Context, identity models.Identity) (models.Subscription, error) {
	if !s.persisted() {
		return demoSubscription(), nil
	}

	id, err := s.userID(identity)
	if err != nil {
		return models.Subscription{}, err
	}

	user, err := s.users.FindUserByID(ctx, id)
	if err != nil {
		return models.Subscription{}, fmt.Errorf("failed to fetch subscription: %w", err)
	}

	plan := user.SubscriptionPlan
	features, known := planFeatures[plan]
	if !known {
		plan = models.SubscriptionFree
		features = planFeatures[plan]
	}

	now := s.now().UTC()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)

	subscription := models.Subscription{
		Plan:            plan,
		VideosRemaining: Unlimited,
		VideosTotal:     Unlimited,
		ResetDate:       formatTimestamp(monthStart.AddDate(0, 1, 0)),
		Features:        features,
		UpgradeOptions:  upgradeOptionsFrom(plan),
	}

	if plan != models.SubscriptionFree {
		return subscription, nil
	}

	history, err := s.videos.ListByUser(ctx, id)
	if err != nil {
		return models.Subscription{}, fmt.Errorf("failed to count monthly usage: %w", err)
	}

	var used int64
	for _, video := range history {
		if !video.CreatedAt.Before(monthStart) {
			used++
		}
	}

	subscription.VideosTotal = FreeMonthlyQuota
	subscription.VideosRemaining = max(0, FreeMonthlyQuota-used)

	return subscription, nil
}
