// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"strings"
	"time"

	"github.com/MKhiriev/viral-craft/models"
)

// Canned account data served when no user store is available.

const (
	demoCreatedAt       = "2024-01-01T00:00:00Z"
	demoVideosGenerated = 47
	demoViralScoreAvg   = 82
	demoEmailDomain     = "example.com"
)

var demoFavoriteCategories = models.StringList{"dance", "food", "comedy"}

func demoDate(value string) time.Time {
	t, _ := time.Parse(time.RFC3339, value)
	return t
}

func demoHistory() []models.VideoHistory {
	return []models.VideoHistory{
		{
			ID:            1,
			Prompt:        "A funny reaction to trying a new food trend",
			ViralScore:    87,
			CreatedAt:     demoDate("2024-01-15T10:30:00Z"),
			Canned:        true,
			AppliedTrends: models.StringList{"Trending Audio Clip", "POV Format"},
		},
		{
			ID:            2,
			Prompt:        "Dance challenge with my pet dog",
			ViralScore:    92,
			CreatedAt:     demoDate("2024-01-14T15:45:00Z"),
			Canned:        true,
			AppliedTrends: models.StringList{"Viral Dance Beat #1", "Neon Glow Transition"},
		},
		{
			ID:            3,
			Prompt:        "Tutorial on organizing your room in 60 seconds",
			ViralScore:    78,
			CreatedAt:     demoDate("2024-01-13T09:20:00Z"),
			Canned:        true,
			AppliedTrends: models.StringList{"Before/After", "Color Pop Filter"},
		},
	}
}

func demoSubscription() models.Subscription {
	return models.Subscription{
		Plan:            models.SubscriptionFree,
		VideosRemaining: 3,
		VideosTotal:     FreeMonthlyQuota,
		ResetDate:       "2024-02-01T00:00:00Z",
		Features:        planFeatures[models.SubscriptionFree],
		UpgradeOptions:  upgradeOptionsFrom(models.SubscriptionFree),
	}
}

// demoUsername returns the username of identity, falling back to the second
// "_"-separated part of a synthesized "user_<username>_<unix>" id.
func demoUsername(identity models.Identity) string {
	if identity.Username != "" {
		return identity.Username
	}

	parts := strings.Split(identity.UserID, "_")
	if len(parts) < 2 {
		return identity.UserID
	}

	return parts[1]
}

func demoProfile(identity models.Identity) models.Profile {
	username := demoUsername(identity)

	return models.Profile{
		UserID:             identity.UserID,
		Username:           username,
		Email:              username + "@" + demoEmailDomain,
		CreatedAt:          demoCreatedAt,
		Subscription:       models.SubscriptionFree,
		VideosGenerated:    demoVideosGenerated,
		ViralScoreAvg:      demoViralScoreAvg,
		FavoriteCategories: append(models.StringList(nil), demoFavoriteCategories...),
	}
}
