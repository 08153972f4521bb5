package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/MKhiriev/viral-craft/internal/service"
	"github.com/MKhiriev/viral-craft/internal/store"
	"github.com/MKhiriev/viral-craft/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var alice = models.Identity{UserID: "7", Username: "alice"}

func TestGetProfile(t *testing.T) {
	h, mocks := newTestHandler(t)

	mocks.expectToken("tok", alice)
	mocks.profile.EXPECT().GetProfile(gomock.Any(), alice).Return(models.Profile{
		UserID:             "7",
		Username:           "alice",
		Email:              "alice@example.com",
		CreatedAt:          "2024-01-01T00:00:00Z",
		Subscription:       "free",
		VideosGenerated:    47,
		ViralScoreAvg:      82,
		FavoriteCategories: models.StringList{"dance"},
	}, nil)

	rr := serve(t, h, http.MethodGet, "/api/profile", "", bearer("tok")...)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{
		"success": true,
		"profile": {
			"user_id": "7",
			"username": "alice",
			"email": "alice@example.com",
			"created_at": "2024-01-01T00:00:00Z",
			"subscription": "free",
			"videos_generated": 47,
			"viral_score_avg": 82,
			"favorite_categories": ["dance"]
		}
	}`, rr.Body.String())
}

func TestProtectedRoutes_RequireToken(t *testing.T) {
	routes := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/profile"},
		{http.MethodPut, "/api/profile"},
		{http.MethodGet, "/api/history"},
		{http.MethodPost, "/api/favorites"},
		{http.MethodGet, "/api/subscription"},
	}

	for _, route := range routes {
		t.Run(route.method+" "+route.path, func(t *testing.T) {
			h, _ := newTestHandler(t)

			rr := serve(t, h, route.method, route.path, `{"video_id":1}`)

			assert.Equal(t, http.StatusUnauthorized, rr.Code)
			assert.Equal(t, "Token is missing", decodeError(t, rr).Error)
		})
	}
}

func TestGetProfile_UnknownIdentity(t *testing.T) {
	h, mocks := newTestHandler(t)

	stale := models.Identity{UserID: "user_alice_1", Username: "alice"}
	mocks.expectToken("tok", stale)
	mocks.profile.EXPECT().GetProfile(gomock.Any(), stale).Return(models.Profile{}, service.ErrUnknownIdentity)

	rr := serve(t, h, http.MethodGet, "/api/profile", "", bearer("tok")...)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Equal(t, "Token does not refer to a registered user", decodeError(t, rr).Message)
}

func TestUpdateProfile(t *testing.T) {
	h, mocks := newTestHandler(t)

	mocks.expectToken("tok", alice)
	mocks.profile.EXPECT().UpdateProfile(gomock.Any(), alice, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ models.Identity, fields map[string]json.RawMessage) ([]string, error) {
			assert.Len(t, fields, 3)
			assert.JSONEq(t, `"hi"`, string(fields["bio"]))
			return []string{"bio", "preferences"}, nil
		},
	)

	rr := serve(t, h, http.MethodPut, "/api/profile", `{"bio":"hi","role":"admin","preferences":{"dark":true}}`, bearer("tok")...)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"success":true,"message":"Profile updated successfully","updated_fields":["bio","preferences"]}`, rr.Body.String())
}

func TestUpdateProfile_Rejected(t *testing.T) {
	t.Run("empty_body", func(t *testing.T) {
		h, mocks := newTestHandler(t)
		mocks.expectToken("tok", alice)

		rr := serve(t, h, http.MethodPut, "/api/profile", `{}`, bearer("tok")...)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Equal(t, "No data provided", decodeError(t, rr).Error)
	})

	t.Run("invalid_field_type", func(t *testing.T) {
		h, mocks := newTestHandler(t)
		mocks.expectToken("tok", alice)
		mocks.profile.EXPECT().UpdateProfile(gomock.Any(), alice, gomock.Any()).
			Return(nil, errors.Join(service.ErrInvalidProfileField, errors.New("bio")))

		rr := serve(t, h, http.MethodPut, "/api/profile", `{"bio":1}`, bearer("tok")...)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Equal(t, "Invalid field value", decodeError(t, rr).Error)
	})

	t.Run("email_taken", func(t *testing.T) {
		h, mocks := newTestHandler(t)
		mocks.expectToken("tok", alice)
		mocks.profile.EXPECT().UpdateProfile(gomock.Any(), alice, gomock.Any()).Return(nil, store.ErrUserAlreadyExists)

		rr := serve(t, h, http.MethodPut, "/api/profile", `{"email":"bob@example.com"}`, bearer("tok")...)

		assert.Equal(t, http.StatusConflict, rr.Code)
	})
}

func TestGetHistory(t *testing.T) {
	t.Run("records", func(t *testing.T) {
		h, mocks := newTestHandler(t)
		mocks.expectToken("tok", alice)
		mocks.profile.EXPECT().GetHistory(gomock.Any(), alice).Return([]models.VideoHistory{
			{ID: 2, Prompt: "b", ViralScore: 92, CreatedAt: time.Date(2024, 1, 14, 15, 45, 0, 0, time.UTC)},
			{ID: 1, Prompt: "a", ViralScore: 87, CreatedAt: time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)},
		}, nil)

		rr := serve(t, h, http.MethodGet, "/api/history", "", bearer("tok")...)

		require.Equal(t, http.StatusOK, rr.Code)
		body := decodeBody[models.HistoryResponse](t, rr)
		assert.True(t, body.Success)
		assert.Equal(t, 2, body.Total)
		assert.Equal(t, "b", body.History[0].Prompt)
		assert.Contains(t, rr.Body.String(), `"created_at":"2024-01-14T15:45:00Z"`)
	})

	t.Run("empty_is_a_list", func(t *testing.T) {
		h, mocks := newTestHandler(t)
		mocks.expectToken("tok", alice)
		mocks.profile.EXPECT().GetHistory(gomock.Any(), alice).Return(nil, nil)

		rr := serve(t, h, http.MethodGet, "/api/history", "", bearer("tok")...)

		assert.JSONEq(t, `{"success":true,"history":[],"total":0}`, rr.Body.String())
	})

	t.Run("store_failure", func(t *testing.T) {
		h, mocks := newTestHandler(t)
		mocks.expectToken("tok", alice)
		mocks.profile.EXPECT().GetHistory(gomock.Any(), alice).Return(nil, store.ErrScanningRows)

		rr := serve(t, h, http.MethodGet, "/api/history", "", bearer("tok")...)

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
		assert.Equal(t, models.ErrorResponse{Error: "Failed to fetch history", Message: "Something went wrong on the server"}, decodeError(t, rr))
	})
}

func TestAddFavorite(t *testing.T) {
	h, mocks := newTestHandler(t)

	mocks.expectToken("tok", alice)
	mocks.profile.EXPECT().AddFavorite(gomock.Any(), alice, json.RawMessage(`12`)).Return(nil)

	rr := serve(t, h, http.MethodPost, "/api/favorites", `{"video_id":12}`, bearer("tok")...)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"success":true,"message":"Added to favorites successfully"}`, rr.Body.String())
}

func TestAddFavorite_NullVideoIDIsPresent(t *testing.T) {
	h, mocks := newTestHandler(t)

	mocks.expectToken("tok", alice)
	mocks.profile.EXPECT().AddFavorite(gomock.Any(), alice, json.RawMessage(`null`)).Return(nil)

	rr := serve(t, h, http.MethodPost, "/api/favorites", `{"video_id":null}`, bearer("tok")...)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"success":true,"message":"Added to favorites successfully"}`, rr.Body.String())
}

func TestAddFavorite_Rejected(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		serviceErr error
		wantStatus int
		wantError  string
	}{
		{name: "no_body", body: "", wantStatus: http.StatusBadRequest, wantError: "Video ID is required"},
		{name: "missing_field", body: `{"other":1}`, wantStatus: http.StatusBadRequest, wantError: "Video ID is required"},
		{name: "null_field_stored", body: `{"video_id":null}`, serviceErr: service.ErrInvalidVideoID, wantStatus: http.StatusBadRequest, wantError: "Invalid video ID"},
		{name: "bad_id", body: `{"video_id":"x"}`, serviceErr: service.ErrInvalidVideoID, wantStatus: http.StatusBadRequest, wantError: "Invalid video ID"},
		{name: "not_owned", body: `{"video_id":99}`, serviceErr: store.ErrVideoNotFound, wantStatus: http.StatusNotFound, wantError: "Video not found"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, mocks := newTestHandler(t)
			mocks.expectToken("tok", alice)
			if tt.serviceErr != nil {
				mocks.profile.EXPECT().AddFavorite(gomock.Any(), alice, gomock.Any()).Return(tt.serviceErr)
			}

			rr := serve(t, h, http.MethodPost, "/api/favorites", tt.body, bearer("tok")...)

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, tt.wantError, decodeError(t, rr).Error)
		})
	}
}

func TestGetSubscription(t *testing.T) {
	h, mocks := newTestHandler(t)

	mocks.expectToken("tok", alice)
	mocks.profile.EXPECT().GetSubscription(gomock.Any(), alice).Return(models.Subscription{
		Plan:            "free",
		VideosRemaining: 3,
		VideosTotal:     5,
		ResetDate:       "2024-02-01T00:00:00Z",
		UpgradeOptions:  []models.UpgradeOption{{Plan: "pro", Price: "$19.99/month", Features: []string{"HD export"}}},
	}, nil)

	rr := serve(t, h, http.MethodGet, "/api/subscription", "", bearer("tok")...)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{
		"success": true,
		"subscription": {
			"plan": "free",
			"videos_remaining": 3,
			"videos_total": 5,
			"reset_date": "2024-02-01T00:00:00Z",
			"features": {"hd_export": false, "unlimited_videos": false, "premium_trends": false, "analytics": false},
			"upgrade_options": [{"plan": "pro", "price": "$19.99/month", "features": ["HD export"]}]
		}
	}`, rr.Body.String())
}
