package validators

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/MKhiriev/viral-craft/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRequestValidator(t *testing.T) {
	require.NotNil(t, NewRequestValidator())
}

func TestValidate_UnsupportedType(t *testing.T) {
	err := NewRequestValidator().Validate(context.Background(), 42)
	assert.ErrorIs(t, err, ErrUnsupportedType)
}

func TestValidate_Register(t *testing.T) {
	tests := []struct {
		name string
		req  models.RegisterRequest
		want error
	}{
		{"valid", models.RegisterRequest{Username: "bob", Email: "b@x.io", Password: "secret"}, nil},
		{"short username", models.RegisterRequest{Username: "ab", Email: "b@x.io", Password: "secret"}, ErrInvalidUsername},
		{"padded username", models.RegisterRequest{Username: "  ab  ", Email: "b@x.io", Password: "secret"}, ErrInvalidUsername},
		{"unicode username", models.RegisterRequest{Username: "жук", Email: "b@x.io", Password: "secret"}, nil},
		{"no at", models.RegisterRequest{Username: "bob", Email: "bob.x.io", Password: "secret"}, ErrInvalidEmail},
		{"short password", models.RegisterRequest{Username: "bob", Email: "b@x.io", Password: "12345"}, ErrInvalidPassword},
		{"first failure wins", models.RegisterRequest{Username: "b", Email: "nope", Password: "1"}, ErrInvalidUsername},
		{"email before password", models.RegisterRequest{Username: "bob", Email: "nope", Password: "1"}, ErrInvalidEmail},
	}

	v := NewRequestValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(context.Background(), tt.req)
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.want)

			err = v.Validate(context.Background(), &tt.req)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestValidate_RegisterMessages(t *testing.T) {
	assert.Equal(t, "Username must be at least 3 characters long", ErrInvalidUsername.Error())
	assert.Equal(t, "Valid email is required", ErrInvalidEmail.Error())
	assert.Equal(t, "Password must be at least 6 characters long", ErrInvalidPassword.Error())
}

func TestValidate_RegisterSelectedFields(t *testing.T) {
	v := NewRequestValidator()
	req := models.RegisterRequest{Username: "b", Email: "nope", Password: "secret"}

	assert.ErrorIs(t, v.Validate(context.Background(), req, FieldPassword, FieldEmail), ErrInvalidEmail)
	assert.NoError(t, v.Validate(context.Background(), req, FieldPassword))
	assert.ErrorIs(t, v.Validate(context.Background(), req, "bio"), ErrUnknownField)
}

func TestValidate_Login(t *testing.T) {
	v := NewRequestValidator()

	assert.NoError(t, v.Validate(context.Background(), models.LoginRequest{Username: "ab", Password: "x"}))
	assert.ErrorIs(t, v.Validate(context.Background(), models.LoginRequest{Username: "  ", Password: "x"}), ErrCredentialsRequired)
	assert.ErrorIs(t, v.Validate(context.Background(), &models.LoginRequest{Username: "bob"}), ErrCredentialsRequired)
	assert.ErrorIs(t, v.Validate(context.Background(), models.LoginRequest{}, FieldEmail), ErrUnknownField)
}

func TestValidate_Generate(t *testing.T) {
	v := NewRequestValidator()

	assert.NoError(t, v.Validate(context.Background(), models.GenerateVideoRequest{Prompt: "dance"}))
	assert.ErrorIs(t, v.Validate(context.Background(), models.GenerateVideoRequest{}), ErrPromptRequired)
}

func TestValidate_Favorite(t *testing.T) {
	v := NewRequestValidator()
	assert.NoError(t, v.Validate(context.Background(), models.FavoriteRequest{VideoID: json.RawMessage(`7`)}))
	// a present null is a value; the service decides whether it is a usable id
	assert.NoError(t, v.Validate(context.Background(), models.FavoriteRequest{VideoID: json.RawMessage(`null`)}))
	assert.ErrorIs(t, v.Validate(context.Background(), &models.FavoriteRequest{}), ErrVideoIDRequired)
}
