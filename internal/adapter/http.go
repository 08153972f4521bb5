package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/MKhiriev/viral-craft/internal/config"
	"github.com/MKhiriev/viral-craft/internal/logger"
	"github.com/MKhiriev/viral-craft/models"
	"github.com/go-resty/resty/v2"
)

type httpServerAdapter struct {
	client *resty.Client

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// authResponse is the body of register and login responses.
type authResponse[U any] struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	User    U      `json:"user"`
	Token   string `json:"token"`
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of [ServerAdapter].
// It normalises and validates cfg.BaseURL and configures the underlying resty
// client with the resolved base URL and request timeout.
//
// Returns an error if cfg.BaseURL is empty or cannot be parsed as a valid URL.
func NewHTTPServerAdapter(cfg config.ClientConfig, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid server base url: %w", err)
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(cfg.RequestTimeout).
		SetHeader("Accept", "application/json")

	return &httpServerAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [ServerAdapter]. It stores token (whitespace-trimmed) for
// use in the Authorization header of all subsequent requests.
func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

// Token implements [ServerAdapter].
func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// Register implements [ServerAdapter]. It POSTs req to /api/register and
// stores the token of the 201 response.
func (h *httpServerAdapter) Register(ctx context.Context, req models.RegisterRequest) (models.RegisteredUser, error) {
	var result authResponse[models.RegisteredUser]

	resp, err := h.request(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		SetResult(&result).
		Post("/api/register")
	if err != nil {
		return models.RegisteredUser{}, fmt.Errorf("register request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.RegisteredUser{}, err
	}

	token, err := tokenFrom(resp, result.Token)
	if err != nil {
		return models.RegisteredUser{}, fmt.Errorf("register: %w", err)
	}

	h.SetToken(token)
	return result.User, nil
}

// Login implements [ServerAdapter]. It POSTs req to /api/login and stores the
// returned token.
func (h *httpServerAdapter) Login(ctx context.Context, req models.LoginRequest) (models.LoggedInUser, error) {
	var result authResponse[models.LoggedInUser]

	resp, err := h.request(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		SetResult(&result).
		Post("/api/login")
	if err != nil {
		return models.LoggedInUser{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.LoggedInUser{}, err
	}

	token, err := tokenFrom(resp, result.Token)
	if err != nil {
		return models.LoggedInUser{}, fmt.Errorf("login: %w", err)
	}

	h.SetToken(token)
	return result.User, nil
}

// GenerateVideo implements [ServerAdapter]. The request blocks for the
// server's simulated processing time.
func (h *httpServerAdapter) GenerateVideo(ctx context.Context, prompt string) (models.GenerateVideoResponse, error) {
	var result models.GenerateVideoResponse

	resp, err := h.request(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.GenerateVideoRequest{Prompt: prompt}).
		SetResult(&result).
		Post("/api/generate-video")
	if err != nil {
		return models.GenerateVideoResponse{}, fmt.Errorf("generate video request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.GenerateVideoResponse{}, err
	}

	return result, nil
}

// TrendingElements implements [ServerAdapter].
func (h *httpServerAdapter) TrendingElements(ctx context.Context) (models.TrendingSnapshot, error) {
	var result models.TrendingSnapshot

	resp, err := h.request(ctx).SetResult(&result).Get("/api/trending-elements")
	if err != nil {
		return models.TrendingSnapshot{}, fmt.Errorf("trending elements request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.TrendingSnapshot{}, err
	}

	return result, nil
}

// Health implements [ServerAdapter].
func (h *httpServerAdapter) Health(ctx context.Context) (models.Health, error) {
	var result models.Health

	resp, err := h.request(ctx).SetResult(&result).Get("/api/health")
	if err != nil {
		return models.Health{}, fmt.Errorf("health request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Health{}, err
	}

	return result, nil
}

// request starts a request carrying the stored token, if any.
func (h *httpServerAdapter) request(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetAuthToken(token)
	}
	return req
}

// tokenFrom prefers the token of the response body and falls back to the
// Authorization response header.
func tokenFrom(resp *resty.Response, bodyToken string) (string, error) {
	if token := strings.TrimSpace(bodyToken); token != "" {
		return token, nil
	}

	return parseBearerToken(resp.Header().Get("Authorization"))
}

func parseBearerToken(value string) (string, error) {
	scheme, token, _ := strings.Cut(strings.TrimSpace(value), " ")
	token = strings.TrimSpace(token)
	if !strings.EqualFold(scheme, "Bearer") || token == "" {
		return "", ErrNoToken
	}
	return token, nil
}
