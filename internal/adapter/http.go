package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/contacthub/contacthub/internal/logger"
	"github.com/contacthub/contacthub/internal/utils"
	"github.com/contacthub/contacthub/models"
	"github.com/go-resty/resty/v2"
)

const tokenHeader = "X-API-TOKEN"

type httpAPIClient struct {
	client *utils.HTTPClient

	token string

	logger *logger.Logger
}

// NewHTTPAPIClient constructs an HTTP/REST implementation of [APIClient].
// It normalises and validates the base URL and configures the underlying
// HTTP client with the resolved base URL and request timeout.
//
// Returns an error if address is empty or cannot be parsed as a valid URL.
func NewHTTPAPIClient(address string, requestTimeout time.Duration, logger *logger.Logger) (APIClient, error) {
	baseURL, err := normalizeBaseURL(address)
	if err != nil {
		return nil, fmt.Errorf("invalid api address: %w", err)
	}

	client := utils.NewHTTPClient()
	client.
		SetBaseURL(baseURL).
		SetTimeout(requestTimeout)

	return &httpAPIClient{client: client, logger: logger}, nil
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

// SetToken implements [APIClient]. It stores token (whitespace-trimmed) for
// use in the X-API-TOKEN header of all subsequent authenticated requests.
func (h *httpAPIClient) SetToken(token string) {
	h.token = strings.TrimSpace(token)
}

// Token implements [APIClient].
func (h *httpAPIClient) Token() string {
	return h.token
}

func (h *httpAPIClient) authedRequest(ctx context.Context) *resty.Request {
	return h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetHeader(tokenHeader, h.token)
}

// Register implements [APIClient]. It POSTs the registration payload to
// POST /api/users and decodes the created profile from the data envelope.
func (h *httpAPIClient) Register(ctx context.Context, request models.RegisterRequest) (models.UserResponse, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(request).
		Post("/api/users")
	if err != nil {
		return models.UserResponse{}, fmt.Errorf("register request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.UserResponse{}, err
	}

	return decodeUser(resp)
}

// Login implements [APIClient]. On success the issued session token from the
// response body is stored via SetToken for subsequent requests.
func (h *httpAPIClient) Login(ctx context.Context, request models.LoginRequest) (models.UserResponse, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(request).
		Post("/api/users/login")
	if err != nil {
		return models.UserResponse{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.UserResponse{}, err
	}

	user, err := decodeUser(resp)
	if err != nil {
		return models.UserResponse{}, err
	}

	h.SetToken(user.Token)

	return user, nil
}

// CurrentUser implements [APIClient]. Requires a session token to be set.
func (h *httpAPIClient) CurrentUser(ctx context.Context) (models.UserResponse, error) {
	resp, err := h.authedRequest(ctx).Get("/api/users/current")
	if err != nil {
		return models.UserResponse{}, fmt.Errorf("current user request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.UserResponse{}, err
	}

	return decodeUser(resp)
}

// UpdateUser implements [APIClient]. Requires a session token to be set.
func (h *httpAPIClient) UpdateUser(ctx context.Context, request models.UpdateUserRequest) (models.UserResponse, error) {
	resp, err := h.authedRequest(ctx).
		SetBody(request).
		Patch("/api/users/current")
	if err != nil {
		return models.UserResponse{}, fmt.Errorf("update user request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.UserResponse{}, err
	}

	return decodeUser(resp)
}

// Logout implements [APIClient]. On success the stored token is cleared, as
// the server has invalidated the session it identified.
func (h *httpAPIClient) Logout(ctx context.Context) error {
	resp, err := h.authedRequest(ctx).Delete("/api/users/current")
	if err != nil {
		return fmt.Errorf("logout request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}

	h.SetToken("")

	return nil
}

// CreateContact implements [APIClient]. Requires a session token to be set.
func (h *httpAPIClient) CreateContact(ctx context.Context, request models.CreateContactRequest) (models.ContactResponse, error) {
	resp, err := h.authedRequest(ctx).
		SetBody(request).
		Post("/api/contacts")
	if err != nil {
		return models.ContactResponse{}, fmt.Errorf("create contact request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.ContactResponse{}, err
	}

	return decodeContact(resp)
}

// GetContact implements [APIClient]. Requires a session token to be set.
func (h *httpAPIClient) GetContact(ctx context.Context, contactID int64) (models.ContactResponse, error) {
	resp, err := h.authedRequest(ctx).
		Get("/api/contacts/" + strconv.FormatInt(contactID, 10))
	if err != nil {
		return models.ContactResponse{}, fmt.Errorf("get contact request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.ContactResponse{}, err
	}

	return decodeContact(resp)
}

// UpdateContact implements [APIClient]. Requires a session token to be set.
func (h *httpAPIClient) UpdateContact(ctx context.Context, request models.UpdateContactRequest) (models.ContactResponse, error) {
	resp, err := h.authedRequest(ctx).
		SetBody(request).
		Put("/api/contacts/" + strconv.FormatInt(request.ID, 10))
	if err != nil {
		return models.ContactResponse{}, fmt.Errorf("update contact request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.ContactResponse{}, err
	}

	return decodeContact(resp)
}

func decodeUser(resp *resty.Response) (models.UserResponse, error) {
	var envelope struct {
		Data models.UserResponse `json:"data"`
	}
	if err := json.Unmarshal(resp.Body(), &envelope); err != nil {
		return models.UserResponse{}, fmt.Errorf("decode user response: %w", err)
	}

	return envelope.Data, nil
}

func decodeContact(resp *resty.Response) (models.ContactResponse, error) {
	var envelope struct {
		Data models.ContactResponse `json:"data"`
	}
	if err := json.Unmarshal(resp.Body(), &envelope); err != nil {
		return models.ContactResponse{}, fmt.Errorf("decode contact response: %w", err)
	}

	return envelope.Data, nil
}
