package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/contacthub/contacthub/internal/logger"
	"github.com/contacthub/contacthub/internal/service"
	"github.com/contacthub/contacthub/internal/utils"
	"github.com/contacthub/contacthub/models"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Mock UserService
// ─────────────────────────────────────────────

// mockUserService implements service.UserService for unit tests.
// Each method field can be overridden per test case.
type mockUserService struct {
	registerFn     func(ctx context.Context, request models.RegisterRequest) (models.UserResponse, error)
	loginFn        func(ctx context.Context, request models.LoginRequest) (models.UserResponse, error)
	authenticateFn func(ctx context.Context, token string) (models.User, error)
	updateFn       func(ctx context.Context, user models.User, request models.UpdateUserRequest) (models.UserResponse, error)
	logoutFn       func(ctx context.Context, user models.User) error
}

func (m *mockUserService) Register(ctx context.Context, request models.RegisterRequest) (models.UserResponse, error) {
	if m.registerFn != nil {
		return m.registerFn(ctx, request)
	}
	return models.UserResponse{}, nil
}

func (m *mockUserService) Login(ctx context.Context, request models.LoginRequest) (models.UserResponse, error) {
	if m.loginFn != nil {
		return m.loginFn(ctx, request)
	}
	return models.UserResponse{}, nil
}

func (m *mockUserService) Authenticate(ctx context.Context, token string) (models.User, error) {
	if m.authenticateFn != nil {
		return m.authenticateFn(ctx, token)
	}
	return models.User{}, service.ErrUnauthorized
}

func (m *mockUserService) Current(_ context.Context, user models.User) models.UserResponse {
	return models.ToUserResponse(user)
}

func (m *mockUserService) Update(ctx context.Context, user models.User, request models.UpdateUserRequest) (models.UserResponse, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, user, request)
	}
	return models.UserResponse{}, nil
}

func (m *mockUserService) Logout(ctx context.Context, user models.User) error {
	if m.logoutFn != nil {
		return m.logoutFn(ctx, user)
	}
	return nil
}

// ─────────────────────────────────────────────
// Mock ContactService
// ─────────────────────────────────────────────

type mockContactService struct {
	createFn func(ctx context.Context, user models.User, request models.CreateContactRequest) (models.ContactResponse, error)
	getFn    func(ctx context.Context, user models.User, contactID int64) (models.ContactResponse, error)
	updateFn func(ctx context.Context, user models.User, request models.UpdateContactRequest) (models.ContactResponse, error)
}

func (m *mockContactService) Create(ctx context.Context, user models.User, request models.CreateContactRequest) (models.ContactResponse, error) {
	if m.createFn != nil {
		return m.createFn(ctx, user, request)
	}
	return models.ContactResponse{}, nil
}

func (m *mockContactService) Get(ctx context.Context, user models.User, contactID int64) (models.ContactResponse, error) {
	if m.getFn != nil {
		return m.getFn(ctx, user, contactID)
	}
	return models.ContactResponse{}, nil
}

func (m *mockContactService) Update(ctx context.Context, user models.User, request models.UpdateContactRequest) (models.ContactResponse, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, user, request)
	}
	return models.ContactResponse{}, nil
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

func newTestHandler(t *testing.T, users service.UserService, contacts service.ContactService) *Handler {
	t.Helper()
	if users == nil {
		users = &mockUserService{}
	}
	if contacts == nil {
		contacts = &mockContactService{}
	}
	return NewHandler(&service.Services{UserService: users, ContactService: contacts}, logger.Nop())
}

// authedRequest attaches an authenticated user to the request context the
// same way the auth middleware does.
func authedRequest(r *http.Request, user models.User) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), utils.UserCtxKey, user))
}

func strPtr(s string) *string { return &s }

var testUser = models.User{Username: "aegon", Name: "Aegon", Password: "bcrypt-hash"}

// decodeData unmarshals the `data` field of a success envelope into out.
func decodeData(t *testing.T, rec *httptest.ResponseRecorder, out any) {
	t.Helper()
	var envelope struct {
		Data json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	require.NotNil(t, envelope.Data, "expected a data envelope, got %s", rec.Body.String())
	require.NoError(t, json.Unmarshal(envelope.Data, out))
}

// decodeErrors returns the `errors` string of a failure envelope.
func decodeErrors(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var envelope struct {
		Errors string `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	require.NotEmpty(t, envelope.Errors, "expected an errors envelope, got %s", rec.Body.String())
	return envelope.Errors
}
