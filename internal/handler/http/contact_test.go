package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/contacthub/contacthub/internal/store"
	"github.com/contacthub/contacthub/models"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// withContactID injects a chi route context carrying the contactID URL
// parameter, mirroring what the router does when the route matches.
func withContactID(r *http.Request, id string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("contactID", id)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// ─────────────────────────────────────────────
// createContact
// ─────────────────────────────────────────────

func TestCreateContact_Success(t *testing.T) {
	contacts := &mockContactService{
		createFn: func(_ context.Context, user models.User, request models.CreateContactRequest) (models.ContactResponse, error) {
			assert.Equal(t, "aegon", user.Username)
			return models.ContactResponse{ID: 7, FirstName: request.FirstName, LastName: request.LastName}, nil
		},
	}
	h := newTestHandler(t, nil, contacts)

	rec := httptest.NewRecorder()
	req := authedRequest(httptest.NewRequest(http.MethodPost, "/api/contacts",
		strings.NewReader(`{"first_name":"Jon","last_name":"Snow"}`)), testUser)

	h.createContact(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var response models.ContactResponse
	decodeData(t, rec, &response)
	assert.Equal(t, int64(7), response.ID)
	assert.Equal(t, "Jon", response.FirstName)
	require.NotNil(t, response.LastName)
	assert.Equal(t, "Snow", *response.LastName)
}

func TestCreateContact_InvalidJSON(t *testing.T) {
	h := newTestHandler(t, nil, nil)

	rec := httptest.NewRecorder()
	req := authedRequest(httptest.NewRequest(http.MethodPost, "/api/contacts",
		strings.NewReader(`not json`)), testUser)

	h.createContact(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid JSON was passed", decodeErrors(t, rec))
}

func TestCreateContact_NoUserInContext(t *testing.T) {
	h := newTestHandler(t, nil, nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/contacts",
		strings.NewReader(`{"first_name":"Jon"}`))

	h.createContact(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

// ─────────────────────────────────────────────
// getContact
// ─────────────────────────────────────────────

func TestGetContact_Success(t *testing.T) {
	contacts := &mockContactService{
		getFn: func(_ context.Context, user models.User, contactID int64) (models.ContactResponse, error) {
			assert.Equal(t, "aegon", user.Username)
			assert.Equal(t, int64(7), contactID)
			return models.ContactResponse{ID: contactID, FirstName: "Jon", Email: strPtr("jon@winterfell.example")}, nil
		},
	}
	h := newTestHandler(t, nil, contacts)

	rec := httptest.NewRecorder()
	req := withContactID(authedRequest(httptest.NewRequest(http.MethodGet, "/api/contacts/7", nil), testUser), "7")

	h.getContact(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var response models.ContactResponse
	decodeData(t, rec, &response)
	assert.Equal(t, int64(7), response.ID)
	require.NotNil(t, response.Email)
	assert.Equal(t, "jon@winterfell.example", *response.Email)
}

func TestGetContact_NotFound(t *testing.T) {
	contacts := &mockContactService{
		getFn: func(_ context.Context, _ models.User, _ int64) (models.ContactResponse, error) {
			return models.ContactResponse{}, store.ErrContactNotFound
		},
	}
	h := newTestHandler(t, nil, contacts)

	rec := httptest.NewRecorder()
	req := withContactID(authedRequest(httptest.NewRequest(http.MethodGet, "/api/contacts/404", nil), testUser), "404")

	h.getContact(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, store.ErrContactNotFound.Error(), decodeErrors(t, rec))
}

func TestGetContact_IDOverflowsInt64(t *testing.T) {
	// a numeric id beyond int64 cannot exist, so it reads as not found;
	// the service must not be consulted at all
	h := newTestHandler(t, nil, nil)

	overflowing := "9223372036854775808"
	rec := httptest.NewRecorder()
	req := withContactID(authedRequest(httptest.NewRequest(http.MethodGet, "/api/contacts/"+overflowing, nil), testUser), overflowing)

	h.getContact(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, store.ErrContactNotFound.Error(), decodeErrors(t, rec))
}

// ─────────────────────────────────────────────
// updateContact
// ─────────────────────────────────────────────

func TestUpdateContact_Success(t *testing.T) {
	contacts := &mockContactService{
		updateFn: func(_ context.Context, user models.User, request models.UpdateContactRequest) (models.ContactResponse, error) {
			assert.Equal(t, "aegon", user.Username)
			assert.Equal(t, int64(7), request.ID, "id must come from the url")
			return models.ContactResponse{ID: request.ID, FirstName: request.FirstName}, nil
		},
	}
	h := newTestHandler(t, nil, contacts)

	rec := httptest.NewRecorder()
	req := withContactID(authedRequest(httptest.NewRequest(http.MethodPut, "/api/contacts/7",
		strings.NewReader(`{"first_name":"Aegon"}`)), testUser), "7")

	h.updateContact(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var response models.ContactResponse
	decodeData(t, rec, &response)
	assert.Equal(t, int64(7), response.ID)
	assert.Equal(t, "Aegon", response.FirstName)
}

func TestUpdateContact_NotOwned(t *testing.T) {
	contacts := &mockContactService{
		updateFn: func(_ context.Context, _ models.User, _ models.UpdateContactRequest) (models.ContactResponse, error) {
			return models.ContactResponse{}, store.ErrContactNotFound
		},
	}
	h := newTestHandler(t, nil, contacts)

	rec := httptest.NewRecorder()
	req := withContactID(authedRequest(httptest.NewRequest(http.MethodPut, "/api/contacts/7",
		strings.NewReader(`{"first_name":"Aegon"}`)), testUser), "7")

	h.updateContact(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUpdateContact_IDOverflowsInt64(t *testing.T) {
	h := newTestHandler(t, nil, nil)

	overflowing := "9223372036854775808"
	rec := httptest.NewRecorder()
	req := withContactID(authedRequest(httptest.NewRequest(http.MethodPut, "/api/contacts/"+overflowing,
		strings.NewReader(`{"first_name":"Aegon"}`)), testUser), overflowing)

	h.updateContact(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, store.ErrContactNotFound.Error(), decodeErrors(t, rec))
}
