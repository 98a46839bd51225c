package utils

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/contacthub/contacthub/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteJSON_Success(t *testing.T) {
	rr := httptest.NewRecorder()

	n, err := WriteJSON(rr, map[string]string{"status": "ok"}, 200)
	require.NoError(t, err)
	assert.Positive(t, n)
	assert.Equal(t, 200, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

	var body map[string]string
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Equal(t, "ok", body["status"])
}

func TestWriteJSON_MarshalError(t *testing.T) {
	rr := httptest.NewRecorder()

	// channels are not JSON-serializable
	_, err := WriteJSON(rr, make(chan int), 200)
	require.Error(t, err)
	assert.Equal(t, 500, rr.Code)
}

func TestGetUserFromContext(t *testing.T) {
	user := models.User{Username: "aegon", Name: "Aegon Targaryen"}
	ctx := context.WithValue(t.Context(), UserCtxKey, user)

	got, ok := GetUserFromContext(ctx)
	require.True(t, ok)
	assert.Equal(t, user, got)
}

func TestGetUserFromContext_Missing(t *testing.T) {
	_, ok := GetUserFromContext(t.Context())
	assert.False(t, ok)
}

func TestGetUserFromContext_WrongType(t *testing.T) {
	ctx := context.WithValue(t.Context(), UserCtxKey, "not a user")
	_, ok := GetUserFromContext(ctx)
	assert.False(t, ok)
}

func TestTokenGenerator_Generate(t *testing.T) {
	gen := NewTokenGenerator()

	first := gen.Generate()
	second := gen.Generate()

	require.NotEmpty(t, first)
	assert.NotEqual(t, first, second, "tokens must never repeat")

	_, err := uuid.Parse(first)
	assert.NoError(t, err)
}
