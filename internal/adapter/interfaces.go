// Package adapter provides a typed client for the contacthub REST API.
//
// The primary abstraction is [APIClient], which decouples consumers from the
// HTTP transport. The package ships an HTTP implementation built on resty
// ([NewHTTPAPIClient]).
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrNotFound] for 404, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/contacthub/contacthub/models"
)

// APIClient defines transport-agnostic communication with the contacthub
// server. Implementations are responsible for serialisation, token header
// management, and mapping transport-level errors to the sentinel values
// defined in this package.
type APIClient interface {
	// SetToken stores the opaque session token that will be attached to all
	// subsequent authenticated requests. It is called automatically after a
	// successful Login.
	SetToken(token string)

	// Token returns the session token currently stored in the client, or an
	// empty string if no token has been set yet.
	Token() string

	// Register creates a new account. No token is issued; call Login next.
	Register(ctx context.Context, request models.RegisterRequest) (models.UserResponse, error)

	// Login authenticates and stores the issued session token via SetToken.
	Login(ctx context.Context, request models.LoginRequest) (models.UserResponse, error)

	// CurrentUser fetches the profile of the authenticated user.
	CurrentUser(ctx context.Context) (models.UserResponse, error)

	// UpdateUser applies a partial profile update to the authenticated user.
	UpdateUser(ctx context.Context, request models.UpdateUserRequest) (models.UserResponse, error)

	// Logout invalidates the session on the server and clears the stored token.
	Logout(ctx context.Context) error

	// CreateContact stores a new contact owned by the authenticated user.
	CreateContact(ctx context.Context, request models.CreateContactRequest) (models.ContactResponse, error)

	// GetContact fetches an owned contact by id. Returns [ErrNotFound]
	// (wrapped) when the contact does not exist or is owned by someone else.
	GetContact(ctx context.Context, contactID int64) (models.ContactResponse, error)

	// UpdateContact replaces every mutable field of an owned contact.
	UpdateContact(ctx context.Context, request models.UpdateContactRequest) (models.ContactResponse, error)
}
