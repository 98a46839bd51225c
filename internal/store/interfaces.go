package store

import (
	"context"

	"github.com/contacthub/contacthub/models"
)

// UserRepository is the data-access contract for user accounts.
//
//go:generate mockgen -source=interfaces.go -destination=mocks/mock_store.go -package=mocks
type UserRepository interface {
	// CreateUser persists a new account and returns the canonical row.
	// Returns ErrUsernameTaken on a unique-constraint violation.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// CountByUsername reports how many accounts hold the given username
	// (0 or 1 under the uniqueness constraint).
	CountByUsername(ctx context.Context, username string) (int64, error)

	// FindUserByUsername returns the account with the given username or
	// ErrUserNotFound.
	FindUserByUsername(ctx context.Context, username string) (models.User, error)

	// FindUserByToken returns the account currently holding the given opaque
	// session token, or ErrUserNotFound. This is the auth-middleware lookup.
	FindUserByToken(ctx context.Context, token string) (models.User, error)

	// UpdateUser applies a partial update (nil fields untouched) and returns
	// the refreshed row, or ErrUserNotFound.
	UpdateUser(ctx context.Context, username string, name, password *string) (models.User, error)

	// UpdateToken stores a fresh session token on the account and returns
	// the refreshed row, or ErrUserNotFound.
	UpdateToken(ctx context.Context, username, token string) (models.User, error)

	// ClearToken sets the account's session token to NULL.
	ClearToken(ctx context.Context, username string) error
}

// ContactRepository is the data-access contract for per-user contact records.
// Every read and write is filtered by the owning username; that filter is the
// whole of the authorization model.
type ContactRepository interface {
	// CreateContact persists a new record and returns it with the
	// server-assigned ID.
	CreateContact(ctx context.Context, contact models.Contact) (models.Contact, error)

	// FindContactByID returns the record matching both id and owning
	// username, or ErrContactNotFound.
	FindContactByID(ctx context.Context, username string, contactID int64) (models.Contact, error)

	// UpdateContact replaces all mutable fields of the record matching
	// contact.ID and contact.Username, returning the refreshed row or
	// ErrContactNotFound.
	UpdateContact(ctx context.Context, contact models.Contact) (models.Contact, error)
}
