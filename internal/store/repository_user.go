package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/contacthub/contacthub/internal/logger"
	"github.com/contacthub/contacthub/models"
	"github.com/jackc/pgerrcode"
)

// userRepository is the PostgreSQL-backed implementation of [UserRepository].
// It handles account creation, lookup and credential/token mutation against
// the "users" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser persists a new account and returns the canonical database
// representation of the created row.
//
// Error handling:
//   - PostgreSQL unique_violation (23505) → [ErrUsernameTaken].
//   - Any other driver-level error → wrapped as unexpected DB error.
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := insertUserQuery(user.Username, user.Password, user.Name).ToSql()
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var created models.User
	row := r.db.QueryRowContext(ctx, query, args...)
	if err = row.Scan(&created.Username, &created.Password, &created.Name, &created.Token); err != nil {
		log.Err(err).Str("func", "userRepository.CreateUser").Str("username", user.Username).Msg("failed to insert user")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.User{}, ErrUsernameTaken
		default:
			return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	return created, nil
}

// CountByUsername reports the number of accounts holding the given username.
// Used by the registration pre-insert existence check.
func (r *userRepository) CountByUsername(ctx context.Context, username string) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := countUsersByUsernameQuery(username).ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var count int64
	if err = r.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		log.Err(err).Str("func", "userRepository.CountByUsername").Str("username", username).Msg("failed to count users")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return count, nil
}

// FindUserByUsername retrieves the account with the given username.
// An empty result set maps to [ErrUserNotFound].
func (r *userRepository) FindUserByUsername(ctx context.Context, username string) (models.User, error) {
	return r.findOne(ctx, "userRepository.FindUserByUsername", selectUserQuery(whereUsername(username)))
}

// FindUserByToken retrieves the account currently holding the given opaque
// session token. An empty result set maps to [ErrUserNotFound].
func (r *userRepository) FindUserByToken(ctx context.Context, token string) (models.User, error) {
	return r.findOne(ctx, "userRepository.FindUserByToken", selectUserQuery(whereToken(token)))
}

// UpdateUser applies a partial update: only non-nil name/password touch the
// row. Returns the refreshed account or [ErrUserNotFound].
func (r *userRepository) UpdateUser(ctx context.Context, username string, name, password *string) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := updateUserQuery(username, name, password).ToSql()
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var updated models.User
	row := r.db.QueryRowContext(ctx, query, args...)
	if err = row.Scan(&updated.Username, &updated.Password, &updated.Name, &updated.Token); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrUserNotFound
		}
		log.Err(err).Str("func", "userRepository.UpdateUser").Str("username", username).Msg("failed to update user")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return updated, nil
}

// UpdateToken stores a fresh session token on the account, overwriting any
// previous one. Returns the refreshed account or [ErrUserNotFound].
func (r *userRepository) UpdateToken(ctx context.Context, username, token string) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := updateTokenQuery(username, token).ToSql()
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var updated models.User
	row := r.db.QueryRowContext(ctx, query, args...)
	if err = row.Scan(&updated.Username, &updated.Password, &updated.Name, &updated.Token); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrUserNotFound
		}
		log.Err(err).Str("func", "userRepository.UpdateToken").Str("username", username).Msg("failed to store token")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return updated, nil
}

// ClearToken sets the account's session token to NULL, ending the session.
func (r *userRepository) ClearToken(ctx context.Context, username string) error {
	log := logger.FromContext(ctx)

	query, args, err := updateTokenQuery(username, nil).ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var cleared models.User
	row := r.db.QueryRowContext(ctx, query, args...)
	if err = row.Scan(&cleared.Username, &cleared.Password, &cleared.Name, &cleared.Token); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrUserNotFound
		}
		log.Err(err).Str("func", "userRepository.ClearToken").Str("username", username).Msg("failed to clear token")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}

func (r *userRepository) findOne(ctx context.Context, funcName string, builder interface {
	ToSql() (string, []any, error)
}) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := builder.ToSql()
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var found models.User
	row := r.db.QueryRowContext(ctx, query, args...)
	if err = row.Scan(&found.Username, &found.Password, &found.Name, &found.Token); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrUserNotFound
		}
		log.Err(err).Str("func", funcName).Msg("failed to query user")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return found, nil
}
