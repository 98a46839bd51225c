package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/contacthub/contacthub/internal/logger"
	"github.com/contacthub/contacthub/models"
)

// contactRepository is the PostgreSQL-backed implementation of
// [ContactRepository]. Every query it issues is filtered by the owning
// username, so a record belonging to another user is indistinguishable from
// a missing one.
type contactRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewContactRepository constructs a [ContactRepository] backed by the
// provided database connection and logger.
func NewContactRepository(db *DB, logger *logger.Logger) ContactRepository {
	logger.Debug().Msg("creating contact repository")
	return &contactRepository{
		db:     db,
		logger: logger,
	}
}

// CreateContact inserts a new record and returns it with the server-assigned
// ID from the RETURNING clause.
func (r *contactRepository) CreateContact(ctx context.Context, contact models.Contact) (models.Contact, error) {
	log := logger.FromContext(ctx)

	query, args, err := insertContactQuery(
		contact.Username,
		contact.FirstName,
		contact.LastName,
		contact.Email,
		contact.Phone,
	).ToSql()
	if err != nil {
		return models.Contact{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var created models.Contact
	row := r.db.QueryRowContext(ctx, query, args...)
	if err = row.Scan(&created.ID, &created.Username, &created.FirstName, &created.LastName, &created.Email, &created.Phone); err != nil {
		log.Err(err).
			Str("func", "contactRepository.CreateContact").
			Str("username", contact.Username).
			Msg("failed to insert contact")
		return models.Contact{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return created, nil
}

// FindContactByID retrieves the record matching both contactID and the
// owning username. No match maps to [ErrContactNotFound] regardless of
// whether the row exists under a different owner.
func (r *contactRepository) FindContactByID(ctx context.Context, username string, contactID int64) (models.Contact, error) {
	log := logger.FromContext(ctx)

	query, args, err := selectContactQuery(username, contactID).ToSql()
	if err != nil {
		return models.Contact{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var found models.Contact
	row := r.db.QueryRowContext(ctx, query, args...)
	if err = row.Scan(&found.ID, &found.Username, &found.FirstName, &found.LastName, &found.Email, &found.Phone); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Contact{}, ErrContactNotFound
		}
		log.Err(err).
			Str("func", "contactRepository.FindContactByID").
			Str("username", username).
			Int64("contact_id", contactID).
			Msg("failed to query contact")
		return models.Contact{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return found, nil
}

// UpdateContact replaces all mutable fields of the record matching
// contact.ID and contact.Username. The ownership filter sits in the WHERE
// clause, so updating someone else's record degrades to [ErrContactNotFound].
func (r *contactRepository) UpdateContact(ctx context.Context, contact models.Contact) (models.Contact, error) {
	log := logger.FromContext(ctx)

	query, args, err := updateContactQuery(
		contact.Username,
		contact.ID,
		contact.FirstName,
		contact.LastName,
		contact.Email,
		contact.Phone,
	).ToSql()
	if err != nil {
		return models.Contact{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var updated models.Contact
	row := r.db.QueryRowContext(ctx, query, args...)
	if err = row.Scan(&updated.ID, &updated.Username, &updated.FirstName, &updated.LastName, &updated.Email, &updated.Phone); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Contact{}, ErrContactNotFound
		}
		log.Err(err).
			Str("func", "contactRepository.UpdateContact").
			Str("username", contact.Username).
			Int64("contact_id", contact.ID).
			Msg("failed to update contact")
		return models.Contact{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return updated, nil
}
