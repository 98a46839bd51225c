package service

import (
	"context"
	"fmt"

	"github.com/contacthub/contacthub/internal/logger"
	"github.com/contacthub/contacthub/internal/store"
	"github.com/contacthub/contacthub/internal/validators"
	"github.com/contacthub/contacthub/models"
)

// contactService is the concrete implementation of ContactService. Every
// operation is scoped to the authenticated owner; a contact belonging to a
// different user behaves exactly like a missing one.
type contactService struct {
	contactRepository store.ContactRepository
	validator         validators.Validator
	logger            *logger.Logger
}

func NewContactService(contactRepository store.ContactRepository, validator validators.Validator, logger *logger.Logger) ContactService {
	return &contactService{
		contactRepository: contactRepository,
		validator:         validator,
		logger:            logger,
	}
}

// Create stores a new contact owned by user. The owner is always the
// authenticated user; nothing in the request can reassign it.
func (s *contactService) Create(ctx context.Context, user models.User, request models.CreateContactRequest) (models.ContactResponse, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, request); err != nil {
		log.Err(err).Str("username", user.Username).Msg("contact create request failed validation")
		return models.ContactResponse{}, err
	}

	createdContact, err := s.contactRepository.CreateContact(ctx, models.Contact{
		Username:  user.Username,
		FirstName: request.FirstName,
		LastName:  request.LastName,
		Email:     request.Email,
		Phone:     request.Phone,
	})
	if err != nil {
		log.Err(err).Str("username", user.Username).Msg("contact creation ended with error")
		return models.ContactResponse{}, fmt.Errorf("contact creation ended with error: %w", err)
	}

	return models.ToContactResponse(createdContact), nil
}

// Get returns the contact with the given id if it is owned by user.
//
// Returns store.ErrContactNotFound both when the contact does not exist and
// when it belongs to another user.
func (s *contactService) Get(ctx context.Context, user models.User, contactID int64) (models.ContactResponse, error) {
	foundContact, err := s.getOwned(ctx, user, contactID)
	if err != nil {
		return models.ContactResponse{}, err
	}

	return models.ToContactResponse(foundContact), nil
}

// Update replaces every mutable field of an owned contact with the request
// values. Omitted optional fields are cleared, not preserved.
func (s *contactService) Update(ctx context.Context, user models.User, request models.UpdateContactRequest) (models.ContactResponse, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, request); err != nil {
		log.Err(err).Str("username", user.Username).Msg("contact update request failed validation")
		return models.ContactResponse{}, err
	}

	if _, err := s.getOwned(ctx, user, request.ID); err != nil {
		return models.ContactResponse{}, err
	}

	updatedContact, err := s.contactRepository.UpdateContact(ctx, models.Contact{
		ID:        request.ID,
		Username:  user.Username,
		FirstName: request.FirstName,
		LastName:  request.LastName,
		Email:     request.Email,
		Phone:     request.Phone,
	})
	if err != nil {
		log.Err(err).Str("username", user.Username).Int64("contactID", request.ID).Msg("contact update ended with error")
		return models.ContactResponse{}, fmt.Errorf("contact update ended with error: %w", err)
	}

	return models.ToContactResponse(updatedContact), nil
}

// getOwned is the single ownership chokepoint. The repository filters by both
// id and owner, so a foreign contact is indistinguishable from a missing one.
func (s *contactService) getOwned(ctx context.Context, user models.User, contactID int64) (models.Contact, error) {
	log := logger.FromContext(ctx)

	foundContact, err := s.contactRepository.FindContactByID(ctx, user.Username, contactID)
	if err != nil {
		log.Err(err).Str("username", user.Username).Int64("contactID", contactID).Msg("contact lookup failed")
		return models.Contact{}, fmt.Errorf("contact lookup failed: %w", err)
	}

	return foundContact, nil
}
