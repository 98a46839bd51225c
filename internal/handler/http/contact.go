package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/contacthub/contacthub/internal/logger"
	"github.com/contacthub/contacthub/internal/store"
	"github.com/contacthub/contacthub/internal/utils"
	"github.com/contacthub/contacthub/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) createContact(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	user, ok := utils.GetUserFromContext(ctx)
	if !ok {
		log.Error().Msg("no authenticated user in request context")
		writeError(w, r, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var request models.CreateContactRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeError(w, r, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	createdContact, err := h.services.ContactService.Create(ctx, user, request)
	if err != nil {
		respondError(w, r, err)
		return
	}

	log.Debug().Int64("contactID", createdContact.ID).Str("username", user.Username).Msg("contact created")

	writeData(w, r, createdContact, http.StatusOK)
}

func (h *Handler) getContact(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	user, ok := utils.GetUserFromContext(ctx)
	if !ok {
		log.Error().Msg("no authenticated user in request context")
		writeError(w, r, "Unauthorized", http.StatusUnauthorized)
		return
	}

	contactID, err := contactIDFromURL(r)
	if err != nil {
		log.Err(err).Msg("contact id in url overflows int64")
		respondError(w, r, store.ErrContactNotFound)
		return
	}

	foundContact, err := h.services.ContactService.Get(ctx, user, contactID)
	if err != nil {
		respondError(w, r, err)
		return
	}

	writeData(w, r, foundContact, http.StatusOK)
}

func (h *Handler) updateContact(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	user, ok := utils.GetUserFromContext(ctx)
	if !ok {
		log.Error().Msg("no authenticated user in request context")
		writeError(w, r, "Unauthorized", http.StatusUnauthorized)
		return
	}

	contactID, err := contactIDFromURL(r)
	if err != nil {
		log.Err(err).Msg("contact id in url overflows int64")
		respondError(w, r, store.ErrContactNotFound)
		return
	}

	var request models.UpdateContactRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeError(w, r, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}
	// the id comes from the URL; any id in the body is ignored
	request.ID = contactID

	updatedContact, err := h.services.ContactService.Update(ctx, user, request)
	if err != nil {
		respondError(w, r, err)
		return
	}

	log.Debug().Int64("contactID", updatedContact.ID).Str("username", user.Username).Msg("contact updated")

	writeData(w, r, updatedContact, http.StatusOK)
}

// contactIDFromURL parses the {contactID} route parameter. The route pattern
// already restricts it to digits, so failures here are limited to overflow.
func contactIDFromURL(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "contactID"), 10, 64)
}
