package http

import (
	"encoding/json"
	"net/http"

	"github.com/contacthub/contacthub/internal/logger"
	"github.com/contacthub/contacthub/internal/utils"
	"github.com/contacthub/contacthub/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeError(w, r, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	registeredUser, err := h.services.UserService.Register(ctx, request)
	if err != nil {
		respondError(w, r, err)
		return
	}

	log.Debug().Str("username", registeredUser.Username).Msg("user successfully registered")

	writeData(w, r, registeredUser, http.StatusOK)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeError(w, r, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	loggedInUser, err := h.services.UserService.Login(ctx, request)
	if err != nil {
		respondError(w, r, err)
		return
	}

	log.Debug().Str("username", loggedInUser.Username).Msg("user successfully logged in")

	writeData(w, r, loggedInUser, http.StatusOK)
}

func (h *Handler) currentUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	user, ok := utils.GetUserFromContext(ctx)
	if !ok {
		log.Error().Msg("no authenticated user in request context")
		writeError(w, r, "Unauthorized", http.StatusUnauthorized)
		return
	}

	writeData(w, r, h.services.UserService.Current(ctx, user), http.StatusOK)
}

func (h *Handler) updateUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	user, ok := utils.GetUserFromContext(ctx)
	if !ok {
		log.Error().Msg("no authenticated user in request context")
		writeError(w, r, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var request models.UpdateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeError(w, r, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	updatedUser, err := h.services.UserService.Update(ctx, user, request)
	if err != nil {
		respondError(w, r, err)
		return
	}

	writeData(w, r, updatedUser, http.StatusOK)
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	user, ok := utils.GetUserFromContext(ctx)
	if !ok {
		log.Error().Msg("no authenticated user in request context")
		writeError(w, r, "Unauthorized", http.StatusUnauthorized)
		return
	}

	if err := h.services.UserService.Logout(ctx, user); err != nil {
		respondError(w, r, err)
		return
	}

	log.Debug().Str("username", user.Username).Msg("user logged out")

	writeData(w, r, "OK", http.StatusOK)
}
