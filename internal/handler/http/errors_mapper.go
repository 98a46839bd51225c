package http

import (
	"errors"
	"net/http"

	"github.com/contacthub/contacthub/internal/logger"
	"github.com/contacthub/contacthub/internal/service"
	"github.com/contacthub/contacthub/internal/store"
	"github.com/contacthub/contacthub/internal/validators"
)

var errorStatusMap = map[error]int{
	validators.ErrValidation:       http.StatusBadRequest,
	validators.ErrNoFieldsToUpdate: http.StatusBadRequest,
	validators.ErrUnsupportedType:  http.StatusBadRequest,

	service.ErrInvalidDataProvided: http.StatusBadRequest,
	service.ErrBadCredentials:      http.StatusUnauthorized,
	service.ErrUnauthorized:        http.StatusUnauthorized,

	store.ErrUsernameTaken:   http.StatusBadRequest,
	store.ErrUserNotFound:    http.StatusUnauthorized,
	store.ErrContactNotFound: http.StatusNotFound,

	store.ErrBuildingSQLQuery: http.StatusInternalServerError,
	store.ErrExecutingQuery:   http.StatusInternalServerError,
	store.ErrScanningRow:      http.StatusInternalServerError,
}

// mapError resolves an error to its HTTP status and client-facing message.
// Matched sentinels respond with their own message so internal wrapping does
// not leak; validation errors keep the per-field detail.
func mapError(err error) (int, string) {
	for target, status := range errorStatusMap {
		if !errors.Is(err, target) {
			continue
		}
		if errors.Is(err, validators.ErrValidation) {
			return status, err.Error()
		}
		return status, target.Error()
	}

	return http.StatusInternalServerError, err.Error()
}

// respondError is the single place that turns a service or storage error into
// an HTTP response. Handlers never write failure responses themselves.
func respondError(w http.ResponseWriter, r *http.Request, err error) {
	status, message := mapError(err)
	if status == http.StatusInternalServerError {
		logger.FromRequest(r).Err(err).Msg("request failed with an unexpected error")
	}

	writeError(w, r, message, status)
}
