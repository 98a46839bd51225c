package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/contacthub/contacthub/internal/logger"
	"github.com/contacthub/contacthub/internal/service"
	"github.com/contacthub/contacthub/internal/utils"
)

const tokenHeader = "X-API-TOKEN"

// auth is an HTTP middleware that enforces token-based authentication.
//
// It reads the opaque session token from the "X-API-TOKEN" header, resolves
// the owning account via [service.UserService.Authenticate], and on success
// stores the resolved user in the request context under [utils.UserCtxKey]
// before delegating to the next handler.
//
// The middleware rejects the request with HTTP 401 Unauthorized when the
// header is absent or the token matches no stored account. Either way the
// downstream handler is never invoked. A storage failure during the lookup
// responds with HTTP 500 instead, so an outage is not mistaken for a revoked
// session.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)
		ctx := r.Context()

		token := r.Header.Get(tokenHeader)

		user, err := h.services.UserService.Authenticate(ctx, token)
		if err != nil {
			if errors.Is(err, service.ErrUnauthorized) {
				log.Error().Str("uri", r.RequestURI).Msg("request rejected: missing or unknown token")
				writeError(w, r, "Unauthorized", http.StatusUnauthorized)
				return
			}
			log.Err(err).Msg("token lookup failed")
			respondError(w, r, err)
			return
		}

		// Store the resolved user in the context so that downstream handlers
		// can retrieve it without another lookup.
		ctx = context.WithValue(ctx, utils.UserCtxKey, user)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
