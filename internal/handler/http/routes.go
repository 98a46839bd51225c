package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(middleware.Recoverer)

	router.Route("/api", func(api chi.Router) {
		// routes without authorization
		api.Group(func(r chi.Router) {
			r.Post("/users", h.register)
			r.Post("/users/login", h.login)
		})

		api.Group(func(r chi.Router) {
			r.Use(h.auth)

			r.Get("/users/current", h.currentUser)
			r.Patch("/users/current", h.updateUser)
			r.Delete("/users/current", h.logout)

			r.Post("/contacts", h.createContact)
			// the numeric pattern keeps non-numeric ids out of the handlers
			r.Get("/contacts/{contactID:[0-9]+}", h.getContact)
			r.Put("/contacts/{contactID:[0-9]+}", h.updateContact)
		})
	})

	return router
}
