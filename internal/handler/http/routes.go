package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(withGZip)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Get("/", h.health)
		r.Post("/register", h.register)
		r.Post("/login", h.login)
	})

	// routes behind a valid session token
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/logout", h.logout)

		r.Post("/student/details", h.saveDetails)
		r.Get("/student/details", h.getDetails)

		r.Get("/scholarship/eligibility", h.eligibility)
		r.Get("/scholarship/recommendations", h.recommendations)
		r.Get("/student/performance", h.performance)
		r.Get("/student/report", h.report)
	})

	return router
}
