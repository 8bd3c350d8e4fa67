package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging, h.withMetrics)
	router.Use(middleware.Compress(5, "application/json"))

	router.Route("/api", func(r chi.Router) {
		// slot lifecycle
		r.Put("/Unassign", h.unassign)
		r.Put("/Assign", h.assign)

		// boxes
		r.Post("/NewBox", h.newBox)
		r.Get("/Box", h.findBox)
		r.Get("/Box/{id}", h.getBox)

		// accounts
		r.Post("/NewAdmin", h.newAdmin)
		r.Post("/NewUser", h.newUser)
		r.Put("/ChangeAdminPassword", h.changeAdminPassword)
		r.Put("/ChangePassword", h.changePassword)
		r.Post("/Login", h.login)

		r.Get("/version", h.getServerVersion)
	})

	if h.metrics != nil {
		router.Handle("/metrics", h.metrics.Handler())
	}

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
