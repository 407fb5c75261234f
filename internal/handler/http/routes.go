package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)

	// token verification happens in the pipeline, not here
	router.Post("/login", h.login)
	router.Get("/index", h.index)

	return router
}
