package test

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"eikaiwa/transport/http/response"
)

type Handler struct{}

func New() Handler {
	return Handler{}
}

func (h *Handler) Router(r chi.Router) {
	r.Route("/test", func(r chi.Router) {
		r.Get("/", h.Test)
	})
}

func (h *Handler) Test(w http.ResponseWriter, r *http.Request) {
	response.WithMessage(w, http.StatusOK, "test")
}
