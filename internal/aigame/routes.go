package aigame

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Get("/", h.Welcome)
	r.Get("/generate_question", h.GenerateQuestion)
	r.Post("/evaluate_answer", h.EvaluateAnswer)
	return r
}
