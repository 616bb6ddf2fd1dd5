package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/saulo-duarte/genai-learning-games/docs"
	"github.com/saulo-duarte/genai-learning-games/internal/aigame"
	"github.com/saulo-duarte/genai-learning-games/internal/config"
	"github.com/saulo-duarte/genai-learning-games/internal/middlewares"
)

type RouterConfig struct {
	AIGameHandler  *aigame.Handler
	FrontendOrigin string
}

func New(cfg RouterConfig) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middlewares.Cors(cfg.FrontendOrigin))

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		config.Detail(w, http.StatusNotFound, "Not Found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		config.Detail(w, http.StatusMethodNotAllowed, "Method Not Allowed")
	})

	r.Get("/swagger/*", httpSwagger.WrapHandler)

	r.Mount("/", aigame.Routes(cfg.AIGameHandler))
	return r
}
