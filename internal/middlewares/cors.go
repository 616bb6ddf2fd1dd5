package middlewares

import (
	"net/http"

	"github.com/go-chi/cors"
)

// Cors allows credentialed calls from the single frontend origin with any
// method and header.
func Cors(origin string) func(http.Handler) http.Handler {
	return cors.Handler(cors.Options{
		AllowedOrigins: []string{origin},
		// go-chi/cors has no wildcard for methods, so every standard method is listed.
		AllowedMethods: []string{
			http.MethodGet, http.MethodHead, http.MethodPost, http.MethodPut, http.MethodPatch,
			http.MethodDelete, http.MethodConnect, http.MethodOptions, http.MethodTrace,
		},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
		MaxAge:           600,
	})
}
