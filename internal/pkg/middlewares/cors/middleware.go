package cors

import (
	"net/http"

	"github.com/rs/cors"
)

var allowedHeaders = []string{"authorization", "x-client-info", "apikey", "content-type"}

// Middleware answers preflight requests with an empty 200. No origins means any origin.
func Middleware(allowedOrigins []string) func(http.Handler) http.Handler {
	if len(allowedOrigins) == 0 {
		allowedOrigins = []string{"*"}
	}

	c := cors.New(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodHead,
			http.MethodOptions,
		},
		AllowedHeaders:       allowedHeaders,
		OptionsSuccessStatus: http.StatusOK,
	})

	return c.Handler
}

// Options answers non-preflight OPTIONS requests, which the cors handler passes through.
func Options(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
}
