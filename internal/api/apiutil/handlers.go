// internal/api/apiutil/handlers.go
package apiutil

import (
	"fmt"
	"net/http"

	"github.com/rs/zerolog/log"
)

// HandlerFunc is a request handler that may fail. Returning an error is
// the only failure path; a handler never writes an error response itself.
type HandlerFunc func(w http.ResponseWriter, r *http.Request) error

// Handle adapts a fallible handler into an http.HandlerFunc. Every error,
// whatever its origin, is logged with the request-scoped logger and
// collapsed into a 500 response carrying the error text. Callers that
// need finer status codes should not route through this adapter.
func Handle(fn HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		err := fn(w, r)
		if err == nil {
			return
		}

		log.Ctx(r.Context()).Error().Err(err).Msg("Error occurred")
		// Not http.Error: the body contract has no trailing newline.
		_ = WriteText(w, http.StatusInternalServerError, fmt.Sprintf("Something went wrong: %s", err))
	}
}

// WriteText writes a plain-text response body.
func WriteText(w http.ResponseWriter, status int, body string) error {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(status)
	_, err := w.Write([]byte(body))
	return err
}
