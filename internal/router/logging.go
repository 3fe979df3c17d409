package router

import (
	"net/http"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/hlog"
)

// logRequests wraps h so that the request context carries logger and every
// completed request is logged.
func logRequests(h http.Handler, logger zerolog.Logger) http.Handler {
	access := hlog.AccessHandler(func(r *http.Request, status, size int, d time.Duration) {
		hlog.FromRequest(r).Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", status).
			Int("size", size).
			Dur("duration", d).
			Msg("Handled request")
	})

	return hlog.NewHandler(logger)(access(h))
}
