package web

import (
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"

	"gigbook/internal/logger"
)

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// RequestLogger tags every request with a generated ID and records
// method, path, status and duration once it completes.
func RequestLogger(log *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requestID := uuid.New().String()
			start := time.Now()

			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
			w.Header().Set("X-Request-Id", requestID)

			next.ServeHTTP(rec, r)

			log.LogAPI(r.Method, r.URL.Path,
				fmt.Sprintf("%d [%s]", rec.status, requestID),
				time.Since(start).String())
		})
	}
}

// Recoverer converts a handler panic into the rendered 500 page after
// logging it server-side.
func Recoverer(renderer *Renderer, log *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					log.Error("HTTP", fmt.Sprintf("panic serving %s %s: %v", r.Method, r.URL.Path, rec))
					renderer.ServerError(w, r)
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}
