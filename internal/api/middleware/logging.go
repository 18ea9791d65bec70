package middleware

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
}

// AccessLog логирует каждый запрос с уникальным request id
func AccessLog(log Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			requestID := uuid.New().String()

			w.Header().Set("X-Request-ID", requestID)
			next.ServeHTTP(w, r)

			log.Info("type: access, method: %s, url: %s, userAgent: %s, requestID: %s, latency: %s",
				r.Method,
				r.URL.Path,
				r.Header.Get("User-Agent"),
				requestID,
				time.Since(start),
			)
		})
	}
}
