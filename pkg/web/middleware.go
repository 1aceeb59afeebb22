package web

import (
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/Sanddmann/PLNU-MBA-Performance-Dashboard/pkg/metrics"
)

// AccessLog tags each request with an ID, logs it, and records Prometheus
// request metrics.
func AccessLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		id := uuid.NewString()

		wrapped := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(wrapped, r)

		elapsed := time.Since(start)
		log.Printf("🌐 %s %s → %d (%v) [%s]", r.Method, r.URL.Path, wrapped.statusCode,
			elapsed.Round(time.Millisecond), id)
		metrics.RecordHTTPRequest(r.URL.Path, r.Method, strconv.Itoa(wrapped.statusCode),
			elapsed.Seconds())
	})
}

// CORS allows the page and its endpoints to be fetched cross-origin, which
// keeps local file:// experiments working.
func CORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// responseWriter captures the status code for logging and metrics.
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}
