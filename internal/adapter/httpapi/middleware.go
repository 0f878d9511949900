package httpapi

import (
	"context"
	"mime"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type ctxKey int

const (
	ctxKeyRequestID ctxKey = iota
	ctxKeyLogger
)

func RequestIDFromContext(ctx context.Context) string {
	v, _ := ctx.Value(ctxKeyRequestID).(string)
	return v
}

// LoggerFromContext returns the request-scoped logger, or the standard logger
// outside a request.
func LoggerFromContext(ctx context.Context) logrus.FieldLogger {
	if l, ok := ctx.Value(ctxKeyLogger).(logrus.FieldLogger); ok {
		return l
	}
	return logrus.StandardLogger()
}

// requestLogger is like LoggerFromContext but falls back to def.
func requestLogger(ctx context.Context, def logrus.FieldLogger) logrus.FieldLogger {
	if l, ok := ctx.Value(ctxKeyLogger).(logrus.FieldLogger); ok {
		return l
	}
	return def
}

type statusRecorder struct {
	h  http.ResponseWriter
	st int
	n  int
}

func (w *statusRecorder) Header() http.Header { return w.h.Header() }
func (w *statusRecorder) WriteHeader(code int) {
	w.st = code
	w.h.WriteHeader(code)
}
func (w *statusRecorder) Write(b []byte) (int, error) {
	n, err := w.h.Write(b)
	w.n += n
	return n, err
}

func withRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reqID := r.Header.Get("X-Request-Id")
		if reqID == "" {
			reqID = uuid.NewString()
		}
		w.Header().Set("X-Request-Id", reqID)
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), ctxKeyRequestID, reqID)))
	})
}

func withLogging(base logrus.FieldLogger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			log := base.WithFields(logrus.Fields{
				"request_id": RequestIDFromContext(r.Context()),
				"method":     r.Method,
				"path":       r.URL.Path,
			})
			sr := &statusRecorder{h: w, st: http.StatusOK}
			next.ServeHTTP(sr, r.WithContext(context.WithValue(r.Context(), ctxKeyLogger, log)))
			log.WithFields(logrus.Fields{
				"status":     sr.st,
				"bytes":      sr.n,
				"latency_ms": float64(time.Since(start).Microseconds()) / 1000.0,
			}).Info("http_request")
		})
	}
}

// requireJSON rejects bodies that are not application/json with 415.
func requireJSON(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		mt, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
		if err != nil || mt != "application/json" {
			writeJSONError(w, http.StatusUnsupportedMediaType, "unsupported content type", "expected application/json")
			return
		}
		next(w, r)
	}
}
