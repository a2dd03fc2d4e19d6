package handler

import (
	"context"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/suar-net/suar-time/internal/service"
)

// RequestIDHeader is read from incoming requests and echoed on responses.
const RequestIDHeader = "X-Request-ID"

const (
	maxRequestIDLength   = 128
	slowRequestThreshold = 100 * time.Millisecond
)

type ctxKeyRequestID struct{}

// RequestID returns the id assigned to the request, or "".
func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(ctxKeyRequestID{}).(string)
	return id
}

// RequestIDMiddleware keeps a caller supplied X-Request-ID and generates a
// UUID otherwise.
func RequestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(RequestIDHeader)
		if id == "" || len(id) > maxRequestIDLength {
			id = uuid.NewString()
		}

		w.Header().Set(RequestIDHeader, id)
		ctx := context.WithValue(r.Context(), ctxKeyRequestID{}, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

type responseRecorder struct {
	http.ResponseWriter
	statusCode int
	size       int
}

func (r *responseRecorder) WriteHeader(statusCode int) {
	r.statusCode = statusCode
	r.ResponseWriter.WriteHeader(statusCode)
}

func (r *responseRecorder) Write(b []byte) (int, error) {
	if r.statusCode == 0 {
		r.statusCode = http.StatusOK
	}
	size, err := r.ResponseWriter.Write(b)
	r.size += size
	return size, err
}

// LoggingMiddleware stores a request scoped logger in the context and logs
// one line per completed request.
func LoggingMiddleware(log zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			recorder := &responseRecorder{ResponseWriter: w}

			reqLog := log.With().Str("request_id", RequestID(r.Context())).Logger()
			r = r.WithContext(reqLog.WithContext(r.Context()))

			reqLog.Debug().
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Str("ip", r.RemoteAddr).
				Msg("request started")

			next.ServeHTTP(recorder, r)

			duration := time.Since(start)

			var msg string
			switch {
			case recorder.statusCode >= 500:
				msg = "server error"
			case recorder.statusCode >= 400:
				msg = "client error"
			default:
				msg = "request completed"
			}

			entry := reqLog.Info().
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Int("status", recorder.statusCode).
				Dur("duration_ms", duration).
				Int("bytes", recorder.size).
				Str("ip", r.RemoteAddr)

			if duration > slowRequestThreshold {
				entry = entry.Bool("slow", true)
			}

			entry.Msg(msg)
		})
	}
}

// RecovererMiddleware turns a panic into the fixed internal error response.
func RecovererMiddleware(messages service.MessageCatalog) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler {
					panic(rec)
				}

				zerolog.Ctx(r.Context()).Error().
					Interface("panic", rec).
					Bytes("stack", debug.Stack()).
					Msg("handler panicked")

				respondInternal(w, r, messages)
			}()

			next.ServeHTTP(w, r)
		})
	}
}
