package middleware

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/pulkitchauhan42/TGP/pkg/logger"
)

// Logging emits one structured line per request once the response is written.
func Logging(next http.Handler) http.Handler {
	return middleware.RequestLogger(&StructuredLogger{})(next)
}

type StructuredLogger struct{}

func (l *StructuredLogger) NewLogEntry(r *http.Request) middleware.LogEntry {
	return &StructuredLogEntry{request: r}
}

type StructuredLogEntry struct {
	request *http.Request
}

func (l *StructuredLogEntry) Write(status, bytes int, header http.Header, elapsed time.Duration, extra interface{}) {
	args := []any{
		"method", l.request.Method,
		"path", l.request.URL.Path,
		"status", status,
		"bytes", bytes,
		"elapsed_ms", elapsed.Milliseconds(),
		"remote_addr", l.request.RemoteAddr,
	}
	if ua := l.request.UserAgent(); ua != "" {
		args = append(args, "user_agent", ua)
	}

	switch {
	case status >= http.StatusInternalServerError:
		logger.ErrorContext(l.request.Context(), "request failed", args...)
	case status >= http.StatusBadRequest:
		logger.WarnContext(l.request.Context(), "request rejected", args...)
	default:
		logger.InfoContext(l.request.Context(), "request completed", args...)
	}
}

func (l *StructuredLogEntry) Panic(v interface{}, stack []byte) {
	logger.ErrorContext(l.request.Context(), "request panic",
		"panic", v,
		"stack", string(stack),
		"method", l.request.Method,
		"path", l.request.URL.Path,
	)
}
