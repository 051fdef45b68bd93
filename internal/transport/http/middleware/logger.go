package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
)

// RequestLogger writes one access-log record per request through l, so access
// and application logs share the JSON format. A nil l uses slog.Default().
func RequestLogger(l *slog.Logger) func(http.Handler) http.Handler {
	return chimiddleware.RequestLogger(&slogFormatter{logger: l})
}

type slogFormatter struct {
	logger *slog.Logger
}

func (f *slogFormatter) NewLogEntry(r *http.Request) chimiddleware.LogEntry {
	l := f.logger
	if l == nil {
		l = slog.Default()
	}
	return &slogEntry{
		logger: l.With(
			"method", r.Method,
			"path", r.URL.Path,
			"request_id", chimiddleware.GetReqID(r.Context()),
			"remote_addr", r.RemoteAddr,
		),
	}
}

type slogEntry struct {
	logger *slog.Logger
}

func (e *slogEntry) Write(status, bytes int, _ http.Header, elapsed time.Duration, _ interface{}) {
	level := slog.LevelInfo
	if status >= http.StatusInternalServerError {
		level = slog.LevelError
	}
	e.logger.Log(context.Background(), level, "request completed",
		"status", status,
		"bytes", bytes,
		"duration_ms", float64(elapsed.Microseconds())/1000,
	)
}

func (e *slogEntry) Panic(v interface{}, stack []byte) {
	e.logger.Error("request panicked", "panic", v, "stack", string(stack))
}
