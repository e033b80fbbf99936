package notetest

import (
	"time"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"
)

// requestLogger логирует входящие запросы и запоминает их для проверок в тестах
func (s *Server) requestLogger() func(huma.Context, func(huma.Context)) {
	log := s.log.With(slog.String("component", "http_logger"))

	return func(ctx huma.Context, next func(huma.Context)) {
		start := time.Now()

		method := ctx.Method()
		path := ctx.URL().Path
		contentType := ctx.Header("Content-Type")

		next(ctx)

		s.record(Request{
			Method:      method,
			Path:        path,
			ContentType: contentType,
			Status:      ctx.Status(),
		})

		log.Debug("HTTP request",
			slog.String("method", method),
			slog.String("path", path),
			slog.Int("status", ctx.Status()),
			slog.Duration("duration", time.Since(start)),
		)
	}
}
