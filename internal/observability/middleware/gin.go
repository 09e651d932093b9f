package middleware

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/KasumiMercury/primind-pill-timer/internal/observability/logging"
	"github.com/KasumiMercury/primind-pill-timer/internal/observability/metrics"
	"github.com/KasumiMercury/primind-pill-timer/internal/observability/tracing"
)

type GinConfig struct {
	// SkipPaths are exact paths that bypass logging, tracing and metrics.
	SkipPaths  []string
	Module     logging.Module
	TracerName string
	// HTTPMetrics is optional.
	HTTPMetrics *metrics.HTTPMetrics
}

func Gin(cfg GinConfig) gin.HandlerFunc {
	skipSet := make(map[string]struct{}, len(cfg.SkipPaths))
	for _, p := range cfg.SkipPaths {
		skipSet[p] = struct{}{}
	}

	return func(c *gin.Context) {
		if _, skip := skipSet[c.Request.URL.Path]; skip {
			c.Next()

			return
		}

		start := time.Now()

		requestID := logging.ValidateAndExtractRequestID(c.Request.Header.Get("x-request-id"))
		ctx := logging.WithRequestID(c.Request.Context(), requestID)

		if cfg.Module != "" {
			ctx = logging.WithModule(ctx, cfg.Module)
		}

		ctx = tracing.ExtractFromHTTPRequest(ctx, c.Request)

		route := c.FullPath()
		if route == "" {
			route = c.Request.URL.Path
		}

		ctx, span := otel.Tracer(cfg.TracerName).Start(ctx, fmt.Sprintf("%s %s", c.Request.Method, route))
		defer span.End()

		c.Request = c.Request.WithContext(ctx)
		c.Header("x-request-id", requestID)

		// Streams stay open for the whole subscription; log when they start.
		streaming := strings.HasSuffix(route, "/stream")
		if streaming {
			slog.InfoContext(ctx, "stream opened",
				slog.String("event", "http.stream.open"),
				slog.String("path", c.Request.URL.Path),
				slog.String("remote_addr", c.ClientIP()),
			)
		}

		c.Next()

		elapsed := time.Since(start)
		status := c.Writer.Status()

		span.SetAttributes(attribute.Int("http.response.status_code", status))
		if status >= 500 {
			span.SetStatus(codes.Error, fmt.Sprintf("status %d", status))
		}

		if cfg.HTTPMetrics != nil {
			cfg.HTTPMetrics.Record(ctx, c.Request.Method, route, status, elapsed)
		}

		event := "http.request.finish"
		if streaming {
			event = "http.stream.close"
		}

		slog.LogAttrs(ctx, slog.LevelInfo, "request completed",
			slog.String("event", event),
			slog.String("method", c.Request.Method),
			slog.String("path", c.Request.URL.Path),
			slog.String("remote_addr", c.ClientIP()),
			slog.Int("status", status),
			slog.Duration("duration", elapsed),
		)
	}
}
