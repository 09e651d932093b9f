package logging

import (
	"context"
	"regexp"

	"github.com/google/uuid"
)

type Module string

const (
	ModuleAPI          Module = "api"
	ModuleStore        Module = "store"
	ModuleNotification Module = "notification"
	ModuleCountdown    Module = "countdown"
)

type ctxKey int

const (
	requestIDKey ctxKey = iota
	moduleKey
)

var requestIDPattern = regexp.MustCompile(`^[A-Za-z0-9._-]{1,128}$`)

// ValidateAndExtractRequestID returns the incoming id when it is safe to log,
// or a fresh UUIDv7 otherwise.
func ValidateAndExtractRequestID(raw string) string {
	if raw != "" && requestIDPattern.MatchString(raw) {
		return raw
	}

	return uuid.Must(uuid.NewV7()).String()
}

func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

func RequestIDFromContext(ctx context.Context) string {
	v, _ := ctx.Value(requestIDKey).(string)

	return v
}

func WithModule(ctx context.Context, module Module) context.Context {
	return context.WithValue(ctx, moduleKey, module)
}

func ModuleFromContext(ctx context.Context) Module {
	v, _ := ctx.Value(moduleKey).(Module)

	return v
}
