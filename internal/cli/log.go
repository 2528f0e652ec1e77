package cli

import (
	"context"

	"go.uber.org/zap"

	"github.com/piwi3910/cratepack/internal/logging"
)

// ctxKey is the type for context keys used in this package. A distinct
// type prevents collisions with keys set by other packages.
type ctxKey int

const loggerKey ctxKey = 0

// withLogger returns a new context with l attached.
func withLogger(ctx context.Context, l *zap.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext retrieves the logger attached to ctx, falling back to
// a no-op logger if none was set.
func loggerFromContext(ctx context.Context) *zap.Logger {
	if l, ok := ctx.Value(loggerKey).(*zap.Logger); ok {
		return l
	}
	return logging.Noop()
}
