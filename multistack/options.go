package multistack

import (
	"context"
	"log/slog"

	"cloudeng.io/logging/ctxlog"
)

type options struct {
	logger *slog.Logger
}

// Option configures a MultiStack.
type Option func(*options)

// WithLogger sets the logger used for per-operation debug messages. By
// default nothing is logged.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

func defaultOptions() options {
	// ctxlog hands out its discard logger for a context without one.
	return options{logger: ctxlog.Logger(context.Background())}
}
