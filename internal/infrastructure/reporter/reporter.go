package reporter

import (
	"go.uber.org/zap"
)

// Adapter forwards an error and its context to an external error tracker.
// Implementations must not panic; failures to deliver are swallowed by the
// Reporter after being logged.
type Adapter interface {
	Notify(err error, context map[string]any) error
}

// Reporter reports unexpected errors to the configured adapter while always
// logging them locally. The zero adapter case degrades to log-only, so a
// Reporter handle is always safe to call.
type Reporter struct {
	logger  *zap.Logger
	adapter Adapter
}

// Option configures a Reporter
type Option func(*Reporter)

// WithAdapter installs an external tracker adapter
func WithAdapter(adapter Adapter) Option {
	return func(r *Reporter) {
		r.adapter = adapter
	}
}

// New creates a new Reporter
func New(logger *zap.Logger, opts ...Option) *Reporter {
	r := &Reporter{
		logger: logger.Named("reporter"),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Notify logs the error and forwards it to the adapter if one is configured.
// Delivery failures are logged and never propagated to the caller.
func (r *Reporter) Notify(err error, context map[string]any) {
	if err == nil {
		return
	}

	fields := make([]zap.Field, 0, len(context)+1)
	fields = append(fields, zap.Error(err))
	for key, value := range context {
		fields = append(fields, zap.Any(key, value))
	}
	r.logger.Error("unexpected error", fields...)

	if r.adapter == nil {
		return
	}
	if deliverErr := r.adapter.Notify(err, context); deliverErr != nil {
		r.logger.Warn("error report delivery failed", zap.Error(deliverErr))
	}
}
