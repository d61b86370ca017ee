package runconfig

import "log/slog"

// Option configures a Config during construction.
type Option func(*options)

type options struct {
	logger *slog.Logger
}

// WithLogger routes debug records (facade builds, rejected calls) to
// logger. Nil keeps the default discard logger.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

var discardLogger = slog.New(slog.DiscardHandler)

func applyOptions(opts []Option) options {
	o := options{logger: discardLogger}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(&o)
	}
	return o
}
