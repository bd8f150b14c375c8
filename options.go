package pulse

import "github.com/rs/zerolog"

// Option configures a Sink, Variable or Constant at construction.
type Option func(*options)

type options struct {
	logger *zerolog.Logger
}

func defaultOptions() *options {
	nop := zerolog.Nop()
	return &options{logger: &nop}
}

func (o *options) apply(opts ...Option) {
	for _, opt := range opts {
		opt(o)
	}
}

// WithLogger attaches a diagnostics logger; subscribe, send and cancel
// events are traced on it. The default is a no-op logger.
func WithLogger(l *zerolog.Logger) Option {
	return func(o *options) { o.logger = l }
}
