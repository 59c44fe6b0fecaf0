package reconcile

import (
	"github.com/rs/zerolog"
)

// options holds the configuration for a reconciler.
type options struct {
	logger *zerolog.Logger
}

// defaultOptions returns the default reconciler configuration.
func defaultOptions() *options {
	return &options{}
}

// apply applies the given options to the configuration.
func (o *options) apply(opts ...Option) error {
	for _, opt := range opts {
		if err := opt(o); err != nil {
			return err
		}
	}
	return nil
}

// newOptions creates an options struct with the given options applied.
func newOptions(opts ...Option) (*options, error) {
	o := defaultOptions()
	if err := o.apply(opts...); err != nil {
		return nil, err
	}
	return o, nil
}

// Option configures a reconciler.
type Option func(*options) error

// WithLogger sets the logger used when no logger is carried on the
// context. Pass nil to fall back to the context logger.
func WithLogger(logger *zerolog.Logger) Option {
	return func(o *options) error {
		o.logger = logger
		return nil
	}
}
