package verify

import (
	"github.com/rs/zerolog"
)

// ProgressFunc is called after each set is checked. Rendering cadence is
// the caller's business; the verifier calls it once per set.
type ProgressFunc func(done, total int)

// options holds the configuration for a verifier.
type options struct {
	strict   bool
	progress ProgressFunc
	logger   *zerolog.Logger
}

// defaultOptions returns the default verifier configuration.
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

// Option configures a verifier.
type Option func(*options) error

// WithStrict makes members on disk that the checklist does not expect
// count as discrepancies.
func WithStrict(strict bool) Option {
	return func(o *options) error {
		o.strict = strict
		return nil
	}
}

// WithProgress sets a callback invoked once per checked set.
func WithProgress(fn ProgressFunc) Option {
	return func(o *options) error {
		o.progress = fn
		return nil
	}
}

// WithLogger sets the logger used when no logger is carried on the
// context. Pass nil to fall back to the context logger.
func WithLogger(logger *zerolog.Logger) Option {
	return func(o *options) error {
		o.logger = logger
		return nil
	}
}
