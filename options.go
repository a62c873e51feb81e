package kmerge

import (
	"go.uber.org/zap"

	"github.com/davidvella/kmerge/merge"
)

// options defines all configuration options for Merge.
type options struct {
	strategy merge.Strategy // Algorithm used for k-way merges
	validate bool           // Check preconditions before taking ownership
	logger   *zap.Logger
}

// Option is a function that configures Merge.
type Option func(*options)

// WithStrategy sets the k-way merge algorithm.
func WithStrategy(s merge.Strategy) Option {
	return func(o *options) {
		o.strategy = s
	}
}

// WithValidation makes Merge check every input with list.Validate before any
// node is relinked.
func WithValidation(enabled bool) Option {
	return func(o *options) {
		o.validate = enabled
	}
}

// WithLogger sets the logger used for debug output.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// defaultOptions returns the default configuration.
func defaultOptions() options {
	return options{
		strategy: merge.StrategyHeap,
		validate: false,
		logger:   zap.NewNop(),
	}
}
