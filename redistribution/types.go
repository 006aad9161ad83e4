// Package redistribution defines configuration options and sentinel errors
// for rebalancing warehouse stock around a target level.
package redistribution

import (
	"errors"

	"github.com/sirupsen/logrus"
)

// DefaultTargetLevel is the stock level every warehouse is pulled towards.
const DefaultTargetLevel = 50

// ErrBadTargetLevel indicates a negative target level.
var ErrBadTargetLevel = errors.New("redistribution: target level must be non-negative")

// Options configures Redistribute.
type Options struct {
	// TargetLevel splits warehouses into surplus (above) and need (below).
	TargetLevel int

	// Logger receives one debug event per transfer.
	Logger logrus.FieldLogger
}

// Option configures Options.
type Option func(*Options)

// WithTargetLevel overrides DefaultTargetLevel.
func WithTargetLevel(level int) Option {
	return func(o *Options) { o.TargetLevel = level }
}

// WithLogger routes transfer events to l.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// DefaultOptions returns TargetLevel = 50 and the logrus standard logger.
func DefaultOptions() Options {
	return Options{TargetLevel: DefaultTargetLevel, Logger: logrus.StandardLogger()}
}
