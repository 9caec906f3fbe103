// Package bbc defines configuration options and sentinel errors for the
// Boneh-Boneh-Caron population estimator.
package bbc

import (
	"errors"
	"math"
)

var (
	// ErrNoSingletons indicates that no entity was observed exactly once.
	// The bias correction hinges on the singleton count; without it the
	// estimator is undefined (this includes the empty sample set).
	ErrNoSingletons = errors.New("bbc: no entity was observed exactly once")

	// ErrNoConvergence indicates the fixed-point correction failed to settle
	// within Options.MaxIterations. Spectra whose biased estimate meets or
	// exceeds the singleton count drift upward forever; the cap surfaces
	// them instead of hanging.
	ErrNoConvergence = errors.New("bbc: correction did not converge within iteration limit")

	// ErrBadTolerance indicates Options.Tolerance is not a finite value > 0.
	ErrBadTolerance = errors.New("bbc: tolerance must be a finite value > 0")

	// ErrBadIterations indicates Options.MaxIterations is not > 0.
	ErrBadIterations = errors.New("bbc: max iterations must be > 0")
)

const (
	// DefaultTolerance is the convergence threshold used by DefaultOptions.
	DefaultTolerance = 1e-3

	// DefaultMaxIterations is the iteration cap used by DefaultOptions.
	// Convergent inputs settle in a handful of steps; the headroom exists
	// only to classify divergence decisively.
	DefaultMaxIterations = 10000
)

// Options configures Estimate.
//
// Fields:
//   - Tolerance     — the correction iterates until successive estimates
//     differ by at most this much. Must be finite and > 0.
//   - MaxIterations — hard cap on correction steps; exceeding it yields
//     ErrNoConvergence. Must be > 0.
//
// Use DefaultOptions() for standard settings.
type Options struct {
	Tolerance     float64
	MaxIterations int
}

// DefaultOptions returns Options with standard settings:
//
//	– Tolerance     = DefaultTolerance (1e-3)
//	– MaxIterations = DefaultMaxIterations (10000)
//
// Complexity: O(1) to construct.
func DefaultOptions() Options {
	return Options{
		Tolerance:     DefaultTolerance,
		MaxIterations: DefaultMaxIterations,
	}
}

// validate returns the first violated sentinel, or nil.
func (o Options) validate() error {
	if o.Tolerance <= 0 || math.IsNaN(o.Tolerance) || math.IsInf(o.Tolerance, 0) {
		return ErrBadTolerance
	}
	if o.MaxIterations <= 0 {
		return ErrBadIterations
	}

	return nil
}
