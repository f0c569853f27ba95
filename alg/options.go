// SPDX-License-Identifier: MIT
// Package alg: functional options for the tolerance-driven entry points.

package alg

import "math"

// DefaultEpsilon is the tolerance Close uses when no WithEpsilon is given.
const DefaultEpsilon = 1e-9

const panicEpsilonInvalid = "alg: WithEpsilon: eps must be finite, non-negative"

// Option mutates Options. Applying the same Option twice is harmless.
type Option func(*Options)

// Options holds the resolved configuration.
type Options struct {
	eps float64
}

// Epsilon returns the configured tolerance.
func (o Options) Epsilon() float64 { return o.eps }

// WithEpsilon sets the tolerance for approximate equality.
// Panics when eps is negative, NaN or Inf: that is a programmer error,
// not a runtime condition.
func WithEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// NewOptions resolves opts on top of the defaults (last writer wins).
func NewOptions(opts ...Option) Options {
	o := Options{eps: DefaultEpsilon}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
