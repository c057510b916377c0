// SPDX-License-Identifier: MIT

// Package matrix: functional configuration of the numeric policy.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal).
//
// Design goals:
//   - Deterministic behavior: no global state.
//   - No dead switches: each option changes behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
package matrix

import "github.com/katalvlaran/linalg/field"

// DefaultEpsilon is the near-zero tolerance used by pivot search and Rank.
// For integer element types any tolerance below 1 means exact comparison.
const DefaultEpsilon = field.DefaultEpsilon

const panicEpsilonInvalid = "matrix: WithEpsilon: eps must be finite, non-negative"

// Option mutates internal options. Safe to apply repeatedly.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept ...Option.
type Options struct {
	eps float64 // >= 0; DefaultEpsilon
}

// Epsilon returns the resolved near-zero tolerance.
func (o Options) Epsilon() float64 { return o.eps }

// WithEpsilon sets the tolerance below which |x| counts as zero when
// searching for pivots.
//
// Behavior highlights:
//   - Larger eps treats more small entries as zero and can lower the rank of
//     noisy input; eps=0 demands exact zeros.
//
// Errors:
//   - Panics with a stable message when eps is negative, NaN or ±Inf.
func WithEpsilon(eps float64) Option {
	if field.ValidateEpsilon(eps) != nil {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// NewOptions resolves opts over the defaults; exposed for inspection in tests and callers.
func NewOptions(opts ...Option) Options { return gatherOptions(opts...) }

// gatherOptions applies setters in order over the defaults (last writer wins).
func gatherOptions(user ...Option) Options {
	o := Options{eps: DefaultEpsilon}
	for _, set := range user {
		if set != nil {
			set(&o)
		}
	}

	return o
}
