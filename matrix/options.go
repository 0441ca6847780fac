// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for SparseMatrix instances.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that resolves defaults.
//
// Design goals:
//   - Deterministic behavior: no global state.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Options travel with an instance; results of Add/Sub/Mul inherit the
//     receiver's options.
package matrix

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultBoundsCheck keeps Set permissive: out-of-range writes are stored as-is.
	DefaultBoundsCheck = false

	// DefaultMulStrategy is the dense column scan over the right operand.
	DefaultMulStrategy = MulScan
)

const panicMulStrategyInvalid = "matrix: WithMulStrategy: unknown strategy"

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept ...Option.
type Options struct {
	boundsCheck bool        // DefaultBoundsCheck
	mulStrategy MulStrategy // DefaultMulStrategy
}

// WithBoundsCheck makes Set reject coordinates outside [0,rows)×[0,cols)
// with ErrOutOfRange. At stays permissive and keeps returning 0.
// Complexity: O(1).
func WithBoundsCheck() Option {
	return func(o *Options) { o.boundsCheck = true }
}

// WithMulStrategy selects the multiplication kernel.
// Panics on values other than MulScan or MulRowIndex (programmer error).
//
// AI-Hints:
//   - MulRowIndex wins when the right operand is wide and very sparse.
func WithMulStrategy(s MulStrategy) Option {
	if s != MulScan && s != MulRowIndex {
		panic(panicMulStrategyInvalid)
	}

	return func(o *Options) { o.mulStrategy = s }
}

// defaultOptions returns Options populated from the Default* constants.
func defaultOptions() Options {
	return Options{
		boundsCheck: DefaultBoundsCheck,
		mulStrategy: DefaultMulStrategy,
	}
}

// gatherOptions applies opts over defaults in order; later options win.
// Nil options are skipped.
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}

// BoundsCheck reports whether Set validates coordinates.
func (o Options) BoundsCheck() bool { return o.boundsCheck }

// MulStrategy reports the configured multiplication kernel.
func (o Options) MulStrategy() MulStrategy { return o.mulStrategy }
