// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for Graph construction.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors (panic only on nonsensical values),
//   - gatherOptions helper (internal).
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
package matrix

import "log/slog"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultStrictMode rejects unknown mode strings in Create when true.
	// false ⇒ unknown strings fall back to Symmetric and the fallback is logged.
	DefaultStrictMode = false

	// DefaultSparse selects the adjacency-of-maps backend when true.
	// false ⇒ dense row-major table, O(size²) memory.
	DefaultSparse = false

	// DefaultFiniteWeights rejects NaN and ±Inf weights on insertion.
	DefaultFiniteWeights = true
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicNilLogger = "matrix: WithLogger: logger must be non-nil"
)

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept `...Option`.
type Options struct {
	logger        *slog.Logger // DefaultLogger: discards
	strictMode    bool         // DefaultStrictMode
	sparse        bool         // DefaultSparse
	finiteWeights bool         // DefaultFiniteWeights
}

// defaultOptions returns Options populated from the Default* constants.
func defaultOptions() Options {
	return Options{
		logger:        slog.New(slog.DiscardHandler),
		strictMode:    DefaultStrictMode,
		sparse:        DefaultSparse,
		finiteWeights: DefaultFiniteWeights,
	}
}

// gatherOptions applies opts over the defaults in order; later options win.
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// WithLogger routes the graph's diagnostics (mode fallback, capacity
// exhaustion) to l. Panics if l is nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic(panicNilLogger)
	}

	return func(o *Options) { o.logger = l }
}

// WithStrictMode makes Create return ErrUnknownMode instead of falling back
// to Symmetric for unrecognized mode strings.
func WithStrictMode() Option {
	return func(o *Options) { o.strictMode = true }
}

// WithSparse stores edges in per-row maps instead of a dense table.
// Observable query semantics (degree, has-edge, neighbor order) are identical.
func WithSparse() Option {
	return func(o *Options) { o.sparse = true }
}

// WithFiniteWeights toggles NaN/±Inf rejection on AddEdge/AddEdgeIdx.
func WithFiniteWeights(on bool) Option {
	return func(o *Options) { o.finiteWeights = on }
}
