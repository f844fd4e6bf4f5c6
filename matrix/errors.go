// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. Public methods return these sentinels (usually wrapped with call
// context) and tests check them via errors.Is. No method panics on
// user-triggered error conditions; panics are reserved for invalid options.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for easy grepping across logs.
// Methods wrap these sentinels as fmt.Errorf("Graph.Method(args): %w", ErrX)
// at the detection site; callers still match with errors.Is.
//
// ERROR PRIORITY (enforced in tests):
// index/label resolution -> weight validation -> capacity -> structural queries.

var (
	// ErrInvalidSize is returned when the requested capacity is not positive.
	ErrInvalidSize = errors.New("matrix: size must be > 0")

	// ErrUnknownMode is returned for an unrecognized directionality, either a
	// Mode value outside the enum or a mode string under WithStrictMode.
	ErrUnknownMode = errors.New("matrix: unknown graph mode")

	// ErrIndexOutOfRange indicates that an index is outside [0, size).
	ErrIndexOutOfRange = errors.New("matrix: index out of range")

	// ErrUnknownLabel indicates that a label was never registered.
	// It replaces the legacy silent fallback to index 0.
	ErrUnknownLabel = errors.New("matrix: unknown label")

	// ErrUnlabeledIndex indicates that a valid index carries no label yet.
	ErrUnlabeledIndex = errors.New("matrix: index has no label")

	// ErrCapacityExceeded is returned when registering new labels would need
	// more indices than the graph was created with.
	ErrCapacityExceeded = errors.New("matrix: label capacity exceeded")

	// ErrNoNeighbors is returned by CheapestNeighbor for an isolated node.
	ErrNoNeighbors = errors.New("matrix: node has no neighbors")

	// ErrInvalidWeight is returned for NaN or ±Inf weights while the finite
	// weight policy is on.
	ErrInvalidWeight = errors.New("matrix: invalid edge weight")

	// ErrNilGraph indicates a nil *Graph receiver.
	ErrNilGraph = errors.New("matrix: graph is nil")
)
