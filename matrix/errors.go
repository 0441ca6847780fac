// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. Operations return these sentinels (optionally wrapped with an
// operation tag) and tests check them via errors.Is. No operation panics on
// user-triggered error conditions.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for easy grepping across logs.
// Call sites wrap with fmt.Errorf("<Op>: ...: %w", ErrX); callers still match
// with errors.Is.
//
// ERROR PRIORITY (enforced in tests):
// nil operand -> dimension mismatch -> index/value checks.

var (
	// ErrBadShape is returned when a requested shape is invalid (negative rows or cols),
	// or when an export target cannot represent the shape (gonum rejects 0×n).
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that a row or column index is outside [0,rows)×[0,cols).
	// Only reported when bounds checking is enabled, or by exporters that need it.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g., Add/Sub of different shapes, or Mul where a.Cols != b.Rows.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNilMatrix indicates that a nil *SparseMatrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")

	// ErrNonInteger signals a non-integral or non-finite value met while importing
	// from a floating-point matrix.
	ErrNonInteger = errors.New("matrix: value is not an integer")
)
