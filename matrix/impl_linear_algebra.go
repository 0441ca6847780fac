// SPDX-License-Identifier: MIT
// Package matrix provides the arithmetic kernels on SparseMatrix:
// element-wise addition, subtraction and matrix multiplication. All kernels
// validate dimensions before touching any entry and return fresh results;
// operands are never mutated.
//
// Notes:
//   - Zero results delete the key (via set), so results never store 0.
//   - Map iteration order is random, but integer accumulation is exact, so
//     results do not depend on it.

package matrix

import (
	"errors"
	"fmt"
)

// Operation name constants for unified error wrapping.
const (
	opAdd = "Add"
	opSub = "Sub"
	opMul = "Mul"
)

// Human-readable causes attached to ErrDimensionMismatch.
const (
	msgAddShape = "matrix dimensions must be the same for addition"
	msgSubShape = "matrix dimensions must be the same for subtraction"
	msgMulShape = "matrix dimensions do not allow multiplication"
)

// matrixErrorf wraps err with an operation tag, preserving it via %w.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// shapeErrorf wraps a validator error with the operation tag and, for
// dimension mismatches only, the human-readable cause msg.
// Nil operands keep their plain ErrNilMatrix chain.
func shapeErrorf(tag, msg string, err error) error {
	if errors.Is(err, ErrDimensionMismatch) {
		return matrixErrorf(tag, fmt.Errorf("%s: %w", msg, err))
	}

	return matrixErrorf(tag, err)
}

// addSub computes out = a + sign*b for sign ∈ {+1, -1}.
// Internal helper for Add/Sub to share validation and the merge loop.
//
// Implementation:
//   - Stage 1: ValidateSameShape(a, b).
//   - Stage 2: clone a (shape, entries, options).
//   - Stage 3: for every (k, v) of b, out[k] = out[k] + sign*v through set,
//     so cancellations drop the key.
//
// Complexity:
//   - Time O(nnz(a) + nnz(b)), Space O(nnz(a) + nnz(b)).
//
// Notes:
//   - int arithmetic wraps on overflow; no check is made.
func addSub(a, b *SparseMatrix, sign int, opTag, msg string) (*SparseMatrix, error) {
	// Validate operands before touching any entry (fail fast, no partial result).
	if err := ValidateSameShape(a, b); err != nil {
		return nil, shapeErrorf(opTag, msg, err)
	}

	// Start from a deep copy of a; operands stay immutable.
	out := a.Clone()
	// Fold b into the copy; set() drops keys whose sum cancels to 0.
	for k, v := range b.entries {
		out.set(k, out.entries[k]+sign*v) // absent key reads as 0
	}

	return out, nil
}

// Add returns m + other as a new matrix with m's shape and options.
// Errors: ErrNilMatrix, ErrDimensionMismatch (shapes differ).
// Complexity: O(nnz(m) + nnz(other)).
func (m *SparseMatrix) Add(other *SparseMatrix) (*SparseMatrix, error) {
	return addSub(m, other, +1, opAdd, msgAddShape)
}

// Sub returns m - other as a new matrix with m's shape and options.
// Errors: ErrNilMatrix, ErrDimensionMismatch (shapes differ).
// Complexity: O(nnz(m) + nnz(other)).
func (m *SparseMatrix) Sub(other *SparseMatrix) (*SparseMatrix, error) {
	return addSub(m, other, -1, opSub, msgSubShape)
}

// Mul returns the matrix product m × other, shaped m.Rows() × other.Cols().
// Implementation:
//   - Stage 1: ValidateMulCompatible (m.Cols == other.Rows) before any work.
//   - Stage 2: allocate an empty result carrying m's options.
//   - Stage 3: dispatch on m's MulStrategy (scan or row-index join).
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
//
// Complexity:
//   - MulScan:     O(nnz(m)·cols(other)).
//   - MulRowIndex: O(nnz(other) + nnz(m)·avg-row-nnz(other)).
//
// Notes:
//   - Products and sums are plain int arithmetic and wrap on overflow.
func (m *SparseMatrix) Mul(other *SparseMatrix) (*SparseMatrix, error) {
	// Inner dimensions must agree; checked before any allocation.
	if err := ValidateMulCompatible(m, other); err != nil {
		return nil, shapeErrorf(opMul, msgMulShape, err)
	}

	// Result is rows(m)×cols(other), empty, and inherits m's policy.
	out := &SparseMatrix{
		rows:    m.rows,
		cols:    other.cols,
		entries: make(map[Index]int),
		opts:    m.opts,
	}
	// Dispatch on the configured kernel; both fill out identically.
	switch m.opts.mulStrategy {
	case MulRowIndex:
		mulRowIndex(out, m, other)
	default:
		mulScan(out, m, other)
	}

	return out, nil
}

// mulScan: for each (r1,c1,v1) of a and each column c2 of b,
// out[r1,c2] += v1*b[c1,c2] whenever b[c1,c2] != 0.
// Does not exploit the sparsity of b along its rows.
func mulScan(out, a, b *SparseMatrix) {
	var (
		c2     int
		v2     int
		target Index
	)
	for k, v1 := range a.entries { // every non-zero (r1,c1,v1) of a
		for c2 = 0; c2 < b.cols; c2++ { // dense scan over b's columns
			v2 = b.entries[Index{Row: k.Col, Col: c2}] // b[c1,c2], 0 when absent
			if v2 == 0 {
				continue // nothing to accumulate
			}
			// Get-then-set accumulation; a cancelling sum removes the key.
			target = Index{Row: k.Row, Col: c2}
			out.set(target, out.entries[target]+v1*v2)
		}
	}
}

// mulRowIndex groups b's entries by row, then joins each (r1,c1,v1) of a
// with row c1 of b only. Entries of b whose column is outside [0,b.cols)
// are skipped so the result matches mulScan exactly.
func mulRowIndex(out, a, b *SparseMatrix) {
	// Stage 1: bucket b's entries by row in a single O(nnz(b)) pass.
	byRow := make(map[int][]Entry, b.rows)
	for k, v := range b.entries {
		if k.Col < 0 || k.Col >= b.cols {
			continue // unreachable by the column scan; keep results identical
		}
		byRow[k.Row] = append(byRow[k.Row], Entry{Row: k.Row, Col: k.Col, Value: v})
	}

	// Stage 2: join each (r1,c1,v1) of a with the non-zeros of row c1 of b.
	var target Index
	for k, v1 := range a.entries {
		for _, e := range byRow[k.Col] { // empty bucket means no contribution
			target = Index{Row: k.Row, Col: e.Col}
			out.set(target, out.entries[target]+v1*e.Value) // get-then-set accumulate
		}
	}
}
