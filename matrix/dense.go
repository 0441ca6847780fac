// SPDX-License-Identifier: MIT

// Package matrix - bridges to gonum dense matrices.
//
// Purpose:
//   - Hand a SparseMatrix to float64 linear-algebra code (gonum/mat) and back.
//   - Keep the sparse side authoritative: import rejects non-integral values.
//
// Complexity quicksheet:
//   - ToDense: O(r*c) zeroing + O(nnz) writes; FromDense: O(r*c) reads.

package matrix

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

const (
	ctxToDense   = "ToDense"
	ctxFromDense = "FromDense"
)

// intLimit is 2^(bits of int); integral floats in [-intLimit, intLimit) fit an int.
const intLimit = float64(math.MaxInt) + 1

// ToDense materializes m as a gonum *mat.Dense.
//
// Errors:
//   - ErrNilMatrix for nil m.
//   - ErrBadShape when rows or cols is 0 (gonum has no empty Dense).
//   - ErrOutOfRange when m holds a coordinate outside its own shape
//     (possible when built without WithBoundsCheck).
func ToDense(m *SparseMatrix) (*mat.Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(ctxToDense, err)
	}
	if m.rows == 0 || m.cols == 0 {
		return nil, matrixErrorf(ctxToDense, ErrBadShape)
	}

	d := mat.NewDense(m.rows, m.cols, nil)
	for k, v := range m.entries {
		if err := ValidateIndex(m, k.Row, k.Col); err != nil {
			return nil, matrixErrorf(ctxToDense, fmt.Errorf("(%d,%d): %w", k.Row, k.Col, err))
		}
		d.Set(k.Row, k.Col, float64(v))
	}

	return d, nil
}

// FromDense builds a SparseMatrix from any gonum matrix, skipping zeros.
//
// Errors:
//   - ErrNonInteger when an element is NaN, ±Inf, has a fractional part,
//     or lies outside the range of int.
func FromDense(d mat.Matrix, opts ...Option) (*SparseMatrix, error) {
	r, c := d.Dims()
	m, err := New(r, c, opts...)
	if err != nil {
		return nil, matrixErrorf(ctxFromDense, err)
	}

	var (
		i, j int
		v    float64
	)
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			v = d.At(i, j)
			if v == 0 {
				continue
			}
			// Reject anything int(v) cannot represent exactly (NaN/Inf fail the range test too).
			if math.IsNaN(v) || v != math.Trunc(v) || v >= intLimit || v < -intLimit {
				return nil, matrixErrorf(ctxFromDense, fmt.Errorf("(%d,%d)=%g: %w", i, j, v, ErrNonInteger))
			}
			m.entries[Index{Row: i, Col: j}] = int(v)
		}
	}

	return m, nil
}
