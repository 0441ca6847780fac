// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep operations minimal by delegating nil/shape/index checks here.
//  - Return sentinel errors wrapped with the validator tag so call sites can
//    add their own operation tag on top.
//
// Determinism & Performance:
//  - All checks are pure, O(1) and allocate nothing on success.

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateShape rejects negative dimensions. Zero rows or cols are legal.
func ValidateShape(rows, cols int) error {
	if rows < 0 || cols < 0 {
		return validatorErrorf("ValidateShape", ErrBadShape)
	}

	return nil
}

// ValidateNotNil ensures the matrix reference is non-nil.
// AI-Hints: Use as the first step in composite validations.
func ValidateNotNil(m *SparseMatrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSameShape ensures a and b are non-nil and have equal dimensions.
// Used by Add and Sub.
func ValidateSameShape(a, b *SparseMatrix) error {
	if a == nil || b == nil {
		return validatorErrorf("ValidateSameShape", ErrNilMatrix)
	}
	if a.rows != b.rows || a.cols != b.cols {
		return validatorErrorf(
			fmt.Sprintf("ValidateSameShape: %dx%d vs %dx%d", a.rows, a.cols, b.rows, b.cols),
			ErrDimensionMismatch,
		)
	}

	return nil
}

// ValidateMulCompatible ensures a and b are non-nil and a.Cols == b.Rows.
func ValidateMulCompatible(a, b *SparseMatrix) error {
	if a == nil || b == nil {
		return validatorErrorf("ValidateMulCompatible", ErrNilMatrix)
	}
	if a.cols != b.rows {
		return validatorErrorf(
			fmt.Sprintf("ValidateMulCompatible: %dx%d × %dx%d", a.rows, a.cols, b.rows, b.cols),
			ErrDimensionMismatch,
		)
	}

	return nil
}

// ValidateIndex checks 0 <= row < rows and 0 <= col < cols.
func ValidateIndex(m *SparseMatrix, row, col int) error {
	if row < 0 || row >= m.rows || col < 0 || col >= m.cols {
		return validatorErrorf("ValidateIndex", ErrOutOfRange)
	}

	return nil
}
