// SPDX-License-Identifier: MIT
// Package matrix: public API facades.
//
// Purpose:
//   - Provide function-style entry points next to the methods, for callers
//     that pass operands around as values (e.g. a dispatch table in a CLI).
//   - Avoid logic duplication: each facade delegates to the method.

package matrix

// Add returns a + b. Thin alias of (*SparseMatrix).Add.
// Complexity: O(nnz(a) + nnz(b)).
func Add(a, b *SparseMatrix) (*SparseMatrix, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opAdd, err)
	}

	return a.Add(b)
}

// Sub returns a − b. Thin alias of (*SparseMatrix).Sub.
func Sub(a, b *SparseMatrix) (*SparseMatrix, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opSub, err)
	}

	return a.Sub(b)
}

// Mul returns a × b. Thin alias of (*SparseMatrix).Mul.
func Mul(a, b *SparseMatrix) (*SparseMatrix, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	return a.Mul(b)
}

// Equal reports whether a and b have the same shape and the same non-zero
// entries. Options are not compared. Two nil matrices are equal.
// Complexity: O(nnz).
func Equal(a, b *SparseMatrix) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.rows != b.rows || a.cols != b.cols || len(a.entries) != len(b.entries) {
		return false
	}
	for k, v := range a.entries {
		if w, ok := b.entries[k]; !ok || w != v {
			return false
		}
	}

	return true
}
