// SPDX-License-Identifier: MIT

// Package matrix: domain types shared by the sparse store and its operations.
// Options live in options.go and errors in errors.go.
package matrix

// Index is the composite (row, col) key of the sparse store.
// Comparable, so it can key a Go map directly; ordering is row-major
// (see Less) and drives the canonical rendering.
type Index struct {
	Row int // zero-based row
	Col int // zero-based column
}

// Less reports whether i sorts before j in ascending (row, col) order.
// Complexity: O(1).
func (i Index) Less(j Index) bool {
	if i.Row != j.Row {
		return i.Row < j.Row
	}

	return i.Col < j.Col
}

// Entry is a single non-zero element as a (row, col, value) triple.
type Entry struct {
	Row, Col int
	Value    int
}

// Index returns the coordinate key of e.
func (e Entry) Index() Index { return Index{Row: e.Row, Col: e.Col} }

// MulStrategy selects the iteration strategy used by Mul.
// Both strategies produce identical results and report identical errors.
type MulStrategy int

const (
	// MulScan walks every non-zero (r1,c1) of the left operand and reads
	// every column c2 of the right operand: O(nnz(A)·cols(B)).
	MulScan MulStrategy = iota

	// MulRowIndex groups the right operand's entries by row once, then joins
	// each left entry only with the non-zeros of row c1:
	// O(nnz(B) + nnz(A)·avg-row-nnz(B)).
	MulRowIndex
)

// String returns a stable name for logs and test names.
func (s MulStrategy) String() string {
	switch s {
	case MulScan:
		return "scan"
	case MulRowIndex:
		return "row-index"
	default:
		return "unknown"
	}
}
