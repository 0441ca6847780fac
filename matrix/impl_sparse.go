// SPDX-License-Identifier: MIT

// Package matrix - sparse storage (coordinate map) & permissive accessors.
//
// Purpose:
//   - Store only non-zero integers, keyed by Index{Row, Col}.
//   - Reading an absent coordinate yields 0; writing 0 deletes the key.
//   - Keep the public surface panic-free.
//
// Complexity quicksheet:
//   - New: O(1); FromEntries: O(nnz); At/Set: O(1) average; Clone: O(nnz);
//     Entries: O(nnz log nnz) (sorted copy).

package matrix

import (
	"fmt"
	"sort"
)

const (
	ctxNew         = "New"
	ctxFromEntries = "FromEntries"
	ctxSet         = "Set"
)

// sparseErrorf wraps an error with a uniform SparseMatrix context and coordinates.
func sparseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("SparseMatrix.%s(%d,%d): %w", method, row, col, err)
}

// SparseMatrix is a rows×cols integer matrix that stores only non-zero entries.
//   - rows, cols are fixed for the lifetime of the instance.
//   - entries never holds a zero value.
//   - opts carries the per-instance policy (bounds check, Mul kernel).
type SparseMatrix struct {
	rows, cols int
	entries    map[Index]int
	opts       Options
}

var _ fmt.Stringer = (*SparseMatrix)(nil)

// New creates an empty rows×cols matrix.
// Returns ErrBadShape for negative dimensions. Zero-sized shapes are legal.
// Complexity: O(1).
func New(rows, cols int, opts ...Option) (*SparseMatrix, error) {
	// Validate shape; 0 rows or cols is a legal, empty matrix.
	if err := ValidateShape(rows, cols); err != nil {
		return nil, matrixErrorf(ctxNew, err)
	}

	// Empty store; options resolved once and carried by the instance.
	return &SparseMatrix{
		rows:    rows,
		cols:    cols,
		entries: make(map[Index]int),
		opts:    gatherOptions(opts...),
	}, nil
}

// FromEntries creates a rows×cols matrix holding the given entries.
// MAIN DESCRIPTION:
//   - Constructor for values produced by a loader.
//
// Behavior highlights:
//   - The map is copied, so later mutation of entries does not leak in.
//   - Zero values are dropped while copying.
//   - Coordinates are NOT checked against the shape; callers own that contract.
//
// Errors:
//   - ErrBadShape for negative dimensions.
//
// Complexity:
//   - Time O(len(entries)), Space O(nnz).
func FromEntries(rows, cols int, entries map[Index]int, opts ...Option) (*SparseMatrix, error) {
	// Delegate shape validation and option resolution to New.
	m, err := New(rows, cols, opts...)
	if err != nil {
		return nil, matrixErrorf(ctxFromEntries, err)
	}
	// Copy into our own map, skipping zeros so none is ever stored.
	for k, v := range entries {
		if v != 0 {
			m.entries[k] = v
		}
	}

	return m, nil
}

// Rows returns the row count. Complexity: O(1).
func (m *SparseMatrix) Rows() int { return m.rows }

// Cols returns the column count. Complexity: O(1).
func (m *SparseMatrix) Cols() int { return m.cols }

// Shape packs Rows() and Cols() into a single call.
func (m *SparseMatrix) Shape() (rows, cols int) { return m.rows, m.cols }

// Nnz returns the number of stored non-zero entries.
func (m *SparseMatrix) Nnz() int { return len(m.entries) }

// Options returns the effective policy of m.
func (m *SparseMatrix) Options() Options { return m.opts }

// At returns the value stored at (row, col), or 0 when absent.
// Out-of-range coordinates are not an error: they are simply absent.
// A nil receiver reads as an all-zero matrix.
// Complexity: O(1) average.
func (m *SparseMatrix) At(row, col int) int {
	if m == nil {
		return 0 // nothing stored
	}

	// Missing keys (and reads from a nil map) yield the zero value.
	return m.entries[Index{Row: row, Col: col}]
}

// Set stores v at (row, col). Writing 0 removes the entry if present.
// MAIN DESCRIPTION:
//   - The only mutator of the store; keeps "no stored zero" true.
//
// Errors:
//   - ErrNilMatrix on a nil receiver (checked first).
//   - ErrOutOfRange when the matrix was built WithBoundsCheck and the
//     coordinate lies outside the shape. Without it Set never fails.
//
// Notes:
//   - The zero value SparseMatrix{} is a usable 0×0 permissive matrix;
//     its store is allocated on first write.
//
// Complexity:
//   - Time O(1) average.
func (m *SparseMatrix) Set(row, col, v int) error {
	// Nil receiver is reported before any other check.
	if err := ValidateNotNil(m); err != nil {
		return sparseErrorf(ctxSet, row, col, err)
	}
	// Optional bounds policy; permissive matrices accept any coordinate.
	if m.opts.boundsCheck {
		if err := ValidateIndex(m, row, col); err != nil {
			return sparseErrorf(ctxSet, row, col, err) // store left untouched
		}
	}
	m.set(Index{Row: row, Col: col}, v)

	return nil
}

// set is the unchecked write used by Set and the arithmetic kernels.
func (m *SparseMatrix) set(k Index, v int) {
	if v == 0 {
		delete(m.entries, k) // no-op for absent keys and nil maps
		return
	}
	if m.entries == nil {
		m.entries = make(map[Index]int) // zero-value SparseMatrix
	}
	m.entries[k] = v
}

// Clone returns a deep copy with the same shape, entries and options.
// Complexity: O(nnz).
func (m *SparseMatrix) Clone() *SparseMatrix {
	// Allocate once with the exact size, then copy every key.
	cp := make(map[Index]int, len(m.entries))
	for k, v := range m.entries {
		cp[k] = v
	}

	return &SparseMatrix{rows: m.rows, cols: m.cols, entries: cp, opts: m.opts}
}

// Entries returns the non-zero entries as a fresh slice sorted by (row, col).
// Complexity: O(nnz log nnz).
func (m *SparseMatrix) Entries() []Entry {
	// Collect in map order, then sort for a deterministic result.
	out := make([]Entry, 0, len(m.entries))
	for k, v := range m.entries {
		out = append(out, Entry{Row: k.Row, Col: k.Col, Value: v})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Index().Less(out[j].Index()) })

	return out
}
