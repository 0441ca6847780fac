// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures for the sparse kernels.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sparsemat/matrix"
)

// MustNew allocates an empty r×c matrix or fails the test.
func MustNew(tb testing.TB, r, c int, opts ...matrix.Option) *matrix.SparseMatrix {
	tb.Helper()
	m, err := matrix.New(r, c, opts...)
	require.NoError(tb, err)

	return m
}

// MustFromRows builds a matrix from a dense row literal, storing non-zeros only.
// All rows must have the same length.
func MustFromRows(tb testing.TB, rows [][]int, opts ...matrix.Option) *matrix.SparseMatrix {
	tb.Helper()
	cols := 0
	if len(rows) > 0 {
		cols = len(rows[0])
	}
	m := MustNew(tb, len(rows), cols, opts...)
	for i, row := range rows {
		require.Len(tb, row, cols, "ragged row %d", i)
		for j, v := range row {
			require.NoError(tb, m.Set(i, j, v))
		}
	}

	return m
}

// RandomSparse fills an r×c matrix with about density*r*c non-zeros in [-9,9].
// Deterministic for a given seed.
func RandomSparse(tb testing.TB, r, c int, density float64, seed int64, opts ...matrix.Option) *matrix.SparseMatrix {
	tb.Helper()
	rng := rand.New(rand.NewSource(seed))
	m := MustNew(tb, r, c, opts...)
	n := int(density * float64(r*c))
	for k := 0; k < n; k++ {
		require.NoError(tb, m.Set(rng.Intn(r), rng.Intn(c), rng.Intn(19)-9))
	}

	return m
}

// fixtureA is [[1,2],[3,4]].
func fixtureA(tb testing.TB) *matrix.SparseMatrix {
	return MustFromRows(tb, [][]int{{1, 2}, {3, 4}})
}

// fixtureB is [[5,0],[0,6]].
func fixtureB(tb testing.TB) *matrix.SparseMatrix {
	return MustFromRows(tb, [][]int{{5, 0}, {0, 6}})
}
