// SPDX-License-Identifier: MIT

package matrix

import (
	"strconv"
	"strings"
)

// ---------- Formatting literals ----------
const (
	_fmtHeadOpen  = "SparseMatrix("
	_fmtHeadClose = "): "
	_fmtSep       = ", "
	_fmtOpen      = "("
	_fmtClose     = ")"
)

// String renders m canonically:
//
//	SparseMatrix(<rows>, <cols>): (r, c, v), (r, c, v), ...
//
// Triples are emitted in ascending (row, col) order, so two matrices are
// equal iff their renderings are equal. An empty matrix renders with the
// header only, trailing space included.
// Complexity: O(nnz log nnz).
func (m *SparseMatrix) String() string {
	if m == nil {
		return "<nil>"
	}

	var sb strings.Builder
	sb.WriteString(_fmtHeadOpen)
	sb.WriteString(strconv.Itoa(m.rows))
	sb.WriteString(_fmtSep)
	sb.WriteString(strconv.Itoa(m.cols))
	sb.WriteString(_fmtHeadClose)
	for i, e := range m.Entries() {
		if i > 0 {
			sb.WriteString(_fmtSep)
		}
		sb.WriteString(_fmtOpen)
		sb.WriteString(strconv.Itoa(e.Row))
		sb.WriteString(_fmtSep)
		sb.WriteString(strconv.Itoa(e.Col))
		sb.WriteString(_fmtSep)
		sb.WriteString(strconv.Itoa(e.Value))
		sb.WriteString(_fmtClose)
	}

	return sb.String()
}
