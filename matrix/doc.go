// Package matrix offers a sparse integer matrix keyed by (row, col).
//
// The matrix package provides:
//
//   - SparseMatrix, which stores only non-zero entries in a map; reading an
//     absent coordinate yields 0 and writing 0 deletes the entry.
//   - Add, Sub and Mul, which validate dimensions before any work and always
//     return a fresh matrix, never mutating operands.
//   - A canonical rendering, ordered by (row, col), that doubles as an
//     equality key in tests and tooling.
//   - ToDense/FromDense bridges to gonum.org/v1/gonum/mat.
//
// Accessors are permissive by default: At never fails and Set accepts any
// coordinate. Build with WithBoundsCheck to make Set reject out-of-range
// writes. Mul defaults to a column scan over the right operand; pick
// WithMulStrategy(MulRowIndex) for wide, very sparse right operands.
//
// Errors are package sentinels (ErrDimensionMismatch, ErrOutOfRange, ...)
// wrapped with the operation name; match them with errors.Is.
//
// Elements are Go ints. Add, Sub and Mul use plain int arithmetic, so sums
// and products beyond the int range wrap around silently; callers that need
// unbounded values must bound their inputs.
//
// The zero value SparseMatrix{} is a usable 0×0 matrix. Set on a nil
// *SparseMatrix returns ErrNilMatrix.
//
// Instances are not safe for concurrent mutation.
package matrix
