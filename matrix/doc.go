// Package matrix provides the dense linear-algebra layer of the pca module.
//
// The matrix package provides:
//
//   - Dense, a row-major float64 matrix with bounds-checked At/Set, copy-based
//     submatrix extraction (Induced) and row/column materialization.
//   - Kernels: Mul, Transpose, Scale, MatVec, AllClose.
//   - Statistics: CenterColumns, plus MaxAbs as the scale for relative tolerances.
//   - EigenSym, a Jacobi eigensolver for symmetric matrices.
//   - A copy-based bridge to gonum (ToGonum, ToSymDense, FromGonum).
//
// All kernels return wrapped sentinel errors (see errors.go) and never mutate
// their operands. Zero-size shapes are legal everywhere except the gonum
// bridge, which has no zero-sized matrices.
package matrix
