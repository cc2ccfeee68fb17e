// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Thin public facade over the unexported implementations (impl_*.go,
//     ops_elementwise.go) so the exported surface stays in one file.

package matrix

// NewIdentity returns the n×n identity matrix.
func NewIdentity(n int) (*Dense, error) {
	m, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		m.data[i*n+i] = 1.0
	}

	return m, nil
}

// AllClose reports whether |a-b| ≤ atol + rtol*|b| holds element-wise.
func AllClose(a, b Matrix, rtol, atol float64) (bool, error) { return ewAllClose(a, b, rtol, atol) }

// AddColumnVector returns X with vec[j] added to every element of column j.
// It undoes CenterColumns when given the returned means.
func AddColumnVector(X Matrix, vec []float64) (Matrix, error) { return ewBroadcastAddCols(X, vec) }

// CenterColumns subtracts the per-column mean from every element and returns
// the centered copy together with the column means (len = Cols()).
// Zero-size inputs are returned unchanged.
func CenterColumns(X Matrix) (Matrix, []float64, error) { return centerColumns(X) }

// MaxAbs returns max|m_ij|, the scale that relative tolerances multiply.
// It returns 0 for a nil or empty matrix.
func MaxAbs(m Matrix) float64 {
	if ValidateNotNil(m) != nil {
		return 0
	}

	return maxAbs(m)
}

// EigenSym computes all eigenpairs of a real symmetric matrix with Jacobi
// rotations. Eigenvalues come back in diagonal order (unsorted); the columns
// of the returned matrix are the matching orthonormal eigenvectors.
func EigenSym(m Matrix, opts ...Option) ([]float64, *Dense, error) {
	return eigenSym(m, gatherOptions(opts...))
}
