// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Bridge Dense to gonum's mat types so LAPACK-backed factorizations
//     (mat.SVD, mat.EigenSym) can run on matrices built by this package.
//   - Conversions always copy; neither side aliases the other's storage.

package matrix

import (
	"gonum.org/v1/gonum/mat"
)

const (
	opToGonum    = "ToGonum"
	opToSymDense = "ToSymDense"
)

// ToGonum copies m into a new *mat.Dense.
// gonum has no zero-sized Dense, so 0×c and r×0 inputs return ErrBadShape.
func ToGonum(m Matrix) (*mat.Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opToGonum, err)
	}
	r, c := m.Rows(), m.Cols()
	if r == 0 || c == 0 {
		return nil, matrixErrorf(opToGonum, ErrBadShape)
	}

	if d, ok := m.(*Dense); ok {
		return mat.NewDense(r, c, d.RawData()), nil
	}
	out := mat.NewDense(r, c, nil)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			v, err := m.At(i, j)
			if err != nil {
				return nil, matrixErrorf(opToGonum, err)
			}
			out.Set(i, j, v)
		}
	}

	return out, nil
}

// ToSymDense copies the upper triangle of a symmetric m into a *mat.SymDense.
// m must be non-empty, square and symmetric within tol.
func ToSymDense(m Matrix, tol float64) (*mat.SymDense, error) {
	if err := ValidateSymmetric(m, tol); err != nil {
		return nil, matrixErrorf(opToSymDense, err)
	}
	n := m.Rows()
	if n == 0 {
		return nil, matrixErrorf(opToSymDense, ErrBadShape)
	}

	out := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			v, err := m.At(i, j)
			if err != nil {
				return nil, matrixErrorf(opToSymDense, err)
			}
			out.SetSym(i, j, v)
		}
	}

	return out, nil
}

// FromGonum copies any gonum matrix into a new *Dense.
// A contiguous *mat.Dense is copied in one pass over its backing slice.
func FromGonum(src mat.Matrix) *Dense {
	r, c := src.Dims()
	if g, ok := src.(*mat.Dense); ok {
		if raw := g.RawMatrix(); raw.Stride == c {
			if out, err := NewDenseFrom(r, c, raw.Data[:r*c]); err == nil {
				return out
			}
		}
	}
	out := &Dense{r: r, c: c, data: make([]float64, r*c)}
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			out.data[i*c+j] = src.At(i, j)
		}
	}

	return out
}
