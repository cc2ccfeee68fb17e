// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide small, private broadcast kernels (ew*) shared by centering,
//     un-centering (reconstruction) and comparison helpers.
//   - Keep all loops deterministic and cache-friendly with Dense fast-paths.
//
// Determinism & Performance:
//   - Fixed loop orders (i→j or flat 0..n-1).
//   - No hidden allocations beyond the output Dense; O(r*c) time and space.

package matrix

import "math"

const (
	opBroadcastCols = "broadcastCols"
	opAllClose      = "AllClose"
)

// ewBroadcastCols computes out[i,j] = X[i,j] + sign*vec[j] for sign ∈ {+1, -1}.
// Time: O(r*c). Space: O(r*c). Deterministic i→j loops.
func ewBroadcastCols(X Matrix, vec []float64, sign float64) (Matrix, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, matrixErrorf(opBroadcastCols, err)
	}
	r, c := X.Rows(), X.Cols()
	if err := ValidateVecLen(vec, c); err != nil {
		return nil, matrixErrorf(opBroadcastCols, err)
	}
	out, err := NewDense(r, c)
	if err != nil {
		return nil, matrixErrorf(opBroadcastCols, err)
	}

	var i, j, base int
	// Dense fast-path: single pass over the flat row-major buffer.
	if d, ok := X.(*Dense); ok {
		for i = 0; i < r; i++ {
			base = i * c
			for j = 0; j < c; j++ {
				out.data[base+j] = d.data[base+j] + sign*vec[j]
			}
		}
		return out, nil
	}

	var v float64
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			if v, err = X.At(i, j); err != nil {
				return nil, matrixErrorf(opBroadcastCols, err)
			}
			out.data[i*c+j] = v + sign*vec[j]
		}
	}

	return out, nil
}

// ewBroadcastSubCols computes out[i,j] = X[i,j] - colMeans[j].
func ewBroadcastSubCols(X Matrix, colMeans []float64) (Matrix, error) {
	return ewBroadcastCols(X, colMeans, -1)
}

// ewBroadcastAddCols computes out[i,j] = X[i,j] + colMeans[j].
func ewBroadcastAddCols(X Matrix, colMeans []float64) (Matrix, error) {
	return ewBroadcastCols(X, colMeans, +1)
}

// ewAllClose reports whether |a-b| ≤ atol + rtol*|b| holds element-wise.
// Returns (true,nil) if all elements satisfy the relation; (false,nil) otherwise.
//
// Policy:
//   - a and b must be non-nil and have identical shapes.
//   - rtol, atol are treated as |rtol|, |atol|; NaN/Inf tolerances are rejected.
//   - A NaN element never compares close.
func ewAllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	if math.IsNaN(rtol) || math.IsNaN(atol) || math.IsInf(rtol, 0) || math.IsInf(atol, 0) {
		return false, matrixErrorf(opAllClose, ErrNaNInf)
	}
	rtol, atol = math.Abs(rtol), math.Abs(atol)

	if err := ValidateNotNil(a); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	if err := ValidateSameShape(a, b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}

	r, c := a.Rows(), a.Cols()
	var av, bv float64
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			av, _ = a.At(i, j)
			bv, _ = b.At(i, j)
			if !(math.Abs(av-bv) <= atol+rtol*math.Abs(bv)) {
				return false, nil // early-exit on first violation
			}
		}
	}

	return true, nil
}
