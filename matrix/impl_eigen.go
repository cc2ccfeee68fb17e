// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Jacobi eigenvalue decomposition of a real symmetric matrix, with no
//     dependency beyond the Dense kernels of this package.
//   - Serves as an independent solver next to the LAPACK-backed gonum paths
//     (see impl_gonum.go), so results can be cross-checked.

package matrix

import (
	"fmt"
	"math"
)

const opEigenSym = "EigenSym"

// eigenSym performs classical Jacobi rotations on a symmetric matrix m.
// It returns the eigenvalues (unsorted, in diagonal order) and Q, whose
// columns are the matching orthonormal eigenvectors: m·Q[:,i] = vals[i]·Q[:,i].
//
// Tolerances are relative: with scale = max|m_ij|, the input must be
// symmetric within eps·scale and rotations stop once every off-diagonal
// magnitude is at most eps·scale. A zero matrix needs no rotation.
//
// Implementation:
//   - Stage 1: validate square, finite and symmetric within eps·scale.
//   - Stage 2: A := copy(m), Q := I.
//   - Stage 3: repeatedly zero the largest |A[p,q]| with a plane rotation,
//     accumulating the rotation into Q, until max|A[p,q]| ≤ eps·scale.
//   - Stage 4: read eigenvalues off the diagonal of A.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrNaNInf, ErrAsymmetry (validation).
//   - ErrEigenFailed if the rotation budget (maxSweeps·n²) is exhausted.
//
// Complexity:
//   - O(n²) per rotation search + O(n) per rotation; Memory O(n²).
func eigenSym(m Matrix, opts Options) ([]float64, *Dense, error) {
	// Stage 1: validate input.
	if err := ValidateSquare(m); err != nil {
		return nil, nil, matrixErrorf(opEigenSym, err)
	}
	if err := ValidateFinite(m); err != nil {
		return nil, nil, matrixErrorf(opEigenSym, err)
	}
	threshold := opts.eps * maxAbs(m)
	if err := ValidateSymmetric(m, threshold); err != nil {
		return nil, nil, matrixErrorf(opEigenSym, err)
	}

	// Stage 2: working copy A and rotation accumulator Q = I.
	n := m.Rows()
	A, err := NewDense(n, n)
	if err != nil {
		return nil, nil, matrixErrorf(opEigenSym, err)
	}
	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			A.data[i*n+j], _ = m.At(i, j)
		}
	}
	Q, err := NewIdentity(n)
	if err != nil {
		return nil, nil, matrixErrorf(opEigenSym, err)
	}

	// Stage 3: rotations.
	maxIter := opts.maxSweeps * max(n*n, 1)
	var (
		iter, p, q     int
		maxOff, off    float64
		app, aqq, apq  float64
		arp, arq       float64
		theta, t, c, s float64
		converged      bool
	)
	for iter = 0; iter < maxIter; iter++ {
		// find largest off-diagonal |A[p][q]|
		maxOff = 0.0
		for i = 0; i < n; i++ {
			for j = i + 1; j < n; j++ {
				off = math.Abs(A.data[i*n+j])
				if off > maxOff {
					maxOff = off
					p, q = i, j
				}
			}
		}
		if maxOff <= threshold {
			converged = true
			break
		}

		app = A.data[p*n+p]
		aqq = A.data[q*n+q]
		apq = A.data[p*n+q]
		theta = (aqq - app) / (2 * apq)
		t = math.Copysign(1.0/(math.Abs(theta)+math.Sqrt(theta*theta+1)), theta)
		c = 1.0 / math.Sqrt(t*t+1)
		s = t * c

		// rotate rows/cols p and q of A
		for i = 0; i < n; i++ {
			if i == p || i == q {
				continue
			}
			arp = A.data[i*n+p]
			arq = A.data[i*n+q]
			A.data[i*n+p] = c*arp - s*arq
			A.data[p*n+i] = A.data[i*n+p]
			A.data[i*n+q] = s*arp + c*arq
			A.data[q*n+i] = A.data[i*n+q]
		}
		A.data[p*n+p] = app - t*apq
		A.data[q*n+q] = aqq + t*apq
		A.data[p*n+q] = 0.0
		A.data[q*n+p] = 0.0

		// accumulate into Q
		for i = 0; i < n; i++ {
			arp = Q.data[i*n+p]
			arq = Q.data[i*n+q]
			Q.data[i*n+p] = c*arp - s*arq
			Q.data[i*n+q] = s*arp + c*arq
		}
	}
	if !converged {
		return nil, nil, matrixErrorf(opEigenSym,
			fmt.Errorf("no convergence after %d rotations: %w", maxIter, ErrEigenFailed))
	}

	// Stage 4: diagonal elements are eigenvalues.
	vals := make([]float64, n)
	for i = 0; i < n; i++ {
		vals[i] = A.data[i*n+i]
	}

	return vals, Q, nil
}
