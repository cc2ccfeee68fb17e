// SPDX-License-Identifier: MIT
// Package: pca
//
// Purpose:
//   - Spectral decomposition of the covariance matrix: factor, sort the
//     directions by decreasing variance, truncate to k.
//
// Contract:
//   - The input must be a symmetric positive-semidefinite d×d matrix (any
//     covariance produced by CovarianceMatrix is). Under that precondition the
//     singular values of C equal its eigenvalues and the left singular vectors
//     are eigenvectors, which is what makes SolverSVD valid.
//   - Directions are stored one per COLUMN everywhere in Spectrum.
//
// Determinism:
//   - Sorting is stable on decreasing value: equal values keep the order in
//     which the solver emitted them.

package pca

import (
	"cmp"
	"fmt"
	"math"
	"slices"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/pca/matrix"
)

const opSortedEigenvectors = "SortedEigenvectors"

// SortedEigenvectors decomposes the d×d covariance matrix covar and returns
// its Spectrum with the first k sorted directions retained.
//
// Implementation:
//   - Stage 1: validate shape (square, d ≥ 1, 0 ≤ k ≤ d), finiteness and
//     symmetry within eps·max|c_ij|. The tolerance is purely relative, so
//     the result does not depend on the units of the data.
//   - Stage 2: factor with the configured Solver.
//   - Stage 3: optionally canonicalize direction signs.
//   - Stage 4: stable sort on the negated values; permute columns; keep k.
//
// Errors:
//   - ErrInvalidShape: nil or non-square covar, d = 0, k out of range,
//     asymmetric covar (also matches matrix.ErrAsymmetry).
//   - ErrNumericFailure: NaN/Inf entries (also matches matrix.ErrNaNInf) or a
//     solver that did not converge (also matches matrix.ErrEigenFailed).
//
// Complexity:
//   - O(d³) for every solver; the sort adds O(d log d) and the permutation O(d²).
func SortedEigenvectors(covar matrix.Matrix, k int, opts ...Option) (*Spectrum, error) {
	o := gatherOptions(opts...)

	// Stage 1: validation.
	if err := matrix.ValidateSquare(covar); err != nil {
		return nil, wrapShape(opSortedEigenvectors, err)
	}
	d := covar.Rows()
	if d == 0 {
		return nil, shapeErrorf(opSortedEigenvectors, "empty covariance matrix")
	}
	if k < 0 || k > d {
		return nil, shapeErrorf(opSortedEigenvectors, "k=%d outside [0, %d]", k, d)
	}
	if err := matrix.ValidateFinite(covar); err != nil {
		return nil, wrapNumeric(opSortedEigenvectors, err)
	}
	tol := o.eps * matrix.MaxAbs(covar)
	if err := matrix.ValidateSymmetric(covar, tol); err != nil {
		return nil, wrapShape(opSortedEigenvectors, err)
	}

	// Stage 2: factor.
	values, vectors, err := decompose(covar, tol, o)
	if err != nil {
		return nil, err
	}

	// Stage 3: sign convention.
	if o.canonicalSigns {
		canonicalizeSigns(vectors)
	}

	// Stage 4: sort and truncate.
	order := make([]int, d)
	for i := range order {
		order[i] = i
	}
	slices.SortStableFunc(order, func(a, b int) int {
		return cmp.Compare(-values[a], -values[b])
	})

	sortedValues := make([]float64, d)
	for i, src := range order {
		sortedValues[i] = values[src]
	}
	sortedVectors, err := vectors.Induced(nil, order)
	if err != nil {
		return nil, wrapShape(opSortedEigenvectors, err)
	}
	retained, err := vectors.Induced(nil, order[:k])
	if err != nil {
		return nil, wrapShape(opSortedEigenvectors, err)
	}

	return &Spectrum{
		Values:        values,
		Vectors:       vectors,
		Order:         order,
		SortedValues:  sortedValues,
		SortedVectors: sortedVectors,
		Retained:      retained,
	}, nil
}

// decompose dispatches to the configured solver and returns the values and
// the matching directions (one per column) in solver order. tol is the
// absolute symmetry tolerance; Jacobi rescales o.eps itself.
func decompose(covar matrix.Matrix, tol float64, o Options) ([]float64, *matrix.Dense, error) {
	switch o.solver {
	case SolverSVD:
		g, err := matrix.ToGonum(covar)
		if err != nil {
			return nil, nil, wrapShape(opSortedEigenvectors, err)
		}
		var svd mat.SVD
		if ok := svd.Factorize(g, mat.SVDFull); !ok {
			return nil, nil, wrapNumeric(opSortedEigenvectors,
				fmt.Errorf("svd: %w", matrix.ErrEigenFailed))
		}
		var u mat.Dense
		svd.UTo(&u)

		return svd.Values(nil), matrix.FromGonum(&u), nil

	case SolverEigenSym:
		sym, err := matrix.ToSymDense(covar, tol)
		if err != nil {
			return nil, nil, wrapShape(opSortedEigenvectors, err)
		}
		var es mat.EigenSym
		if ok := es.Factorize(sym, true); !ok {
			return nil, nil, wrapNumeric(opSortedEigenvectors,
				fmt.Errorf("eigensym: %w", matrix.ErrEigenFailed))
		}
		var ev mat.Dense
		es.VectorsTo(&ev)

		return es.Values(nil), matrix.FromGonum(&ev), nil

	case SolverJacobi:
		values, vectors, err := matrix.EigenSym(covar,
			matrix.WithEpsilon(o.eps), matrix.WithMaxSweeps(o.jacobiSweeps))
		if err != nil {
			return nil, nil, wrapNumeric(opSortedEigenvectors, err)
		}

		return values, vectors, nil
	}

	return nil, nil, shapeErrorf(opSortedEigenvectors, "unsupported solver %v", o.solver)
}

// canonicalizeSigns flips every column of v whose largest-magnitude entry is
// negative. The first index wins among equal magnitudes.
func canonicalizeSigns(v *matrix.Dense) {
	rows, cols := v.Shape()
	for j := 0; j < cols; j++ {
		col := v.Col(j)
		pivot, best := 0, -1.0
		for i, x := range col {
			if a := math.Abs(x); a > best {
				pivot, best = i, a
			}
		}
		if col[pivot] >= 0 {
			continue
		}
		for i := 0; i < rows; i++ {
			_ = v.Set(i, j, 0-col[i]) // 0-x keeps zeros positive
		}
	}
}
