// SPDX-License-Identifier: MIT

package matrix_test

import (
	"math"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/pca/matrix"
)

func TestEigenSym_Diagonal(t *testing.T) {
	t.Parallel()

	D := NewFilledDense(t, 3, 3, []float64{
		3, 0, 0,
		0, 1, 0,
		0, 0, 2,
	})
	vals, Q, err := matrix.EigenSym(D)
	require.NoError(t, err)
	sliceClose(t, vals, []float64{3, 1, 2}, 0, 0)
	id, err := matrix.NewIdentity(3)
	require.NoError(t, err)
	CompareClose(t, Q, id, 0, 0)
}

func TestEigenSym_TwoByTwo(t *testing.T) {
	t.Parallel()

	// [[2,1],[1,2]] has eigenpairs 3:(1,1)/√2 and 1:(1,-1)/√2.
	A := NewFilledDense(t, 2, 2, []float64{2, 1, 1, 2})
	vals, Q, err := matrix.EigenSym(A)
	require.NoError(t, err)

	got := append([]float64(nil), vals...)
	sort.Float64s(got)
	sliceClose(t, got, []float64{1, 3}, 0, 1e-12)

	for j := 0; j < 2; j++ {
		v := Q.Col(j)
		require.InDelta(t, 1/math.Sqrt2, math.Abs(v[0]), 1e-12)
		require.InDelta(t, 1/math.Sqrt2, math.Abs(v[1]), 1e-12)
	}
}

// TestEigenSym_ScaleInvariant: the stopping threshold follows the magnitude
// of the input, so tiny matrices are still rotated and huge ones still stop.
func TestEigenSym_ScaleInvariant(t *testing.T) {
	t.Parallel()

	for _, scale := range []float64{1e-12, 1e-6, 1, 1e6, 1e12} {
		A := NewFilledDense(t, 2, 2, []float64{2 * scale, scale, scale, 2 * scale})
		vals, Q, err := matrix.EigenSym(A)
		require.NoError(t, err, "scale %g", scale)

		got := append([]float64(nil), vals...)
		sort.Float64s(got)
		sliceClose(t, got, []float64{scale, 3 * scale}, 1e-12, 0)
		for j := 0; j < 2; j++ {
			v := Q.Col(j)
			require.InDeltaf(t, 1/math.Sqrt2, math.Abs(v[0]), 1e-12, "scale %g", scale)
			require.InDeltaf(t, 1/math.Sqrt2, math.Abs(v[1]), 1e-12, "scale %g", scale)
		}
	}

	vals, Q, err := matrix.EigenSym(MustDense(t, 3, 3))
	require.NoError(t, err)
	sliceClose(t, vals, []float64{0, 0, 0}, 0, 0)
	id, err := matrix.NewIdentity(3)
	require.NoError(t, err)
	CompareClose(t, Q, id, 0, 0)
}

// TestEigenSym_ReconstructsRandom checks A·Q = Q·Λ and QᵀQ = I on random
// symmetric matrices, through both the Dense and the fallback input path.
func TestEigenSym_ReconstructsRandom(t *testing.T) {
	t.Parallel()

	for _, n := range []int{1, 2, 5, 8} {
		A := RandSymmetric(t, n, int64(100+n))
		for _, in := range []matrix.Matrix{A, hide{A}} {
			vals, Q, err := matrix.EigenSym(in)
			require.NoError(t, err)
			require.Len(t, vals, n)

			AQ, err := matrix.Mul(A, Q)
			require.NoError(t, err)
			var i, j int
			for i = 0; i < n; i++ {
				for j = 0; j < n; j++ {
					require.InDelta(t, vals[j]*MustAt(t, Q, i, j), MustAt(t, AQ, i, j), 1e-8)
				}
			}

			Qt, err := matrix.Transpose(Q)
			require.NoError(t, err)
			QtQ, err := matrix.Mul(Qt, Q)
			require.NoError(t, err)
			id, err := matrix.NewIdentity(n)
			require.NoError(t, err)
			CompareClose(t, QtQ, id, 0, 1e-9)
		}
	}
}

func TestEigenSym_AgreesWithGonum(t *testing.T) {
	t.Parallel()

	const n = 6
	A := RandSymmetric(t, n, 42)
	vals, _, err := matrix.EigenSym(A)
	require.NoError(t, err)
	sort.Float64s(vals)

	sym, err := matrix.ToSymDense(A, 0)
	require.NoError(t, err)
	var es mat.EigenSym
	require.True(t, es.Factorize(sym, false))
	sliceClose(t, vals, es.Values(nil), 0, 1e-9)
}

func TestEigenSym_Errors(t *testing.T) {
	t.Parallel()

	_, _, err := matrix.EigenSym(MustDense(t, 2, 3))
	require.ErrorIs(t, err, matrix.ErrNonSquare)

	_, _, err = matrix.EigenSym(NewFilledDense(t, 2, 2, []float64{1, 2, 3, 4}))
	require.ErrorIs(t, err, matrix.ErrAsymmetry)

	_, _, err = matrix.EigenSym(NewFilledDense(t, 2, 2, []float64{1e-12, 1e-10, 0, 1e-12}))
	require.ErrorIs(t, err, matrix.ErrAsymmetry, "tolerance is relative to max|a_ij|")

	_, _, err = matrix.EigenSym(NewFilledDense(t, 2, 2, []float64{1, math.Inf(1), math.Inf(1), 4}))
	require.ErrorIs(t, err, matrix.ErrNaNInf)

	// Nine rotations cannot drive every off-diagonal of a dense 3×3 matrix
	// to exactly zero.
	A := NewFilledDense(t, 3, 3, []float64{
		4, 1, 2,
		1, 3, 1,
		2, 1, 5,
	})
	_, _, err = matrix.EigenSym(A, matrix.WithMaxSweeps(1), matrix.WithEpsilon(0))
	require.ErrorIs(t, err, matrix.ErrEigenFailed)
}
