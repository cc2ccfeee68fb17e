// SPDX-License-Identifier: MIT

package pca_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pca/matrix"
)

// randRows returns n samples of d features. Feature j is scaled by (j+1) and
// mixed with feature 0, so the covariance has distinct eigenvalues.
func randRows(n, d int, seed int64) [][]float64 {
	rng := rand.New(rand.NewSource(seed))
	rows := make([][]float64, n)
	for i := range rows {
		rows[i] = make([]float64, d)
		base := rng.NormFloat64()
		for j := 0; j < d; j++ {
			rows[i][j] = float64(j+1)*rng.NormFloat64() + 0.5*base + float64(j)
		}
	}

	return rows
}

// scaleRows returns a copy of rows with every value multiplied by f.
func scaleRows(rows [][]float64, f float64) [][]float64 {
	out := make([][]float64, len(rows))
	for i, r := range rows {
		out[i] = make([]float64, len(r))
		for j, v := range r {
			out[i][j] = v * f
		}
	}

	return out
}

// requireOrthonormalColumns asserts VᵀV ≈ I.
func requireOrthonormalColumns(t *testing.T, v *matrix.Dense, tol float64) {
	t.Helper()
	_, c := v.Shape()
	for a := 0; a < c; a++ {
		for b := a; b < c; b++ {
			want := 0.0
			if a == b {
				want = 1.0
			}
			require.InDeltaf(t, want, dot(v.Col(a), v.Col(b)), tol, "<v%d, v%d>", a, b)
		}
	}
}

// requireRowsClose compares two row sets element-wise.
func requireRowsClose(t *testing.T, want, got [][]float64, tol float64) {
	t.Helper()
	require.Len(t, got, len(want))
	for i := range want {
		require.InDeltaSlicef(t, want[i], got[i], tol, "row %d", i)
	}
}

// requireColumnsEqualUpToSign compares the columns of two n×k row sets,
// allowing each column to differ by a global sign.
func requireColumnsEqualUpToSign(t *testing.T, want, got [][]float64, tol float64) {
	t.Helper()
	require.Len(t, got, len(want))
	if len(want) == 0 {
		return
	}
	k := len(want[0])
	for j := 0; j < k; j++ {
		var s float64
		for i := range want {
			s += want[i][j] * got[i][j]
		}
		sign := 1.0
		if s < 0 {
			sign = -1.0
		}
		for i := range want {
			require.InDeltaf(t, want[i][j], sign*got[i][j], tol, "sample %d, component %d", i, j)
		}
	}
}

func dot(a, b []float64) float64 {
	var s float64
	for i := range a {
		s += a[i] * b[i]
	}

	return s
}

func columnMean(rows [][]float64, j int) float64 {
	var s float64
	for _, r := range rows {
		s += r[j]
	}

	return s / float64(len(rows))
}

func maxAbsDiff(a, b []float64) float64 {
	var m float64
	for i := range a {
		m = math.Max(m, math.Abs(a[i]-b[i]))
	}

	return m
}
