// SPDX-License-Identifier: MIT

package pca

import (
	"github.com/katalvlaran/pca/matrix"
)

const opCovarianceMatrix = "CovarianceMatrix"

// CovarianceMatrix returns the d×d unbiased sample covariance of the features
// of x.
//
// The computation is carried out feature-major: with F the d×n centered
// FeatureMajor view of x, C = F·Fᵀ / (n-1), so C[i][j] is the covariance of
// feature i with feature j. x does not need to be centered beforehand;
// centering is idempotent.
//
// Errors:
//   - ErrInvalidShape if x has fewer than two samples or no features.
func CovarianceMatrix(x SampleMajor) (*matrix.Dense, error) {
	n, d := x.Samples(), x.Features()
	if n < 2 || d == 0 {
		return nil, shapeErrorf(opCovarianceMatrix,
			"need at least two samples and one feature, got %d×%d", n, d)
	}

	centered, _, err := MeanNormalization(x)
	if err != nil {
		return nil, err
	}
	f := centered.FeatureMajor()

	ft, err := matrix.Transpose(f.Matrix())
	if err != nil {
		return nil, wrapShape(opCovarianceMatrix, err)
	}
	g, err := matrix.Mul(f.Matrix(), ft)
	if err != nil {
		return nil, wrapShape(opCovarianceMatrix, err)
	}
	c, err := matrix.Scale(g, 1.0/float64(n-1))
	if err != nil {
		return nil, wrapShape(opCovarianceMatrix, err)
	}

	return toDense(c), nil
}
