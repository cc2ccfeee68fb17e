// SPDX-License-Identifier: MIT

package pca

import (
	"github.com/katalvlaran/pca/matrix"
)

const opMeanNormalization = "MeanNormalization"

// MeanNormalization subtracts each feature's mean from its column.
//
// It returns a new n×d SampleMajor whose columns average to zero, together
// with the d column means (needed by Reconstruct). x is not modified.
//
// Errors:
//   - ErrInvalidShape if x has no samples or no features.
func MeanNormalization(x SampleMajor) (SampleMajor, []float64, error) {
	if x.Samples() == 0 || x.Features() == 0 {
		return SampleMajor{}, nil, shapeErrorf(opMeanNormalization,
			"need at least one sample and one feature, got %d×%d", x.Samples(), x.Features())
	}

	centered, means, err := matrix.CenterColumns(x.Matrix())
	if err != nil {
		return SampleMajor{}, nil, wrapShape(opMeanNormalization, err)
	}

	return SampleMajor{m: toDense(centered)}, means, nil
}
