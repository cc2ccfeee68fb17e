// SPDX-License-Identifier: MIT

package pca

import (
	"github.com/katalvlaran/pca/matrix"
)

const (
	opProject     = "Project"
	opReconstruct = "Reconstruct"
)

// Project maps centered samples onto the retained directions:
// reduced = centered · retained, an n×k SampleMajor.
//
// retained holds one direction per column (d×k), exactly as returned in
// Spectrum.Retained. A d×0 basis yields n samples of length 0.
//
// Errors:
//   - ErrInvalidShape if retained is nil or its row count differs from the
//     feature count of centered.
func Project(retained *matrix.Dense, centered SampleMajor) (SampleMajor, error) {
	if retained == nil {
		return SampleMajor{}, wrapShape(opProject, matrix.ErrNilMatrix)
	}
	if retained.Rows() != centered.Features() {
		return SampleMajor{}, shapeErrorf(opProject,
			"basis has %d rows, samples have %d features", retained.Rows(), centered.Features())
	}

	reduced, err := matrix.Mul(centered.Matrix(), retained)
	if err != nil {
		return SampleMajor{}, wrapShape(opProject, err)
	}

	return SampleMajor{m: toDense(reduced)}, nil
}

// Reconstruct maps reduced coordinates back to feature space:
// reduced · retainedᵀ + means. With k = d it inverts Project followed by
// MeanNormalization up to rounding; with k < d it yields the closest
// point in the retained subspace.
//
// Errors:
//   - ErrInvalidShape if reduced, retained and means disagree on k or d.
func Reconstruct(reduced SampleMajor, retained *matrix.Dense, means []float64) (SampleMajor, error) {
	if retained == nil {
		return SampleMajor{}, wrapShape(opReconstruct, matrix.ErrNilMatrix)
	}
	if reduced.Features() != retained.Cols() {
		return SampleMajor{}, shapeErrorf(opReconstruct,
			"reduced has %d components, basis has %d", reduced.Features(), retained.Cols())
	}
	if len(means) != retained.Rows() {
		return SampleMajor{}, shapeErrorf(opReconstruct,
			"got %d means for %d features", len(means), retained.Rows())
	}

	rt, err := matrix.Transpose(retained)
	if err != nil {
		return SampleMajor{}, wrapShape(opReconstruct, err)
	}
	back, err := matrix.Mul(reduced.Matrix(), rt)
	if err != nil {
		return SampleMajor{}, wrapShape(opReconstruct, err)
	}
	out, err := matrix.AddColumnVector(back, means)
	if err != nil {
		return SampleMajor{}, wrapShape(opReconstruct, err)
	}

	return SampleMajor{m: toDense(out)}, nil
}
