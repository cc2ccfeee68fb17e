// SPDX-License-Identifier: MIT
// Package: pca
//
// Purpose:
//   - Orchestrate Centering → Covariance → Spectral Decomposition → Projection.
//   - Run is the pure entry point and returns every intermediate artifact in
//     a Result; PCA is a thin stateful wrapper that keeps the last Result.

package pca

import (
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/pca/matrix"
)

const opRun = "Run"

// Result holds every artifact of one PCA run.
type Result struct {
	// Input is the n×d dataset as given.
	Input SampleMajor
	// Means are the d column means removed by centering.
	Means []float64
	// Centered is Input with Means subtracted.
	Centered SampleMajor
	// Covariance is the d×d unbiased sample covariance.
	Covariance *matrix.Dense
	// Spectrum holds the unsorted, sorted and retained decomposition.
	Spectrum *Spectrum
	// Reduced is the n×k projection of Centered onto Spectrum.Retained.
	Reduced SampleMajor
}

// ReducedRows returns the reduced data with one row of k coordinates per sample.
func (r *Result) ReducedRows() [][]float64 { return r.Reduced.Rows() }

// RetainedComponents returns the k retained directions with their variances.
func (r *Result) RetainedComponents() []Component { return r.Spectrum.Components() }

// ExplainedVarianceRatio returns, for each retained direction, the fraction
// of total variance it carries. All ratios are zero when the total is zero.
func (r *Result) ExplainedVarianceRatio() []float64 {
	var total float64
	for _, v := range r.Spectrum.SortedValues {
		total += v
	}
	k := r.Spectrum.K()
	out := make([]float64, k)
	if total <= 0 {
		return out
	}
	for i := 0; i < k; i++ {
		out[i] = r.Spectrum.SortedValues[i] / total
	}

	return out
}

// Run reduces datapoints (one row per sample) to k dimensions.
//
// Empty input (nil or zero rows) is a no-op and returns (nil, nil).
//
// Errors:
//   - ErrInvalidShape: ragged rows, zero features, fewer than two samples, or
//     k outside [0, d]; reported before any computation.
//   - ErrNumericFailure: non-finite data or solver failure.
func Run(datapoints [][]float64, k int, opts ...Option) (*Result, error) {
	if len(datapoints) == 0 {
		return nil, nil
	}
	o := gatherOptions(opts...)

	input, err := NewSampleMajor(datapoints)
	if err != nil {
		return nil, err
	}
	n, d := input.Samples(), input.Features()
	if d == 0 {
		return nil, shapeErrorf(opRun, "samples have no features")
	}
	if n < 2 {
		return nil, shapeErrorf(opRun, "need at least two samples, got %d", n)
	}
	if k < 0 || k > d {
		return nil, shapeErrorf(opRun, "k=%d outside [0, %d]", k, d)
	}
	log := o.logger.WithFields(logrus.Fields{
		"samples":  n,
		"features": d,
		"k":        k,
		"solver":   o.solver.String(),
	})

	centered, means, err := MeanNormalization(input)
	if err != nil {
		return nil, err
	}
	log.Debug("centered input")

	covar, err := CovarianceMatrix(centered)
	if err != nil {
		return nil, err
	}
	log.Debug("computed covariance")

	spectrum, err := SortedEigenvectors(covar, k, opts...)
	if err != nil {
		return nil, err
	}
	log.WithField("leading_variance", spectrum.SortedValues[0]).Debug("decomposed covariance")

	reduced, err := Project(spectrum.Retained, centered)
	if err != nil {
		return nil, err
	}
	log.Debug("projected samples")

	return &Result{
		Input:      input,
		Means:      means,
		Centered:   centered,
		Covariance: covar,
		Spectrum:   spectrum,
		Reduced:    reduced,
	}, nil
}

// PCA runs the pipeline with a fixed option set and keeps the latest Result.
// A PCA must not be used from several goroutines at once.
type PCA struct {
	opts []Option
	last *Result
}

// New returns a PCA configured with opts.
func New(opts ...Option) *PCA {
	return &PCA{opts: opts}
}

// Execute reduces datapoints to k dimensions and returns one row of k
// coordinates per sample. Empty input returns (nil, nil) and clears the
// stored Result; on error the stored Result is cleared as well.
func (p *PCA) Execute(datapoints [][]float64, k int) ([][]float64, error) {
	res, err := Run(datapoints, k, p.opts...)
	p.last = res
	if err != nil || res == nil {
		return nil, err
	}

	return res.ReducedRows(), nil
}

// Result returns the artifacts of the latest Execute call, or nil.
func (p *PCA) Result() *Result { return p.last }
