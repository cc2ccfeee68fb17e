// SPDX-License-Identifier: MIT
// Package: pca
//
// Purpose:
//   - Make the row/column convention explicit at every stage boundary.
//     SampleMajor keeps one sample per row (n×d), the natural input/output
//     layout; FeatureMajor keeps one feature per row (d×n), the layout the
//     covariance formula C = F·Fᵀ/(n-1) is written in. Converting between the
//     two is a named method, never a bare transpose.
//   - Spectrum records the decomposition in both solver order and sorted order.

package pca

import (
	"github.com/katalvlaran/pca/matrix"
)

// SampleMajor is an n×d dataset with one sample per row.
// The zero value is an empty 0×0 dataset.
type SampleMajor struct {
	m *matrix.Dense
}

// FeatureMajor is a d×n dataset with one feature per row.
type FeatureMajor struct {
	m *matrix.Dense
}

// NewSampleMajor copies rows into a SampleMajor.
// Ragged rows are rejected with ErrInvalidShape.
func NewSampleMajor(rows [][]float64) (SampleMajor, error) {
	d, err := matrix.FromRows(rows)
	if err != nil {
		return SampleMajor{}, wrapShape("NewSampleMajor", err)
	}

	return SampleMajor{m: d}, nil
}

// Samples returns n.
func (s SampleMajor) Samples() int { return s.dense().Rows() }

// Features returns d.
func (s SampleMajor) Features() int { return s.dense().Cols() }

// Matrix returns the underlying n×d matrix. Callers must not modify it.
func (s SampleMajor) Matrix() *matrix.Dense { return s.dense() }

// Rows copies the dataset out as one slice per sample.
func (s SampleMajor) Rows() [][]float64 { return s.dense().ToRows() }

// FeatureMajor returns the d×n transpose of s.
func (s SampleMajor) FeatureMajor() FeatureMajor {
	t, _ := matrix.Transpose(s.dense()) // non-nil by construction
	return FeatureMajor{m: t.(*matrix.Dense)}
}

func (s SampleMajor) dense() *matrix.Dense {
	if s.m == nil {
		z, _ := matrix.NewDense(0, 0)
		return z
	}

	return s.m
}

// Features returns d.
func (f FeatureMajor) Features() int { return f.dense().Rows() }

// Samples returns n.
func (f FeatureMajor) Samples() int { return f.dense().Cols() }

// Matrix returns the underlying d×n matrix. Callers must not modify it.
func (f FeatureMajor) Matrix() *matrix.Dense { return f.dense() }

// SampleMajor returns the n×d transpose of f.
func (f FeatureMajor) SampleMajor() SampleMajor {
	t, _ := matrix.Transpose(f.dense())
	return SampleMajor{m: t.(*matrix.Dense)}
}

func (f FeatureMajor) dense() *matrix.Dense {
	if f.m == nil {
		z, _ := matrix.NewDense(0, 0)
		return z
	}

	return f.m
}

// Spectrum is the output of the spectral decomposition stage.
//
// Every direction matrix stores one direction per COLUMN (d rows).
type Spectrum struct {
	// Values and Vectors are the decomposition as the solver produced it:
	// Values[i] is the variance along column i of Vectors.
	Values  []float64
	Vectors *matrix.Dense

	// Order is the permutation applied to reach sorted order:
	// SortedValues[i] == Values[Order[i]].
	Order []int

	// SortedValues is non-increasing; SortedVectors holds the matching columns.
	SortedValues  []float64
	SortedVectors *matrix.Dense

	// Retained is the first k columns of SortedVectors (d×k).
	Retained *matrix.Dense
}

// K returns the number of retained directions.
func (s *Spectrum) K() int { return s.Retained.Cols() }

// Component is one principal direction with the variance along it.
type Component struct {
	Variance  float64
	Direction []float64
}

// Components returns the retained directions in decreasing-variance order.
func (s *Spectrum) Components() []Component {
	k := s.K()
	out := make([]Component, k)
	for i := 0; i < k; i++ {
		out[i] = Component{Variance: s.SortedValues[i], Direction: s.Retained.Col(i)}
	}

	return out
}

// toDense returns m as *matrix.Dense, copying when m is another implementation.
func toDense(m matrix.Matrix) *matrix.Dense {
	if d, ok := m.(*matrix.Dense); ok {
		return d
	}
	r, c := m.Rows(), m.Cols()
	d, _ := matrix.NewDense(r, c)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			v, _ := m.At(i, j)
			_ = d.Set(i, j, v)
		}
	}

	return d
}
