// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Functional options for the iterative kernels (Jacobi eigensolver).
//   - Defaults live in Default* constants; gatherOptions is the single place
//     where user setters are applied on top of them.

package matrix

import "math"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultEpsilon is the relative symmetry tolerance and the relative
	// Jacobi convergence threshold; both are multiplied by max|m_ij|.
	DefaultEpsilon = 1e-10

	// DefaultMaxSweeps caps Jacobi rotations at DefaultMaxSweeps·n² so the
	// solver always terminates.
	DefaultMaxSweeps = 100
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicEpsilonInvalid   = "matrix: WithEpsilon: eps must be finite, non-negative"
	panicMaxSweepsInvalid = "matrix: WithMaxSweeps: sweeps must be > 0"
)

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	eps       float64 // >= 0; DefaultEpsilon
	maxSweeps int     // > 0; DefaultMaxSweeps
}

// WithEpsilon sets the relative tolerance used by the Jacobi symmetry check
// and convergence test. Panics when eps is negative or not finite.
func WithEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// WithMaxSweeps sets the Jacobi sweep cap. Panics when sweeps <= 0.
func WithMaxSweeps(sweeps int) Option {
	if sweeps <= 0 {
		panic(panicMaxSweepsInvalid)
	}

	return func(o *Options) { o.maxSweeps = sweeps }
}

// gatherOptions applies user-provided setters on top of defaults
// (last-writer-wins).
func gatherOptions(user ...Option) Options {
	o := Options{
		eps:       DefaultEpsilon,
		maxSweeps: DefaultMaxSweeps,
	}
	for _, set := range user {
		set(&o)
	}

	return o
}
