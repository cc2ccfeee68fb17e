// SPDX-License-Identifier: MIT
// Package: pca
//
// Purpose:
//   - Functional options for the stages and the orchestrator.
//   - Defaults are declared once as Default* values and resolved in
//     gatherOptions; every public entry point accepts ...Option.

package pca

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/sirupsen/logrus"
)

// Solver selects the routine that factors the covariance matrix.
type Solver int

const (
	// SolverSVD factors the covariance with a singular value decomposition.
	// Valid only because the covariance is symmetric positive-semidefinite:
	// singular values then equal eigenvalues and U holds the eigenvectors.
	SolverSVD Solver = iota

	// SolverEigenSym uses LAPACK's symmetric eigensolver. Eigenvalues come
	// back ascending and are re-sorted like every other solver's output.
	SolverEigenSym

	// SolverJacobi uses the in-module Jacobi rotation solver.
	SolverJacobi
)

var solverNames = [...]string{
	SolverSVD:      "svd",
	SolverEigenSym: "eigensym",
	SolverJacobi:   "jacobi",
}

// String returns the lower-case solver name used by ParseSolver and the CLI.
func (s Solver) String() string {
	if s < 0 || int(s) >= len(solverNames) {
		return fmt.Sprintf("Solver(%d)", int(s))
	}

	return solverNames[s]
}

// ParseSolver maps a solver name (case-insensitive) back to its Solver.
func ParseSolver(name string) (Solver, error) {
	for i, n := range solverNames {
		if strings.EqualFold(name, n) {
			return Solver(i), nil
		}
	}

	return 0, fmt.Errorf("pca: unknown solver %q (want one of %s)", name, strings.Join(solverNames[:], ", "))
}

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultSolver mirrors the reference pipeline, which factors the
	// covariance with an SVD.
	DefaultSolver = SolverSVD

	// DefaultEpsilon is the relative tolerance applied to the covariance
	// matrix: |c_ij - c_ji| ≤ eps·max|c|. The Jacobi solver also stops once
	// every off-diagonal magnitude is at most eps·max|c|.
	DefaultEpsilon = 1e-9

	// DefaultJacobiSweeps bounds the Jacobi solver (rotations ≤ sweeps·d²).
	DefaultJacobiSweeps = 100

	// DefaultCanonicalSigns leaves directions oriented as the solver emits them.
	DefaultCanonicalSigns = false
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicEpsilonInvalid = "pca: WithEpsilon: eps must be finite, non-negative"
	panicSweepsInvalid  = "pca: WithJacobiSweeps: sweeps must be > 0"
	panicSolverInvalid  = "pca: WithSolver: unknown solver"
)

// Option mutates internal options. Constructors panic only on programmer error.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	solver         Solver
	eps            float64
	jacobiSweeps   int
	canonicalSigns bool
	logger         logrus.FieldLogger
}

// WithSolver selects the decomposition routine.
func WithSolver(s Solver) Option {
	if s < 0 || int(s) >= len(solverNames) {
		panic(panicSolverInvalid)
	}

	return func(o *Options) { o.solver = s }
}

// WithEpsilon sets the relative tolerance for the covariance symmetry check
// and the Jacobi convergence test. Both scale with max|c_ij|.
func WithEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// WithJacobiSweeps sets the rotation budget of SolverJacobi.
func WithJacobiSweeps(sweeps int) Option {
	if sweeps <= 0 {
		panic(panicSweepsInvalid)
	}

	return func(o *Options) { o.jacobiSweeps = sweeps }
}

// WithCanonicalSigns flips every direction so that its largest-magnitude
// component is positive (the first such component on ties). Eigenvectors are
// only defined up to sign; this makes results reproducible across solvers.
func WithCanonicalSigns() Option {
	return func(o *Options) { o.canonicalSigns = true }
}

// WithLogger routes stage-level debug logging to l. A nil l keeps the default
// discarding logger.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *Options) {
		if l != nil {
			o.logger = l
		}
	}
}

// gatherOptions applies user-provided setters on top of defaults
// (last-writer-wins).
func gatherOptions(user ...Option) Options {
	o := Options{
		solver:         DefaultSolver,
		eps:            DefaultEpsilon,
		jacobiSweeps:   DefaultJacobiSweeps,
		canonicalSigns: DefaultCanonicalSigns,
		logger:         discardLogger(),
	}
	for _, set := range user {
		set(&o)
	}

	return o
}

func discardLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)

	return l
}
