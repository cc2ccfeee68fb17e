// SPDX-License-Identifier: MIT
// Package pca: sentinel error set.
// Every failure surfaced by this package matches exactly one of the sentinels
// below via errors.Is. When the cause comes from the matrix package, both the
// pca sentinel and the matrix sentinel are kept in the chain, so callers can
// match at either level.

package pca

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidShape is returned when the input does not form a valid
	// n×d dataset (ragged rows, d = 0, n < 2 for covariance), when k is
	// outside 0..d, or when stage operands disagree on their shared dimension.
	ErrInvalidShape = errors.New("pca: invalid shape")

	// ErrNumericFailure is returned when the spectral decomposition cannot be
	// computed: non-finite values in the covariance matrix or a solver that
	// fails to converge.
	ErrNumericFailure = errors.New("pca: numeric failure")
)

// shapeErrorf builds an ErrInvalidShape error tagged with op.
func shapeErrorf(op, format string, args ...any) error {
	return fmt.Errorf("%s: %s: %w", op, fmt.Sprintf(format, args...), ErrInvalidShape)
}

// wrapShape tags a matrix-level cause as ErrInvalidShape, keeping both in the chain.
func wrapShape(op string, cause error) error {
	return fmt.Errorf("%s: %w: %w", op, ErrInvalidShape, cause)
}

// wrapNumeric tags a matrix-level cause as ErrNumericFailure, keeping both in the chain.
func wrapNumeric(op string, cause error) error {
	return fmt.Errorf("%s: %w: %w", op, ErrNumericFailure, cause)
}
