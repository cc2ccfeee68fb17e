// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep algorithmic determinism (fixed loop orders, no map iteration).
//   - Support copy-based submatrix extraction (Induced) used for column
//     permutation and truncation of eigenvector bases.
//
// Zero-size shapes (0×c, r×0) are legal: a d×0 basis and an n×0 projection
// are valid results of a rank-0 reduction.
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set: O(1); Clone: O(r*c); Induced: O(r'*c').

package matrix

import (
	"fmt"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt      = "At"       // method tag used in error wrappers
	ctxSet     = "Set"      // method tag used in error wrappers
	ctxInduce  = "Induced"  // ctor/tag for Dense.Induced
	ctxFrom    = "FromRows" // ctor/tag for FromRows
	ctxNewFrom = "NewDenseFrom"
)

// ---------- Formatting literals  ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix.
//   - r,c hold dimensions (rows, cols).
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
type Dense struct {
	r, c int
	data []float64
}

// Compile-time check.
var _ Matrix = (*Dense)(nil)

// NewDense allocates a zero-filled rows×cols matrix.
// Zero rows or zero cols are legal; negative dimensions return ErrBadShape.
// Complexity: O(rows*cols).
func NewDense(rows, cols int) (*Dense, error) {
	// Validate shape.
	if rows < 0 || cols < 0 {
		return nil, ErrBadShape
	}
	// Allocate a contiguous flat buffer; make() zero-fills it deterministically.
	return &Dense{r: rows, c: cols, data: make([]float64, rows*cols)}, nil
}

// NewDenseFrom builds a rows×cols matrix from a row-major flat slice.
// The slice is copied; later changes to data do not affect the matrix.
//
// Errors:
//   - ErrBadShape if rows/cols are negative or len(data) != rows*cols.
func NewDenseFrom(rows, cols int, data []float64) (*Dense, error) {
	if rows < 0 || cols < 0 || len(data) != rows*cols {
		return nil, matrixErrorf(ctxNewFrom, ErrBadShape)
	}
	m := &Dense{r: rows, c: cols, data: make([]float64, len(data))}
	copy(m.data, data)

	return m, nil
}

// FromRows builds a len(rows)×len(rows[0]) matrix, one input row per matrix row.
// Implementation:
//   - Stage 1: reject ragged input (every row must match the first row's length).
//   - Stage 2: copy values into the flat buffer in i→j order.
//
// Behavior highlights:
//   - Empty input yields a 0×0 matrix.
//   - Rows of length zero yield an n×0 matrix.
//
// Errors:
//   - ErrRaggedRows (wrapped with the offending row index).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func FromRows(rows [][]float64) (*Dense, error) {
	r := len(rows)
	if r == 0 {
		return &Dense{}, nil
	}
	c := len(rows[0])

	// Stage 1: shape validation.
	var i int
	for i = 1; i < r; i++ {
		if len(rows[i]) != c {
			return nil, fmt.Errorf("%s: row %d has %d values, want %d: %w",
				ctxFrom, i, len(rows[i]), c, ErrRaggedRows)
		}
	}

	// Stage 2: copy.
	m := &Dense{r: r, c: c, data: make([]float64, r*c)}
	for i = 0; i < r; i++ {
		copy(m.data[i*c:(i+1)*c], rows[i])
	}

	return m, nil
}

// Rows returns the row count. No side effects.
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count. No side effects.
func (m *Dense) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call for convenience.
func (m *Dense) Shape() (rows, cols int) { return m.r, m.c }

// indexOf computes the row-major offset or returns ErrOutOfRange.
// Public methods (At/Set) wrap the sentinel with coordinates and method name.
func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	// Row-major offset: i*c + j.
	return row*m.c + col, nil
}

// At returns the value at (row, col) or ErrOutOfRange.
// Complexity: O(1).
func (m *Dense) At(row, col int) (float64, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf(ctxAt, row, col, err) // wrap with context
	}

	return m.data[off], nil
}

// Set stores v at (row, col) or returns ErrOutOfRange.
// Complexity: O(1).
func (m *Dense) Set(row, col int, v float64) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	m.data[off] = v

	return nil
}

// Clone returns a deep copy; the dynamic type of the result is *Dense.
func (m *Dense) Clone() Matrix {
	cp := make([]float64, len(m.data)) // allocate same length
	copy(cp, m.data)                   // deep copy

	return &Dense{r: m.r, c: m.c, data: cp}
}

// Row returns a copy of row i, or nil when i is out of range.
func (m *Dense) Row(i int) []float64 {
	if i < 0 || i >= m.r {
		return nil
	}
	out := make([]float64, m.c)
	copy(out, m.data[i*m.c:(i+1)*m.c])

	return out
}

// Col returns a copy of column j, or nil when j is out of range.
func (m *Dense) Col(j int) []float64 {
	if j < 0 || j >= m.c {
		return nil
	}
	out := make([]float64, m.r)
	for i := 0; i < m.r; i++ {
		out[i] = m.data[i*m.c+j]
	}

	return out
}

// ToRows materializes the matrix as a slice of independent row slices.
// A matrix with zero columns yields r empty (non-nil) rows.
func (m *Dense) ToRows() [][]float64 {
	out := make([][]float64, m.r)
	for i := 0; i < m.r; i++ {
		out[i] = m.Row(i)
	}

	return out
}

// RawData returns a copy of the row-major buffer.
func (m *Dense) RawData() []float64 {
	out := make([]float64, len(m.data))
	copy(out, m.data)

	return out
}

// String HUMAN-READABLE dump of rows for diagnostics.
// Not for hot paths; intended for logs and debugging.
func (m *Dense) String() string {
	var b strings.Builder
	var i, j, base int
	for i = 0; i < m.r; i++ { // iterate rows deterministically
		b.WriteString(_fmtRowOpen) // open row
		base = i * m.c
		for j = 0; j < m.c; j++ { // iterate cols
			b.WriteString(fmt.Sprintf("%g", m.data[base+j]))
			if j+1 < m.c {
				b.WriteString(_fmtSep) // separate values with comma + space
			}
		}
		b.WriteString(_fmtRowClose) // close row
	}

	return b.String()
}

// Induced materializes the submatrix selected by rowsIdx × colsIdx (copy).
// Implementation:
//   - Stage 1: validate every index against the base shape.
//   - Stage 2: copy m[rowsIdx[i], colsIdx[j]] into out[i,j].
//
// Behavior highlights:
//   - Indices may repeat and appear in any order, so Induced doubles as a
//     column permutation (reorder eigenvectors) and a truncation (keep the
//     first k columns).
//   - nil rowsIdx selects every row in order; empty colsIdx yields r×0.
//
// Errors:
//   - ErrOutOfRange (wrapped with the offending index).
//
// Complexity:
//   - Time O(len(rowsIdx)*len(colsIdx)), Space O(same).
func (m *Dense) Induced(rowsIdx, colsIdx []int) (*Dense, error) {
	if rowsIdx == nil {
		rowsIdx = make([]int, m.r)
		for i := range rowsIdx {
			rowsIdx[i] = i
		}
	}

	// Stage 1: validate indices.
	for _, ri := range rowsIdx {
		if ri < 0 || ri >= m.r {
			return nil, denseErrorf(ctxInduce, ri, 0, ErrOutOfRange)
		}
	}
	for _, cj := range colsIdx {
		if cj < 0 || cj >= m.c {
			return nil, denseErrorf(ctxInduce, 0, cj, ErrOutOfRange)
		}
	}

	// Stage 2: copy.
	r, c := len(rowsIdx), len(colsIdx)
	out := &Dense{r: r, c: c, data: make([]float64, r*c)}
	var i, j int
	for i = 0; i < r; i++ {
		src := rowsIdx[i] * m.c
		dst := i * c
		for j = 0; j < c; j++ {
			out.data[dst+j] = m.data[src+colsIdx[j]]
		}
	}

	return out, nil
}
