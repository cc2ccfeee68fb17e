// SPDX-License-Identifier: MIT
// Package scatter prepares the point sets for a 3-D before/after comparison
// of a PCA run: the original samples by their first three features and the
// reduced samples by their first two components, lying in the z = 0 plane.
//
// The package only selects and pads coordinates. Rendering is left to any
// tool that reads the JSON written by Plot.Encode.
package scatter

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/katalvlaran/pca/pca"
)

// ErrNoResult is returned by Build when given a nil Result.
var ErrNoResult = errors.New("scatter: no result")

// Point is one sample in 3-D.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// Plot holds both point sets, index-aligned: Original[i] and Projected[i]
// are the same sample.
type Plot struct {
	Original  []Point `json:"original"`
	Projected []Point `json:"projected"`
}

// Build extracts the comparison point sets from res. Samples with fewer than
// three features, or a reduction to fewer than two components, are padded
// with zeros.
func Build(res *pca.Result) (*Plot, error) {
	if res == nil {
		return nil, ErrNoResult
	}

	in := res.Input.Rows()
	out := res.ReducedRows()
	p := &Plot{
		Original:  make([]Point, len(in)),
		Projected: make([]Point, len(out)),
	}
	for i, row := range in {
		p.Original[i] = Point{X: at(row, 0), Y: at(row, 1), Z: at(row, 2)}
	}
	for i, row := range out {
		p.Projected[i] = Point{X: at(row, 0), Y: at(row, 1)}
	}

	return p, nil
}

// Encode writes p as indented JSON.
func (p *Plot) Encode(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(p); err != nil {
		return fmt.Errorf("scatter: encode: %w", err)
	}

	return nil
}

func at(row []float64, j int) float64 {
	if j < len(row) {
		return row[j]
	}

	return 0
}
