// SPDX-License-Identifier: MIT
// Package dataset loads and writes delimited numeric tables: one sample per
// line, one feature per field.
//
// Blank lines and lines starting with '#' are skipped. Every record must have
// the same number of fields; every field must parse as a float64.
package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

var (
	// ErrRagged is returned when a record's field count differs from the first record's.
	ErrRagged = errors.New("dataset: ragged rows")

	// ErrParse is returned when a field is not a valid number.
	ErrParse = errors.New("dataset: parse error")

	// ErrEmptyField is returned for an empty field between two delimiters.
	ErrEmptyField = errors.New("dataset: empty field")
)

// DefaultDelimiter separates fields when no WithDelimiter option is given.
const DefaultDelimiter = '\t'

// Option configures Read and ReadFile.
type Option func(*options)

type options struct {
	delim   rune
	comment rune
}

// WithDelimiter sets the field separator.
func WithDelimiter(r rune) Option {
	return func(o *options) { o.delim = r }
}

// WithComment sets the comment-line prefix; 0 disables comments.
func WithComment(r rune) Option {
	return func(o *options) { o.comment = r }
}

func gatherOptions(user ...Option) options {
	o := options{delim: DefaultDelimiter, comment: '#'}
	for _, set := range user {
		set(&o)
	}

	return o
}

// Read parses a delimited table from r. An input with no records yields an
// empty, non-nil slice.
func Read(r io.Reader, opts ...Option) ([][]float64, error) {
	o := gatherOptions(opts...)

	cr := csv.NewReader(r)
	cr.Comma = o.delim
	cr.Comment = o.comment
	cr.FieldsPerRecord = 0
	cr.ReuseRecord = true

	rows := make([][]float64, 0)
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			if errors.Is(err, csv.ErrFieldCount) {
				return nil, fmt.Errorf("%w: %w", ErrRagged, err)
			}
			return nil, fmt.Errorf("dataset: read: %w", err)
		}

		line, _ := cr.FieldPos(0)
		row := make([]float64, len(rec))
		for j, field := range rec {
			field = strings.TrimSpace(field)
			if field == "" {
				return nil, fmt.Errorf("line %d, field %d: %w", line, j+1, ErrEmptyField)
			}
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, fmt.Errorf("line %d, field %d: %w: %w", line, j+1, ErrParse, err)
			}
			row[j] = v
		}
		rows = append(rows, row)
	}

	return rows, nil
}

// ReadFile opens path and parses it with Read.
func ReadFile(path string, opts ...Option) ([][]float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("dataset: %w", err)
	}
	defer f.Close()

	return Read(f, opts...)
}

// Write emits rows as a delimited table, formatting each value with the
// shortest representation that round-trips.
func Write(w io.Writer, rows [][]float64, delim rune) error {
	cw := csv.NewWriter(w)
	cw.Comma = delim

	var rec []string
	for _, row := range rows {
		rec = rec[:0]
		for _, v := range row {
			rec = append(rec, strconv.FormatFloat(v, 'g', -1, 64))
		}
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("dataset: write: %w", err)
		}
	}
	cw.Flush()

	return cw.Error()
}
