// Package formrow reconstructs ordered, fixed-width rows out of the flat
// field names a dynamic form grid posts. A grid of unknown length arrives
// as one key-value pair per cell; the layout of a branch says how cells
// name themselves and how wide a row is.
package formrow

import (
	"fmt"
	"net/url"
	"regexp"
	"sort"
	"strconv"

	"github.com/astoulakis/onboard/internal/pkg/constants"
)

type Mode int

const (
	// ModeIndexed parses an explicit row index out of every field name
	// ({prefix}{i}-input{j}). Indices may be sparse or unsorted; rows come
	// out in ascending index order.
	ModeIndexed Mode = iota
	// ModePositional collects {prefix}{n} fields ordered by a numeric sort
	// on n and partitions them into Width-size chunks. The sort keeps row
	// alignment independent of the client's field order.
	ModePositional
	// ModeNamed builds row i from the i-th value of each repeated field
	// name in Columns.
	ModeNamed
)

type Layout struct {
	Mode    Mode
	Prefix  string
	Width   int
	Columns []string
}

type Row []string

type Rows []Row

// Decode turns the flat form values into ordered rows. It fails with
// ErrMalformedRowData when the cells do not tile into complete rows; the
// caller must then abort the step before anything is written.
func (l Layout) Decode(values url.Values) (Rows, error) {
	switch l.Mode {
	case ModeIndexed:
		return l.decodeIndexed(values)
	case ModePositional:
		return l.decodePositional(values)
	case ModeNamed:
		return l.decodeNamed(values)
	default:
		return nil, fmt.Errorf("formrow: unknown mode %d", l.Mode)
	}
}

func (l Layout) decodeIndexed(values url.Values) (Rows, error) {
	pattern, err := regexp.Compile("^" + regexp.QuoteMeta(l.Prefix) + `(\d+)-input(\d+)$`)
	if err != nil {
		return nil, err
	}

	type partial struct {
		row  Row
		seen []bool
	}
	cells := make(map[int]*partial)
	for key := range values {
		m := pattern.FindStringSubmatch(key)
		if m == nil {
			continue
		}

		rowIdx, _ := strconv.Atoi(m[1])
		colIdx, _ := strconv.Atoi(m[2])
		if colIdx < 1 || colIdx > l.Width {
			return nil, constants.ErrMalformedRowData.WithCause(
				fmt.Errorf("column %d out of range for width %d", colIdx, l.Width))
		}

		p, ok := cells[rowIdx]
		if !ok {
			p = &partial{row: make(Row, l.Width), seen: make([]bool, l.Width)}
			cells[rowIdx] = p
		}
		if p.seen[colIdx-1] {
			return nil, constants.ErrMalformedRowData.WithCause(
				fmt.Errorf("duplicate cell %s", key))
		}
		p.seen[colIdx-1] = true
		p.row[colIdx-1] = values.Get(key)
	}

	indices := make([]int, 0, len(cells))
	for idx, p := range cells {
		for col, ok := range p.seen {
			if !ok {
				return nil, constants.ErrMalformedRowData.WithCause(
					fmt.Errorf("row %d is missing column %d", idx, col+1))
			}
		}
		indices = append(indices, idx)
	}
	sort.Ints(indices)

	rows := make(Rows, 0, len(indices))
	for _, idx := range indices {
		rows = append(rows, cells[idx].row)
	}
	return rows, nil
}

func (l Layout) decodePositional(values url.Values) (Rows, error) {
	pattern, err := regexp.Compile("^" + regexp.QuoteMeta(l.Prefix) + `(\d+)$`)
	if err != nil {
		return nil, err
	}

	type cell struct {
		n     int
		value string
	}
	cells := make([]cell, 0, len(values))
	seen := make(map[int]bool, len(values))
	for key := range values {
		m := pattern.FindStringSubmatch(key)
		if m == nil {
			continue
		}
		n, _ := strconv.Atoi(m[1])
		// Two keys with the same suffix (price1 vs price01) have no
		// defined order, so their rows cannot be aligned.
		if seen[n] {
			return nil, constants.ErrMalformedRowData.WithCause(
				fmt.Errorf("duplicate cell %s%d", l.Prefix, n))
		}
		seen[n] = true
		cells = append(cells, cell{n: n, value: values.Get(key)})
	}

	// Stable numeric order on the counter suffix, never map iteration order.
	sort.Slice(cells, func(i, j int) bool { return cells[i].n < cells[j].n })

	if len(cells)%l.Width != 0 {
		return nil, constants.ErrMalformedRowData.WithCause(
			fmt.Errorf("%d cells do not tile into rows of %d", len(cells), l.Width))
	}

	rows := make(Rows, 0, len(cells)/l.Width)
	for i := 0; i < len(cells); i += l.Width {
		row := make(Row, l.Width)
		for j := 0; j < l.Width; j++ {
			row[j] = cells[i+j].value
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func (l Layout) decodeNamed(values url.Values) (Rows, error) {
	count := -1
	for _, col := range l.Columns {
		n := len(values[col])
		if count == -1 {
			count = n
			continue
		}
		if n != count {
			return nil, constants.ErrMalformedRowData.WithCause(
				fmt.Errorf("field %s has %d values, expected %d", col, n, count))
		}
	}
	if count <= 0 {
		return Rows{}, nil
	}

	rows := make(Rows, 0, count)
	for i := 0; i < count; i++ {
		row := make(Row, 0, len(l.Columns))
		for _, col := range l.Columns {
			row = append(row, values[col][i])
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// Labels returns the first column of every row, padded with "<noun> N"
// placeholders up to target. Labels are display continuity only, never
// identity, so a shortfall is synthesized rather than rejected.
func (rs Rows) Labels(target int, noun string) []string {
	labels := make([]string, 0, target)
	for _, row := range rs {
		if len(row) > 0 {
			labels = append(labels, row[0])
		}
	}
	return PadLabels(labels, target, noun)
}

// PadLabels synthesizes "<noun> N" placeholders up to target when a later
// step derives a larger row count than was labeled.
func PadLabels(labels []string, target int, noun string) []string {
	padded := make([]string, 0, target)
	padded = append(padded, labels...)
	for len(padded) < target {
		padded = append(padded, fmt.Sprintf("%s %d", noun, len(padded)+1))
	}
	return padded
}
