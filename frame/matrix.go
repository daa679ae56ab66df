package frame

import (
	"fmt"
	"strconv"

	"gonum.org/v1/gonum/mat"
)

// Matrix parses the selected columns (all columns when names is empty) into
// a dense numeric matrix, one frame row per matrix row — the bridge from a
// loaded frame into kmeans/hartigan.
//
// Errors: ErrUnknownColumn, ErrEmptyFrame for a selection without cells,
// ErrNotNumeric naming the offending column and row.
func (f *Frame) Matrix(names ...string) (*mat.Dense, error) {
	if len(names) == 0 {
		names = f.names
	}

	idx := make([]int, len(names))
	for j, name := range names {
		i := f.index(name)
		if i < 0 {
			return nil, fmt.Errorf("%q: %w", name, ErrUnknownColumn)
		}
		idx[j] = i
	}
	if f.rows == 0 || len(idx) == 0 {
		return nil, ErrEmptyFrame
	}

	out := mat.NewDense(f.rows, len(idx), nil)
	for j, i := range idx {
		for r, cell := range f.cols[i] {
			v, err := strconv.ParseFloat(cell, 64)
			if err != nil {
				return nil, fmt.Errorf("column %q row %d (%q): %w", names[j], r, cell, ErrNotNumeric)
			}
			out.Set(r, j, v)
		}
	}

	return out, nil
}
