package frame

import "fmt"

// ShiftColumn returns a new frame with the named column moved to the front
// or the back; the relative order of all other columns is preserved.
//
// Errors: ErrUnknownColumn, ErrUnknownPosition.
func (f *Frame) ShiftColumn(name string, pos Position) (*Frame, error) {
	i := f.index(name)
	if i < 0 {
		return nil, fmt.Errorf("%q: %w", name, ErrUnknownColumn)
	}
	if pos != ToFront && pos != ToBack {
		return nil, ErrUnknownPosition
	}

	n := len(f.cols)
	names := make([]string, 0, n)
	cols := make([][]string, 0, n)

	appendAt := func(j int) {
		names = append(names, f.names[j])
		cols = append(cols, append([]string(nil), f.cols[j]...))
	}

	if pos == ToFront {
		appendAt(i)
	}
	for j := 0; j < n; j++ {
		if j != i {
			appendAt(j)
		}
	}
	if pos == ToBack {
		appendAt(i)
	}

	return &Frame{names: names, cols: cols, rows: f.rows}, nil
}
