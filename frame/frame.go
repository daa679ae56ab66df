package frame

import "fmt"

// New builds a frame from parallel name and column slices. Data is copied;
// the frame does not alias caller slices.
//
// Contracts:
//   - len(names) == len(cols), names non-empty and unique.
//   - every column has the same length.
//
// Errors: ErrBadShape, ErrBadName, ErrDupName.
func New(names []string, cols [][]string) (*Frame, error) {
	if len(names) != len(cols) {
		return nil, fmt.Errorf("%d names for %d columns: %w", len(names), len(cols), ErrBadShape)
	}

	seen := make(map[string]struct{}, len(names))
	for _, n := range names {
		if n == "" {
			return nil, ErrBadName
		}
		if _, dup := seen[n]; dup {
			return nil, fmt.Errorf("%q: %w", n, ErrDupName)
		}
		seen[n] = struct{}{}
	}

	rows := 0
	if len(cols) > 0 {
		rows = len(cols[0])
	}
	f := &Frame{
		names: append([]string(nil), names...),
		cols:  make([][]string, len(cols)),
		rows:  rows,
	}
	for i, c := range cols {
		if len(c) != rows {
			return nil, fmt.Errorf("column %q has %d rows, want %d: %w", names[i], len(c), rows, ErrBadShape)
		}
		f.cols[i] = append([]string(nil), c...)
	}

	return f, nil
}

// Rows returns the row count.
func (f *Frame) Rows() int { return f.rows }

// Cols returns the column count.
func (f *Frame) Cols() int { return len(f.cols) }

// Names returns a copy of the column names in order.
func (f *Frame) Names() []string {
	return append([]string(nil), f.names...)
}

// Column returns a copy of the named column.
//
// Errors: ErrUnknownColumn.
func (f *Frame) Column(name string) ([]string, error) {
	i := f.index(name)
	if i < 0 {
		return nil, fmt.Errorf("%q: %w", name, ErrUnknownColumn)
	}

	return append([]string(nil), f.cols[i]...), nil
}

// index returns the position of name, or -1.
func (f *Frame) index(name string) int {
	for i, n := range f.names {
		if n == name {
			return i
		}
	}

	return -1
}
