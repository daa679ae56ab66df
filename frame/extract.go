package frame

import (
	"fmt"
	"regexp"
)

// Extract returns the first regexp match per cell of the named column, with
// the empty string where a cell has no match. Output length equals the row
// count.
//
// Errors: ErrUnknownColumn; pattern compile failures are wrapped verbatim.
func (f *Frame) Extract(name, pattern string) ([]string, error) {
	i := f.index(name)
	if i < 0 {
		return nil, fmt.Errorf("%q: %w", name, ErrUnknownColumn)
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("frame: compile pattern: %w", err)
	}

	out := make([]string, f.rows)
	for r, cell := range f.cols[i] {
		out[r] = re.FindString(cell)
	}

	return out, nil
}
