// Package frame: the Frame type, selection enums and sentinel errors.
package frame

import "errors"

// Frame is a small column-ordered table of string cells. Operations return
// new frames; a Frame is never mutated after construction.
type Frame struct {
	names []string
	cols  [][]string
	rows  int
}

// Corner names one of the four corners of a frame.
type Corner int

const (
	// TopLeft selects the first rows of the first columns.
	TopLeft Corner = iota

	// TopRight selects the first rows of the last columns.
	TopRight

	// BottomLeft selects the last rows of the first columns.
	BottomLeft

	// BottomRight selects the last rows of the last columns.
	BottomRight
)

// Position names a target slot for a shifted column.
type Position int

const (
	// ToFront moves the column before all others.
	ToFront Position = iota

	// ToBack moves the column after all others.
	ToBack
)

var (
	// ErrBadShape is returned when column lengths disagree or names and
	// columns differ in count.
	ErrBadShape = errors.New("frame: inconsistent shape")

	// ErrBadName is returned for an empty column name.
	ErrBadName = errors.New("frame: empty column name")

	// ErrDupName is returned for duplicated column names.
	ErrDupName = errors.New("frame: duplicate column name")

	// ErrUnknownColumn is returned when a referenced column does not exist.
	ErrUnknownColumn = errors.New("frame: unknown column")

	// ErrUnknownCorner is returned for a Corner outside the enum.
	ErrUnknownCorner = errors.New("frame: unknown corner")

	// ErrUnknownPosition is returned for a Position outside the enum.
	ErrUnknownPosition = errors.New("frame: unknown position")

	// ErrBadSpan is returned for non-positive corner extents.
	ErrBadSpan = errors.New("frame: corner extents must be positive")

	// ErrNotNumeric is returned by Matrix for a cell that does not parse
	// as a float.
	ErrNotNumeric = errors.New("frame: non-numeric cell")

	// ErrEmptyFrame is returned by Matrix when the selection holds no data.
	ErrEmptyFrame = errors.New("frame: empty selection")
)
