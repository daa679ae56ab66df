package frame

// Corner returns a new frame holding at most rows×cols cells taken from the
// named corner. Extents larger than the frame clamp to its edges, so asking
// for a 100×100 corner of a 5×3 frame returns the whole frame.
//
// Ranges are computed directly from the frame's dimensions and the corner
// enum.
//
// Errors: ErrBadSpan for non-positive extents, ErrUnknownCorner.
func (f *Frame) Corner(c Corner, rows, cols int) (*Frame, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrBadSpan
	}
	if rows > f.rows {
		rows = f.rows
	}
	if cols > len(f.cols) {
		cols = len(f.cols)
	}

	var rowLo, colLo int
	switch c {
	case TopLeft:
		rowLo, colLo = 0, 0
	case TopRight:
		rowLo, colLo = 0, len(f.cols)-cols
	case BottomLeft:
		rowLo, colLo = f.rows-rows, 0
	case BottomRight:
		rowLo, colLo = f.rows-rows, len(f.cols)-cols
	default:
		return nil, ErrUnknownCorner
	}

	out := &Frame{
		names: append([]string(nil), f.names[colLo:colLo+cols]...),
		cols:  make([][]string, cols),
		rows:  rows,
	}
	for i := 0; i < cols; i++ {
		out.cols[i] = append([]string(nil), f.cols[colLo+i][rowLo:rowLo+rows]...)
	}

	return out, nil
}
