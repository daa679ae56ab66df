// Package frame provides small, copy-on-write table helpers: corner views,
// column shifting, regex extraction, and numeric export.
//
// A Frame is a column-ordered table of string cells — just enough structure
// to prepare tabular data for the numeric packages without pulling in a full
// data-frame dependency.
//
// ⚙️ Usage:
//
//	f, _ := frame.New(
//	  []string{"id", "price", "qty"},
//	  [][]string{{"a1", "a2"}, {"9.5", "12.0"}, {"3", "7"}},
//	)
//
//	peek, _ := f.Corner(frame.TopLeft, 5, 2)     // head-like 2D view
//	byID, _ := f.ShiftColumn("qty", frame.ToFront)
//	runs, _ := f.Extract("id", `[0-9]+`)         // ["1", "2"]
//	data, _ := f.Matrix("price", "qty")          // *mat.Dense for kmeans
//
// Frames never mutate: every operation returns a fresh copy, so views can be
// passed around freely.
package frame
