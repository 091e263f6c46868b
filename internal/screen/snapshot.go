package screen

import "strings"

// Snapshot is an immutable point-in-time copy of a Screen. It shares no
// memory with the Screen it was taken from, so it can be handed to another
// goroutine while the Screen keeps changing.
type Snapshot struct {
	rows, cols    int
	cells         []Cell
	cursor        Position
	cursorVisible bool
	title         string
}

// Rows returns the number of rows.
func (s Snapshot) Rows() int { return s.rows }

// Cols returns the number of columns.
func (s Snapshot) Cols() int { return s.cols }

// Cursor returns the cursor position at capture time.
func (s Snapshot) Cursor() Position { return s.cursor }

// CursorVisible reports whether the cursor was visible at capture time.
func (s Snapshot) CursorVisible() bool { return s.cursorVisible }

// Title returns the screen title at capture time.
func (s Snapshot) Title() string { return s.title }

// Cell returns the cell at row, col, or a blank cell when out of range.
func (s Snapshot) Cell(row, col int) Cell {
	if row < 0 || row >= s.rows || col < 0 || col >= s.cols {
		return Cell{}
	}
	return s.cells[row*s.cols+col]
}

// Row returns a copy of row i, or nil when out of range.
func (s Snapshot) Row(i int) []Cell {
	if i < 0 || i >= s.rows {
		return nil
	}
	out := make([]Cell, s.cols)
	copy(out, s.cells[i*s.cols:(i+1)*s.cols])
	return out
}

// Line returns the text of row i with trailing blanks trimmed.
func (s Snapshot) Line(i int) string {
	if i < 0 || i >= s.rows {
		return ""
	}
	var sb strings.Builder
	for _, c := range s.cells[i*s.cols : (i+1)*s.cols] {
		sb.WriteRune(c.Glyph())
	}
	return strings.TrimRight(sb.String(), " ")
}

// Text returns all lines joined with newlines.
func (s Snapshot) Text() string {
	lines := make([]string, s.rows)
	for i := range lines {
		lines[i] = s.Line(i)
	}
	return strings.Join(lines, "\n")
}

// Equal reports whether two snapshots hold the same state.
func (s Snapshot) Equal(o Snapshot) bool {
	if s.rows != o.rows || s.cols != o.cols || s.cursor != o.cursor ||
		s.cursorVisible != o.cursorVisible || s.title != o.title {
		return false
	}
	for i := range s.cells {
		if s.cells[i] != o.cells[i] {
			return false
		}
	}
	return true
}
