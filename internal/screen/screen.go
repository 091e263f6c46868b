// Package screen provides the in-memory model of a terminal display: a fixed
// grid of styled cells, a cursor and the pen used for newly printed glyphs.
//
// A Screen is not safe for concurrent use. Exactly one goroutine (the decoder's
// reader) mutates it; other goroutines only ever see Snapshots.
package screen

// TabWidth is the fixed horizontal tab stride.
const TabWidth = 8

// EraseMode selects the range affected by EraseLine and EraseDisplay.
type EraseMode int

const (
	// EraseToEnd erases from the cursor to the end of the line or screen.
	EraseToEnd EraseMode = iota
	// EraseToStart erases from the start of the line or screen to the cursor.
	EraseToStart
	// EraseAll erases the whole line or screen.
	EraseAll
)

// Position is a 0-based cell coordinate.
type Position struct {
	Row int
	Col int
}

type savedCursor struct {
	pos Position
	pen Pen
}

// Screen is a rows x cols grid of Cells with cursor and pen state.
type Screen struct {
	rows, cols    int
	grid          [][]Cell
	cursor        Position
	pen           Pen
	saved         savedCursor
	title         string
	cursorVisible bool
}

// New creates a blank screen. Non-positive dimensions are raised to 1.
func New(rows, cols int) *Screen {
	if rows < 1 {
		rows = 1
	}
	if cols < 1 {
		cols = 1
	}
	s := &Screen{
		rows:          rows,
		cols:          cols,
		grid:          make([][]Cell, rows),
		cursorVisible: true,
	}
	for i := range s.grid {
		s.grid[i] = make([]Cell, cols)
	}
	return s
}

// Rows returns the number of rows.
func (s *Screen) Rows() int { return s.rows }

// Cols returns the number of columns.
func (s *Screen) Cols() int { return s.cols }

// Cursor returns the current cursor position.
func (s *Screen) Cursor() Position { return s.cursor }

// Cell returns the cell at row, col. Out of range coordinates yield a blank cell.
func (s *Screen) Cell(row, col int) Cell {
	if row < 0 || row >= s.rows || col < 0 || col >= s.cols {
		return Cell{}
	}
	return s.grid[row][col]
}

// Pen returns the current pen.
func (s *Screen) Pen() Pen { return s.pen }

// SetPen replaces the current pen.
func (s *Screen) SetPen(p Pen) { s.pen = p }

// Title returns the title last set by the running program.
func (s *Screen) Title() string { return s.title }

// SetTitle sets the window title.
func (s *Screen) SetTitle(title string) { s.title = title }

// CursorVisible reports whether the program wants the cursor shown.
func (s *Screen) CursorVisible() bool { return s.cursorVisible }

// SetCursorVisible shows or hides the cursor.
func (s *Screen) SetCursorVisible(v bool) { s.cursorVisible = v }

// Write places r at the cursor using the current pen and advances the
// cursor. Writing in the last column wraps to the start of the next row,
// scrolling when the cursor is already on the last row.
func (s *Screen) Write(r rune) {
	s.grid[s.cursor.Row][s.cursor.Col] = Cell{
		Char:  r,
		Fg:    s.pen.Fg,
		Bg:    s.pen.Bg,
		Attrs: s.pen.Attrs,
	}
	if s.cursor.Col < s.cols-1 {
		s.cursor.Col++
		return
	}
	s.cursor.Col = 0
	s.LineFeed()
}

// MoveCursor moves the cursor relative to its current position, clamped to the grid.
func (s *Screen) MoveCursor(dRow, dCol int) {
	s.SetCursor(s.cursor.Row+dRow, s.cursor.Col+dCol)
}

// SetCursor moves the cursor to an absolute 0-based position, clamped to the grid.
func (s *Screen) SetCursor(row, col int) {
	s.cursor.Row = clamp(row, 0, s.rows-1)
	s.cursor.Col = clamp(col, 0, s.cols-1)
}

// LineFeed moves the cursor down one row, scrolling at the bottom. The column is kept.
func (s *Screen) LineFeed() {
	if s.cursor.Row == s.rows-1 {
		s.ScrollUp()
		return
	}
	s.cursor.Row++
}

// ReverseIndex moves the cursor up one row, scrolling down at the top.
func (s *Screen) ReverseIndex() {
	if s.cursor.Row == 0 {
		s.ScrollDown()
		return
	}
	s.cursor.Row--
}

// CarriageReturn moves the cursor to column 0.
func (s *Screen) CarriageReturn() {
	s.cursor.Col = 0
}

// Backspace moves the cursor one column left, stopping at column 0.
func (s *Screen) Backspace() {
	if s.cursor.Col > 0 {
		s.cursor.Col--
	}
}

// Tab advances the cursor to the next tab stop, stopping at the last column.
func (s *Screen) Tab() {
	next := (s.cursor.Col/TabWidth + 1) * TabWidth
	s.cursor.Col = min(next, s.cols-1)
}

// ScrollUp discards the top row and appends a blank row at the bottom.
func (s *Screen) ScrollUp() {
	top := s.grid[0]
	copy(s.grid, s.grid[1:])
	s.fillRow(top, 0, s.cols)
	s.grid[s.rows-1] = top
}

// ScrollDown discards the bottom row and inserts a blank row at the top.
func (s *Screen) ScrollDown() {
	bottom := s.grid[s.rows-1]
	copy(s.grid[1:], s.grid[:s.rows-1])
	s.fillRow(bottom, 0, s.cols)
	s.grid[0] = bottom
}

// EraseLine blanks part of the cursor row. Both partial ranges include the
// cursor cell.
func (s *Screen) EraseLine(mode EraseMode) {
	row := s.grid[s.cursor.Row]
	switch mode {
	case EraseToEnd:
		s.fillRow(row, s.cursor.Col, s.cols)
	case EraseToStart:
		s.fillRow(row, 0, s.cursor.Col+1)
	case EraseAll:
		s.fillRow(row, 0, s.cols)
	}
}

// EraseDisplay blanks part of the screen. Both partial ranges include the
// cursor cell.
func (s *Screen) EraseDisplay(mode EraseMode) {
	switch mode {
	case EraseToEnd:
		s.EraseLine(EraseToEnd)
		for r := s.cursor.Row + 1; r < s.rows; r++ {
			s.fillRow(s.grid[r], 0, s.cols)
		}
	case EraseToStart:
		for r := 0; r < s.cursor.Row; r++ {
			s.fillRow(s.grid[r], 0, s.cols)
		}
		s.EraseLine(EraseToStart)
	case EraseAll:
		for _, row := range s.grid {
			s.fillRow(row, 0, s.cols)
		}
	}
}

// SaveCursor stores the cursor position and pen.
func (s *Screen) SaveCursor() {
	s.saved = savedCursor{pos: s.cursor, pen: s.pen}
}

// RestoreCursor restores the state stored by SaveCursor, or homes the cursor
// with the default pen if nothing was saved.
func (s *Screen) RestoreCursor() {
	s.SetCursor(s.saved.pos.Row, s.saved.pos.Col)
	s.pen = s.saved.pen
}

// Reset returns the screen to its initial state.
func (s *Screen) Reset() {
	s.pen = Pen{}
	for _, row := range s.grid {
		s.fillRow(row, 0, s.cols)
	}
	s.cursor = Position{}
	s.saved = savedCursor{}
	s.title = ""
	s.cursorVisible = true
}

// Snapshot returns a deep copy of the visible state.
func (s *Screen) Snapshot() Snapshot {
	cells := make([]Cell, s.rows*s.cols)
	for r, row := range s.grid {
		copy(cells[r*s.cols:], row)
	}
	return Snapshot{
		rows:          s.rows,
		cols:          s.cols,
		cells:         cells,
		cursor:        s.cursor,
		cursorVisible: s.cursorVisible,
		title:         s.title,
	}
}

func (s *Screen) fillRow(row []Cell, from, to int) {
	blank := blankCell(s.pen.Bg)
	for i := from; i < to; i++ {
		row[i] = blank
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
