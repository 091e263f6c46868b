package pane

// StatusBarHeight is the height reserved for the status bar at the bottom.
const StatusBarHeight = 2

// MinRows and MinCols bound the interior of the pane view.
const (
	MinRows = 2
	MinCols = 10
)

// Layout represents the position and size of a view in screen coordinates.
type Layout struct {
	X0, Y0, X1, Y1 int
}

// ScreenLayout holds the pane and status bar layouts.
type ScreenLayout struct {
	Pane   Layout
	Status Layout
}

// Width returns the interior width (excluding borders).
func (l Layout) Width() int {
	w := l.X1 - l.X0 - 1
	if w < 1 {
		return 1
	}
	return w
}

// Height returns the interior height (excluding borders).
func (l Layout) Height() int {
	h := l.Y1 - l.Y0 - 1
	if h < 1 {
		return 1
	}
	return h
}

// CalculateLayout returns the layout for a full-screen pane above the status
// bar:
//
//	+--------------------+
//	|       shell        |
//	+--------------------+
//	 status
func CalculateLayout(maxX, maxY int) ScreenLayout {
	paneMaxY := maxY - StatusBarHeight
	return ScreenLayout{
		Pane:   Layout{0, 0, maxX - 1, paneMaxY - 1},
		Status: Layout{0, paneMaxY, maxX - 1, maxY},
	}
}

// FitSize returns the shell size in rows and columns for a terminal of
// maxX by maxY cells. Explicit rows or cols override the fitted value.
func FitSize(maxX, maxY, rows, cols int) (int, int) {
	l := CalculateLayout(maxX, maxY).Pane
	if rows <= 0 {
		rows = max(l.Height(), MinRows)
	}
	if cols <= 0 {
		cols = max(l.Width(), MinCols)
	}
	return rows, cols
}

// Frame returns a layout of the given interior size anchored at the top left,
// used when the shell size is fixed and smaller than the terminal.
func Frame(rows, cols int) Layout {
	return Layout{0, 0, cols + 1, rows + 1}
}
