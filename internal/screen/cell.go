package screen

import "strings"

// Color is one of the eight standard terminal colors, or the host default.
type Color uint8

const (
	ColorDefault Color = iota
	ColorBlack
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
)

var colorNames = [...]string{
	ColorDefault: "default",
	ColorBlack:   "black",
	ColorRed:     "red",
	ColorGreen:   "green",
	ColorYellow:  "yellow",
	ColorBlue:    "blue",
	ColorMagenta: "magenta",
	ColorCyan:    "cyan",
	ColorWhite:   "white",
}

// String returns the lower-case color name.
func (c Color) String() string {
	if int(c) < len(colorNames) {
		return colorNames[c]
	}
	return "unknown"
}

// ParseColor maps a color name back to its Color. "brown" is accepted as
// an alias for yellow, matching the classic VGA palette naming.
func ParseColor(name string) (Color, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "brown" {
		return ColorYellow, true
	}
	for i, n := range colorNames {
		if n == name {
			return Color(i), true
		}
	}
	return ColorDefault, false
}

// Colors returns every color in palette order, starting with ColorDefault.
func Colors() []Color {
	out := make([]Color, len(colorNames))
	for i := range colorNames {
		out[i] = Color(i)
	}
	return out
}

// Attr is a bitmask of text attributes.
type Attr uint8

const (
	AttrBold Attr = 1 << iota
	AttrDim
	AttrUnderline
	AttrInverse
)

// Has reports whether all bits in a are set.
func (at Attr) Has(a Attr) bool {
	return at&a == a
}

// Pen is the styling applied to the next printed glyph.
type Pen struct {
	Fg    Color
	Bg    Color
	Attrs Attr
}

// Cell is one character position on the screen.
// A zero Char marks a blank cell that was never printed or was erased.
type Cell struct {
	Char  rune
	Fg    Color
	Bg    Color
	Attrs Attr
}

// Glyph returns the rune to display for the cell.
func (c Cell) Glyph() rune {
	if c.Char == 0 {
		return ' '
	}
	return c.Char
}

// IsBlank reports whether the cell holds no glyph.
func (c Cell) IsBlank() bool {
	return c.Char == 0
}

// Pen returns the styling of the cell.
func (c Cell) Pen() Pen {
	return Pen{Fg: c.Fg, Bg: c.Bg, Attrs: c.Attrs}
}

func blankCell(bg Color) Cell {
	return Cell{Bg: bg}
}
