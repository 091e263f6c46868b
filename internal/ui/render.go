// Package ui provides gocui view management and rendering utilities.
package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/jesseduffield/gocui"

	"github.com/abdullathedruid/shellpane/internal/input"
	"github.com/abdullathedruid/shellpane/internal/screen"
)

const sgrReset = "\033[0m"

// Theme controls how screen colors and pane frames are displayed.
type Theme struct {
	// Palette remaps screen colors before display. Unmapped colors are shown
	// as themselves.
	Palette       map[screen.Color]screen.Color
	FrameTerminal gocui.Attribute
	FrameCommand  gocui.Attribute
}

// DefaultTheme returns the identity palette with a green frame in terminal
// mode and a blue frame in command mode.
func DefaultTheme() Theme {
	return Theme{
		Palette:       map[screen.Color]screen.Color{},
		FrameTerminal: gocui.ColorGreen,
		FrameCommand:  gocui.ColorBlue,
	}
}

// Frame returns the frame color for mode.
func (t Theme) Frame(mode input.Mode) gocui.Attribute {
	if mode.IsTerminal() {
		return t.FrameTerminal
	}
	return t.FrameCommand
}

func (t Theme) resolve(c screen.Color) screen.Color {
	if mapped, ok := t.Palette[c]; ok {
		return mapped
	}
	return c
}

// fg maps a cell foreground to an SGR code, or 0 for the host default.
// Colors outside the palette fall back to white.
func (t Theme) fg(c screen.Color) int {
	if c == screen.ColorDefault {
		return 0
	}
	switch r := t.resolve(c); {
	case r == screen.ColorDefault:
		return 0
	case r >= screen.ColorBlack && r <= screen.ColorWhite:
		return 30 + int(r-screen.ColorBlack)
	default:
		return 37
	}
}

// bg maps a cell background to an SGR code, or 0 for the host default.
// Colors outside the palette fall back to black.
func (t Theme) bg(c screen.Color) int {
	if c == screen.ColorDefault {
		return 0
	}
	switch r := t.resolve(c); {
	case r == screen.ColorDefault:
		return 0
	case r >= screen.ColorBlack && r <= screen.ColorWhite:
		return 40 + int(r-screen.ColorBlack)
	default:
		return 40
	}
}

// GocuiColor converts a screen color to the matching gocui attribute.
func GocuiColor(c screen.Color) gocui.Attribute {
	switch c {
	case screen.ColorBlack:
		return gocui.ColorBlack
	case screen.ColorRed:
		return gocui.ColorRed
	case screen.ColorGreen:
		return gocui.ColorGreen
	case screen.ColorYellow:
		return gocui.ColorYellow
	case screen.ColorBlue:
		return gocui.ColorBlue
	case screen.ColorMagenta:
		return gocui.ColorMagenta
	case screen.ColorCyan:
		return gocui.ColorCyan
	case screen.ColorWhite:
		return gocui.ColorWhite
	default:
		return gocui.ColorDefault
	}
}

// RenderSnapshot writes the snapshot to w as text with SGR styling. Each row
// ends with a reset; rows are separated by newlines.
func RenderSnapshot(w io.Writer, snap screen.Snapshot, theme Theme) error {
	var sb strings.Builder
	for y := range snap.Rows() {
		last := screen.Cell{}
		for x := range snap.Cols() {
			cell := snap.Cell(y, x)

			// Check if style changed
			if cell.Pen() != last.Pen() {
				sb.WriteString(sgrReset)
				writeStyle(&sb, cell, theme)
				last = cell
			}
			sb.WriteRune(cell.Glyph())
		}
		// Reset at end of line and add newline
		sb.WriteString(sgrReset)
		if y < snap.Rows()-1 {
			sb.WriteRune('\n')
		}
	}
	_, err := io.WriteString(w, sb.String())
	return err
}

func writeStyle(sb *strings.Builder, cell screen.Cell, theme Theme) {
	if cell.Attrs.Has(screen.AttrBold) {
		sb.WriteString("\033[1m")
	}
	if cell.Attrs.Has(screen.AttrDim) {
		sb.WriteString("\033[2m")
	}
	if cell.Attrs.Has(screen.AttrUnderline) {
		sb.WriteString("\033[4m")
	}
	if cell.Attrs.Has(screen.AttrInverse) {
		sb.WriteString("\033[7m")
	}
	if code := theme.fg(cell.Fg); code != 0 {
		fmt.Fprintf(sb, "\033[%dm", code)
	}
	if code := theme.bg(cell.Bg); code != 0 {
		fmt.Fprintf(sb, "\033[%dm", code)
	}
}
