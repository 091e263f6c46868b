package ui

import (
	"fmt"
	"strings"

	"github.com/jesseduffield/gocui"
	"github.com/mattn/go-runewidth"

	"github.com/abdullathedruid/shellpane/internal/input"
	"github.com/abdullathedruid/shellpane/internal/screen"
)

// StatusInfo is the data shown in the status line.
type StatusInfo struct {
	Mode    input.Mode
	Process string
	Rows    int
	Cols    int
	Exited  bool
	Help    string
	Version string
}

// RenderStatusLine creates the bottom status line content, padded or
// truncated to width.
func RenderStatusLine(info StatusInfo, width int) string {
	parts := []string{info.Mode.String()}
	if info.Process != "" {
		parts = append(parts, info.Process)
	}
	parts = append(parts, fmt.Sprintf("%dx%d", info.Cols, info.Rows))
	if info.Exited {
		parts = append(parts, "exited")
	}
	left := " " + strings.Join(parts, " │ ")

	right := strings.TrimSpace(info.Help + "  " + info.Version)
	if right != "" {
		right += " "
	}

	gap := width - runewidth.StringWidth(left) - runewidth.StringWidth(right)
	if gap < 1 {
		return PadRight(Truncate(left, width), width)
	}
	return left + strings.Repeat(" ", gap) + right
}

// HelpFor returns the key hint shown in the status line for mode.
func HelpFor(mode input.Mode, escape, quit, resume string) string {
	if mode.IsCommand() {
		return fmt.Sprintf("%s:quit %s:resume", quit, resume)
	}
	return escape + ":command"
}

// PaneTitle picks the pane title: the title set by the program if any,
// otherwise the foreground process name.
func PaneTitle(snap screen.Snapshot, process string) string {
	if t := strings.TrimSpace(snap.Title()); t != "" {
		return t
	}
	if process != "" {
		return process
	}
	return "shell"
}

// ConfigurePaneView sets up the gocui view that displays the shell.
func ConfigurePaneView(v *gocui.View, title string, mode input.Mode, theme Theme) {
	v.Title = fmt.Sprintf(" [%s] %s ", mode.String(), title)
	if mode.IsTerminal() {
		// Bold frame while keys go to the shell
		v.FrameRunes = []rune{'━', '┃', '┏', '┓', '┗', '┛'}
	} else {
		v.FrameRunes = []rune{'─', '│', '┌', '┐', '└', '┘'}
	}
	v.FrameColor = theme.Frame(mode)
	v.Frame = true
	v.Wrap = false
	v.Editable = true
}

// ConfigureStatusView sets up the frameless status line view.
func ConfigureStatusView(v *gocui.View) {
	v.Frame = false
	v.Wrap = false
	v.BgColor = gocui.ColorBlue
	v.FgColor = gocui.ColorWhite | gocui.AttrBold
}

// Truncate shortens a string to fit in the given width.
func Truncate(s string, width int) string {
	if runewidth.StringWidth(s) <= width {
		return s
	}
	if width <= 3 {
		return runewidth.Truncate(s, width, "")
	}
	return runewidth.Truncate(s, width, "...")
}

// PadRight pads a string to the right.
func PadRight(s string, width int) string {
	sw := runewidth.StringWidth(s)
	if sw >= width {
		return runewidth.Truncate(s, width, "")
	}
	return s + strings.Repeat(" ", width-sw)
}
