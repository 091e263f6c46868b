package vt

import (
	"bytes"

	"github.com/abdullathedruid/shellpane/internal/screen"
)

type escHandler func(d *Decoder)

type csiHandler func(d *Decoder, params []int)

// escHandlers maps the final byte of a two-byte ESC sequence to its action.
var escHandlers = map[byte]escHandler{
	'7': func(d *Decoder) { d.scr.SaveCursor() },
	'8': func(d *Decoder) { d.scr.RestoreCursor() },
	'D': func(d *Decoder) { d.scr.LineFeed() },
	'E': func(d *Decoder) {
		d.scr.CarriageReturn()
		d.scr.LineFeed()
	},
	'M': func(d *Decoder) { d.scr.ReverseIndex() },
	'c': func(d *Decoder) { d.scr.Reset() },
}

// csiHandlers maps the final byte of a CSI sequence without a private marker
// to its action. Finals not listed are consumed and ignored.
var csiHandlers = map[byte]csiHandler{
	'A': func(d *Decoder, p []int) { d.scr.MoveCursor(-param(p, 0, 1), 0) },
	'B': func(d *Decoder, p []int) { d.scr.MoveCursor(param(p, 0, 1), 0) },
	'C': func(d *Decoder, p []int) { d.scr.MoveCursor(0, param(p, 0, 1)) },
	'D': func(d *Decoder, p []int) { d.scr.MoveCursor(0, -param(p, 0, 1)) },
	'E': func(d *Decoder, p []int) {
		d.scr.MoveCursor(param(p, 0, 1), 0)
		d.scr.CarriageReturn()
	},
	'F': func(d *Decoder, p []int) {
		d.scr.MoveCursor(-param(p, 0, 1), 0)
		d.scr.CarriageReturn()
	},
	'G': cursorColumn,
	'`': cursorColumn,
	'd': func(d *Decoder, p []int) {
		d.scr.SetCursor(param(p, 0, 1)-1, d.scr.Cursor().Col)
	},
	'H': cursorPosition,
	'f': cursorPosition,
	'J': func(d *Decoder, p []int) {
		switch mode := rawParam(p, 0); mode {
		case 0, 1, 2:
			d.scr.EraseDisplay(screen.EraseMode(mode))
		case 3:
			d.scr.EraseDisplay(screen.EraseAll)
		}
	},
	'K': func(d *Decoder, p []int) {
		if mode := rawParam(p, 0); mode <= 2 {
			d.scr.EraseLine(screen.EraseMode(mode))
		}
	},
	'm': func(d *Decoder, p []int) { d.scr.SetPen(applySGR(d.scr.Pen(), p)) },
	's': func(d *Decoder, _ []int) { d.scr.SaveCursor() },
	'u': func(d *Decoder, _ []int) { d.scr.RestoreCursor() },
}

func cursorColumn(d *Decoder, p []int) {
	d.scr.SetCursor(d.scr.Cursor().Row, param(p, 0, 1)-1)
}

func cursorPosition(d *Decoder, p []int) {
	d.scr.SetCursor(param(p, 0, 1)-1, param(p, 1, 1)-1)
}

// param returns parameter i, substituting def when it is absent or zero.
func param(p []int, i, def int) int {
	if i >= len(p) || p[i] == 0 {
		return def
	}
	return p[i]
}

// rawParam returns parameter i, or 0 when absent.
func rawParam(p []int, i int) int {
	if i >= len(p) {
		return 0
	}
	return p[i]
}

func (d *Decoder) dispatchCSI(final byte) {
	if d.intermediates > 0 {
		return
	}
	params := d.paramList()
	if d.private != 0 {
		d.dispatchPrivate(final, params)
		return
	}
	if h, ok := csiHandlers[final]; ok {
		h(d, params)
	}
}

// dispatchPrivate handles DEC private modes. Only cursor visibility (25) is
// modelled.
func (d *Decoder) dispatchPrivate(final byte, params []int) {
	if d.private != '?' || (final != 'h' && final != 'l') {
		return
	}
	for _, p := range params {
		if p == 25 {
			d.scr.SetCursorVisible(final == 'h')
		}
	}
}

// dispatchOSC handles a completed OSC string. Only the title commands 0 and 2
// are honoured.
func (d *Decoder) dispatchOSC() {
	cmd, text, ok := bytes.Cut(d.osc, []byte{';'})
	if !ok {
		return
	}
	switch string(cmd) {
	case "0", "2":
		d.scr.SetTitle(string(text))
	}
}
