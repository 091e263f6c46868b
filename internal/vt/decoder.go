// Package vt decodes the byte stream written by a program running on a
// pseudo-terminal and applies it to a screen.Screen.
//
// The decoder is a finite state machine over a VT100/ECMA-48 subset. All
// parse state lives in the Decoder, so input may be split at any byte. Malformed
// or unsupported sequences are consumed and dropped; decoding never fails.
package vt

import (
	"unicode/utf8"

	"github.com/mattn/go-runewidth"

	"github.com/abdullathedruid/shellpane/internal/screen"
)

const (
	// MaxParams is the number of CSI parameters kept; extras are ignored.
	MaxParams = 16
	// MaxParamValue caps a single CSI parameter.
	MaxParamValue = 9999
	// MaxSequenceLength bounds how many bytes of a control sequence are
	// interpreted. The rest of it, through the final byte, is discarded.
	MaxSequenceLength = 64
	// MaxOSCLength bounds the stored payload of an OSC string.
	MaxOSCLength = 512
)

// State is the decoder's current parse mode.
type State int

const (
	StateGround State = iota
	StateEscape
	StateEscapeIntermediate
	StateCsiEntry
	StateCsiParam
	StateCsiIgnore
	StateOscString
)

func (s State) String() string {
	switch s {
	case StateGround:
		return "ground"
	case StateEscape:
		return "escape"
	case StateEscapeIntermediate:
		return "escape-intermediate"
	case StateCsiEntry:
		return "csi-entry"
	case StateCsiParam:
		return "csi-param"
	case StateCsiIgnore:
		return "csi-ignore"
	case StateOscString:
		return "osc-string"
	default:
		return "unknown"
	}
}

const (
	bel  = 0x07
	bs   = 0x08
	ht   = 0x09
	lf   = 0x0a
	vtab = 0x0b
	ff   = 0x0c
	cr   = 0x0d
	can  = 0x18
	sub  = 0x1a
	esc  = 0x1b
	del  = 0x7f
)

// Decoder applies terminal output to a Screen.
type Decoder struct {
	scr   *screen.Screen
	state State

	params        [MaxParams]int
	nparams       int
	private       byte
	intermediates int
	seqLen        int

	osc    []byte
	oscEsc bool

	utf8Buf [utf8.UTFMax]byte
	utf8Len int
}

// NewDecoder returns a decoder in the ground state that mutates scr.
func NewDecoder(scr *screen.Screen) *Decoder {
	return &Decoder{
		scr: scr,
		osc: make([]byte, 0, 64),
	}
}

// Screen returns the screen the decoder writes to.
func (d *Decoder) Screen() *screen.Screen { return d.scr }

// State returns the current parse state.
func (d *Decoder) State() State { return d.state }

// Write feeds p to the decoder. It always consumes all of p and never fails.
func (d *Decoder) Write(p []byte) (int, error) {
	d.Feed(p)
	return len(p), nil
}

// Feed decodes p and applies it to the screen.
func (d *Decoder) Feed(p []byte) {
	for _, b := range p {
		d.step(b)
	}
}

func (d *Decoder) step(b byte) {
	if d.utf8Len > 0 {
		if b&0xc0 == 0x80 {
			d.continueUTF8(b)
			return
		}
		d.utf8Len = 0
		d.print(utf8.RuneError)
	}

	switch b {
	case can, sub:
		d.state = StateGround
		d.oscEsc = false
		return
	case esc:
		if d.state == StateOscString {
			d.oscEsc = true
			return
		}
		d.enterEscape()
		return
	}

	switch d.state {
	case StateGround:
		d.ground(b)
	case StateEscape:
		d.escape(b)
	case StateEscapeIntermediate:
		d.escapeIntermediate(b)
	case StateCsiEntry, StateCsiParam:
		d.csi(b)
	case StateCsiIgnore:
		d.csiIgnore(b)
	case StateOscString:
		d.oscString(b)
	}
}

func (d *Decoder) ground(b byte) {
	switch {
	case b < 0x20:
		d.execute(b)
	case b == del:
	case b < 0x80:
		d.scr.Write(rune(b))
	case b >= 0xc2 && b <= 0xf4:
		d.utf8Buf[0] = b
		d.utf8Len = 1
	default:
		d.print(utf8.RuneError)
	}
}

func (d *Decoder) continueUTF8(b byte) {
	d.utf8Buf[d.utf8Len] = b
	d.utf8Len++
	if !utf8.FullRune(d.utf8Buf[:d.utf8Len]) {
		return
	}
	buf, n := d.utf8Buf, d.utf8Len
	r, size := utf8.DecodeRune(buf[:n])
	d.utf8Len = 0
	d.print(r)
	// An invalid second byte is not part of the rune
	for _, b := range buf[size:n] {
		d.step(b)
	}
}

// print writes a decoded rune. Zero-width runes are dropped since every cell
// holds exactly one glyph.
func (d *Decoder) print(r rune) {
	if r >= 0x80 && runewidth.RuneWidth(r) == 0 {
		return
	}
	d.scr.Write(r)
}

// execute runs a C0 control. Unlisted controls are ignored.
func (d *Decoder) execute(b byte) {
	switch b {
	case bs:
		d.scr.Backspace()
	case ht:
		d.scr.Tab()
	case lf, vtab, ff:
		d.scr.LineFeed()
	case cr:
		d.scr.CarriageReturn()
	}
}

func (d *Decoder) enterEscape() {
	d.state = StateEscape
	d.seqLen = 0
	d.intermediates = 0
}

// abort drops the sequence in progress and reprocesses b from ground.
func (d *Decoder) abort(b byte) {
	d.state = StateGround
	d.step(b)
}

func (d *Decoder) tooLong() bool {
	d.seqLen++
	return d.seqLen > MaxSequenceLength
}

func (d *Decoder) escape(b byte) {
	switch {
	case b < 0x20:
		d.execute(b)
	case b == del:
	case b <= 0x2f:
		d.intermediates++
		d.state = StateEscapeIntermediate
	case b == '[':
		d.enterCSI()
	case b == ']':
		d.osc = d.osc[:0]
		d.oscEsc = false
		d.state = StateOscString
	case b < 0x7f:
		d.state = StateGround
		if h, ok := escHandlers[b]; ok {
			h(d)
		}
	default:
		d.abort(b)
	}
}

func (d *Decoder) escapeIntermediate(b byte) {
	switch {
	case b < 0x20:
		d.execute(b)
	case b <= 0x2f || b == del:
	case b < 0x7f:
		// Charset designations and other intermediate sequences are not modelled.
		d.state = StateGround
	default:
		d.abort(b)
	}
}

func (d *Decoder) enterCSI() {
	d.state = StateCsiEntry
	d.nparams = 0
	d.private = 0
	d.intermediates = 0
	d.seqLen = 0
	clear(d.params[:])
}

func (d *Decoder) csi(b byte) {
	if d.tooLong() {
		d.state = StateCsiIgnore
		d.csiIgnore(b)
		return
	}
	switch {
	case b < 0x20:
		d.execute(b)
	case b >= '0' && b <= '9':
		if d.intermediates > 0 {
			d.state = StateCsiIgnore
			return
		}
		d.digit(b)
		d.state = StateCsiParam
	case b == ';':
		if d.intermediates > 0 {
			d.state = StateCsiIgnore
			return
		}
		d.separator()
		d.state = StateCsiParam
	case b >= '<' && b <= '?':
		if d.state != StateCsiEntry {
			d.state = StateCsiIgnore
			return
		}
		d.private = b
		d.state = StateCsiParam
	case b == ':':
		d.state = StateCsiIgnore
	case b <= 0x2f:
		d.intermediates++
		d.state = StateCsiParam
	case b == del:
	case b < 0x7f:
		d.state = StateGround
		d.dispatchCSI(b)
	default:
		d.abort(b)
	}
}

// csiIgnore consumes a sequence through its final byte without dispatching.
func (d *Decoder) csiIgnore(b byte) {
	switch {
	case b < 0x20:
		d.execute(b)
	case b >= 0x40 && b < 0x7f:
		d.state = StateGround
	case b >= 0x80:
		d.abort(b)
	}
}

func (d *Decoder) digit(b byte) {
	if d.nparams == 0 {
		d.nparams = 1
	}
	i := d.nparams - 1
	if i >= MaxParams {
		return
	}
	d.params[i] = min(d.params[i]*10+int(b-'0'), MaxParamValue)
}

func (d *Decoder) separator() {
	if d.nparams == 0 {
		d.nparams = 1
	}
	d.nparams++
}

func (d *Decoder) paramList() []int {
	return d.params[:min(d.nparams, MaxParams)]
}

func (d *Decoder) oscString(b byte) {
	if d.oscEsc {
		d.oscEsc = false
		if b == '\\' {
			d.state = StateGround
			d.dispatchOSC()
			return
		}
		d.enterEscape()
		d.step(b)
		return
	}
	switch {
	case b == bel:
		d.state = StateGround
		d.dispatchOSC()
	case b < 0x20:
	default:
		if len(d.osc) < MaxOSCLength {
			d.osc = append(d.osc, b)
		}
	}
}
