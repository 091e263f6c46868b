package keys

import (
	"unicode"
	"unicode/utf8"
)

const esc = 0x1b

type chord struct {
	key Key
	mod Modifier
}

// sequences holds the output for named keys. Arrow keys use the readline
// emacs bindings so they work without relying on terminfo.
var sequences = map[chord]string{
	{KeyEnter, 0}:      "\r",
	{KeyTab, 0}:        "\t",
	{KeyTab, ModShift}: "\x1b[Z",
	{KeyBackspace, 0}:  "\x7f",
	{KeyEscape, 0}:     "\x1b",
	{KeyArrowUp, 0}:    "\x10",
	{KeyArrowDown, 0}:  "\x0e",
	{KeyArrowLeft, 0}:  "\x02",
	{KeyArrowRight, 0}: "\x06",
	{KeyHome, 0}:       "\x1b[1~",
	{KeyInsert, 0}:     "\x1b[2~",
	{KeyDelete, 0}:     "\x1b[3~",
	{KeyEnd, 0}:        "\x1b[4~",
	{KeyPageUp, 0}:     "\x1b[5~",
	{KeyPageDown, 0}:   "\x1b[6~",
	{KeyF1, 0}:         "\x1b[[A",
	{KeyF2, 0}:         "\x1b[[B",
	{KeyF3, 0}:         "\x1b[[C",
	{KeyF4, 0}:         "\x1b[[D",
	{KeyF5, 0}:         "\x1b[[E",
	{KeyF6, 0}:         "\x1b[17~",
	{KeyF7, 0}:         "\x1b[18~",
	{KeyF8, 0}:         "\x1b[19~",
	{KeyF9, 0}:         "\x1b[20~",
	{KeyF10, 0}:        "\x1b[21~",
	{KeyF11, 0}:        "\x1b[23~",
	{KeyF12, 0}:        "\x1b[24~",
}

// ctrlPunct holds Ctrl combinations with non-letter runes.
var ctrlPunct = map[rune]byte{
	'@':  0x00,
	' ':  0x00,
	'[':  0x1b,
	'\\': 0x1c,
	']':  0x1d,
	'^':  0x1e,
	'_':  0x1f,
	'?':  0x7f,
}

// Translate returns the bytes to send to the shell for ev, or false when the
// event produces no output. The returned slice is never shared.
func Translate(ev Event) ([]byte, bool) {
	out, ok := translate(ev)
	if !ok {
		return nil, false
	}
	if ev.Mod.Has(ModAlt) {
		return append([]byte{esc}, out...), true
	}
	return out, true
}

func translate(ev Event) ([]byte, bool) {
	switch {
	case ev.Key == KeyNone || ev.Key.IsModifier():
		return nil, false
	case ev.Key == KeyRune:
		return translateRune(ev.Rune, ev.Mod.Has(ModCtrl))
	}

	mod := ev.Mod &^ ModAlt
	if s, ok := sequences[chord{ev.Key, mod}]; ok {
		return []byte(s), true
	}
	if s, ok := sequences[chord{ev.Key, 0}]; ok {
		return []byte(s), true
	}
	return nil, false
}

func translateRune(r rune, ctrl bool) ([]byte, bool) {
	if r < 0 || !utf8.ValidRune(r) {
		return nil, false
	}
	if !ctrl {
		return utf8.AppendRune(nil, r), true
	}
	if r < utf8.RuneSelf && unicode.IsLetter(r) {
		return []byte{byte(r) & 0x1f}, true
	}
	if b, ok := ctrlPunct[r]; ok {
		return []byte{b}, true
	}
	return nil, false
}
