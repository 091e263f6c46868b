package config

import (
	"fmt"
	"strings"

	"github.com/jesseduffield/gocui"
)

// Key is a parsed key binding. Value holds a rune for a printable key or a
// gocui.Key for a named or ctrl key.
type Key struct {
	Value any
	Mod   gocui.Modifier
}

// ParseKey parses a key binding such as "q", "N", "f12", "pgup" or
// "ctrl+q". Key names and the ctrl+ prefix ignore case. A single character
// keeps its case, so "N" and "n" are different keys.
func ParseKey(s string) (Key, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return Key{}, fmt.Errorf("empty key string")
	}
	lower := strings.ToLower(trimmed)

	if name, ok := strings.CutPrefix(lower, "ctrl+"); ok {
		key, ok := ctrlKeys[name]
		if !ok {
			return Key{}, fmt.Errorf("invalid ctrl combination: %s", s)
		}
		return Key{Value: key}, nil
	}

	if key, ok := namedKeys[lower]; ok {
		return Key{Value: key}, nil
	}

	if r := []rune(trimmed); len(r) == 1 {
		return Key{Value: r[0]}, nil
	}
	return Key{}, fmt.Errorf("unknown key: %s", s)
}

// IsRune reports whether the key is a single character.
func (k Key) IsRune() bool {
	_, ok := k.Value.(rune)
	return ok
}

// Rune returns the character, or 0 for a named key.
func (k Key) Rune() rune {
	r, _ := k.Value.(rune)
	return r
}

// GocuiKey returns the gocui key, or 0 for a character.
func (k Key) GocuiKey() gocui.Key {
	key, _ := k.Value.(gocui.Key)
	return key
}

// ctrlKeys maps the part of a binding after "ctrl+" to its gocui key.
var ctrlKeys = map[string]gocui.Key{
	"a":     gocui.KeyCtrlA,
	"b":     gocui.KeyCtrlB,
	"c":     gocui.KeyCtrlC,
	"d":     gocui.KeyCtrlD,
	"e":     gocui.KeyCtrlE,
	"f":     gocui.KeyCtrlF,
	"g":     gocui.KeyCtrlG,
	"h":     gocui.KeyCtrlH,
	"i":     gocui.KeyCtrlI,
	"j":     gocui.KeyCtrlJ,
	"k":     gocui.KeyCtrlK,
	"l":     gocui.KeyCtrlL,
	"m":     gocui.KeyCtrlM,
	"n":     gocui.KeyCtrlN,
	"o":     gocui.KeyCtrlO,
	"p":     gocui.KeyCtrlP,
	"q":     gocui.KeyCtrlQ,
	"r":     gocui.KeyCtrlR,
	"s":     gocui.KeyCtrlS,
	"t":     gocui.KeyCtrlT,
	"u":     gocui.KeyCtrlU,
	"v":     gocui.KeyCtrlV,
	"w":     gocui.KeyCtrlW,
	"x":     gocui.KeyCtrlX,
	"y":     gocui.KeyCtrlY,
	"z":     gocui.KeyCtrlZ,
	"\\":    gocui.KeyCtrlBackslash,
	"]":     gocui.KeyCtrlRsqBracket,
	"^":     gocui.KeyCtrl6,
	"_":     gocui.KeyCtrlUnderscore,
	"space": gocui.KeyCtrlSpace,
}

var namedKeys = map[string]gocui.Key{
	"enter":     gocui.KeyEnter,
	"space":     gocui.KeySpace,
	"esc":       gocui.KeyEsc,
	"escape":    gocui.KeyEsc,
	"tab":       gocui.KeyTab,
	"backspace": gocui.KeyBackspace2,
	"delete":    gocui.KeyDelete,
	"insert":    gocui.KeyInsert,
	"home":      gocui.KeyHome,
	"end":       gocui.KeyEnd,
	"pgup":      gocui.KeyPgup,
	"pageup":    gocui.KeyPgup,
	"pgdn":      gocui.KeyPgdn,
	"pagedown":  gocui.KeyPgdn,
	"up":        gocui.KeyArrowUp,
	"down":      gocui.KeyArrowDown,
	"left":      gocui.KeyArrowLeft,
	"right":     gocui.KeyArrowRight,
	"f1":        gocui.KeyF1,
	"f2":        gocui.KeyF2,
	"f3":        gocui.KeyF3,
	"f4":        gocui.KeyF4,
	"f5":        gocui.KeyF5,
	"f6":        gocui.KeyF6,
	"f7":        gocui.KeyF7,
	"f8":        gocui.KeyF8,
	"f9":        gocui.KeyF9,
	"f10":       gocui.KeyF10,
	"f11":       gocui.KeyF11,
	"f12":       gocui.KeyF12,
}
