// Package keys translates logical key events into the byte sequences a
// shell running under TERM=linux expects on its input.
package keys

// Key identifies a logical key independent of any UI toolkit.
type Key int

const (
	KeyNone Key = iota
	// KeyRune is a printable character carried in Event.Rune.
	KeyRune
	KeyEnter
	KeyTab
	KeyBackspace
	KeyEscape
	KeyInsert
	KeyDelete
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeyArrowUp
	KeyArrowDown
	KeyArrowLeft
	KeyArrowRight
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12
	// Modifier-only keys. They never produce output on their own.
	KeyShift
	KeyControl
	KeyAlt
	KeyMeta
)

var keyNames = map[Key]string{
	KeyNone:       "none",
	KeyRune:       "rune",
	KeyEnter:      "enter",
	KeyTab:        "tab",
	KeyBackspace:  "backspace",
	KeyEscape:     "escape",
	KeyInsert:     "insert",
	KeyDelete:     "delete",
	KeyHome:       "home",
	KeyEnd:        "end",
	KeyPageUp:     "pageup",
	KeyPageDown:   "pagedown",
	KeyArrowUp:    "up",
	KeyArrowDown:  "down",
	KeyArrowLeft:  "left",
	KeyArrowRight: "right",
	KeyF1:         "f1",
	KeyF2:         "f2",
	KeyF3:         "f3",
	KeyF4:         "f4",
	KeyF5:         "f5",
	KeyF6:         "f6",
	KeyF7:         "f7",
	KeyF8:         "f8",
	KeyF9:         "f9",
	KeyF10:        "f10",
	KeyF11:        "f11",
	KeyF12:        "f12",
	KeyShift:      "shift",
	KeyControl:    "control",
	KeyAlt:        "alt",
	KeyMeta:       "meta",
}

func (k Key) String() string {
	if name, ok := keyNames[k]; ok {
		return name
	}
	return "unknown"
}

// IsModifier reports whether k is a modifier-only key.
func (k Key) IsModifier() bool {
	return k >= KeyShift && k <= KeyMeta
}

// Modifier is a bit set of held modifier keys.
type Modifier uint8

const (
	ModCtrl Modifier = 1 << iota
	ModAlt
	ModShift
)

// Has reports whether all bits of m2 are set in m.
func (m Modifier) Has(m2 Modifier) bool { return m&m2 == m2 }

// Event is a single key press.
type Event struct {
	Key  Key
	Rune rune
	Mod  Modifier
}

// Rune returns a plain character event.
func Rune(r rune) Event { return Event{Key: KeyRune, Rune: r} }

// Ctrl returns a Ctrl+r event.
func Ctrl(r rune) Event { return Event{Key: KeyRune, Rune: r, Mod: ModCtrl} }
