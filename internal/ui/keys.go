package ui

import (
	"github.com/jesseduffield/gocui"

	"github.com/abdullathedruid/shellpane/internal/keys"
)

// namedKeys is checked in order. Several gocui keys share a value with a
// ctrl key (Enter is Ctrl+M, Tab is Ctrl+I), so the named meaning wins.
var namedKeys = []struct {
	gocui gocui.Key
	key   keys.Key
}{
	{gocui.KeyEnter, keys.KeyEnter},
	{gocui.KeyTab, keys.KeyTab},
	{gocui.KeyBackspace, keys.KeyBackspace},
	{gocui.KeyBackspace2, keys.KeyBackspace},
	{gocui.KeyEsc, keys.KeyEscape},
	{gocui.KeyInsert, keys.KeyInsert},
	{gocui.KeyDelete, keys.KeyDelete},
	{gocui.KeyHome, keys.KeyHome},
	{gocui.KeyEnd, keys.KeyEnd},
	{gocui.KeyPgup, keys.KeyPageUp},
	{gocui.KeyPgdn, keys.KeyPageDown},
	{gocui.KeyArrowUp, keys.KeyArrowUp},
	{gocui.KeyArrowDown, keys.KeyArrowDown},
	{gocui.KeyArrowLeft, keys.KeyArrowLeft},
	{gocui.KeyArrowRight, keys.KeyArrowRight},
	{gocui.KeyF1, keys.KeyF1},
	{gocui.KeyF2, keys.KeyF2},
	{gocui.KeyF3, keys.KeyF3},
	{gocui.KeyF4, keys.KeyF4},
	{gocui.KeyF5, keys.KeyF5},
	{gocui.KeyF6, keys.KeyF6},
	{gocui.KeyF7, keys.KeyF7},
	{gocui.KeyF8, keys.KeyF8},
	{gocui.KeyF9, keys.KeyF9},
	{gocui.KeyF10, keys.KeyF10},
	{gocui.KeyF11, keys.KeyF11},
	{gocui.KeyF12, keys.KeyF12},
}

// ctrlKeys maps gocui ctrl keys to the rune they are a combination with.
var ctrlKeys = []struct {
	gocui gocui.Key
	r     rune
}{
	{gocui.KeyCtrlA, 'a'},
	{gocui.KeyCtrlB, 'b'},
	{gocui.KeyCtrlC, 'c'},
	{gocui.KeyCtrlD, 'd'},
	{gocui.KeyCtrlE, 'e'},
	{gocui.KeyCtrlF, 'f'},
	{gocui.KeyCtrlG, 'g'},
	{gocui.KeyCtrlH, 'h'},
	{gocui.KeyCtrlI, 'i'},
	{gocui.KeyCtrlJ, 'j'},
	{gocui.KeyCtrlK, 'k'},
	{gocui.KeyCtrlL, 'l'},
	{gocui.KeyCtrlM, 'm'},
	{gocui.KeyCtrlN, 'n'},
	{gocui.KeyCtrlO, 'o'},
	{gocui.KeyCtrlP, 'p'},
	{gocui.KeyCtrlQ, 'q'},
	{gocui.KeyCtrlR, 'r'},
	{gocui.KeyCtrlS, 's'},
	{gocui.KeyCtrlT, 't'},
	{gocui.KeyCtrlU, 'u'},
	{gocui.KeyCtrlV, 'v'},
	{gocui.KeyCtrlW, 'w'},
	{gocui.KeyCtrlX, 'x'},
	{gocui.KeyCtrlY, 'y'},
	{gocui.KeyCtrlZ, 'z'},
	{gocui.KeyCtrlBackslash, '\\'},
	{gocui.KeyCtrlSpace, ' '},
	{gocui.KeyCtrlRsqBracket, ']'},
	{gocui.KeyCtrl6, '^'},
	{gocui.KeyCtrlUnderscore, '_'},
}

// KeyEvent converts a gocui key press into a logical key event.
func KeyEvent(key gocui.Key, ch rune, mod gocui.Modifier) keys.Event {
	var m keys.Modifier
	if mod&gocui.ModAlt != 0 {
		m |= keys.ModAlt
	}

	if ch != 0 {
		return keys.Event{Key: keys.KeyRune, Rune: ch, Mod: m}
	}
	if key == gocui.KeySpace {
		return keys.Event{Key: keys.KeyRune, Rune: ' ', Mod: m}
	}
	for _, nk := range namedKeys {
		if nk.gocui == key {
			return keys.Event{Key: nk.key, Mod: m}
		}
	}
	for _, ck := range ctrlKeys {
		if ck.gocui == key {
			return keys.Event{Key: keys.KeyRune, Rune: ck.r, Mod: m | keys.ModCtrl}
		}
	}
	return keys.Event{Mod: m}
}
