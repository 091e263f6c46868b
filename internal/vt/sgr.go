package vt

import "github.com/abdullathedruid/shellpane/internal/screen"

// applySGR returns pen updated by the Select Graphic Rendition parameters.
// An empty list resets. Unsupported codes are ignored; the extended color
// forms 38/48 are skipped together with their sub-parameters.
func applySGR(pen screen.Pen, params []int) screen.Pen {
	if len(params) == 0 {
		return screen.Pen{}
	}
	for i := 0; i < len(params); i++ {
		switch p := params[i]; {
		case p == 0:
			pen = screen.Pen{}
		case p == 1:
			pen.Attrs |= screen.AttrBold
		case p == 2:
			pen.Attrs |= screen.AttrDim
		case p == 4:
			pen.Attrs |= screen.AttrUnderline
		case p == 7:
			pen.Attrs |= screen.AttrInverse
		case p == 22:
			pen.Attrs &^= screen.AttrBold | screen.AttrDim
		case p == 24:
			pen.Attrs &^= screen.AttrUnderline
		case p == 27:
			pen.Attrs &^= screen.AttrInverse
		case p >= 30 && p <= 37:
			pen.Fg = screen.ColorBlack + screen.Color(p-30)
		case p == 39:
			pen.Fg = screen.ColorDefault
		case p >= 40 && p <= 47:
			pen.Bg = screen.ColorBlack + screen.Color(p-40)
		case p == 49:
			pen.Bg = screen.ColorDefault
		case p == 38 || p == 48:
			i += extendedColorLength(params[i+1:])
		}
	}
	return pen
}

// extendedColorLength returns how many parameters follow a 38/48 selector:
// 5;n for the 256-color palette and 2;r;g;b for direct color.
func extendedColorLength(rest []int) int {
	if len(rest) == 0 {
		return 0
	}
	switch rest[0] {
	case 5:
		return min(2, len(rest))
	case 2:
		return min(4, len(rest))
	default:
		return 0
	}
}
