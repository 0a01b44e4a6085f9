package view

import "github.com/gdamore/tcell/v2"

// Canvas is the drawing surface the renderer targets. Implementations must
// treat out-of-bounds coordinates as a no-op: the renderer never pre-clips,
// so this is what makes resizes and tiny terminals safe.
type Canvas interface {
	Size() (w, h int)
	SetCell(x, y int, r rune, style tcell.Style)
}
