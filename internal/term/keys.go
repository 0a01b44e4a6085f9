package term

import (
	"github.com/gdamore/tcell/v2"

	"kalshi-book-tui/internal/session"
)

// translateKey maps a key event to a session input. Arrows move the cursor
// and size, hjkl-style letters mirror the arrows, and anything unrecognised
// is a no-op.
func translateKey(ev *tcell.EventKey) session.Input {
	switch ev.Key() {
	case tcell.KeyLeft:
		return session.Left
	case tcell.KeyRight:
		return session.Right
	case tcell.KeyUp:
		return session.SizeUp
	case tcell.KeyDown:
		return session.SizeDown
	case tcell.KeyEnter:
		return session.Confirm
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return session.Quit
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q', 'Q':
			return session.Quit
		case 'h':
			return session.Left
		case 'l':
			return session.Right
		case 'g', 'G':
			return session.ToggleScale
		case 's', 'S':
			return session.ToggleSide
		}
	}
	return session.None
}
