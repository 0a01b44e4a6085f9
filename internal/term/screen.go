// Package term owns the tcell terminal for the lifetime of a session and
// decodes its events into session inputs.
package term

import (
	"context"
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"

	"kalshi-book-tui/internal/session"
	"kalshi-book-tui/internal/view"
)

// Screen wraps a tcell screen together with the glyphs and styles picked for
// it at startup.
type Screen struct {
	tc     tcell.Screen
	Glyphs view.Glyphs
	Styles view.Styles
}

var _ view.Canvas = (*Screen)(nil)

// New initialises the terminal and detects its capabilities once: the glyph
// set from the reported character set (or forced to ASCII) and the styles
// from the color count. tcell discards out-of-bounds SetContent calls, which
// is the clipping behaviour the renderer depends on.
func New(asciiOnly bool) (*Screen, error) {
	tc, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	if err := tc.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	tc.HideCursor()
	tc.Clear()

	s := &Screen{tc: tc}
	if asciiOnly || !strings.Contains(strings.ToLower(tc.CharacterSet()), "utf") {
		s.Glyphs = view.ASCIIGlyphs()
	} else {
		s.Glyphs = view.UnicodeGlyphs()
	}
	if tc.Colors() >= 256 {
		s.Styles = view.PaletteStyles()
	} else {
		s.Styles = view.MonoStyles()
	}
	return s, nil
}

// Fini restores the terminal. Safe to call once on every exit path.
func (s *Screen) Fini() { s.tc.Fini() }

// Size implements [view.Canvas].
func (s *Screen) Size() (int, int) { return s.tc.Size() }

// SetCell implements [view.Canvas].
func (s *Screen) SetCell(x, y int, r rune, style tcell.Style) {
	s.tc.SetContent(x, y, r, nil, style)
}

// Clear wipes the back buffer before a redraw.
func (s *Screen) Clear() { s.tc.Clear() }

// Show flushes the frame to the terminal.
func (s *Screen) Show() { s.tc.Show() }

// Events pumps decoded inputs until the context is done or the screen is
// finalised. Resizes are absorbed here with a sync; the next frame lays out
// against the new size anyway.
func (s *Screen) Events(ctx context.Context) <-chan session.Input {
	ch := make(chan session.Input, 16)
	go func() {
		defer close(ch)
		for {
			ev := s.tc.PollEvent()
			if ev == nil {
				return
			}
			var in session.Input
			switch ev := ev.(type) {
			case *tcell.EventResize:
				s.tc.Sync()
				continue
			case *tcell.EventKey:
				in = translateKey(ev)
			default:
				continue
			}
			if in == session.None {
				continue
			}
			select {
			case ch <- in:
			case <-ctx.Done():
				return
			}
		}
	}()
	return ch
}
