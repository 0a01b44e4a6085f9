package view

import "github.com/gdamore/tcell/v2"

// Glyphs is the character set used for chart drawing, chosen once at startup
// from the terminal's reported capabilities rather than sniffed per frame.
type Glyphs struct {
	Bar   rune
	VLine rune
	HLine rune
	Dot   rune
	Up    rune
	Down  rune
}

// UnicodeGlyphs returns the box-drawing set.
func UnicodeGlyphs() Glyphs {
	return Glyphs{Bar: '█', VLine: '│', HLine: '─', Dot: '·', Up: '▲', Down: '▼'}
}

// ASCIIGlyphs returns the fallback set for terminals without usable Unicode.
func ASCIIGlyphs() Glyphs {
	return Glyphs{Bar: '#', VLine: '|', HLine: '-', Dot: '.', Up: '^', Down: 'v'}
}

// xterm-256 palette indices.
const (
	paletteBid     = 48  // teal
	paletteAsk     = 203 // coral
	paletteCursor  = 15  // white
	paletteHeader  = 51  // electric cyan
	paletteBestBid = 190 // lime
	paletteBestAsk = 220 // amber
)

// Styles carries the per-layer text attributes for one session.
type Styles struct {
	Text    tcell.Style
	Header  tcell.Style
	Error   tcell.Style
	Bid     tcell.Style
	Ask     tcell.Style
	Cursor  tcell.Style
	BestBid tcell.Style
	BestAsk tcell.Style
	Footer  tcell.Style
}

// PaletteStyles returns the 256-color styles.
func PaletteStyles() Styles {
	d := tcell.StyleDefault
	return Styles{
		Text:    d,
		Header:  d.Foreground(tcell.PaletteColor(paletteHeader)),
		Error:   d.Bold(true),
		Bid:     d.Foreground(tcell.PaletteColor(paletteBid)),
		Ask:     d.Foreground(tcell.PaletteColor(paletteAsk)),
		Cursor:  d.Foreground(tcell.PaletteColor(paletteCursor)).Bold(true),
		BestBid: d.Foreground(tcell.PaletteColor(paletteBestBid)).Bold(true),
		BestAsk: d.Foreground(tcell.PaletteColor(paletteBestAsk)).Bold(true),
		Footer:  d.Bold(true),
	}
}

// MonoStyles returns attribute-only styles for terminals without 256 colors.
func MonoStyles() Styles {
	d := tcell.StyleDefault
	return Styles{
		Text:    d,
		Header:  d,
		Error:   d.Bold(true),
		Bid:     d,
		Ask:     d,
		Cursor:  d.Bold(true),
		BestBid: d.Bold(true),
		BestAsk: d.Bold(true),
		Footer:  d.Bold(true),
	}
}
