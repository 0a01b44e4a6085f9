// Package view maps the 101-point price axis onto the terminal and draws the
// full frame: header, chart, cursor, best-price markers, tooltip, footer.
package view

import "kalshi-book-tui/internal/book"

// Fixed rows reserved above and below the chart. The header includes the
// tooltip row; the footer holds the pending action and the order log.
const (
	headerRows = 4
	footerRows = 6
	minPlotH   = 8
)

// Viewport describes which contiguous sub-range of the price axis is visible
// and where it sits on screen. It is recomputed from scratch every frame.
type Viewport struct {
	Start, End int // inclusive visible price range

	PlotY, PlotH     int // chart rectangle incl. the horizontal rules
	InnerTop, InnerH int // rows available for bars
	ContentLeft      int // first column of the first visible price slot
	ContentRight     int // last column of the last visible price slot
	FrameLeft        int // vertical rule columns
	FrameRight       int
}

// Layout computes the viewport for a terminal of the given size with the
// cursor at the given price. Each price occupies two columns, one per side.
// The range is centered on the cursor and clamped to the axis; leftover inner
// width becomes symmetric padding. A terminal too narrow for even one price
// degrades to a single-price view.
func Layout(w, h, cursor int) Viewport {
	plotH := h - headerRows - footerRows
	if plotH < minPlotH {
		plotH = minPlotH
	}

	innerLeft := 2
	innerRight := w - 3
	innerW := innerRight - innerLeft + 1
	if innerW < 1 {
		innerW = 1
	}
	innerH := plotH - 2
	if innerH < 1 {
		innerH = 1
	}

	fit := clamp(innerW/2, 1, book.NumPrices)
	start := clamp(cursor-fit/2, 0, book.NumPrices-fit)

	leftPad := (innerW - fit*2) / 2
	if leftPad < 0 {
		leftPad = 0
	}
	contentLeft := innerLeft + leftPad
	contentRight := contentLeft + fit*2 - 1

	frameLeft := contentLeft - 1
	if frameLeft < 1 {
		frameLeft = 1
	}
	frameRight := contentRight + 1
	if frameRight > w-2 {
		frameRight = w - 2
	}

	return Viewport{
		Start:        start,
		End:          start + fit - 1,
		PlotY:        headerRows,
		PlotH:        plotH,
		InnerTop:     headerRows + 1,
		InnerH:       innerH,
		ContentLeft:  contentLeft,
		ContentRight: contentRight,
		FrameLeft:    frameLeft,
		FrameRight:   frameRight,
	}
}

// Count is the number of visible prices.
func (v Viewport) Count() int { return v.End - v.Start + 1 }

// Visible reports whether price p falls inside the viewport.
func (v Viewport) Visible(p int) bool { return v.Start <= p && p <= v.End }

// X returns the terminal column of the slot assigned to price p. Both sides
// share the same column; their bars overwrite each other deliberately so the
// two quantities can be compared at the same price level.
func (v Viewport) X(p int) int { return v.ContentLeft + 2*(p-v.Start) }

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
