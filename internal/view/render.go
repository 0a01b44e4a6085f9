package view

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"

	"kalshi-book-tui/internal/book"
)

// Frame is everything one redraw needs. The renderer is stateless: it never
// reads the previous frame, so a resize only changes the next Layout call.
type Frame struct {
	Ticker string
	Bins   book.Bins
	Cursor int
	Size   int
	Side   book.Side
	Scale  book.Scale
	Err    string
	Placed []string // newest first, at most the footer's four rows are drawn
	Glyphs Glyphs
	Styles Styles
}

// Render draws a complete frame. Layers are drawn in a fixed order and each
// may overwrite the previous; in particular the cursor line goes down before
// the bars so that a tall bar occludes it.
func Render(c Canvas, f Frame) {
	w, h := c.Size()
	v := Layout(w, h, f.Cursor)

	byb, hasBid := f.Bins.BestYesBid()
	bya, hasAsk := f.Bins.BestYesAsk()

	drawHeader(c, f, byb, hasBid, bya, hasAsk)
	drawFrame(c, f, v)
	drawCursor(c, f, v)
	drawBars(c, f, v)
	drawBestMarkers(c, f, v, byb, hasBid, bya, hasAsk)
	if f.Err == "" {
		drawTooltip(c, f, byb, hasBid, bya, hasAsk)
	}
	drawFooter(c, f, h)
}

func drawHeader(c Canvas, f Frame, byb int, hasBid bool, bya int, hasAsk bool) {
	line1 := fmt.Sprintf("%s | side=%s | size=%d | scale=%s", f.Ticker, f.Side, f.Size, f.Scale)
	putText(c, 0, 0, line1, f.Styles.Header)

	line2 := fmt.Sprintf("YES Bid %sc | YES Ask %sc | Spread %sc",
		orDash(byb, hasBid), orDash(bya, hasAsk), spreadText(f.Bins))
	putText(c, 0, 1, line2, f.Styles.Text)

	if f.Err != "" {
		putText(c, 0, 2, "Error: "+f.Err, f.Styles.Error)
	}
}

func drawFrame(c Canvas, f Frame, v Viewport) {
	for x := v.FrameLeft; x <= v.FrameRight; x++ {
		c.SetCell(x, v.PlotY, f.Glyphs.HLine, f.Styles.Text)
		c.SetCell(x, v.PlotY+v.PlotH-1, f.Glyphs.HLine, f.Styles.Text)
	}
	for y := v.PlotY + 1; y < v.PlotY+v.PlotH-1; y++ {
		c.SetCell(v.FrameLeft, y, f.Glyphs.VLine, f.Styles.Text)
		c.SetCell(v.FrameRight, y, f.Glyphs.VLine, f.Styles.Text)
	}
}

func drawCursor(c Canvas, f Frame, v Viewport) {
	if !v.Visible(f.Cursor) {
		return
	}
	cx := v.X(f.Cursor)
	for y := v.InnerTop; y < v.InnerTop+v.InnerH; y++ {
		c.SetCell(cx, y, f.Glyphs.VLine, f.Styles.Cursor)
	}
	c.SetCell(cx, v.PlotY-1, f.Glyphs.Down, f.Styles.Cursor)
	c.SetCell(cx, v.PlotY+v.PlotH, f.Glyphs.Up, f.Styles.Cursor)
}

func drawBars(c Canvas, f Frame, v Viewport) {
	// Auto-scale to the visible range only, never the whole axis.
	maxT := 1.0
	for p := v.Start; p <= v.End; p++ {
		maxT = math.Max(maxT, book.Transform(f.Bins.Yes[p], f.Scale))
		maxT = math.Max(maxT, book.Transform(f.Bins.No[p], f.Scale))
	}

	heightFor := func(qty int) int {
		t := book.Transform(qty, f.Scale)
		return int(math.Round(t / maxT * float64(v.InnerH)))
	}

	for p := v.Start; p <= v.End; p++ {
		x := v.X(p)

		yesStyle := f.Styles.Bid
		if p == f.Cursor && f.Side == book.Yes {
			yesStyle = yesStyle.Bold(true)
		}
		drawBar(c, f.Glyphs, v, x, heightFor(f.Bins.Yes[p]), yesStyle)

		noStyle := f.Styles.Ask
		if p == f.Cursor && f.Side == book.No {
			noStyle = noStyle.Bold(true)
		}
		drawBar(c, f.Glyphs, v, x, heightFor(f.Bins.No[p]), noStyle)
	}
}

// drawBar paints a bottom-anchored column. A zero height draws nothing, which
// keeps the cursor line visible through empty prices.
func drawBar(c Canvas, g Glyphs, v Viewport, x, barH int, style tcell.Style) {
	for dy := 0; dy < barH; dy++ {
		c.SetCell(x, v.InnerTop+v.InnerH-1-dy, g.Bar, style)
	}
}

func drawBestMarkers(c Canvas, f Frame, v Viewport, byb int, hasBid bool, bya int, hasAsk bool) {
	w, _ := c.Size()
	leftMargin := v.ContentLeft
	rightMargin := w - 1 - v.ContentRight

	if hasBid && v.Visible(byb) {
		cx := v.X(byb)
		drawVDots(c, f, v, cx, f.Styles.BestBid)
		putTextCentered(c, v.InnerTop, cx, fmt.Sprintf("Bid %dc", byb),
			f.Styles.BestBid, leftMargin, rightMargin)
	}

	if hasAsk && v.Visible(bya) {
		cx := v.X(bya)
		drawVDots(c, f, v, cx, f.Styles.BestAsk)
		// Both markers on the same column would stack their labels.
		row := v.InnerTop
		if hasBid && byb == bya {
			row++
		}
		putTextCentered(c, row, cx, fmt.Sprintf("Ask %dc", bya),
			f.Styles.BestAsk, leftMargin, rightMargin)
	}
}

func drawVDots(c Canvas, f Frame, v Viewport, x int, style tcell.Style) {
	for i := 0; i < v.InnerH; i += 2 {
		c.SetCell(x, v.InnerTop+i, f.Glyphs.Dot, style)
	}
}

func drawTooltip(c Canvas, f Frame, byb int, hasBid bool, bya int, hasAsk bool) {
	tags := ""
	switch {
	case hasBid && f.Cursor == byb && hasAsk && f.Cursor == bya:
		tags = " [BestBid, BestAsk]"
	case hasBid && f.Cursor == byb:
		tags = " [BestBid]"
	case hasAsk && f.Cursor == bya:
		tags = " [BestAsk]"
	}
	info := fmt.Sprintf("cursor %dc — YES bid qty %d | NO→YES ask qty %d%s",
		f.Cursor, f.Bins.Yes[f.Cursor], f.Bins.No[f.Cursor], tags)
	putText(c, 0, 2, info, f.Styles.Text)
}

func drawFooter(c Canvas, f Frame, h int) {
	putText(c, 0, h-6, fmt.Sprintf("(Enter places %d %s)", f.Size, f.Side), f.Styles.Footer)
	putText(c, 0, h-5, "Placed (fake) orders:", f.Styles.Text)
	for i, line := range f.Placed {
		if i >= 4 {
			break
		}
		putText(c, 0, h-4+i, line, f.Styles.Text)
	}
}

// putText writes s left to right. The canvas discards anything outside its
// bounds, so no clipping happens here.
func putText(c Canvas, x, y int, s string, style tcell.Style) {
	for i, r := range []rune(s) {
		c.SetCell(x+i, y, r, style)
	}
}

// putTextCentered centers s on xCenter inside [leftMargin, w-rightMargin),
// truncating to the room between the margins.
func putTextCentered(c Canvas, y, xCenter int, s string, style tcell.Style, leftMargin, rightMargin int) {
	w, _ := c.Size()
	maxW := w - leftMargin - rightMargin
	if maxW < 0 {
		maxW = 0
	}
	rs := []rune(s)
	if len(rs) > maxW {
		rs = rs[:maxW]
	}
	start := clamp(xCenter-len(rs)/2, leftMargin, leftMargin+maxW-len(rs))
	for i, r := range rs {
		c.SetCell(start+i, y, r, style)
	}
}

func orDash(v int, ok bool) string {
	if !ok {
		return "-"
	}
	return fmt.Sprintf("%d", v)
}

func spreadText(b book.Bins) string {
	s, ok := b.Spread()
	return orDash(s, ok)
}
