// Package session owns the mutable state of one viewing session: cursor,
// order size, side, scale mode, the latest bins and the simulated order log.
// Only the driver loop's goroutine touches a State, so there are no locks.
package session

import (
	"fmt"
	"time"

	"kalshi-book-tui/internal/book"
)

// Input is one decoded key event. Unrecognised keys never reach the state
// machine; the terminal layer maps them to None and the loop drops them.
type Input int

const (
	None Input = iota
	Quit
	Left
	Right
	SizeUp
	SizeDown
	ToggleScale
	ToggleSide
	Confirm
)

// Order size bounds and the order log cap.
const (
	MinSize   = 1
	MaxSize   = 999999
	maxPlaced = 50
)

// Order is one simulated placement. Nothing leaves the process; the log is
// the entire effect.
type Order struct {
	At    time.Time
	Side  book.Side
	Size  int
	Price int
}

func (o Order) String() string {
	return fmt.Sprintf("%s — %s size %d @ %dc", o.At.Format("15:04:05"), o.Side, o.Size, o.Price)
}

// State is the session state machine.
type State struct {
	Ticker string
	Cursor int
	Size   int
	Side   book.Side
	Scale  book.Scale
	Bins   book.Bins
	Err    string
	Placed []Order // newest first

	now func() time.Time
}

// New returns a session looking at the middle of the axis with a unit order.
func New(ticker string) *State {
	return &State{
		Ticker: ticker,
		Cursor: 50,
		Size:   MinSize,
		Side:   book.Yes,
		Scale:  book.Linear,
		now:    time.Now,
	}
}

// Apply runs one transition. It reports whether the session should end.
// Every transition is a pure field mutation; Confirm only appends to the
// local log.
func (s *State) Apply(in Input) (quit bool) {
	switch in {
	case Quit:
		return true
	case Left:
		s.Cursor = clamp(s.Cursor-1, 0, 100)
	case Right:
		s.Cursor = clamp(s.Cursor+1, 0, 100)
	case SizeUp:
		s.Size = clamp(s.Size+1, MinSize, MaxSize)
	case SizeDown:
		s.Size = clamp(s.Size-1, MinSize, MaxSize)
	case ToggleScale:
		s.Scale = s.Scale.Toggle()
	case ToggleSide:
		s.Side = s.Side.Other()
	case Confirm:
		o := Order{At: s.now(), Side: s.Side, Size: s.Size, Price: s.Cursor}
		s.Placed = append([]Order{o}, s.Placed...)
		if len(s.Placed) > maxPlaced {
			s.Placed = s.Placed[:maxPlaced]
		}
	}
	return false
}

// SetResult applies one fetch outcome. A failure keeps the previous bins on
// screen; a success replaces them wholesale and clears the error line.
func (s *State) SetResult(bins book.Bins, err error) {
	if err != nil {
		s.Err = err.Error()
		return
	}
	s.Bins = bins
	s.Err = ""
}

// PlacedLines formats the newest n log entries for the footer.
func (s *State) PlacedLines(n int) []string {
	if n > len(s.Placed) {
		n = len(s.Placed)
	}
	lines := make([]string, 0, n)
	for _, o := range s.Placed[:n] {
		lines = append(lines, o.String())
	}
	return lines
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
