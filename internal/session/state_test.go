package session

import (
	"errors"
	"testing"
	"time"

	"kalshi-book-tui/internal/book"
)

func TestNewDefaults(t *testing.T) {
	t.Parallel()

	s := New("KXTEST-26")
	if s.Cursor != 50 || s.Size != 1 || s.Side != book.Yes || s.Scale != book.Linear {
		t.Errorf("unexpected defaults: %+v", s)
	}
}

func TestApply_CursorClamps(t *testing.T) {
	t.Parallel()

	s := New("T")
	for i := 0; i < 200; i++ {
		s.Apply(Left)
	}
	if s.Cursor != 0 {
		t.Errorf("cursor after 200 lefts = %d, want 0", s.Cursor)
	}
	for i := 0; i < 500; i++ {
		s.Apply(Right)
	}
	if s.Cursor != 100 {
		t.Errorf("cursor after 500 rights = %d, want 100", s.Cursor)
	}
}

func TestApply_SizeClamps(t *testing.T) {
	t.Parallel()

	s := New("T")
	for i := 0; i < 10; i++ {
		s.Apply(SizeDown)
	}
	if s.Size != MinSize {
		t.Errorf("size after repeated down = %d, want %d", s.Size, MinSize)
	}
	s.Size = MaxSize - 1
	s.Apply(SizeUp)
	s.Apply(SizeUp)
	if s.Size != MaxSize {
		t.Errorf("size after up at cap = %d, want %d", s.Size, MaxSize)
	}
}

func TestApply_Toggles(t *testing.T) {
	t.Parallel()

	s := New("T")
	s.Apply(ToggleSide)
	if s.Side != book.No {
		t.Errorf("side = %v, want NO", s.Side)
	}
	s.Apply(ToggleSide)
	if s.Side != book.Yes {
		t.Errorf("side = %v, want YES", s.Side)
	}
	s.Apply(ToggleScale)
	if s.Scale != book.Log10 {
		t.Errorf("scale = %v, want log10", s.Scale)
	}
	s.Apply(ToggleScale)
	if s.Scale != book.Linear {
		t.Errorf("scale = %v, want linear", s.Scale)
	}
}

func TestApply_QuitAndNone(t *testing.T) {
	t.Parallel()

	s := New("T")
	if s.Apply(None) {
		t.Error("None must not quit")
	}
	if !s.Apply(Quit) {
		t.Error("Quit must end the session")
	}
}

func TestApply_ConfirmSnapshotsState(t *testing.T) {
	t.Parallel()

	s := New("T")
	ts := time.Date(2026, 8, 26, 12, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return ts }

	s.Cursor = 42
	s.Size = 9
	s.Side = book.No
	s.Apply(Confirm)

	// Later mutations must not rewrite the logged entry.
	s.Cursor = 99
	s.Size = 1
	s.Side = book.Yes

	if len(s.Placed) != 1 {
		t.Fatalf("expected 1 placed order, got %d", len(s.Placed))
	}
	o := s.Placed[0]
	if o.Price != 42 || o.Size != 9 || o.Side != book.No || !o.At.Equal(ts) {
		t.Errorf("logged order does not reflect state at confirm time: %+v", o)
	}
	if got := o.String(); got != "12:00:00 — NO size 9 @ 42c" {
		t.Errorf("order line = %q", got)
	}
}

func TestApply_LogNewestFirstAndCapped(t *testing.T) {
	t.Parallel()

	s := New("T")
	for i := 0; i <= 100; i++ {
		s.Cursor = i
		s.Apply(Confirm)
	}
	if len(s.Placed) != maxPlaced {
		t.Fatalf("log length = %d, want %d", len(s.Placed), maxPlaced)
	}
	if s.Placed[0].Price != 100 {
		t.Errorf("newest entry first: got price %d", s.Placed[0].Price)
	}
	if s.Placed[maxPlaced-1].Price != 100-maxPlaced+1 {
		t.Errorf("oldest surviving entry = %d", s.Placed[maxPlaced-1].Price)
	}
}

func TestSetResult(t *testing.T) {
	t.Parallel()

	s := New("T")
	first := book.Build([][2]int{{50, 10}}, nil)
	s.SetResult(first, nil)
	if s.Bins != first || s.Err != "" {
		t.Fatalf("successful fetch not applied")
	}

	// A failed fetch keeps the previous bins and surfaces the message.
	s.SetResult(book.Bins{}, errors.New("request timed out"))
	if s.Bins != first {
		t.Error("failed fetch must not touch the bins")
	}
	if s.Err != "request timed out" {
		t.Errorf("Err = %q", s.Err)
	}

	// The next success clears it.
	second := book.Build([][2]int{{40, 1}}, nil)
	s.SetResult(second, nil)
	if s.Bins != second || s.Err != "" {
		t.Error("recovery fetch must replace bins and clear the error")
	}
}

func TestPlacedLines(t *testing.T) {
	t.Parallel()

	s := New("T")
	s.now = func() time.Time { return time.Date(2026, 8, 26, 9, 30, 0, 0, time.UTC) }
	for i := 0; i < 6; i++ {
		s.Size = i + 1
		s.Apply(Confirm)
	}
	lines := s.PlacedLines(4)
	if len(lines) != 4 {
		t.Fatalf("expected 4 lines, got %d", len(lines))
	}
	if lines[0] != "09:30:00 — YES size 6 @ 50c" {
		t.Errorf("newest line = %q", lines[0])
	}

	if got := New("T").PlacedLines(4); len(got) != 0 {
		t.Errorf("empty log should yield no lines, got %v", got)
	}
}
