package kalshi

import (
	"context"
	"time"

	"kalshi-book-tui/internal/book"
)

// Result is one fetch outcome handed to the session loop. On error the bins
// are zero and must be ignored; the loop keeps whatever it showed last.
type Result struct {
	Bins book.Bins
	Err  error
}

// Poll fetches the book immediately and then on every tick, sending exactly
// one Result per attempt. It returns when the context is done. Failures are
// reported like successes; the next tick retries regardless.
func Poll(ctx context.Context, c *Client, ticker string, every time.Duration, out chan<- Result) {
	fetch := func() {
		bins, err := c.Orderbook(ctx, ticker)
		send(ctx, out, Result{Bins: bins, Err: err})
	}

	fetch()
	tick := time.NewTicker(every)
	defer tick.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-tick.C:
			fetch()
		}
	}
}

func send(ctx context.Context, out chan<- Result, r Result) {
	select {
	case out <- r:
	case <-ctx.Done():
	}
}
