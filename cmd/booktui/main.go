// Package main serves as the entry-point for the order book viewer.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"kalshi-book-tui/internal/kalshi"
	"kalshi-book-tui/internal/session"
	"kalshi-book-tui/internal/term"
	"kalshi-book-tui/internal/view"
)

// loopIdle is the pause at the end of every loop iteration.
const loopIdle = 10 * time.Millisecond

func main() {
	ticker := flag.String("ticker", "", "Kalshi market ticker (required)")
	refreshMS := flag.Int("refresh-ms", 250, "refresh interval in ms (ignored with -stream)")
	stream := flag.Bool("stream", false, "follow the websocket delta feed instead of polling")
	ascii := flag.Bool("ascii", false, "force the ASCII glyph set")
	flag.Parse()

	if *ticker == "" {
		fmt.Fprintln(os.Stderr, "booktui: -ticker is required")
		flag.Usage()
		os.Exit(2)
	}
	if *refreshMS <= 0 {
		fmt.Fprintln(os.Stderr, "booktui: -refresh-ms must be positive")
		os.Exit(2)
	}

	// Graceful shutdown: an interrupt cancels the context, the loop exits,
	// the deferred Fini restores the terminal.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		cancel()
	}()

	scr, err := term.New(*ascii)
	if err != nil {
		fmt.Fprintf(os.Stderr, "booktui: %v\n", err)
		os.Exit(1)
	}
	defer scr.Fini()

	resultCh := make(chan kalshi.Result, 1)
	if *stream {
		go kalshi.NewStream().Run(ctx, *ticker, resultCh)
	} else {
		every := time.Duration(*refreshMS) * time.Millisecond
		go kalshi.Poll(ctx, kalshi.NewClient(), *ticker, every, resultCh)
	}

	runLoop(ctx, scr, session.New(*ticker), scr.Events(ctx), resultCh)
}

// runLoop is the one goroutine that owns the session state and the frame.
// Each iteration applies at most one pending input, then at most one pending
// fetch result, then redraws: a frame never predates the events consumed
// before it. Neither poll blocks; an idle terminal still refreshes.
func runLoop(
	ctx context.Context,
	scr *term.Screen,
	st *session.State,
	inputCh <-chan session.Input,
	resultCh <-chan kalshi.Result,
) {
	for {
		select {
		case <-ctx.Done():
			return
		case in, ok := <-inputCh:
			if !ok || st.Apply(in) {
				return
			}
		default:
		}

		select {
		case res := <-resultCh:
			st.SetResult(res.Bins, res.Err)
		default:
		}

		scr.Clear()
		view.Render(scr, view.Frame{
			Ticker: st.Ticker,
			Bins:   st.Bins,
			Cursor: st.Cursor,
			Size:   st.Size,
			Side:   st.Side,
			Scale:  st.Scale,
			Err:    st.Err,
			Placed: st.PlacedLines(4),
			Glyphs: scr.Glyphs,
			Styles: scr.Styles,
		})
		scr.Show()
		time.Sleep(loopIdle)
	}
}
