package kalshi

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/coder/websocket"

	"kalshi-book-tui/internal/book"
)

// DefaultWSURL is the public websocket endpoint.
const DefaultWSURL = "wss://api.elections.kalshi.com/trade-api/ws/v2"

const (
	initialBackoff = time.Second
	maxBackoff     = 30 * time.Second
	wsReadLimit    = 1 << 20
)

// WSConn is the subset of a websocket connection the stream uses.
type WSConn interface {
	Read(ctx context.Context) (websocket.MessageType, []byte, error)
	Write(ctx context.Context, typ websocket.MessageType, p []byte) error
	Close(code websocket.StatusCode, reason string) error
}

// WSDialer abstracts connecting. coder/websocket fills the role; Go ships no
// standard websocket implementation.
type WSDialer interface {
	Dial(ctx context.Context, url string, opts *websocket.DialOptions) (WSConn, *http.Response, error)
}

type coderDialer struct{}

func (coderDialer) Dial(ctx context.Context, url string, opts *websocket.DialOptions) (WSConn, *http.Response, error) {
	conn, resp, err := websocket.Dial(ctx, url, opts)
	if err != nil {
		return nil, resp, err
	}
	conn.SetReadLimit(wsReadLimit)
	return conn, resp, nil
}

// Stream maintains the bins from the orderbook_delta channel instead of
// polling: one snapshot on subscribe, then per-price deltas.
type Stream struct {
	Dialer WSDialer
	URL    string
}

// NewStream returns a Stream against the public endpoint.
func NewStream() *Stream {
	return &Stream{Dialer: coderDialer{}, URL: DefaultWSURL}
}

// Run follows the feed until the context is done, emitting one Result per
// applied message. A dropped connection surfaces as an error Result, then
// the stream redials with exponential backoff; the session keeps showing
// the last good bins meanwhile.
func (s *Stream) Run(ctx context.Context, ticker string, out chan<- Result) {
	backoff := initialBackoff
	for {
		err := s.follow(ctx, ticker, out)
		if ctx.Err() != nil {
			return
		}
		send(ctx, out, Result{Err: fmt.Errorf("stream: %w", err)})

		select {
		case <-ctx.Done():
			return
		case <-time.After(backoff):
		}
		backoff *= 2
		if backoff > maxBackoff {
			backoff = maxBackoff
		}
	}
}

// follow runs a single connection: dial, subscribe, then apply messages
// until a read fails. Malformed messages are reported and skipped; they do
// not tear down the connection.
func (s *Stream) follow(ctx context.Context, ticker string, out chan<- Result) error {
	conn, _, err := s.Dialer.Dial(ctx, s.URL, nil)
	if err != nil {
		return fmt.Errorf("dial: %w", err)
	}
	defer conn.Close(websocket.StatusNormalClosure, "")

	sub := fmt.Sprintf(`{"id":1,"cmd":"subscribe","params":{"channels":["orderbook_delta"],"market_tickers":[%q]}}`, ticker)
	if err := conn.Write(ctx, websocket.MessageText, []byte(sub)); err != nil {
		return fmt.Errorf("subscribe: %w", err)
	}

	var bins book.Bins
	for {
		_, data, err := conn.Read(ctx)
		if err != nil {
			return fmt.Errorf("read: %w", err)
		}
		changed, err := ApplyMessage(&bins, data)
		if err != nil {
			send(ctx, out, Result{Err: err})
			continue
		}
		if changed {
			send(ctx, out, Result{Bins: bins})
		}
	}
}
