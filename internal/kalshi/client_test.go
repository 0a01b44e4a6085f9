package kalshi

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

// MockHTTPClient implements HTTPClient for testing.
type MockHTTPClient struct {
	DoFunc func(req *http.Request) (*http.Response, error)
}

func (m *MockHTTPClient) Do(req *http.Request) (*http.Response, error) {
	return m.DoFunc(req)
}

func TestClient_Orderbook(t *testing.T) {
	t.Parallel()

	var gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		_, _ = w.Write(orderbookPayload)
	}))
	defer server.Close()

	c := NewClient()
	c.BaseURL = server.URL

	bins, err := c.Orderbook(context.Background(), "KXTEST-26")
	if err != nil {
		t.Fatalf("Orderbook failed: %v", err)
	}
	if gotPath != "/markets/KXTEST-26/orderbook" {
		t.Errorf("request path = %q", gotPath)
	}
	if bins.Yes[40] != 100 || bins.Yes[50] != 300 {
		t.Errorf("bins not built from response: %v %v", bins.Yes[40], bins.Yes[50])
	}
}

func TestClient_Orderbook_HTTPStatus(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, `{"error":"market not found"}`, http.StatusNotFound)
	}))
	defer server.Close()

	c := NewClient()
	c.BaseURL = server.URL

	_, err := c.Orderbook(context.Background(), "NOPE")
	if err == nil {
		t.Fatal("expected error for 404")
	}
	if !strings.Contains(err.Error(), "404") {
		t.Errorf("error should carry the status: %v", err)
	}
}

func TestClient_Orderbook_MalformedBody(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"orderbook": {`))
	}))
	defer server.Close()

	c := NewClient()
	c.BaseURL = server.URL

	if _, err := c.Orderbook(context.Background(), "T"); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestClient_Orderbook_NetworkError(t *testing.T) {
	t.Parallel()

	c := &Client{
		HTTP: &MockHTTPClient{
			DoFunc: func(_ *http.Request) (*http.Response, error) {
				return nil, errors.New("connection refused")
			},
		},
		BaseURL: DefaultBaseURL,
	}

	_, err := c.Orderbook(context.Background(), "T")
	if err == nil || !strings.Contains(err.Error(), "connection refused") {
		t.Errorf("expected wrapped network error, got %v", err)
	}
}

func TestPoll(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write(orderbookPayload)
	}))
	defer server.Close()

	c := NewClient()
	c.BaseURL = server.URL

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	out := make(chan Result, 4)
	done := make(chan struct{})
	go func() {
		defer close(done)
		Poll(ctx, c, "T", 10*time.Millisecond, out)
	}()

	// First fetch is immediate, the second comes from the ticker.
	for i := 0; i < 2; i++ {
		select {
		case res := <-out:
			if res.Err != nil {
				t.Fatalf("result %d: %v", i, res.Err)
			}
			if res.Bins.Yes[50] != 300 {
				t.Errorf("result %d bins: %d", i, res.Bins.Yes[50])
			}
		case <-time.After(2 * time.Second):
			t.Fatal("timed out waiting for poll result")
		}
	}

	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Poll did not stop on context cancel")
	}
}

func TestPoll_SurfacesFetchErrors(t *testing.T) {
	t.Parallel()

	c := &Client{
		HTTP: &MockHTTPClient{
			DoFunc: func(_ *http.Request) (*http.Response, error) {
				return nil, errors.New("request timed out")
			},
		},
		BaseURL: DefaultBaseURL,
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	out := make(chan Result, 1)
	go Poll(ctx, c, "T", time.Hour, out)

	select {
	case res := <-out:
		if res.Err == nil || !strings.Contains(res.Err.Error(), "request timed out") {
			t.Errorf("expected timeout error, got %v", res.Err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for error result")
	}
}
