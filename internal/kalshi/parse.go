package kalshi

import (
	"fmt"

	"github.com/valyala/fastjson"

	"kalshi-book-tui/internal/book"
)

// ParseOrderbook extracts the yes/no (price, quantity) lists from a REST
// orderbook response:
//
//	{"orderbook": {"yes": [[price, qty], ...], "no": [[price, qty], ...]}}
//
// A null orderbook or a missing side yields an empty list, matching an empty
// market. Fractional quantities truncate to integers.
func ParseOrderbook(data []byte) (yes, no [][2]int, err error) {
	var p fastjson.Parser
	v, err := p.ParseBytes(data)
	if err != nil {
		return nil, nil, fmt.Errorf("parse orderbook: %w", err)
	}
	ob := v.Get("orderbook")
	if ob == nil {
		return nil, nil, nil
	}
	return levels(ob.Get("yes")), levels(ob.Get("no")), nil
}

// levels converts a JSON [[price, qty], ...] array. Entries that are not
// two-element arrays are skipped.
func levels(v *fastjson.Value) [][2]int {
	arr := v.GetArray()
	if len(arr) == 0 {
		return nil
	}
	out := make([][2]int, 0, len(arr))
	for _, e := range arr {
		pair := e.GetArray()
		if len(pair) < 2 {
			continue
		}
		// Float quantities truncate toward zero.
		out = append(out, [2]int{int(pair[0].GetFloat64()), int(pair[1].GetFloat64())})
	}
	return out
}

// ApplyMessage applies one websocket message to the bins in place. Snapshots
// replace the whole pair; deltas adjust a single bin, floored at zero. It
// reports whether the bins changed, so acks and heartbeats cause no redraw.
func ApplyMessage(b *book.Bins, data []byte) (bool, error) {
	var p fastjson.Parser
	v, err := p.ParseBytes(data)
	if err != nil {
		return false, fmt.Errorf("parse message: %w", err)
	}

	switch string(v.GetStringBytes("type")) {
	case "orderbook_snapshot":
		msg := v.Get("msg")
		if msg == nil {
			return false, fmt.Errorf("snapshot without msg body")
		}
		*b = book.Build(levels(msg.Get("yes")), levels(msg.Get("no")))
		return true, nil

	case "orderbook_delta":
		msg := v.Get("msg")
		if msg == nil {
			return false, fmt.Errorf("delta without msg body")
		}
		price := msg.GetInt("price")
		delta := msg.GetInt("delta")

		// Deltas arrive on the side's native axis, same mapping as Build.
		idx := price
		bins := &b.Yes
		if string(msg.GetStringBytes("side")) == "no" {
			idx = 100 - price
			bins = &b.No
		}
		if idx < 0 || idx > 100 {
			return false, nil
		}
		q := bins[idx] + delta
		if q < 0 {
			q = 0
		}
		bins[idx] = q
		return true, nil
	}

	return false, nil
}
