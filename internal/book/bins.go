// Package book holds the price-binned view of a binary market's order book.
// Both sides live on the same 0..100 cent YES-price axis: a NO order at
// native price q is stored at index 100-q, so the two arrays line up column
// for column when drawn.
package book

import "math"

// NumPrices is the number of one-cent bins on the 0..100 axis.
const NumPrices = 101

// Side identifies one of the two complementary market positions.
type Side int

const (
	Yes Side = iota
	No
)

func (s Side) String() string {
	if s == No {
		return "NO"
	}
	return "YES"
}

// Other returns the opposite side.
func (s Side) Other() Side {
	if s == Yes {
		return No
	}
	return Yes
}

// Scale selects the transform applied to quantities before plotting.
type Scale int

const (
	Linear Scale = iota
	Log10
)

func (s Scale) String() string {
	if s == Log10 {
		return "log10"
	}
	return "linear"
}

// Toggle returns the other scale mode.
func (s Scale) Toggle() Scale {
	if s == Linear {
		return Log10
	}
	return Linear
}

// Bins holds aggregated bid quantities for both sides, indexed by YES price
// in cents. No is already mapped onto the YES axis. Bins is a value type:
// a fetch replaces the whole pair at once, never patches it.
type Bins struct {
	Yes [NumPrices]int
	No  [NumPrices]int
}

// Build aggregates raw (price, quantity) pairs into bins. YES pairs land at
// their own price, NO pairs at 100-price. Out-of-range prices are dropped.
// Quantities summing to the same bin accumulate, so input order is irrelevant.
func Build(yes, no [][2]int) Bins {
	var b Bins
	for _, lvl := range yes {
		if p := lvl[0]; 0 <= p && p <= 100 {
			b.Yes[p] += lvl[1]
		}
	}
	for _, lvl := range no {
		if m := 100 - lvl[0]; 0 <= m && m <= 100 {
			b.No[m] += lvl[1]
		}
	}
	return b
}

// Transform maps a quantity to its plotted magnitude. Log10 uses
// log10(qty+1) so a zero quantity stays at zero and any positive quantity
// plots above it.
func Transform(qty int, s Scale) float64 {
	if s == Log10 {
		return math.Log10(float64(qty) + 1)
	}
	return float64(qty)
}

// BestYesBid returns the highest price with nonzero YES quantity.
func (b *Bins) BestYesBid() (int, bool) {
	for p := 100; p >= 0; p-- {
		if b.Yes[p] > 0 {
			return p, true
		}
	}
	return 0, false
}

// BestYesAsk returns the lowest YES-axis price with nonzero mapped NO
// quantity. Because the NO array is stored on the YES axis already, this is
// simply the lowest nonzero index.
func (b *Bins) BestYesAsk() (int, bool) {
	for m := 0; m <= 100; m++ {
		if b.No[m] > 0 {
			return m, true
		}
	}
	return 0, false
}

// BestNoBid reports the best NO bid on its native axis.
func (b *Bins) BestNoBid() (int, bool) {
	ask, ok := b.BestYesAsk()
	if !ok {
		return 0, false
	}
	return 100 - ask, true
}

// Spread returns ask minus bid when both exist.
func (b *Bins) Spread() (int, bool) {
	bid, okB := b.BestYesBid()
	ask, okA := b.BestYesAsk()
	if !okB || !okA {
		return 0, false
	}
	return ask - bid, true
}

// Qty returns the quantity at price p for the given side, on the YES axis.
func (b *Bins) Qty(side Side, p int) int {
	if p < 0 || p > 100 {
		return 0
	}
	if side == No {
		return b.No[p]
	}
	return b.Yes[p]
}
