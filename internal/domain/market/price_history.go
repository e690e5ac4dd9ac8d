package market

import "github.com/saltroad/tradewinds/pkg/utils"

// DefaultHistoryWindow is the number of transaction prices retained per
// (city, good) pair.
const DefaultHistoryWindow = 30

// trendSpan is the maximum lookback used when computing the price trend.
const trendSpan = 5

type historyKey struct {
	locationID int
	goodID     int
}

// PriceHistoryTracker keeps a bounded record of recent transaction prices per
// (city, good) pair. It is display-oriented: the only invariant is the bounded
// length.
type PriceHistoryTracker struct {
	window  int
	samples map[historyKey][]int
}

// NewPriceHistoryTracker creates a tracker retaining up to window samples per
// pair. A non-positive window falls back to DefaultHistoryWindow.
func NewPriceHistoryTracker(window int) *PriceHistoryTracker {
	if window <= 0 {
		window = DefaultHistoryWindow
	}
	return &PriceHistoryTracker{
		window:  window,
		samples: make(map[historyKey][]int),
	}
}

// AddPrice appends one observed transaction price, evicting the oldest sample
// once the window is full.
func (t *PriceHistoryTracker) AddPrice(locationID, goodID, price int) {
	key := historyKey{locationID: locationID, goodID: goodID}
	s := append(t.samples[key], price)
	if len(s) > t.window {
		s = s[len(s)-t.window:]
	}
	t.samples[key] = s
}

// Prices returns a copy of the recorded samples, oldest first.
func (t *PriceHistoryTracker) Prices(locationID, goodID int) []int {
	s := t.samples[historyKey{locationID: locationID, goodID: goodID}]
	out := make([]int, len(s))
	copy(out, s)
	return out
}

// Trend returns the average per-sample price movement over the most recent
// samples (at most trendSpan). Returns 0 when fewer than two samples exist.
func (t *PriceHistoryTracker) Trend(locationID, goodID int) float64 {
	s := t.samples[historyKey{locationID: locationID, goodID: goodID}]
	n := len(s)
	if n < 2 {
		return 0
	}
	span := utils.Min(trendSpan, n-1)
	return float64(s[n-1]-s[n-1-span]) / float64(span)
}
