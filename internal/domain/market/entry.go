package market

import (
	"fmt"

	"github.com/saltroad/tradewinds/pkg/utils"
)

// Price factor bounds. Every mutation of an Entry re-clamps into this range.
const (
	MinPriceFactor = 0.5
	MaxPriceFactor = 2.0
)

// Entry is the mutable price/stock record for one good in one city.
// Entries are created lazily the first time a good is introduced to a city's
// catalog and never destroyed during a session.
type Entry struct {
	locationID  int
	goodID      int
	priceFactor float64
	stock       int
}

// NewEntry creates an entry with validation. The initial price factor is
// clamped into the legal range.
func NewEntry(locationID, goodID int, priceFactor float64, stock int) (*Entry, error) {
	if stock < 0 {
		return nil, fmt.Errorf("stock cannot be negative: %d", stock)
	}
	return &Entry{
		locationID:  locationID,
		goodID:      goodID,
		priceFactor: utils.Clamp(priceFactor, MinPriceFactor, MaxPriceFactor),
		stock:       stock,
	}, nil
}

func (e *Entry) LocationID() int {
	return e.locationID
}

func (e *Entry) GoodID() int {
	return e.goodID
}

func (e *Entry) PriceFactor() float64 {
	return e.priceFactor
}

func (e *Entry) CurrentStock() int {
	return e.stock
}

// SetPriceFactor replaces the price factor, clamped to [MinPriceFactor, MaxPriceFactor].
func (e *Entry) SetPriceFactor(factor float64) {
	e.priceFactor = utils.Clamp(factor, MinPriceFactor, MaxPriceFactor)
}

// MultiplyPriceFactor scales the price factor and re-clamps.
func (e *Entry) MultiplyPriceFactor(modifier float64) {
	e.SetPriceFactor(e.priceFactor * modifier)
}

// NudgePriceFactor shifts the price factor by delta and re-clamps.
func (e *Entry) NudgePriceFactor(delta float64) {
	e.SetPriceFactor(e.priceFactor + delta)
}

// AddStock increases the stock by units.
func (e *Entry) AddStock(units int) error {
	if units < 0 {
		return fmt.Errorf("cannot add negative stock: %d", units)
	}
	e.stock += units
	return nil
}

// RemoveStock decreases the stock by units. The caller must have validated
// availability; removing more than is present is rejected, not floored.
func (e *Entry) RemoveStock(units int) error {
	if units < 0 {
		return fmt.Errorf("cannot remove negative stock: %d", units)
	}
	if units > e.stock {
		return fmt.Errorf("cannot remove %d units, only %d in stock", units, e.stock)
	}
	e.stock -= units
	return nil
}

// ScaleStock adjusts the stock by a signed fraction of its current value,
// flooring at zero. Used by trade event effects (a storm destroying 10% of
// stock passes -0.10).
func (e *Entry) ScaleStock(fraction float64) {
	e.stock += int(float64(e.stock) * fraction)
	if e.stock < 0 {
		e.stock = 0
	}
}

func (e *Entry) String() string {
	return fmt.Sprintf("Entry(city=%d good=%d factor=%.2f stock=%d)", e.locationID, e.goodID, e.priceFactor, e.stock)
}
