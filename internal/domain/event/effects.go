package event

import "github.com/saltroad/tradewinds/internal/domain/market"

// Daily stock adjustments per event kind, expressed as signed fractions of
// the current stock.
const (
	stormStockLoss    = -0.10
	conflictStockLoss = -0.20
	harvestStockGain  = 0.25
	harvestStockLoss  = -0.15
)

// Effect mutates one market entry for one active day of an event. Each kind
// of event maps to exactly one effect; keeping them in a table keeps the
// per-type logic exhaustive and testable in isolation.
type Effect func(entry *market.Entry, priceModifier float64)

var effectsByType = map[Type]Effect{
	TypeStorm: func(entry *market.Entry, mod float64) {
		entry.MultiplyPriceFactor(mod)
		entry.ScaleStock(stormStockLoss)
	},
	TypeConflict: func(entry *market.Entry, mod float64) {
		entry.MultiplyPriceFactor(mod)
		entry.ScaleStock(conflictStockLoss)
	},
	TypeHarvest: func(entry *market.Entry, mod float64) {
		entry.MultiplyPriceFactor(mod)
		// A bountiful harvest (cheap sub-case) floods the market; a failed
		// one (dear sub-case) thins it.
		if mod < 1 {
			entry.ScaleStock(harvestStockGain)
		} else {
			entry.ScaleStock(harvestStockLoss)
		}
	},
	TypeFestival: func(entry *market.Entry, mod float64) {
		entry.MultiplyPriceFactor(mod)
	},
	TypeDiscovery: func(entry *market.Entry, mod float64) {
		entry.MultiplyPriceFactor(mod)
	},
}

// ApplyDaily applies the event's per-day effect to one affected entry.
// The entry's price factor is re-clamped by the mutators themselves.
func (e *TradeEvent) ApplyDaily(entry *market.Entry) {
	if effect, ok := effectsByType[e.eventType]; ok {
		effect(entry, e.priceModifier)
	}
}
