package engine

import (
	"fmt"
	"math"
	"strconv"

	"github.com/saltroad/tradewinds/internal/domain/event"
	"github.com/saltroad/tradewinds/internal/domain/market"
)

// Snapshot is the JSON-shaped persisted state of one economy. The field
// names and nesting are a compatibility surface for existing save files:
// city and good ids become string map keys, event types are their numeric
// values and expiryTime holds the expiry day of the engine's day clock.
type Snapshot struct {
	Prices             map[string]map[string]PriceSnapshot `json:"prices"`
	KingdomReputations map[string]float64                  `json:"kingdomReputations"`
	Events             []EventSnapshot                     `json:"events"`
}

// PriceSnapshot is the persisted form of one market entry.
type PriceSnapshot struct {
	BasePrice    int     `json:"basePrice"`
	PriceFactor  float64 `json:"priceFactor"`
	CurrentStock int     `json:"currentStock"`
}

// EventSnapshot is the persisted form of one active trade event.
type EventSnapshot struct {
	Type            int      `json:"type"`
	Description     string   `json:"description"`
	PriceModifier   float64  `json:"priceModifier"`
	Duration        int64    `json:"duration"`
	ExpiryTime      int64    `json:"expiryTime"`
	AffectedRegions []string `json:"affectedRegions"`
	AffectedGoods   []int    `json:"affectedGoods"`
}

// Snapshot captures the persisted state of the engine.
func (e *MarketEngine) Snapshot() *Snapshot {
	prices := make(map[string]map[string]PriceSnapshot, len(e.entries))
	for locationID, cityEntries := range e.entries {
		city := make(map[string]PriceSnapshot, len(cityEntries))
		for goodID, entry := range cityEntries {
			basePrice := 0
			if good, err := e.goods.GetGood(goodID); err == nil {
				basePrice = good.BasePrice()
			}
			city[strconv.Itoa(goodID)] = PriceSnapshot{
				BasePrice:    basePrice,
				PriceFactor:  entry.PriceFactor(),
				CurrentStock: entry.CurrentStock(),
			}
		}
		prices[strconv.Itoa(locationID)] = city
	}

	events := make([]EventSnapshot, 0)
	for _, ev := range e.scheduler.Active() {
		events = append(events, EventSnapshot{
			Type:            int(ev.EventType()),
			Description:     ev.Description(),
			PriceModifier:   ev.PriceModifier(),
			Duration:        ev.Duration(),
			ExpiryTime:      ev.ExpiryDay(),
			AffectedRegions: ev.AffectedRegions(),
			AffectedGoods:   ev.AffectedGoods(),
		})
	}

	return &Snapshot{
		Prices:             prices,
		KingdomReputations: e.reputation.KingdomReputations(),
		Events:             events,
	}
}

// Restore replaces the engine's mutable state with a snapshot. The snapshot
// is validated in full before anything is touched: on any malformed value
// the engine keeps its current state so the caller can fall back to a fresh
// market instead of a partially-loaded one.
func (e *MarketEngine) Restore(s *Snapshot) error {
	type restoredEntry struct {
		locationID int
		goodID     int
		factor     float64
		stock      int
	}

	restored := make([]restoredEntry, 0)
	for locKey, cityPrices := range s.Prices {
		locationID, err := strconv.Atoi(locKey)
		if err != nil {
			return fmt.Errorf("invalid city key %q: %w", locKey, err)
		}
		for goodKey, price := range cityPrices {
			goodID, err := strconv.Atoi(goodKey)
			if err != nil {
				return fmt.Errorf("invalid good key %q: %w", goodKey, err)
			}
			if math.IsNaN(price.PriceFactor) || math.IsInf(price.PriceFactor, 0) {
				return fmt.Errorf("city %d good %d: %w", locationID, goodID, market.ErrInvalidPriceFactor)
			}
			if price.CurrentStock < 0 {
				return fmt.Errorf("city %d good %d: %w", locationID, goodID, market.ErrInvalidStock)
			}
			// Entries for cities or goods no longer in the catalogs are
			// skipped rather than rejected.
			if _, ok := e.Entry(locationID, goodID); !ok {
				continue
			}
			restored = append(restored, restoredEntry{
				locationID: locationID,
				goodID:     goodID,
				factor:     price.PriceFactor,
				stock:      price.CurrentStock,
			})
		}
	}

	events := make([]*event.TradeEvent, 0, len(s.Events))
	for i, es := range s.Events {
		ev, err := event.RestoreTradeEvent(
			event.Type(es.Type),
			es.Description,
			es.AffectedRegions,
			es.AffectedGoods,
			es.PriceModifier,
			es.Duration,
			es.ExpiryTime,
		)
		if err != nil {
			return fmt.Errorf("event %d: %w", i, err)
		}
		events = append(events, ev)
	}

	for _, r := range restored {
		entry, _ := e.Entry(r.locationID, r.goodID)
		entry.SetPriceFactor(r.factor)
		if delta := r.stock - entry.CurrentStock(); delta > 0 {
			_ = entry.AddStock(delta)
		} else if delta < 0 {
			_ = entry.RemoveStock(-delta)
		}
	}

	e.reputation.ResetKingdoms(s.KingdomReputations)

	e.scheduler.Reset()
	for _, ev := range events {
		e.scheduler.Inject(ev)
	}

	return nil
}
