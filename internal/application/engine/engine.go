package engine

import (
	"math/rand"

	"github.com/saltroad/tradewinds/internal/domain/catalog"
	"github.com/saltroad/tradewinds/internal/domain/event"
	"github.com/saltroad/tradewinds/internal/domain/market"
	"github.com/saltroad/tradewinds/internal/domain/player"
	"github.com/saltroad/tradewinds/internal/domain/reputation"
	"github.com/saltroad/tradewinds/internal/domain/trading"
)

// Initial stock per good rarity, assigned when an entry is created.
var initialStockByRarity = map[catalog.Rarity]int{
	catalog.RarityCommon:   80,
	catalog.RarityUncommon: 50,
	catalog.RarityRare:     20,
	catalog.RarityExotic:   8,
}

const defaultInitialStock = 50

// UnknownPrice is the sentinel returned by price queries for unknown cities
// or goods. Lookup misses never panic and never error.
const UnknownPrice = -1

// Options tunes a MarketEngine. The zero value selects the documented
// defaults for every field. A negative SpawnChance disables spontaneous
// event spawning, which deterministic scenarios rely on.
type Options struct {
	Seed            int64
	MaxActiveEvents int
	SpawnChance     float64
	HistoryWindow   int
}

// TradeRecorder receives every successfully executed transaction. Optional:
// a nil recorder disables recording. Implementations live in the persistence
// adapters.
type TradeRecorder interface {
	RecordTrade(day int64, receipt *trading.Receipt) error
}

// MarketEngine is the owned facade over the market simulation: per-city
// market entries, the event scheduler, the pricing engine, the reputation
// ledger, the price history tracker and the transaction processor. One
// engine is one economy/session; it performs no internal locking and is
// meant to be driven from a single logical thread of game control.
type MarketEngine struct {
	goods      catalog.GoodCatalog
	locations  catalog.LocationCatalog
	entries    map[int]map[int]*market.Entry
	pricing    *market.PricingEngine
	scheduler  *event.Scheduler
	reputation *reputation.Ledger
	history    *market.PriceHistoryTracker
	processor  *trading.TransactionProcessor
	analyzer   *trading.RouteProfitAnalyzer
	recorder   TradeRecorder
	rng        *rand.Rand
	currentDay int64
}

// NewMarketEngine builds an engine over the given catalogs. All stochastic
// behavior flows from opts.Seed, so two engines created with the same seed
// and catalogs replay identically.
func NewMarketEngine(goods catalog.GoodCatalog, locations catalog.LocationCatalog, opts Options) *MarketEngine {
	rng := rand.New(rand.NewSource(opts.Seed))
	rep := reputation.NewLedger()
	history := market.NewPriceHistoryTracker(opts.HistoryWindow)

	e := &MarketEngine{
		goods:      goods,
		locations:  locations,
		entries:    make(map[int]map[int]*market.Entry),
		pricing:    market.NewPricingEngine(rng),
		scheduler:  event.NewScheduler(goods, locations, rng, opts.MaxActiveEvents, opts.SpawnChance),
		reputation: rep,
		history:    history,
		processor:  trading.NewTransactionProcessor(rep, history, rng),
		rng:        rng,
	}
	e.analyzer = trading.NewRouteProfitAnalyzer(goods, locations, e)
	e.initEntries()
	return e
}

// SetRecorder attaches an optional trade recorder.
func (e *MarketEngine) SetRecorder(r TradeRecorder) {
	e.recorder = r
}

// CurrentDay returns the engine's day clock.
func (e *MarketEngine) CurrentDay() int64 {
	return e.currentDay
}

// Reputation exposes the ledger for diplomacy and combat outcomes.
func (e *MarketEngine) Reputation() *reputation.Ledger {
	return e.reputation
}

// initEntries creates one entry per (city, available good) pair with an
// initial price factor and a rarity-based starting stock.
func (e *MarketEngine) initEntries() {
	for _, loc := range e.locations.ListLocations() {
		for _, goodID := range loc.AvailableGoods() {
			good, err := e.goods.GetGood(goodID)
			if err != nil {
				continue
			}
			e.ensureEntry(loc, good)
		}
	}
}

func (e *MarketEngine) ensureEntry(loc *catalog.Location, good *catalog.Good) *market.Entry {
	if entry, ok := e.Entry(loc.ID(), good.ID()); ok {
		return entry
	}

	stock, ok := initialStockByRarity[good.Rarity()]
	if !ok {
		stock = defaultInitialStock
	}
	entry, err := market.NewEntry(loc.ID(), good.ID(), e.pricing.ComputeFactor(loc, good), stock)
	if err != nil {
		return nil
	}

	if e.entries[loc.ID()] == nil {
		e.entries[loc.ID()] = make(map[int]*market.Entry)
	}
	e.entries[loc.ID()][good.ID()] = entry
	return entry
}

// Entry returns the market entry for a (city, good) pair. Implements
// trading.MarketView.
func (e *MarketEngine) Entry(locationID, goodID int) (*market.Entry, bool) {
	city, ok := e.entries[locationID]
	if !ok {
		return nil, false
	}
	entry, ok := city[goodID]
	return entry, ok
}

// AdvanceTime advances the simulation by days. Each day, in order: event
// expiry, event spawning, a full pricing recompute, then one application of
// every active event's daily effect. A transaction issued after AdvanceTime
// always sees the post-tick state.
func (e *MarketEngine) AdvanceTime(days int) {
	for i := 0; i < days; i++ {
		e.currentDay++
		e.scheduler.Tick(e.currentDay)
		e.recomputeAll()
		e.applyEventEffects()
	}
}

func (e *MarketEngine) recomputeAll() {
	for _, loc := range e.locations.ListLocations() {
		cityEntries := e.entries[loc.ID()]
		for _, goodID := range loc.AvailableGoods() {
			entry, ok := cityEntries[goodID]
			if !ok {
				continue
			}
			good, err := e.goods.GetGood(goodID)
			if err != nil {
				continue
			}
			e.pricing.Recompute(entry, loc, good)
		}
	}
}

func (e *MarketEngine) applyEventEffects() {
	active := e.scheduler.Active()
	if len(active) == 0 {
		return
	}
	for _, loc := range e.locations.ListLocations() {
		cityEntries := e.entries[loc.ID()]
		for goodID, entry := range cityEntries {
			for _, ev := range active {
				if ev.Affects(loc.Region(), goodID) {
					ev.ApplyDaily(entry)
				}
			}
		}
	}
}

// GetGoodPrice returns the current rounded unit price of a good at a city,
// or UnknownPrice when the city or good is unknown or not traded there.
func (e *MarketEngine) GetGoodPrice(locationID, goodID int) int {
	good, err := e.goods.GetGood(goodID)
	if err != nil {
		return UnknownPrice
	}
	entry, ok := e.Entry(locationID, goodID)
	if !ok {
		return UnknownPrice
	}
	return roundPrice(float64(good.BasePrice()) * entry.PriceFactor())
}

// GetCityPrices returns the current price of every good traded at the city,
// keyed by good id. Empty for unknown cities.
func (e *MarketEngine) GetCityPrices(locationID int) map[int]int {
	prices := make(map[int]int)
	for goodID := range e.entries[locationID] {
		if p := e.GetGoodPrice(locationID, goodID); p != UnknownPrice {
			prices[goodID] = p
		}
	}
	return prices
}

// IsGoodAvailable reports whether the good is traded at the city.
func (e *MarketEngine) IsGoodAvailable(locationID, goodID int) bool {
	_, ok := e.Entry(locationID, goodID)
	return ok
}

// GetStock returns the current stock of a good at a city, or 0 when unknown.
func (e *MarketEngine) GetStock(locationID, goodID int) int {
	entry, ok := e.Entry(locationID, goodID)
	if !ok {
		return 0
	}
	return entry.CurrentStock()
}

// BuyGood executes a purchase for the player at a city. Typed trade errors
// describe the violated constraint; a failed call mutates nothing.
func (e *MarketEngine) BuyGood(pl *player.Player, locationID, goodID, quantity int) (*trading.Receipt, error) {
	loc, good, entry, err := e.resolve(locationID, goodID)
	if err != nil {
		return nil, err
	}
	receipt, err := e.processor.Buy(pl, loc, good, entry, quantity)
	if err != nil {
		return nil, err
	}
	e.record(receipt)
	return receipt, nil
}

// SellGood executes a sale for the player at a city.
func (e *MarketEngine) SellGood(pl *player.Player, locationID, goodID, quantity int) (*trading.Receipt, error) {
	loc, good, entry, err := e.resolve(locationID, goodID)
	if err != nil {
		return nil, err
	}
	receipt, err := e.processor.Sell(pl, loc, good, entry, quantity)
	if err != nil {
		return nil, err
	}
	e.record(receipt)
	return receipt, nil
}

func (e *MarketEngine) resolve(locationID, goodID int) (*catalog.Location, *catalog.Good, *market.Entry, error) {
	loc, err := e.locations.GetLocation(locationID)
	if err != nil {
		return nil, nil, nil, trading.NewGoodNotTradedError(locationID, goodID)
	}
	good, err := e.goods.GetGood(goodID)
	if err != nil {
		return nil, nil, nil, trading.NewGoodNotTradedError(locationID, goodID)
	}
	entry, ok := e.Entry(locationID, goodID)
	if !ok {
		return nil, nil, nil, trading.NewGoodNotTradedError(locationID, goodID)
	}
	return loc, good, entry, nil
}

func (e *MarketEngine) record(receipt *trading.Receipt) {
	if e.recorder == nil {
		return
	}
	// Recording is best-effort bookkeeping; a storage failure must not
	// unwind an already-settled trade.
	_ = e.recorder.RecordTrade(e.currentDay, receipt)
}

// GetPriceHistory returns the recorded transaction prices for a pair,
// oldest first.
func (e *MarketEngine) GetPriceHistory(locationID, goodID int) []int {
	return e.history.Prices(locationID, goodID)
}

// GetPriceTrend returns the recent average price movement for a pair.
func (e *MarketEngine) GetPriceTrend(locationID, goodID int) float64 {
	return e.history.Trend(locationID, goodID)
}

// GetActiveEvents returns the currently active trade events.
func (e *MarketEngine) GetActiveEvents() []*event.TradeEvent {
	return e.scheduler.Active()
}

// InjectEvent adds an externally built event to the active set. Used for
// scripted story beats and deterministic scenarios.
func (e *MarketEngine) InjectEvent(ev *event.TradeEvent) {
	e.scheduler.Inject(ev)
}

// HasBlackMarket reports whether the player's smuggling skill opens the
// city's black market.
func (e *MarketEngine) HasBlackMarket(locationID, smugglingSkill int) bool {
	return e.reputation.HasBlackMarketAccess(locationID, smugglingSkill)
}

// GetKingdomReputation returns the player's standing with a kingdom.
func (e *MarketEngine) GetKingdomReputation(kingdom string) float64 {
	return e.reputation.KingdomReputation(kingdom)
}

// GetKingdomTradeBonus returns the price bonus earned from kingdom standing.
func (e *MarketEngine) GetKingdomTradeBonus(kingdom string) float64 {
	return e.reputation.KingdomTradeBonus(kingdom)
}

// FindProfitableRoutes ranks destinations by estimated profit from the
// source city.
func (e *MarketEngine) FindProfitableRoutes(sourceID, maxResults int) []trading.RouteSuggestion {
	return e.analyzer.FindProfitableRoutes(sourceID, maxResults)
}

func roundPrice(v float64) int {
	if v < 0 {
		return int(v - 0.5)
	}
	return int(v + 0.5)
}
