package engine_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	staticcatalog "github.com/saltroad/tradewinds/internal/adapters/catalog"
	"github.com/saltroad/tradewinds/internal/application/engine"
	"github.com/saltroad/tradewinds/internal/domain/catalog"
	"github.com/saltroad/tradewinds/internal/domain/event"
	"github.com/saltroad/tradewinds/internal/domain/market"
	"github.com/saltroad/tradewinds/internal/domain/player"
	"github.com/saltroad/tradewinds/internal/domain/trading"
)

// smallWorld is a two-city, two-good economy used where the default world
// would make assertions awkward.
func smallWorld(t *testing.T) (catalog.GoodCatalog, catalog.LocationCatalog) {
	t.Helper()

	grain, err := catalog.NewGood(1, "Grain", 100, 1.0, catalog.CategoryFood, catalog.RarityCommon, 1.0, nil, nil)
	require.NoError(t, err)
	silk, err := catalog.NewGood(2, "Silk", 400, 0.5, catalog.CategoryLuxury, catalog.RarityRare, 1.2, nil, nil)
	require.NoError(t, err)

	aldermere, err := catalog.NewLocation(1, "Aldermere", "Heartlands", "Kingdom of Veren", 5000, []int{1, 2})
	require.NoError(t, err)
	gullhaven, err := catalog.NewLocation(2, "Gullhaven", "Stormcoast", "Marches of Corvel", 9000, []int{1})
	require.NoError(t, err)

	return staticcatalog.NewStaticGoodCatalog([]*catalog.Good{grain, silk}),
		staticcatalog.NewStaticLocationCatalog([]*catalog.Location{aldermere, gullhaven})
}

func newSmallEngine(t *testing.T, opts engine.Options) *engine.MarketEngine {
	t.Helper()
	goods, locations := smallWorld(t)
	return engine.NewMarketEngine(goods, locations, opts)
}

func TestNewMarketEngine_InitializesEveryTradedPair(t *testing.T) {
	e := newSmallEngine(t, engine.Options{Seed: 1})

	assert.True(t, e.IsGoodAvailable(1, 1))
	assert.True(t, e.IsGoodAvailable(1, 2))
	assert.True(t, e.IsGoodAvailable(2, 1))
	assert.False(t, e.IsGoodAvailable(2, 2))

	// Rarity drives the starting stock
	assert.Equal(t, 80, e.GetStock(1, 1))
	assert.Equal(t, 20, e.GetStock(1, 2))
}

func TestGetGoodPrice_SentinelForUnknownPairs(t *testing.T) {
	e := newSmallEngine(t, engine.Options{Seed: 1})

	assert.Equal(t, engine.UnknownPrice, e.GetGoodPrice(99, 1))
	assert.Equal(t, engine.UnknownPrice, e.GetGoodPrice(1, 99))
	assert.Equal(t, engine.UnknownPrice, e.GetGoodPrice(2, 2))
	assert.Equal(t, 0, e.GetStock(99, 1))
	assert.Empty(t, e.GetCityPrices(99))
}

func TestQueries_AreReadOnly(t *testing.T) {
	e := newSmallEngine(t, engine.Options{Seed: 3})

	first := e.GetGoodPrice(1, 1)
	for i := 0; i < 20; i++ {
		e.GetCityPrices(1)
		e.GetPriceTrend(1, 1)
		e.FindProfitableRoutes(1, 0)
		assert.Equal(t, first, e.GetGoodPrice(1, 1))
	}
}

func TestAdvanceTime_SameSeedReplaysIdentically(t *testing.T) {
	a := newSmallEngine(t, engine.Options{Seed: 99})
	b := newSmallEngine(t, engine.Options{Seed: 99})

	a.AdvanceTime(30)
	b.AdvanceTime(30)

	assert.Equal(t, a.GetCityPrices(1), b.GetCityPrices(1))
	assert.Equal(t, a.GetCityPrices(2), b.GetCityPrices(2))
	assert.Equal(t, a.GetStock(1, 1), b.GetStock(1, 1))
	assert.Len(t, b.GetActiveEvents(), len(a.GetActiveEvents()))
}

func TestAdvanceTime_InvariantsHoldOverLongRuns(t *testing.T) {
	e := newSmallEngine(t, engine.Options{Seed: 7})

	for day := 0; day < 365; day++ {
		e.AdvanceTime(1)

		for _, pair := range [][2]int{{1, 1}, {1, 2}, {2, 1}} {
			price := e.GetGoodPrice(pair[0], pair[1])
			assert.Greater(t, price, 0)
			assert.GreaterOrEqual(t, e.GetStock(pair[0], pair[1]), 0)
		}
		assert.LessOrEqual(t, len(e.GetActiveEvents()), event.DefaultMaxActive)
	}
	assert.Equal(t, int64(365), e.CurrentDay())
}

func TestAdvanceTime_StormDrainsStockDaily(t *testing.T) {
	e := newSmallEngine(t, engine.Options{Seed: 5, SpawnChance: -1})

	storm, err := event.NewTradeEvent(event.TypeStorm, "test storm", []string{"Heartlands"}, []int{1}, 1.2, 3, 0)
	require.NoError(t, err)
	e.InjectEvent(storm)

	// 80 stock shrinks 10% (truncated) each active day: 72, 65, 59
	e.AdvanceTime(1)
	assert.Equal(t, 72, e.GetStock(1, 1))
	e.AdvanceTime(1)
	assert.Equal(t, 65, e.GetStock(1, 1))
	e.AdvanceTime(1)
	assert.Equal(t, 59, e.GetStock(1, 1))

	// Unaffected city keeps its stock
	assert.Equal(t, 80, e.GetStock(2, 1))

	// Day 4 is past expiry: the storm is culled before it can apply
	e.AdvanceTime(1)
	assert.Equal(t, 59, e.GetStock(1, 1))
	assert.Empty(t, e.GetActiveEvents())
}

func TestBuyGood_ThroughFacade(t *testing.T) {
	e := newSmallEngine(t, engine.Options{Seed: 5, SpawnChance: -1})
	pl, err := player.NewPlayer(100000, 1000, player.TradeSkills{})
	require.NoError(t, err)

	receipt, err := e.BuyGood(pl, 1, 1, 10)

	require.NoError(t, err)
	assert.Equal(t, 70, e.GetStock(1, 1))
	assert.Equal(t, receipt.GoldBefore-receipt.Total, pl.Gold())
	assert.Len(t, e.GetPriceHistory(1, 1), 1)
}

func TestSellGood_ThroughFacade(t *testing.T) {
	e := newSmallEngine(t, engine.Options{Seed: 5, SpawnChance: -1})
	pl, err := player.NewPlayer(100000, 1000, player.TradeSkills{})
	require.NoError(t, err)

	_, err = e.BuyGood(pl, 1, 1, 10)
	require.NoError(t, err)

	receipt, err := e.SellGood(pl, 2, 1, 10)

	require.NoError(t, err)
	assert.Equal(t, 90, e.GetStock(2, 1))
	assert.True(t, pl.Cargo().IsEmpty())
	assert.Equal(t, receipt.GoldBefore+receipt.Total, pl.Gold())
}

func TestTrade_UnknownPairYieldsTypedError(t *testing.T) {
	e := newSmallEngine(t, engine.Options{Seed: 5, SpawnChance: -1})
	pl, err := player.NewPlayer(1000, 100, player.TradeSkills{})
	require.NoError(t, err)

	_, err = e.BuyGood(pl, 2, 2, 1)

	var notTraded *trading.GoodNotTradedError
	require.ErrorAs(t, err, &notTraded)
	assert.Equal(t, 1000, pl.Gold())
}

func TestTrades_FeedThePriceHistoryAndTrend(t *testing.T) {
	e := newSmallEngine(t, engine.Options{Seed: 5, SpawnChance: -1})
	pl, err := player.NewPlayer(1000000, 10000, player.TradeSkills{})
	require.NoError(t, err)

	// Repeated buying nudges the factor up, so recorded prices climb
	for i := 0; i < 6; i++ {
		_, err := e.BuyGood(pl, 1, 1, 10)
		require.NoError(t, err)
	}

	history := e.GetPriceHistory(1, 1)
	assert.Len(t, history, 6)
	assert.Greater(t, e.GetPriceTrend(1, 1), 0.0)
}

func TestEnginePrices_StayWithinFactorBounds(t *testing.T) {
	e := newSmallEngine(t, engine.Options{Seed: 13})

	for day := 0; day < 100; day++ {
		e.AdvanceTime(1)
		price := e.GetGoodPrice(1, 1)
		assert.GreaterOrEqual(t, float64(price), 100*market.MinPriceFactor-1)
		assert.LessOrEqual(t, float64(price), 100*market.MaxPriceFactor+1)
	}
}

func TestHasBlackMarket_ForwardsToLedger(t *testing.T) {
	e := newSmallEngine(t, engine.Options{Seed: 1})

	// Fresh cities have zero reputation: black market open to anyone
	assert.True(t, e.HasBlackMarket(1, 0))

	e.Reputation().SetCityReputation(1, 60)
	assert.False(t, e.HasBlackMarket(1, 10))
}

func TestKingdomQueries(t *testing.T) {
	e := newSmallEngine(t, engine.Options{Seed: 1})
	e.Reputation().SetKingdomReputation("Kingdom of Veren", 100)

	assert.Equal(t, 100.0, e.GetKingdomReputation("Kingdom of Veren"))
	assert.InDelta(t, 0.2, e.GetKingdomTradeBonus("Kingdom of Veren"), 1e-9)
}
