package steps

import (
	"context"
	"fmt"

	"github.com/cucumber/godog"

	staticcatalog "github.com/saltroad/tradewinds/internal/adapters/catalog"
	"github.com/saltroad/tradewinds/internal/application/engine"
	"github.com/saltroad/tradewinds/internal/domain/catalog"
	"github.com/saltroad/tradewinds/internal/domain/player"
	"github.com/saltroad/tradewinds/internal/domain/trading"
)

// Fixed ids of the single-city BDD world.
const (
	bddCityID = 1
	bddGoodID = 1
)

type tradingContext struct {
	engine  *engine.MarketEngine
	player  *player.Player
	receipt *trading.Receipt
	err     error
}

func (ctx *tradingContext) reset() {
	ctx.engine = nil
	ctx.player = nil
	ctx.receipt = nil
	ctx.err = nil
}

// newBDDWorld builds a one-city, one-good economy with spawning disabled so
// scenarios stay deterministic.
func newBDDWorld(basePrice int) (*engine.MarketEngine, error) {
	grain, err := catalog.NewGood(bddGoodID, "Grain", basePrice, 1.0, catalog.CategoryFood, catalog.RarityCommon, 1.0, nil, nil)
	if err != nil {
		return nil, err
	}
	city, err := catalog.NewLocation(bddCityID, "Aldermere", "Heartlands", "Kingdom of Veren", 5000, []int{bddGoodID})
	if err != nil {
		return nil, err
	}

	return engine.NewMarketEngine(
		staticcatalog.NewStaticGoodCatalog([]*catalog.Good{grain}),
		staticcatalog.NewStaticLocationCatalog([]*catalog.Location{city}),
		engine.Options{Seed: 1, SpawnChance: -1},
	), nil
}

// Given steps

func (ctx *tradingContext) aCityTradingGrainAtBasePriceWithStock(basePrice, stock int) error {
	e, err := newBDDWorld(basePrice)
	if err != nil {
		return err
	}

	entry, ok := e.Entry(bddCityID, bddGoodID)
	if !ok {
		return fmt.Errorf("market entry not initialized")
	}
	entry.SetPriceFactor(1.0)
	if delta := stock - entry.CurrentStock(); delta > 0 {
		if err := entry.AddStock(delta); err != nil {
			return err
		}
	} else if delta < 0 {
		if err := entry.RemoveStock(-delta); err != nil {
			return err
		}
	}

	ctx.engine = e
	return nil
}

func (ctx *tradingContext) aPlayerWithGoldAndCargoCapacity(gold, capacity int) error {
	pl, err := player.NewPlayer(gold, float64(capacity), player.TradeSkills{})
	if err != nil {
		return err
	}
	ctx.player = pl
	return nil
}

func (ctx *tradingContext) thePlayerHoldsUnitsOfGrain(units int) error {
	return ctx.player.AddCargo(bddGoodID, units, 1.0)
}

// When steps

func (ctx *tradingContext) thePlayerBuysUnitsOfGrain(units int) error {
	ctx.receipt, ctx.err = ctx.engine.BuyGood(ctx.player, bddCityID, bddGoodID, units)
	return nil
}

func (ctx *tradingContext) thePlayerSellsUnitsOfGrain(units int) error {
	ctx.receipt, ctx.err = ctx.engine.SellGood(ctx.player, bddCityID, bddGoodID, units)
	return nil
}

// Then steps

func (ctx *tradingContext) theTradeShouldSucceed() error {
	if ctx.err != nil {
		return fmt.Errorf("expected success, got error: %v", ctx.err)
	}
	if ctx.receipt == nil {
		return fmt.Errorf("expected a receipt")
	}
	return nil
}

func (ctx *tradingContext) theTradeShouldFailWithInsufficientStock() error {
	var target *trading.InsufficientStockError
	return expectTradeError(ctx.err, &target)
}

func (ctx *tradingContext) theTradeShouldFailWithInsufficientFunds() error {
	var target *trading.InsufficientFundsError
	return expectTradeError(ctx.err, &target)
}

func (ctx *tradingContext) theCityStockShouldBe(stock int) error {
	if got := ctx.engine.GetStock(bddCityID, bddGoodID); got != stock {
		return fmt.Errorf("expected stock %d, got %d", stock, got)
	}
	return nil
}

func (ctx *tradingContext) theTotalCostShouldBeBetweenAnd(low, high int) error {
	if ctx.receipt.Total < low || ctx.receipt.Total > high {
		return fmt.Errorf("expected total in [%d, %d], got %d", low, high, ctx.receipt.Total)
	}
	return nil
}

func (ctx *tradingContext) thePlayersGoldShouldHaveDecreasedByTheTotalCost() error {
	want := ctx.receipt.GoldBefore - ctx.receipt.Total
	if ctx.player.Gold() != want {
		return fmt.Errorf("expected gold %d, got %d", want, ctx.player.Gold())
	}
	return nil
}

func (ctx *tradingContext) thePlayersGoldShouldHaveIncreasedByTheTotalProceeds() error {
	want := ctx.receipt.GoldBefore + ctx.receipt.Total
	if ctx.player.Gold() != want {
		return fmt.Errorf("expected gold %d, got %d", want, ctx.player.Gold())
	}
	return nil
}

func (ctx *tradingContext) thePlayerShouldHoldUnitsOfGrain(units int) error {
	if got := ctx.player.Cargo().ItemUnits(bddGoodID); got != units {
		return fmt.Errorf("expected %d units in cargo, got %d", units, got)
	}
	return nil
}

func (ctx *tradingContext) thePlayerShouldStillHaveGold(gold int) error {
	if ctx.player.Gold() != gold {
		return fmt.Errorf("expected gold %d, got %d", gold, ctx.player.Gold())
	}
	return nil
}

func InitializeTradingScenario(sc *godog.ScenarioContext) {
	tradingCtx := &tradingContext{}

	sc.Before(func(ctx context.Context, sn *godog.Scenario) (context.Context, error) {
		tradingCtx.reset()
		return ctx, nil
	})

	sc.Step(`^a city trading grain at base price (\d+) with stock (\d+)$`, tradingCtx.aCityTradingGrainAtBasePriceWithStock)
	sc.Step(`^a player with (\d+) gold and cargo capacity (\d+)$`, tradingCtx.aPlayerWithGoldAndCargoCapacity)
	sc.Step(`^the player holds (\d+) units of grain$`, tradingCtx.thePlayerHoldsUnitsOfGrain)
	sc.Step(`^the player buys (\d+) units of grain$`, tradingCtx.thePlayerBuysUnitsOfGrain)
	sc.Step(`^the player sells (\d+) units of grain$`, tradingCtx.thePlayerSellsUnitsOfGrain)
	sc.Step(`^the trade should succeed$`, tradingCtx.theTradeShouldSucceed)
	sc.Step(`^the trade should fail with insufficient stock$`, tradingCtx.theTradeShouldFailWithInsufficientStock)
	sc.Step(`^the trade should fail with insufficient funds$`, tradingCtx.theTradeShouldFailWithInsufficientFunds)
	sc.Step(`^the city stock should be (\d+)$`, tradingCtx.theCityStockShouldBe)
	sc.Step(`^the total cost should be between (\d+) and (\d+)$`, tradingCtx.theTotalCostShouldBeBetweenAnd)
	sc.Step(`^the player's gold should have decreased by the total cost$`, tradingCtx.thePlayersGoldShouldHaveDecreasedByTheTotalCost)
	sc.Step(`^the player's gold should have increased by the total proceeds$`, tradingCtx.thePlayersGoldShouldHaveIncreasedByTheTotalProceeds)
	sc.Step(`^the player should hold (\d+) units of grain$`, tradingCtx.thePlayerShouldHoldUnitsOfGrain)
	sc.Step(`^the player should still have (\d+) gold$`, tradingCtx.thePlayerShouldStillHaveGold)
}
