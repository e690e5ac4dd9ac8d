package steps

import (
	"context"
	"fmt"

	"github.com/cucumber/godog"

	"github.com/saltroad/tradewinds/internal/application/engine"
	"github.com/saltroad/tradewinds/internal/domain/event"
)

type eventContext struct {
	engine *engine.MarketEngine
}

func (ctx *eventContext) reset() {
	ctx.engine = nil
}

// Given steps

func (ctx *eventContext) aFreshMarketWithEventSpawningDisabled() error {
	e, err := newBDDWorld(100)
	if err != nil {
		return err
	}
	ctx.engine = e
	return nil
}

func (ctx *eventContext) theGrainStockInAldermereIsSetTo(stock int) error {
	entry, ok := ctx.engine.Entry(bddCityID, bddGoodID)
	if !ok {
		return fmt.Errorf("market entry not initialized")
	}
	if delta := stock - entry.CurrentStock(); delta > 0 {
		return entry.AddStock(delta)
	} else if delta < 0 {
		return entry.RemoveStock(-delta)
	}
	return nil
}

// When steps

func (ctx *eventContext) aStormStrikesTheHeartlandsForDays(days int) error {
	storm, err := event.NewTradeEvent(
		event.TypeStorm,
		"Storms batter the shipping lanes of Heartlands",
		[]string{"Heartlands"},
		[]int{bddGoodID},
		1.2,
		int64(days),
		ctx.engine.CurrentDay(),
	)
	if err != nil {
		return err
	}
	ctx.engine.InjectEvent(storm)
	return nil
}

func (ctx *eventContext) daysPass(days int) error {
	ctx.engine.AdvanceTime(days)
	return nil
}

// Then steps

func (ctx *eventContext) theGrainStockInAldermereShouldBe(stock int) error {
	if got := ctx.engine.GetStock(bddCityID, bddGoodID); got != stock {
		return fmt.Errorf("expected stock %d, got %d", stock, got)
	}
	return nil
}

func (ctx *eventContext) thereShouldBeActiveEvents(count int) error {
	if got := len(ctx.engine.GetActiveEvents()); got != count {
		return fmt.Errorf("expected %d active events, got %d", count, got)
	}
	return nil
}

func InitializeEventScenario(sc *godog.ScenarioContext) {
	eventCtx := &eventContext{}

	sc.Before(func(ctx context.Context, sn *godog.Scenario) (context.Context, error) {
		eventCtx.reset()
		return ctx, nil
	})

	sc.Step(`^a fresh market with event spawning disabled$`, eventCtx.aFreshMarketWithEventSpawningDisabled)
	sc.Step(`^the grain stock in Aldermere is set to (\d+)$`, eventCtx.theGrainStockInAldermereIsSetTo)
	sc.Step(`^a storm strikes the Heartlands for (\d+) days$`, eventCtx.aStormStrikesTheHeartlandsForDays)
	sc.Step(`^(\d+) days? pass(?:es)?$`, eventCtx.daysPass)
	sc.Step(`^the grain stock in Aldermere should be (\d+)$`, eventCtx.theGrainStockInAldermereShouldBe)
	sc.Step(`^there should be (\d+) active events?$`, eventCtx.thereShouldBeActiveEvents)
}
