package steps

import (
	"context"
	"fmt"
	"math"

	"github.com/cucumber/godog"

	"github.com/saltroad/tradewinds/internal/domain/reputation"
)

type reputationContext struct {
	ledger *reputation.Ledger
}

func (ctx *reputationContext) reset() {
	ctx.ledger = reputation.NewLedger()
}

// Given steps

func (ctx *reputationContext) theKingdomReputationWithIs(kingdom string, value float64) error {
	ctx.ledger.SetKingdomReputation(kingdom, value)
	return nil
}

func (ctx *reputationContext) theCityReputationOfCityIs(cityID int, value float64) error {
	ctx.ledger.SetCityReputation(cityID, value)
	return nil
}

// When steps

func (ctx *reputationContext) theKingdomReputationWithIsRaisedBy(kingdom string, delta float64) error {
	ctx.ledger.AdjustKingdomReputation(kingdom, delta)
	return nil
}

// Then steps

func (ctx *reputationContext) theKingdomTradeBonusForShouldBe(kingdom string, bonus float64) error {
	if got := ctx.ledger.KingdomTradeBonus(kingdom); math.Abs(got-bonus) > 1e-9 {
		return fmt.Errorf("expected bonus %.3f, got %.3f", bonus, got)
	}
	return nil
}

func (ctx *reputationContext) theKingdomReputationWithShouldBe(kingdom string, value float64) error {
	if got := ctx.ledger.KingdomReputation(kingdom); math.Abs(got-value) > 1e-9 {
		return fmt.Errorf("expected reputation %.1f, got %.1f", value, got)
	}
	return nil
}

func (ctx *reputationContext) theBlackMarketOfCityShouldBeOpenToSmugglingSkill(cityID, skill int) error {
	if !ctx.ledger.HasBlackMarketAccess(cityID, skill) {
		return fmt.Errorf("expected black market access for city %d with skill %d", cityID, skill)
	}
	return nil
}

func (ctx *reputationContext) theBlackMarketOfCityShouldBeClosedToSmugglingSkill(cityID, skill int) error {
	if ctx.ledger.HasBlackMarketAccess(cityID, skill) {
		return fmt.Errorf("expected no black market access for city %d with skill %d", cityID, skill)
	}
	return nil
}

func InitializeReputationScenario(sc *godog.ScenarioContext) {
	repCtx := &reputationContext{}

	sc.Before(func(ctx context.Context, sn *godog.Scenario) (context.Context, error) {
		repCtx.reset()
		return ctx, nil
	})

	sc.Step(`^the kingdom reputation with "([^"]*)" is (\d+(?:\.\d+)?)$`, repCtx.theKingdomReputationWithIs)
	sc.Step(`^the city reputation of city (\d+) is (\d+(?:\.\d+)?)$`, repCtx.theCityReputationOfCityIs)
	sc.Step(`^the kingdom reputation with "([^"]*)" is raised by (\d+(?:\.\d+)?)$`, repCtx.theKingdomReputationWithIsRaisedBy)
	sc.Step(`^the kingdom trade bonus for "([^"]*)" should be (\d+(?:\.\d+)?)$`, repCtx.theKingdomTradeBonusForShouldBe)
	sc.Step(`^the kingdom reputation with "([^"]*)" should be (\d+(?:\.\d+)?)$`, repCtx.theKingdomReputationWithShouldBe)
	sc.Step(`^the black market of city (\d+) should be open to smuggling skill (\d+)$`, repCtx.theBlackMarketOfCityShouldBeOpenToSmugglingSkill)
	sc.Step(`^the black market of city (\d+) should be closed to smuggling skill (\d+)$`, repCtx.theBlackMarketOfCityShouldBeClosedToSmugglingSkill)
}
