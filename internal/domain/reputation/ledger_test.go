package reputation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/saltroad/tradewinds/internal/domain/reputation"
)

func TestLedger_UnknownReadsAsZero(t *testing.T) {
	ledger := reputation.NewLedger()

	assert.Equal(t, 0.0, ledger.CityReputation(42))
	assert.Equal(t, 0.0, ledger.KingdomReputation("Amber Throne"))
	assert.Equal(t, 0.0, ledger.KingdomTradeBonus("Amber Throne"))
}

func TestLedger_ClampsOnEveryMutation(t *testing.T) {
	ledger := reputation.NewLedger()

	ledger.SetCityReputation(1, 250)
	assert.Equal(t, reputation.MaxReputation, ledger.CityReputation(1))

	ledger.AdjustCityReputation(1, -500)
	assert.Equal(t, reputation.MinReputation, ledger.CityReputation(1))

	ledger.SetKingdomReputation("Kingdom of Veren", -10)
	assert.Equal(t, reputation.MinReputation, ledger.KingdomReputation("Kingdom of Veren"))

	ledger.AdjustKingdomReputation("Kingdom of Veren", 180)
	assert.Equal(t, reputation.MaxReputation, ledger.KingdomReputation("Kingdom of Veren"))
}

func TestKingdomTradeBonus_CapsAtMaximum(t *testing.T) {
	ledger := reputation.NewLedger()

	ledger.SetKingdomReputation("Kingdom of Veren", 50)
	assert.InDelta(t, 0.1, ledger.KingdomTradeBonus("Kingdom of Veren"), 1e-9)

	// Maximum reputation yields exactly the cap
	ledger.SetKingdomReputation("Kingdom of Veren", 100)
	assert.InDelta(t, reputation.MaxKingdomBonus, ledger.KingdomTradeBonus("Kingdom of Veren"), 1e-9)
}

func TestCityTradeBonus_ThresholdIsExclusive(t *testing.T) {
	ledger := reputation.NewLedger()

	ledger.SetCityReputation(1, 50)
	assert.Equal(t, 0.0, ledger.CityTradeBonus(1))

	ledger.SetCityReputation(1, 50.5)
	assert.Equal(t, reputation.CityBonus, ledger.CityTradeBonus(1))
}

func TestHasBlackMarketAccess(t *testing.T) {
	ledger := reputation.NewLedger()

	// Low reputation: open regardless of skill
	ledger.SetCityReputation(1, 10)
	assert.True(t, ledger.HasBlackMarketAccess(1, 0))

	// Middling reputation: only practiced smugglers get in
	ledger.SetCityReputation(1, 35)
	assert.False(t, ledger.HasBlackMarketAccess(1, 3))
	assert.True(t, ledger.HasBlackMarketAccess(1, 4))

	// Respected traders are shut out entirely
	ledger.SetCityReputation(1, 60)
	assert.False(t, ledger.HasBlackMarketAccess(1, 10))
}

func TestLedger_KingdomSnapshotRoundTrip(t *testing.T) {
	ledger := reputation.NewLedger()
	ledger.SetKingdomReputation("Kingdom of Veren", 40)
	ledger.SetKingdomReputation("Amber Throne", 75)

	snapshot := ledger.KingdomReputations()

	// The copy is detached from the ledger
	snapshot["Kingdom of Veren"] = 99
	assert.Equal(t, 40.0, ledger.KingdomReputation("Kingdom of Veren"))

	restored := reputation.NewLedger()
	restored.ResetKingdoms(map[string]float64{"Amber Throne": 75, "Marches of Corvel": 300})
	assert.Equal(t, 75.0, restored.KingdomReputation("Amber Throne"))
	assert.Equal(t, reputation.MaxReputation, restored.KingdomReputation("Marches of Corvel"))
}
