package reputation

import "github.com/saltroad/tradewinds/pkg/utils"

// Reputation bounds and derived bonus parameters.
const (
	MinReputation = 0.0
	MaxReputation = 100.0

	// kingdomBonusDivisor converts kingdom reputation into a trade bonus,
	// capped at MaxKingdomBonus.
	kingdomBonusDivisor = 500.0
	MaxKingdomBonus     = 0.2

	// CityBonus is granted once city reputation passes cityBonusThreshold.
	CityBonus          = 0.05
	cityBonusThreshold = 50.0

	// Black market access rules: open below the low threshold, or below the
	// high threshold for skilled smugglers.
	blackMarketOpenBelow    = 20.0
	blackMarketSkilledBelow = 50.0
	blackMarketSkillFloor   = 3
)

// Ledger holds per-city and per-kingdom reputation scalars and the trade
// bonuses derived from them. Reputation only moves through explicit calls
// (trade success, diplomacy, load); no component decays it silently. Every
// mutation re-clamps into [MinReputation, MaxReputation].
type Ledger struct {
	cities   map[int]float64
	kingdoms map[string]float64
}

// NewLedger creates an empty ledger. Unknown cities and kingdoms read as 0.
func NewLedger() *Ledger {
	return &Ledger{
		cities:   make(map[int]float64),
		kingdoms: make(map[string]float64),
	}
}

func (l *Ledger) CityReputation(cityID int) float64 {
	return l.cities[cityID]
}

func (l *Ledger) KingdomReputation(kingdom string) float64 {
	return l.kingdoms[kingdom]
}

// SetCityReputation replaces a city's reputation (save-game load, diplomacy).
func (l *Ledger) SetCityReputation(cityID int, value float64) {
	l.cities[cityID] = utils.Clamp(value, MinReputation, MaxReputation)
}

// SetKingdomReputation replaces a kingdom's reputation.
func (l *Ledger) SetKingdomReputation(kingdom string, value float64) {
	l.kingdoms[kingdom] = utils.Clamp(value, MinReputation, MaxReputation)
}

// AdjustCityReputation nudges a city's reputation by delta.
func (l *Ledger) AdjustCityReputation(cityID int, delta float64) {
	l.SetCityReputation(cityID, l.cities[cityID]+delta)
}

// AdjustKingdomReputation nudges a kingdom's reputation by delta.
func (l *Ledger) AdjustKingdomReputation(kingdom string, delta float64) {
	l.SetKingdomReputation(kingdom, l.kingdoms[kingdom]+delta)
}

// KingdomTradeBonus returns the price bonus earned from kingdom standing,
// in [0, MaxKingdomBonus].
func (l *Ledger) KingdomTradeBonus(kingdom string) float64 {
	return utils.Clamp(l.kingdoms[kingdom]/kingdomBonusDivisor, 0, MaxKingdomBonus)
}

// CityTradeBonus returns the flat bonus for well-regarded traders.
func (l *Ledger) CityTradeBonus(cityID int) float64 {
	if l.cities[cityID] > cityBonusThreshold {
		return CityBonus
	}
	return 0
}

// HasBlackMarketAccess reports whether the black market deals with the
// player in this city: freely when the city thinks little of them, or at
// middling reputation when they are a practiced smuggler.
func (l *Ledger) HasBlackMarketAccess(cityID int, smugglingSkill int) bool {
	rep := l.cities[cityID]
	if rep < blackMarketOpenBelow {
		return true
	}
	return rep < blackMarketSkilledBelow && smugglingSkill > blackMarketSkillFloor
}

// KingdomReputations returns a copy of the kingdom map for persistence.
func (l *Ledger) KingdomReputations() map[string]float64 {
	out := make(map[string]float64, len(l.kingdoms))
	for k, v := range l.kingdoms {
		out[k] = v
	}
	return out
}

// ResetKingdoms replaces all kingdom reputations (save-game load).
func (l *Ledger) ResetKingdoms(values map[string]float64) {
	l.kingdoms = make(map[string]float64, len(values))
	for k, v := range values {
		l.kingdoms[k] = utils.Clamp(v, MinReputation, MaxReputation)
	}
}
