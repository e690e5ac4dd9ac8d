package trading

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/saltroad/tradewinds/internal/domain/catalog"
	"github.com/saltroad/tradewinds/internal/domain/market"
	"github.com/saltroad/tradewinds/internal/domain/player"
	"github.com/saltroad/tradewinds/internal/domain/reputation"
)

// Pricing and follow-up constants for executed trades.
const (
	// negotiationRate is the per-skill-level price improvement.
	negotiationRate = 0.005

	// Slippage is drawn uniformly from [minSlippage, maxSlippage].
	minSlippage = 0.98
	maxSlippage = 1.02

	// stockPressureDivisor converts traded quantity into a price factor
	// nudge: buying q units pushes the factor up by q/100, selling pushes
	// it down by the same amount.
	stockPressureDivisor = 100.0

	// Reputation earned per successful trade.
	cityReputationGain    = 0.01
	kingdomReputationGain = 0.05
)

// Side distinguishes buy from sell receipts.
type Side string

const (
	SideBuy  Side = "BUY"
	SideSell Side = "SELL"
)

// Receipt describes one executed transaction. It is the processor's return
// value on success and the input to ledger recording.
type Receipt struct {
	Side       Side
	LocationID int
	GoodID     int
	Quantity   int
	UnitPrice  float64
	Total      int
	GoldBefore int
	GoldAfter  int
}

// TransactionProcessor validates and executes buy/sell operations against a
// player, a market entry and the reputation ledger. All preconditions are
// checked before any mutation: a rejected call is a no-op, and a passing call
// cannot fail midway, so the gold/cargo/stock/reputation updates land as one
// logical unit.
type TransactionProcessor struct {
	reputation *reputation.Ledger
	history    *market.PriceHistoryTracker
	rng        *rand.Rand
}

// NewTransactionProcessor creates a processor. Slippage is drawn from rng,
// the single seeded source shared by the owning engine.
func NewTransactionProcessor(rep *reputation.Ledger, history *market.PriceHistoryTracker, rng *rand.Rand) *TransactionProcessor {
	return &TransactionProcessor{
		reputation: rep,
		history:    history,
		rng:        rng,
	}
}

// Buy purchases quantity units of good at the given city.
//
// Preconditions, all validated up front: positive quantity, good traded at
// the city, sufficient stock, sufficient gold for the quoted total and
// sufficient cargo weight capacity.
func (p *TransactionProcessor) Buy(
	pl *player.Player,
	loc *catalog.Location,
	good *catalog.Good,
	entry *market.Entry,
	quantity int,
) (*Receipt, error) {
	if quantity <= 0 {
		return nil, NewInvalidQuantityError(quantity)
	}
	if entry == nil || !loc.Trades(good.ID()) {
		return nil, NewGoodNotTradedError(loc.ID(), good.ID())
	}
	if entry.CurrentStock() < quantity {
		return nil, NewInsufficientStockError(quantity, entry.CurrentStock())
	}

	unitPrice := p.unitPrice(SideBuy, pl, loc, good, entry)
	total := roundPrice(unitPrice * float64(quantity))

	if pl.Gold() < total {
		return nil, NewInsufficientFundsError(total, pl.Gold())
	}
	requiredWeight := float64(quantity) * good.Weight()
	if pl.RemainingCargoCapacity() < requiredWeight {
		return nil, NewInsufficientCargoSpaceError(requiredWeight, pl.RemainingCargoCapacity())
	}

	goldBefore := pl.Gold()
	if err := pl.RemoveGold(total); err != nil {
		return nil, fmt.Errorf("debit gold: %w", err)
	}
	if err := pl.AddCargo(good.ID(), quantity, good.Weight()); err != nil {
		return nil, fmt.Errorf("load cargo: %w", err)
	}
	if err := entry.RemoveStock(quantity); err != nil {
		return nil, fmt.Errorf("remove stock: %w", err)
	}

	p.settle(loc, entry, quantity, unitPrice, SideBuy)

	return &Receipt{
		Side:       SideBuy,
		LocationID: loc.ID(),
		GoodID:     good.ID(),
		Quantity:   quantity,
		UnitPrice:  unitPrice,
		Total:      total,
		GoldBefore: goldBefore,
		GoldAfter:  pl.Gold(),
	}, nil
}

// Sell sells quantity units of good at the given city. Symmetric to Buy:
// bonuses and negotiation raise the proceeds instead of lowering the cost.
func (p *TransactionProcessor) Sell(
	pl *player.Player,
	loc *catalog.Location,
	good *catalog.Good,
	entry *market.Entry,
	quantity int,
) (*Receipt, error) {
	if quantity <= 0 {
		return nil, NewInvalidQuantityError(quantity)
	}
	if entry == nil || !loc.Trades(good.ID()) {
		return nil, NewGoodNotTradedError(loc.ID(), good.ID())
	}
	if !pl.HasCargo(good.ID(), quantity) {
		return nil, NewInsufficientCargoError(good.ID(), quantity)
	}

	unitPrice := p.unitPrice(SideSell, pl, loc, good, entry)
	total := roundPrice(unitPrice * float64(quantity))

	goldBefore := pl.Gold()
	if err := pl.RemoveCargo(good.ID(), quantity); err != nil {
		return nil, fmt.Errorf("unload cargo: %w", err)
	}
	if err := pl.AddGold(total); err != nil {
		return nil, fmt.Errorf("credit gold: %w", err)
	}
	if err := entry.AddStock(quantity); err != nil {
		return nil, fmt.Errorf("add stock: %w", err)
	}

	p.settle(loc, entry, quantity, unitPrice, SideSell)

	return &Receipt{
		Side:       SideSell,
		LocationID: loc.ID(),
		GoodID:     good.ID(),
		Quantity:   quantity,
		UnitPrice:  unitPrice,
		Total:      total,
		GoldBefore: goldBefore,
		GoldAfter:  pl.Gold(),
	}, nil
}

// unitPrice computes the final per-unit price:
//
//	basePrice × priceFactor × (1 ∓ kingdomBonus ∓ cityBonus) × negotiation × slippage
//
// Buying subtracts the bonuses and negotiation discount; selling adds them.
func (p *TransactionProcessor) unitPrice(side Side, pl *player.Player, loc *catalog.Location, good *catalog.Good, entry *market.Entry) float64 {
	kingdomBonus := p.reputation.KingdomTradeBonus(loc.Kingdom())
	cityBonus := p.reputation.CityTradeBonus(loc.ID())
	negotiation := negotiationRate * float64(pl.Skills().Negotiation)

	sign := -1.0
	if side == SideSell {
		sign = 1.0
	}

	reputationTerm := 1 + sign*(kingdomBonus+cityBonus)
	negotiationTerm := 1 + sign*negotiation
	slippage := minSlippage + p.rng.Float64()*(maxSlippage-minSlippage)

	return float64(good.BasePrice()) * entry.PriceFactor() * reputationTerm * negotiationTerm * slippage
}

// settle applies the post-trade side effects: the stock-pressure nudge on the
// price factor, the reputation gains and one price history sample.
func (p *TransactionProcessor) settle(loc *catalog.Location, entry *market.Entry, quantity int, unitPrice float64, side Side) {
	pressure := float64(quantity) / stockPressureDivisor
	if side == SideBuy {
		entry.NudgePriceFactor(pressure)
	} else {
		entry.NudgePriceFactor(-pressure)
	}

	p.reputation.AdjustCityReputation(loc.ID(), cityReputationGain)
	p.reputation.AdjustKingdomReputation(loc.Kingdom(), kingdomReputationGain)

	p.history.AddPrice(loc.ID(), entry.GoodID(), roundPrice(unitPrice))
}

func roundPrice(v float64) int {
	return int(math.Round(v))
}
