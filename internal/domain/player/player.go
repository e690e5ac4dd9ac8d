package player

import "fmt"

// TradeSkills carries the skill levels that influence transaction pricing
// and black market access.
type TradeSkills struct {
	Negotiation int
	Smuggling   int
}

// Player is the trading collaborator mutated by the transaction processor:
// a gold purse, a weight-limited cargo hold and trade skills. Reputation is
// tracked separately by the reputation ledger.
type Player struct {
	gold   int
	cargo  *Cargo
	skills TradeSkills
}

// NewPlayer creates a player with starting gold and cargo capacity.
func NewPlayer(gold int, cargoCapacity float64, skills TradeSkills) (*Player, error) {
	if gold < 0 {
		return nil, fmt.Errorf("gold cannot be negative")
	}
	cargo, err := NewCargo(cargoCapacity)
	if err != nil {
		return nil, err
	}
	return &Player{
		gold:   gold,
		cargo:  cargo,
		skills: skills,
	}, nil
}

func (p *Player) Gold() int {
	return p.gold
}

func (p *Player) Skills() TradeSkills {
	return p.skills
}

func (p *Player) Cargo() *Cargo {
	return p.cargo
}

// RemainingCargoCapacity returns the free weight capacity of the hold.
func (p *Player) RemainingCargoCapacity() float64 {
	return p.cargo.AvailableCapacity()
}

// HasCargo checks whether the hold contains at least units of a good.
func (p *Player) HasCargo(goodID, units int) bool {
	return p.cargo.HasItem(goodID, units)
}

// AddCargo loads goods into the hold.
func (p *Player) AddCargo(goodID, units int, unitWeight float64) error {
	return p.cargo.Add(goodID, units, unitWeight)
}

// RemoveCargo unloads goods from the hold.
func (p *Player) RemoveCargo(goodID, units int) error {
	return p.cargo.Remove(goodID, units)
}

// AddGold credits the purse.
func (p *Player) AddGold(amount int) error {
	if amount < 0 {
		return fmt.Errorf("cannot add negative gold")
	}
	p.gold += amount
	return nil
}

// RemoveGold debits the purse. The caller must have validated the balance.
func (p *Player) RemoveGold(amount int) error {
	if amount < 0 {
		return fmt.Errorf("cannot remove negative gold")
	}
	if amount > p.gold {
		return fmt.Errorf("insufficient gold: need %d, have %d", amount, p.gold)
	}
	p.gold -= amount
	return nil
}
