package player

import (
	"fmt"
	"sort"
)

// CargoItem represents one good held in the cargo hold.
type CargoItem struct {
	GoodID     int
	Units      int
	UnitWeight float64
}

// Cargo is a weight-capacity cargo manifest. Capacity and load are measured
// in weight units, not item counts, because goods differ in weight.
type Cargo struct {
	capacity float64
	items    map[int]*CargoItem
}

// NewCargo creates an empty cargo hold with the given weight capacity.
func NewCargo(capacity float64) (*Cargo, error) {
	if capacity < 0 {
		return nil, fmt.Errorf("cargo capacity cannot be negative")
	}
	return &Cargo{
		capacity: capacity,
		items:    make(map[int]*CargoItem),
	}, nil
}

func (c *Cargo) Capacity() float64 {
	return c.capacity
}

// UsedWeight returns the total weight of all held goods.
func (c *Cargo) UsedWeight() float64 {
	total := 0.0
	for _, item := range c.items {
		total += float64(item.Units) * item.UnitWeight
	}
	return total
}

// AvailableCapacity returns the remaining weight capacity.
func (c *Cargo) AvailableCapacity() float64 {
	return c.capacity - c.UsedWeight()
}

// HasItem checks whether the hold contains at least minUnits of a good.
func (c *Cargo) HasItem(goodID, minUnits int) bool {
	return c.ItemUnits(goodID) >= minUnits
}

// ItemUnits returns the units held of a good (0 if not present).
func (c *Cargo) ItemUnits(goodID int) int {
	if item, ok := c.items[goodID]; ok {
		return item.Units
	}
	return 0
}

// Add loads units of a good into the hold. The combined weight must fit the
// remaining capacity.
func (c *Cargo) Add(goodID, units int, unitWeight float64) error {
	if units <= 0 {
		return fmt.Errorf("cargo units must be positive")
	}
	if unitWeight <= 0 {
		return fmt.Errorf("unit weight must be positive")
	}
	weight := float64(units) * unitWeight
	if weight > c.AvailableCapacity() {
		return fmt.Errorf("cargo weight %.1f exceeds available capacity %.1f", weight, c.AvailableCapacity())
	}

	if item, ok := c.items[goodID]; ok {
		item.Units += units
		return nil
	}
	c.items[goodID] = &CargoItem{GoodID: goodID, Units: units, UnitWeight: unitWeight}
	return nil
}

// Remove unloads units of a good from the hold.
func (c *Cargo) Remove(goodID, units int) error {
	if units <= 0 {
		return fmt.Errorf("cargo units must be positive")
	}
	item, ok := c.items[goodID]
	if !ok || item.Units < units {
		return fmt.Errorf("cargo does not hold %d units of good %d", units, goodID)
	}
	item.Units -= units
	if item.Units == 0 {
		delete(c.items, goodID)
	}
	return nil
}

// Inventory returns the held items ordered by good id.
func (c *Cargo) Inventory() []CargoItem {
	out := make([]CargoItem, 0, len(c.items))
	for _, item := range c.items {
		out = append(out, *item)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].GoodID < out[j].GoodID })
	return out
}

// IsEmpty checks whether the hold is empty.
func (c *Cargo) IsEmpty() bool {
	return len(c.items) == 0
}

func (c *Cargo) String() string {
	return fmt.Sprintf("Cargo(%.1f/%.1f)", c.UsedWeight(), c.capacity)
}
