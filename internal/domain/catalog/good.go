package catalog

import (
	"errors"
	"sort"
)

// Category classifies a tradable good.
type Category string

const (
	CategoryFood       Category = "FOOD"
	CategoryRawGoods   Category = "RAW_GOODS"
	CategoryCrafted    Category = "CRAFTED"
	CategoryLuxury     Category = "LUXURY"
	CategoryContraband Category = "CONTRABAND"
)

// Rarity describes how widely a good circulates.
type Rarity string

const (
	RarityCommon   Rarity = "COMMON"
	RarityUncommon Rarity = "UNCOMMON"
	RarityRare     Rarity = "RARE"
	RarityExotic   Rarity = "EXOTIC"
)

// Good is an immutable reference entity describing one tradable commodity.
// Prices everywhere in the engine are expressed as basePrice multiplied by a
// per-city price factor, so Good itself never changes during a session.
type Good struct {
	id               int
	name             string
	basePrice        int
	weight           float64
	category         Category
	rarity           Rarity
	demandFactor     float64
	specialtyRegions map[string]bool
	demandRegions    map[string]bool
}

// NewGood creates a Good with validation.
func NewGood(
	id int,
	name string,
	basePrice int,
	weight float64,
	category Category,
	rarity Rarity,
	demandFactor float64,
	specialtyRegions []string,
	demandRegions []string,
) (*Good, error) {
	if name == "" {
		return nil, errors.New("good name cannot be empty")
	}
	if basePrice <= 0 {
		return nil, errors.New("base price must be positive")
	}
	if weight <= 0 {
		return nil, errors.New("weight must be positive")
	}
	if demandFactor <= 0 {
		return nil, errors.New("demand factor must be positive")
	}

	specialty := make(map[string]bool, len(specialtyRegions))
	for _, r := range specialtyRegions {
		specialty[r] = true
	}
	demand := make(map[string]bool, len(demandRegions))
	for _, r := range demandRegions {
		demand[r] = true
	}

	return &Good{
		id:               id,
		name:             name,
		basePrice:        basePrice,
		weight:           weight,
		category:         category,
		rarity:           rarity,
		demandFactor:     demandFactor,
		specialtyRegions: specialty,
		demandRegions:    demand,
	}, nil
}

func (g *Good) ID() int {
	return g.id
}

func (g *Good) Name() string {
	return g.name
}

func (g *Good) BasePrice() int {
	return g.basePrice
}

func (g *Good) Weight() float64 {
	return g.weight
}

func (g *Good) Category() Category {
	return g.category
}

func (g *Good) Rarity() Rarity {
	return g.rarity
}

// DemandFactor is the static demand multiplier baked into the catalog.
func (g *Good) DemandFactor() float64 {
	return g.demandFactor
}

// SpecialtyRegions returns the producing regions in ascending order.
func (g *Good) SpecialtyRegions() []string {
	return sortedRegions(g.specialtyRegions)
}

// DemandRegions returns the premium-paying regions in ascending order.
func (g *Good) DemandRegions() []string {
	return sortedRegions(g.demandRegions)
}

func sortedRegions(set map[string]bool) []string {
	out := make([]string, 0, len(set))
	for r := range set {
		out = append(out, r)
	}
	sort.Strings(out)
	return out
}

// IsSpecialtyIn reports whether the region produces this good cheaply.
func (g *Good) IsSpecialtyIn(region string) bool {
	return g.specialtyRegions[region]
}

// IsDemandedIn reports whether the region pays a premium for this good.
func (g *Good) IsDemandedIn(region string) bool {
	return g.demandRegions[region]
}
