package market

import (
	"math/rand"

	"github.com/saltroad/tradewinds/internal/domain/catalog"
	"github.com/saltroad/tradewinds/pkg/utils"
)

// Regional price multipliers applied when a good is a specialty of (cheaper)
// or in demand in (pricier) the city's region.
const (
	specialtyRegionFactor = 0.8
	demandRegionFactor    = 1.25
)

// Local economy factor bounds (derived from population).
const (
	minEconomyFactor = 0.8
	maxEconomyFactor = 1.5
)

// PricingEngine computes the multiplicative price factor for a (city, good)
// pair. It is a pure domain service except for the jitter term, which is
// drawn from the single RNG the engine owns. One seeded source per engine
// instance keeps runs reproducible; callers inject the seed at construction.
type PricingEngine struct {
	rng *rand.Rand
}

// NewPricingEngine creates a pricing engine drawing jitter from rng.
func NewPricingEngine(rng *rand.Rand) *PricingEngine {
	return &PricingEngine{rng: rng}
}

// ComputeFactor combines, in order: the good's static demand factor, the
// regional factor, the local economy factor and a uniform jitter in
// [0.9, 1.1]. The result is clamped to [MinPriceFactor, MaxPriceFactor].
func (p *PricingEngine) ComputeFactor(loc *catalog.Location, good *catalog.Good) float64 {
	demand := good.DemandFactor()
	regional := p.regionalFactor(loc.Region(), good)
	economy := p.economyFactor(loc.Population())
	jitter := 0.9 + p.rng.Float64()*0.2

	return utils.Clamp(demand*regional*economy*jitter, MinPriceFactor, MaxPriceFactor)
}

// Recompute recalculates the entry's price factor from scratch and stores it.
func (p *PricingEngine) Recompute(entry *Entry, loc *catalog.Location, good *catalog.Good) {
	entry.SetPriceFactor(p.ComputeFactor(loc, good))
}

func (p *PricingEngine) regionalFactor(region string, good *catalog.Good) float64 {
	if good.IsSpecialtyIn(region) {
		return specialtyRegionFactor
	}
	if good.IsDemandedIn(region) {
		return demandRegionFactor
	}
	return 1.0
}

func (p *PricingEngine) economyFactor(population int) float64 {
	return utils.Clamp(1+(float64(population)-5000)/20000, minEconomyFactor, maxEconomyFactor)
}
