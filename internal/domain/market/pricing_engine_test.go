package market_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saltroad/tradewinds/internal/domain/catalog"
	"github.com/saltroad/tradewinds/internal/domain/market"
)

func testGood(t *testing.T, demandFactor float64, specialty, demand []string) *catalog.Good {
	t.Helper()
	g, err := catalog.NewGood(1, "Grain", 10, 1.0, catalog.CategoryFood, catalog.RarityCommon, demandFactor, specialty, demand)
	require.NoError(t, err)
	return g
}

func testLocation(t *testing.T, region string, population int) *catalog.Location {
	t.Helper()
	l, err := catalog.NewLocation(1, "Aldermere", region, "Kingdom of Veren", population, []int{1})
	require.NoError(t, err)
	return l
}

func TestComputeFactor_WithinBounds(t *testing.T) {
	engine := market.NewPricingEngine(rand.New(rand.NewSource(42)))
	good := testGood(t, 1.4, nil, []string{"Heartlands"})
	loc := testLocation(t, "Heartlands", 50000)

	for i := 0; i < 1000; i++ {
		factor := engine.ComputeFactor(loc, good)
		assert.GreaterOrEqual(t, factor, market.MinPriceFactor)
		assert.LessOrEqual(t, factor, market.MaxPriceFactor)
	}
}

func TestComputeFactor_DeterministicWithSameSeed(t *testing.T) {
	good := testGood(t, 1.0, nil, nil)
	loc := testLocation(t, "Heartlands", 8000)

	a := market.NewPricingEngine(rand.New(rand.NewSource(7)))
	b := market.NewPricingEngine(rand.New(rand.NewSource(7)))

	for i := 0; i < 50; i++ {
		assert.Equal(t, a.ComputeFactor(loc, good), b.ComputeFactor(loc, good))
	}
}

func TestComputeFactor_SpecialtyRegionIsCheaper(t *testing.T) {
	specialtyGood := testGood(t, 1.0, []string{"Heartlands"}, nil)
	demandGood := testGood(t, 1.0, nil, []string{"Heartlands"})
	loc := testLocation(t, "Heartlands", 5000)

	// Average out the jitter over many samples
	engine := market.NewPricingEngine(rand.New(rand.NewSource(3)))
	var specialtySum, demandSum float64
	const samples = 2000
	for i := 0; i < samples; i++ {
		specialtySum += engine.ComputeFactor(loc, specialtyGood)
		demandSum += engine.ComputeFactor(loc, demandGood)
	}

	assert.InDelta(t, 0.8, specialtySum/samples, 0.02)
	assert.InDelta(t, 1.25, demandSum/samples, 0.02)
}

func TestComputeFactor_EconomyFactorClamped(t *testing.T) {
	good := testGood(t, 1.0, nil, nil)
	engine := market.NewPricingEngine(rand.New(rand.NewSource(5)))

	// A metropolis cannot push the economy term past 1.5
	metropolis := testLocation(t, "Heartlands", 1000000)
	hamlet := testLocation(t, "Heartlands", 0)

	var bigSum, smallSum float64
	const samples = 2000
	for i := 0; i < samples; i++ {
		bigSum += engine.ComputeFactor(metropolis, good)
		smallSum += engine.ComputeFactor(hamlet, good)
	}

	assert.InDelta(t, 1.5, bigSum/samples, 0.03)
	assert.InDelta(t, 0.8, smallSum/samples, 0.02)
}

func TestRecompute_StoresFactorOnEntry(t *testing.T) {
	engine := market.NewPricingEngine(rand.New(rand.NewSource(9)))
	good := testGood(t, 1.0, nil, nil)
	loc := testLocation(t, "Heartlands", 5000)

	entry, err := market.NewEntry(loc.ID(), good.ID(), 1.0, 10)
	require.NoError(t, err)

	engine.Recompute(entry, loc, good)
	assert.GreaterOrEqual(t, entry.PriceFactor(), market.MinPriceFactor)
	assert.LessOrEqual(t, entry.PriceFactor(), market.MaxPriceFactor)
}
