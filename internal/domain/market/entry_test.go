package market_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saltroad/tradewinds/internal/domain/market"
)

func TestNewEntry_ClampsPriceFactor(t *testing.T) {
	entry, err := market.NewEntry(1, 1, 9.5, 10)
	require.NoError(t, err)
	assert.Equal(t, market.MaxPriceFactor, entry.PriceFactor())

	entry, err = market.NewEntry(1, 1, 0.01, 10)
	require.NoError(t, err)
	assert.Equal(t, market.MinPriceFactor, entry.PriceFactor())
}

func TestNewEntry_RejectsNegativeStock(t *testing.T) {
	_, err := market.NewEntry(1, 1, 1.0, -5)
	assert.Error(t, err)
}

func TestEntry_FactorMutatorsStayInBounds(t *testing.T) {
	entry, err := market.NewEntry(1, 1, 1.0, 10)
	require.NoError(t, err)

	entry.MultiplyPriceFactor(100)
	assert.Equal(t, market.MaxPriceFactor, entry.PriceFactor())

	entry.NudgePriceFactor(-100)
	assert.Equal(t, market.MinPriceFactor, entry.PriceFactor())

	entry.SetPriceFactor(1.3)
	assert.InDelta(t, 1.3, entry.PriceFactor(), 1e-9)
}

func TestEntry_StockOperations(t *testing.T) {
	entry, err := market.NewEntry(1, 1, 1.0, 10)
	require.NoError(t, err)

	require.NoError(t, entry.AddStock(5))
	assert.Equal(t, 15, entry.CurrentStock())

	require.NoError(t, entry.RemoveStock(15))
	assert.Equal(t, 0, entry.CurrentStock())

	// Removing from an empty entry is rejected, not floored
	err = entry.RemoveStock(1)
	assert.Error(t, err)
	assert.Equal(t, 0, entry.CurrentStock())
}

func TestEntry_ScaleStockFloorsAtZero(t *testing.T) {
	entry, err := market.NewEntry(1, 1, 1.0, 10)
	require.NoError(t, err)

	entry.ScaleStock(-0.10)
	assert.Equal(t, 9, entry.CurrentStock())

	entry.ScaleStock(-5.0)
	assert.Equal(t, 0, entry.CurrentStock())

	entry.ScaleStock(0.25)
	assert.Equal(t, 0, entry.CurrentStock())
}
