package player_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saltroad/tradewinds/internal/domain/player"
)

func TestNewPlayer_Validation(t *testing.T) {
	_, err := player.NewPlayer(-1, 100, player.TradeSkills{})
	assert.Error(t, err)

	_, err = player.NewPlayer(100, -1, player.TradeSkills{})
	assert.Error(t, err)

	pl, err := player.NewPlayer(500, 100, player.TradeSkills{Negotiation: 3, Smuggling: 1})
	require.NoError(t, err)
	assert.Equal(t, 500, pl.Gold())
	assert.Equal(t, 3, pl.Skills().Negotiation)
	assert.Equal(t, 100.0, pl.RemainingCargoCapacity())
}

func TestPlayer_GoldOperations(t *testing.T) {
	pl, err := player.NewPlayer(100, 50, player.TradeSkills{})
	require.NoError(t, err)

	require.NoError(t, pl.AddGold(50))
	assert.Equal(t, 150, pl.Gold())

	require.NoError(t, pl.RemoveGold(150))
	assert.Equal(t, 0, pl.Gold())

	assert.Error(t, pl.RemoveGold(1))
	assert.Error(t, pl.AddGold(-5))
	assert.Equal(t, 0, pl.Gold())
}

func TestCargo_WeightAccounting(t *testing.T) {
	pl, err := player.NewPlayer(100, 20, player.TradeSkills{})
	require.NoError(t, err)

	// 10 units at 1.5 weight each
	require.NoError(t, pl.AddCargo(1, 10, 1.5))
	assert.InDelta(t, 5.0, pl.RemainingCargoCapacity(), 1e-9)
	assert.True(t, pl.HasCargo(1, 10))
	assert.False(t, pl.HasCargo(1, 11))

	// 4 more units would weigh 6.0 and overflow
	err = pl.AddCargo(1, 4, 1.5)
	assert.Error(t, err)
	assert.Equal(t, 10, pl.Cargo().ItemUnits(1))

	require.NoError(t, pl.RemoveCargo(1, 10))
	assert.True(t, pl.Cargo().IsEmpty())
	assert.InDelta(t, 20.0, pl.RemainingCargoCapacity(), 1e-9)
}

func TestCargo_RemoveMoreThanHeldFails(t *testing.T) {
	cargo, err := player.NewCargo(50)
	require.NoError(t, err)

	require.NoError(t, cargo.Add(2, 5, 1.0))

	assert.Error(t, cargo.Remove(2, 6))
	assert.Error(t, cargo.Remove(3, 1))
	assert.Equal(t, 5, cargo.ItemUnits(2))
}

func TestCargo_InventoryIsSortedCopy(t *testing.T) {
	cargo, err := player.NewCargo(100)
	require.NoError(t, err)

	require.NoError(t, cargo.Add(5, 2, 1.0))
	require.NoError(t, cargo.Add(1, 3, 2.0))

	inv := cargo.Inventory()
	require.Len(t, inv, 2)
	assert.Equal(t, 1, inv[0].GoodID)
	assert.Equal(t, 5, inv[1].GoodID)

	inv[0].Units = 99
	assert.Equal(t, 3, cargo.ItemUnits(1))
}
