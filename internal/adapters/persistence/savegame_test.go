package persistence_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	staticcatalog "github.com/saltroad/tradewinds/internal/adapters/catalog"
	"github.com/saltroad/tradewinds/internal/adapters/persistence"
	"github.com/saltroad/tradewinds/internal/application/engine"
	"github.com/saltroad/tradewinds/internal/domain/catalog"
)

func newTestEngine(t *testing.T, seed int64) *engine.MarketEngine {
	t.Helper()

	grain, err := catalog.NewGood(1, "Grain", 100, 1.0, catalog.CategoryFood, catalog.RarityCommon, 1.0, nil, nil)
	require.NoError(t, err)
	city, err := catalog.NewLocation(1, "Aldermere", "Heartlands", "Kingdom of Veren", 5000, []int{1})
	require.NoError(t, err)

	return engine.NewMarketEngine(
		staticcatalog.NewStaticGoodCatalog([]*catalog.Good{grain}),
		staticcatalog.NewStaticLocationCatalog([]*catalog.Location{city}),
		engine.Options{Seed: seed, SpawnChance: -1},
	)
}

func TestSaveLoadMarket_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "saves", "market.json")
	source := newTestEngine(t, 17)
	source.AdvanceTime(5)
	source.Reputation().SetKingdomReputation("Kingdom of Veren", 33)

	require.NoError(t, persistence.SaveMarket(path, source))

	target := newTestEngine(t, 99)
	loaded, err := persistence.LoadMarket(path, target)

	require.NoError(t, err)
	assert.True(t, loaded)
	assert.Equal(t, source.GetGoodPrice(1, 1), target.GetGoodPrice(1, 1))
	assert.Equal(t, source.GetStock(1, 1), target.GetStock(1, 1))
	assert.Equal(t, 33.0, target.GetKingdomReputation("Kingdom of Veren"))
}

func TestLoadMarket_MissingFileIsNotAnError(t *testing.T) {
	target := newTestEngine(t, 1)
	priceBefore := target.GetGoodPrice(1, 1)

	loaded, err := persistence.LoadMarket(filepath.Join(t.TempDir(), "missing.json"), target)

	require.NoError(t, err)
	assert.False(t, loaded)
	assert.Equal(t, priceBefore, target.GetGoodPrice(1, 1))
}

func TestLoadMarket_MalformedJSONLeavesEngineUntouched(t *testing.T) {
	path := filepath.Join(t.TempDir(), "market.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	target := newTestEngine(t, 1)
	priceBefore := target.GetGoodPrice(1, 1)
	stockBefore := target.GetStock(1, 1)

	loaded, err := persistence.LoadMarket(path, target)

	assert.False(t, loaded)
	var saveErr *persistence.SaveDataError
	require.ErrorAs(t, err, &saveErr)
	assert.Equal(t, path, saveErr.Path)
	assert.Equal(t, priceBefore, target.GetGoodPrice(1, 1))
	assert.Equal(t, stockBefore, target.GetStock(1, 1))
}

func TestLoadMarket_InvalidSnapshotLeavesEngineUntouched(t *testing.T) {
	path := filepath.Join(t.TempDir(), "market.json")
	body := `{"prices":{"1":{"1":{"basePrice":100,"priceFactor":1.0,"currentStock":-4}}},"kingdomReputations":{},"events":[]}`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	target := newTestEngine(t, 1)
	stockBefore := target.GetStock(1, 1)

	loaded, err := persistence.LoadMarket(path, target)

	assert.False(t, loaded)
	var saveErr *persistence.SaveDataError
	require.ErrorAs(t, err, &saveErr)
	assert.Equal(t, stockBefore, target.GetStock(1, 1))
}

func TestSaveMarket_LeavesNoTempFileBehind(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "market.json")

	require.NoError(t, persistence.SaveMarket(path, newTestEngine(t, 2)))

	_, err := os.Stat(path)
	require.NoError(t, err)
	_, err = os.Stat(path + ".tmp")
	assert.True(t, os.IsNotExist(err))
}
