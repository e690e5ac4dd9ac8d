package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saltroad/tradewinds/internal/domain/catalog"
)

func TestNewGood_Validation(t *testing.T) {
	tests := []struct {
		name      string
		goodName  string
		basePrice int
		weight    float64
		demand    float64
	}{
		{"empty name", "", 10, 1.0, 1.0},
		{"non-positive base price", "Grain", 0, 1.0, 1.0},
		{"non-positive weight", "Grain", 10, 0, 1.0},
		{"non-positive demand factor", "Grain", 10, 1.0, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := catalog.NewGood(1, tc.goodName, tc.basePrice, tc.weight, catalog.CategoryFood, catalog.RarityCommon, tc.demand, nil, nil)
			assert.Error(t, err)
		})
	}
}

func TestGood_RegionPredicates(t *testing.T) {
	g, err := catalog.NewGood(9, "Spices", 150, 0.5, catalog.CategoryLuxury, catalog.RarityRare, 1.25,
		[]string{"Suncrest"}, []string{"Frostmark", "Heartlands"})
	require.NoError(t, err)

	assert.True(t, g.IsSpecialtyIn("Suncrest"))
	assert.False(t, g.IsSpecialtyIn("Frostmark"))
	assert.True(t, g.IsDemandedIn("Heartlands"))
	assert.Equal(t, []string{"Frostmark", "Heartlands"}, g.DemandRegions())
}

func TestNewLocation_Validation(t *testing.T) {
	_, err := catalog.NewLocation(1, "", "Heartlands", "Kingdom of Veren", 1000, nil)
	assert.Error(t, err)

	_, err = catalog.NewLocation(1, "Aldermere", "", "Kingdom of Veren", 1000, nil)
	assert.Error(t, err)

	_, err = catalog.NewLocation(1, "Aldermere", "Heartlands", "", 1000, nil)
	assert.Error(t, err)

	_, err = catalog.NewLocation(1, "Aldermere", "Heartlands", "Kingdom of Veren", -1, nil)
	assert.Error(t, err)
}

func TestLocation_GoodAccess(t *testing.T) {
	l, err := catalog.NewLocation(1, "Aldermere", "Heartlands", "Kingdom of Veren", 12000, []int{5, 1, 3})
	require.NoError(t, err)

	assert.True(t, l.Trades(3))
	assert.False(t, l.Trades(4))
	assert.Equal(t, []int{1, 3, 5}, l.AvailableGoods())
}
