package catalog

import "github.com/saltroad/tradewinds/internal/domain/catalog"

// Default world data: four regions under three kingdoms, twelve goods.
// Regions tag goods as specialties (produced cheaply) or demands (paying a
// premium); kingdoms scope diplomatic reputation.

type goodSpec struct {
	id           int
	name         string
	basePrice    int
	weight       float64
	category     catalog.Category
	rarity       catalog.Rarity
	demandFactor float64
	specialty    []string
	demand       []string
}

type locationSpec struct {
	id         int
	name       string
	region     string
	kingdom    string
	population int
	goods      []int
}

var defaultGoods = []goodSpec{
	{1, "Grain", 10, 1.0, catalog.CategoryFood, catalog.RarityCommon, 1.0, []string{"Heartlands"}, []string{"Frostmark"}},
	{2, "Salted Fish", 15, 1.2, catalog.CategoryFood, catalog.RarityCommon, 1.0, []string{"Stormcoast"}, []string{"Heartlands"}},
	{3, "Timber", 20, 4.0, catalog.CategoryRawGoods, catalog.RarityCommon, 0.9, []string{"Frostmark"}, []string{"Suncrest"}},
	{4, "Iron Ore", 35, 5.0, catalog.CategoryRawGoods, catalog.RarityCommon, 1.0, []string{"Frostmark"}, []string{"Stormcoast"}},
	{5, "Wool", 25, 1.5, catalog.CategoryRawGoods, catalog.RarityCommon, 0.95, []string{"Heartlands"}, nil},
	{6, "Cloth", 60, 1.0, catalog.CategoryCrafted, catalog.RarityUncommon, 1.1, []string{"Suncrest"}, []string{"Frostmark"}},
	{7, "Tools", 90, 3.0, catalog.CategoryCrafted, catalog.RarityUncommon, 1.1, []string{"Stormcoast"}, []string{"Heartlands"}},
	{8, "Wine", 80, 2.0, catalog.CategoryLuxury, catalog.RarityUncommon, 1.15, []string{"Suncrest"}, []string{"Stormcoast"}},
	{9, "Spices", 150, 0.5, catalog.CategoryLuxury, catalog.RarityRare, 1.25, []string{"Suncrest"}, []string{"Frostmark", "Heartlands"}},
	{10, "Silk", 200, 0.4, catalog.CategoryLuxury, catalog.RarityRare, 1.3, nil, []string{"Stormcoast", "Suncrest"}},
	{11, "Gemstones", 400, 0.2, catalog.CategoryLuxury, catalog.RarityExotic, 1.4, []string{"Frostmark"}, []string{"Suncrest"}},
	{12, "Moonleaf", 120, 0.3, catalog.CategoryContraband, catalog.RarityRare, 1.2, []string{"Stormcoast"}, nil},
}

var defaultLocations = []locationSpec{
	{1, "Aldermere", "Heartlands", "Kingdom of Veren", 12000, []int{1, 2, 5, 6, 7, 8, 9, 10}},
	{2, "Oxfield", "Heartlands", "Kingdom of Veren", 4500, []int{1, 3, 5, 7}},
	{3, "Gullhaven", "Stormcoast", "Kingdom of Veren", 8000, []int{1, 2, 4, 7, 10, 12}},
	{4, "Tidesend", "Stormcoast", "Marches of Corvel", 3000, []int{2, 3, 7, 8, 12}},
	{5, "Winterholt", "Frostmark", "Marches of Corvel", 6000, []int{1, 3, 4, 6, 9, 11}},
	{6, "Ironreach", "Frostmark", "Marches of Corvel", 9500, []int{3, 4, 6, 7, 11}},
	{7, "Solmara", "Suncrest", "Amber Throne", 15000, []int{1, 6, 8, 9, 10, 11}},
	{8, "Duskvale", "Suncrest", "Amber Throne", 5500, []int{2, 5, 8, 9, 10}},
}

// DefaultGoodCatalog returns the built-in good table.
func DefaultGoodCatalog() *StaticGoodCatalog {
	goods := make([]*catalog.Good, 0, len(defaultGoods))
	for _, s := range defaultGoods {
		g, err := catalog.NewGood(s.id, s.name, s.basePrice, s.weight, s.category, s.rarity, s.demandFactor, s.specialty, s.demand)
		if err != nil {
			// Static data is validated at development time.
			panic(err)
		}
		goods = append(goods, g)
	}
	return NewStaticGoodCatalog(goods)
}

// DefaultLocationCatalog returns the built-in city table.
func DefaultLocationCatalog() *StaticLocationCatalog {
	locations := make([]*catalog.Location, 0, len(defaultLocations))
	for _, s := range defaultLocations {
		l, err := catalog.NewLocation(s.id, s.name, s.region, s.kingdom, s.population, s.goods)
		if err != nil {
			panic(err)
		}
		locations = append(locations, l)
	}
	return NewStaticLocationCatalog(locations)
}
