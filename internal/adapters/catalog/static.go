package catalog

import (
	"sort"

	"github.com/saltroad/tradewinds/internal/domain/catalog"
)

// StaticGoodCatalog is an in-memory, immutable good table.
type StaticGoodCatalog struct {
	byID  map[int]*catalog.Good
	goods []*catalog.Good
}

// NewStaticGoodCatalog builds a catalog from the given goods.
func NewStaticGoodCatalog(goods []*catalog.Good) *StaticGoodCatalog {
	byID := make(map[int]*catalog.Good, len(goods))
	ordered := make([]*catalog.Good, len(goods))
	copy(ordered, goods)
	sort.Slice(ordered, func(i, j int) bool { return ordered[i].ID() < ordered[j].ID() })
	for _, g := range ordered {
		byID[g.ID()] = g
	}
	return &StaticGoodCatalog{byID: byID, goods: ordered}
}

func (c *StaticGoodCatalog) ListGoods() []*catalog.Good {
	out := make([]*catalog.Good, len(c.goods))
	copy(out, c.goods)
	return out
}

func (c *StaticGoodCatalog) GetGood(id int) (*catalog.Good, error) {
	g, ok := c.byID[id]
	if !ok {
		return nil, catalog.ErrGoodNotFound
	}
	return g, nil
}

// StaticLocationCatalog is an in-memory, immutable city table.
type StaticLocationCatalog struct {
	byID      map[int]*catalog.Location
	locations []*catalog.Location
	regions   []string
}

// NewStaticLocationCatalog builds a catalog from the given cities.
func NewStaticLocationCatalog(locations []*catalog.Location) *StaticLocationCatalog {
	byID := make(map[int]*catalog.Location, len(locations))
	ordered := make([]*catalog.Location, len(locations))
	copy(ordered, locations)
	sort.Slice(ordered, func(i, j int) bool { return ordered[i].ID() < ordered[j].ID() })

	regionSet := make(map[string]bool)
	for _, l := range ordered {
		byID[l.ID()] = l
		regionSet[l.Region()] = true
	}
	regions := make([]string, 0, len(regionSet))
	for r := range regionSet {
		regions = append(regions, r)
	}
	sort.Strings(regions)

	return &StaticLocationCatalog{byID: byID, locations: ordered, regions: regions}
}

func (c *StaticLocationCatalog) ListLocations() []*catalog.Location {
	out := make([]*catalog.Location, len(c.locations))
	copy(out, c.locations)
	return out
}

func (c *StaticLocationCatalog) GetLocation(id int) (*catalog.Location, error) {
	l, ok := c.byID[id]
	if !ok {
		return nil, catalog.ErrLocationNotFound
	}
	return l, nil
}

func (c *StaticLocationCatalog) Regions() []string {
	out := make([]string, len(c.regions))
	copy(out, c.regions)
	return out
}
