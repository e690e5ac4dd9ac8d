package catalog

import (
	"errors"
	"sort"
)

// Location is an immutable reference entity describing one city.
// The region ties a city to trade events and regional price factors; the
// kingdom ties it to diplomatic reputation.
type Location struct {
	id         int
	name       string
	region     string
	kingdom    string
	population int
	goods      map[int]bool
}

// NewLocation creates a Location with validation.
func NewLocation(id int, name, region, kingdom string, population int, goodIDs []int) (*Location, error) {
	if name == "" {
		return nil, errors.New("location name cannot be empty")
	}
	if region == "" {
		return nil, errors.New("location region cannot be empty")
	}
	if kingdom == "" {
		return nil, errors.New("location kingdom cannot be empty")
	}
	if population < 0 {
		return nil, errors.New("population cannot be negative")
	}

	goods := make(map[int]bool, len(goodIDs))
	for _, gid := range goodIDs {
		goods[gid] = true
	}

	return &Location{
		id:         id,
		name:       name,
		region:     region,
		kingdom:    kingdom,
		population: population,
		goods:      goods,
	}, nil
}

func (l *Location) ID() int {
	return l.id
}

func (l *Location) Name() string {
	return l.name
}

func (l *Location) Region() string {
	return l.region
}

func (l *Location) Kingdom() string {
	return l.kingdom
}

func (l *Location) Population() int {
	return l.population
}

// Trades reports whether the good is part of this city's catalog.
func (l *Location) Trades(goodID int) bool {
	return l.goods[goodID]
}

// AvailableGoods returns the city's good ids in ascending order.
func (l *Location) AvailableGoods() []int {
	ids := make([]int, 0, len(l.goods))
	for gid := range l.goods {
		ids = append(ids, gid)
	}
	sort.Ints(ids)
	return ids
}
