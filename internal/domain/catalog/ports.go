package catalog

// GoodCatalog provides read-only access to the static good table.
type GoodCatalog interface {
	// ListGoods returns all goods ordered by id.
	ListGoods() []*Good

	// GetGood returns the good with the given id, or ErrGoodNotFound.
	GetGood(id int) (*Good, error)
}

// LocationCatalog provides read-only access to the static city table.
type LocationCatalog interface {
	// ListLocations returns all cities ordered by id.
	ListLocations() []*Location

	// GetLocation returns the city with the given id, or ErrLocationNotFound.
	GetLocation(id int) (*Location, error)

	// Regions returns the distinct region names in ascending order.
	Regions() []string
}
