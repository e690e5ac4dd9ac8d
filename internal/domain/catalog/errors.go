package catalog

import "errors"

var (
	// ErrGoodNotFound is returned when a good id is not in the catalog
	ErrGoodNotFound = errors.New("good not found")

	// ErrLocationNotFound is returned when a city id is not in the catalog
	ErrLocationNotFound = errors.New("location not found")
)
