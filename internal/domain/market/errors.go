package market

import "errors"

// Domain errors for market state

var (
	// ErrEntryNotFound is returned when no entry exists for a (city, good) pair
	ErrEntryNotFound = errors.New("market entry not found")

	// ErrInvalidStock is returned when restored stock is negative
	ErrInvalidStock = errors.New("invalid stock")

	// ErrInvalidPriceFactor is returned when restored data carries a factor
	// that is not a finite number
	ErrInvalidPriceFactor = errors.New("invalid price factor")
)
