package trading

import (
	"fmt"

	"github.com/saltroad/tradewinds/internal/domain/shared"
)

// Trade failures are typed results, never panics: the presentation layer
// reports the specific violated constraint, and a failed call leaves every
// collaborator untouched.

type TradeError struct {
	*shared.DomainError
}

func NewTradeError(message string) *TradeError {
	return &TradeError{DomainError: &shared.DomainError{Message: message}}
}

type InvalidQuantityError struct {
	*TradeError
	Quantity int
}

func NewInvalidQuantityError(quantity int) *InvalidQuantityError {
	return &InvalidQuantityError{
		TradeError: NewTradeError(fmt.Sprintf("quantity must be positive, got %d", quantity)),
		Quantity:   quantity,
	}
}

type GoodNotTradedError struct {
	*TradeError
	LocationID int
	GoodID     int
}

func NewGoodNotTradedError(locationID, goodID int) *GoodNotTradedError {
	return &GoodNotTradedError{
		TradeError: NewTradeError(fmt.Sprintf("good %d is not traded at city %d", goodID, locationID)),
		LocationID: locationID,
		GoodID:     goodID,
	}
}

type InsufficientStockError struct {
	*TradeError
	Requested int
	Available int
}

func NewInsufficientStockError(requested, available int) *InsufficientStockError {
	return &InsufficientStockError{
		TradeError: NewTradeError(fmt.Sprintf("insufficient stock: need %d, have %d", requested, available)),
		Requested:  requested,
		Available:  available,
	}
}

type InsufficientFundsError struct {
	*TradeError
	Required  int
	Available int
}

func NewInsufficientFundsError(required, available int) *InsufficientFundsError {
	return &InsufficientFundsError{
		TradeError: NewTradeError(fmt.Sprintf("insufficient funds: need %d, have %d", required, available)),
		Required:   required,
		Available:  available,
	}
}

type InsufficientCargoSpaceError struct {
	*TradeError
	RequiredWeight  float64
	AvailableWeight float64
}

func NewInsufficientCargoSpaceError(required, available float64) *InsufficientCargoSpaceError {
	return &InsufficientCargoSpaceError{
		TradeError:      NewTradeError(fmt.Sprintf("insufficient cargo space: need %.1f, have %.1f", required, available)),
		RequiredWeight:  required,
		AvailableWeight: available,
	}
}

type InsufficientCargoError struct {
	*TradeError
	GoodID    int
	Requested int
}

func NewInsufficientCargoError(goodID, requested int) *InsufficientCargoError {
	return &InsufficientCargoError{
		TradeError: NewTradeError(fmt.Sprintf("cargo does not hold %d units of good %d", requested, goodID)),
		GoodID:     goodID,
		Requested:  requested,
	}
}
