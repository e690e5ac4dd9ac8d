package steps

import (
	"errors"
	"fmt"
)

// expectTradeError asserts that err matches the typed trade error pointed to
// by target.
func expectTradeError(err error, target any) error {
	if err == nil {
		return fmt.Errorf("expected an error, got none")
	}
	if !errors.As(err, target) {
		return fmt.Errorf("expected %T, got %v", target, err)
	}
	return nil
}
