// Public domain.

package metric

import (
	"errors"
	"fmt"
)

// ErrNonPositiveRadius indicates a radius at or below zero.
var ErrNonPositiveRadius = errors.New("metric: radius must be positive")

// DomainError reports a radius at or inside a model's singular boundary.
// The operation that returns it still yields the model's saturation value,
// so a caller may choose to continue with that.
type DomainError struct {
	R  float64 // offending radius
	RS float64 // the model's characteristic radius
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("metric: radius %g at or inside characteristic radius %g", e.R, e.RS)
}
