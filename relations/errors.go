package relations

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrDomain is returned when an input violates a mathematical
	// precondition of a relation, or when the relation would evaluate to a
	// non-finite value.
	ErrDomain = errors.New("relations: domain error")

	// ErrSubsonic is returned by shock, Mach angle and Prandtl-Meyer
	// relations when the upstream Mach number is below one.
	ErrSubsonic = fmt.Errorf("%w: flow is subsonic", ErrDomain)

	// ErrDetached is returned by the oblique shock solver when the turning
	// angle exceeds the maximum attainable for the upstream Mach number.
	ErrDetached = fmt.Errorf("%w: turning angle exceeds detachment limit", ErrDomain)
)

func domainErr(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrDomain}, args...)...)
}

// finite guards the result of a closed form against NaN and Inf
func finite(name string, f float64) (float64, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, domainErr("%s evaluated to %v", name, f)
	}
	return f, nil
}
