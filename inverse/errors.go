package inverse

import (
	"errors"

	"github.com/notargets/compflow/relations"
)

var (
	// ErrNoSolution is returned when the whole interval was scanned without
	// a sample matching the target. It is an expected outcome, not a fault.
	ErrNoSolution = errors.New("inverse: no solution found within the specified interval")

	// ErrInvalidConfig is returned before any sampling when the interval,
	// accuracy, step or relation selection cannot be used.
	ErrInvalidConfig = errors.New("inverse: invalid configuration")

	// ErrDomain is the relations domain error, returned for a zero target
	// or an unusable gas.
	ErrDomain = relations.ErrDomain
)
