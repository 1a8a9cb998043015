package primitives

import "github.com/pkg/errors"

var (
	// ErrPrecondition indicates a segment constructor invariant was violated,
	// for example an arc with zero curvature rate or a compound with no
	// children. A violation indicates a bug in the calling planner and is
	// never masked.
	ErrPrecondition = errors.New("segment precondition violated")

	// ErrInvalidArgument indicates a malformed sampling request.
	ErrInvalidArgument = errors.New("invalid sampling argument")

	// ErrNumerical indicates a closed-form evaluation left its expected
	// domain, such as a nominally real displacement retaining a
	// non-negligible imaginary component.
	ErrNumerical = errors.New("numerical evaluation out of domain")
)
