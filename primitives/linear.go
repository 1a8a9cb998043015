package primitives

import (
	"fmt"
	"math"

	"github.com/golang/geo/r3"
	"github.com/pkg/errors"
)

// omegaZeroTol is the curvature rate magnitude below which motion is treated
// as straight. Linear segments require a start below it, arcs above it.
const omegaZeroTol = 1e-4

// Linear is a zero-curvature straight segment.
type Linear struct {
	baseSegment
}

// NewLinear creates a straight segment of the given arc length from a start
// pose, which must have (approximately) zero curvature rate.
func NewLinear(start Pose, length float64) (*Linear, error) {
	if err := checkLength(length); err != nil {
		return nil, err
	}
	if math.Abs(start.Omega) > omegaZeroTol {
		return nil, errors.Wrapf(ErrPrecondition,
			"linear segment requires zero start curvature rate, got %f", start.Omega)
	}
	seg := &Linear{baseSegment{start: start, length: length}}
	end, err := seg.PoseAt(length)
	if err != nil {
		return nil, err
	}
	seg.end = end
	return seg, nil
}

// PoseAt returns the pose dist along the fixed heading from the start.
func (seg *Linear) PoseAt(dist float64) (Pose, error) {
	delta := r3.Vector{
		X: dist * math.Cos(seg.start.Theta),
		Y: dist * math.Sin(seg.start.Theta),
	}
	return Pose{Point: seg.start.Point.Add(delta), Theta: seg.start.Theta, Omega: 0}, nil
}

func (seg *Linear) String() string {
	return fmt.Sprintf("Linear(%s, %f)", seg.start, seg.length)
}
