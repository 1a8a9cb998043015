package primitives

import (
	"fmt"
	"math"

	"github.com/golang/geo/r3"
	"github.com/pkg/errors"
)

// Arc is a constant-curvature circular segment. The turn radius is
// 1/|start.Omega|; positive curvature rate turns left.
type Arc struct {
	baseSegment
}

// NewArc creates a circular segment of the given arc length from a start
// pose, which must have nonzero curvature rate. A degenerate zero-curvature
// arc is a Linear, not representable here.
func NewArc(start Pose, length float64) (*Arc, error) {
	if err := checkLength(length); err != nil {
		return nil, err
	}
	if math.Abs(start.Omega) <= omegaZeroTol {
		return nil, errors.Wrapf(ErrPrecondition,
			"arc segment requires nonzero start curvature rate, got %f", start.Omega)
	}
	seg := &Arc{baseSegment{start: start, length: length}}
	end, err := seg.PoseAt(length)
	if err != nil {
		return nil, err
	}
	seg.end = end
	return seg, nil
}

// PoseAt evaluates constant yaw-rate unicycle kinematics at unit forward
// speed:
//
//	theta(s) = theta0 + omega0*s
//	x(s) = x0 + (sin(theta(s)) - sin(theta0)) / omega0
//	y(s) = y0 - (cos(theta(s)) - cos(theta0)) / omega0
func (seg *Arc) PoseAt(dist float64) (Pose, error) {
	theta0 := seg.start.Theta
	omega0 := seg.start.Omega
	theta := theta0 + omega0*dist
	delta := r3.Vector{
		X: (math.Sin(theta) - math.Sin(theta0)) / omega0,
		Y: -(math.Cos(theta) - math.Cos(theta0)) / omega0,
	}
	return Pose{Point: seg.start.Point.Add(delta), Theta: theta, Omega: omega0}, nil
}

func (seg *Arc) String() string {
	return fmt.Sprintf("Arc(%s, %f)", seg.start, seg.length)
}
