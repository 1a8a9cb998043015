package primitives

import (
	"fmt"

	"github.com/golang/geo/r3"
	"gonum.org/v1/gonum/floats/scalar"
)

// Pose is the planar state of the vehicle at a point along a path: position,
// heading, and curvature rate. Curvature rate is the heading change per unit
// arc length at unit forward speed; zero for straight motion, constant along
// an arc, linearly varying along a spiral.
type Pose struct {
	Point r3.Vector // planar position; Z is always 0
	Theta float64   // heading, radians
	Omega float64   // curvature rate, radians per unit arc length
}

// NewPose creates a pose from its four planar coordinates.
func NewPose(x, y, theta, omega float64) Pose {
	return Pose{Point: r3.Vector{X: x, Y: y, Z: 0}, Theta: theta, Omega: omega}
}

// AlmostEqual reports whether every coordinate of the two poses is within
// epsilon of its counterpart.
func (p Pose) AlmostEqual(other Pose, epsilon float64) bool {
	return scalar.EqualWithinAbs(p.Point.X, other.Point.X, epsilon) &&
		scalar.EqualWithinAbs(p.Point.Y, other.Point.Y, epsilon) &&
		scalar.EqualWithinAbs(p.Theta, other.Theta, epsilon) &&
		scalar.EqualWithinAbs(p.Omega, other.Omega, epsilon)
}

func (p Pose) String() string {
	return fmt.Sprintf("(%f, %f, %f, %f)", p.Point.X, p.Point.Y, p.Theta, p.Omega)
}
