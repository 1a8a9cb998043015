package primitives

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/golang/geo/r3"
	"github.com/pkg/errors"

	"github.com/ncnynl/ackermann-local-planner/fresnel"
)

// residualImagTol bounds the imaginary component tolerated in the nominally
// real spiral displacement before the evaluation is reported as defective
// rather than silently truncated.
const residualImagTol = 1e-8

// Spiral is an Euler spiral (clothoid) segment: curvature rate varies
// linearly with arc length, omega(s) = omega0 + w*s.
type Spiral struct {
	baseSegment
	w float64 // curvature-rate slope, radians per unit arc length squared
}

// NewSpiral creates a clothoid segment of the given arc length from a start
// pose, with curvature-rate slope w. A zero slope degenerates to an arc and
// is rejected.
func NewSpiral(start Pose, length, w float64) (*Spiral, error) {
	if err := checkLength(length); err != nil {
		return nil, err
	}
	if w == 0 {
		return nil, errors.Wrap(ErrPrecondition, "spiral segment requires nonzero curvature-rate slope")
	}
	seg := &Spiral{baseSegment{start: start, length: length}, w}
	end, err := seg.PoseAt(length)
	if err != nil {
		return nil, err
	}
	seg.end = end
	return seg, nil
}

// Slope returns the curvature-rate slope w.
func (seg *Spiral) Slope() float64 {
	return seg.w
}

// PoseAt evaluates linearly-varying yaw-rate unicycle kinematics at unit
// forward speed:
//
//	omega(s) = omega0 + w*s
//	theta(s) = theta0 + omega0*s + w*s^2/2
//
// Completing the square on the heading normalizes the displacement integrals
// onto Fresnel integrals with bounds (omega0 + w*t)/sqrt(pi*w) for t in
// {0, s}, phase t0 = omega0^2/(2w) - theta0, and prefactor pi/sqrt(pi*w).
// For w < 0 the square root is imaginary; the bounds and the prefactor must
// share the same branch of it, and the imaginary parts of the combination
// cancel, leaving a real displacement.
func (seg *Spiral) PoseAt(dist float64) (Pose, error) {
	theta0 := seg.start.Theta
	omega0 := seg.start.Omega
	theta := theta0 + omega0*dist + seg.w*dist*dist/2
	omega := omega0 + seg.w*dist

	root := cmplx.Sqrt(complex(math.Pi*seg.w, 0))
	s1, c1, err := fresnelAt(complex(omega0, 0) / root)
	if err != nil {
		return Pose{}, err
	}
	s2, c2, err := fresnelAt(complex(omega, 0) / root)
	if err != nil {
		return Pose{}, err
	}

	t0 := -theta0
	if omega0 != 0 {
		t0 = omega0*omega0/(2*seg.w) - theta0
	}
	cosT0 := complex(math.Cos(t0), 0)
	sinT0 := complex(math.Sin(t0), 0)
	scale := complex(math.Pi, 0) / root

	dx := scale * (cosT0*(c2-c1) + sinT0*(s2-s1))
	dy := scale * (sinT0*(c1-c2) + cosT0*(s2-s1))
	if math.Abs(imag(dx)) > residualImagTol || math.Abs(imag(dy)) > residualImagTol {
		return Pose{}, errors.Wrapf(ErrNumerical,
			"spiral displacement retained imaginary residue (%g, %g)", imag(dx), imag(dy))
	}

	delta := r3.Vector{X: real(dx), Y: real(dy)}
	return Pose{Point: seg.start.Point.Add(delta), Theta: theta, Omega: omega}, nil
}

func (seg *Spiral) String() string {
	return fmt.Sprintf("Spiral(%s, %f, %f)", seg.start, seg.length, seg.w)
}

// fresnelAt evaluates the Fresnel integrals at an argument on the real or
// imaginary axis, the only places the normalized spiral bounds can fall.
// S(iy) = -i*S(y) and C(iy) = i*C(y).
func fresnelAt(z complex128) (s, c complex128, err error) {
	switch {
	case imag(z) == 0:
		sr, cr := fresnel.SC(real(z))
		return complex(sr, 0), complex(cr, 0), nil
	case real(z) == 0:
		sr, cr := fresnel.SC(imag(z))
		return complex(0, -sr), complex(0, cr), nil
	}
	return 0, 0, errors.Wrapf(ErrNumerical, "fresnel argument %v off the real and imaginary axes", z)
}
