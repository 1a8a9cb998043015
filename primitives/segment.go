// Package primitives implements analytic path segments for a vehicle-like
// agent moving in the 2d plane, used by a local planner to generate candidate
// paths and sample poses along them. Straight lines, constant-curvature arcs,
// and linearly-varying-curvature spirals (clothoids) are closed-form
// solutions of the unicycle kinematics at unit forward speed; segments can be
// concatenated into a compound segment which is itself queryable by arc
// length.
package primitives

import (
	"fmt"
	"math"
	"sync"

	"github.com/pkg/errors"
)

// Segment is a partial path segment indexed by arc length from its start
// pose. A segment is immutable once constructed, aside from the score memo.
type Segment interface {
	// Start returns the pose the segment was constructed from.
	Start() Pose

	// End returns the segment's final pose. It is computed once at
	// construction through the same evaluation as PoseAt, so
	// End() == PoseAt(Length()) exactly.
	End() Pose

	// Length returns the total arc length of the segment.
	Length() float64

	// PoseAt returns the pose at the given arc length from the segment's
	// start. Arc lengths outside [0, Length()] extrapolate the closed form.
	PoseAt(dist float64) (Pose, error)

	// Score returns the squared Euclidean distance in (x, y, theta, omega)
	// space between the segment's end pose and the reference. The last
	// computed (reference, score) pair is memoized.
	Score(reference Pose) float64

	fmt.Stringer
}

// baseSegment carries the state common to every segment kind: the start pose,
// the cached end pose, the arc length, and the score memo.
type baseSegment struct {
	start  Pose
	end    Pose
	length float64

	scoreMu  sync.Mutex
	scoreRef *Pose
	score    float64
}

// Start returns the pose the segment was constructed from.
func (bs *baseSegment) Start() Pose {
	return bs.start
}

// End returns the cached end pose.
func (bs *baseSegment) End() Pose {
	return bs.end
}

// Length returns the total arc length of the segment.
func (bs *baseSegment) Length() float64 {
	return bs.length
}

// Score returns the squared distance in (x, y, theta, omega) space between
// the end pose and the reference. Repeated scoring against the same reference
// returns the memoized value; a differing reference always recomputes.
func (bs *baseSegment) Score(reference Pose) float64 {
	bs.scoreMu.Lock()
	defer bs.scoreMu.Unlock()
	if bs.scoreRef != nil && *bs.scoreRef == reference {
		return bs.score
	}
	diff := reference.Point.Sub(bs.end.Point)
	dTheta := reference.Theta - bs.end.Theta
	dOmega := reference.Omega - bs.end.Omega
	ref := reference
	bs.scoreRef = &ref
	bs.score = diff.Norm2() + dTheta*dTheta + dOmega*dOmega
	return bs.score
}

func checkLength(length float64) error {
	if math.IsNaN(length) || length < 0 {
		return errors.Wrapf(ErrPrecondition, "segment length must be nonnegative, got %f", length)
	}
	return nil
}

// Poses samples intermediate poses along seg, strictly excluding the end pose;
// callers wanting the end pose append seg.End() themselves. Exactly one of n
// and resolution must be nonzero.
//
// When resolution is given, samples are spaced exactly resolution apart: the
// count is derived as round-half-up(length/resolution), then recomputed as
// ceil(length/resolution) if the implied spacing would come out coarser than
// requested, so consecutive samples are never farther apart than resolution.
// When n is given, samples are spaced length/n apart. A zero-length segment,
// or a derived count of zero, yields no poses.
func Poses(seg Segment, n int, resolution float64) ([]Pose, error) {
	if (n != 0) == (resolution != 0) {
		return nil, errors.Wrapf(ErrInvalidArgument,
			"exactly one of n (%d) and resolution (%f) must be supplied", n, resolution)
	}
	length := seg.Length()
	var stride float64
	switch {
	case resolution != 0:
		if resolution < 0 {
			return nil, errors.Wrapf(ErrInvalidArgument, "resolution must be positive, got %f", resolution)
		}
		n = int(math.Floor(length/resolution + 0.5))
		if n > 0 && length/float64(n) > resolution {
			n = int(math.Ceil(length / resolution))
		}
		stride = resolution
	default:
		if n < 0 {
			return nil, errors.Wrapf(ErrInvalidArgument, "n must be positive, got %d", n)
		}
		stride = length / float64(n)
	}
	if length == 0 {
		n = 0
	}
	poses := make([]Pose, 0, n)
	for i := 0; i < n; i++ {
		pose, err := seg.PoseAt(float64(i) * stride)
		if err != nil {
			return nil, err
		}
		poses = append(poses, pose)
	}
	return poses, nil
}
