package primitives

import (
	"errors"
	"math"
	"testing"

	"go.viam.com/test"
)

func TestPosesResolution(t *testing.T) {
	seg, err := NewLinear(NewPose(0, 0, 0, 0), 5)
	test.That(t, err, test.ShouldBeNil)

	poses, err := Poses(seg, 0, 0.5)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, poses, test.ShouldHaveLength, 10)
	for i, pose := range poses {
		test.That(t, pose.Point.X, test.ShouldAlmostEqual, float64(i)*0.5, 1e-12)
	}

	// 5/0.7 rounds to 7 samples, which would space them 0.714 apart; the
	// count must be bumped so spacing never exceeds the resolution.
	poses, err = Poses(seg, 0, 0.7)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, poses, test.ShouldHaveLength, 8)
	for i := 1; i < len(poses); i++ {
		gap := poses[i].Point.Sub(poses[i-1].Point).Norm()
		test.That(t, gap, test.ShouldBeLessThanOrEqualTo, 0.7+1e-12)
	}
	// The end pose is never yielded.
	last := poses[len(poses)-1]
	test.That(t, last.Point.X, test.ShouldBeLessThan, seg.Length())
	test.That(t, last.AlmostEqual(seg.End(), 1e-9), test.ShouldBeFalse)
}

func TestPosesCount(t *testing.T) {
	seg, err := NewLinear(NewPose(0, 0, 0, 0), 5)
	test.That(t, err, test.ShouldBeNil)

	poses, err := Poses(seg, 4, 0)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, poses, test.ShouldHaveLength, 4)
	for i, pose := range poses {
		test.That(t, pose.Point.X, test.ShouldAlmostEqual, float64(i)*1.25, 1e-12)
	}
}

func TestPosesOnArc(t *testing.T) {
	seg, err := NewArc(NewPose(0, 0, 0, 1), math.Pi)
	test.That(t, err, test.ShouldBeNil)
	poses, err := Poses(seg, 0, 0.25)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, len(poses), test.ShouldBeGreaterThan, 0)
	for i := 1; i < len(poses); i++ {
		// Chord spacing is bounded by the arc-length spacing.
		gap := poses[i].Point.Sub(poses[i-1].Point).Norm()
		test.That(t, gap, test.ShouldBeLessThanOrEqualTo, 0.25+1e-12)
	}
}

func TestPosesArguments(t *testing.T) {
	seg, err := NewLinear(NewPose(0, 0, 0, 0), 5)
	test.That(t, err, test.ShouldBeNil)

	_, err = Poses(seg, 0, 0)
	test.That(t, errors.Is(err, ErrInvalidArgument), test.ShouldBeTrue)
	_, err = Poses(seg, 3, 0.5)
	test.That(t, errors.Is(err, ErrInvalidArgument), test.ShouldBeTrue)
	_, err = Poses(seg, 0, -0.5)
	test.That(t, errors.Is(err, ErrInvalidArgument), test.ShouldBeTrue)
	_, err = Poses(seg, -2, 0)
	test.That(t, errors.Is(err, ErrInvalidArgument), test.ShouldBeTrue)
}

func TestPosesDegenerate(t *testing.T) {
	seg, err := NewLinear(NewPose(1, 2, 0.5, 0), 0)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, seg.End(), test.ShouldResemble, seg.Start())

	poses, err := Poses(seg, 0, 0.5)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, poses, test.ShouldHaveLength, 0)

	poses, err = Poses(seg, 3, 0)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, poses, test.ShouldHaveLength, 0)

	// A resolution much coarser than the segment produces no samples.
	long, err := NewLinear(NewPose(0, 0, 0, 0), 5)
	test.That(t, err, test.ShouldBeNil)
	poses, err = Poses(long, 0, 100)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, poses, test.ShouldHaveLength, 0)
}

func TestScore(t *testing.T) {
	seg, err := NewLinear(NewPose(0, 0, 0, 0), 5)
	test.That(t, err, test.ShouldBeNil)

	ref := NewPose(6, 1, 0.5, 0.25)
	want := 1.0 + 1.0 + 0.25 + 0.0625
	test.That(t, seg.Score(ref), test.ShouldAlmostEqual, want, 1e-12)

	// An identical reference must hit the memo: poke the cached value and
	// observe it come back untouched.
	seg.score = 42
	test.That(t, seg.Score(ref), test.ShouldEqual, 42.0)

	// A differing reference recomputes and overwrites the memo.
	other := NewPose(5, 0, 0, 0)
	test.That(t, seg.Score(other), test.ShouldAlmostEqual, 0, 1e-12)
	test.That(t, seg.Score(ref), test.ShouldAlmostEqual, want, 1e-12)
}

func TestEndMatchesPoseAt(t *testing.T) {
	segments := []Segment{}
	lin, err := NewLinear(NewPose(1, -2, 0.3, 0), 4)
	test.That(t, err, test.ShouldBeNil)
	segments = append(segments, lin)
	arc, err := NewArc(NewPose(0, 1, -0.5, 0.7), 3)
	test.That(t, err, test.ShouldBeNil)
	segments = append(segments, arc)
	spiral, err := NewSpiral(NewPose(-1, 0, 0.2, 0.4), 3, -0.5)
	test.That(t, err, test.ShouldBeNil)
	segments = append(segments, spiral)
	compound, err := NewCompound(lin, arc, spiral)
	test.That(t, err, test.ShouldBeNil)
	segments = append(segments, compound)

	for _, seg := range segments {
		atZero, err := seg.PoseAt(0)
		test.That(t, err, test.ShouldBeNil)
		test.That(t, atZero.AlmostEqual(seg.Start(), 1e-6), test.ShouldBeTrue)
		atEnd, err := seg.PoseAt(seg.Length())
		test.That(t, err, test.ShouldBeNil)
		test.That(t, atEnd, test.ShouldResemble, seg.End())
	}
}
