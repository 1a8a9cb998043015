package primitives

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// Compound presents an ordered concatenation of segments as a single segment.
// The compound owns its children for delegation purposes; arc length queries
// are mapped onto the child containing them.
type Compound struct {
	baseSegment
	segments []Segment
}

// NewCompound creates a compound from one or more child segments, in path
// order. Its length is the sum of the child lengths, its start mirrors the
// first child's start, and its end is the last child's end.
func NewCompound(segments ...Segment) (*Compound, error) {
	if len(segments) == 0 {
		return nil, errors.Wrap(ErrPrecondition, "compound segment requires at least one child")
	}
	length := 0.
	for _, seg := range segments {
		length += seg.Length()
	}
	children := make([]Segment, len(segments))
	copy(children, segments)
	return &Compound{
		baseSegment: baseSegment{
			start:  segments[0].Start(),
			end:    segments[len(segments)-1].End(),
			length: length,
		},
		segments: children,
	}, nil
}

// Segments returns the child segments in path order, for collaborators such
// as renderers that work per child.
func (seg *Compound) Segments() []Segment {
	children := make([]Segment, len(seg.segments))
	copy(children, seg.segments)
	return children
}

// PoseAt maps the global arc length onto the child containing it and
// delegates with the local offset. Queries past the total length clamp to the
// end pose rather than failing; callers sampling at child boundaries run
// slightly past the nominal end through floating-point rounding, and that is
// not a planner bug.
func (seg *Compound) PoseAt(dist float64) (Pose, error) {
	base := 0.
	for _, child := range seg.segments {
		if dist <= base+child.Length() {
			return child.PoseAt(dist - base)
		}
		base += child.Length()
	}
	return seg.end, nil
}

func (seg *Compound) String() string {
	reprs := make([]string, 0, len(seg.segments))
	for _, child := range seg.segments {
		reprs = append(reprs, child.String())
	}
	return fmt.Sprintf("Compound(%s)", strings.Join(reprs, ", "))
}
