package truchet

import (
	"image"
)

// Segment is a straight chord between two points on a tile's perimeter grid.
type Segment struct {
	A, B image.Point
}

// Crosses returns true if the other segment touches or crosses this one.
func (s Segment) Crosses(other Segment) bool {
	return Crosses(s.A, s.B, other.A, other.B)
}

// AnyCrossing reports whether any two of the segments cross.
func AnyCrossing(segs []Segment) bool {
	for i := range segs {
		for j := i + 1; j < len(segs); j++ {
			if segs[i].Crosses(segs[j]) {
				return true
			}
		}
	}
	return false
}

// Code borrowed from C++ and https://bit.ly/3jyKGah
func onSegment(p, q, r image.Point) bool {
	return q.X <= MaxInt(p.X, r.X) && q.X >= MinInt(p.X, r.X) &&
		q.Y <= MaxInt(p.Y, r.Y) && q.Y >= MinInt(p.Y, r.Y)
}

// orientation of ordered triplet (p, q, r):
// 0 colinear, 1 clockwise, 2 counterclockwise
func orientation(p, q, r image.Point) int {
	val := (q.Y-p.Y)*(r.X-q.X) - (q.X-p.X)*(r.Y-q.Y)
	switch {
	case val == 0:
		return 0
	case val > 0:
		return 1
	}
	return 2
}

// Crosses returns true if segment `p1`, `q1` and `p2`, `q2` intersect,
// end points included.
func Crosses(p1, q1, p2, q2 image.Point) bool {
	o1 := orientation(p1, q1, p2)
	o2 := orientation(p1, q1, q2)
	o3 := orientation(p2, q2, p1)
	o4 := orientation(p2, q2, q1)

	if o1 != o2 && o3 != o4 {
		return true
	}
	// colinear cases: an end point lies on the other segment
	return (o1 == 0 && onSegment(p1, p2, q1)) ||
		(o2 == 0 && onSegment(p1, q2, q1)) ||
		(o3 == 0 && onSegment(p2, p1, q2)) ||
		(o4 == 0 && onSegment(p2, q1, q2))
}

// MinInt return the min of a and b
func MinInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// MaxInt return the max of a and b
func MaxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
