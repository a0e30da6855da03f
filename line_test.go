package truchet

import (
	"image"
	"testing"
)

func TestCrosses(t *testing.T) {
	tests := []struct {
		s1, s2 Segment
		want   bool
	}{
		{
			Segment{image.Point{1, 1}, image.Point{10, 1}},
			Segment{image.Point{1, 2}, image.Point{10, 2}},
			false,
		}, {
			Segment{image.Point{10, 0}, image.Point{0, 10}},
			Segment{image.Point{0, 0}, image.Point{10, 10}},
			true,
		}, {
			Segment{image.Point{-5, -5}, image.Point{0, 0}},
			Segment{image.Point{1, 1}, image.Point{10, 10}},
			false,
		}, {
			// two chords of a 4x4 tile sharing the top edge
			Segment{image.Point{1, 0}, image.Point{3, 0}},
			Segment{image.Point{2, 0}, image.Point{2, 4}},
			true,
		},
	}

	for _, tt := range tests {
		if tt.s1.Crosses(tt.s2) != tt.want {
			t.Errorf("Want %v.Crosses(%v) = %v, got %v", tt.s1, tt.s2, tt.want, !tt.want)
		}
		if tt.s2.Crosses(tt.s1) != tt.want {
			t.Errorf("Want %v.Crosses(%v) = %v, got %v", tt.s2, tt.s1, tt.want, !tt.want)
		}
	}
}

func TestAnyCrossing(t *testing.T) {
	arcs := []Segment{
		{image.Point{2, 0}, image.Point{0, 2}},
		{image.Point{4, 2}, image.Point{2, 4}},
	}
	if AnyCrossing(arcs) {
		t.Errorf("AnyCrossing(%v) = true, want false", arcs)
	}
	plus := []Segment{
		{image.Point{2, 0}, image.Point{2, 4}},
		{image.Point{0, 2}, image.Point{4, 2}},
	}
	if !AnyCrossing(plus) {
		t.Errorf("AnyCrossing(%v) = false, want true", plus)
	}
}
