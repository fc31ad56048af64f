package bulge

import (
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestCircleCircleIntersector(t *testing.T) {
	opt := cmpopts.EquateApprox(0, 1e-12)
	tests := []struct {
		name   string
		c1, c2 Circle
		count  int
		want   []Point
	}{
		{"two points", Circle{Pt(0, 0), 5}, Circle{Pt(8, 0), 5}, 2, []Point{Pt(4, -3), Pt(4, 3)}},
		{"two points, vertical", Circle{Pt(0, 0), 5}, Circle{Pt(0, 8), 5}, 2, []Point{Pt(3, 4), Pt(-3, 4)}},
		{"external tangent", Circle{Pt(0, 0), 2}, Circle{Pt(5, 0), 3}, 1, []Point{Pt(2, 0)}},
		{"internal tangent", Circle{Pt(0, 0), 5}, Circle{Pt(2, 0), 3}, 1, []Point{Pt(5, 0)}},
		{"internal tangent, smaller first", Circle{Pt(2, 0), 3}, Circle{Pt(0, 0), 5}, 1, []Point{Pt(5, 0)}},
		{"too far apart", Circle{Pt(0, 0), 1}, Circle{Pt(5, 0), 1}, 0, nil},
		{"contained", Circle{Pt(0, 0), 5}, Circle{Pt(1, 0), 1}, 0, nil},
		{"coincident", Circle{Pt(1, 1), 5}, Circle{Pt(1, 1), 5}, InfiniteIntersections, nil},
		{"concentric", Circle{Pt(1, 1), 5}, Circle{Pt(1, 1), 4}, 0, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ci := tt.c1.IntersectCircle(tt.c2, 1e-10)
			if n := ci.Count(); n != tt.count {
				t.Fatalf("got %d intersections, want %d", n, tt.count)
			}
			diff(t, tt.want, ci.Intersections(), opt)
		})
	}
}

func TestCircleCircleIntersectorIndex(t *testing.T) {
	ci := NewCircleCircleIntersector(Circle{Pt(1, 1), 5}, Circle{Pt(1, 1), 5}, 1e-10)
	defer func() {
		if recover() == nil {
			t.Error("expected a panic for coincident circles")
		}
	}()
	ci.Intersection(0)
}
