package bulge

import (
	"math"
	"testing"
)

func TestLineIsInf(t *testing.T) {
	if (Line{Pt(0.0, 0.0), Pt(1.0, 1.0)}).IsInf() {
		t.Error("line is infinite but shouldn't be")
	}

	if !(Line{Pt(0.0, 0.0), Pt(math.Inf(1), 1.0)}).IsInf() {
		t.Errorf("line is finite but shouldn't be")
	}

	if !(Line{Pt(0.0, 0.0), Pt(0.0, math.Inf(1))}).IsInf() {
		t.Errorf("line is finite but shouldn't be")
	}
}

func TestLineIntersects(t *testing.T) {
	hLine := Line{Pt(0.0, 0.0), Pt(100.0, 0.0)}
	tests := []struct {
		name string
		o    Line
		want bool
	}{
		{"crossing", Line{Pt(10.0, -10.0), Pt(10.0, 10.0)}, true},
		{"before start", Line{Pt(-10.0, -10.0), Pt(-10.0, 10.0)}, false},
		{"above", Line{Pt(10.0, 10.0), Pt(10.0, 20.0)}, false},
		{"touching", Line{Pt(10.0, 0.0), Pt(10.0, 20.0)}, true},
		{"collinear overlap", Line{Pt(50.0, 0.0), Pt(150.0, 0.0)}, true},
		{"collinear disjoint", Line{Pt(101.0, 0.0), Pt(150.0, 0.0)}, false},
	}
	for _, tt := range tests {
		if got := hLine.Intersects(tt.o); got != tt.want {
			t.Errorf("%s: got %t, want %t", tt.name, got, tt.want)
		}
		if got := tt.o.Intersects(hLine); got != tt.want {
			t.Errorf("%s (swapped): got %t, want %t", tt.name, got, tt.want)
		}
	}
}

func TestLineDistances(t *testing.T) {
	l := Line{Pt(0, 0), Pt(10, 0)}
	if d := l.PerpendicularDistance(Pt(20, 3)); d != 3 {
		t.Errorf("got perpendicular distance %v, want 3", d)
	}
	if d := l.Distance(Pt(13, 4)); d != 5 {
		t.Errorf("got distance %v, want 5", d)
	}
	if f := l.ProjectionFactor(Pt(15, 7)); f != 1.5 {
		t.Errorf("got projection factor %v, want 1.5", f)
	}
	diff(t, l.Project(Pt(4, -2)), Pt(4, 0))

	pt := Line{Pt(1, 1), Pt(1, 1)}
	if d := pt.PerpendicularDistance(Pt(4, 5)); d != 5 {
		t.Errorf("got perpendicular distance %v, want 5", d)
	}
}
