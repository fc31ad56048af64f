package bulge

import (
	"math"
	"testing"
)

func TestAngleIntervalContains(t *testing.T) {
	tests := []struct {
		name string
		ai   AngleInterval
		in   []float64
		out  []float64
	}{
		{
			name: "counter-clockwise quarter",
			ai:   AngleIntervalBetween(0, math.Pi/2, true),
			in:   []float64{0, math.Pi / 4, math.Pi / 2, 2*math.Pi + math.Pi/4},
			out:  []float64{-0.1, math.Pi, -math.Pi / 2},
		},
		{
			name: "clockwise quarter",
			ai:   AngleIntervalBetween(math.Pi/2, 0, false),
			in:   []float64{0, math.Pi / 4, math.Pi / 2},
			out:  []float64{math.Pi, -math.Pi / 4},
		},
		{
			name: "wrapping past π",
			ai:   AngleIntervalBetween(3*math.Pi/4, -3*math.Pi/4, true),
			in:   []float64{math.Pi, -math.Pi, 7 * math.Pi / 8, -7 * math.Pi / 8, 3 * math.Pi},
			out:  []float64{0, math.Pi / 2, -math.Pi / 2},
		},
		{
			name: "long way round",
			ai:   AngleIntervalBetween(0, math.Pi/2, false),
			in:   []float64{math.Pi, -math.Pi / 2, 0, math.Pi / 2},
			out:  []float64{math.Pi / 4},
		},
		{
			name: "sweep across π",
			ai:   NewAngleInterval(math.Pi/2, math.Pi),
			in:   []float64{math.Pi, -math.Pi/2 - 1e-9, -3 * math.Pi / 4},
			out:  []float64{0, -math.Pi / 4},
		},
		{
			name: "negative sweep",
			ai:   NewAngleInterval(0, -math.Pi/2),
			in:   []float64{-math.Pi / 4, 0, -math.Pi / 2},
			out:  []float64{math.Pi / 4, math.Pi},
		},
	}
	for _, tt := range tests {
		for _, a := range tt.in {
			if !tt.ai.Contains(a) {
				t.Errorf("%s: %v should contain %v", tt.name, tt.ai, a)
			}
		}
		for _, a := range tt.out {
			if tt.ai.Contains(a) {
				t.Errorf("%s: %v shouldn't contain %v", tt.name, tt.ai, a)
			}
		}
		if tt.ai.Contains(math.NaN()) {
			t.Errorf("%s: interval shouldn't contain NaN", tt.name)
		}
	}
}

func TestAngleIntervalSpecial(t *testing.T) {
	if ai := NewAngleInterval(1, 2*math.Pi); !ai.IsFull() {
		t.Errorf("got %v, want the full interval", ai)
	}
	if ai := NewAngleInterval(1, -7); !ai.IsFull() {
		t.Errorf("got %v, want the full interval", ai)
	}
	if ai := NewAngleInterval(math.NaN(), 1); !ai.IsEmpty() {
		t.Errorf("got %v, want the empty interval", ai)
	}
	if l := NewAngleInterval(math.Pi/2, math.Pi).Length(); math.Abs(l-math.Pi) > 1e-15 {
		t.Errorf("got length %v, want π", l)
	}
}

func TestAngleIntervalOverlaps(t *testing.T) {
	q1 := AngleIntervalBetween(0, math.Pi/2, true)
	q2 := AngleIntervalBetween(math.Pi/2, math.Pi, true)
	q3 := AngleIntervalBetween(math.Pi, -math.Pi/2, true)
	if !q1.Overlaps(q2) {
		t.Error("adjacent intervals should overlap at their shared end")
	}
	if q1.Overlaps(q3) {
		t.Error("opposite quarters shouldn't overlap")
	}
	if !q1.Expanded(0.1).Contains(-0.05) {
		t.Error("expanded interval should contain angles within the margin")
	}
}

func TestNormalizeAngle(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0, 0},
		{-math.Pi / 2, 3 * math.Pi / 2},
		{5 * math.Pi / 2, math.Pi / 2},
		{-2 * math.Pi, 0},
	}
	for _, tt := range tests {
		if got := NormalizeAngle(tt.in); math.Abs(got-tt.want) > 1e-14 {
			t.Errorf("NormalizeAngle(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestAngle(t *testing.T) {
	if a := Angle(Pt(1, 1), Pt(1, 5)); a != math.Pi/2 {
		t.Errorf("got %v, want π/2", a)
	}
	if a := Angle(Pt(1, 1), Pt(-3, 1)); a != math.Pi {
		t.Errorf("got %v, want π", a)
	}
}
