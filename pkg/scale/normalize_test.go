package scale

import (
	"errors"
	"math"
	"testing"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name                      string
		v, rMin, rMax, tMin, tMax float64
		want                      float64
	}{
		{"midpoint", 50, 0, 100, 50, 100, 75},
		{"lower endpoint", 0, 0, 100, 50, 100, 50},
		{"upper endpoint", 100, 0, 100, 50, 100, 100},
		{"extrapolates above", 2, 0, 1, 0, 10, 20},
		{"extrapolates below", -1, 0, 1, 0, 10, -10},
		{"inverted target", 0.25, 0, 1, 1, 0, 0.75},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Normalize(tt.v, tt.rMin, tt.rMax, tt.tMin, tt.tMax)
			if err != nil {
				t.Fatalf("Normalize() error = %v", err)
			}
			if math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("Normalize() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNormalizeSeries(t *testing.T) {
	want := []float64{0.03, 0.127, 0.224, 0.321, 0.418, 0.515, 0.612, 0.709, 0.806, 0.903, 1.0}
	for i, w := range want {
		got, err := Normalize(float64(i)/10, 0, 1, 0.03, 1)
		if err != nil {
			t.Fatal(err)
		}
		if math.Abs(got-w) > 1e-9 {
			t.Errorf("Normalize(%v) = %v, want %v", float64(i)/10, got, w)
		}
	}
}

func TestNormalizeEndpoints(t *testing.T) {
	ranges := [][4]float64{
		{0, 1, 0.02, 1},
		{-5, 5, 10, 20},
		{3.5, 7.25, -1, 1},
	}
	for _, r := range ranges {
		lo, _ := Normalize(r[0], r[0], r[1], r[2], r[3])
		hi, _ := Normalize(r[1], r[0], r[1], r[2], r[3])
		if math.Abs(lo-r[2]) > 1e-12 || math.Abs(hi-r[3]) > 1e-12 {
			t.Errorf("endpoints of %v mapped to (%v, %v)", r, lo, hi)
		}
	}
}

func TestNormalizeDegenerate(t *testing.T) {
	for _, r := range [][2]float64{{1, 1}, {0, math.NaN()}, {math.Inf(-1), 0}} {
		if _, err := Normalize(0.5, r[0], r[1], 0, 1); !errors.Is(err, ErrDegenerateRange) {
			t.Errorf("Normalize with range %v: err = %v, want ErrDegenerateRange", r, err)
		}
	}
}

func TestUnit(t *testing.T) {
	if got := Unit(0); got != DefaultTargetMin {
		t.Errorf("Unit(0) = %v, want %v", got, DefaultTargetMin)
	}
	if got := Unit(1); math.Abs(got-DefaultTargetMax) > 1e-15 {
		t.Errorf("Unit(1) = %v, want %v", got, DefaultTargetMax)
	}
	for _, v := range []float64{0.1, 0.5, 0.999} {
		want, _ := Normalize(v, 0, 1, DefaultTargetMin, DefaultTargetMax)
		if got := Unit(v); math.Abs(got-want) > 1e-15 {
			t.Errorf("Unit(%v) = %v, want %v", v, got, want)
		}
	}
}
