package stats

import (
	"math"
	"testing"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestMean(t *testing.T) {
	if got := Mean([]float64{2, 4, 6}); got != 4 {
		t.Errorf("Mean = %v, want 4", got)
	}
	if got := Mean(nil); got != 0 {
		t.Errorf("Mean(nil) = %v, want 0", got)
	}
}

func TestMinMax(t *testing.T) {
	values := []float64{5, -2, 9, 3}
	if got := Min(values); got != -2 {
		t.Errorf("Min = %v, want -2", got)
	}
	if got := Max(values); got != 9 {
		t.Errorf("Max = %v, want 9", got)
	}
	if Min(nil) != 0 || Max(nil) != 0 {
		t.Error("Min/Max of empty slice should be 0")
	}
}

func TestStdDev(t *testing.T) {
	// Sample std dev of {2, 4, 4, 4, 5, 5, 7, 9} is sqrt(32/7)
	values := []float64{2, 4, 4, 4, 5, 5, 7, 9}
	want := math.Sqrt(32.0 / 7.0)
	if got := StdDev(values); !almostEqual(got, want) {
		t.Errorf("StdDev = %v, want %v", got, want)
	}
	if got := StdDev([]float64{5}); got != 0 {
		t.Errorf("StdDev of single value = %v, want 0", got)
	}
}

func TestQuantileInterpolation(t *testing.T) {
	values := []float64{10, 20, 30, 40}

	tests := []struct {
		q    float64
		want float64
	}{
		{0, 10},
		{1, 40},
		{0.5, 25},
		{0.25, 17.5},
	}

	for _, tt := range tests {
		if got := Quantile(values, tt.q); !almostEqual(got, tt.want) {
			t.Errorf("Quantile(%v) = %v, want %v", tt.q, got, tt.want)
		}
	}

	if got := Quantile(nil, 0.5); got != 0 {
		t.Errorf("Quantile(nil) = %v, want 0", got)
	}
}

func TestPercentile(t *testing.T) {
	values := []float64{10, 20, 30, 40, 50}

	if got := Percentile(values, 50); !almostEqual(got, 30) {
		t.Errorf("Percentile(50) = %v, want 30", got)
	}
	if got := Percentile(values, 95); !almostEqual(got, 48) {
		t.Errorf("Percentile(95) = %v, want 48", got)
	}
	// Out-of-range percentiles are pinned to the bounds
	if got := Percentile(values, 150); !almostEqual(got, 50) {
		t.Errorf("Percentile(150) = %v, want 50", got)
	}
	if got := Percentile(values, -10); !almostEqual(got, 10) {
		t.Errorf("Percentile(-10) = %v, want 10", got)
	}
}
