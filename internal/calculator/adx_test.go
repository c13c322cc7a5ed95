package calculator

import (
	"math"
	"testing"
)

// trendingSeries builds n bars rising by one per step, with highs half a
// point above and lows half a point below the close.
func trendingSeries(n int) (highs, lows, closes []float64) {
	highs = make([]float64, n)
	lows = make([]float64, n)
	closes = make([]float64, n)
	for i := 0; i < n; i++ {
		c := 100.0 + float64(i)
		closes[i] = c
		highs[i] = c + 0.5
		lows[i] = c - 0.5
	}
	return highs, lows, closes
}

func TestCalculateADX_WarmUp(t *testing.T) {
	highs, lows, closes := trendingSeries(40)
	got, err := CalculateADX(highs, lows, closes, 14)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// One 14-window for the DI smoothing, another for averaging DX.
	for i := 0; i < 27; i++ {
		if !math.IsNaN(got[i]) {
			t.Errorf("adx[%d]: expected NaN during warm-up, got %v", i, got[i])
		}
	}
	for i := 27; i < len(got); i++ {
		if math.IsNaN(got[i]) {
			t.Errorf("adx[%d]: expected a value after warm-up", i)
		}
	}
}

func TestCalculateADX_StrongUptrendNears100(t *testing.T) {
	highs, lows, closes := trendingSeries(60)
	got, err := CalculateADX(highs, lows, closes, 14)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	last := got[len(got)-1]
	if last < 99.0 {
		t.Errorf("expected ADX near 100 for a one-directional trend, got %v", last)
	}
}

func TestCalculateADX_FlatSeriesUndefined(t *testing.T) {
	// Identical bars give zero true range, so the DIs never resolve.
	n := 60
	highs := make([]float64, n)
	lows := make([]float64, n)
	closes := make([]float64, n)
	for i := 0; i < n; i++ {
		highs[i], lows[i], closes[i] = 100, 100, 100
	}
	got, err := CalculateADX(highs, lows, closes, 14)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !math.IsNaN(got[len(got)-1]) {
		t.Errorf("expected NaN for a zero-range series, got %v", got[len(got)-1])
	}
}

func TestCalculateADX_LengthMismatch(t *testing.T) {
	if _, err := CalculateADX([]float64{1, 2}, []float64{1}, []float64{1, 2}, 14); err == nil {
		t.Error("expected error for mismatched series lengths")
	}
}

func TestCalculateADX_PeriodError(t *testing.T) {
	highs, lows, closes := trendingSeries(30)
	if _, err := CalculateADX(highs, lows, closes, 0); err == nil {
		t.Error("expected error for zero period")
	}
}
