package calculator

import (
	"math"
	"testing"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestCalculateEMA_HandComputed(t *testing.T) {
	series := []float64{10, 11, 12, 11, 13}
	want := []float64{10, 10.5, 11.25, 11.125, 12.0625}

	got, err := CalculateEMA(series, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != len(want) {
		t.Fatalf("expected %d values, got %d", len(want), len(got))
	}
	for i := range want {
		if !almostEqual(got[i], want[i]) {
			t.Errorf("ema[%d]: expected %v, got %v", i, want[i], got[i])
		}
	}
}

func TestCalculateEMA_SeedIsFirstValue(t *testing.T) {
	got, err := CalculateEMA([]float64{42.5}, 50)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got[0] != 42.5 {
		t.Errorf("expected seed 42.5, got %v", got[0])
	}
}

func TestCalculateEMA_Errors(t *testing.T) {
	if _, err := CalculateEMA([]float64{1, 2}, 0); err == nil {
		t.Error("expected error for zero period")
	}
	if _, err := CalculateEMA(nil, 3); err == nil {
		t.Error("expected error for empty series")
	}
}

func TestCalculateSMA_WarmUp(t *testing.T) {
	got, err := CalculateSMA([]float64{1, 2, 3, 4, 5}, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i := 0; i < 2; i++ {
		if !math.IsNaN(got[i]) {
			t.Errorf("sma[%d]: expected NaN during warm-up, got %v", i, got[i])
		}
	}
	want := []float64{2, 3, 4}
	for i, w := range want {
		if !almostEqual(got[i+2], w) {
			t.Errorf("sma[%d]: expected %v, got %v", i+2, w, got[i+2])
		}
	}
}

func TestCalculateSMA_NaNPoisonsWindow(t *testing.T) {
	series := []float64{1, math.NaN(), 3, 4, 5, 6}
	got, err := CalculateSMA(series, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Windows covering index 1 stay NaN; the first clean window ends at 4.
	for i := 0; i < 4; i++ {
		if !math.IsNaN(got[i]) {
			t.Errorf("sma[%d]: expected NaN, got %v", i, got[i])
		}
	}
	if !almostEqual(got[4], 4) {
		t.Errorf("sma[4]: expected 4, got %v", got[4])
	}
	if !almostEqual(got[5], 5) {
		t.Errorf("sma[5]: expected 5, got %v", got[5])
	}
}

func TestCalculateSMA_PeriodError(t *testing.T) {
	if _, err := CalculateSMA([]float64{1, 2, 3}, -1); err == nil {
		t.Error("expected error for negative period")
	}
}

func TestCalculateSMA_ShortSeriesAllNaN(t *testing.T) {
	got, err := CalculateSMA([]float64{1, 2}, 20)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i, v := range got {
		if !math.IsNaN(v) {
			t.Errorf("sma[%d]: expected NaN for short series, got %v", i, v)
		}
	}
}
