package calculator

import (
	"math"
	"testing"
)

func TestCalculateRSI_ConstantSeriesIsNeutral(t *testing.T) {
	series := make([]float64, 30)
	for i := range series {
		series[i] = 100.0
	}
	got, err := CalculateRSI(series, 14)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	last := got[len(got)-1]
	if last != 50.0 {
		t.Errorf("expected 50 for constant series, got %v", last)
	}
}

func TestCalculateRSI_MonotonicRiseApproaches100(t *testing.T) {
	series := make([]float64, 30)
	for i := range series {
		series[i] = 100.0 + float64(i)
	}
	got, err := CalculateRSI(series, 14)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	last := got[len(got)-1]
	if last < 99.9 {
		t.Errorf("expected RSI near 100 for a pure uptrend, got %v", last)
	}
}

func TestCalculateRSI_BalancedSwingsNearFifty(t *testing.T) {
	// Alternating +1/-1 steps: average gain equals average loss.
	series := make([]float64, 40)
	series[0] = 100
	for i := 1; i < len(series); i++ {
		if i%2 == 1 {
			series[i] = series[i-1] + 1
		} else {
			series[i] = series[i-1] - 1
		}
	}
	got, err := CalculateRSI(series, 14)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	last := got[len(got)-1]
	if math.Abs(last-50.0) > 1e-6 {
		t.Errorf("expected RSI ~50 for balanced swings, got %v", last)
	}
}

func TestCalculateRSI_WarmUp(t *testing.T) {
	series := make([]float64, 20)
	for i := range series {
		series[i] = 100.0 + float64(i)
	}
	got, err := CalculateRSI(series, 14)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i := 0; i < 14; i++ {
		if !math.IsNaN(got[i]) {
			t.Errorf("rsi[%d]: expected NaN during warm-up, got %v", i, got[i])
		}
	}
	for i := 14; i < len(got); i++ {
		if math.IsNaN(got[i]) {
			t.Errorf("rsi[%d]: expected a value after warm-up", i)
		}
	}
}

func TestCalculateRSI_ShortSeriesAllNaN(t *testing.T) {
	got, err := CalculateRSI([]float64{1, 2, 3}, 14)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i, v := range got {
		if !math.IsNaN(v) {
			t.Errorf("rsi[%d]: expected NaN for short series, got %v", i, v)
		}
	}
}

func TestCalculateRSI_PeriodError(t *testing.T) {
	if _, err := CalculateRSI([]float64{1, 2, 3}, 0); err == nil {
		t.Error("expected error for zero period")
	}
}
