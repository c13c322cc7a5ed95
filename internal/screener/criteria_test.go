package screener

import (
	"testing"

	"StockScreener/internal/model"
)

// inputsFor builds indicator values that force each criterion to the wanted
// boolean outcome.
func inputsFor(above, rsiOK, adxOK, spike bool) *model.TickerIndicators {
	ind := &model.TickerIndicators{
		EMA50:     100.0,
		VolumeAvg: 1000.0,
	}
	if above {
		ind.Price = 110.0
	} else {
		ind.Price = 90.0
	}
	if rsiOK {
		ind.RSI14 = 60.0
	} else {
		ind.RSI14 = 40.0
	}
	if adxOK {
		ind.ADX14 = 30.0
	} else {
		ind.ADX14 = 20.0
	}
	if spike {
		ind.Volume = 2000
	} else {
		ind.Volume = 1000
	}
	return ind
}

func TestEvaluate_AggregateMatrix(t *testing.T) {
	for mask := 0; mask < 16; mask++ {
		above := mask&1 != 0
		rsiOK := mask&2 != 0
		adxOK := mask&4 != 0
		spike := mask&8 != 0

		r := Evaluate("TCS", inputsFor(above, rsiOK, adxOK, spike))

		if r.AboveEMA50 != above {
			t.Errorf("mask %04b: AboveEMA50 = %v, want %v", mask, r.AboveEMA50, above)
		}
		if r.RSIInRange != rsiOK {
			t.Errorf("mask %04b: RSIInRange = %v, want %v", mask, r.RSIInRange, rsiOK)
		}
		if r.StrongTrend != adxOK {
			t.Errorf("mask %04b: StrongTrend = %v, want %v", mask, r.StrongTrend, adxOK)
		}
		if r.VolumeSpike != spike {
			t.Errorf("mask %04b: VolumeSpike = %v, want %v", mask, r.VolumeSpike, spike)
		}
		wantAll := above && rsiOK && adxOK && spike
		if r.AllCriteria != wantAll {
			t.Errorf("mask %04b: AllCriteria = %v, want %v", mask, r.AllCriteria, wantAll)
		}
	}
}

func TestEvaluate_Boundaries(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*model.TickerIndicators)
		check  func(model.ScreenResult) bool
		want   bool
	}{
		{"rsi lower bound inclusive", func(i *model.TickerIndicators) { i.RSI14 = 50.0 },
			func(r model.ScreenResult) bool { return r.RSIInRange }, true},
		{"rsi upper bound inclusive", func(i *model.TickerIndicators) { i.RSI14 = 70.0 },
			func(r model.ScreenResult) bool { return r.RSIInRange }, true},
		{"rsi just below range", func(i *model.TickerIndicators) { i.RSI14 = 49.999 },
			func(r model.ScreenResult) bool { return r.RSIInRange }, false},
		{"rsi just above range", func(i *model.TickerIndicators) { i.RSI14 = 70.001 },
			func(r model.ScreenResult) bool { return r.RSIInRange }, false},
		{"adx threshold is strict", func(i *model.TickerIndicators) { i.ADX14 = 25.0 },
			func(r model.ScreenResult) bool { return r.StrongTrend }, false},
		{"adx just above threshold", func(i *model.TickerIndicators) { i.ADX14 = 25.001 },
			func(r model.ScreenResult) bool { return r.StrongTrend }, true},
		{"price equal to ema fails", func(i *model.TickerIndicators) { i.Price = i.EMA50 },
			func(r model.ScreenResult) bool { return r.AboveEMA50 }, false},
		{"volume exactly 1.5x passes", func(i *model.TickerIndicators) { i.Volume = 1500; i.VolumeAvg = 1000 },
			func(r model.ScreenResult) bool { return r.VolumeSpike }, true},
		{"volume just under 1.5x fails", func(i *model.TickerIndicators) { i.Volume = 1499; i.VolumeAvg = 1000 },
			func(r model.ScreenResult) bool { return r.VolumeSpike }, false},
	}
	for _, tt := range tests {
		ind := inputsFor(true, true, true, true)
		tt.mutate(ind)
		r := Evaluate("X", ind)
		if got := tt.check(r); got != tt.want {
			t.Errorf("%s: got %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestEvaluate_ZeroVolumeAverageNeverSpikes(t *testing.T) {
	ind := inputsFor(true, true, true, true)
	ind.VolumeAvg = 0
	ind.Volume = 1000000000

	r := Evaluate("X", ind)
	if r.VolumeSpike {
		t.Error("volume spike must be false when the average is zero")
	}
	if r.AllCriteria {
		t.Error("aggregate must be false when any criterion fails")
	}
}

func TestEvaluate_CarriesValues(t *testing.T) {
	ind := &model.TickerIndicators{
		Price:     123.45,
		EMA50:     120.0,
		RSI14:     55.5,
		ADX14:     30.25,
		Volume:    98765,
		VolumeAvg: 45678.9,
	}
	r := Evaluate("RELIANCE", ind)
	if r.Ticker != "RELIANCE" {
		t.Errorf("ticker: got %q", r.Ticker)
	}
	if r.Price != ind.Price || r.EMA50 != ind.EMA50 || r.RSI14 != ind.RSI14 ||
		r.ADX14 != ind.ADX14 || r.Volume != ind.Volume || r.VolumeAvg20 != ind.VolumeAvg {
		t.Errorf("result does not carry snapshot values: %+v", r)
	}
}
