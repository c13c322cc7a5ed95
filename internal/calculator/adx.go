package calculator

import (
	"errors"
	"math"
)

// dxEpsilon keeps the directional index finite when both directional
// indicators are zero.
const dxEpsilon = 0.001

// CalculateADX computes the average directional index from high, low and
// close series of equal length. The output is aligned with the inputs and is
// NaN until index 2*period-1: one window for smoothing the directional
// movement and true range, another for averaging the directional index.
func CalculateADX(highs, lows, closes []float64, period int) ([]float64, error) {
	if period <= 0 {
		return nil, errors.New("period must be positive")
	}
	n := len(highs)
	if len(lows) != n || len(closes) != n {
		return nil, errors.New("high/low/close series must have equal length")
	}
	if n == 0 {
		return nil, errors.New("no data for ADX calculation")
	}

	plusDM := make([]float64, n)
	minusDM := make([]float64, n)
	tr := make([]float64, n)
	tr[0] = math.NaN() // true range needs the previous close
	for i := 1; i < n; i++ {
		up := highs[i] - highs[i-1]
		down := lows[i-1] - lows[i]
		// Exactly one of the two can be nonzero at each step.
		if up > down && up > 0 {
			plusDM[i] = up
		}
		if down > up && down > 0 {
			minusDM[i] = down
		}
		hl := highs[i] - lows[i]
		hc := math.Abs(highs[i] - closes[i-1])
		lc := math.Abs(lows[i] - closes[i-1])
		tr[i] = math.Max(hl, math.Max(hc, lc))
	}

	plusSum := rollingSum(plusDM, period)
	minusSum := rollingSum(minusDM, period)
	trSum := rollingSum(tr, period)

	dx := make([]float64, n)
	for i := 0; i < n; i++ {
		plusDI := 100 * plusSum[i] / trSum[i]
		minusDI := 100 * minusSum[i] / trSum[i]
		dx[i] = 100 * math.Abs(plusDI-minusDI) / (plusDI + minusDI + dxEpsilon)
	}

	return CalculateSMA(dx, period)
}

// rollingSum computes the rolling sum over the period, NaN until the window
// is full; NaN inputs poison their windows.
func rollingSum(series []float64, period int) []float64 {
	out := make([]float64, len(series))
	for i := range series {
		if i+1 < period {
			out[i] = math.NaN()
			continue
		}
		sum := 0.0
		for j := i + 1 - period; j <= i; j++ {
			sum += series[j]
		}
		out[i] = sum
	}
	return out
}
