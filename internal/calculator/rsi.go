package calculator

import (
	"errors"
	"math"
)

// rsiEpsilon guards the gain/loss ratio against division by zero when the
// window holds no losses.
const rsiEpsilon = 1e-10

// CalculateRSI computes the relative strength index over the given period,
// using simple moving averages of per-step gains and losses. The output is
// aligned with the input; the first period entries are NaN. A window with
// neither gains nor losses yields the neutral midpoint 50.
func CalculateRSI(closes []float64, period int) ([]float64, error) {
	if period <= 0 {
		return nil, errors.New("period must be positive")
	}
	out := make([]float64, len(closes))
	for i := range out {
		out[i] = math.NaN()
	}
	if len(closes) < period+1 {
		return out, nil
	}

	gains := make([]float64, len(closes))
	losses := make([]float64, len(closes))
	for i := 1; i < len(closes); i++ {
		change := closes[i] - closes[i-1]
		if change > 0 {
			gains[i] = change
		} else {
			losses[i] = -change
		}
	}

	for i := period; i < len(closes); i++ {
		var gainSum, lossSum float64
		for j := i + 1 - period; j <= i; j++ {
			gainSum += gains[j]
			lossSum += losses[j]
		}
		avgGain := gainSum / float64(period)
		avgLoss := lossSum / float64(period)
		if avgGain == 0 && avgLoss == 0 {
			out[i] = 50.0
			continue
		}
		rs := avgGain / (avgLoss + rsiEpsilon)
		out[i] = 100.0 - 100.0/(1.0+rs)
	}
	return out, nil
}
