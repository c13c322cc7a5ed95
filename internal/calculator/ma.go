package calculator

import (
	"errors"
	"math"
)

// CalculateSMA computes the rolling simple moving average of the series over
// the specified period. The output is aligned with the input; entries before
// the window is full are NaN, and a NaN anywhere inside a window makes that
// window's value NaN.
func CalculateSMA(series []float64, period int) ([]float64, error) {
	if period <= 0 {
		return nil, errors.New("period must be positive")
	}
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
		out[i] = sum / float64(period)
	}
	return out, nil
}

// CalculateEMA computes the exponential moving average of the series over
// the specified period, seeded with the first observation. Defined for all
// indices; early values are less reliable but never NaN.
func CalculateEMA(series []float64, period int) ([]float64, error) {
	if period <= 0 {
		return nil, errors.New("period must be positive")
	}
	if len(series) == 0 {
		return nil, errors.New("no data for EMA calculation")
	}
	alpha := 2.0 / (float64(period) + 1.0)
	out := make([]float64, len(series))
	out[0] = series[0]
	for i := 1; i < len(series); i++ {
		out[i] = alpha*series[i] + (1-alpha)*out[i-1]
	}
	return out, nil
}
