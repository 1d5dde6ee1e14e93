package forecast

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Epsilon is the magnitude below which a denominator is treated as zero.
const Epsilon = 1e-9

func Sum(values []float64) float64 {
	return floats.Sum(values)
}

// Mean returns 0 for an empty slice.
func Mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	return stat.Mean(values, nil)
}

// PopulationVariance returns 0 for an empty slice.
func PopulationVariance(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	_, variance := stat.PopMeanVariance(values, nil)
	return variance
}

func PopulationStdDev(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	return stat.PopStdDev(values, nil)
}

// SafeDiv divides num by den. ok is false, and the result 0, when |den| < Epsilon.
func SafeDiv(num, den float64) (result float64, ok bool) {
	if math.Abs(den) < Epsilon {
		return 0, false
	}
	return num / den, true
}

func Clamp(lo, hi, v float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Pearson returns the correlation coefficient of two equally long series.
// It is 0 when either series has zero variance or fewer than two points.
func Pearson(x, y []float64) float64 {
	if len(x) != len(y) || len(x) < 2 {
		return 0
	}
	if math.Sqrt(PopulationVariance(x)*PopulationVariance(y)) < Epsilon {
		return 0
	}
	return Clamp(-1, 1, stat.Correlation(x, y, nil))
}

// ols fits y = slope*x + intercept by ordinary least squares.
// ok is false when the x values have no spread.
func ols(xs, ys []float64) (slope, intercept float64, ok bool) {
	if len(xs) < 2 || PopulationVariance(xs) < Epsilon {
		return 0, 0, false
	}
	intercept, slope = stat.LinearRegression(xs, ys, nil, false)
	return slope, intercept, true
}

func indices(n int) []float64 {
	xs := make([]float64, n)
	for i := range xs {
		xs[i] = float64(i)
	}
	return xs
}
