package pipeline

import (
	"fmt"
	"math"
)

// Scaler standardizes features to zero mean and unit variance. It is fitted
// on the training split only and applied unchanged to validation and test,
// so no information leaks across the split boundary.
type Scaler struct {
	Mean []float64 `json:"mean"`
	Std  []float64 `json:"std"`
}

// FitScaler computes per-feature mean and population standard deviation.
// Zero-variance columns get a std of 1 so transforming them is a no-op
// shift instead of a division by zero.
func FitScaler(X [][]float64) (*Scaler, error) {
	if len(X) == 0 {
		return nil, fmt.Errorf("cannot fit scaler on empty matrix")
	}
	width := len(X[0])

	s := &Scaler{
		Mean: make([]float64, width),
		Std:  make([]float64, width),
	}

	n := float64(len(X))
	for _, row := range X {
		if len(row) != width {
			return nil, fmt.Errorf("ragged feature matrix: row width %d, want %d", len(row), width)
		}
		for j, v := range row {
			s.Mean[j] += v
		}
	}
	for j := range s.Mean {
		s.Mean[j] /= n
	}

	for _, row := range X {
		for j, v := range row {
			d := v - s.Mean[j]
			s.Std[j] += d * d
		}
	}
	for j := range s.Std {
		s.Std[j] = math.Sqrt(s.Std[j] / n)
		if s.Std[j] == 0 {
			s.Std[j] = 1
		}
	}

	return s, nil
}

// Transform returns a standardized copy of X using the fitted parameters.
// It never refits.
func (s *Scaler) Transform(X [][]float64) [][]float64 {
	out := make([][]float64, len(X))
	for i, row := range X {
		scaled := make([]float64, len(row))
		for j, v := range row {
			scaled[j] = (v - s.Mean[j]) / s.Std[j]
		}
		out[i] = scaled
	}
	return out
}
