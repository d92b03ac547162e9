package regression

import (
	"fmt"
	"math"

	"smokestat/internal/errors"

	"gonum.org/v1/gonum/stat/distuv"
)

// Prediction is the fitted value and pointwise prediction interval for one observation
type Prediction struct {
	X      float64
	Fitted float64
	Lower  float64
	Upper  float64
}

// Width returns Upper - Lower
func (p Prediction) Width() float64 {
	return p.Upper - p.Lower
}

// PredictionSummary holds one Prediction per observation, in row order
type PredictionSummary struct {
	Alpha       float64
	Predictions []Prediction
}

// Fitted returns the fitted values in row order
func (s *PredictionSummary) Fitted() []float64 {
	return s.column(func(p Prediction) float64 { return p.Fitted })
}

// Lower returns the lower interval bounds in row order
func (s *PredictionSummary) Lower() []float64 {
	return s.column(func(p Prediction) float64 { return p.Lower })
}

// Upper returns the upper interval bounds in row order
func (s *PredictionSummary) Upper() []float64 {
	return s.column(func(p Prediction) float64 { return p.Upper })
}

func (s *PredictionSummary) column(get func(Prediction) float64) []float64 {
	out := make([]float64, len(s.Predictions))
	for i, p := range s.Predictions {
		out[i] = get(p)
	}
	return out
}

// Summarize computes the (1-alpha) prediction interval for a new observation
// at each fitted point: yhat ± t(1-alpha/2, df) * sqrt(s² (1 + h)).
func Summarize(res *Result, alpha float64) (*PredictionSummary, error) {
	if !(alpha > 0 && alpha < 1) {
		return nil, errors.InvalidInput(fmt.Sprintf("alpha %v must be between 0 and 1", alpha))
	}

	tDist := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: float64(res.DfResid)}
	tCrit := tDist.Quantile(1 - alpha/2)

	out := &PredictionSummary{
		Alpha:       alpha,
		Predictions: make([]Prediction, res.NObs),
	}
	for i := range out.Predictions {
		half := tCrit * math.Sqrt(res.Scale*(1+res.Leverage[i]))
		out.Predictions[i] = Prediction{
			X:      res.X[i],
			Fitted: res.Fitted[i],
			Lower:  res.Fitted[i] - half,
			Upper:  res.Fitted[i] + half,
		}
	}
	return out, nil
}
