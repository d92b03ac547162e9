// Package regression fits simple ordinary-least-squares models and derives
// their prediction intervals.
package regression

import (
	"fmt"
	"math"

	"smokestat/domain/dataset"
	"smokestat/internal/errors"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// CoefficientAlpha is the level of the coefficient confidence intervals in Result.
const CoefficientAlpha = 0.05

// Coefficient is one fitted parameter with its inference statistics
type Coefficient struct {
	Name   string
	Value  float64
	StdErr float64
	T      float64
	P      float64
	Lower  float64 // lower bound of the 95% confidence interval
	Upper  float64
}

// Result is a fitted simple linear model
type Result struct {
	Formula Formula

	Intercept Coefficient
	Slope     Coefficient

	X         []float64
	Y         []float64
	Fitted    []float64
	Residuals []float64
	Leverage  []float64

	NObs       int
	DfModel    int
	DfResid    int
	SSR        float64 // residual sum of squares
	ESS        float64 // explained sum of squares
	Scale      float64 // residual variance SSR/DfResid
	RSquared   float64
	AdjRSquare float64
	FStat      float64
	FPValue    float64
	LogLik     float64
	AIC        float64
	BIC        float64
}

// Params returns the coefficients in design-matrix order
func (r *Result) Params() []Coefficient {
	return []Coefficient{r.Intercept, r.Slope}
}

// Fit fits formula against tbl
func Fit(tbl *dataset.Table, formula Formula) (*Result, error) {
	y, err := tbl.Column(formula.Response)
	if err != nil {
		return nil, errors.InvalidInput(fmt.Sprintf("formula %s: %v", formula, err))
	}
	x, err := tbl.Column(formula.Predictor)
	if err != nil {
		return nil, errors.InvalidInput(fmt.Sprintf("formula %s: %v", formula, err))
	}
	return FitXY(formula, x, y)
}

// FitXY fits y = b0 + b1*x by least squares using a QR factorization of the
// design matrix [1 x].
func FitXY(formula Formula, x, y []float64) (*Result, error) {
	n := len(y)
	if len(x) != n {
		return nil, errors.InvalidInput(fmt.Sprintf("formula %s: %d predictor values for %d responses", formula, len(x), n))
	}
	if n < 3 {
		return nil, errors.DegenerateModel(fmt.Sprintf("formula %s: need at least 3 observations, got %d", formula, n))
	}
	if stat.Variance(x, nil) == 0 {
		return nil, errors.DegenerateModel(fmt.Sprintf("formula %s: predictor %s is constant", formula, formula.Predictor))
	}

	design := mat.NewDense(n, 2, nil)
	for i, xi := range x {
		design.Set(i, 0, 1)
		design.Set(i, 1, xi)
	}
	response := mat.NewVecDense(n, append([]float64(nil), y...))

	var qr mat.QR
	qr.Factorize(design)
	var beta mat.VecDense
	if err := qr.SolveVecTo(&beta, false, response); err != nil {
		return nil, errors.WithCode(errors.CodeDegenerateModel, fmt.Errorf("formula %s: least squares solve: %w", formula, err))
	}

	var xtx, xtxInv mat.Dense
	xtx.Mul(design.T(), design)
	if err := xtxInv.Inverse(&xtx); err != nil {
		return nil, errors.WithCode(errors.CodeDegenerateModel, fmt.Errorf("formula %s: normal matrix: %w", formula, err))
	}

	var fitted mat.VecDense
	fitted.MulVec(design, &beta)

	res := &Result{
		Formula:   formula,
		X:         append([]float64(nil), x...),
		Y:         append([]float64(nil), y...),
		Fitted:    make([]float64, n),
		Residuals: make([]float64, n),
		Leverage:  make([]float64, n),
		NObs:      n,
		DfModel:   1,
		DfResid:   n - 2,
	}

	for i := 0; i < n; i++ {
		res.Fitted[i] = fitted.AtVec(i)
		res.Residuals[i] = y[i] - res.Fitted[i]
		res.SSR += res.Residuals[i] * res.Residuals[i]
		// h_i = [1 x_i] (X'X)^-1 [1 x_i]'
		res.Leverage[i] = xtxInv.At(0, 0) + 2*x[i]*xtxInv.At(0, 1) + x[i]*x[i]*xtxInv.At(1, 1)
	}

	dfResid := float64(res.DfResid)
	res.Scale = res.SSR / dfResid

	tDist := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: dfResid}
	tCrit := tDist.Quantile(1 - CoefficientAlpha/2)
	coefficient := func(name string, j int) Coefficient {
		c := Coefficient{
			Name:   name,
			Value:  beta.AtVec(j),
			StdErr: math.Sqrt(res.Scale * xtxInv.At(j, j)),
		}
		c.T = c.Value / c.StdErr
		c.P = twoSidedP(tDist, c.T)
		c.Lower = c.Value - tCrit*c.StdErr
		c.Upper = c.Value + tCrit*c.StdErr
		return c
	}
	res.Intercept = coefficient("Intercept", 0)
	res.Slope = coefficient(formula.Predictor, 1)

	mean := stat.Mean(y, nil)
	var tss float64
	for _, yi := range y {
		tss += (yi - mean) * (yi - mean)
	}
	res.ESS = tss - res.SSR
	res.RSquared = 1 - res.SSR/tss
	res.AdjRSquare = 1 - (1-res.RSquared)*float64(n-1)/dfResid

	res.FStat = (res.ESS / float64(res.DfModel)) / res.Scale
	res.FPValue = upperTailF(res.FStat, float64(res.DfModel), dfResid)

	nf := float64(n)
	k := float64(len(res.Params()))
	res.LogLik = -nf / 2 * (math.Log(2*math.Pi) + math.Log(res.SSR/nf) + 1)
	res.AIC = -2*res.LogLik + 2*k
	res.BIC = -2*res.LogLik + k*math.Log(nf)

	return res, nil
}

func twoSidedP(dist distuv.StudentsT, t float64) float64 {
	switch {
	case math.IsNaN(t):
		return math.NaN()
	case math.IsInf(t, 0):
		return 0
	}
	return 2 * (1 - dist.CDF(math.Abs(t)))
}

func upperTailF(f, d1, d2 float64) float64 {
	switch {
	case math.IsNaN(f):
		return math.NaN()
	case math.IsInf(f, 1):
		return 0
	}
	return 1 - distuv.F{D1: d1, D2: d2}.CDF(f)
}
