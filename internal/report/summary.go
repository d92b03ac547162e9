// Package report builds the textual model summaries shown on the page and
// printed to the console.
package report

import (
	"fmt"
	"math"

	"smokestat/domain/core"
	"smokestat/internal/profiling"
	"smokestat/internal/regression"

	"github.com/jonboulle/clockwork"
)

// Field is one label/value cell pair of the summary table
type Field struct {
	Label string
	Value string
}

// ModelSummary is the printable form of a fitted model
type ModelSummary struct {
	Title        string
	Formula      regression.Formula
	Left         []Field
	Right        []Field
	Coefficients [][]string
}

// CoefficientHeader labels the columns of ModelSummary.Coefficients
var CoefficientHeader = []string{"", "coef", "std err", "t", "P>|t|", "[0.025", "0.975]"}

// Summarizer renders fitted models. The clock stamps Date and Time.
type Summarizer struct {
	clock clockwork.Clock
}

// NewSummarizer creates a summarizer reading the time from clock
func NewSummarizer(clock clockwork.Clock) *Summarizer {
	return &Summarizer{clock: clock}
}

// Summarize lays out res the way an OLS results header reads
func (s *Summarizer) Summarize(res *regression.Result) *ModelSummary {
	now := core.NewTimestamp(s.clock.Now())

	sum := &ModelSummary{
		Title:   "OLS Regression Results",
		Formula: res.Formula,
		Left: []Field{
			{"Dep. Variable:", res.Formula.Response},
			{"Model:", "OLS"},
			{"Method:", "Least Squares"},
			{"Date:", now.Date()},
			{"Time:", now.Clock()},
			{"No. Observations:", fmt.Sprintf("%d", res.NObs)},
			{"Df Residuals:", fmt.Sprintf("%d", res.DfResid)},
			{"Df Model:", fmt.Sprintf("%d", res.DfModel)},
			{"Covariance Type:", "nonrobust"},
		},
		Right: []Field{
			{"R-squared:", formatFloat("%.3f", res.RSquared)},
			{"Adj. R-squared:", formatFloat("%.3f", res.AdjRSquare)},
			{"F-statistic:", formatFloat("%.2f", res.FStat)},
			{"Prob (F-statistic):", formatFloat("%.2e", res.FPValue)},
			{"Log-Likelihood:", formatFloat("%.2f", res.LogLik)},
			{"AIC:", formatFloat("%.1f", res.AIC)},
			{"BIC:", formatFloat("%.1f", res.BIC)},
			{"", ""},
			{"", ""},
		},
	}

	for _, c := range res.Params() {
		sum.Coefficients = append(sum.Coefficients, []string{
			c.Name,
			formatFloat("%.4f", c.Value),
			formatFloat("%.3f", c.StdErr),
			formatFloat("%.3f", c.T),
			formatFloat("%.3f", c.P),
			formatFloat("%.3f", c.Lower),
			formatFloat("%.3f", c.Upper),
		})
	}
	return sum
}

// Rows pairs Left and Right into four-cell rows
func (m *ModelSummary) Rows() [][]string {
	rows := make([][]string, 0, len(m.Left))
	for i, l := range m.Left {
		r := Field{}
		if i < len(m.Right) {
			r = m.Right[i]
		}
		rows = append(rows, []string{l.Label, l.Value, r.Label, r.Value})
	}
	return rows
}

// ProfileHeader labels the columns of ProfileRows
var ProfileHeader = []string{"Column", "count", "mean", "std", "min", "25%", "50%", "75%", "max", "skew", "kurtosis"}

// ProfileRows renders column profiles as table rows
func ProfileRows(profiles []profiling.ColumnProfile) [][]string {
	rows := make([][]string, 0, len(profiles))
	for _, p := range profiles {
		rows = append(rows, []string{
			p.Column,
			fmt.Sprintf("%d", p.Count),
			formatFloat("%.2f", p.Mean),
			formatFloat("%.2f", p.StdDev),
			formatFloat("%.2f", p.Min),
			formatFloat("%.2f", p.Q25),
			formatFloat("%.2f", p.Median),
			formatFloat("%.2f", p.Q75),
			formatFloat("%.2f", p.Max),
			formatFloat("%.3f", p.Skewness),
			formatFloat("%.3f", p.Kurtosis),
		})
	}
	return rows
}

func formatFloat(format string, v float64) string {
	switch {
	case math.IsNaN(v):
		return "nan"
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	}
	return fmt.Sprintf(format, v)
}
