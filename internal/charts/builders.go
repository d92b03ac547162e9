package charts

import (
	"sort"

	"smokestat/domain/dataset"
	"smokestat/internal/regression"
)

// Legend labels shared by the figures
const (
	LabelObserved   = "Lung Cancer Incidence"
	LabelRegression = "Regression Line"
	LabelInterval   = "Prediction Interval"
	LabelSmokers    = "% Smokers"
	LabelUnemployed = "Unemployment Rate"
)

// TimeSeriesRanges fixes the y scales of the time-series figure. They are
// configuration and never derived from the data.
type TimeSeriesRanges struct {
	Primary   Range
	Secondary Range
}

// DefaultTimeSeriesRanges returns 65..130 for incidence and 0..36 for the rates
func DefaultTimeSeriesRanges() TimeSeriesRanges {
	return TimeSeriesRanges{
		Primary:   Range{Start: 65, End: 130},
		Secondary: Range{Start: 0, End: 36},
	}
}

// RegressionFigure draws observed points, the fitted line and the dashed
// prediction bounds for one model. Lines are drawn in ascending x.
func RegressionFigure(id, title, xLabel, yLabel string, res *regression.Result, pred *regression.PredictionSummary) Figure {
	order := ascending(res.X)
	xs := permute(res.X, order)

	dashed := func(name, color string, y []float64) Series {
		return Series{
			Name:  name,
			Kind:  KindLine,
			Color: color,
			Dash:  "dashed",
			Width: 2,
			YAxis: AxisPrimary,
			X:     xs,
			Y:     permute(y, order),
		}
	}

	return Figure{
		ID:     id,
		Title:  title,
		XAxis:  Axis{Label: xLabel},
		YAxis:  Axis{Label: yLabel},
		Legend: LegendTopLeft,
		Series: []Series{
			dashed(LabelRegression, Spectral4[3], pred.Fitted()),
			dashed(LabelInterval, Spectral4[2], pred.Lower()),
			dashed(LabelInterval, Spectral4[2], pred.Upper()),
			{
				Name:  LabelObserved,
				Kind:  KindCircle,
				Color: DefaultMarkerColor,
				Width: 1,
				YAxis: AxisPrimary,
				X:     append([]float64(nil), res.X...),
				Y:     append([]float64(nil), res.Y...),
			},
		},
	}
}

// TimeSeriesFigure plots incidence on the primary axis and the two rates on
// a secondary axis against Year.
func TimeSeriesFigure(id string, tbl *dataset.Table, ranges TimeSeriesRanges) Figure {
	years := tbl.MustColumn(dataset.ColumnYear)
	primary := ranges.Primary
	secondary := ranges.Secondary

	circle := func(name, color, axis string, y []float64) Series {
		return Series{
			Name:  name,
			Kind:  KindCircle,
			Color: color,
			Width: 1,
			YAxis: axis,
			X:     years,
			Y:     y,
		}
	}

	return Figure{
		ID:         id,
		Title:      "Smoking Rates Over Time",
		XAxis:      Axis{Label: dataset.ColumnYear},
		YAxis:      Axis{Label: "Lung Cancer Per 100,000", Range: &primary},
		SecondaryY: &Axis{Label: LabelSmokers, Range: &secondary},
		Legend:     LegendTopRight,
		Series: []Series{
			circle(LabelObserved, Spectral4[0], AxisPrimary, tbl.MustColumn(dataset.ColumnLungCancerPer100)),
			circle(LabelSmokers, Spectral4[1], AxisSecondary, tbl.MustColumn(dataset.ColumnPercentSmokers)),
			circle(LabelUnemployed, Spectral4[2], AxisSecondary, tbl.MustColumn(dataset.ColumnUnemploymentRate)),
		},
	}
}

// YearSlider spans the table's years and starts fully open
func YearSlider(id, target string, tbl *dataset.Table) RangeSlider {
	first, last := tbl.YearSpan()
	start, end := float64(first), float64(last)
	return RangeSlider{
		ID:     id,
		Title:  "Year Filter",
		Start:  start,
		End:    end,
		Step:   1,
		Value:  [2]float64{start, end},
		Target: target,
	}
}

func ascending(x []float64) []int {
	order := make([]int, len(x))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool { return x[order[a]] < x[order[b]] })
	return order
}

func permute(v []float64, order []int) []float64 {
	out := make([]float64, len(order))
	for i, j := range order {
		out[i] = v[j]
	}
	return out
}
