package charts

import (
	"encoding/json"
	"sort"
	"testing"

	"smokestat/domain/dataset"
	"smokestat/internal/regression"
	"smokestat/internal/testkit"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fitted(t *testing.T, tbl *dataset.Table, formula string) (*regression.Result, *regression.PredictionSummary) {
	t.Helper()
	res, err := regression.Fit(tbl, regression.MustParseFormula(formula))
	require.NoError(t, err)
	pred, err := regression.Summarize(res, 0.05)
	require.NoError(t, err)
	return res, pred
}

func TestRegressionFigure(t *testing.T) {
	tbl := testkit.SampleTable()
	res, pred := fitted(t, tbl, "LungCancerPer100 ~ PercentSmokers")

	fig := RegressionFigure("smokers", "Smoking vs. Lung Cancer Rate Regression", "% Smokers", "Lung Cancer Per 100,000", res, pred)

	assert.Equal(t, LegendTopLeft, fig.Legend)
	assert.Nil(t, fig.SecondaryY)
	require.Len(t, fig.Series, 4)

	line := fig.Series[0]
	assert.Equal(t, LabelRegression, line.Name)
	assert.Equal(t, KindLine, line.Kind)
	assert.Equal(t, "dashed", line.Dash)
	assert.Equal(t, 2.0, line.Width)
	assert.Equal(t, Spectral4[3], line.Color)
	assert.True(t, sort.Float64sAreSorted(line.X), "line x must be ascending")

	for _, s := range fig.Series[1:3] {
		assert.Equal(t, LabelInterval, s.Name)
		assert.Equal(t, Spectral4[2], s.Color)
		assert.Len(t, s.Y, tbl.Len())
	}
	for i := range fig.Series[1].Y {
		assert.Less(t, fig.Series[1].Y[i], line.Y[i])
		assert.Greater(t, fig.Series[2].Y[i], line.Y[i])
	}

	observed, ok := fig.SeriesNamed(LabelObserved)
	require.True(t, ok)
	assert.Equal(t, KindCircle, observed.Kind)
	assert.Equal(t, tbl.MustColumn(dataset.ColumnPercentSmokers), observed.X)
	assert.Equal(t, tbl.MustColumn(dataset.ColumnLungCancerPer100), observed.Y)
}

func TestRegressionFigure_LinePairsStayAligned(t *testing.T) {
	res, err := regression.FitXY(regression.MustParseFormula("y ~ x"), []float64{3, 1, 2}, []float64{6, 2, 4.5})
	require.NoError(t, err)
	pred, err := regression.Summarize(res, 0.05)
	require.NoError(t, err)

	fig := RegressionFigure("f", "t", "x", "y", res, pred)
	line := fig.Series[0]
	assert.Equal(t, []float64{1, 2, 3}, line.X)
	assert.InDelta(t, res.Fitted[1], line.Y[0], 1e-12)
	assert.InDelta(t, res.Fitted[2], line.Y[1], 1e-12)
	assert.InDelta(t, res.Fitted[0], line.Y[2], 1e-12)
}

func TestTimeSeriesFigure_SecondaryRangeIsFixed(t *testing.T) {
	tables := map[string]*dataset.Table{
		"sample":  testkit.SampleTable(),
		"linear":  testkit.LinearTable(testkit.DefaultLinearSpec()),
		"extreme": {Observations: []dataset.Observation{{Year: 1, PercentSmokers: 500, LungCancerPer100: -40, UnemploymentRate: 99}}},
	}
	for name, tbl := range tables {
		t.Run(name, func(t *testing.T) {
			fig := TimeSeriesFigure("over-time", tbl, DefaultTimeSeriesRanges())

			require.NotNil(t, fig.SecondaryY)
			require.NotNil(t, fig.SecondaryY.Range)
			assert.Equal(t, Range{Start: 0, End: 36}, *fig.SecondaryY.Range)
			require.NotNil(t, fig.YAxis.Range)
			assert.Equal(t, Range{Start: 65, End: 130}, *fig.YAxis.Range)
			assert.Equal(t, LabelSmokers, fig.SecondaryY.Label)
		})
	}
}

func TestTimeSeriesFigure_AxisBinding(t *testing.T) {
	tbl := testkit.SampleTable()
	fig := TimeSeriesFigure("over-time", tbl, DefaultTimeSeriesRanges())

	require.Len(t, fig.Series, 3)
	assert.Equal(t, AxisPrimary, fig.Series[0].YAxis)
	assert.Equal(t, AxisSecondary, fig.Series[1].YAxis)
	assert.Equal(t, AxisSecondary, fig.Series[2].YAxis)
	assert.Equal(t, tbl.MustColumn(dataset.ColumnYear), fig.Series[0].X)
	for i, c := range Spectral4[:3] {
		assert.Equal(t, c, fig.Series[i].Color)
	}
}

func TestYearSlider(t *testing.T) {
	s := YearSlider("year-filter", "over-time", testkit.SampleTable())

	assert.Equal(t, "Year Filter", s.Title)
	assert.Equal(t, 1985.0, s.Start)
	assert.Equal(t, 2011.0, s.End)
	assert.Equal(t, 1.0, s.Step)
	assert.Equal(t, [2]float64{1985, 2011}, s.Value)
	assert.Equal(t, "over-time", s.Target)
}

func TestFigure_JSONShape(t *testing.T) {
	fig := TimeSeriesFigure("over-time", testkit.SampleTable(), DefaultTimeSeriesRanges())

	raw, err := json.Marshal(fig)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))
	secondary := decoded["secondaryY"].(map[string]any)
	assert.Equal(t, map[string]any{"start": 0.0, "end": 36.0}, secondary["range"])
	assert.Equal(t, "over-time", decoded["id"])
}
