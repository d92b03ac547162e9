package report

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"smokestat/internal/profiling"
	"smokestat/internal/regression"
	"smokestat/internal/testkit"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2025, time.June, 17, 14, 3, 22, 0, time.UTC)

func knownSummary(t *testing.T) *ModelSummary {
	t.Helper()
	res, err := regression.FitXY(regression.MustParseFormula("y ~ x"), []float64{1, 2, 3, 4, 5}, []float64{2, 4, 5, 4, 5})
	require.NoError(t, err)
	return NewSummarizer(clockwork.NewFakeClockAt(fixedNow)).Summarize(res)
}

func TestSummarize_Fields(t *testing.T) {
	sum := knownSummary(t)

	assert.Equal(t, "OLS Regression Results", sum.Title)
	assert.Equal(t, Field{"Dep. Variable:", "y"}, sum.Left[0])
	assert.Equal(t, Field{"Date:", "Tue, 17 Jun 2025"}, sum.Left[3])
	assert.Equal(t, Field{"Time:", "14:03:22"}, sum.Left[4])
	assert.Equal(t, Field{"No. Observations:", "5"}, sum.Left[5])
	assert.Equal(t, Field{"Df Residuals:", "3"}, sum.Left[6])
	assert.Equal(t, Field{"R-squared:", "0.600"}, sum.Right[0])
	assert.Equal(t, Field{"Adj. R-squared:", "0.467"}, sum.Right[1])
	assert.Equal(t, Field{"F-statistic:", "4.50"}, sum.Right[2])

	require.Len(t, sum.Coefficients, 2)
	assert.Equal(t, []string{"Intercept", "2.2000"}, sum.Coefficients[0][:2])
	assert.Equal(t, []string{"x", "0.6000", "0.283", "2.121"}, sum.Coefficients[1][:4])

	rows := sum.Rows()
	require.Len(t, rows, 9)
	assert.Equal(t, []string{"Covariance Type:", "nonrobust", "", ""}, rows[8])
}

func TestSummarize_ZeroNoiseFormatsInfinities(t *testing.T) {
	tbl := testkit.LinearTable(testkit.DefaultLinearSpec())
	res, err := regression.Fit(tbl, regression.MustParseFormula("LungCancerPer100 ~ PercentSmokers"))
	require.NoError(t, err)

	sum := NewSummarizer(clockwork.NewFakeClockAt(fixedNow)).Summarize(res)
	for _, row := range sum.Rows() {
		for _, cell := range row {
			assert.NotContains(t, cell, "%!")
		}
	}
}

func TestModelSummary_MarkdownAndHTML(t *testing.T) {
	md := knownSummary(t).Markdown()

	assert.True(t, strings.HasPrefix(md, "#### OLS Regression Results: y ~ x\n"))
	assert.Contains(t, md, "| Dep. Variable: | y | R-squared: | 0.600 |")
	assert.Contains(t, md, `P>\|t\|`)

	out := string(ToHTML(md))
	assert.Contains(t, out, "<table>")
	assert.Contains(t, out, "R-squared:")
	assert.Contains(t, out, "Least Squares")
	assert.Contains(t, out, "P&gt;")
	assert.Contains(t, out, "[0.025")
}

func TestToHTML_SkipsRawHTML(t *testing.T) {
	out := string(ToHTML("hello <script>alert(1)</script>"))
	assert.NotContains(t, out, "<script>")
}

func TestPrintSummary(t *testing.T) {
	var buf bytes.Buffer
	PrintSummary(&buf, knownSummary(t))

	out := buf.String()
	assert.Contains(t, out, "OLS Regression Results: y ~ x")
	assert.Contains(t, out, "Least Squares")
	assert.Contains(t, out, "Intercept")
	assert.Contains(t, out, "std err")
}

func TestProfileRendering(t *testing.T) {
	profiles, err := profiling.NewDistributionAnalyzer().AnalyzeTable(testkit.SampleTable())
	require.NoError(t, err)

	rows := ProfileRows(profiles)
	require.Len(t, rows, 3)
	for _, row := range rows {
		assert.Len(t, row, len(ProfileHeader))
		assert.Equal(t, "27", row[1])
	}

	out := string(ToHTML(ProfileMarkdown(ProfileHeader, rows)))
	assert.Contains(t, out, "PercentSmokers")
	assert.Contains(t, out, "<th>kurtosis</th>")

	var buf bytes.Buffer
	PrintProfile(&buf, rows)
	assert.Contains(t, buf.String(), "UnemploymentRate")
}
