package profiling

import (
	"math"

	"smokestat/domain/dataset"
	"smokestat/internal/errors"

	"github.com/montanaflynn/stats"
)

// ColumnProfile summarizes the distribution of one numeric column
type ColumnProfile struct {
	Column   string
	Count    int
	Mean     float64
	StdDev   float64
	Min      float64
	Q25      float64
	Median   float64
	Q75      float64
	Max      float64
	Skewness float64
	Kurtosis float64
}

// DistributionAnalyzer handles distribution shape analysis
type DistributionAnalyzer struct{}

// NewDistributionAnalyzer creates a new distribution analyzer
func NewDistributionAnalyzer() *DistributionAnalyzer {
	return &DistributionAnalyzer{}
}

// AnalyzeColumn computes summary statistics for one column. StdDev is the
// sample standard deviation.
func (da *DistributionAnalyzer) AnalyzeColumn(name string, data []float64) (ColumnProfile, error) {
	profile := ColumnProfile{Column: name, Count: len(data)}
	if len(data) == 0 {
		return profile, errors.InvalidInput("cannot profile empty column " + name)
	}

	var err error
	if profile.Mean, err = stats.Mean(data); err != nil {
		return profile, err
	}
	if profile.StdDev, err = stats.StandardDeviationSample(data); err != nil {
		return profile, err
	}
	if profile.Min, err = stats.Min(data); err != nil {
		return profile, err
	}
	if profile.Max, err = stats.Max(data); err != nil {
		return profile, err
	}
	if profile.Median, err = stats.Median(data); err != nil {
		return profile, err
	}
	if profile.Q25, err = stats.Percentile(data, 25); err != nil {
		return profile, err
	}
	if profile.Q75, err = stats.Percentile(data, 75); err != nil {
		return profile, err
	}

	profile.Skewness = calculateSkewness(data, profile.Mean, profile.StdDev)
	profile.Kurtosis = calculateKurtosis(data, profile.Mean, profile.StdDev)

	return profile, nil
}

// AnalyzeTable profiles every numeric column except Year, in canonical order
func (da *DistributionAnalyzer) AnalyzeTable(tbl *dataset.Table) ([]ColumnProfile, error) {
	var profiles []ColumnProfile
	for _, name := range dataset.RequiredColumns {
		if name == dataset.ColumnYear {
			continue
		}
		profile, err := da.AnalyzeColumn(name, tbl.MustColumn(name))
		if err != nil {
			return nil, errors.Wrapf(err, "failed to profile %s", name)
		}
		profiles = append(profiles, profile)
	}
	return profiles, nil
}

// calculateSkewness computes sample skewness using the adjusted Fisher-Pearson coefficient
func calculateSkewness(data []float64, mean, stdDev float64) float64 {
	if len(data) < 3 || stdDev == 0 {
		return 0
	}

	n := float64(len(data))
	var m2, m3 float64
	for _, x := range data {
		d := x - mean
		m2 += d * d
		m3 += d * d * d
	}
	m2 /= n
	m3 /= n

	g1 := m3 / math.Pow(m2, 1.5)
	return g1 * math.Sqrt(n*(n-1)) / (n - 2)
}

// calculateKurtosis computes bias-corrected sample excess kurtosis
func calculateKurtosis(data []float64, mean, stdDev float64) float64 {
	if len(data) < 4 || stdDev == 0 {
		return 0
	}

	n := float64(len(data))
	var m2, m4 float64
	for _, x := range data {
		d := x - mean
		m2 += d * d
		m4 += d * d * d * d
	}
	m2 /= n
	m4 /= n

	g2 := m4/(m2*m2) - 3
	return (n - 1) / ((n - 2) * (n - 3)) * ((n+1)*g2 + 6)
}
