package testkit

import (
	"encoding/csv"
	"fmt"
	"math"
	"math/rand"
	"os"
	"path/filepath"
	"strconv"

	"smokestat/domain/dataset"

	"github.com/xuri/excelize/v2"
)

// LinearSpec describes a synthetic table where each response is an exact
// (optionally noisy) linear function of a predictor.
type LinearSpec struct {
	Rows      int
	FirstYear int
	// LungCancerPer100 = Intercept + SmokersSlope*PercentSmokers + noise
	Intercept    float64
	SmokersSlope float64
	Noise        float64 // standard deviation of gaussian noise, 0 for exact data
	Seed         int64
}

// DefaultLinearSpec returns an exact, noise-free specification
func DefaultLinearSpec() LinearSpec {
	return LinearSpec{
		Rows:         12,
		FirstYear:    1990,
		Intercept:    40,
		SmokersSlope: 2.5,
	}
}

// LinearTable builds a table following spec. Unemployment follows its own
// exact line against the response so both regressions see zero residuals
// when Noise is 0.
func LinearTable(spec LinearSpec) *dataset.Table {
	rng := rand.New(rand.NewSource(spec.Seed))
	obs := make([]dataset.Observation, spec.Rows)
	for i := range obs {
		smokers := 30 - 0.5*float64(i)
		cancer := spec.Intercept + spec.SmokersSlope*smokers
		if spec.Noise > 0 {
			cancer += rng.NormFloat64() * spec.Noise
		}
		obs[i] = dataset.Observation{
			Year:             spec.FirstYear + i,
			PercentSmokers:   smokers,
			LungCancerPer100: cancer,
			// Chosen so that the exact response also equals 10 + 8*UnemploymentRate.
			UnemploymentRate: (spec.Intercept + spec.SmokersSlope*smokers - 10) / 8,
		}
	}
	return &dataset.Table{Source: "synthetic", Observations: obs}
}

// SampleTable returns a realistic 1985-2011 table shaped like the survey data
// the tool is built for: smoking declines, incidence lags it, unemployment cycles.
func SampleTable() *dataset.Table {
	rng := rand.New(rand.NewSource(1985))
	obs := make([]dataset.Observation, 0, 27)
	for year := 1985; year <= 2011; year++ {
		t := float64(year - 1985)
		smokers := 30.1 - 0.42*t + rng.NormFloat64()*0.4
		cancer := 55 + 2.05*smokers + rng.NormFloat64()*2.5
		unemployment := 6.2 + 1.6*math.Sin(t/3.5) + rng.NormFloat64()*0.3
		obs = append(obs, dataset.Observation{
			Year:             year,
			PercentSmokers:   round(smokers, 1),
			LungCancerPer100: round(cancer, 1),
			UnemploymentRate: round(unemployment, 1),
		})
	}
	return &dataset.Table{Source: "sample", Observations: obs}
}

func round(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}

// Records renders a table as header + string rows in canonical column order
func Records(tbl *dataset.Table) [][]string {
	records := [][]string{append([]string(nil), dataset.RequiredColumns...)}
	for _, o := range tbl.Observations {
		records = append(records, []string{
			strconv.Itoa(o.Year),
			strconv.FormatFloat(o.PercentSmokers, 'g', -1, 64),
			strconv.FormatFloat(o.LungCancerPer100, 'g', -1, 64),
			strconv.FormatFloat(o.UnemploymentRate, 'g', -1, 64),
		})
	}
	return records
}

// WriteCSV writes records to dir/name and returns the path
func WriteCSV(dir, name string, records [][]string) (string, error) {
	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.WriteAll(records); err != nil {
		return "", err
	}
	return path, f.Close()
}

// WriteXLSX writes records to the first sheet of a new workbook at dir/name
func WriteXLSX(dir, name string, records [][]string) (string, error) {
	path := filepath.Join(dir, name)
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	for i, row := range records {
		for j, cell := range row {
			ref, err := excelize.CoordinatesToCellName(j+1, i+1)
			if err != nil {
				return "", err
			}
			if err := f.SetCellValue(sheet, ref, cell); err != nil {
				return "", fmt.Errorf("set %s: %w", ref, err)
			}
		}
	}
	if err := f.SaveAs(path); err != nil {
		return "", err
	}
	return path, nil
}
