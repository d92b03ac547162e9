package dataset

import (
	"fmt"
)

// Column names of the smoking/cancer table.
const (
	ColumnYear             = "Year"
	ColumnPercentSmokers   = "PercentSmokers"
	ColumnLungCancerPer100 = "LungCancerPer100"
	ColumnUnemploymentRate = "UnemploymentRate"
)

// RequiredColumns lists the columns every input table must carry, in canonical order.
var RequiredColumns = []string{
	ColumnYear,
	ColumnPercentSmokers,
	ColumnLungCancerPer100,
	ColumnUnemploymentRate,
}

// Observation is one row of the table, keyed by Year.
type Observation struct {
	Year             int
	PercentSmokers   float64
	LungCancerPer100 float64
	UnemploymentRate float64
}

// Table is the in-memory dataset in file order.
type Table struct {
	Source       string
	Observations []Observation
}

// Len returns the number of rows.
func (t *Table) Len() int {
	return len(t.Observations)
}

// Column returns the values of a named column in row order.
func (t *Table) Column(name string) ([]float64, error) {
	if !isColumn(name) {
		return nil, fmt.Errorf("unknown column %q", name)
	}
	out := make([]float64, len(t.Observations))
	for i, o := range t.Observations {
		switch name {
		case ColumnYear:
			out[i] = float64(o.Year)
		case ColumnPercentSmokers:
			out[i] = o.PercentSmokers
		case ColumnLungCancerPer100:
			out[i] = o.LungCancerPer100
		case ColumnUnemploymentRate:
			out[i] = o.UnemploymentRate
		}
	}
	return out, nil
}

// MustColumn is Column for names known at compile time.
func (t *Table) MustColumn(name string) []float64 {
	col, err := t.Column(name)
	if err != nil {
		panic(err)
	}
	return col
}

// YearSpan returns the smallest and largest Year in the table.
func (t *Table) YearSpan() (first, last int) {
	if len(t.Observations) == 0 {
		return 0, 0
	}
	first, last = t.Observations[0].Year, t.Observations[0].Year
	for _, o := range t.Observations[1:] {
		if o.Year < first {
			first = o.Year
		}
		if o.Year > last {
			last = o.Year
		}
	}
	return first, last
}

// UnorderedYears returns the row indices whose Year does not strictly exceed the previous row's.
func (t *Table) UnorderedYears() []int {
	var rows []int
	for i := 1; i < len(t.Observations); i++ {
		if t.Observations[i].Year <= t.Observations[i-1].Year {
			rows = append(rows, i)
		}
	}
	return rows
}

func isColumn(name string) bool {
	for _, c := range RequiredColumns {
		if c == name {
			return true
		}
	}
	return false
}
