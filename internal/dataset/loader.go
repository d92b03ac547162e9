// Package dataset turns raw tabular files into the typed observation table.
package dataset

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"smokestat/adapters/excel"
	domainDataset "smokestat/domain/dataset"
	"smokestat/internal"
	"smokestat/internal/errors"
)

// RowSource yields the raw contents of a tabular file
type RowSource interface {
	ReadData() (*excel.ExcelData, error)
	Path() string
}

// Loader reads and validates the observation table
type Loader struct {
	logger *internal.Logger
}

// NewLoader creates a loader that reports through logger
func NewLoader(logger *internal.Logger) *Loader {
	return &Loader{logger: logger}
}

// LoadFile reads a CSV or XLSX file from path
func (l *Loader) LoadFile(path string) (*domainDataset.Table, error) {
	return l.Load(excel.NewDataReader(path))
}

// Load reads src and converts it into a Table. Every required column must be
// present and every cell in them must parse as a number.
func (l *Loader) Load(src RowSource) (*domainDataset.Table, error) {
	raw, err := src.ReadData()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read %s", src.Path())
	}

	tbl, err := FromRaw(raw)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid table %s", src.Path())
	}
	tbl.Source = src.Path()

	l.logger.Info("table loaded", "path", src.Path(), "rows", tbl.Len(), "columns", len(raw.Headers))
	if rows := tbl.UnorderedYears(); len(rows) > 0 {
		l.logger.Warn("years are not unique and ascending", "rows", rows)
	}
	return tbl, nil
}

// FromRaw validates the header and coerces every row
func FromRaw(raw *excel.ExcelData) (*domainDataset.Table, error) {
	var missing []string
	for _, col := range domainDataset.RequiredColumns {
		if !raw.HasColumn(col) {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return nil, errors.SchemaInvalid(fmt.Sprintf("missing required columns: %s", strings.Join(missing, ", ")))
	}

	obs := make([]domainDataset.Observation, 0, len(raw.Rows))
	for i, row := range raw.Rows {
		// Row numbers in messages are 1-based and count the header line.
		line := i + 2

		year, err := parseInt(row, domainDataset.ColumnYear, line)
		if err != nil {
			return nil, err
		}
		smokers, err := parseFloat(row, domainDataset.ColumnPercentSmokers, line)
		if err != nil {
			return nil, err
		}
		cancer, err := parseFloat(row, domainDataset.ColumnLungCancerPer100, line)
		if err != nil {
			return nil, err
		}
		unemployment, err := parseFloat(row, domainDataset.ColumnUnemploymentRate, line)
		if err != nil {
			return nil, err
		}

		obs = append(obs, domainDataset.Observation{
			Year:             year,
			PercentSmokers:   smokers,
			LungCancerPer100: cancer,
			UnemploymentRate: unemployment,
		})
	}

	return &domainDataset.Table{Observations: obs}, nil
}

func cell(row excel.RawRowData, column string, line int) (string, error) {
	value := row[column]
	if value == "" {
		return "", errors.InvalidInput(fmt.Sprintf("row %d: %s is empty", line, column))
	}
	return value, nil
}

func parseFloat(row excel.RawRowData, column string, line int) (float64, error) {
	value, err := cell(row, column, line)
	if err != nil {
		return 0, err
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, errors.InvalidInput(fmt.Sprintf("row %d: %s=%q is not a number", line, column, value))
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, errors.InvalidInput(fmt.Sprintf("row %d: %s=%q is not a finite number", line, column, value))
	}
	return f, nil
}

// parseInt accepts "1990" as well as the "1990.0" spreadsheets tend to produce.
func parseInt(row excel.RawRowData, column string, line int) (int, error) {
	f, err := parseFloat(row, column, line)
	if err != nil {
		return 0, err
	}
	if f != float64(int(f)) {
		return 0, errors.InvalidInput(fmt.Sprintf("row %d: %s=%v is not a whole number", line, column, f))
	}
	return int(f), nil
}
