package dataset

import (
	"path/filepath"
	"strings"
	"testing"

	"smokestat/adapters/excel"
	domainDataset "smokestat/domain/dataset"
	"smokestat/internal"
	"smokestat/internal/errors"
	"smokestat/internal/testkit"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLoader() *Loader {
	return NewLoader(internal.DiscardLogger())
}

func TestLoadFile_CSV(t *testing.T) {
	want := testkit.SampleTable()
	path, err := testkit.WriteCSV(t.TempDir(), "table.csv", testkit.Records(want))
	require.NoError(t, err)

	got, err := newTestLoader().LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, path, got.Source)
	assert.Equal(t, want.Observations, got.Observations)
}

func TestLoadFile_XLSXMatchesCSV(t *testing.T) {
	dir := t.TempDir()
	records := testkit.Records(testkit.SampleTable())
	csvPath, err := testkit.WriteCSV(dir, "table.csv", records)
	require.NoError(t, err)
	xlsxPath, err := testkit.WriteXLSX(dir, "table.xlsx", records)
	require.NoError(t, err)

	fromCSV, err := newTestLoader().LoadFile(csvPath)
	require.NoError(t, err)
	fromXLSX, err := newTestLoader().LoadFile(xlsxPath)
	require.NoError(t, err)

	assert.Equal(t, fromCSV.Observations, fromXLSX.Observations)
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := newTestLoader().LoadFile(filepath.Join(t.TempDir(), "nope.csv"))
	require.Error(t, err)
	assert.Equal(t, errors.CodeInputNotFound, errors.GetCode(err))
}

func TestFromRaw_MissingColumns(t *testing.T) {
	raw, err := excel.ReadCSV(strings.NewReader("Year,PercentSmokers\n1990,25\n"))
	require.NoError(t, err)

	_, err = FromRaw(raw)
	require.Error(t, err)
	assert.Equal(t, errors.CodeSchemaInvalid, errors.GetCode(err))
	assert.Contains(t, err.Error(), "LungCancerPer100, UnemploymentRate")
}

func TestFromRaw_BadCells(t *testing.T) {
	tests := []struct {
		name string
		csv  string
		want string
	}{
		{"not a number", "Year,PercentSmokers,LungCancerPer100,UnemploymentRate\n1990,lots,100,5\n", `row 2: PercentSmokers="lots" is not a number`},
		{"empty cell", "Year,PercentSmokers,LungCancerPer100,UnemploymentRate\n1990,25,,5\n", "row 2: LungCancerPer100 is empty"},
		{"fractional year", "Year,PercentSmokers,LungCancerPer100,UnemploymentRate\n1990.5,25,100,5\n", "Year=1990.5 is not a whole number"},
		{"nan", "Year,PercentSmokers,LungCancerPer100,UnemploymentRate\n1990,25,NaN,5\n", `row 2: LungCancerPer100="NaN" is not a finite number`},
		{"infinity", "Year,PercentSmokers,LungCancerPer100,UnemploymentRate\n1990,+Inf,100,5\n", `row 2: PercentSmokers="+Inf" is not a finite number`},
		{"infinite year", "Year,PercentSmokers,LungCancerPer100,UnemploymentRate\ninf,25,100,5\n", `row 2: Year="inf" is not a finite number`},
		{"short row", "Year,PercentSmokers,LungCancerPer100,UnemploymentRate\n1990,25,100,5\n1991,24\n", "row 3: LungCancerPer100 is empty"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw, err := excel.ReadCSV(strings.NewReader(tt.csv))
			require.NoError(t, err)

			_, err = FromRaw(raw)
			require.Error(t, err)
			assert.Equal(t, errors.CodeInvalidInput, errors.GetCode(err))
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestFromRaw_ExtraColumnsAndFloatYears(t *testing.T) {
	raw, err := excel.ReadCSV(strings.NewReader(
		" UnemploymentRate ,Notes,Year,LungCancerPer100,PercentSmokers\n5.5,ok,1990.0,101.2,25.1\n\n",
	))
	require.NoError(t, err)

	tbl, err := FromRaw(raw)
	require.NoError(t, err)
	assert.Equal(t, []domainDataset.Observation{
		{Year: 1990, PercentSmokers: 25.1, LungCancerPer100: 101.2, UnemploymentRate: 5.5},
	}, tbl.Observations)
}

func TestReadCSV_HeaderOnly(t *testing.T) {
	_, err := excel.ReadCSV(strings.NewReader("Year,PercentSmokers,LungCancerPer100,UnemploymentRate\n"))
	require.Error(t, err)
	assert.Equal(t, errors.CodeInvalidInput, errors.GetCode(err))
}
