package excel

import (
	"path/filepath"
	"strings"
	"testing"

	"smokestat/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestNewDataReader_FileType(t *testing.T) {
	assert.Equal(t, FileTypeXLSX, NewDataReader("data/Table.XLSX").FileType())
	assert.Equal(t, FileTypeCSV, NewDataReader("Table1_SmokingVsCancer.csv").FileType())
	assert.Equal(t, FileTypeCSV, NewDataReader("table.txt").FileType())
}

func TestReadCSV_TrimsHeadersAndSkipsBlankRows(t *testing.T) {
	in := "\ufeffYear , PercentSmokers\n1990, 30.5\n,\n1991,29.0\n"

	data, err := ReadCSV(strings.NewReader(in))
	require.NoError(t, err)

	assert.Equal(t, []string{"Year", "PercentSmokers"}, data.Headers)
	require.Len(t, data.Rows, 2)
	assert.Equal(t, "30.5", data.Rows[0]["PercentSmokers"])
	assert.Equal(t, "1991", data.Rows[1]["Year"])
	assert.True(t, data.HasColumn("Year"))
	assert.False(t, data.HasColumn("UnemploymentRate"))
}

func TestReadCSV_Empty(t *testing.T) {
	_, err := ReadCSV(strings.NewReader(""))
	require.Error(t, err)
	assert.Equal(t, errors.CodeInvalidInput, errors.GetCode(err))
}

func TestReadData_Missing(t *testing.T) {
	_, err := NewDataReader(filepath.Join(t.TempDir(), "nope.csv")).ReadData()
	require.Error(t, err)
	assert.Equal(t, errors.CodeInputNotFound, errors.GetCode(err))
}

func TestReadData_XLSXFirstSheet(t *testing.T) {
	path := filepath.Join(t.TempDir(), "table.xlsx")
	f := excelize.NewFile()
	require.NoError(t, f.SetSheetRow("Sheet1", "A1", &[]string{"Year", "PercentSmokers"}))
	require.NoError(t, f.SetSheetRow("Sheet1", "A2", &[]string{"1990", "30.5"}))
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())

	data, err := NewDataReader(path).ReadData()
	require.NoError(t, err)
	assert.Equal(t, "Sheet1", data.Sheet)
	require.Len(t, data.Rows, 1)
	assert.Equal(t, "30.5", data.Rows[0]["PercentSmokers"])
}
