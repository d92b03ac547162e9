package dataset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleTable() *Table {
	return &Table{Observations: []Observation{
		{Year: 1990, PercentSmokers: 25.5, LungCancerPer100: 100, UnemploymentRate: 5.6},
		{Year: 1991, PercentSmokers: 25.7, LungCancerPer100: 98, UnemploymentRate: 6.8},
		{Year: 1991, PercentSmokers: 26.5, LungCancerPer100: 97, UnemploymentRate: 7.5},
		{Year: 1989, PercentSmokers: 27.5, LungCancerPer100: 96, UnemploymentRate: 5.3},
	}}
}

func TestTable_Column(t *testing.T) {
	tbl := sampleTable()

	years, err := tbl.Column(ColumnYear)
	require.NoError(t, err)
	assert.Equal(t, []float64{1990, 1991, 1991, 1989}, years)

	assert.Equal(t, []float64{100, 98, 97, 96}, tbl.MustColumn(ColumnLungCancerPer100))
	assert.Equal(t, []float64{25.5, 25.7, 26.5, 27.5}, tbl.MustColumn(ColumnPercentSmokers))
	assert.Equal(t, []float64{5.6, 6.8, 7.5, 5.3}, tbl.MustColumn(ColumnUnemploymentRate))

	_, err = tbl.Column("Income")
	assert.Error(t, err)
	assert.Panics(t, func() { tbl.MustColumn("Income") })
}

func TestTable_ColumnEmptyTable(t *testing.T) {
	tbl := &Table{}

	col, err := tbl.Column(ColumnPercentSmokers)
	require.NoError(t, err)
	assert.Empty(t, col)

	_, err = tbl.Column("Income")
	assert.Error(t, err)
}

func TestTable_YearSpanAndOrder(t *testing.T) {
	tbl := sampleTable()

	first, last := tbl.YearSpan()
	assert.Equal(t, 1989, first)
	assert.Equal(t, 1991, last)
	assert.Equal(t, []int{2, 3}, tbl.UnorderedYears())
	assert.Equal(t, 4, tbl.Len())

	empty := &Table{}
	first, last = empty.YearSpan()
	assert.Zero(t, first)
	assert.Zero(t, last)
	assert.Empty(t, empty.UnorderedYears())
}
