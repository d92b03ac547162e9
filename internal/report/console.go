package report

import (
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"
)

// PrintSummary writes the model summary to w as bordered text tables
func PrintSummary(w io.Writer, m *ModelSummary) {
	fmt.Fprintf(w, "%s: %s\n", m.Title, m.Formula)

	info := newTable(w)
	for _, row := range m.Rows() {
		info.Append(row)
	}
	info.Render()

	coefs := newTable(w)
	coefs.SetHeader(CoefficientHeader)
	for _, row := range m.Coefficients {
		coefs.Append(row)
	}
	coefs.Render()
	fmt.Fprintln(w)
}

// PrintProfile writes column profiles to w
func PrintProfile(w io.Writer, rows [][]string) {
	fmt.Fprintln(w, "Data profile")
	t := newTable(w)
	t.SetHeader(ProfileHeader)
	for _, row := range rows {
		t.Append(row)
	}
	t.Render()
	fmt.Fprintln(w)
}

func newTable(w io.Writer) *tablewriter.Table {
	t := tablewriter.NewWriter(w)
	t.SetAutoWrapText(false)
	t.SetAutoFormatHeaders(false)
	t.SetHeaderAlignment(tablewriter.ALIGN_CENTER)
	t.SetAlignment(tablewriter.ALIGN_LEFT)
	t.SetBorder(true)
	return t
}
