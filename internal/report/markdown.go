package report

import (
	"html/template"
	"strings"

	"github.com/gomarkdown/markdown"
	mdhtml "github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"
)

// Markdown renders the summary as a heading plus two pipe tables
func (m *ModelSummary) Markdown() string {
	var b strings.Builder
	b.WriteString("#### " + m.Title + ": " + escapeCell(m.Formula.String()) + "\n\n")

	rows := m.Rows()
	if len(rows) > 0 {
		writeTable(&b, rows[0], rows[1:])
		b.WriteString("\n")
	}
	writeTable(&b, CoefficientHeader, m.Coefficients)
	return b.String()
}

// ProfileMarkdown renders column profiles as one pipe table
func ProfileMarkdown(header []string, rows [][]string) string {
	var b strings.Builder
	writeTable(&b, header, rows)
	return b.String()
}

// ToHTML converts Markdown to an HTML fragment safe to embed in the page.
// Raw HTML in the source is escaped, not passed through.
func ToHTML(md string) template.HTML {
	p := parser.NewWithExtensions(parser.CommonExtensions)
	renderer := mdhtml.NewRenderer(mdhtml.RendererOptions{
		Flags: mdhtml.CommonFlags | mdhtml.SkipHTML,
	})
	return template.HTML(markdown.ToHTML([]byte(md), p, renderer))
}

func writeTable(b *strings.Builder, header []string, rows [][]string) {
	writeRow(b, header)
	sep := make([]string, len(header))
	for i := range sep {
		sep[i] = "---"
	}
	writeRow(b, sep)
	for _, row := range rows {
		writeRow(b, row)
	}
}

func writeRow(b *strings.Builder, cells []string) {
	b.WriteString("|")
	for _, c := range cells {
		b.WriteString(" ")
		if c == "" {
			c = " "
		}
		b.WriteString(escapeCell(c))
		b.WriteString(" |")
	}
	b.WriteString("\n")
}

// escapeCell keeps pipes and markdown emphasis characters literal
func escapeCell(s string) string {
	r := strings.NewReplacer("|", `\|`, "*", `\*`, "_", `\_`, "[", `\[`, "]", `\]`)
	return r.Replace(s)
}
