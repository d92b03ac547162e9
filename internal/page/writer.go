// Package page assembles the figures, summaries and profile into one
// self-contained HTML document.
package page

import (
	"bytes"
	"embed"
	"encoding/json"
	"html/template"
	"io"
	"os"
	"path/filepath"

	"smokestat/domain/core"
	"smokestat/internal/charts"
	"smokestat/internal/errors"
)

//go:embed assets/*
var assets embed.FS

const templateName = "page.html.tmpl"

// Document is everything one page shows
type Document struct {
	Title       string
	TimeSeries  charts.Figure
	Slider      charts.RangeSlider
	Regressions []charts.Figure
	Summaries   []template.HTML
	Profile     template.HTML
	ReportID    core.ReportID
	TableHash   core.Hash
	Source      string
}

// Spec is the JSON payload handed to the page script
type Spec struct {
	Figures []charts.Figure      `json:"figures"`
	Sliders []charts.RangeSlider `json:"sliders"`
}

type view struct {
	*Document
	Spec       template.JS
	Script     template.JS
	Stylesheet template.CSS
}

// Writer renders documents with the embedded template, script and stylesheet
type Writer struct {
	tmpl   *template.Template
	script template.JS
	css    template.CSS
}

// NewWriter parses the embedded assets
func NewWriter() (*Writer, error) {
	tmpl, err := template.New(templateName).ParseFS(assets, "assets/"+templateName)
	if err != nil {
		return nil, errors.RenderError("failed to parse page template", err)
	}
	script, err := assets.ReadFile("assets/plot.js")
	if err != nil {
		return nil, errors.RenderError("failed to read page script", err)
	}
	css, err := assets.ReadFile("assets/page.css")
	if err != nil {
		return nil, errors.RenderError("failed to read page stylesheet", err)
	}
	return &Writer{
		tmpl:   tmpl,
		script: template.JS(script),
		css:    template.CSS(css),
	}, nil
}

// Render writes the complete document to w. Nothing is written when
// rendering fails part way.
func (w *Writer) Render(out io.Writer, doc *Document) error {
	if doc == nil {
		return errors.RenderError("nil document", nil)
	}
	figures := make([]charts.Figure, 0, len(doc.Regressions)+1)
	figures = append(figures, doc.TimeSeries)
	figures = append(figures, doc.Regressions...)

	// Non-finite values must fail the render, never reach the page as null.
	spec, err := json.Marshal(Spec{Figures: figures, Sliders: []charts.RangeSlider{doc.Slider}})
	if err != nil {
		return errors.RenderError("failed to encode chart spec", err)
	}

	v := view{
		Document:   doc,
		Spec:       template.JS(spec),
		Script:     w.script,
		Stylesheet: w.css,
	}

	var buf bytes.Buffer
	if err := w.tmpl.ExecuteTemplate(&buf, templateName, v); err != nil {
		return errors.RenderError("failed to execute page template", err)
	}
	if !bytes.Contains(buf.Bytes(), []byte("</html>")) {
		return errors.RenderError("rendered page is incomplete", nil)
	}
	if _, err := out.Write(buf.Bytes()); err != nil {
		return errors.Wrap(err, "failed to write page")
	}
	return nil
}

// WriteFile renders doc to path, replacing any existing file. The page is
// written to a temporary file in the same directory and renamed into place.
func (w *Writer) WriteFile(path string, doc *Document) error {
	var buf bytes.Buffer
	if err := w.Render(&buf, doc); err != nil {
		return err
	}

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return errors.WriteError(path, err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(buf.Bytes()); err != nil {
		tmp.Close()
		return errors.WriteError(path, err)
	}
	if err := tmp.Chmod(0o644); err != nil {
		tmp.Close()
		return errors.WriteError(path, err)
	}
	if err := tmp.Close(); err != nil {
		return errors.WriteError(path, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return errors.WriteError(path, err)
	}
	return nil
}
