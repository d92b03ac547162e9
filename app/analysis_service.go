package app

import (
	"context"
	"io"

	"smokestat/domain/core"
	domainDataset "smokestat/domain/dataset"
	"smokestat/internal"
	"smokestat/internal/charts"
	"smokestat/internal/config"
	"smokestat/internal/dataset"
	"smokestat/internal/errors"
	"smokestat/internal/page"
	"smokestat/internal/profiling"
	"smokestat/internal/regression"
	"smokestat/internal/report"
	"smokestat/internal/snapshot"

	"github.com/jonboulle/clockwork"
)

// PageTitle heads the rendered page
const PageTitle = "Smoking, Unemployment and Lung Cancer Incidence"

// Figure and control IDs on the page
const (
	TimeSeriesID = "timeseries"
	SliderID     = "year-filter"
)

// Model is one regression the analysis fits and draws
type Model struct {
	ID      string
	Title   string
	XLabel  string
	Formula regression.Formula
}

// ResponseLabel is the y axis label of both regression figures
const ResponseLabel = "Lung Cancer Per 100,000"

// Models lists the regressions in page order
var Models = []Model{
	{
		ID:      "smokers-regression",
		Title:   "Smoking vs. Lung Cancer Rate Regression",
		XLabel:  "% Smokers",
		Formula: regression.MustParseFormula("LungCancerPer100 ~ PercentSmokers"),
	},
	{
		ID:      "unemployment-regression",
		Title:   "Unemployment vs. Lung Cancer Rate Regression",
		XLabel:  "Unemployment Rate",
		Formula: regression.MustParseFormula("LungCancerPer100 ~ UnemploymentRate"),
	},
}

// ModelRun holds everything produced for one model
type ModelRun struct {
	Model       Model
	Result      *regression.Result
	Predictions *regression.PredictionSummary
	Summary     *report.ModelSummary
	Figure      charts.Figure
}

// AnalysisResult is the outcome of a successful run
type AnalysisResult struct {
	Table      *domainDataset.Table
	TableHash  core.Hash
	ReportID   core.ReportID
	Profiles   []profiling.ColumnProfile
	Models     []ModelRun
	TimeSeries charts.Figure
	Slider     charts.RangeSlider
	PagePath   string
	Snapshots  []string
}

// AnalysisService runs load, fit, summarize, chart and write in sequence
type AnalysisService struct {
	cfg         *config.Config
	logger      *internal.Logger
	stdout      io.Writer
	stageRunner *StageRunner
	loader      *dataset.Loader
	analyzer    *profiling.DistributionAnalyzer
	summarizer  *report.Summarizer
	ranges      charts.TimeSeriesRanges
}

// NewAnalysisService wires the stages. Console summaries go to stdout.
func NewAnalysisService(cfg *config.Config, logger *internal.Logger, clock clockwork.Clock, stdout io.Writer) *AnalysisService {
	return &AnalysisService{
		cfg:         cfg,
		logger:      logger,
		stdout:      stdout,
		stageRunner: NewStageRunner(logger, clock),
		loader:      dataset.NewLoader(logger),
		analyzer:    profiling.NewDistributionAnalyzer(),
		summarizer:  report.NewSummarizer(clock),
		ranges:      charts.DefaultTimeSeriesRanges(),
	}
}

// Run executes the full analysis and writes the page
func (s *AnalysisService) Run(ctx context.Context) (*AnalysisResult, error) {
	if err := config.Validate(s.cfg); err != nil {
		return nil, err
	}
	res := &AnalysisResult{PagePath: s.cfg.Output.PagePath}

	stages := []struct {
		name string
		fn   func() error
	}{
		{"load", func() error { return s.load(res) }},
		{"profile", func() error { return s.profile(res) }},
		{"fit", func() error { return s.fit(res) }},
		{"chart", func() error { return s.chart(res) }},
		{"console", func() error { return s.printSummaries(res) }},
		{"snapshot", func() error { return s.snapshot(res) }},
		{"write", func() error { return s.write(res) }},
	}
	for _, st := range stages {
		if err := s.stageRunner.Run(ctx, st.name, st.fn); err != nil {
			return nil, err
		}
	}

	s.logger.Info("analysis complete", "report_id", res.ReportID, "page", res.PagePath)
	return res, nil
}

func (s *AnalysisService) load(res *AnalysisResult) error {
	tbl, err := s.loader.LoadFile(s.cfg.Data.InputPath)
	if err != nil {
		return err
	}
	res.Table = tbl
	res.TableHash = core.ComputeTableHash(tbl)
	res.ReportID = core.NewReportID(res.TableHash)
	s.logger.Debug("table fingerprint", "hash", res.TableHash.Short(), "report_id", res.ReportID)
	return nil
}

func (s *AnalysisService) profile(res *AnalysisResult) error {
	profiles, err := s.analyzer.AnalyzeTable(res.Table)
	if err != nil {
		return err
	}
	res.Profiles = profiles
	return nil
}

func (s *AnalysisService) fit(res *AnalysisResult) error {
	for _, m := range Models {
		fit, err := regression.Fit(res.Table, m.Formula)
		if err != nil {
			return errors.Wrapf(err, "model %s", m.Formula)
		}
		pred, err := regression.Summarize(fit, s.cfg.Analysis.Alpha)
		if err != nil {
			return errors.Wrapf(err, "model %s", m.Formula)
		}
		s.logger.Debug("model fitted", "formula", m.Formula.String(),
			"intercept", fit.Intercept.Value, "slope", fit.Slope.Value, "r_squared", fit.RSquared)

		res.Models = append(res.Models, ModelRun{
			Model:       m,
			Result:      fit,
			Predictions: pred,
			Summary:     s.summarizer.Summarize(fit),
		})
	}
	return nil
}

func (s *AnalysisService) chart(res *AnalysisResult) error {
	res.TimeSeries = charts.TimeSeriesFigure(TimeSeriesID, res.Table, s.ranges)
	res.Slider = charts.YearSlider(SliderID, TimeSeriesID, res.Table)
	for i := range res.Models {
		run := &res.Models[i]
		run.Figure = charts.RegressionFigure(run.Model.ID, run.Model.Title, run.Model.XLabel, ResponseLabel, run.Result, run.Predictions)
	}
	return nil
}

func (s *AnalysisService) printSummaries(res *AnalysisResult) error {
	if !s.cfg.Output.PrintSummary {
		s.logger.Debug("console summary disabled")
		return nil
	}
	for _, run := range res.Models {
		report.PrintSummary(s.stdout, run.Summary)
	}
	report.PrintProfile(s.stdout, report.ProfileRows(res.Profiles))
	return nil
}

func (s *AnalysisService) snapshot(res *AnalysisResult) error {
	if s.cfg.Output.SnapshotDir == "" {
		return nil
	}
	figures := make([]charts.Figure, 0, len(res.Models))
	for _, run := range res.Models {
		figures = append(figures, run.Figure)
	}
	paths, err := snapshot.NewExporter(s.cfg.Output.SnapshotDir).Export(figures...)
	if err != nil {
		return err
	}
	res.Snapshots = paths
	s.logger.Info("snapshots written", "dir", s.cfg.Output.SnapshotDir, "count", len(paths))
	return nil
}

func (s *AnalysisService) write(res *AnalysisResult) error {
	w, err := page.NewWriter()
	if err != nil {
		return err
	}
	if err := w.WriteFile(res.PagePath, s.document(res)); err != nil {
		return err
	}
	s.logger.Info("page written", "path", res.PagePath)
	return nil
}

func (s *AnalysisService) document(res *AnalysisResult) *page.Document {
	doc := &page.Document{
		Title:      PageTitle,
		TimeSeries: res.TimeSeries,
		Slider:     res.Slider,
		Profile:    report.ToHTML(report.ProfileMarkdown(report.ProfileHeader, report.ProfileRows(res.Profiles))),
		ReportID:   res.ReportID,
		TableHash:  res.TableHash,
		Source:     res.Table.Source,
	}
	for _, run := range res.Models {
		doc.Regressions = append(doc.Regressions, run.Figure)
		doc.Summaries = append(doc.Summaries, report.ToHTML(run.Summary.Markdown()))
	}
	return doc
}
