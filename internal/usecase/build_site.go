package usecase

import (
	"context"
	"errors"
	"fmt"
	"path"
	"path/filepath"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/3-lines-studio/pagesmith/internal/adapters/cli"
	"github.com/3-lines-studio/pagesmith/internal/core"
	"github.com/3-lines-studio/pagesmith/internal/logger"
	"github.com/3-lines-studio/pagesmith/internal/stream"
	"github.com/3-lines-studio/pagesmith/internal/types"
)

const (
	ManifestFile = "manifest.json"
	AssetsDir    = "assets"
	siteRecordID = "_site"
)

type BuildInput struct {
	OutDir      string
	Concurrency int
	// FailFast stops the build at the first record that fails to render.
	FailFast bool
	// DryRun decodes, validates and renders every record but writes nothing.
	DryRun   bool
	Document core.DocumentOptions
}

type BuildOutput struct {
	Success  bool
	Pages    int
	Written  int
	Manifest *core.Manifest
	Error    error
}

type BuildService struct {
	templates []core.PageTemplate
	source    Source
	assets    Assets
	fs        FileSystem
	cli       CLIOutput
	log       logger.Logger
	metrics   Metrics
}

func NewBuildService(
	templates []core.PageTemplate,
	source Source,
	assets Assets,
	fsys FileSystem,
	out CLIOutput,
	log logger.Logger,
	recorder Metrics,
) *BuildService {
	return &BuildService{
		templates: templates,
		source:    source,
		assets:    assets,
		fs:        fsys,
		cli:       out,
		log:       log,
		metrics:   recorder,
	}
}

// job is one template applied to one prepared document.
type job struct {
	template core.PageTemplate
	recordID string
	doc      []byte
}

func (j job) label() string {
	return j.template.Name() + "/" + j.recordID
}

type rendered struct {
	page core.RenderedPage
	html string
}

func (s *BuildService) BuildSite(ctx context.Context, input BuildInput) BuildOutput {
	if input.DryRun {
		s.cli.PrintHeader("pagesmith validate")
	} else {
		s.cli.PrintHeader("pagesmith build")
	}

	if len(s.templates) == 0 {
		return BuildOutput{Error: core.ErrNoTemplates}
	}
	if input.Concurrency < 1 {
		input.Concurrency = 1
	}

	outputDir := input.OutDir
	if input.DryRun {
		outputDir = ""
	}
	report := cli.NewBuildReport(s.cli, outputDir)

	stepLoad := report.StartStep("Loading records")
	jobs, err := s.collectJobs(ctx)
	if err != nil {
		report.EndStep(stepLoad, false, err.Error())
		report.Render()
		return BuildOutput{Error: err}
	}
	report.EndStep(stepLoad, true, "")
	report.SetPageCount(len(jobs))
	s.log.Info("records loaded", logger.Int("pages", len(jobs)))

	stepRender := report.StartStep("Rendering pages")
	pages, renderErrs, err := s.renderAll(ctx, jobs, input, report)
	if err != nil {
		report.EndStep(stepRender, false, err.Error())
		report.Render()
		return BuildOutput{Pages: len(jobs), Error: err}
	}
	report.EndStep(stepRender, len(renderErrs) == 0, "")

	out := BuildOutput{Pages: len(jobs)}
	if input.DryRun {
		report.Render()
		out.Error = errors.Join(renderErrs...)
		out.Success = out.Error == nil
		return out
	}

	stepWrite := report.StartStep("Writing pages")
	manifest, writeErrs, err := s.writePages(input, pages, report)
	if err != nil {
		report.EndStep(stepWrite, false, err.Error())
		report.Render()
		out.Error = err
		return out
	}
	report.EndStep(stepWrite, len(writeErrs) == 0, "")
	out.Manifest = manifest
	out.Written = len(manifest.Pages)

	if s.assets != nil {
		stepAssets := report.StartStep("Copying assets")
		if err := s.copyAssets(input.OutDir); err != nil {
			report.AddWarning("assets", "Failed to copy assets", []string{err.Error()})
			report.EndStep(stepAssets, false, err.Error())
		} else {
			report.EndStep(stepAssets, true, "")
		}
	}

	if len(renderErrs) == 0 && len(writeErrs) == 0 {
		s.pruneStale(input.OutDir, manifest)
	}

	data, err := manifest.Marshal()
	if err == nil {
		err = s.fs.WriteFile(filepath.Join(input.OutDir, ManifestFile), data, 0o644)
	}
	if err != nil {
		report.Render()
		out.Error = fmt.Errorf("write manifest: %w", err)
		return out
	}

	report.Render()

	out.Error = errors.Join(append(renderErrs, writeErrs...)...)
	out.Success = out.Error == nil
	s.log.Info("build finished",
		logger.Int("pages", out.Pages),
		logger.Int("written", out.Written),
		logger.Bool("success", out.Success),
	)
	return out
}

// collectJobs pairs each template with the documents it renders. Templates
// without a stream render once from the site record alone.
func (s *BuildService) collectJobs(ctx context.Context) ([]job, error) {
	site, err := s.source.Site(ctx)
	if err != nil {
		return nil, err
	}

	var docs [][]byte
	var jobs []job
	for _, tmpl := range s.templates {
		cfg := tmpl.Config()
		if cfg.Stream == nil {
			doc, err := stream.SiteDocument(site)
			if err != nil {
				return nil, err
			}
			jobs = append(jobs, job{template: tmpl, recordID: siteRecordID, doc: doc})
			continue
		}

		if docs == nil {
			if docs, err = s.source.Documents(ctx); err != nil {
				return nil, err
			}
		}
		for _, raw := range docs {
			doc, ok, err := stream.Prepare(*cfg.Stream, raw, site)
			if err != nil {
				return nil, fmt.Errorf("%s: record %q: %w", tmpl.Name(), stream.DocumentID(raw), err)
			}
			if ok {
				jobs = append(jobs, job{template: tmpl, recordID: stream.DocumentID(raw), doc: doc})
			}
		}
	}
	return jobs, nil
}

// renderAll renders every job on a bounded pool. Failed records are reported
// and collected; the returned error is non-nil only when the build must stop.
func (s *BuildService) renderAll(ctx context.Context, jobs []job, input BuildInput, report *cli.BuildReport) ([]*rendered, []error, error) {
	results := make([]*rendered, len(jobs))

	var mu sync.Mutex
	var recordErrs []error

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(input.Concurrency)

	for i, j := range jobs {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			r, err := s.render(j, input.Document)
			if err != nil {
				s.reportRecordError(report, j, err)
				if input.FailFast {
					return err
				}
				mu.Lock()
				recordErrs = append(recordErrs, err)
				mu.Unlock()
				return nil
			}

			results[i] = r
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return results, recordErrs, nil
}

func (s *BuildService) render(j job, opts core.DocumentOptions) (*rendered, error) {
	start := time.Now()
	page, err := j.template.Render(j.doc)
	if err == nil {
		var doc string
		doc, err = core.RenderDocument(page, opts)
		if err == nil {
			s.metrics.ObserveRender(j.template.Name(), time.Since(start), nil)
			return &rendered{page: page, html: doc}, nil
		}
	}
	s.metrics.ObserveRender(j.template.Name(), time.Since(start), err)
	return nil, err
}

func (s *BuildService) reportRecordError(report *cli.BuildReport, j job, err error) {
	s.log.Error("render failed",
		logger.String("template", j.template.Name()),
		logger.String("record_id", j.recordID),
		logger.Error(err),
	)

	var verr *types.ValidationError
	if errors.As(err, &verr) {
		details := make([]string, 0, len(verr.Fields))
		for _, f := range verr.Fields {
			details = append(details, fmt.Sprintf("%s (%s)", f.Field, f.Rule))
		}
		report.AddError(j.label(), "Invalid record", details)
		return
	}
	report.AddError(j.label(), "Render failed", []string{err.Error()})
}

// writePages writes rendered pages in job order. Two pages claiming the same
// output path is an error for the second one.
func (s *BuildService) writePages(input BuildInput, pages []*rendered, report *cli.BuildReport) (*core.Manifest, []error, error) {
	if err := s.fs.MkdirAll(input.OutDir, 0o755); err != nil {
		return nil, nil, fmt.Errorf("create output dir: %w", err)
	}

	manifest := core.NewManifest()
	var errs []error
	for _, r := range pages {
		if r == nil {
			continue
		}
		label := r.page.Template + "/" + r.page.RecordID

		if err := core.ValidateOutputPath(r.page.Path); err != nil {
			err = fmt.Errorf("%s: invalid output path %q: %w", label, r.page.Path, err)
			report.AddError(label, "Invalid output path", []string{err.Error()})
			errs = append(errs, err)
			continue
		}

		route := core.RouteForPath(r.page.Path)
		if prev, ok := manifest.Pages[route]; ok {
			err := fmt.Errorf("%s: %w %q (already written by %s/%s)", label, core.ErrDuplicatePath, r.page.Path, prev.Template, prev.RecordID)
			report.AddError(label, "Duplicate output path", []string{err.Error()})
			errs = append(errs, err)
			continue
		}

		data := []byte(r.html)
		if err := s.fs.WriteFile(core.OutputFile(input.OutDir, r.page.Path), data, 0o644); err != nil {
			if input.FailFast {
				return nil, nil, fmt.Errorf("%s: %w", label, err)
			}
			report.AddError(label, "Write failed", []string{err.Error()})
			errs = append(errs, fmt.Errorf("%s: %w", label, err))
			continue
		}

		manifest.Pages[route] = core.ManifestEntry{
			Template: r.page.Template,
			RecordID: r.page.RecordID,
			File:     r.page.Path,
			Hash:     core.HashContent(data),
		}
		report.PageWritten()
	}

	if input.FailFast && len(errs) > 0 {
		return nil, nil, errs[0]
	}
	return manifest, errs, nil
}

func (s *BuildService) copyAssets(outDir string) error {
	files, err := s.assets.Files()
	if err != nil {
		return err
	}
	for _, name := range files {
		data, err := s.assets.Open(name)
		if err != nil {
			return err
		}
		dst := filepath.Join(outDir, AssetsDir, filepath.FromSlash(name))
		if err := s.fs.WriteFile(dst, data, 0o644); err != nil {
			return err
		}
	}
	return nil
}

// pruneStale removes pages listed in the previous manifest that this build
// no longer produced.
func (s *BuildService) pruneStale(outDir string, manifest *core.Manifest) {
	data, err := s.fs.ReadFile(filepath.Join(outDir, ManifestFile))
	if err != nil {
		return
	}
	previous, err := core.ParseManifest(data)
	if err != nil {
		s.log.Warn("ignoring unreadable previous manifest", logger.Error(err))
		return
	}

	for route, entry := range previous.Pages {
		if _, ok := manifest.Pages[route]; ok {
			continue
		}
		if core.ValidateOutputPath(entry.File) != nil || path.Base(entry.File) == ManifestFile {
			continue
		}
		if err := s.fs.Remove(core.OutputFile(outDir, entry.File)); err != nil {
			s.log.Debug("stale page not removed", logger.String("file", entry.File), logger.Error(err))
			continue
		}
		s.log.Info("removed stale page", logger.String("file", entry.File))
	}
}
