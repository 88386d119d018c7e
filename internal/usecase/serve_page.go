package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/3-lines-studio/pagesmith/internal/core"
	"github.com/3-lines-studio/pagesmith/internal/stream"
)

type ServePageInput struct {
	RequestPath string
	Document    core.DocumentOptions
}

type ServePageOutput struct {
	Action    core.PageAction
	HTML      string
	Page      core.RenderedPage
	AssetPath string
	Error     error
}

// PageService renders single pages on demand for the preview server,
// reading fresh records from the source on every request.
type PageService struct {
	templates []core.PageTemplate
	source    Source
	metrics   Metrics
}

func NewPageService(templates []core.PageTemplate, source Source, recorder Metrics) *PageService {
	return &PageService{
		templates: templates,
		source:    source,
		metrics:   recorder,
	}
}

func (s *PageService) ServePage(ctx context.Context, input ServePageInput) ServePageOutput {
	decision := core.DecidePageAction(input.RequestPath)

	switch decision.Action {
	case core.ActionServeAsset:
		return ServePageOutput{Action: core.ActionServeAsset, AssetPath: decision.AssetPath}

	case core.ActionNotFound:
		return ServePageOutput{Action: core.ActionNotFound}

	case core.ActionRenderIndex:
		out := s.renderIndex(ctx, input.Document)
		out.Action = core.ActionRenderIndex
		return out

	case core.ActionRenderEntity:
		out := s.renderEntity(ctx, decision.EntityID, input.Document)
		out.Action = core.ActionRenderEntity
		return out
	}

	return ServePageOutput{Action: core.ActionNotFound}
}

func (s *PageService) renderIndex(ctx context.Context, opts core.DocumentOptions) ServePageOutput {
	for _, tmpl := range s.templates {
		if tmpl.Config().Stream != nil {
			continue
		}

		site, err := s.source.Site(ctx)
		if err != nil {
			return ServePageOutput{Error: err}
		}
		doc, err := stream.SiteDocument(site)
		if err != nil {
			return ServePageOutput{Error: err}
		}
		return s.render(tmpl, doc, opts)
	}
	return ServePageOutput{Error: fmt.Errorf("index page: %w", core.ErrNoTemplates)}
}

// renderEntity renders the document with the given id through the first
// streamed template it qualifies for.
func (s *PageService) renderEntity(ctx context.Context, id string, opts core.DocumentOptions) ServePageOutput {
	raw, err := s.source.Document(ctx, id)
	if err != nil {
		return ServePageOutput{Error: err}
	}
	site, err := s.source.Site(ctx)
	if err != nil {
		return ServePageOutput{Error: err}
	}

	for _, tmpl := range s.templates {
		cfg := tmpl.Config()
		if cfg.Stream == nil {
			continue
		}
		doc, ok, err := stream.Prepare(*cfg.Stream, raw, site)
		if err != nil {
			return ServePageOutput{Error: fmt.Errorf("%s: record %q: %w", tmpl.Name(), id, err)}
		}
		if ok {
			return s.render(tmpl, doc, opts)
		}
	}
	return ServePageOutput{Error: fmt.Errorf("document %q is not part of any stream: %w", id, core.ErrDocumentNotFound)}
}

func (s *PageService) render(tmpl core.PageTemplate, doc []byte, opts core.DocumentOptions) ServePageOutput {
	start := time.Now()
	page, err := tmpl.Render(doc)
	if err != nil {
		s.metrics.ObserveRender(tmpl.Name(), time.Since(start), err)
		return ServePageOutput{Error: err}
	}

	html, err := core.RenderDocument(page, opts)
	s.metrics.ObserveRender(tmpl.Name(), time.Since(start), err)
	if err != nil {
		return ServePageOutput{Error: err}
	}
	return ServePageOutput{HTML: html, Page: page}
}
