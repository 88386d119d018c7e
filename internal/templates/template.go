// Package templates holds the page templates: the index page and the
// per-location page, composed from the leaf components.
package templates

import (
	"encoding/json"
	"fmt"

	"golang.org/x/net/html"

	"github.com/3-lines-studio/pagesmith/internal/core"
	"github.com/3-lines-studio/pagesmith/internal/logger"
	"github.com/3-lines-studio/pagesmith/internal/markup"
	"github.com/3-lines-studio/pagesmith/internal/types"
)

type Options struct {
	Locale      string
	PhoneRegion string
	MapsAPIKey  string
	Logger      logger.Logger
}

func (o Options) withDefaults() Options {
	if o.Locale == "" {
		o.Locale = "en"
	}
	if o.Logger == nil {
		o.Logger = logger.NewNop()
	}
	return o
}

// Template binds a typed document to its path, head and body functions.
// Render is safe to call from many goroutines at once.
type Template[D any] struct {
	config   core.TemplateConfig
	recordID func(D) string
	path     func(D) string
	head     func(D) core.HeadConfig
	body     func(D) *html.Node
	log      logger.Logger
}

func (t *Template[D]) Name() string {
	return t.config.Name
}

func (t *Template[D]) Config() core.TemplateConfig {
	return t.config
}

func (t *Template[D]) Render(raw []byte) (core.RenderedPage, error) {
	var doc D
	if err := json.Unmarshal(raw, &doc); err != nil {
		return core.RenderedPage{}, fmt.Errorf("%s: decode document: %w", t.config.Name, err)
	}

	id := t.recordID(doc)
	if err := types.Validate(id, doc); err != nil {
		return core.RenderedPage{}, fmt.Errorf("%s: %w", t.config.Name, err)
	}

	t.log.Debug("rendering document",
		logger.String("template", t.config.Name),
		logger.String("record_id", id),
		logger.Any("document", doc),
	)

	body, err := markup.Render(t.body(doc))
	if err != nil {
		return core.RenderedPage{}, fmt.Errorf("%s: record %q: %w", t.config.Name, id, err)
	}

	return core.RenderedPage{
		Template: t.config.Name,
		RecordID: id,
		Path:     t.path(doc),
		Head:     t.head(doc),
		Body:     body,
	}, nil
}

// All returns every page template of the site.
func All(opts Options) []core.PageTemplate {
	return []core.PageTemplate{
		Index(opts),
		Location(opts),
	}
}
