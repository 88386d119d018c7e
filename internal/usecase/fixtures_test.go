package usecase

import (
	"bytes"
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/3-lines-studio/pagesmith/internal/adapters/cli"
	"github.com/3-lines-studio/pagesmith/internal/core"
	"github.com/3-lines-studio/pagesmith/internal/stream"
	"github.com/3-lines-studio/pagesmith/internal/templates"
)

const siteJSON = `{
	"name": "Example Taco Shop",
	"logo": {"image": {"url": "https://example.com/logo.png"}},
	"c_header": [{"label": "Menu", "uRL": "/menu"}],
	"c_footer": [{"label": "About", "uRL": "/about"}],
	"instagramHandle": "exampletacos"
}`

func locationJSON(id, entityType, locale, name string) []byte {
	return []byte(`{
		"id": "` + id + `",
		"meta": {"entityType": "` + entityType + `", "locale": "` + locale + `"},
		"name": "` + name + `",
		"address": {"line1": "1 Main St", "city": "New York", "region": "NY", "postalCode": "10001", "countryCode": "US"},
		"mainPhone": "+12125551234",
		"description": "Fresh tacos.",
		"neighborhood": "SoHo"
	}`)
}

type memSource struct {
	site    []byte
	docs    [][]byte
	siteErr error
}

func newMemSource(docs ...[]byte) *memSource {
	return &memSource{site: []byte(siteJSON), docs: docs}
}

func (s *memSource) Site(context.Context) ([]byte, error) {
	if s.siteErr != nil {
		return nil, s.siteErr
	}
	return s.site, nil
}

func (s *memSource) Documents(context.Context) ([][]byte, error) {
	return s.docs, nil
}

func (s *memSource) Document(_ context.Context, id string) ([]byte, error) {
	for _, d := range s.docs {
		if stream.DocumentID(d) == id {
			return d, nil
		}
	}
	return nil, fmt.Errorf("document %q: %w", id, core.ErrDocumentNotFound)
}

type recordingMetrics struct {
	mu       sync.Mutex
	rendered map[string]int
	failed   map[string]int
}

func newRecordingMetrics() *recordingMetrics {
	return &recordingMetrics{rendered: map[string]int{}, failed: map[string]int{}}
}

func (m *recordingMetrics) ObserveRender(template string, _ time.Duration, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err != nil {
		m.failed[template]++
		return
	}
	m.rendered[template]++
}

func testOutput() (*cli.Output, *bytes.Buffer, *bytes.Buffer) {
	var out, errOut bytes.Buffer
	return cli.NewWriterOutput(&out, &errOut), &out, &errOut
}

func allTemplates() []core.PageTemplate {
	return templates.All(templates.Options{})
}
