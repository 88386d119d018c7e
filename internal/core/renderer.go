package core

// PageTemplate renders one raw record into a page.
type PageTemplate interface {
	Name() string
	Config() TemplateConfig
	Render(raw []byte) (RenderedPage, error)
}
