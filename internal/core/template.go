package core

// TemplateConfig is what a page template declares to the build: its name and,
// for templates generated once per entity, the stream feeding it.
type TemplateConfig struct {
	Name   string
	Stream *StreamConfig
}

type StreamConfig struct {
	ID           string       `json:"$id"`
	Fields       []string     `json:"fields"`
	Filter       StreamFilter `json:"filter"`
	Localization Localization `json:"localization"`
}

type StreamFilter struct {
	EntityTypes []string `json:"entityTypes"`
}

type Localization struct {
	Locales []string `json:"locales"`
	Primary bool     `json:"primary"`
}

type HeadAttr struct {
	Key   string
	Value string
}

type HeadTag struct {
	Type       string
	Attributes []HeadAttr
}

type HeadConfig struct {
	Title    string
	Charset  string
	Viewport string
	Tags     []HeadTag
}

const (
	DefaultCharset  = "UTF-8"
	DefaultViewport = "width=device-width, initial-scale=1"
)

// MetaDescription builds the <meta name="description"> tag.
func MetaDescription(content string) HeadTag {
	return HeadTag{
		Type: "meta",
		Attributes: []HeadAttr{
			{Key: "name", Value: "description"},
			{Key: "content", Value: content},
		},
	}
}

// RenderedPage is the output of one template invocation on one record.
type RenderedPage struct {
	Template string
	RecordID string
	Path     string
	Head     HeadConfig
	Body     string
}
