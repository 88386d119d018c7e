package core

import (
	"bytes"
	"fmt"
	"html/template"

	"golang.org/x/net/html"

	"github.com/3-lines-studio/pagesmith/internal/markup"
)

type DocumentOptions struct {
	Lang    string
	CSSHref string
}

var documentTemplate = template.Must(template.New("document").Parse(`<!doctype html>
<html lang="{{.Lang}}">
  <head>
    <meta charset="{{.Charset}}" />
    <meta name="viewport" content="{{.Viewport}}" />
    <title>{{.Title}}</title>
    {{.Tags}}
    {{- if .CSSHref}}
    <link rel="stylesheet" href="{{.CSSHref}}" />
    {{- end}}
  </head>
  <body>
    <div id="app">{{.Body}}</div>
  </body>
</html>
`))

// RenderDocument wraps a rendered page body in a full HTML document carrying
// the page's head metadata.
func RenderDocument(page RenderedPage, opts DocumentOptions) (string, error) {
	head := page.Head
	if head.Charset == "" {
		head.Charset = DefaultCharset
	}
	if head.Viewport == "" {
		head.Viewport = DefaultViewport
	}
	if opts.Lang == "" {
		opts.Lang = "en"
	}

	tags, err := renderHeadTags(head.Tags)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := documentTemplate.Execute(&buf, map[string]any{
		"Lang":     opts.Lang,
		"Charset":  head.Charset,
		"Viewport": head.Viewport,
		"Title":    head.Title,
		"Tags":     template.HTML(tags),
		"CSSHref":  opts.CSSHref,
		"Body":     template.HTML(page.Body),
	}); err != nil {
		return "", fmt.Errorf("render document %s: %w", page.Path, err)
	}

	return buf.String(), nil
}

func renderHeadTags(tags []HeadTag) (string, error) {
	nodes := make([]*html.Node, 0, len(tags))
	for _, tag := range tags {
		attrs := make([]string, 0, len(tag.Attributes)*2)
		for _, a := range tag.Attributes {
			attrs = append(attrs, a.Key, a.Value)
		}
		nodes = append(nodes, markup.El(tag.Type, markup.Attrs(attrs...)))
	}
	return markup.Render(markup.Fragment(nodes...))
}
