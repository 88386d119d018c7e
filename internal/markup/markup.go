// Package markup builds HTML node trees for the page components.
package markup

import (
	"fmt"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Attrs turns key/value pairs into attributes, keeping their order.
func Attrs(kv ...string) []html.Attribute {
	attrs := make([]html.Attribute, 0, len(kv)/2)
	for i := 0; i+1 < len(kv); i += 2 {
		attrs = append(attrs, html.Attribute{Key: kv[i], Val: kv[i+1]})
	}
	return attrs
}

// Class is shorthand for a single class attribute.
func Class(class string) []html.Attribute {
	return Attrs("class", class)
}

// El creates an element. Nil children are skipped and fragments are flattened
// into the element.
func El(tag string, attrs []html.Attribute, children ...*html.Node) *html.Node {
	n := &html.Node{
		Type:     html.ElementNode,
		Data:     tag,
		DataAtom: atom.Lookup([]byte(tag)),
		Attr:     attrs,
	}
	Append(n, children...)
	return n
}

func Text(s string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: s}
}

func Textf(format string, args ...any) *html.Node {
	return Text(fmt.Sprintf(format, args...))
}

// Fragment groups nodes without a wrapping element.
func Fragment(children ...*html.Node) *html.Node {
	n := &html.Node{Type: html.DocumentNode}
	Append(n, children...)
	return n
}

// Map renders one node per item, preserving order.
func Map[T any](items []T, fn func(T) *html.Node) []*html.Node {
	nodes := make([]*html.Node, 0, len(items))
	for _, item := range items {
		nodes = append(nodes, fn(item))
	}
	return nodes
}

func Append(parent *html.Node, children ...*html.Node) {
	for _, c := range children {
		if c == nil {
			continue
		}
		if c.Type == html.DocumentNode {
			for c.FirstChild != nil {
				gc := c.FirstChild
				c.RemoveChild(gc)
				parent.AppendChild(gc)
			}
			continue
		}
		if c.Parent != nil {
			c.Parent.RemoveChild(c)
		}
		parent.AppendChild(c)
	}
}

// Render serializes n. A fragment renders its children back to back.
func Render(n *html.Node) (string, error) {
	if n == nil {
		return "", nil
	}
	var sb strings.Builder
	if err := html.Render(&sb, n); err != nil {
		return "", fmt.Errorf("render markup: %w", err)
	}
	return sb.String(), nil
}
