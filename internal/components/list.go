package components

import (
	"golang.org/x/net/html"

	"github.com/3-lines-studio/pagesmith/internal/markup"
)

type ListProps struct {
	Title string
	Items []string
}

func List(p ListProps) *html.Node {
	items := markup.Map(p.Items, func(item string) *html.Node {
		return markup.El("li", nil, markup.Text(item))
	})

	return markup.El("div", markup.Class("list"),
		markup.El("div", markup.Class("text-xl font-semibold mb-4"), markup.Text(p.Title)),
		markup.El("ul", markup.Class("list-items list-disc pl-5"), items...),
	)
}
