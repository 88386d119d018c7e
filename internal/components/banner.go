package components

import (
	"golang.org/x/net/html"

	"github.com/3-lines-studio/pagesmith/internal/format"
	"github.com/3-lines-studio/pagesmith/internal/markup"
	"github.com/3-lines-studio/pagesmith/internal/types"
)

type BannerProps struct {
	Name    string
	Address *types.Address
	Child   *html.Node
}

func Banner(p BannerProps) *html.Node {
	var locality *html.Node
	if p.Address != nil {
		locality = markup.El("div", markup.Class("banner-address text-xl"), markup.Text(format.Locality(*p.Address)))
	}

	return markup.El("div", markup.Class("banner bg-red-900 text-white py-10"),
		markup.El("div", markup.Class("centered-container flex items-center justify-between px-10"),
			markup.El("div", markup.Class("space-y-2"),
				markup.El("h1", markup.Class("banner-name text-5xl font-bold"), markup.Text(p.Name)),
				locality,
			),
			p.Child,
		),
	)
}
