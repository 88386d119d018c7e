package components

import (
	"golang.org/x/net/html"

	"github.com/3-lines-studio/pagesmith/internal/markup"
	"github.com/3-lines-studio/pagesmith/internal/types"
)

const logoSize = "130"

type HeaderProps struct {
	Links []types.Link
	Logo  types.Logo
}

func Header(p HeaderProps) *html.Node {
	links := markup.Map(p.Links, func(link types.Link) *html.Node {
		return markup.El("div", nil,
			markup.El("a", markup.Attrs("href", link.URL, "class", "hover:underline"),
				markup.Text(link.Label),
			),
		)
	})

	return markup.El("div", markup.Class("centered-container"),
		markup.El("nav", markup.Class("header py-3 flex items-center justify-between"),
			markup.El("a", markup.Attrs("href", "/index", "class", "header-logo"),
				markup.El("img", markup.Attrs(
					"src", p.Logo.Image.URL,
					"alt", p.Logo.Image.AlternateText,
					"width", logoSize,
					"height", logoSize,
				)),
			),
			markup.El("div", markup.Class("header-links flex gap-x-10 text-lg font-semibold"), links...),
			markup.El("div", markup.Class("header-ctas space-x-5"),
				Cta(CtaProps{ButtonText: "Order Pickup", URL: "#", Style: PrimaryCta}),
				Cta(CtaProps{ButtonText: "Order Delivery", URL: "#", Style: SecondaryCta}),
			),
		),
	)
}
