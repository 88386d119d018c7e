package components

import (
	"golang.org/x/net/html"

	"github.com/3-lines-studio/pagesmith/internal/markup"
	"github.com/3-lines-studio/pagesmith/internal/types"
)

type FooterProps struct {
	Links     []types.Link
	Instagram string
	Facebook  string
	Twitter   string
}

func Footer(p FooterProps) *html.Node {
	links := markup.Map(p.Links, func(link types.Link) *html.Node {
		return markup.El("a", markup.Attrs("href", link.URL, "class", "hover:underline"),
			markup.Text(link.Label),
		)
	})

	return markup.El("footer", markup.Class("footer py-8 space-y-4"),
		markup.El("div", markup.Class("footer-links flex justify-center gap-x-8"), links...),
		markup.El("div", markup.Class("footer-social flex justify-center gap-x-5"),
			socialLink("instagram", "https://www.instagram.com/", p.Instagram),
			socialLink("facebook", "https://www.facebook.com/", p.Facebook),
			socialLink("twitter", "https://twitter.com/", p.Twitter),
		),
	)
}

// socialLink returns nil for an empty handle so the network is left out.
func socialLink(network, base, handle string) *html.Node {
	if handle == "" {
		return nil
	}
	return markup.El("a", markup.Attrs("href", base+handle, "class", "social-"+network, "aria-label", network),
		markup.Text(network),
	)
}
