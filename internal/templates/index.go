package templates

import (
	"golang.org/x/net/html"

	"github.com/3-lines-studio/pagesmith/internal/components"
	"github.com/3-lines-studio/pagesmith/internal/core"
	"github.com/3-lines-studio/pagesmith/internal/markup"
	"github.com/3-lines-studio/pagesmith/internal/types"
)

const (
	IndexName        = "index"
	indexTitle       = "Home Page"
	indexDescription = "This site was generated by pagesmith"
	siteRecordID     = "_site"
)

func Index(opts Options) *Template[types.SiteDocument] {
	opts = opts.withDefaults()
	return &Template[types.SiteDocument]{
		config:   core.TemplateConfig{Name: IndexName},
		recordID: func(types.SiteDocument) string { return siteRecordID },
		path:     func(types.SiteDocument) string { return core.IndexPath },
		head:     indexHead,
		body:     renderIndex,
		log:      opts.Logger,
	}
}

func indexHead(types.SiteDocument) core.HeadConfig {
	return core.HeadConfig{
		Title:    indexTitle,
		Charset:  core.DefaultCharset,
		Viewport: core.DefaultViewport,
		Tags:     []core.HeadTag{core.MetaDescription(indexDescription)},
	}
}

func renderIndex(doc types.SiteDocument) *html.Node {
	site := doc.Site

	return markup.Fragment(
		components.Header(components.HeaderProps{Links: site.Header, Logo: site.Logo}),
		components.Banner(components.BannerProps{Name: site.Name}),
		markup.El("div", markup.Class("centered-container"),
			markup.El("div", markup.Class("section space-y-10 px-10"),
				markup.El("h1", markup.Class("text-center"), markup.Textf("Welcome to %s!", site.Name)),
				markup.El("div", markup.Class("px-14 space-y-5"), marketingCopy(site.Name)),
				components.Footer(footerProps(site)),
			),
		),
	)
}

func marketingCopy(name string) *html.Node {
	return markup.El("p", nil,
		markup.Textf("%s was created by a group of technology experts based in New York City. "+
			"They want to not only provide perfect answers everywhere... but perfect ", name),
		markup.El("i", nil, markup.El("strong", nil, markup.Text("tacos"))),
		markup.Textf(" everywhere! The authentic taste comes from family recipes and from fresh, simple "+
			"and tasteful ingredients straight from home. In every taco from %s there is a bit of "+
			"true Mexican culture and flavor.", name),
	)
}

func footerProps(site types.Site) components.FooterProps {
	return components.FooterProps{
		Links:     site.Footer,
		Instagram: site.InstagramHandle,
		Facebook:  site.FacebookVanityURL,
		Twitter:   site.TwitterHandle,
	}
}
