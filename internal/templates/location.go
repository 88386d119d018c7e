package templates

import (
	"golang.org/x/net/html"

	"github.com/3-lines-studio/pagesmith/internal/components"
	"github.com/3-lines-studio/pagesmith/internal/core"
	"github.com/3-lines-studio/pagesmith/internal/format"
	"github.com/3-lines-studio/pagesmith/internal/markup"
	"github.com/3-lines-studio/pagesmith/internal/types"
)

const (
	LocationName   = "location"
	LocationStream = "locations"

	galleryWidth  = "450"
	galleryHeight = "300"
	mapWidth      = 400
	mapHeight     = 200
)

// LocationFields is the projection applied to every location document.
var LocationFields = []string{
	"id",
	"uid",
	"meta",
	"name",
	"address",
	"mainPhone",
	"description",
	"neighborhood",
	"hours",
	"photoGallery",
	"slug",
	"geocodedCoordinate",
	"services",
	"paymentOptions",
	"c_featuredFAQs.question",
	"c_featuredFAQs.answer",
}

func Location(opts Options) *Template[types.Location] {
	opts = opts.withDefaults()
	return &Template[types.Location]{
		config: core.TemplateConfig{
			Name: LocationName,
			Stream: &core.StreamConfig{
				ID:     LocationStream,
				Fields: LocationFields,
				Filter: core.StreamFilter{EntityTypes: []string{"location"}},
				Localization: core.Localization{
					Locales: []string{opts.Locale},
					Primary: false,
				},
			},
		},
		recordID: func(doc types.Location) string { return doc.ID.String() },
		path:     func(doc types.Location) string { return doc.ID.String() },
		head:     locationHead,
		body:     func(doc types.Location) *html.Node { return renderLocation(doc, opts) },
		log:      opts.Logger,
	}
}

func locationHead(doc types.Location) core.HeadConfig {
	return core.HeadConfig{
		Title:    doc.Name,
		Charset:  core.DefaultCharset,
		Viewport: core.DefaultViewport,
		Tags:     []core.HeadTag{core.MetaDescription(doc.Description)},
	}
}

func renderLocation(doc types.Location, opts Options) *html.Node {
	site := doc.Site

	return markup.Fragment(
		components.Header(components.HeaderProps{Links: site.Header, Logo: site.Logo}),
		components.Banner(components.BannerProps{
			Name:    doc.Name,
			Address: &doc.Address,
			Child:   visitUs(),
		}),
		markup.El("div", markup.Class("centered-container"),
			markup.El("div", markup.Class("section"),
				markup.El("div", markup.Class("grid md:grid-cols-2 lg:grid-cols-3"),
					addressPhone(doc, opts),
					components.Hours(components.HoursProps{Title: "Hours", Hours: doc.Hours}),
					about(doc),
				),
			),
			optionalList("services", "Services", doc.Services),
			optionalList("payment-options", "Payment Options", doc.PaymentOptions),
			markup.El("div", markup.Class("section"),
				components.PhotoGallery(components.PhotoGalleryProps{
					Photos: doc.PhotoGallery,
					Width:  galleryWidth,
					Height: galleryHeight,
				}),
			),
			markup.El("div", markup.Class("section"),
				components.Faqs(doc.FeaturedFAQs),
			),
			components.Footer(footerProps(site)),
		),
	)
}

func visitUs() *html.Node {
	return markup.El("div", markup.Class("bg-white h-40 w-1/5 flex items-center justify-center text-center flex-col space-y-4 rounded-lg"),
		markup.El("div", markup.Class("text-black text-base"), markup.Text("Visit Us Today!")),
		components.Cta(components.CtaProps{
			ButtonText: "Get Directions",
			URL:        "http://google.com",
			Style:      components.PrimaryCta,
		}),
	)
}

func addressPhone(doc types.Location, opts Options) *html.Node {
	var staticMap *html.Node
	if doc.GeocodedCoordinate != nil && opts.MapsAPIKey != "" {
		staticMap = components.StaticMap(components.StaticMapProps{
			Coordinate: *doc.GeocodedCoordinate,
			Width:      mapWidth,
			Height:     mapHeight,
			APIKey:     opts.MapsAPIKey,
		})
	}

	return markup.El("div", markup.Class("address-phone space-y-5"),
		markup.El("h2", markup.Class("text-xl font-semibold mb-4"), markup.Text("Address")),
		components.Address(doc.Address),
		markup.El("div", markup.Class("phone space-x-3"),
			markup.El("span", nil, markup.Text("\U0001F4DE")),
			markup.El("span", markup.Class("phone-number"), markup.Text(format.Phone(doc.MainPhone, opts.PhoneRegion))),
		),
		staticMap,
	)
}

func about(doc types.Location) *html.Node {
	heading := "About " + doc.Name
	if doc.Neighborhood != "" {
		heading += " - " + doc.Neighborhood
	}

	return markup.El("div", markup.Class("description"),
		markup.El("div", markup.Class("text-xl font-semibold mb-4"), markup.Text(heading)),
		markup.El("p", nil, markup.Text(doc.Description)),
	)
}

// optionalList leaves the section out when the record has no entries.
func optionalList(class, title string, items []string) *html.Node {
	if len(items) == 0 {
		return nil
	}
	return markup.El("div", markup.Class("section "+class),
		components.List(components.ListProps{Title: title, Items: items}),
	)
}
