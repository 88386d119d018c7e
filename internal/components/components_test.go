package components

import (
	"os"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/gkampitakis/go-snaps/snaps"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"

	"github.com/3-lines-studio/pagesmith/internal/markup"
	"github.com/3-lines-studio/pagesmith/internal/types"
)

func TestMain(m *testing.M) {
	v := m.Run()
	snaps.Clean(m)
	os.Exit(v)
}

func render(t *testing.T, n *html.Node) string {
	t.Helper()
	out, err := markup.Render(n)
	require.NoError(t, err)
	return out
}

func query(t *testing.T, n *html.Node) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(render(t, n)))
	require.NoError(t, err)
	return doc
}

var flatiron = types.Address{
	Line1:       "175 5th Ave",
	Line2:       "Suite 200",
	City:        "New York",
	Region:      "NY",
	PostalCode:  "10010",
	CountryCode: "US",
}

func TestAddressRendersTwoLines(t *testing.T) {
	doc := query(t, Address(flatiron))

	lines := doc.Find(".address .address-line")
	require.Equal(t, 2, lines.Length())
	assert.Equal(t, "175 5th Ave", lines.Eq(0).Text())
	assert.Equal(t, "New York, NY", lines.Eq(1).Text())
	assert.NotContains(t, doc.Text(), "Suite 200")
	assert.NotContains(t, doc.Text(), "10010")
}

func TestCtaStylesDifferOnlyInClass(t *testing.T) {
	primary := render(t, Cta(CtaProps{ButtonText: "Go", URL: "/go", Style: PrimaryCta}))
	secondary := render(t, Cta(CtaProps{ButtonText: "Go", URL: "/go", Style: SecondaryCta}))

	assert.Equal(t, `<a href="/go" class="primary-cta">Go</a>`, primary)
	assert.Equal(t, strings.Replace(primary, "primary-cta", "secondary-cta", 1), secondary)
}

func TestHeader(t *testing.T) {
	links := []types.Link{
		{Label: "Menu", URL: "/menu"},
		{Label: "Locations", URL: "/locations"},
		{Label: "Catering", URL: "/catering"},
	}
	logo := types.Logo{Image: types.Image{URL: "https://example.com/logo.png", AlternateText: "Logo"}}

	doc := query(t, Header(HeaderProps{Links: links, Logo: logo}))

	navLinks := doc.Find(".header-links a")
	require.Equal(t, len(links), navLinks.Length())
	for i, link := range links {
		assert.Equal(t, link.Label, navLinks.Eq(i).Text())
		assert.Equal(t, link.URL, navLinks.Eq(i).AttrOr("href", ""))
	}

	logoLink := doc.Find("a.header-logo")
	assert.Equal(t, "/index", logoLink.AttrOr("href", ""))
	img := logoLink.Find("img")
	assert.Equal(t, "https://example.com/logo.png", img.AttrOr("src", ""))
	assert.Equal(t, "130", img.AttrOr("width", ""))
	assert.Equal(t, "130", img.AttrOr("height", ""))

	assert.Equal(t, "Order Pickup", doc.Find(".header-ctas a.primary-cta").Text())
	assert.Equal(t, "Order Delivery", doc.Find(".header-ctas a.secondary-cta").Text())
}

func TestHeaderWithoutLinks(t *testing.T) {
	doc := query(t, Header(HeaderProps{}))

	assert.Equal(t, 1, doc.Find(".header-links").Length())
	assert.Zero(t, doc.Find(".header-links").Children().Length())
	assert.Equal(t, 1, doc.Find("a.header-logo img").Length())
	assert.Equal(t, 2, doc.Find(".header-ctas a").Length())
}

func TestFooter(t *testing.T) {
	doc := query(t, Footer(FooterProps{
		Links:   []types.Link{{Label: "About", URL: "/about"}, {Label: "Careers", URL: "/careers"}},
		Twitter: "exampletacos",
	}))

	links := doc.Find(".footer-links a")
	require.Equal(t, 2, links.Length())
	assert.Equal(t, "About", links.Eq(0).Text())
	assert.Equal(t, "Careers", links.Eq(1).Text())

	social := doc.Find(".footer-social a")
	require.Equal(t, 1, social.Length())
	assert.Equal(t, "https://twitter.com/exampletacos", social.AttrOr("href", ""))
}

func TestFooterSnapshot(t *testing.T) {
	snaps.MatchSnapshot(t, render(t, Footer(FooterProps{
		Links:     []types.Link{{Label: "About", URL: "/about"}},
		Instagram: "tacos",
		Facebook:  "tacos.page",
	})))
}

func TestBanner(t *testing.T) {
	t.Run("with address and child", func(t *testing.T) {
		doc := query(t, Banner(BannerProps{
			Name:    "Example Taco Shop",
			Address: &flatiron,
			Child:   Cta(CtaProps{ButtonText: "Get Directions", URL: "#", Style: PrimaryCta}),
		}))
		assert.Equal(t, "Example Taco Shop", doc.Find("h1.banner-name").Text())
		assert.Equal(t, "New York, NY", doc.Find(".banner-address").Text())
		assert.Equal(t, "Get Directions", doc.Find(".banner a.primary-cta").Text())
	})

	t.Run("name only", func(t *testing.T) {
		doc := query(t, Banner(BannerProps{Name: "Example Taco Shop"}))
		assert.Equal(t, "Example Taco Shop", doc.Find("h1.banner-name").Text())
		assert.Zero(t, doc.Find(".banner-address").Length())
	})
}

func TestContact(t *testing.T) {
	doc := query(t, Contact(ContactProps{Address: flatiron, Phone: "2125550100"}))

	phone := doc.Find("a.contact-phone")
	assert.Equal(t, "(212) 555-0100", phone.Text())
	assert.Equal(t, "tel:+12125550100", phone.AttrOr("href", ""))
	assert.Equal(t, 2, doc.Find(".address-line").Length())
}

func TestHours(t *testing.T) {
	hours := &types.Hours{
		Sunday: &types.DayHours{IsClosed: true},
		Monday: &types.DayHours{OpenIntervals: []types.Interval{
			{Start: "09:00", End: "12:00"},
			{Start: "13:00", End: "17:30"},
		}},
	}

	doc := query(t, Hours(HoursProps{Title: "Hours", Hours: hours}))

	rows := doc.Find("tr.hours-day")
	require.Equal(t, 2, rows.Length())
	assert.Equal(t, "Monday", rows.Eq(0).Find(".hours-day-name").Text())
	assert.Equal(t, "9:00 AM - 12:00 PM, 1:00 PM - 5:30 PM", rows.Eq(0).Find(".hours-intervals").Text())
	assert.Equal(t, "Sunday", rows.Eq(1).Find(".hours-day-name").Text())
	assert.Equal(t, "Closed", rows.Eq(1).Find(".hours-intervals").Text())

	empty := query(t, Hours(HoursProps{Title: "Hours"}))
	assert.Zero(t, empty.Find("tr").Length())
	assert.Contains(t, empty.Text(), "Hours")
}

func TestPhotoGallery(t *testing.T) {
	photos := []types.Photo{
		{Image: types.Image{URL: "/a.jpg"}, Description: "Patio"},
		{Image: types.Image{URL: "/b.jpg", AlternateText: "Counter"}},
	}

	doc := query(t, PhotoGallery(PhotoGalleryProps{Photos: photos, Width: "450", Height: "300"}))

	imgs := doc.Find(".photo-gallery img")
	require.Equal(t, 2, imgs.Length())
	assert.Equal(t, "/a.jpg", imgs.Eq(0).AttrOr("src", ""))
	assert.Equal(t, "Patio", imgs.Eq(0).AttrOr("alt", ""))
	assert.Equal(t, "Counter", imgs.Eq(1).AttrOr("alt", ""))
	assert.Equal(t, "450", imgs.Eq(1).AttrOr("width", ""))
	assert.Equal(t, "300", imgs.Eq(1).AttrOr("height", ""))

	empty := query(t, PhotoGallery(PhotoGalleryProps{}))
	assert.Equal(t, 1, empty.Find(".photo-gallery").Length())
	assert.Zero(t, empty.Find("img").Length())
}

func TestFaqs(t *testing.T) {
	doc := query(t, Faqs([]types.FAQ{
		{Question: "Do you cater?", Answer: "Yes."},
		{Question: "Vegan options?", Answer: "Plenty."},
	}))

	faqs := doc.Find(".faq-list .faq")
	require.Equal(t, 2, faqs.Length())
	assert.Equal(t, "Do you cater?", faqs.Eq(0).Find(".faq-question").Text())
	assert.Equal(t, "Plenty.", faqs.Eq(1).Find(".faq-answer").Text())

	empty := query(t, Faqs(nil))
	assert.Zero(t, empty.Find(".faq").Length())
}

func TestList(t *testing.T) {
	doc := query(t, List(ListProps{Title: "Payment Options", Items: []string{"Cash", "Visa"}}))

	items := doc.Find("ul.list-items li")
	require.Equal(t, 2, items.Length())
	assert.Equal(t, "Cash", items.Eq(0).Text())
	assert.Equal(t, "Visa", items.Eq(1).Text())

	empty := query(t, List(ListProps{Title: "Services"}))
	assert.Equal(t, 1, empty.Find("ul.list-items").Length())
	assert.Zero(t, empty.Find("li").Length())
}

func TestStaticMap(t *testing.T) {
	props := StaticMapProps{
		Coordinate: types.Coordinate{Latitude: 40.7411, Longitude: -73.9897},
		Width:      400,
		Height:     200,
		APIKey:     "k",
	}

	assert.Equal(t,
		"https://maps.googleapis.com/maps/api/staticmap?center=40.7411%2C-73.9897&key=k&markers=40.7411%2C-73.9897&size=400x200&zoom=14",
		StaticMapURL(props),
	)

	doc := query(t, StaticMap(props))
	img := doc.Find("img.static-map")
	assert.Equal(t, "400", img.AttrOr("width", ""))
	assert.Equal(t, StaticMapURL(props), img.AttrOr("src", ""))
}
