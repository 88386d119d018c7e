package components

import (
	"net/url"
	"strconv"

	"golang.org/x/net/html"

	"github.com/3-lines-studio/pagesmith/internal/markup"
	"github.com/3-lines-studio/pagesmith/internal/types"
)

const staticMapEndpoint = "https://maps.googleapis.com/maps/api/staticmap"

type StaticMapProps struct {
	Coordinate types.Coordinate
	Width      int
	Height     int
	Zoom       int
	APIKey     string
}

func StaticMap(p StaticMapProps) *html.Node {
	return markup.El("img", markup.Attrs(
		"class", "static-map",
		"src", StaticMapURL(p),
		"alt", "Map",
		"width", strconv.Itoa(p.Width),
		"height", strconv.Itoa(p.Height),
	))
}

func StaticMapURL(p StaticMapProps) string {
	zoom := p.Zoom
	if zoom == 0 {
		zoom = 14
	}
	center := strconv.FormatFloat(p.Coordinate.Latitude, 'f', -1, 64) + "," +
		strconv.FormatFloat(p.Coordinate.Longitude, 'f', -1, 64)

	q := url.Values{}
	q.Set("center", center)
	q.Set("markers", center)
	q.Set("zoom", strconv.Itoa(zoom))
	q.Set("size", strconv.Itoa(p.Width)+"x"+strconv.Itoa(p.Height))
	q.Set("key", p.APIKey)
	return staticMapEndpoint + "?" + q.Encode()
}
