package components

import (
	"golang.org/x/net/html"

	"github.com/3-lines-studio/pagesmith/internal/markup"
	"github.com/3-lines-studio/pagesmith/internal/types"
)

type PhotoGalleryProps struct {
	Photos []types.Photo
	Width  string
	Height string
}

// PhotoGallery renders one image per photo. No photos leaves the grid empty.
func PhotoGallery(p PhotoGalleryProps) *html.Node {
	photos := markup.Map(p.Photos, func(photo types.Photo) *html.Node {
		alt := photo.Description
		if alt == "" {
			alt = photo.Image.AlternateText
		}
		return markup.El("img", markup.Attrs(
			"class", "photo rounded-lg",
			"src", photo.Image.URL,
			"alt", alt,
			"width", p.Width,
			"height", p.Height,
		))
	})

	return markup.El("div", markup.Class("photo-gallery grid gap-4 md:grid-cols-3"), photos...)
}
