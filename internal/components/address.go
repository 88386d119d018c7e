package components

import (
	"golang.org/x/net/html"

	"github.com/3-lines-studio/pagesmith/internal/format"
	"github.com/3-lines-studio/pagesmith/internal/markup"
	"github.com/3-lines-studio/pagesmith/internal/types"
)

// Address renders exactly two lines: street, then "city, region".
func Address(addr types.Address) *html.Node {
	lines := format.AddressLines(addr)
	return markup.El("div", markup.Class("address"),
		markup.El("div", markup.Class("address-line"), markup.Text(lines[0])),
		markup.El("div", markup.Class("address-line"), markup.Text(lines[1])),
	)
}
