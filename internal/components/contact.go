package components

import (
	"golang.org/x/net/html"

	"github.com/3-lines-studio/pagesmith/internal/format"
	"github.com/3-lines-studio/pagesmith/internal/markup"
	"github.com/3-lines-studio/pagesmith/internal/types"
)

type ContactProps struct {
	Address     types.Address
	Phone       string
	PhoneRegion string
}

func Contact(p ContactProps) *html.Node {
	return markup.El("div", markup.Class("contact"),
		markup.El("div", markup.Class("text-xl font-semibold mb-4"), markup.Text("Contact")),
		markup.El("div", markup.Class("grid gap-y-3"),
			Address(p.Address),
			markup.El("div", nil,
				markup.El("a", markup.Attrs("href", format.PhoneURI(p.Phone, p.PhoneRegion), "class", "contact-phone"),
					markup.Text(format.Phone(p.Phone, p.PhoneRegion)),
				),
			),
		),
	)
}
