package components

import (
	"golang.org/x/net/html"

	"github.com/3-lines-studio/pagesmith/internal/markup"
)

type CtaStyle string

const (
	PrimaryCta   CtaStyle = "primary-cta"
	SecondaryCta CtaStyle = "secondary-cta"
)

type CtaProps struct {
	ButtonText string
	URL        string
	Style      CtaStyle
}

// Cta renders a link styled as a button. Style only selects the class.
func Cta(p CtaProps) *html.Node {
	return markup.El("a", markup.Attrs("href", p.URL, "class", string(p.Style)),
		markup.Text(p.ButtonText),
	)
}
