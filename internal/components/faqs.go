package components

import (
	"golang.org/x/net/html"

	"github.com/3-lines-studio/pagesmith/internal/markup"
	"github.com/3-lines-studio/pagesmith/internal/types"
)

func Faqs(faqs []types.FAQ) *html.Node {
	items := markup.Map(faqs, func(faq types.FAQ) *html.Node {
		return markup.El("div", markup.Class("faq space-y-2"),
			markup.El("h3", markup.Class("faq-question font-semibold"), markup.Text(faq.Question)),
			markup.El("p", markup.Class("faq-answer"), markup.Text(faq.Answer)),
		)
	})

	return markup.El("div", markup.Class("faqs"),
		markup.El("h2", markup.Class("text-xl font-semibold mb-4"), markup.Text("Frequently Asked Questions")),
		markup.El("div", markup.Class("faq-list space-y-5"), items...),
	)
}
