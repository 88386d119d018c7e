package components

import (
	"golang.org/x/net/html"

	"github.com/3-lines-studio/pagesmith/internal/format"
	"github.com/3-lines-studio/pagesmith/internal/markup"
	"github.com/3-lines-studio/pagesmith/internal/types"
)

type HoursProps struct {
	Title string
	Hours *types.Hours
}

func Hours(p HoursProps) *html.Node {
	var days []types.Day
	if p.Hours != nil {
		days = p.Hours.Days()
	}

	rows := markup.Map(days, func(day types.Day) *html.Node {
		return markup.El("tr", markup.Class("hours-day"),
			markup.El("td", markup.Class("hours-day-name pr-4 font-semibold"), markup.Text(day.Name)),
			markup.El("td", markup.Class("hours-intervals"), markup.Text(format.DayHours(day.Hours))),
		)
	})

	return markup.El("div", markup.Class("hours"),
		markup.El("div", markup.Class("text-xl font-semibold mb-4"), markup.Text(p.Title)),
		markup.El("table", markup.Class("hours-table"),
			markup.El("tbody", nil, rows...),
		),
	)
}
