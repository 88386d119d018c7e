package format

import (
	"strings"
	"time"

	"github.com/3-lines-studio/pagesmith/internal/types"
)

const Closed = "Closed"

// Clock converts "15:04" to "3:04 PM". Unparseable values pass through.
func Clock(hhmm string) string {
	t, err := time.Parse("15:04", hhmm)
	if err != nil {
		return hhmm
	}
	return t.Format("3:04 PM")
}

func Interval(iv types.Interval) string {
	return Clock(iv.Start) + " - " + Clock(iv.End)
}

// DayHours renders the open intervals of a day, or Closed.
func DayHours(day types.DayHours) string {
	if day.IsClosed || len(day.OpenIntervals) == 0 {
		return Closed
	}

	parts := make([]string, 0, len(day.OpenIntervals))
	for _, iv := range day.OpenIntervals {
		parts = append(parts, Interval(iv))
	}
	return strings.Join(parts, ", ")
}
