package dataset

import (
	"errors"
	"strings"
	"time"

	"cloud.google.com/go/civil"
)

var ErrUnparseableDate = errors.New("unparseable date")

// dayLayouts are tried in order. Slash, dash and dot separated dates are read
// day first; year-first layouts keep the year-month-day order.
var dayLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	time.RFC3339,
	"2006-01-02 15:04:05.999999999",
	"2006/1/2",
	"2/1/2006",
	"2/1/2006 15:04:05",
	"2/1/2006 15:04",
	"2-1-2006",
	"2-1-2006 15:04:05",
	"2.1.2006",
	"2/1/06",
	"2 Jan 2006",
	"2 January 2006",
	"Jan 2, 2006",
	"January 2, 2006",
}

// monthFirstLayouts are only tried once no day-first layout matches, so a
// value such as 01/13/2024 still resolves to 13 January.
var monthFirstLayouts = []string{
	"1/2/2006",
	"1/2/2006 15:04:05",
	"1/2/2006 15:04",
	"1-2-2006",
	"1-2-2006 15:04:05",
	"1.2.2006",
	"1/2/06",
}

// ParseDay parses a textual date with day-before-month precedence and drops any time of day
func ParseDay(value string) (civil.Date, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return civil.Date{}, ErrUnparseableDate
	}

	if day, ok := parseWith(dayLayouts, value); ok {
		return day, nil
	}
	if day, ok := parseWith(monthFirstLayouts, value); ok {
		return day, nil
	}

	return civil.Date{}, ErrUnparseableDate
}

func parseWith(layouts []string, value string) (civil.Date, bool) {
	for _, layout := range layouts {
		if t, err := time.Parse(layout, value); err == nil {
			return civil.DateOf(t), true
		}
	}
	return civil.Date{}, false
}
