package csvfile

import (
	"errors"
	"fmt"
	"time"
)

// Date layouts of the record file. Compact is what early versions wrote,
// LocalTimestamp followed it, and Timestamp (with its UTC offset, so
// repeated wall-clock hours stay distinct) is what Append writes now.
const (
	CompactLayout        = "01022006"
	LocalTimestampLayout = "2006-01-02 15:04:05"
	TimestampLayout      = "2006-01-02 15:04:05-07:00"
)

// DateStrategy parses one on-disk date encoding.
type DateStrategy struct {
	Name  string
	Parse func(s string, loc *time.Location) (time.Time, error)
}

// LayoutStrategy returns a strategy trying each layout in order.
func LayoutStrategy(name string, layouts ...string) DateStrategy {
	return DateStrategy{
		Name: name,
		Parse: func(s string, loc *time.Location) (time.Time, error) {
			for _, layout := range layouts {
				if t, err := time.ParseInLocation(layout, s, loc); err == nil {
					return t, nil
				}
			}
			return time.Time{}, errNoLayout
		},
	}
}

var errNoLayout = errors.New("no layout matched")

// DefaultDateStrategies is the order dates are tried in on load.
var DefaultDateStrategies = []DateStrategy{
	LayoutStrategy("compact", CompactLayout),
	LayoutStrategy("timestamp", TimestampLayout, LocalTimestampLayout),
	LayoutStrategy("generic",
		time.RFC3339Nano,
		"2006-01-02T15:04:05",
		"2006-01-02 15:04:05.999999999",
		"2006-01-02 15:04",
		"2006-01-02",
		"2006/01/02",
		"01/02/2006",
		"1/2/2006",
		"01-02-2006",
		"Jan 2 2006",
		"Jan 2, 2006",
		"2 Jan 2006",
		"20060102",
	),
}

// ParseDate tries strategies in order and returns the first success.
func ParseDate(s string, loc *time.Location, strategies []DateStrategy) (time.Time, error) {
	for _, st := range strategies {
		if t, err := st.Parse(s, loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognised date %q", s)
}
