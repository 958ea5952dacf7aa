package listview

import (
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

// Layouts for values that carry only a time of day, as Postgres renders TIME columns.
var timeOfDayLayouts = []string{
	"15:04:05.999999999",
	"15:04:05",
	"15:04",
	"3:04:05 PM",
	"3:04 PM",
}

type sortKey struct {
	t  time.Time
	ok bool
}

// parseSortKey reads v as a time of day or a calendar date/timestamp.
// Times of day are placed on the zero date so they compare among themselves.
func parseSortKey(v string) sortKey {
	v = strings.TrimSpace(v)
	if v == "" {
		return sortKey{}
	}

	for _, layout := range timeOfDayLayouts {
		if t, err := time.Parse(layout, v); err == nil {
			return sortKey{t: t, ok: true}
		}
	}

	t, err := dateparse.ParseIn(v, time.UTC)
	if err != nil {
		return sortKey{}
	}
	return sortKey{t: t, ok: true}
}
