package render

import (
	"fmt"
	"time"
)

// Accepted layouts for the free-text month-granularity dates the editor
// stores. Anything else is rendered verbatim.
var dateLayouts = []string{
	"2006-01",
	"2006-01-02",
	"January 2006",
	"Jan 2006",
	"2006",
}

// FormatDate renders a stored date as abbreviated month plus year, e.g.
// "Jun 2021". Unparseable input is returned unchanged rather than
// failing the render.
func FormatDate(date string) string {
	if date == "" {
		return ""
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, date); err == nil {
			if layout == "2006" {
				return t.Format("2006")
			}
			return t.Format("Jan 2006")
		}
	}
	return date
}

// FormatDateRange renders "start – end". The current flag wins over any
// stored end date: an ongoing entry always ends in "Present".
func FormatDateRange(start, end string, current bool) string {
	e := "Present"
	if !current {
		e = FormatDate(end)
	}
	return FormatDate(start) + " - " + e
}

// Duration renders the human span of a date range ("4 months",
// "2 yrs 3 mos"). Used by skins that annotate entries with tenure.
// Returns "" when either endpoint cannot be parsed.
func Duration(start, end string, current bool) string {
	s, ok := parseAny(start)
	if !ok {
		return ""
	}
	var e time.Time
	if current {
		e = time.Now()
	} else {
		e, ok = parseAny(end)
		if !ok {
			return ""
		}
	}

	months := (e.Year()-s.Year())*12 + int(e.Month()) - int(s.Month())
	if months < 0 {
		return ""
	}
	if months < 12 {
		return fmt.Sprintf("%d %s", months, plural("month", months))
	}
	years := months / 12
	rem := months % 12
	if rem == 0 {
		return fmt.Sprintf("%d %s", years, plural("year", years))
	}
	return fmt.Sprintf("%d %s %d mo", years, plural("yr", years), rem)
}

func plural(unit string, n int) string {
	if n == 1 {
		return unit
	}
	return unit + "s"
}

func parseAny(date string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, date); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
