// Package metadata pulls dates, deadlines, sender category, keywords and
// party names out of a document's text.
package metadata

import (
	"regexp"
	"strconv"
	"time"
)

// datePattern is a strict German numeric date: d.m.yyyy, years 19xx/20xx.
const datePattern = `(0?[1-9]|[12][0-9]|3[01])\.(0?[1-9]|1[0-2])\.((?:19|20)[0-9]{2})`

var reDate = regexp.MustCompile(`\b` + datePattern + `\b`)

// ExtractDates returns every valid calendar date in text, in text order.
// Matches like 31.02.2024 are dropped.
func ExtractDates(text string) []time.Time {
	var out []time.Time
	for _, m := range reDate.FindAllStringSubmatch(text, -1) {
		if d, ok := parseDate(m[1], m[2], m[3]); ok {
			out = append(out, d)
		}
	}
	return out
}

// DocumentDate is the earliest date in text, zero if there is none.
func DocumentDate(text string) time.Time {
	var min time.Time
	for _, d := range ExtractDates(text) {
		if min.IsZero() || d.Before(min) {
			min = d
		}
	}
	return min
}

func parseDate(day, month, year string) (time.Time, bool) {
	d, err1 := strconv.Atoi(day)
	m, err2 := strconv.Atoi(month)
	y, err3 := strconv.Atoi(year)
	if err1 != nil || err2 != nil || err3 != nil {
		return time.Time{}, false
	}
	t := time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
	// time.Date normalizes 31.02. into March; reject instead
	if t.Day() != d || int(t.Month()) != m || t.Year() != y {
		return time.Time{}, false
	}
	return t, true
}
