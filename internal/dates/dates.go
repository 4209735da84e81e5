// Package dates parses the date arguments accepted by --after and
// --before. One parser keeps the accepted forms identical everywhere a
// date can appear.
package dates

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var agoRegex = regexp.MustCompile(`^(\d+)([hdw])$`)

// Parse resolves a date argument relative to now.
//
// Accepted forms:
//   - YYYY-MM-DD
//   - RFC3339 (2025-06-15T14:00:00Z)
//   - YYYY-MM-DDTHH:MM and YYYY-MM-DDTHH:MM:SS
//   - today, yesterday, tomorrow (midnight, local time)
//   - Nh, Nd, Nw ("ago" shorthand: 3d is three days before now)
func Parse(s string, now time.Time) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, fmt.Errorf("empty date")
	}

	if t, ok := resolveKeyword(s, now); ok {
		return t, nil
	}
	if t, ok := resolveAgo(s, now); ok {
		return t, nil
	}

	formats := []string{
		"2006-01-02",
		time.RFC3339,
		"2006-01-02T15:04",
		"2006-01-02T15:04:05",
	}
	for _, format := range formats {
		if t, err := time.Parse(format, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date %q (use YYYY-MM-DD, RFC3339, today/yesterday, or shorthand like 7d)", s)
}

func resolveKeyword(s string, now time.Time) (time.Time, bool) {
	anchor := startOfDay(now)
	switch strings.ToLower(s) {
	case "today":
		return anchor, true
	case "yesterday":
		return anchor.AddDate(0, 0, -1), true
	case "tomorrow":
		return anchor.AddDate(0, 0, 1), true
	}
	return time.Time{}, false
}

func resolveAgo(s string, now time.Time) (time.Time, bool) {
	m := agoRegex.FindStringSubmatch(strings.ToLower(s))
	if m == nil {
		return time.Time{}, false
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return time.Time{}, false
	}
	switch m[2] {
	case "h":
		return now.Add(-time.Duration(n) * time.Hour), true
	case "d":
		return now.AddDate(0, 0, -n), true
	case "w":
		return now.AddDate(0, 0, -7*n), true
	}
	return time.Time{}, false
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
