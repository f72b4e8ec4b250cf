package format

import (
	"strings"
	"time"
)

// Layout formats timestamps according to the display_date and display_time
// settings.
type Layout struct {
	date string
	time string
}

// FromConfig reads the display settings through get. Missing values fall
// back to "yyyy-mm-dd" and "24h".
func FromConfig(get func(string) (string, bool)) Layout {
	displayDate, _ := get("display_date")
	displayTime, _ := get("display_time")
	return Layout{date: displayDate, time: displayTime}
}

// DateTime formats a time with both date and time.
// Example output: "2024-01-23 15:04" or "01/23/2024 3:04 PM"
func (l Layout) DateTime(t time.Time) string {
	return l.Date(t) + " " + l.Time(t)
}

// DateTimeShort formats a time with short date and time (no year).
// Example output: "01-23 15:04" or "23/01 15:04"
func (l Layout) DateTimeShort(t time.Time) string {
	return l.DateShort(t) + " " + l.Time(t)
}

// Full formats with full date and time with seconds.
// Example output: "2024-01-23 15:04:05"
func (l Layout) Full(t time.Time) string {
	return l.Date(t) + " " + l.TimeFull(t)
}

func (l Layout) Date(t time.Time) string {
	return t.Format(l.dateFormat())
}

func (l Layout) DateShort(t time.Time) string {
	return t.Format(l.dateFormatShort())
}

func (l Layout) Time(t time.Time) string {
	if l.time == "12h" {
		return t.Format("3:04 PM")
	}
	return t.Format("15:04")
}

func (l Layout) TimeFull(t time.Time) string {
	if l.time == "12h" {
		return t.Format("3:04:05 PM")
	}
	return t.Format("15:04:05")
}

// dateFormat maps presets to Go layouts. Anything else is taken as a Go
// layout.
func (l Layout) dateFormat() string {
	switch l.date {
	case "", "yyyy-mm-dd":
		return "2006-01-02"
	case "mm/dd/yyyy":
		return "01/02/2006"
	case "dd/mm/yyyy":
		return "02/01/2006"
	default:
		return l.date
	}
}

func (l Layout) dateFormatShort() string {
	switch l.date {
	case "", "yyyy-mm-dd":
		return "01-02"
	case "mm/dd/yyyy":
		return "01/02"
	case "dd/mm/yyyy":
		return "02/01"
	default:
		// Derive a short version of a custom layout by removing year patterns
		short := l.date
		for _, year := range []string{"2006", "/06", "-06", " 06"} {
			short = strings.ReplaceAll(short, year, "")
		}
		short = strings.Trim(strings.TrimSpace(short), "/-")
		if short == "" {
			return "Jan 02"
		}
		return short
	}
}
