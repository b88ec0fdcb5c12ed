package domain

import (
	"strconv"
	"strings"
	"time"
)

// monthNumbers is the fixed three-letter abbreviation table used by
// month labels such as "Jan-2025".
var monthNumbers = map[string]time.Month{
	"Jan": time.January, "Feb": time.February, "Mar": time.March,
	"Apr": time.April, "May": time.May, "Jun": time.June,
	"Jul": time.July, "Aug": time.August, "Sep": time.September,
	"Oct": time.October, "Nov": time.November, "Dec": time.December,
}

// ParseMonthLabel splits a "MMM-YYYY" label into month and year.
// Returns false for anything outside the abbreviation table.
func ParseMonthLabel(label string) (time.Month, int, bool) {
	abbr, yearStr, found := strings.Cut(label, "-")
	if !found {
		return 0, 0, false
	}
	month, ok := monthNumbers[abbr]
	if !ok {
		return 0, 0, false
	}
	year, err := strconv.Atoi(yearStr)
	if err != nil || year <= 0 {
		return 0, 0, false
	}
	return month, year, true
}

// DateForMonthLabel combines a month label with a day of month into a
// calendar date in the local timezone.
func DateForMonthLabel(label string, day int) (time.Time, bool) {
	month, year, ok := ParseMonthLabel(label)
	if !ok || day < 1 || day > 31 {
		return time.Time{}, false
	}
	return time.Date(year, month, day, 0, 0, 0, 0, time.Local), true
}

// MonthLabelFor formats t as a "MMM-YYYY" month label.
func MonthLabelFor(t time.Time) string {
	return t.Format("Jan-2006")
}

// ShiftFor derives the shift from time of day: before noon is Morning,
// noon onward is Evening.
func ShiftFor(t time.Time) Shift {
	if t.Hour() < 12 {
		return ShiftMorning
	}
	return ShiftEvening
}
