package models

import (
	"fmt"
	"time"
)

// SlotTimes is the fixed venue-wide grid of 2-hour slot start times. The set
// wraps through midnight: the last three entries render under a date's night
// section but are looked up against the previous calendar day upstream.
var SlotTimes = []string{
	"06:00", "08:00", "10:00", "12:00",
	"14:00", "16:00", "18:00", "20:00",
	"22:00", "00:00", "02:00", "04:00",
}

// SlotSpanMinutes is the length of one sellable block. Upstream books in
// 1-hour intervals, so each block is backed by two upstream probe times.
const (
	SlotSpanMinutes  = 120
	ProbeStepMinutes = 60
)

// DayType is the venue's coarse weekday/weekend split.
type DayType string

const (
	DayTypeWeekday DayType = "weekday"
	DayTypeWeekend DayType = "weekend"
)

// DayBand is the day/night pricing band derived from the slot label.
type DayBand string

const (
	DayBandDay   DayBand = "day"
	DayBandNight DayBand = "night"
)

const dateLayout = "2006-01-02"

// ParseDate validates a display date in YYYY-MM-DD form.
func ParseDate(s string) (time.Time, error) {
	d, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, &InvalidDateError{Input: s}
	}
	return d, nil
}

// FormatDate renders a date back to YYYY-MM-DD.
func FormatDate(d time.Time) string {
	return d.Format(dateLayout)
}

// RealDate maps a display date and slot start to the calendar day upstream
// records it under. Starts before 06:00 belong to the previous day even
// though the UI shows them under the following day's night section.
func RealDate(displayDate time.Time, start string) time.Time {
	if start < "06:00" {
		return displayDate.AddDate(0, 0, -1)
	}
	return displayDate
}

// DayTypeOf classifies a date. The venue treats Friday through Sunday as
// weekend; this is a business rule, not the usual Sat/Sun split.
func DayTypeOf(d time.Time) DayType {
	switch d.Weekday() {
	case time.Friday, time.Saturday, time.Sunday:
		return DayTypeWeekend
	default:
		return DayTypeWeekday
	}
}

// DayBandOf classifies a slot start label into the day or night band. The
// comparison is lexicographic on the zero-padded HH:MM label on purpose;
// the service mapping tables are keyed to exactly these boundaries.
func DayBandOf(start string) DayBand {
	if start >= "08:00" && start < "16:00" {
		return DayBandDay
	}
	return DayBandNight
}

// AddMinutes shifts an HH:MM label by delta minutes, wrapping within a day.
// A label that does not parse is returned unchanged; a lookup with it then
// misses rather than silently probing around midnight.
func AddMinutes(hhmm string, delta int) string {
	var h, m int
	if n, err := fmt.Sscanf(hhmm, "%d:%d", &h, &m); err != nil || n != 2 {
		return hhmm
	}
	total := (h*60 + m + delta) % (24 * 60)
	if total < 0 {
		total += 24 * 60
	}
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}
