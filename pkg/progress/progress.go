package progress

import (
	"fmt"
	"math"
	"strconv"
	"time"
)

const (
	dayLabel   = "Today"
	weekLabel  = "This Week"
	monthLabel = "This Month"
	yearLabel  = "This Year"
)

const secondsPerDay = 24 * 60 * 60

// WindowReport describes how far a single calendar window has progressed.
// The JSON field names are the wire contract consumed by the widget.
type WindowReport struct {
	Label     string  `json:"label"`
	Elapsed   float64 `json:"elapsed"`
	Remaining float64 `json:"remaining"`
	Detail    string  `json:"detail"`
}

// Snapshot holds the progress of all four calendar windows at a single instant.
type Snapshot struct {
	Timestamp string       `json:"timestamp"`
	Day       WindowReport `json:"day"`
	Week      WindowReport `json:"week"`
	Month     WindowReport `json:"month"`
	Year      WindowReport `json:"year"`
}

// ComputeSnapshot calculates elapsed and remaining percentages for the day,
// week, month, and year containing now. It is pure and total: every valid
// instant yields a snapshot, and window durations are always positive.
//
// Elapsed time is measured on the wall clock: calendar days count as exactly
// 86400 seconds and DST shifts are not compensated, so a 23- or 25-hour day
// still keeps every percentage within [0,100].
func ComputeSnapshot(now time.Time) Snapshot {
	year, month, day := now.Date()
	hour, minute, second := now.Clock()
	secondsOfDay := float64(hour*3600+minute*60+second) + float64(now.Nanosecond())/1e9

	dayTotal := float64(secondsPerDay)

	// Monday is the first day of the week, regardless of locale.
	delta := (int(now.Weekday()) - int(time.Monday) + 7) % 7
	weekElapsed := float64(delta*secondsPerDay) + secondsOfDay
	weekTotal := float64(7 * secondsPerDay)

	monthElapsed := float64((day-1)*secondsPerDay) + secondsOfDay
	monthTotal := float64(daysInMonth(year, month) * secondsPerDay)

	yearElapsed := float64((now.YearDay()-1)*secondsPerDay) + secondsOfDay
	yearTotal := float64(daysInYear(year) * secondsPerDay)

	_, isoWeek := now.ISOWeek()

	return Snapshot{
		Timestamp: now.Format(time.RFC3339),
		Day:       makeReport(dayLabel, now.Format("Monday, January 2"), secondsOfDay, dayTotal),
		Week:      makeReport(weekLabel, fmt.Sprintf("Week %d", isoWeek), weekElapsed, weekTotal),
		Month:     makeReport(monthLabel, now.Format("January 2006"), monthElapsed, monthTotal),
		Year:      makeReport(yearLabel, strconv.Itoa(year), yearElapsed, yearTotal),
	}
}

// makeReport rounds elapsed and remaining independently from the raw elapsed
// fraction. Rounding each side separately can drift the sum by up to ±0.1,
// which consumers tolerate.
func makeReport(label string, detail string, elapsedSeconds float64, totalSeconds float64) WindowReport {
	percent := elapsedSeconds / totalSeconds * 100
	return WindowReport{
		Label:     label,
		Elapsed:   round1(percent),
		Remaining: round1(100 - percent),
		Detail:    detail,
	}
}

// round1 rounds to one decimal place, half away from zero.
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// daysInMonth relies on time.Date normalization: day 0 of the next month is
// the last day of this one. Handles December and leap-year February.
func daysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func daysInYear(year int) int {
	if isLeapYear(year) {
		return 366
	}
	return 365
}

// isLeapYear implements the Gregorian rule: divisible by 4, except centuries
// not divisible by 400.
func isLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}
