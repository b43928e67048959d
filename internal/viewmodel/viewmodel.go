// Package viewmodel holds the pure row-shaping helpers shared by the screen
// handlers: attendance percentages, submission status resolution, initials,
// 12-hour time formatting and day-of-week mapping. Every function is total --
// empty or malformed input yields a defined fallback, never an error.
package viewmodel

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
	"unicode"
)

// Submission statuses as stored in student_assignments.
const (
	StatusPending   = "pending"
	StatusSubmitted = "submitted"
	StatusGraded    = "graded"
)

// FallbackInitials is shown when a profile has no usable name yet.
const FallbackInitials = "ST"

// AttendancePercent returns round(present/total*100). A student with no
// attendance records has 0%, not a division fault.
func AttendancePercent(present, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(float64(present) / float64(total) * 100))
}

// ResolveSubmissionStatus maps an absent submission row to "pending".
func ResolveSubmissionStatus(status string) string {
	if status == "" {
		return StatusPending
	}
	return status
}

// Overdue reports whether an assignment deserves display emphasis: past due
// and still effectively pending. It changes nothing server-side.
func Overdue(dueDate, now time.Time, effectiveStatus string) bool {
	return dueDate.Before(now) && effectiveStatus == StatusPending
}

// Initials derives avatar initials from a full name: first rune of each
// whitespace-separated token, upper-cased.
func Initials(fullName string) string {
	fields := strings.Fields(fullName)
	if len(fields) == 0 {
		return FallbackInitials
	}

	var b strings.Builder
	for _, f := range fields {
		r := []rune(f)[0]
		b.WriteRune(unicode.ToUpper(r))
	}
	return b.String()
}

// CourseInitials shortens a course code for the learning screen tiles, e.g.
// "data mining" -> "DM". At most three letters.
func CourseInitials(code string) string {
	fields := strings.Fields(strings.ToUpper(code))
	var b strings.Builder
	for _, f := range fields {
		if b.Len() >= 3 {
			break
		}
		b.WriteRune([]rune(f)[0])
	}
	return b.String()
}

// FormatTime12 converts a 24-hour "HH:MM" string to the 12-hour form used on
// the schedule screen: "00:00" -> "12:00 AM", "13:30" -> "1:30 PM". Minutes
// pass through unchanged. Input that does not look like a clock time is
// returned as-is.
func FormatTime12(hhmm string) string {
	parts := strings.SplitN(hhmm, ":", 3)
	if len(parts) < 2 {
		return hhmm
	}

	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return hhmm
	}
	minute := parts[1]

	period := "AM"
	switch {
	case hour == 0:
		hour = 12
	case hour == 12:
		period = "PM"
	case hour > 12:
		hour -= 12
		period = "PM"
	}

	return fmt.Sprintf("%d:%s %s", hour, minute, period)
}

// DayOfWeek maps a calendar date to the 0=Sunday..6=Saturday index used by
// the class_schedule table.
func DayOfWeek(date time.Time) int {
	return int(date.Weekday())
}

// Greeting picks the dashboard welcome line for the given hour of day.
func Greeting(hour int) string {
	switch {
	case hour < 12:
		return "Good Morning"
	case hour < 17:
		return "Good Afternoon"
	default:
		return "Good Evening"
	}
}
