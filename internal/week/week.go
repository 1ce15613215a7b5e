// Package week provides the pure date arithmetic behind the weekly route
// log: mapping a date to the Monday that identifies its week, and mapping
// weekdays to the six working-day buckets.
package week

import (
	"fmt"
	"time"
)

// WorkingDays are the six day buckets of a work week, Monday through
// Saturday. There is no Sunday bucket: Sunday activity is attributed to
// Sábado.
var WorkingDays = []string{"Lunes", "Martes", "Miércoles", "Jueves", "Viernes", "Sábado"}

// KeyLayout is the format of a week key: the Monday of the week as an ISO
// date string.
const KeyLayout = "2006-01-02"

// dateLayout is the es-ES display date format.
const dateLayout = "02/01/2006"

var shortMonths = [...]string{"ene", "feb", "mar", "abr", "may", "jun", "jul", "ago", "sep", "oct", "nov", "dic"}

// MondayOf returns the Monday on or before d in the same calendar week,
// truncated to midnight. Sunday counts as the last day of the preceding
// week, so for a Sunday the result is six days back.
func MondayOf(d time.Time) time.Time {
	back := int(d.Weekday()) - int(time.Monday)
	if d.Weekday() == time.Sunday {
		back = 6
	}
	m := d.AddDate(0, 0, -back)
	return time.Date(m.Year(), m.Month(), m.Day(), 0, 0, 0, 0, d.Location())
}

// Key returns the week key for d.
func Key(d time.Time) string {
	return MondayOf(d).Format(KeyLayout)
}

// DayLabel maps d's weekday to one of the six working-day names, with
// Sunday folded into Sábado.
func DayLabel(d time.Time) string {
	if d.Weekday() == time.Sunday {
		return WorkingDays[len(WorkingDays)-1]
	}
	return WorkingDays[int(d.Weekday())-1]
}

// FormatDate renders d as the display date used on records (dd/mm/yyyy).
func FormatDate(d time.Time) string {
	return d.Format(dateLayout)
}

// RecentKeys returns the week keys of the n most recent weeks counting
// back from now's week, most recent first.
func RecentKeys(now time.Time, n int) []string {
	monday := MondayOf(now)
	keys := make([]string, 0, n)
	for i := 0; i < n; i++ {
		keys = append(keys, monday.AddDate(0, 0, -7*i).Format(KeyLayout))
	}
	return keys
}

// RangeLabel renders a week key as its Monday-Saturday range, e.g.
// "02 feb - 07 feb".
func RangeLabel(weekKey string) (string, error) {
	monday, err := time.Parse(KeyLayout, weekKey)
	if err != nil {
		return "", fmt.Errorf("invalid week key %q: %w", weekKey, err)
	}
	saturday := monday.AddDate(0, 0, 5)
	return fmt.Sprintf("%s - %s", shortDate(monday), shortDate(saturday)), nil
}

func shortDate(d time.Time) string {
	return fmt.Sprintf("%02d %s", d.Day(), shortMonths[int(d.Month())-1])
}
