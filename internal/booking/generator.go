package booking

import (
	"fmt"
	"time"
)

// Bookable hour bands. Weekday lessons run in the afternoon and evening,
// weekend lessons in the morning.
const (
	WeekdayHourFrom = 14
	WeekdayHourTo   = 22 // exclusive
	WeekendHourFrom = 9
	WeekendHourTo   = 14 // exclusive
)

// SlotID derives the deterministic id for a generated slot.
// dayOffset is 0 (Monday) through 6 (Sunday).
func SlotID(subjectID, levelID string, dayOffset, hour int) string {
	return fmt.Sprintf("slot_%s_%s_%d_%d", subjectID, levelID, dayOffset, hour)
}

// WeekStart normalizes t to midnight on the Monday of its week, keeping the
// location. All week-relative navigation anchors on this.
func WeekStart(t time.Time) time.Time {
	midnight := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	return midnight.AddDate(0, 0, -dayOffset(midnight))
}

// dayOffset maps a date to its offset from the Monday anchor (Mon=0, Sun=6).
func dayOffset(t time.Time) int {
	return (int(t.Weekday()) + 6) % 7
}

// isWeekend reports whether d falls on Saturday or Sunday.
func isWeekend(d time.Time) bool {
	wd := d.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// HourBand returns the bookable [from, to) hours for a given day.
func HourBand(d time.Time) (from, to int) {
	if isWeekend(d) {
		return WeekendHourFrom, WeekendHourTo
	}
	return WeekdayHourFrom, WeekdayHourTo
}

// GenerateWeek enumerates the availability slots for one subject, level and
// week. Pure: same inputs always produce the same slots in the same order.
// weekStart is normalized to Monday, so any date within the week works.
func GenerateWeek(subjectID, levelID string, weekStart time.Time) []TimeSlot {
	monday := WeekStart(weekStart)

	// 5 weekday days x 8 slots + 2 weekend days x 5 slots
	slots := make([]TimeSlot, 0, 50)

	for day := 0; day < 7; day++ {
		date := monday.AddDate(0, 0, day)
		from, to := HourBand(date)
		for hour := from; hour < to; hour++ {
			start := time.Date(date.Year(), date.Month(), date.Day(), hour, 0, 0, 0, date.Location())
			slots = append(slots, NewAvailability(subjectID, levelID, start))
		}
	}

	return slots
}
