package booking

import (
	"sort"
	"time"
)

// ViewMode selects the calendar projection. Modes are freely switchable;
// switching never touches the underlying slot set.
type ViewMode string

const (
	ViewWeek ViewMode = "week"
	ViewDay  ViewMode = "day"
	ViewList ViewMode = "list"
)

// ParseViewMode validates a mode string, falling back to the week view.
func ParseViewMode(s string) (ViewMode, bool) {
	switch ViewMode(s) {
	case ViewWeek, ViewDay, ViewList:
		return ViewMode(s), true
	}
	return ViewWeek, false
}

// The grid spans the union of the weekday and weekend bands.
const (
	GridHourFrom = 8
	GridHourTo   = 22 // inclusive; 15 rows
)

// listLimit caps the list view at the nearest upcoming entries.
const listLimit = 20

// GridHours returns the hour rows shared by the week and day views.
func GridHours() []int {
	hours := make([]int, 0, GridHourTo-GridHourFrom+1)
	for h := GridHourFrom; h <= GridHourTo; h++ {
		hours = append(hours, h)
	}
	return hours
}

// WeekCell is one (day, hour) position in the week grid. Inert marks cells
// outside the day's bookable band, rendered as placeholders.
type WeekCell struct {
	Day   time.Time  `json:"day"`
	Hour  int        `json:"hour"`
	Slots []TimeSlot `json:"slots,omitempty"`
	Inert bool       `json:"inert,omitempty"`
}

// WeekRow is one hour row across the seven days.
type WeekRow struct {
	Hour  int        `json:"hour"`
	Cells []WeekCell `json:"cells"`
}

// WeekView is the 7-day x 15-hour grid projection.
type WeekView struct {
	WeekStart time.Time   `json:"week_start"`
	WeekEnd   time.Time   `json:"week_end"`
	Days      []time.Time `json:"days"`
	Rows      []WeekRow   `json:"rows"`
}

// DayRow is one hour row of the day view.
type DayRow struct {
	Hour  int        `json:"hour"`
	Slots []TimeSlot `json:"slots,omitempty"`
	Inert bool       `json:"inert,omitempty"`
}

// DayView is the single-day vertical projection.
type DayView struct {
	Day  time.Time `json:"day"`
	Rows []DayRow  `json:"rows"`
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// slotsAt collects the slots starting at the given day and hour.
func slotsAt(slots []TimeSlot, day time.Time, hour int) []TimeSlot {
	var out []TimeSlot
	for _, s := range slots {
		if sameDay(s.Start, day) && s.Start.Hour() == hour {
			out = append(out, s)
		}
	}
	return out
}

// inHourBand reports whether hour falls within the day's bookable band.
func inHourBand(day time.Time, hour int) bool {
	from, to := HourBand(day)
	return hour >= from && hour < to
}

// ProjectWeek builds the week grid for the week containing anchor.
func ProjectWeek(slots []TimeSlot, anchor time.Time) WeekView {
	monday := WeekStart(anchor)

	days := make([]time.Time, 7)
	for i := range days {
		days[i] = monday.AddDate(0, 0, i)
	}

	rows := make([]WeekRow, 0, GridHourTo-GridHourFrom+1)
	for _, hour := range GridHours() {
		row := WeekRow{Hour: hour, Cells: make([]WeekCell, 0, 7)}
		for _, day := range days {
			cell := WeekCell{
				Day:   day,
				Hour:  hour,
				Slots: slotsAt(slots, day, hour),
			}
			cell.Inert = len(cell.Slots) == 0 && !inHourBand(day, hour)
			row.Cells = append(row.Cells, cell)
		}
		rows = append(rows, row)
	}

	return WeekView{
		WeekStart: monday,
		WeekEnd:   monday.AddDate(0, 0, 6),
		Days:      days,
		Rows:      rows,
	}
}

// ProjectDay builds the single-day projection for the given day.
func ProjectDay(slots []TimeSlot, day time.Time) DayView {
	date := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())

	rows := make([]DayRow, 0, GridHourTo-GridHourFrom+1)
	for _, hour := range GridHours() {
		row := DayRow{
			Hour:  hour,
			Slots: slotsAt(slots, date, hour),
		}
		row.Inert = len(row.Slots) == 0 && !inHourBand(date, hour)
		rows = append(rows, row)
	}

	return DayView{Day: date, Rows: rows}
}

// ProjectList flattens availability slots into a chronological list, capped
// at the nearest 20 entries. The input slice is never modified.
func ProjectList(slots []TimeSlot) []TimeSlot {
	avail := make([]TimeSlot, 0, len(slots))
	for _, s := range slots {
		if s.Kind == KindAvailability {
			avail = append(avail, s)
		}
	}

	sort.SliceStable(avail, func(i, j int) bool {
		return avail[i].Start.Before(avail[j].Start)
	})

	if len(avail) > listLimit {
		avail = avail[:listLimit]
	}
	return avail
}

// ── week navigation ──

// NextWeek shifts the anchor forward by exactly seven days.
func NextWeek(anchor time.Time) time.Time {
	return anchor.AddDate(0, 0, 7)
}

// PrevWeek shifts the anchor back by exactly seven days.
func PrevWeek(anchor time.Time) time.Time {
	return anchor.AddDate(0, 0, -7)
}
