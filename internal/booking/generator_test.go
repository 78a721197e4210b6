package booking

import (
	"testing"
	"time"
)

// monday is 2024-06-03, a known Monday.
var monday = time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC)

func TestGenerateWeek_Counts(t *testing.T) {
	slots := GenerateWeek("math", "basic", monday)

	// 5 weekdays x 8 + 2 weekend days x 5
	if len(slots) != 50 {
		t.Fatalf("expected 50 slots, got %d", len(slots))
	}

	perDay := make(map[int]int)
	for _, s := range slots {
		perDay[dayOffset(s.Start)]++
	}
	for day := 0; day < 5; day++ {
		if perDay[day] != 8 {
			t.Errorf("weekday offset %d: expected 8 slots, got %d", day, perDay[day])
		}
	}
	for day := 5; day < 7; day++ {
		if perDay[day] != 5 {
			t.Errorf("weekend offset %d: expected 5 slots, got %d", day, perDay[day])
		}
	}
}

func TestGenerateWeek_HourBands(t *testing.T) {
	slots := GenerateWeek("math", "basic", monday)

	for _, s := range slots {
		hour := s.Start.Hour()
		if isWeekend(s.Start) {
			if hour < WeekendHourFrom || hour >= WeekendHourTo {
				t.Errorf("weekend slot %s starts at %d, outside [%d,%d)", s.ID, hour, WeekendHourFrom, WeekendHourTo)
			}
		} else {
			if hour < WeekdayHourFrom || hour >= WeekdayHourTo {
				t.Errorf("weekday slot %s starts at %d, outside [%d,%d)", s.ID, hour, WeekdayHourFrom, WeekdayHourTo)
			}
		}
	}
}

func TestGenerateWeek_SlotShape(t *testing.T) {
	slots := GenerateWeek("math", "basic", monday)

	for _, s := range slots {
		if s.End.Sub(s.Start) != SlotDuration {
			t.Errorf("slot %s: duration %v, expected %v", s.ID, s.End.Sub(s.Start), SlotDuration)
		}
		if s.Kind != KindAvailability {
			t.Errorf("slot %s: kind %q, expected availability", s.ID, s.Kind)
		}
		if s.Status != "" {
			t.Errorf("slot %s: availability must not carry a status, got %q", s.ID, s.Status)
		}
	}
}

func TestGenerateWeek_DeterministicIDs(t *testing.T) {
	first := GenerateWeek("math", "basic", monday)
	second := GenerateWeek("math", "basic", monday)

	if len(first) != len(second) {
		t.Fatalf("runs differ in length: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i].ID != second[i].ID || !first[i].Start.Equal(second[i].Start) {
			t.Errorf("index %d differs between runs: %s vs %s", i, first[i].ID, second[i].ID)
		}
	}

	// first slot of a Monday week is the Monday 14:00 slot
	if first[0].ID != "slot_math_basic_0_14" {
		t.Errorf("first slot id %q, expected slot_math_basic_0_14", first[0].ID)
	}
	// last slot is Sunday 13:00
	if first[len(first)-1].ID != "slot_math_basic_6_13" {
		t.Errorf("last slot id %q, expected slot_math_basic_6_13", first[len(first)-1].ID)
	}
}

func TestGenerateWeek_NormalizesAnchor(t *testing.T) {
	// Thursday of the same week must yield the same slots as Monday
	thursday := monday.AddDate(0, 0, 3)

	fromMonday := GenerateWeek("physics", "advanced", monday)
	fromThursday := GenerateWeek("physics", "advanced", thursday)

	if len(fromMonday) != len(fromThursday) {
		t.Fatalf("lengths differ: %d vs %d", len(fromMonday), len(fromThursday))
	}
	for i := range fromMonday {
		if fromMonday[i].ID != fromThursday[i].ID {
			t.Errorf("index %d: %s vs %s", i, fromMonday[i].ID, fromThursday[i].ID)
		}
	}
}

func TestWeekStart(t *testing.T) {
	cases := []struct {
		name string
		in   time.Time
	}{
		{"monday itself", monday},
		{"midweek", time.Date(2024, 6, 5, 17, 30, 0, 0, time.UTC)},
		{"sunday", time.Date(2024, 6, 9, 23, 59, 0, 0, time.UTC)},
	}
	for _, tc := range cases {
		got := WeekStart(tc.in)
		if !got.Equal(monday) {
			t.Errorf("%s: WeekStart = %v, expected %v", tc.name, got, monday)
		}
	}
}

func TestHourBand(t *testing.T) {
	from, to := HourBand(monday)
	if from != 14 || to != 22 {
		t.Errorf("weekday band = [%d,%d), expected [14,22)", from, to)
	}

	saturday := monday.AddDate(0, 0, 5)
	from, to = HourBand(saturday)
	if from != 9 || to != 14 {
		t.Errorf("weekend band = [%d,%d), expected [9,14)", from, to)
	}
}
