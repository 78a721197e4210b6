package service

import (
	"fmt"

	ics "github.com/arran4/golang-ical"

	"github.com/mainlycc/aw/internal/booking"
)

// BuildLessonICS renders a booked lesson as an iCalendar (RFC 5545) event
// importable into any calendar client.
func BuildLessonICS(lesson booking.TimeSlot, subject booking.Subject, level booking.Level) ([]byte, error) {
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//AW Korepetycje//Kalendarz//PL")

	evt := cal.AddEvent(lesson.ID)
	evt.SetCreatedTime(lesson.Start)
	evt.SetDtStampTime(lesson.Start)
	evt.SetStartAt(lesson.Start)
	evt.SetEndAt(lesson.End)
	evt.SetSummary(fmt.Sprintf("%s (%s)", subject.Name, level.Name))
	evt.SetDescription(fmt.Sprintf("Korepetycje: %s, poziom %s. %s", subject.Name, level.Name, level.Description))
	evt.SetStatus(ics.ObjectStatusConfirmed)

	return []byte(cal.Serialize()), nil
}
