package booking

import "time"

// SlotKind tags the two slot variants.
type SlotKind string

const (
	KindAvailability SlotKind = "availability"
	KindLesson       SlotKind = "lesson"
)

// LessonStatus is only meaningful on lesson slots.
type LessonStatus string

const (
	StatusConfirmed LessonStatus = "confirmed"
	StatusPending   LessonStatus = "pending"
	StatusCancelled LessonStatus = "cancelled"
)

// SlotDuration is the fixed lesson length.
const SlotDuration = time.Hour

// TimeSlot is one bookable hour. Kind distinguishes open availability from a
// booked lesson; Status is set only when Kind is KindLesson. Use the
// constructors below so an availability slot can never carry a status.
type TimeSlot struct {
	ID          string       `json:"id"`
	Kind        SlotKind     `json:"type"`
	SubjectID   string       `json:"subject_id"`
	LevelID     string       `json:"level_id"`
	Start       time.Time    `json:"start"`
	End         time.Time    `json:"end"`
	Status      LessonStatus `json:"status,omitempty"`
	Price       float64      `json:"price,omitempty"`
	TeacherName string       `json:"teacher_name,omitempty"`
	Note        string       `json:"note,omitempty"`
}

// NewAvailability builds an open slot starting at start.
// No catalog validation happens here; unknown ids are carried as-is.
func NewAvailability(subjectID, levelID string, start time.Time) TimeSlot {
	return TimeSlot{
		ID:        SlotID(subjectID, levelID, dayOffset(start), start.Hour()),
		Kind:      KindAvailability,
		SubjectID: subjectID,
		LevelID:   levelID,
		Start:     start,
		End:       start.Add(SlotDuration),
	}
}

// Booked derives the confirmed lesson slot that replaces an availability
// slot once it is reserved. The id is prefixed so the origin slot stays
// traceable.
func (s TimeSlot) Booked(teacherName, note string) TimeSlot {
	lesson := s
	lesson.ID = "lesson_" + s.ID
	lesson.Kind = KindLesson
	lesson.Status = StatusConfirmed
	lesson.TeacherName = teacherName
	lesson.Note = note
	return lesson
}

// IsBookable reports whether the slot is open availability.
func (s TimeSlot) IsBookable() bool {
	return s.Kind == KindAvailability
}
