package dto

import "github.com/mainlycc/aw/internal/booking"

// ── booking calendar DTOs ──
//
// The booking calendar is public and session-based: a client opens a
// session, narrows subject/level/week, clicks slots and finally books one.

// CatalogResponse lists the static subject and level catalogs.
type CatalogResponse struct {
	Subjects []booking.Subject `json:"subjects"`
	Levels   []booking.Level   `json:"levels"`
}

// ConfigureSessionRequest narrows the session's selection. Every field is
// optional; absent fields keep their current value.
type ConfigureSessionRequest struct {
	SubjectID *string `json:"subject_id" binding:"omitempty,max=30"`
	LevelID   *string `json:"level_id"   binding:"omitempty,max=30"`
	ViewMode  *string `json:"view_mode"  binding:"omitempty,oneof=week day list"`
	Week      *string `json:"week"       binding:"omitempty"` // "2024-06-03", any date within the week
	Day       *string `json:"day"        binding:"omitempty"` // day-view date
}

// NavigateRequest moves the visible week.
type NavigateRequest struct {
	Direction string `json:"direction" binding:"required,oneof=prev next today"`
}

// SelectSlotRequest marks a slot as the booking candidate.
type SelectSlotRequest struct {
	SlotID string `json:"slot_id" binding:"required"`
}

// ContactRequest syncs the contact form. Fields may be empty; fallback
// placeholders are substituted at dispatch time, never stored.
type ContactRequest struct {
	ChildName  string `json:"childName"  binding:"omitempty,max=200"`
	ParentName string `json:"parentName" binding:"omitempty,max=200"`
	Email      string `json:"email"      binding:"omitempty,max=255"`
	Phone      string `json:"phone"      binding:"omitempty,max=30"`
}

// BookRequest commits a booking for a selected slot.
type BookRequest struct {
	SlotID string `json:"slot_id" binding:"required"`
	Note   string `json:"note"    binding:"omitempty,max=500"`
}

// SessionStateResponse is the session snapshot plus the projection for the
// active view mode. Exactly one of Week/Day/List is set.
type SessionStateResponse struct {
	SessionID string              `json:"session_id"`
	SubjectID string              `json:"subject_id,omitempty"`
	LevelID   string              `json:"level_id,omitempty"`
	ViewMode  string              `json:"view_mode"`
	WeekStart string              `json:"week_start"`
	WeekEnd   string              `json:"week_end"`
	Selected  string              `json:"selected_slot_id,omitempty"`
	Contact   booking.ContactData `json:"contact"`
	Week      *booking.WeekView   `json:"week,omitempty"`
	Day       *booking.DayView    `json:"day,omitempty"`
	List      []booking.TimeSlot  `json:"list,omitempty"`
}

// BookingResponse reports a completed booking. NotifyDelivered mirrors the
// dispatcher outcome; the lesson is confirmed locally either way.
type BookingResponse struct {
	ReservationID   string           `json:"reservation_id"`
	Lesson          booking.TimeSlot `json:"lesson"`
	NotifyDelivered bool             `json:"notify_delivered"`
}
