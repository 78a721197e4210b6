package booking

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
)

var (
	ErrSlotNotFound      = errors.New("slot not found in the current week")
	ErrSlotUnavailable   = errors.New("slot is not open for booking")
	ErrBookingInProgress = errors.New("a booking for this slot is already in progress")
	ErrSessionNotFound   = errors.New("booking session not found or expired")
)

// ContactData is the transient contact form state captured before booking.
// It is never persisted; it travels with the outbound notification only.
type ContactData struct {
	ChildName  string `json:"childName"`
	ParentName string `json:"parentName"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
}

// Contact field fallbacks. Fields are not hard-validated; empty values are
// substituted with these placeholders in the outbound payload.
const (
	FallbackName  = "Nie podano"
	FallbackEmail = "niepodano@example.com"
)

// WithFallbacks replaces empty fields with the placeholder values.
func (c ContactData) WithFallbacks() ContactData {
	out := c
	if out.ChildName == "" {
		out.ChildName = FallbackName
	}
	if out.ParentName == "" {
		out.ParentName = FallbackName
	}
	if out.Email == "" {
		out.Email = FallbackEmail
	}
	if out.Phone == "" {
		out.Phone = FallbackName
	}
	return out
}

// SyncFunc receives debounced contact form updates.
type SyncFunc func(sessionID string, data ContactData)

// Session is one client's booking state: subject/level selection, the week
// anchor, the active slot set and the contact form. The slot set is derived,
// not persisted — it is regenerated on every selection change and fully
// replaces the previous set. A booked lesson lives only for the session's
// lifetime.
type Session struct {
	ID string

	mu        sync.Mutex
	subjectID string
	levelID   string
	anchor    time.Time // week anchor; WeekStart(anchor) is the visible Monday
	day       time.Time // day-view date; zero means the Monday anchor
	viewMode  ViewMode
	slots     []TimeSlot
	selected  string
	contact   ContactData
	inFlight  map[string]bool
	lastSeen  time.Time

	debouncer *Debouncer
	sync      SyncFunc
}

func newSession(id string, now time.Time, debounce time.Duration, sync SyncFunc) *Session {
	return &Session{
		ID:        id,
		anchor:    now,
		viewMode:  ViewWeek,
		inFlight:  make(map[string]bool),
		lastSeen:  now,
		debouncer: NewDebouncer(debounce),
		sync:      sync,
	}
}

// regenerate rebuilds the slot set for the current selection. Must be called
// with the lock held. Full replacement; a pending contact sync survives, a
// slot selection does not.
func (s *Session) regenerate() {
	s.selected = ""
	if s.subjectID == "" || s.levelID == "" {
		s.slots = nil
		return
	}
	s.slots = GenerateWeek(s.subjectID, s.levelID, WeekStart(s.anchor))
}

// SelectSubject picks a subject and clears the level, as the level bands
// differ per subject in the UI flow. A pending contact sync is cancelled.
func (s *Session) SelectSubject(subjectID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.debouncer.Cancel()
	s.subjectID = subjectID
	s.levelID = ""
	s.regenerate()
}

// SelectLevel picks a level and regenerates the week.
func (s *Session) SelectLevel(levelID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.debouncer.Cancel()
	s.levelID = levelID
	s.regenerate()
}

// SetViewMode switches the projection mode. The slot set is untouched.
func (s *Session) SetViewMode(mode ViewMode) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.viewMode = mode
}

// SetDay picks the day shown by the day view.
func (s *Session) SetDay(day time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.day = day
}

// SetWeek jumps to the week containing the given date.
func (s *Session) SetWeek(date time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.anchor = date
	s.day = time.Time{}
	s.regenerate()
}

// NavigateNext shifts the visible week forward by seven days.
func (s *Session) NavigateNext() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.anchor = NextWeek(s.anchor)
	s.day = time.Time{}
	s.regenerate()
}

// NavigatePrev shifts the visible week back by seven days.
func (s *Session) NavigatePrev() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.anchor = PrevWeek(s.anchor)
	s.day = time.Time{}
	s.regenerate()
}

// NavigateToday resets the anchor to the current date.
func (s *Session) NavigateToday(now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.anchor = now
	s.day = time.Time{}
	s.regenerate()
}

// SelectSlot marks a slot as the booking candidate and returns it.
func (s *Session) SelectSlot(slotID string) (TimeSlot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, slot := range s.slots {
		if slot.ID == slotID {
			s.selected = slotID
			return slot, nil
		}
	}
	return TimeSlot{}, ErrSlotNotFound
}

// UpdateContact stores the form state and arms the debounced propagation.
// Rapid updates within the window coalesce; the last value wins.
func (s *Session) UpdateContact(data ContactData) {
	s.mu.Lock()
	s.contact = data
	syncFn := s.sync
	id := s.ID
	s.mu.Unlock()

	if syncFn == nil {
		return
	}
	s.debouncer.Arm(func() {
		syncFn(id, data)
	})
}

// Contact returns the current form state.
func (s *Session) Contact() ContactData {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.contact
}

// Slots returns a copy of the active slot set.
func (s *Session) Slots() []TimeSlot {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]TimeSlot, len(s.slots))
	copy(out, s.slots)
	return out
}

// State is a point-in-time snapshot of the session.
type State struct {
	SubjectID string
	LevelID   string
	Anchor    time.Time
	Day       time.Time
	ViewMode  ViewMode
	Slots     []TimeSlot
	Selected  string
	Contact   ContactData
}

// Snapshot copies the session state under the lock.
func (s *Session) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	slots := make([]TimeSlot, len(s.slots))
	copy(slots, s.slots)
	return State{
		SubjectID: s.subjectID,
		LevelID:   s.levelID,
		Anchor:    s.anchor,
		Day:       s.day,
		ViewMode:  s.viewMode,
		Slots:     slots,
		Selected:  s.selected,
		Contact:   s.contact,
	}
}

// DayViewDate resolves the day shown by the day view: the selected day, or
// the Monday anchor when none was picked.
func (st State) DayViewDate() time.Time {
	if !st.Day.IsZero() {
		return st.Day
	}
	return WeekStart(st.Anchor)
}

// ── booking transition ──
//
/// Booking is a local two-phase commit: Reserve performs the local state
// transition after the confirmation delay; notifying the outside world is
// the caller's follow-up and its failure never rolls the transition back.

// Reserve transitions an availability slot to a confirmed lesson. The delay
// models the reservation round-trip and is not cancellable once started.
// Only one reservation per slot may be in flight at a time within a session.
// Returns the original slot and the lesson that replaced it.
func (s *Session) Reserve(slotID, note string, delay time.Duration) (TimeSlot, TimeSlot, error) {
	s.mu.Lock()
	var original TimeSlot
	found := false
	for _, slot := range s.slots {
		if slot.ID == slotID {
			original = slot
			found = true
			break
		}
	}
	if !found {
		s.mu.Unlock()
		return TimeSlot{}, TimeSlot{}, ErrSlotNotFound
	}
	if !original.IsBookable() {
		s.mu.Unlock()
		return TimeSlot{}, TimeSlot{}, ErrSlotUnavailable
	}
	if s.inFlight[slotID] {
		s.mu.Unlock()
		return TimeSlot{}, TimeSlot{}, ErrBookingInProgress
	}
	s.inFlight[slotID] = true
	s.mu.Unlock()

	if delay > 0 {
		<-time.After(delay)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.inFlight, slotID)

	lesson := original.Booked("Twoja lekcja", note)

	// remove the availability slot, insert the lesson: the two never
	// coexist for the same hour and the total count is unchanged
	kept := make([]TimeSlot, 0, len(s.slots))
	for _, slot := range s.slots {
		if slot.ID != slotID {
			kept = append(kept, slot)
		}
	}
	s.slots = append(kept, lesson)
	if s.selected == slotID {
		s.selected = lesson.ID
	}

	return original, lesson, nil
}

// FindSlot looks a slot up by id.
func (s *Session) FindSlot(slotID string) (TimeSlot, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, slot := range s.slots {
		if slot.ID == slotID {
			return slot, true
		}
	}
	return TimeSlot{}, false
}

// touch refreshes the idle timer.
func (s *Session) touch(now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastSeen = now
}

func (s *Session) idleSince() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastSeen
}

// ── session manager ──

// Manager owns the in-memory booking sessions. Idle sessions are pruned
// lazily on Create; there is no background worker.
type Manager struct {
	mu       sync.Mutex
	sessions map[string]*Session
	debounce time.Duration
	ttl      time.Duration
	sync     SyncFunc
}

// NewManager creates a session manager. sync receives debounced contact
// form updates and may be nil.
func NewManager(debounce, ttl time.Duration, sync SyncFunc) *Manager {
	return &Manager{
		sessions: make(map[string]*Session),
		debounce: debounce,
		ttl:      ttl,
		sync:     sync,
	}
}

// Create opens a new session anchored on the current week.
func (m *Manager) Create(now time.Time) *Session {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.pruneLocked(now)

	s := newSession(uuid.New().String(), now, m.debounce, m.sync)
	m.sessions[s.ID] = s
	return s
}

// Get returns a live session and refreshes its idle timer.
func (m *Manager) Get(id string, now time.Time) (*Session, error) {
	m.mu.Lock()
	s, ok := m.sessions[id]
	m.mu.Unlock()
	if !ok {
		return nil, ErrSessionNotFound
	}
	s.touch(now)
	return s, nil
}

// pruneLocked drops sessions idle past the TTL. Caller holds m.mu.
func (m *Manager) pruneLocked(now time.Time) {
	if m.ttl <= 0 {
		return
	}
	for id, s := range m.sessions {
		if now.Sub(s.idleSince()) > m.ttl {
			s.debouncer.Cancel()
			delete(m.sessions, id)
		}
	}
}

// Len reports the number of live sessions.
func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}
