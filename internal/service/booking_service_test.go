package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/mainlycc/aw/config"
	"github.com/mainlycc/aw/internal/booking"
	"github.com/mainlycc/aw/internal/dto"
	"github.com/mainlycc/aw/internal/notify"
)

func setupTestBookingService() BookingService {
	cfg := &config.BookingConfig{
		ConfirmDelay:    0,
		ContactDebounce: 10 * time.Millisecond,
		SessionTTL:      time.Hour,
	}
	dispatcher := notify.NewDispatcher(&config.WebhookConfig{URL: ""}, zap.NewNop())
	return NewBookingService(cfg, dispatcher, zap.NewNop())
}

func strPtr(s string) *string { return &s }

// configuredSession creates a session narrowed to math/basic.
func configuredSession(t *testing.T, svc BookingService) string {
	t.Helper()
	ctx := context.Background()

	state, err := svc.CreateSession(ctx)
	if err != nil {
		t.Fatalf("CreateSession: %v", err)
	}
	state, err = svc.Configure(ctx, state.SessionID, &dto.ConfigureSessionRequest{
		SubjectID: strPtr("math"),
		LevelID:   strPtr("basic"),
	})
	if err != nil {
		t.Fatalf("Configure: %v", err)
	}
	return state.SessionID
}

func TestBookingService_Catalog(t *testing.T) {
	svc := setupTestBookingService()

	cat := svc.Catalog()
	if len(cat.Subjects) != 9 {
		t.Errorf("expected 9 subjects, got %d", len(cat.Subjects))
	}
	if len(cat.Levels) != 3 {
		t.Errorf("expected 3 levels, got %d", len(cat.Levels))
	}
}

func TestBookingService_CreateSession_EmptyUntilConfigured(t *testing.T) {
	svc := setupTestBookingService()

	state, err := svc.CreateSession(context.Background())
	if err != nil {
		t.Fatalf("CreateSession: %v", err)
	}
	if state.SessionID == "" {
		t.Fatal("missing session id")
	}
	if state.ViewMode != "week" {
		t.Errorf("view mode %q, expected week", state.ViewMode)
	}
	if state.Week == nil {
		t.Fatal("week view should be present")
	}
	for _, row := range state.Week.Rows {
		for _, cell := range row.Cells {
			if len(cell.Slots) != 0 {
				t.Fatal("no slots before subject and level are chosen")
			}
		}
	}
}

func TestBookingService_Configure_UnknownCatalogIDs(t *testing.T) {
	svc := setupTestBookingService()
	ctx := context.Background()
	state, _ := svc.CreateSession(ctx)

	if _, err := svc.Configure(ctx, state.SessionID, &dto.ConfigureSessionRequest{
		SubjectID: strPtr("alchemia"),
	}); !errors.Is(err, ErrUnknownSubject) {
		t.Errorf("expected ErrUnknownSubject, got %v", err)
	}
	if _, err := svc.Configure(ctx, state.SessionID, &dto.ConfigureSessionRequest{
		LevelID: strPtr("mistrz"),
	}); !errors.Is(err, ErrUnknownLevel) {
		t.Errorf("expected ErrUnknownLevel, got %v", err)
	}
	if _, err := svc.Configure(ctx, state.SessionID, &dto.ConfigureSessionRequest{
		Day: strPtr("kiedys"),
	}); !errors.Is(err, ErrBadDate) {
		t.Errorf("expected ErrBadDate, got %v", err)
	}
}

func TestBookingService_Configure_WeekJump(t *testing.T) {
	svc := setupTestBookingService()
	ctx := context.Background()
	id := configuredSession(t, svc)

	state, err := svc.Configure(ctx, id, &dto.ConfigureSessionRequest{
		Week: strPtr("2024-06-06"), // a Thursday; anchor normalizes to Monday
	})
	if err != nil {
		t.Fatalf("Configure: %v", err)
	}
	if state.WeekStart != "2024-06-03" {
		t.Errorf("week start %q, expected 2024-06-03", state.WeekStart)
	}
	if state.WeekEnd != "2024-06-09" {
		t.Errorf("week end %q, expected 2024-06-09", state.WeekEnd)
	}
}

func TestBookingService_StateCarriesExactlyOneProjection(t *testing.T) {
	svc := setupTestBookingService()
	ctx := context.Background()
	id := configuredSession(t, svc)

	cases := []struct {
		mode string
		want func(*dto.SessionStateResponse) bool
	}{
		{"week", func(s *dto.SessionStateResponse) bool { return s.Week != nil && s.Day == nil && s.List == nil }},
		{"day", func(s *dto.SessionStateResponse) bool { return s.Week == nil && s.Day != nil && s.List == nil }},
		{"list", func(s *dto.SessionStateResponse) bool { return s.Week == nil && s.Day == nil && s.List != nil }},
	}
	for _, tc := range cases {
		state, err := svc.Configure(ctx, id, &dto.ConfigureSessionRequest{ViewMode: strPtr(tc.mode)})
		if err != nil {
			t.Fatalf("Configure %s: %v", tc.mode, err)
		}
		if !tc.want(state) {
			t.Errorf("mode %s: wrong projection set", tc.mode)
		}
	}
}

func TestBookingService_Navigate(t *testing.T) {
	svc := setupTestBookingService()
	ctx := context.Background()
	id := configuredSession(t, svc)

	before, _ := svc.GetState(ctx, id)
	next, err := svc.Navigate(ctx, id, &dto.NavigateRequest{Direction: "next"})
	if err != nil {
		t.Fatalf("Navigate: %v", err)
	}
	if next.WeekStart == before.WeekStart {
		t.Error("next should move the visible week")
	}

	back, _ := svc.Navigate(ctx, id, &dto.NavigateRequest{Direction: "prev"})
	if back.WeekStart != before.WeekStart {
		t.Errorf("prev should return to %s, got %s", before.WeekStart, back.WeekStart)
	}
}

func TestBookingService_BookFlow(t *testing.T) {
	svc := setupTestBookingService()
	ctx := context.Background()
	id := configuredSession(t, svc)

	state, _ := svc.Configure(ctx, id, &dto.ConfigureSessionRequest{ViewMode: strPtr("list")})
	if len(state.List) == 0 {
		t.Fatal("expected available slots")
	}
	slotID := state.List[0].ID

	state, err := svc.SelectSlot(ctx, id, &dto.SelectSlotRequest{SlotID: slotID})
	if err != nil {
		t.Fatalf("SelectSlot: %v", err)
	}
	if state.Selected != slotID {
		t.Errorf("selected %q, expected %q", state.Selected, slotID)
	}

	if _, err := svc.UpdateContact(ctx, id, &dto.ContactRequest{
		ChildName: "Jan", Email: "jan@example.com",
	}); err != nil {
		t.Fatalf("UpdateContact: %v", err)
	}

	resp, err := svc.Book(ctx, id, &dto.BookRequest{SlotID: slotID, Note: "prosze o Teams"})
	if err != nil {
		t.Fatalf("Book: %v", err)
	}
	if !strings.HasPrefix(resp.ReservationID, "res_") {
		t.Errorf("reservation id %q", resp.ReservationID)
	}
	if resp.Lesson.Kind != booking.KindLesson || resp.Lesson.Status != booking.StatusConfirmed {
		t.Errorf("lesson kind=%v status=%v", resp.Lesson.Kind, resp.Lesson.Status)
	}
	// no webhook configured counts as delivered
	if !resp.NotifyDelivered {
		t.Error("empty webhook URL should report delivered")
	}

	// booking the consumed slot again fails
	if _, err := svc.Book(ctx, id, &dto.BookRequest{SlotID: slotID}); !errors.Is(err, booking.ErrSlotNotFound) {
		t.Errorf("expected ErrSlotNotFound, got %v", err)
	}
}

func TestBookingService_LessonICS(t *testing.T) {
	svc := setupTestBookingService()
	ctx := context.Background()
	id := configuredSession(t, svc)

	state, _ := svc.Configure(ctx, id, &dto.ConfigureSessionRequest{ViewMode: strPtr("list")})
	slotID := state.List[0].ID
	resp, err := svc.Book(ctx, id, &dto.BookRequest{SlotID: slotID})
	if err != nil {
		t.Fatalf("Book: %v", err)
	}

	data, filename, err := svc.LessonICS(ctx, id, resp.Lesson.ID)
	if err != nil {
		t.Fatalf("LessonICS: %v", err)
	}
	if !strings.HasPrefix(filename, "lekcja_") || !strings.HasSuffix(filename, ".ics") {
		t.Errorf("filename %q", filename)
	}
	body := string(data)
	if !strings.Contains(body, "BEGIN:VCALENDAR") || !strings.Contains(body, "BEGIN:VEVENT") {
		t.Error("not an iCalendar document")
	}

	// an availability slot is not exportable
	if _, _, err := svc.LessonICS(ctx, id, state.List[1].ID); !errors.Is(err, ErrLessonNotFound) {
		t.Errorf("expected ErrLessonNotFound, got %v", err)
	}
}

func TestBookingService_UnknownSession(t *testing.T) {
	svc := setupTestBookingService()

	if _, err := svc.GetState(context.Background(), "sess_missing"); !errors.Is(err, booking.ErrSessionNotFound) {
		t.Errorf("expected ErrSessionNotFound, got %v", err)
	}
}
