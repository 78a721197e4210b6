package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/mainlycc/aw/config"
	"github.com/mainlycc/aw/internal/booking"
	"github.com/mainlycc/aw/internal/dto"
	"github.com/mainlycc/aw/internal/notify"
)

// ── booking module errors ──

var (
	ErrBadDate        = errors.New("date must be YYYY-MM-DD")
	ErrLessonNotFound = errors.New("lesson not found in this session")
)

// BookingService drives the public availability calendar: per-client
// sessions, slot generation, calendar projections and the reservation flow.
// All state is in memory; a session and its booked lessons vanish with it.
type BookingService interface {
	Catalog() *dto.CatalogResponse
	CreateSession(ctx context.Context) (*dto.SessionStateResponse, error)
	GetState(ctx context.Context, sessionID string) (*dto.SessionStateResponse, error)
	Configure(ctx context.Context, sessionID string, req *dto.ConfigureSessionRequest) (*dto.SessionStateResponse, error)
	Navigate(ctx context.Context, sessionID string, req *dto.NavigateRequest) (*dto.SessionStateResponse, error)
	SelectSlot(ctx context.Context, sessionID string, req *dto.SelectSlotRequest) (*dto.SessionStateResponse, error)
	UpdateContact(ctx context.Context, sessionID string, req *dto.ContactRequest) (*dto.SessionStateResponse, error)
	Book(ctx context.Context, sessionID string, req *dto.BookRequest) (*dto.BookingResponse, error)
	LessonICS(ctx context.Context, sessionID, slotID string) ([]byte, string, error)
}

type bookingService struct {
	cfg        *config.BookingConfig
	manager    *booking.Manager
	dispatcher *notify.Dispatcher
	logger     *zap.Logger
	now        func() time.Time
}

// NewBookingService creates a BookingService with its own session manager.
func NewBookingService(cfg *config.BookingConfig, dispatcher *notify.Dispatcher, logger *zap.Logger) BookingService {
	s := &bookingService{
		cfg:        cfg,
		dispatcher: dispatcher,
		logger:     logger,
		now:        time.Now,
	}
	s.manager = booking.NewManager(cfg.ContactDebounce, cfg.SessionTTL, s.onContactSync)
	return s
}

// onContactSync receives debounced contact form updates. The form is never
// persisted, so propagation is just an audit log line.
func (s *bookingService) onContactSync(sessionID string, data booking.ContactData) {
	s.logger.Debug("contact form synced",
		zap.String("session_id", sessionID),
		zap.Bool("has_email", data.Email != ""))
}

func (s *bookingService) Catalog() *dto.CatalogResponse {
	return &dto.CatalogResponse{
		Subjects: booking.Subjects(),
		Levels:   booking.Levels(),
	}
}

func (s *bookingService) CreateSession(ctx context.Context) (*dto.SessionStateResponse, error) {
	sess := s.manager.Create(s.now())
	return s.toState(sess), nil
}

func (s *bookingService) GetState(ctx context.Context, sessionID string) (*dto.SessionStateResponse, error) {
	sess, err := s.manager.Get(sessionID, s.now())
	if err != nil {
		return nil, err
	}
	return s.toState(sess), nil
}

func (s *bookingService) Configure(ctx context.Context, sessionID string, req *dto.ConfigureSessionRequest) (*dto.SessionStateResponse, error) {
	sess, err := s.manager.Get(sessionID, s.now())
	if err != nil {
		return nil, err
	}

	if req.SubjectID != nil {
		if _, ok := booking.SubjectByID(*req.SubjectID); !ok {
			return nil, ErrUnknownSubject
		}
		sess.SelectSubject(*req.SubjectID)
	}
	if req.LevelID != nil {
		if _, ok := booking.LevelByID(*req.LevelID); !ok {
			return nil, ErrUnknownLevel
		}
		sess.SelectLevel(*req.LevelID)
	}
	if req.ViewMode != nil {
		mode, _ := booking.ParseViewMode(*req.ViewMode)
		sess.SetViewMode(mode)
	}
	if req.Week != nil {
		week, err := time.ParseInLocation("2006-01-02", *req.Week, time.Local)
		if err != nil {
			return nil, ErrBadDate
		}
		sess.SetWeek(week)
	}
	if req.Day != nil {
		day, err := time.ParseInLocation("2006-01-02", *req.Day, time.Local)
		if err != nil {
			return nil, ErrBadDate
		}
		sess.SetDay(day)
	}

	return s.toState(sess), nil
}

func (s *bookingService) Navigate(ctx context.Context, sessionID string, req *dto.NavigateRequest) (*dto.SessionStateResponse, error) {
	sess, err := s.manager.Get(sessionID, s.now())
	if err != nil {
		return nil, err
	}

	switch req.Direction {
	case "next":
		sess.NavigateNext()
	case "prev":
		sess.NavigatePrev()
	default:
		sess.NavigateToday(s.now())
	}

	return s.toState(sess), nil
}

func (s *bookingService) SelectSlot(ctx context.Context, sessionID string, req *dto.SelectSlotRequest) (*dto.SessionStateResponse, error) {
	sess, err := s.manager.Get(sessionID, s.now())
	if err != nil {
		return nil, err
	}
	if _, err := sess.SelectSlot(req.SlotID); err != nil {
		return nil, err
	}
	return s.toState(sess), nil
}

func (s *bookingService) UpdateContact(ctx context.Context, sessionID string, req *dto.ContactRequest) (*dto.SessionStateResponse, error) {
	sess, err := s.manager.Get(sessionID, s.now())
	if err != nil {
		return nil, err
	}
	sess.UpdateContact(booking.ContactData{
		ChildName:  req.ChildName,
		ParentName: req.ParentName,
		Email:      req.Email,
		Phone:      req.Phone,
	})
	return s.toState(sess), nil
}

// Book commits the reservation locally, then notifies the automation
// endpoint. Dispatch failure is logged and surfaced in the response but the
// lesson stays confirmed; it is never rolled back.
func (s *bookingService) Book(ctx context.Context, sessionID string, req *dto.BookRequest) (*dto.BookingResponse, error) {
	sess, err := s.manager.Get(sessionID, s.now())
	if err != nil {
		return nil, err
	}

	original, lesson, err := sess.Reserve(req.SlotID, req.Note, s.cfg.ConfirmDelay)
	if err != nil {
		return nil, err
	}

	reservationID := "res_" + uuid.New().String()
	subject, _ := booking.SubjectByID(original.SubjectID)
	level, _ := booking.LevelByID(original.LevelID)
	contact := sess.Contact().WithFallbacks()

	payload := s.dispatcher.BuildPayload(notify.BookingData{
		ReservationID: reservationID,
		StudentName:   contact.ChildName,
		ParentName:    contact.ParentName,
		Email:         contact.Email,
		Phone:         contact.Phone,
		Subject:       subject,
		Level:         level,
		StartTime:     lesson.Start,
		EndTime:       lesson.End,
		Note:          req.Note,
		Status:        string(lesson.Status),
	})

	result := s.dispatcher.Send(ctx, payload)
	if !result.Success {
		s.logger.Warn("booking notification failed, lesson stays confirmed",
			zap.String("reservation_id", reservationID),
			zap.String("error", result.Error))
	}

	s.logger.Info("slot booked",
		zap.String("session_id", sessionID),
		zap.String("slot_id", original.ID),
		zap.String("lesson_id", lesson.ID),
		zap.Bool("notified", result.Success))

	return &dto.BookingResponse{
		ReservationID:   reservationID,
		Lesson:          lesson,
		NotifyDelivered: result.Success,
	}, nil
}

// LessonICS exports a booked lesson as an iCalendar file.
func (s *bookingService) LessonICS(ctx context.Context, sessionID, slotID string) ([]byte, string, error) {
	sess, err := s.manager.Get(sessionID, s.now())
	if err != nil {
		return nil, "", err
	}

	slot, ok := sess.FindSlot(slotID)
	if !ok || slot.Kind != booking.KindLesson {
		return nil, "", ErrLessonNotFound
	}

	subject, _ := booking.SubjectByID(slot.SubjectID)
	level, _ := booking.LevelByID(slot.LevelID)

	data, err := BuildLessonICS(slot, subject, level)
	if err != nil {
		return nil, "", err
	}
	return data, "lekcja_" + slot.Start.Format("2006-01-02_15") + ".ics", nil
}

// toState snapshots the session and attaches the projection for the active
// view mode. Exactly one of Week/Day/List is populated.
func (s *bookingService) toState(sess *booking.Session) *dto.SessionStateResponse {
	st := sess.Snapshot()
	monday := booking.WeekStart(st.Anchor)

	resp := &dto.SessionStateResponse{
		SessionID: sess.ID,
		SubjectID: st.SubjectID,
		LevelID:   st.LevelID,
		ViewMode:  string(st.ViewMode),
		WeekStart: monday.Format("2006-01-02"),
		WeekEnd:   monday.AddDate(0, 0, 6).Format("2006-01-02"),
		Selected:  st.Selected,
		Contact:   st.Contact,
	}

	switch st.ViewMode {
	case booking.ViewDay:
		day := booking.ProjectDay(st.Slots, st.DayViewDate())
		resp.Day = &day
	case booking.ViewList:
		resp.List = booking.ProjectList(st.Slots)
	default:
		week := booking.ProjectWeek(st.Slots, st.Anchor)
		resp.Week = &week
	}

	return resp
}
