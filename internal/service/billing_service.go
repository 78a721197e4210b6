package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/mainlycc/aw/internal/dto"
	"github.com/mainlycc/aw/internal/model"
	"github.com/mainlycc/aw/internal/repository"
	pkgerrors "github.com/mainlycc/aw/pkg/errors"
)

// ── billing module errors ──

var (
	ErrBillingMonthNotFound = errors.New("billing month not found")
	ErrBillingMonthClosed   = errors.New("billing month is closed")
	ErrBadEntryDate         = errors.New("entry date must be YYYY-MM-DD")
	ErrEntryOutsideMonth    = errors.New("entry date falls outside the billing month")
)

// BillingService tracks tutoring hours per enrollment and month. Totals are
// always derived from the entries and the enrollment's hourly rate; nothing
// monetary is stored.
type BillingService interface {
	CreateMonth(ctx context.Context, req *dto.CreateBillingMonthRequest, actorID, actorRole string) (*dto.BillingMonthResponse, error)
	GetMonth(ctx context.Context, id string, actorID, actorRole string) (*dto.BillingMonthResponse, error)
	ListMonths(ctx context.Context, req *dto.BillingMonthListRequest, actorID, actorRole string) ([]dto.BillingMonthResponse, error)
	AddEntry(ctx context.Context, monthID string, req *dto.AddBillingEntryRequest, actorID, actorRole string) (*dto.BillingMonthResponse, error)
	DeleteEntry(ctx context.Context, monthID, entryID string, actorID, actorRole string) error
	CloseMonth(ctx context.Context, monthID string, actorID, actorRole string) (*dto.BillingMonthResponse, error)
}

type billingService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewBillingService creates a BillingService.
func NewBillingService(repo *repository.Repository, logger *zap.Logger) BillingService {
	return &billingService{repo: repo, logger: logger}
}

// authorizeMonth checks that the actor may touch the month: admins always,
// tutors only for their own enrollments.
func authorizeMonth(m *model.BillingMonth, actorID, actorRole string) error {
	if actorRole == model.RoleAdmin {
		return nil
	}
	if m.Enrollment != nil && m.Enrollment.TutorID == actorID {
		return nil
	}
	return pkgerrors.ErrForbidden
}

func (s *billingService) CreateMonth(ctx context.Context, req *dto.CreateBillingMonthRequest, actorID, actorRole string) (*dto.BillingMonthResponse, error) {
	enrollment, err := s.repo.Enrollment.GetByID(ctx, req.EnrollmentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEnrollmentNotFound
		}
		return nil, err
	}
	if actorRole != model.RoleAdmin && enrollment.TutorID != actorID {
		return nil, pkgerrors.ErrForbidden
	}

	month := &model.BillingMonth{
		EnrollmentID: req.EnrollmentID,
		Year:         req.Year,
		Month:        req.Month,
	}
	month.CreatedBy = &actorID

	if err := s.repo.Billing.CreateMonth(ctx, month); err != nil {
		s.logger.Error("create billing month failed", zap.Error(err))
		return nil, err
	}

	month.Enrollment = enrollment
	return toBillingMonthResponse(month), nil
}

func (s *billingService) GetMonth(ctx context.Context, id string, actorID, actorRole string) (*dto.BillingMonthResponse, error) {
	month, err := s.loadMonth(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := authorizeMonth(month, actorID, actorRole); err != nil {
		return nil, err
	}
	return toBillingMonthResponse(month), nil
}

func (s *billingService) ListMonths(ctx context.Context, req *dto.BillingMonthListRequest, actorID, actorRole string) ([]dto.BillingMonthResponse, error) {
	tutorID := req.TutorID
	// tutors can only query their own months regardless of the filter
	if actorRole != model.RoleAdmin {
		tutorID = actorID
	}

	months, err := s.repo.Billing.ListMonths(ctx, req.EnrollmentID, tutorID, req.Year, req.Month)
	if err != nil {
		s.logger.Error("list billing months failed", zap.Error(err))
		return nil, err
	}

	out := make([]dto.BillingMonthResponse, 0, len(months))
	for i := range months {
		out = append(out, *toBillingMonthResponse(&months[i]))
	}
	return out, nil
}

func (s *billingService) AddEntry(ctx context.Context, monthID string, req *dto.AddBillingEntryRequest, actorID, actorRole string) (*dto.BillingMonthResponse, error) {
	month, err := s.loadMonth(ctx, monthID)
	if err != nil {
		return nil, err
	}
	if err := authorizeMonth(month, actorID, actorRole); err != nil {
		return nil, err
	}
	if month.IsClosed {
		return nil, ErrBillingMonthClosed
	}

	entryDate, err := time.Parse("2006-01-02", req.EntryDate)
	if err != nil {
		return nil, ErrBadEntryDate
	}
	if entryDate.Year() != month.Year || int(entryDate.Month()) != month.Month {
		return nil, ErrEntryOutsideMonth
	}

	entry := &model.BillingEntry{
		BillingMonthID: month.BillingMonthID,
		EntryDate:      entryDate,
		Hours:          req.Hours,
		Note:           req.Note,
	}
	entry.CreatedBy = &actorID

	if err := s.repo.Billing.AddEntry(ctx, entry); err != nil {
		s.logger.Error("add billing entry failed", zap.Error(err))
		return nil, err
	}

	return s.GetMonth(ctx, monthID, actorID, actorRole)
}

func (s *billingService) DeleteEntry(ctx context.Context, monthID, entryID string, actorID, actorRole string) error {
	month, err := s.loadMonth(ctx, monthID)
	if err != nil {
		return err
	}
	if err := authorizeMonth(month, actorID, actorRole); err != nil {
		return err
	}
	if month.IsClosed {
		return ErrBillingMonthClosed
	}
	return s.repo.Billing.DeleteEntry(ctx, entryID)
}

func (s *billingService) CloseMonth(ctx context.Context, monthID string, actorID, actorRole string) (*dto.BillingMonthResponse, error) {
	month, err := s.loadMonth(ctx, monthID)
	if err != nil {
		return nil, err
	}
	if err := authorizeMonth(month, actorID, actorRole); err != nil {
		return nil, err
	}
	if month.IsClosed {
		return nil, ErrBillingMonthClosed
	}

	month.IsClosed = true
	month.UpdatedBy = &actorID
	if err := s.repo.Billing.UpdateMonth(ctx, month); err != nil {
		s.logger.Error("close billing month failed", zap.Error(err))
		return nil, err
	}
	return toBillingMonthResponse(month), nil
}

func (s *billingService) loadMonth(ctx context.Context, id string) (*model.BillingMonth, error) {
	month, err := s.repo.Billing.GetMonthByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBillingMonthNotFound
		}
		s.logger.Error("load billing month failed", zap.Error(err))
		return nil, err
	}
	return month, nil
}

func toBillingMonthResponse(m *model.BillingMonth) *dto.BillingMonthResponse {
	resp := &dto.BillingMonthResponse{
		ID:           m.BillingMonthID,
		EnrollmentID: m.EnrollmentID,
		Year:         m.Year,
		Month:        m.Month,
		IsClosed:     m.IsClosed,
	}

	if m.Enrollment != nil {
		resp.HourlyRate = m.Enrollment.HourlyRate
		if m.Enrollment.Tutor != nil {
			resp.TutorName = m.Enrollment.Tutor.FirstName + " " + m.Enrollment.Tutor.LastName
		}
		if m.Enrollment.Student != nil {
			resp.StudentName = m.Enrollment.Student.FirstName + " " + m.Enrollment.Student.LastName
		}
	}

	for _, e := range m.Entries {
		resp.TotalHours += e.Hours
		resp.Entries = append(resp.Entries, dto.BillingEntryResponse{
			ID:        e.BillingEntryID,
			EntryDate: e.EntryDate.Format("2006-01-02"),
			Hours:     e.Hours,
			Note:      e.Note,
		})
	}
	resp.TotalAmount = resp.TotalHours * resp.HourlyRate

	return resp
}
