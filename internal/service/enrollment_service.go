package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/mainlycc/aw/internal/booking"
	"github.com/mainlycc/aw/internal/dto"
	"github.com/mainlycc/aw/internal/model"
	"github.com/mainlycc/aw/internal/repository"
)

// ── enrollment module errors ──

var (
	ErrEnrollmentNotFound = errors.New("enrollment not found")
	ErrUnknownSubject     = errors.New("unknown subject")
	ErrUnknownLevel       = errors.New("unknown level")
	ErrNotATutor          = errors.New("the assigned user is not a tutor")
)

// EnrollmentService manages tutor-student subject assignments.
type EnrollmentService interface {
	Create(ctx context.Context, req *dto.CreateEnrollmentRequest, createdBy string) (*dto.EnrollmentResponse, error)
	Get(ctx context.Context, id string) (*dto.EnrollmentResponse, error)
	List(ctx context.Context, req *dto.EnrollmentListRequest) ([]dto.EnrollmentResponse, error)
	Update(ctx context.Context, id string, req *dto.UpdateEnrollmentRequest) (*dto.EnrollmentResponse, error)
	Delete(ctx context.Context, id string) error
}

type enrollmentService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewEnrollmentService creates an EnrollmentService.
func NewEnrollmentService(repo *repository.Repository, logger *zap.Logger) EnrollmentService {
	return &enrollmentService{repo: repo, logger: logger}
}

func (s *enrollmentService) Create(ctx context.Context, req *dto.CreateEnrollmentRequest, createdBy string) (*dto.EnrollmentResponse, error) {
	// subject/level come from the static booking catalog
	if _, ok := booking.SubjectByID(req.SubjectID); !ok {
		return nil, ErrUnknownSubject
	}
	if _, ok := booking.LevelByID(req.LevelID); !ok {
		return nil, ErrUnknownLevel
	}

	tutor, err := s.repo.User.GetByID(ctx, req.TutorID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	if tutor.Role != model.RoleTutor && tutor.Role != model.RoleAdmin {
		return nil, ErrNotATutor
	}

	if _, err := s.repo.Student.GetByID(ctx, req.StudentID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStudentNotFound
		}
		return nil, err
	}

	enrollment := &model.Enrollment{
		TutorID:    req.TutorID,
		StudentID:  req.StudentID,
		SubjectID:  req.SubjectID,
		LevelID:    req.LevelID,
		HourlyRate: req.HourlyRate,
		IsActive:   true,
	}
	enrollment.CreatedBy = &createdBy

	if err := s.repo.Enrollment.Create(ctx, enrollment); err != nil {
		s.logger.Error("create enrollment failed", zap.Error(err))
		return nil, err
	}

	enrollment.Tutor = tutor
	return toEnrollmentResponse(enrollment), nil
}

func (s *enrollmentService) Get(ctx context.Context, id string) (*dto.EnrollmentResponse, error) {
	enrollment, err := s.repo.Enrollment.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEnrollmentNotFound
		}
		return nil, err
	}
	return toEnrollmentResponse(enrollment), nil
}

func (s *enrollmentService) List(ctx context.Context, req *dto.EnrollmentListRequest) ([]dto.EnrollmentResponse, error) {
	enrollments, err := s.repo.Enrollment.List(ctx, req.TutorID, req.StudentID, req.SubjectID)
	if err != nil {
		s.logger.Error("list enrollments failed", zap.Error(err))
		return nil, err
	}

	out := make([]dto.EnrollmentResponse, 0, len(enrollments))
	for i := range enrollments {
		out = append(out, *toEnrollmentResponse(&enrollments[i]))
	}
	return out, nil
}

func (s *enrollmentService) Update(ctx context.Context, id string, req *dto.UpdateEnrollmentRequest) (*dto.EnrollmentResponse, error) {
	enrollment, err := s.repo.Enrollment.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEnrollmentNotFound
		}
		return nil, err
	}

	if req.HourlyRate != nil {
		enrollment.HourlyRate = *req.HourlyRate
	}
	if req.IsActive != nil {
		enrollment.IsActive = *req.IsActive
	}

	if err := s.repo.Enrollment.Update(ctx, enrollment); err != nil {
		s.logger.Error("update enrollment failed", zap.Error(err))
		return nil, err
	}
	return toEnrollmentResponse(enrollment), nil
}

func (s *enrollmentService) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.Enrollment.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrEnrollmentNotFound
		}
		return err
	}
	return s.repo.Enrollment.Delete(ctx, id)
}

func toEnrollmentResponse(e *model.Enrollment) *dto.EnrollmentResponse {
	resp := &dto.EnrollmentResponse{
		ID:         e.EnrollmentID,
		TutorID:    e.TutorID,
		StudentID:  e.StudentID,
		Subject:    dto.CatalogEntry{ID: e.SubjectID},
		Level:      dto.CatalogEntry{ID: e.LevelID},
		HourlyRate: e.HourlyRate,
		IsActive:   e.IsActive,
		CreatedAt:  e.CreatedAt.Format(time.RFC3339),
	}
	if subj, ok := booking.SubjectByID(e.SubjectID); ok {
		resp.Subject.Name = subj.Name
	}
	if lvl, ok := booking.LevelByID(e.LevelID); ok {
		resp.Level.Name = lvl.Name
	}
	if e.Tutor != nil {
		resp.TutorName = e.Tutor.FirstName + " " + e.Tutor.LastName
	}
	if e.Student != nil {
		resp.StudentName = e.Student.FirstName + " " + e.Student.LastName
	}
	return resp
}
