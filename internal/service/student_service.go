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
)

var ErrStudentNotFound = errors.New("student not found")

// StudentService is the pupil CRUD interface. Admin sees everything;
// tutors reach their own students through ListByTutor only.
type StudentService interface {
	Create(ctx context.Context, req *dto.CreateStudentRequest, createdBy string) (*dto.StudentResponse, error)
	Get(ctx context.Context, id string) (*dto.StudentResponse, error)
	List(ctx context.Context, req *dto.StudentListRequest) ([]dto.StudentResponse, int64, error)
	ListByTutor(ctx context.Context, tutorID string) ([]dto.StudentResponse, error)
	Update(ctx context.Context, id string, req *dto.UpdateStudentRequest) (*dto.StudentResponse, error)
	Delete(ctx context.Context, id string, deletedBy string) error
}

type studentService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewStudentService creates a StudentService.
func NewStudentService(repo *repository.Repository, logger *zap.Logger) StudentService {
	return &studentService{repo: repo, logger: logger}
}

func (s *studentService) Create(ctx context.Context, req *dto.CreateStudentRequest, createdBy string) (*dto.StudentResponse, error) {
	if req.ParentID != nil {
		if _, err := s.repo.Parent.GetByID(ctx, *req.ParentID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrParentNotFound
			}
			return nil, err
		}
	}

	student := &model.Student{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		SchoolClass: req.SchoolClass,
		ParentID:    req.ParentID,
	}
	student.CreatedBy = &createdBy

	if err := s.repo.Student.Create(ctx, student); err != nil {
		s.logger.Error("create student failed", zap.Error(err))
		return nil, err
	}
	return toStudentResponse(student), nil
}

func (s *studentService) Get(ctx context.Context, id string) (*dto.StudentResponse, error) {
	student, err := s.repo.Student.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStudentNotFound
		}
		return nil, err
	}
	return toStudentResponse(student), nil
}

func (s *studentService) List(ctx context.Context, req *dto.StudentListRequest) ([]dto.StudentResponse, int64, error) {
	page := req.Page
	if page <= 0 {
		page = 1
	}
	pageSize := req.PageSize
	if pageSize <= 0 {
		pageSize = 20
	}

	students, total, err := s.repo.Student.List(ctx, req.Search, page, pageSize)
	if err != nil {
		s.logger.Error("list students failed", zap.Error(err))
		return nil, 0, err
	}

	out := make([]dto.StudentResponse, 0, len(students))
	for i := range students {
		out = append(out, *toStudentResponse(&students[i]))
	}
	return out, total, nil
}

func (s *studentService) ListByTutor(ctx context.Context, tutorID string) ([]dto.StudentResponse, error) {
	students, err := s.repo.Student.ListByTutor(ctx, tutorID)
	if err != nil {
		s.logger.Error("list students by tutor failed", zap.Error(err))
		return nil, err
	}

	out := make([]dto.StudentResponse, 0, len(students))
	for i := range students {
		out = append(out, *toStudentResponse(&students[i]))
	}
	return out, nil
}

func (s *studentService) Update(ctx context.Context, id string, req *dto.UpdateStudentRequest) (*dto.StudentResponse, error) {
	student, err := s.repo.Student.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStudentNotFound
		}
		return nil, err
	}

	if req.FirstName != nil {
		student.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		student.LastName = *req.LastName
	}
	if req.SchoolClass != nil {
		student.SchoolClass = *req.SchoolClass
	}
	if req.ParentID != nil {
		if _, err := s.repo.Parent.GetByID(ctx, *req.ParentID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrParentNotFound
			}
			return nil, err
		}
		student.ParentID = req.ParentID
	}

	if err := s.repo.Student.Update(ctx, student); err != nil {
		s.logger.Error("update student failed", zap.Error(err))
		return nil, err
	}
	return toStudentResponse(student), nil
}

func (s *studentService) Delete(ctx context.Context, id string, deletedBy string) error {
	if _, err := s.repo.Student.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrStudentNotFound
		}
		return err
	}
	return s.repo.Student.Delete(ctx, id, deletedBy)
}

func toStudentResponse(st *model.Student) *dto.StudentResponse {
	resp := &dto.StudentResponse{
		ID:          st.StudentID,
		FirstName:   st.FirstName,
		LastName:    st.LastName,
		SchoolClass: st.SchoolClass,
		ParentID:    st.ParentID,
		CreatedAt:   st.CreatedAt.Format(time.RFC3339),
	}
	if st.Parent != nil {
		resp.Parent = &dto.ParentBrief{
			ID:        st.Parent.ParentID,
			FirstName: st.Parent.FirstName,
			LastName:  st.Parent.LastName,
			Phone:     st.Parent.Phone,
		}
	}
	return resp
}
