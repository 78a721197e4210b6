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

var ErrParentNotFound = errors.New("parent not found")

// ParentService is the guardian CRUD interface.
type ParentService interface {
	Create(ctx context.Context, req *dto.CreateParentRequest, createdBy string) (*dto.ParentResponse, error)
	Get(ctx context.Context, id string) (*dto.ParentResponse, error)
	List(ctx context.Context) ([]dto.ParentResponse, error)
	Update(ctx context.Context, id string, req *dto.UpdateParentRequest) (*dto.ParentResponse, error)
	Delete(ctx context.Context, id string) error
}

type parentService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewParentService creates a ParentService.
func NewParentService(repo *repository.Repository, logger *zap.Logger) ParentService {
	return &parentService{repo: repo, logger: logger}
}

func (s *parentService) Create(ctx context.Context, req *dto.CreateParentRequest, createdBy string) (*dto.ParentResponse, error) {
	parent := &model.Parent{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
	}
	parent.CreatedBy = &createdBy

	if err := s.repo.Parent.Create(ctx, parent); err != nil {
		s.logger.Error("create parent failed", zap.Error(err))
		return nil, err
	}
	return toParentResponse(parent), nil
}

func (s *parentService) Get(ctx context.Context, id string) (*dto.ParentResponse, error) {
	parent, err := s.repo.Parent.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrParentNotFound
		}
		return nil, err
	}
	return toParentResponse(parent), nil
}

func (s *parentService) List(ctx context.Context) ([]dto.ParentResponse, error) {
	parents, err := s.repo.Parent.List(ctx)
	if err != nil {
		s.logger.Error("list parents failed", zap.Error(err))
		return nil, err
	}

	out := make([]dto.ParentResponse, 0, len(parents))
	for i := range parents {
		out = append(out, *toParentResponse(&parents[i]))
	}
	return out, nil
}

func (s *parentService) Update(ctx context.Context, id string, req *dto.UpdateParentRequest) (*dto.ParentResponse, error) {
	parent, err := s.repo.Parent.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrParentNotFound
		}
		return nil, err
	}

	if req.FirstName != nil {
		parent.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		parent.LastName = *req.LastName
	}
	if req.Email != nil {
		parent.Email = *req.Email
	}
	if req.Phone != nil {
		parent.Phone = *req.Phone
	}

	if err := s.repo.Parent.Update(ctx, parent); err != nil {
		s.logger.Error("update parent failed", zap.Error(err))
		return nil, err
	}
	return toParentResponse(parent), nil
}

func (s *parentService) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.Parent.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrParentNotFound
		}
		return err
	}
	return s.repo.Parent.Delete(ctx, id)
}

func toParentResponse(p *model.Parent) *dto.ParentResponse {
	return &dto.ParentResponse{
		ID:        p.ParentID,
		FirstName: p.FirstName,
		LastName:  p.LastName,
		Email:     p.Email,
		Phone:     p.Phone,
		CreatedAt: p.CreatedAt.Format(time.RFC3339),
	}
}
