package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/mainlycc/aw/internal/dto"
	"github.com/mainlycc/aw/internal/model"
	"github.com/mainlycc/aw/internal/repository"
)

// ── user module errors ──

var (
	ErrUserNotPending = errors.New("user is not awaiting approval")
)

// UserService is the account administration interface. All operations are
// admin-only; the handler layer enforces the role.
type UserService interface {
	List(ctx context.Context, req *dto.UserListRequest) ([]dto.UserResponse, int64, error)
	Get(ctx context.Context, id string) (*dto.UserResponse, error)
	Update(ctx context.Context, id string, req *dto.UpdateUserRequest) (*dto.UserResponse, error)
	Delete(ctx context.Context, id string, deletedBy string) error
	// Approve promotes a pending registration to a tutor account.
	Approve(ctx context.Context, id string, approvedBy string) (*dto.UserResponse, error)
	// Reject removes a pending registration.
	Reject(ctx context.Context, id string, rejectedBy string) error
}

type userService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewUserService creates a UserService.
func NewUserService(repo *repository.Repository, logger *zap.Logger) UserService {
	return &userService{repo: repo, logger: logger}
}

func (s *userService) List(ctx context.Context, req *dto.UserListRequest) ([]dto.UserResponse, int64, error) {
	page := req.Page
	if page <= 0 {
		page = 1
	}
	pageSize := req.PageSize
	if pageSize <= 0 {
		pageSize = 20
	}

	users, total, err := s.repo.User.List(ctx, req.Role, req.Search, page, pageSize)
	if err != nil {
		s.logger.Error("list users failed", zap.Error(err))
		return nil, 0, err
	}

	out := make([]dto.UserResponse, 0, len(users))
	for i := range users {
		out = append(out, *toUserResponse(&users[i]))
	}
	return out, total, nil
}

func (s *userService) Get(ctx context.Context, id string) (*dto.UserResponse, error) {
	user, err := s.repo.User.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return toUserResponse(user), nil
}

func (s *userService) Update(ctx context.Context, id string, req *dto.UpdateUserRequest) (*dto.UserResponse, error) {
	user, err := s.repo.User.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	if req.FirstName != nil {
		user.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		user.LastName = *req.LastName
	}
	if req.Phone != nil {
		user.Phone = *req.Phone
	}

	if err := s.repo.User.Update(ctx, user); err != nil {
		s.logger.Error("update user failed", zap.Error(err))
		return nil, err
	}
	return toUserResponse(user), nil
}

func (s *userService) Delete(ctx context.Context, id string, deletedBy string) error {
	if _, err := s.repo.User.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return err
	}
	return s.repo.User.Delete(ctx, id, deletedBy)
}

func (s *userService) Approve(ctx context.Context, id string, approvedBy string) (*dto.UserResponse, error) {
	user, err := s.repo.User.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	if user.Role != model.RolePending {
		return nil, ErrUserNotPending
	}

	user.Role = model.RoleTutor
	user.UpdatedBy = &approvedBy
	if err := s.repo.User.Update(ctx, user); err != nil {
		s.logger.Error("approve user failed", zap.Error(err))
		return nil, err
	}

	s.logger.Info("user approved",
		zap.String("user_id", user.UserID),
		zap.String("approved_by", approvedBy),
	)
	return toUserResponse(user), nil
}

func (s *userService) Reject(ctx context.Context, id string, rejectedBy string) error {
	user, err := s.repo.User.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return err
	}
	if user.Role != model.RolePending {
		return ErrUserNotPending
	}

	if err := s.repo.User.Delete(ctx, id, rejectedBy); err != nil {
		s.logger.Error("reject user failed", zap.Error(err))
		return err
	}

	s.logger.Info("user rejected",
		zap.String("user_id", id),
		zap.String("rejected_by", rejectedBy),
	)
	return nil
}
