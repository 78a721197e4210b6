package service

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/mainlycc/aw/internal/model"
	"github.com/mainlycc/aw/internal/repository"
)

func setupTestUserService() (UserService, *repository.Repository) {
	repo := newMockRepository()
	repo.User.Create(context.Background(), &model.User{
		UserID: "pending-001", Email: "nowy@example.com",
		FirstName: "Piotr", LastName: "Zielinski", Role: model.RolePending,
	})
	repo.User.Create(context.Background(), &model.User{
		UserID: "tutor-001", Email: "t@example.com",
		FirstName: "Ewa", LastName: "Nowak", Role: model.RoleTutor,
	})
	return NewUserService(repo, zap.NewNop()), repo
}

func TestUserService_Approve_PromotesToTutor(t *testing.T) {
	svc, repo := setupTestUserService()

	user, err := svc.Approve(context.Background(), "pending-001", "admin-001")
	if err != nil {
		t.Fatalf("Approve: %v", err)
	}
	if user.Role != model.RoleTutor {
		t.Errorf("role %q, expected tutor", user.Role)
	}

	stored, _ := repo.User.GetByID(context.Background(), "pending-001")
	if stored.Role != model.RoleTutor {
		t.Errorf("stored role %q, expected tutor", stored.Role)
	}
}

func TestUserService_Approve_OnlyPendingAccounts(t *testing.T) {
	svc, _ := setupTestUserService()

	if _, err := svc.Approve(context.Background(), "tutor-001", "admin-001"); !errors.Is(err, ErrUserNotPending) {
		t.Errorf("approving a tutor: expected ErrUserNotPending, got %v", err)
	}
	if _, err := svc.Approve(context.Background(), "missing", "admin-001"); !errors.Is(err, ErrUserNotFound) {
		t.Errorf("expected ErrUserNotFound, got %v", err)
	}
}

func TestUserService_Reject_RemovesPendingAccount(t *testing.T) {
	svc, repo := setupTestUserService()

	if err := svc.Reject(context.Background(), "pending-001", "admin-001"); err != nil {
		t.Fatalf("Reject: %v", err)
	}
	if _, err := repo.User.GetByID(context.Background(), "pending-001"); err == nil {
		t.Error("rejected account should be gone")
	}

	if err := svc.Reject(context.Background(), "tutor-001", "admin-001"); !errors.Is(err, ErrUserNotPending) {
		t.Errorf("rejecting a tutor: expected ErrUserNotPending, got %v", err)
	}
}

func TestUserService_Get(t *testing.T) {
	svc, _ := setupTestUserService()

	user, err := svc.Get(context.Background(), "tutor-001")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if user.Email != "t@example.com" {
		t.Errorf("email %q", user.Email)
	}

	if _, err := svc.Get(context.Background(), "missing"); !errors.Is(err, ErrUserNotFound) {
		t.Errorf("expected ErrUserNotFound, got %v", err)
	}
}
