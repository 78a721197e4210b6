package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/mainlycc/aw/config"
	"github.com/mainlycc/aw/internal/dto"
	"github.com/mainlycc/aw/internal/model"
	"github.com/mainlycc/aw/internal/repository"
	"github.com/mainlycc/aw/pkg/jwt"
)

func setupTestAuthService() (AuthService, *repository.Repository) {
	repo := newMockRepository()
	jwtMgr := jwt.NewManager(&config.AuthConfig{
		JWTSecret:               "test-secret",
		AccessTokenTTL:          15 * time.Minute,
		RefreshTokenTTLDefault:  24 * time.Hour,
		RefreshTokenTTLRemember: 30 * 24 * time.Hour,
	})
	svc := NewAuthService(&config.Config{}, repo, jwtMgr, nil, zap.NewNop())
	return svc, repo
}

func registerTestUser(t *testing.T, svc AuthService) *dto.UserResponse {
	t.Helper()
	user, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Email:     "anna@example.com",
		Password:  "tajnehaslo123",
		FirstName: "Anna",
		LastName:  "Wisniewska",
	})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	return user
}

func TestAuthService_Register_CreatesPendingAccount(t *testing.T) {
	svc, repo := setupTestAuthService()
	user := registerTestUser(t, svc)

	if user.Role != model.RolePending {
		t.Errorf("role %q, expected pending", user.Role)
	}

	stored, err := repo.User.GetByID(context.Background(), user.ID)
	if err != nil {
		t.Fatalf("stored user: %v", err)
	}
	if stored.PasswordHash == "tajnehaslo123" {
		t.Error("password must be stored hashed")
	}
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	svc, _ := setupTestAuthService()
	registerTestUser(t, svc)

	_, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Email:     "anna@example.com",
		Password:  "innehaslo456",
		FirstName: "Anna",
		LastName:  "Druga",
	})
	if !errors.Is(err, ErrEmailTaken) {
		t.Errorf("expected ErrEmailTaken, got %v", err)
	}
}

func TestAuthService_Login_PendingAccountRejected(t *testing.T) {
	svc, _ := setupTestAuthService()
	registerTestUser(t, svc)

	_, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email: "anna@example.com", Password: "tajnehaslo123",
	})
	if !errors.Is(err, ErrAccountPending) {
		t.Errorf("expected ErrAccountPending, got %v", err)
	}
}

func TestAuthService_Login_AfterApproval(t *testing.T) {
	svc, repo := setupTestAuthService()
	user := registerTestUser(t, svc)

	stored, _ := repo.User.GetByID(context.Background(), user.ID)
	stored.Role = model.RoleTutor
	repo.User.Update(context.Background(), stored)

	tokens, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email: "anna@example.com", Password: "tajnehaslo123",
	})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if tokens.AccessToken == "" || tokens.RefreshToken == "" {
		t.Error("expected both tokens issued")
	}
	if tokens.User == nil || tokens.User.Role != model.RoleTutor {
		t.Error("token response should carry the tutor profile")
	}
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	svc, _ := setupTestAuthService()
	registerTestUser(t, svc)

	_, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email: "anna@example.com", Password: "zle-haslo",
	})
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials, got %v", err)
	}

	_, err = svc.Login(context.Background(), &dto.LoginRequest{
		Email: "nikt@example.com", Password: "cokolwiek",
	})
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("unknown email: expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_RefreshToken_RejectsAccessToken(t *testing.T) {
	svc, repo := setupTestAuthService()
	user := registerTestUser(t, svc)

	stored, _ := repo.User.GetByID(context.Background(), user.ID)
	stored.Role = model.RoleTutor
	repo.User.Update(context.Background(), stored)

	tokens, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email: "anna@example.com", Password: "tajnehaslo123",
	})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}

	if _, err := svc.RefreshToken(context.Background(), tokens.AccessToken); !errors.Is(err, ErrNotRefreshToken) {
		t.Errorf("expected ErrNotRefreshToken, got %v", err)
	}
	if _, err := svc.RefreshToken(context.Background(), tokens.RefreshToken); err != nil {
		t.Errorf("refresh with refresh token should succeed: %v", err)
	}
}

func TestAuthService_ChangePassword(t *testing.T) {
	svc, _ := setupTestAuthService()
	user := registerTestUser(t, svc)

	err := svc.ChangePassword(context.Background(), user.ID, &dto.ChangePasswordRequest{
		OldPassword: "zle-haslo", NewPassword: "nowehaslo123",
	})
	if !errors.Is(err, ErrWrongPassword) {
		t.Errorf("expected ErrWrongPassword, got %v", err)
	}

	if err := svc.ChangePassword(context.Background(), user.ID, &dto.ChangePasswordRequest{
		OldPassword: "tajnehaslo123", NewPassword: "nowehaslo123",
	}); err != nil {
		t.Fatalf("ChangePassword: %v", err)
	}
}
