package service

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/mainlycc/aw/internal/dto"
	"github.com/mainlycc/aw/internal/model"
	"github.com/mainlycc/aw/internal/repository"
	pkgerrors "github.com/mainlycc/aw/pkg/errors"
)

// ── test fixtures ──

func setupTestBillingService() (BillingService, *repository.Repository) {
	repo := newMockRepository()

	tutor := &model.User{UserID: "tutor-001", Email: "t@example.com", Role: model.RoleTutor, FirstName: "Ewa", LastName: "Nowak"}
	student := &model.Student{StudentID: "student-001", FirstName: "Jan", LastName: "Kowalski"}
	repo.User.Create(context.Background(), tutor)
	repo.Student.Create(context.Background(), student)
	repo.Enrollment.Create(context.Background(), &model.Enrollment{
		EnrollmentID: "enrollment-001",
		TutorID:      "tutor-001",
		StudentID:    "student-001",
		SubjectID:    "math",
		LevelID:      "basic",
		HourlyRate:   90,
		IsActive:     true,
	})

	svc := NewBillingService(repo, zap.NewNop())
	return svc, repo
}

func createTestMonth(t *testing.T, svc BillingService) *dto.BillingMonthResponse {
	t.Helper()
	month, err := svc.CreateMonth(context.Background(), &dto.CreateBillingMonthRequest{
		EnrollmentID: "enrollment-001",
		Year:         2024,
		Month:        6,
	}, "tutor-001", model.RoleTutor)
	if err != nil {
		t.Fatalf("CreateMonth: %v", err)
	}
	return month
}

// ── CreateMonth ──

func TestBillingService_CreateMonth_Success(t *testing.T) {
	svc, _ := setupTestBillingService()
	month := createTestMonth(t, svc)

	if month.Year != 2024 || month.Month != 6 {
		t.Errorf("month %d-%d, expected 2024-6", month.Year, month.Month)
	}
	if month.IsClosed {
		t.Error("new month must start open")
	}
	if month.HourlyRate != 90 {
		t.Errorf("hourly rate %v, expected the enrollment's 90", month.HourlyRate)
	}
}

func TestBillingService_CreateMonth_UnknownEnrollment(t *testing.T) {
	svc, _ := setupTestBillingService()

	_, err := svc.CreateMonth(context.Background(), &dto.CreateBillingMonthRequest{
		EnrollmentID: "missing", Year: 2024, Month: 6,
	}, "tutor-001", model.RoleTutor)
	if !errors.Is(err, ErrEnrollmentNotFound) {
		t.Errorf("expected ErrEnrollmentNotFound, got %v", err)
	}
}

func TestBillingService_CreateMonth_ForeignTutorForbidden(t *testing.T) {
	svc, _ := setupTestBillingService()

	_, err := svc.CreateMonth(context.Background(), &dto.CreateBillingMonthRequest{
		EnrollmentID: "enrollment-001", Year: 2024, Month: 6,
	}, "tutor-999", model.RoleTutor)
	if !errors.Is(err, pkgerrors.ErrForbidden) {
		t.Errorf("expected ErrForbidden, got %v", err)
	}
}

// ── AddEntry ──

func TestBillingService_AddEntry_Totals(t *testing.T) {
	svc, _ := setupTestBillingService()
	month := createTestMonth(t, svc)

	if _, err := svc.AddEntry(context.Background(), month.ID, &dto.AddBillingEntryRequest{
		EntryDate: "2024-06-03", Hours: 1.5,
	}, "tutor-001", model.RoleTutor); err != nil {
		t.Fatalf("AddEntry: %v", err)
	}

	updated, err := svc.AddEntry(context.Background(), month.ID, &dto.AddBillingEntryRequest{
		EntryDate: "2024-06-10", Hours: 2, Note: "powtorka przed sprawdzianem",
	}, "tutor-001", model.RoleTutor)
	if err != nil {
		t.Fatalf("AddEntry: %v", err)
	}

	if updated.TotalHours != 3.5 {
		t.Errorf("total hours %v, expected 3.5", updated.TotalHours)
	}
	if updated.TotalAmount != 3.5*90 {
		t.Errorf("total amount %v, expected %v", updated.TotalAmount, 3.5*90)
	}
	if len(updated.Entries) != 2 {
		t.Errorf("expected 2 entries, got %d", len(updated.Entries))
	}
}

func TestBillingService_AddEntry_BadDate(t *testing.T) {
	svc, _ := setupTestBillingService()
	month := createTestMonth(t, svc)

	_, err := svc.AddEntry(context.Background(), month.ID, &dto.AddBillingEntryRequest{
		EntryDate: "june 3rd", Hours: 1,
	}, "tutor-001", model.RoleTutor)
	if !errors.Is(err, ErrBadEntryDate) {
		t.Errorf("expected ErrBadEntryDate, got %v", err)
	}
}

func TestBillingService_AddEntry_OutsideMonth(t *testing.T) {
	svc, _ := setupTestBillingService()
	month := createTestMonth(t, svc)

	_, err := svc.AddEntry(context.Background(), month.ID, &dto.AddBillingEntryRequest{
		EntryDate: "2024-07-01", Hours: 1,
	}, "tutor-001", model.RoleTutor)
	if !errors.Is(err, ErrEntryOutsideMonth) {
		t.Errorf("expected ErrEntryOutsideMonth, got %v", err)
	}
}

// ── CloseMonth ──

func TestBillingService_CloseMonth_FreezesEntries(t *testing.T) {
	svc, _ := setupTestBillingService()
	month := createTestMonth(t, svc)

	closed, err := svc.CloseMonth(context.Background(), month.ID, "tutor-001", model.RoleTutor)
	if err != nil {
		t.Fatalf("CloseMonth: %v", err)
	}
	if !closed.IsClosed {
		t.Error("month should report closed")
	}

	if _, err := svc.AddEntry(context.Background(), month.ID, &dto.AddBillingEntryRequest{
		EntryDate: "2024-06-03", Hours: 1,
	}, "tutor-001", model.RoleTutor); !errors.Is(err, ErrBillingMonthClosed) {
		t.Errorf("adding to a closed month: expected ErrBillingMonthClosed, got %v", err)
	}

	if _, err := svc.CloseMonth(context.Background(), month.ID, "tutor-001", model.RoleTutor); !errors.Is(err, ErrBillingMonthClosed) {
		t.Errorf("closing twice: expected ErrBillingMonthClosed, got %v", err)
	}
}

// ── ListMonths ──

func TestBillingService_ListMonths_TutorScoped(t *testing.T) {
	svc, _ := setupTestBillingService()
	createTestMonth(t, svc)

	// a tutor's filter for someone else's months is overridden to their own
	months, err := svc.ListMonths(context.Background(), &dto.BillingMonthListRequest{
		TutorID: "tutor-999",
	}, "tutor-001", model.RoleTutor)
	if err != nil {
		t.Fatalf("ListMonths: %v", err)
	}
	if len(months) != 1 {
		t.Errorf("tutor should see their own month, got %d", len(months))
	}

	// admins may filter freely
	months, err = svc.ListMonths(context.Background(), &dto.BillingMonthListRequest{
		TutorID: "tutor-999",
	}, "admin-001", model.RoleAdmin)
	if err != nil {
		t.Fatalf("ListMonths: %v", err)
	}
	if len(months) != 0 {
		t.Errorf("no months exist for tutor-999, got %d", len(months))
	}
}

// ── GetMonth authorization ──

func TestBillingService_GetMonth_Authorization(t *testing.T) {
	svc, _ := setupTestBillingService()
	month := createTestMonth(t, svc)

	if _, err := svc.GetMonth(context.Background(), month.ID, "admin-001", model.RoleAdmin); err != nil {
		t.Errorf("admin access should succeed: %v", err)
	}
	if _, err := svc.GetMonth(context.Background(), month.ID, "tutor-999", model.RoleTutor); !errors.Is(err, pkgerrors.ErrForbidden) {
		t.Errorf("foreign tutor: expected ErrForbidden, got %v", err)
	}
	if _, err := svc.GetMonth(context.Background(), "missing", "admin-001", model.RoleAdmin); !errors.Is(err, ErrBillingMonthNotFound) {
		t.Errorf("expected ErrBillingMonthNotFound, got %v", err)
	}
}
