package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/mainlycc/aw/internal/model"
)

// BillingRepository is the billing data-access interface.
type BillingRepository interface {
	CreateMonth(ctx context.Context, month *model.BillingMonth) error
	GetMonthByID(ctx context.Context, id string) (*model.BillingMonth, error)
	ListMonths(ctx context.Context, enrollmentID, tutorID string, year, month int) ([]model.BillingMonth, error)
	UpdateMonth(ctx context.Context, month *model.BillingMonth) error
	AddEntry(ctx context.Context, entry *model.BillingEntry) error
	DeleteEntry(ctx context.Context, entryID string) error
}

type billingRepo struct {
	db *gorm.DB
}

// NewBillingRepo creates a BillingRepository.
func NewBillingRepo(db *gorm.DB) BillingRepository {
	return &billingRepo{db: db}
}

func (r *billingRepo) CreateMonth(ctx context.Context, month *model.BillingMonth) error {
	return r.db.WithContext(ctx).Create(month).Error
}

func (r *billingRepo) GetMonthByID(ctx context.Context, id string) (*model.BillingMonth, error) {
	var m model.BillingMonth
	err := r.db.WithContext(ctx).
		Preload("Enrollment").
		Preload("Enrollment.Tutor").
		Preload("Enrollment.Student").
		Preload("Entries", func(db *gorm.DB) *gorm.DB {
			return db.Order("entry_date ASC")
		}).
		Where("billing_month_id = ?", id).
		First(&m).Error
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *billingRepo) ListMonths(ctx context.Context, enrollmentID, tutorID string, year, month int) ([]model.BillingMonth, error) {
	db := r.db.WithContext(ctx).Model(&model.BillingMonth{})

	if enrollmentID != "" {
		db = db.Where("enrollment_id = ?", enrollmentID)
	}
	if tutorID != "" {
		db = db.Joins("JOIN enrollments ON enrollments.enrollment_id = billing_months.enrollment_id").
			Where("enrollments.tutor_id = ?", tutorID)
	}
	if year > 0 {
		db = db.Where("billing_months.year = ?", year)
	}
	if month > 0 {
		db = db.Where("billing_months.month = ?", month)
	}

	var months []model.BillingMonth
	err := db.Preload("Enrollment").
		Preload("Enrollment.Tutor").
		Preload("Enrollment.Student").
		Preload("Entries").
		Order("billing_months.year DESC, billing_months.month DESC").
		Find(&months).Error
	return months, err
}

func (r *billingRepo) UpdateMonth(ctx context.Context, month *model.BillingMonth) error {
	return r.db.WithContext(ctx).Save(month).Error
}

func (r *billingRepo) AddEntry(ctx context.Context, entry *model.BillingEntry) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *billingRepo) DeleteEntry(ctx context.Context, entryID string) error {
	return r.db.WithContext(ctx).
		Where("billing_entry_id = ?", entryID).
		Delete(&model.BillingEntry{}).Error
}
