package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/mainlycc/aw/internal/model"
)

// EnrollmentRepository is the assignment data-access interface.
type EnrollmentRepository interface {
	Create(ctx context.Context, enrollment *model.Enrollment) error
	GetByID(ctx context.Context, id string) (*model.Enrollment, error)
	List(ctx context.Context, tutorID, studentID, subjectID string) ([]model.Enrollment, error)
	Update(ctx context.Context, enrollment *model.Enrollment) error
	Delete(ctx context.Context, id string) error
}

type enrollmentRepo struct {
	db *gorm.DB
}

// NewEnrollmentRepo creates an EnrollmentRepository.
func NewEnrollmentRepo(db *gorm.DB) EnrollmentRepository {
	return &enrollmentRepo{db: db}
}

func (r *enrollmentRepo) Create(ctx context.Context, enrollment *model.Enrollment) error {
	return r.db.WithContext(ctx).Create(enrollment).Error
}

func (r *enrollmentRepo) GetByID(ctx context.Context, id string) (*model.Enrollment, error) {
	var enrollment model.Enrollment
	err := r.db.WithContext(ctx).
		Preload("Tutor").
		Preload("Student").
		Where("enrollment_id = ?", id).
		First(&enrollment).Error
	if err != nil {
		return nil, err
	}
	return &enrollment, nil
}

func (r *enrollmentRepo) List(ctx context.Context, tutorID, studentID, subjectID string) ([]model.Enrollment, error) {
	db := r.db.WithContext(ctx)

	if tutorID != "" {
		db = db.Where("tutor_id = ?", tutorID)
	}
	if studentID != "" {
		db = db.Where("student_id = ?", studentID)
	}
	if subjectID != "" {
		db = db.Where("subject_id = ?", subjectID)
	}

	var enrollments []model.Enrollment
	err := db.Preload("Tutor").
		Preload("Student").
		Order("created_at DESC").
		Find(&enrollments).Error
	return enrollments, err
}

func (r *enrollmentRepo) Update(ctx context.Context, enrollment *model.Enrollment) error {
	return r.db.WithContext(ctx).Save(enrollment).Error
}

func (r *enrollmentRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Where("enrollment_id = ?", id).
		Delete(&model.Enrollment{}).Error
}
