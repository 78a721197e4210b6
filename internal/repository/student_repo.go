package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/mainlycc/aw/internal/model"
)

// StudentRepository is the pupil data-access interface.
type StudentRepository interface {
	Create(ctx context.Context, student *model.Student) error
	GetByID(ctx context.Context, id string) (*model.Student, error)
	List(ctx context.Context, search string, page, pageSize int) ([]model.Student, int64, error)
	ListByTutor(ctx context.Context, tutorID string) ([]model.Student, error)
	Update(ctx context.Context, student *model.Student) error
	Delete(ctx context.Context, id string, deletedBy string) error
}

type studentRepo struct {
	db *gorm.DB
}

// NewStudentRepo creates a StudentRepository.
func NewStudentRepo(db *gorm.DB) StudentRepository {
	return &studentRepo{db: db}
}

func (r *studentRepo) Create(ctx context.Context, student *model.Student) error {
	return r.db.WithContext(ctx).Create(student).Error
}

func (r *studentRepo) GetByID(ctx context.Context, id string) (*model.Student, error) {
	var student model.Student
	err := r.db.WithContext(ctx).
		Preload("Parent").
		Where("student_id = ?", id).
		First(&student).Error
	if err != nil {
		return nil, err
	}
	return &student, nil
}

func (r *studentRepo) List(ctx context.Context, search string, page, pageSize int) ([]model.Student, int64, error) {
	db := r.db.WithContext(ctx).Model(&model.Student{})

	if search != "" {
		pattern := "%" + search + "%"
		db = db.Where("first_name ILIKE ? OR last_name ILIKE ?", pattern, pattern)
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var students []model.Student
	err := db.Preload("Parent").
		Order("last_name ASC, first_name ASC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&students).Error
	return students, total, err
}

// ListByTutor returns the students assigned to a tutor through active
// enrollments. Tutors only ever see their own students.
func (r *studentRepo) ListByTutor(ctx context.Context, tutorID string) ([]model.Student, error) {
	var students []model.Student
	err := r.db.WithContext(ctx).
		Joins("JOIN enrollments ON enrollments.student_id = students.student_id").
		Where("enrollments.tutor_id = ? AND enrollments.is_active = ?", tutorID, true).
		Preload("Parent").
		Distinct().
		Order("students.last_name ASC, students.first_name ASC").
		Find(&students).Error
	return students, err
}

func (r *studentRepo) Update(ctx context.Context, student *model.Student) error {
	return r.db.WithContext(ctx).Save(student).Error
}

func (r *studentRepo) Delete(ctx context.Context, id string, deletedBy string) error {
	return r.db.WithContext(ctx).
		Model(&model.Student{}).
		Where("student_id = ?", id).
		Updates(map[string]interface{}{
			"deleted_by": deletedBy,
			"deleted_at": gorm.Expr("NOW()"),
		}).Error
}
