package repository

import "gorm.io/gorm"

// Repository aggregates all data-access interfaces.
type Repository struct {
	User       UserRepository
	Parent     ParentRepository
	Student    StudentRepository
	Enrollment EnrollmentRepository
	Billing    BillingRepository
}

// NewRepository wires the GORM-backed implementations.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		User:       NewUserRepo(db),
		Parent:     NewParentRepo(db),
		Student:    NewStudentRepo(db),
		Enrollment: NewEnrollmentRepo(db),
		Billing:    NewBillingRepo(db),
	}
}
