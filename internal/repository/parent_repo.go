package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/mainlycc/aw/internal/model"
)

// ParentRepository is the guardian data-access interface.
type ParentRepository interface {
	Create(ctx context.Context, parent *model.Parent) error
	GetByID(ctx context.Context, id string) (*model.Parent, error)
	List(ctx context.Context) ([]model.Parent, error)
	Update(ctx context.Context, parent *model.Parent) error
	Delete(ctx context.Context, id string) error
}

type parentRepo struct {
	db *gorm.DB
}

// NewParentRepo creates a ParentRepository.
func NewParentRepo(db *gorm.DB) ParentRepository {
	return &parentRepo{db: db}
}

func (r *parentRepo) Create(ctx context.Context, parent *model.Parent) error {
	return r.db.WithContext(ctx).Create(parent).Error
}

func (r *parentRepo) GetByID(ctx context.Context, id string) (*model.Parent, error) {
	var parent model.Parent
	err := r.db.WithContext(ctx).
		Preload("Students").
		Where("parent_id = ?", id).
		First(&parent).Error
	if err != nil {
		return nil, err
	}
	return &parent, nil
}

func (r *parentRepo) List(ctx context.Context) ([]model.Parent, error) {
	var parents []model.Parent
	err := r.db.WithContext(ctx).
		Order("last_name ASC, first_name ASC").
		Find(&parents).Error
	return parents, err
}

func (r *parentRepo) Update(ctx context.Context, parent *model.Parent) error {
	return r.db.WithContext(ctx).Save(parent).Error
}

func (r *parentRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Where("parent_id = ?", id).
		Delete(&model.Parent{}).Error
}
