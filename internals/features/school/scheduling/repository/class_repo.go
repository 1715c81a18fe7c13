// file: internals/features/school/scheduling/repository/class_repo.go
package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"kursusku_backend/internals/features/school/scheduling/model"
)

type ClassRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*model.ClassModel, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status model.ClassStatus) error
}

type classRepo struct {
	db *gorm.DB
}

func NewClassRepo(db *gorm.DB) ClassRepository {
	return &classRepo{db: db}
}

func (r *classRepo) GetByID(ctx context.Context, id uuid.UUID) (*model.ClassModel, error) {
	var cls model.ClassModel
	err := r.db.WithContext(ctx).
		Where("class_id = ?", id).
		First(&cls).Error
	if err != nil {
		return nil, err
	}
	return &cls, nil
}

func (r *classRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status model.ClassStatus) error {
	return r.db.WithContext(ctx).
		Model(&model.ClassModel{}).
		Where("class_id = ?", id).
		Update("class_status", status).Error
}
