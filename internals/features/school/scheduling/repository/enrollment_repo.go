// file: internals/features/school/scheduling/repository/enrollment_repo.go
package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"kursusku_backend/internals/features/school/scheduling/model"
)

type EnrollmentRepository interface {
	ListLearnerIDsByClass(ctx context.Context, classID uuid.UUID) ([]uuid.UUID, error)
}

type enrollmentRepo struct {
	db *gorm.DB
}

func NewEnrollmentRepo(db *gorm.DB) EnrollmentRepository {
	return &enrollmentRepo{db: db}
}

func (r *enrollmentRepo) ListLearnerIDsByClass(ctx context.Context, classID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := r.db.WithContext(ctx).
		Model(&model.EnrollmentModel{}).
		Where("class_enrollment_class_id = ?", classID).
		Pluck("class_enrollment_learner_id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}
