// file: internals/features/school/scheduling/repository/time_slot_repo.go
package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"kursusku_backend/internals/features/school/scheduling/model"
)

type TimeSlotRepository interface {
	Create(ctx context.Context, ts *model.TimeSlotModel) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.TimeSlotModel, error)
	List(ctx context.Context, weekday *int) ([]model.TimeSlotModel, error)
}

type timeSlotRepo struct {
	db *gorm.DB
}

func NewTimeSlotRepo(db *gorm.DB) TimeSlotRepository {
	return &timeSlotRepo{db: db}
}

func (r *timeSlotRepo) Create(ctx context.Context, ts *model.TimeSlotModel) error {
	return r.db.WithContext(ctx).Create(ts).Error
}

func (r *timeSlotRepo) GetByID(ctx context.Context, id uuid.UUID) (*model.TimeSlotModel, error) {
	var ts model.TimeSlotModel
	err := r.db.WithContext(ctx).
		Where("time_slot_id = ?", id).
		First(&ts).Error
	if err != nil {
		return nil, err
	}
	return &ts, nil
}

func (r *timeSlotRepo) List(ctx context.Context, weekday *int) ([]model.TimeSlotModel, error) {
	q := r.db.WithContext(ctx).Model(&model.TimeSlotModel{})
	if weekday != nil {
		q = q.Where("time_slot_weekday = ?", *weekday)
	}
	var rows []model.TimeSlotModel
	if err := q.Order("time_slot_weekday ASC, time_slot_start_time ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}
