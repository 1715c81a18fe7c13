// file: internals/features/school/scheduling/repository/leave_repo.go
package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"kursusku_backend/internals/features/school/scheduling/model"
)

type LeaveRepository interface {
	Create(ctx context.Context, l *model.LeaveRecordModel) error
	ListByInstructor(ctx context.Context, instructorID uuid.UUID) ([]model.LeaveRecordModel, error)

	// FindBlocking: leave yang memblokir (instructor, date, slot):
	// slot-scoped yang sama, ATAU unscoped (satu hari penuh).
	FindBlocking(ctx context.Context, instructorID uuid.UUID, date time.Time, timeSlotID uuid.UUID) (*model.LeaveRecordModel, error)
}

type leaveRepo struct {
	db *gorm.DB
}

func NewLeaveRepo(db *gorm.DB) LeaveRepository {
	return &leaveRepo{db: db}
}

func (r *leaveRepo) Create(ctx context.Context, l *model.LeaveRecordModel) error {
	return r.db.WithContext(ctx).Create(l).Error
}

func (r *leaveRepo) ListByInstructor(ctx context.Context, instructorID uuid.UUID) ([]model.LeaveRecordModel, error) {
	var rows []model.LeaveRecordModel
	err := r.db.WithContext(ctx).
		Where("instructor_leave_instructor_id = ?", instructorID).
		Order("instructor_leave_date ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *leaveRepo) FindBlocking(ctx context.Context, instructorID uuid.UUID, date time.Time, timeSlotID uuid.UUID) (*model.LeaveRecordModel, error) {
	var l model.LeaveRecordModel
	err := r.db.WithContext(ctx).
		Where("instructor_leave_instructor_id = ? AND instructor_leave_date = ?", instructorID, date).
		Where("instructor_leave_time_slot_id IS NULL OR instructor_leave_time_slot_id = ?", timeSlotID).
		Limit(1).
		Take(&l).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &l, nil
}
