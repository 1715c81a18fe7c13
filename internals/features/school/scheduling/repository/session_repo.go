// file: internals/features/school/scheduling/repository/session_repo.go
package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"kursusku_backend/internals/features/school/scheduling/model"
)

type SessionRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*model.ClassSessionModel, error)
	Create(ctx context.Context, s *model.ClassSessionModel) error

	// ListByClass: includeDisabled=true ikut mengembalikan tombstone (audit)
	ListByClass(ctx context.Context, classID uuid.UUID, includeDisabled bool) ([]model.ClassSessionModel, error)
	ActiveIDsByClass(ctx context.Context, classID uuid.UUID) ([]uuid.UUID, error)
	CountActiveByClass(ctx context.Context, classID uuid.UUID) (int64, error)

	// FindActiveBySlot: sesi aktif pada (instructor, date, slot), minus pengecualian
	FindActiveBySlot(ctx context.Context, instructorID uuid.UUID, date time.Time, timeSlotID uuid.UUID, excludeIDs []uuid.UUID) (*model.ClassSessionModel, error)

	// FindActiveByLearnersAndSlot: sesi aktif pada (date, slot) dari kelas mana pun
	// yang diikuti salah satu learner; mengembalikan learner yang bentrok.
	FindActiveByLearnersAndSlot(ctx context.Context, learnerIDs []uuid.UUID, date time.Time, timeSlotID uuid.UUID, excludeIDs []uuid.UUID) (uuid.UUID, *model.ClassSessionModel, error)

	// ListLearnersWithConflict: semua learner (subset dari input) yang bentrok pada (date, slot)
	ListLearnersWithConflict(ctx context.Context, learnerIDs []uuid.UUID, date time.Time, timeSlotID uuid.UUID, excludeIDs []uuid.UUID) ([]uuid.UUID, error)

	// Reschedule: disable original + insert replacement dalam SATU transaksi.
	Reschedule(ctx context.Context, originalID uuid.UUID, replacement *model.ClassSessionModel) error
}

type sessionRepo struct {
	db *gorm.DB
}

func NewSessionRepo(db *gorm.DB) SessionRepository {
	return &sessionRepo{db: db}
}

func (r *sessionRepo) GetByID(ctx context.Context, id uuid.UUID) (*model.ClassSessionModel, error) {
	var s model.ClassSessionModel
	err := r.db.WithContext(ctx).
		Where("class_session_id = ?", id).
		First(&s).Error
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *sessionRepo) Create(ctx context.Context, s *model.ClassSessionModel) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *sessionRepo) ListByClass(ctx context.Context, classID uuid.UUID, includeDisabled bool) ([]model.ClassSessionModel, error) {
	q := r.db.WithContext(ctx).
		Where("class_session_class_id = ?", classID)
	if !includeDisabled {
		q = q.Where("class_session_disabled = FALSE")
	}
	var rows []model.ClassSessionModel
	if err := q.Order("class_session_date ASC, class_session_created_at ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *sessionRepo) ActiveIDsByClass(ctx context.Context, classID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := r.db.WithContext(ctx).
		Model(&model.ClassSessionModel{}).
		Where("class_session_class_id = ? AND class_session_disabled = FALSE", classID).
		Pluck("class_session_id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}

func (r *sessionRepo) CountActiveByClass(ctx context.Context, classID uuid.UUID) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&model.ClassSessionModel{}).
		Where("class_session_class_id = ? AND class_session_disabled = FALSE", classID).
		Count(&n).Error
	return n, err
}

func (r *sessionRepo) FindActiveBySlot(ctx context.Context, instructorID uuid.UUID, date time.Time, timeSlotID uuid.UUID, excludeIDs []uuid.UUID) (*model.ClassSessionModel, error) {
	q := r.db.WithContext(ctx).
		Where("class_session_instructor_id = ? AND class_session_date = ? AND class_session_time_slot_id = ? AND class_session_disabled = FALSE",
			instructorID, date, timeSlotID)
	if len(excludeIDs) > 0 {
		q = q.Where("class_session_id NOT IN ?", excludeIDs)
	}
	var s model.ClassSessionModel
	err := q.Limit(1).Take(&s).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *sessionRepo) FindActiveByLearnersAndSlot(ctx context.Context, learnerIDs []uuid.UUID, date time.Time, timeSlotID uuid.UUID, excludeIDs []uuid.UUID) (uuid.UUID, *model.ClassSessionModel, error) {
	if len(learnerIDs) == 0 {
		return uuid.Nil, nil, nil
	}
	var row struct {
		model.ClassSessionModel
		LearnerID uuid.UUID `gorm:"column:learner_id"`
	}
	q := r.db.WithContext(ctx).
		Table("class_sessions AS cs").
		Select("cs.*, ce.class_enrollment_learner_id AS learner_id").
		Joins("JOIN class_enrollments ce ON ce.class_enrollment_class_id = cs.class_session_class_id AND ce.class_enrollment_deleted_at IS NULL").
		Where("ce.class_enrollment_learner_id IN ?", learnerIDs).
		Where("cs.class_session_date = ? AND cs.class_session_time_slot_id = ?", date, timeSlotID).
		Where("cs.class_session_disabled = FALSE AND cs.class_session_deleted_at IS NULL")
	if len(excludeIDs) > 0 {
		q = q.Where("cs.class_session_id NOT IN ?", excludeIDs)
	}
	err := q.Limit(1).Take(&row).Error
	if err == gorm.ErrRecordNotFound {
		return uuid.Nil, nil, nil
	}
	if err != nil {
		return uuid.Nil, nil, err
	}
	return row.LearnerID, &row.ClassSessionModel, nil
}

func (r *sessionRepo) ListLearnersWithConflict(ctx context.Context, learnerIDs []uuid.UUID, date time.Time, timeSlotID uuid.UUID, excludeIDs []uuid.UUID) ([]uuid.UUID, error) {
	if len(learnerIDs) == 0 {
		return nil, nil
	}
	q := r.db.WithContext(ctx).
		Table("class_sessions AS cs").
		Distinct("ce.class_enrollment_learner_id").
		Joins("JOIN class_enrollments ce ON ce.class_enrollment_class_id = cs.class_session_class_id AND ce.class_enrollment_deleted_at IS NULL").
		Where("ce.class_enrollment_learner_id IN ?", learnerIDs).
		Where("cs.class_session_date = ? AND cs.class_session_time_slot_id = ?", date, timeSlotID).
		Where("cs.class_session_disabled = FALSE AND cs.class_session_deleted_at IS NULL")
	if len(excludeIDs) > 0 {
		q = q.Where("cs.class_session_id NOT IN ?", excludeIDs)
	}
	var ids []uuid.UUID
	if err := q.Pluck("ce.class_enrollment_learner_id", &ids).Error; err != nil {
		return nil, err
	}
	return ids, nil
}

// Reschedule: all-or-nothing; crash di tengah tidak boleh terlihat reader mana pun.
func (r *sessionRepo) Reschedule(ctx context.Context, originalID uuid.UUID, replacement *model.ClassSessionModel) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&model.ClassSessionModel{}).
			Where("class_session_id = ? AND class_session_disabled = FALSE", originalID).
			Update("class_session_disabled", true)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return tx.Create(replacement).Error
	})
}
