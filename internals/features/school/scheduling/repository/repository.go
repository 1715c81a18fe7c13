// file: internals/features/school/scheduling/repository/repository.go
package repository

import "gorm.io/gorm"

// Repository: pintu masuk agregat semua repository scheduling.
// Service menerima struct ini supaya test bisa menyuntik mock per-entity.
type Repository struct {
	Class      ClassRepository
	Session    SessionRepository
	Enrollment EnrollmentRepository
	Leave      LeaveRepository
	TimeSlot   TimeSlotRepository
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		Class:      NewClassRepo(db),
		Session:    NewSessionRepo(db),
		Enrollment: NewEnrollmentRepo(db),
		Leave:      NewLeaveRepo(db),
		TimeSlot:   NewTimeSlotRepo(db),
	}
}
