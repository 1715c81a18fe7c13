// file: internals/features/school/scheduling/service/session_lifecycle_service.go
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"kursusku_backend/internals/features/school/scheduling/model"
	"kursusku_backend/internals/features/school/scheduling/repository"
)

type CreateSessionInput struct {
	ClassID      uuid.UUID
	TimeSlotID   uuid.UUID
	InstructorID uuid.UUID
	Date         time.Time
	Title        string
	Description  *string
}

// SessionLifecycleService: create + reschedule. Bentrok kembali sebagai
// *Conflict (data), error hanya untuk kondisi abnormal.
type SessionLifecycleService struct {
	classes     repository.ClassRepository
	sessions    repository.SessionRepository
	enrollments repository.EnrollmentRepository
	timeSlots   repository.TimeSlotRepository
	detector    *ConflictDetector
	workflow    *ClassStatusWorkflow

	// now di-inject supaya aturan "hanya sesi masa depan" bisa diuji
	now func() time.Time
}

func NewSessionLifecycleService(
	classes repository.ClassRepository,
	sessions repository.SessionRepository,
	enrollments repository.EnrollmentRepository,
	timeSlots repository.TimeSlotRepository,
	detector *ConflictDetector,
	workflow *ClassStatusWorkflow,
) *SessionLifecycleService {
	return &SessionLifecycleService{
		classes:     classes,
		sessions:    sessions,
		enrollments: enrollments,
		timeSlots:   timeSlots,
		detector:    detector,
		workflow:    workflow,
		now:         time.Now,
	}
}

// today: granularitas hari, midnight waktu server
func (s *SessionLifecycleService) today() time.Time {
	n := s.now()
	return time.Date(n.Year(), n.Month(), n.Day(), 0, 0, 0, 0, n.Location())
}

func (s *SessionLifecycleService) Create(ctx context.Context, in CreateSessionInput, privileged bool) (*model.ClassSessionModel, *Conflict, error) {
	if in.Title == "" || in.ClassID == uuid.Nil || in.TimeSlotID == uuid.Nil || in.InstructorID == uuid.Nil || in.Date.IsZero() {
		return nil, nil, fmt.Errorf("%w: class_id, time_slot_id, instructor_id, date, dan title wajib diisi", ErrValidation)
	}

	cls, err := s.classes.GetByID(ctx, in.ClassID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrClassNotFound
		}
		return nil, nil, err
	}
	if err := s.workflow.EnsureEditable(cls, privileged); err != nil {
		return nil, nil, err
	}

	if _, err := s.timeSlots.GetByID(ctx, in.TimeSlotID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrTimeSlotNotFound
		}
		return nil, nil, err
	}

	learners, err := s.enrollments.ListLearnerIDsByClass(ctx, in.ClassID)
	if err != nil {
		return nil, nil, err
	}

	conflict, err := s.detector.Check(ctx, Candidate{
		InstructorID: in.InstructorID,
		Date:         in.Date,
		TimeSlotID:   in.TimeSlotID,
	}, learners, nil)
	if err != nil {
		return nil, nil, err
	}
	if conflict != nil {
		return nil, conflict, nil
	}

	row := &model.ClassSessionModel{
		ClassSessionClassID:      in.ClassID,
		ClassSessionTimeSlotID:   in.TimeSlotID,
		ClassSessionInstructorID: in.InstructorID,
		ClassSessionDate:         in.Date,
		ClassSessionTitle:        in.Title,
		ClassSessionDescription:  in.Description,
	}
	if err := s.sessions.Create(ctx, row); err != nil {
		// Balapan dengan penulis lain: unique index parsial yang menang
		if c := conflictFromPG(err); c != nil {
			return nil, c, nil
		}
		return nil, nil, err
	}
	return row, nil, nil
}

// Reschedule: disable sesi lama + insert pengganti dalam satu transaksi.
// Hanya cek bentrok learner; pemanggil diasumsikan memilih slot dari hasil
// FindSlots sehingga bentrok pengajar/cuti sudah tersaring.
func (s *SessionLifecycleService) Reschedule(ctx context.Context, sessionID uuid.UUID, newDate time.Time, newTimeSlotID uuid.UUID, privileged bool) (*model.ClassSessionModel, *Conflict, error) {
	if sessionID == uuid.Nil || newTimeSlotID == uuid.Nil || newDate.IsZero() {
		return nil, nil, fmt.Errorf("%w: session_id, new_date, dan new_time_slot_id wajib diisi", ErrValidation)
	}

	orig, err := s.sessions.GetByID(ctx, sessionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrSessionNotFound
		}
		return nil, nil, err
	}
	if orig.ClassSessionDisabled {
		return nil, nil, ErrSessionImmutable
	}
	// Sesi yang sudah lewat atau sedang berjalan hari ini tidak boleh diubah
	if !orig.ClassSessionDate.After(s.today()) {
		return nil, nil, ErrSessionImmutable
	}

	cls, err := s.classes.GetByID(ctx, orig.ClassSessionClassID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrClassNotFound
		}
		return nil, nil, err
	}
	if err := s.workflow.EnsureEditable(cls, privileged); err != nil {
		return nil, nil, err
	}

	if _, err := s.timeSlots.GetByID(ctx, newTimeSlotID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrTimeSlotNotFound
		}
		return nil, nil, err
	}

	learners, err := s.enrollments.ListLearnerIDsByClass(ctx, orig.ClassSessionClassID)
	if err != nil {
		return nil, nil, err
	}
	learnerID, with, err := s.sessions.FindActiveByLearnersAndSlot(ctx, learners, newDate, newTimeSlotID, []uuid.UUID{orig.ClassSessionID})
	if err != nil {
		return nil, nil, err
	}
	if with != nil {
		lid := learnerID
		sid := with.ClassSessionID
		return nil, &Conflict{
			Kind:          ConflictLearnerBusy,
			Message:       "learner sudah punya sesi pada slot tujuan",
			LearnerID:     &lid,
			WithSessionID: &sid,
		}, nil
	}

	supersedes := orig.ClassSessionID
	replacement := &model.ClassSessionModel{
		ClassSessionClassID:      orig.ClassSessionClassID,
		ClassSessionTimeSlotID:   newTimeSlotID,
		ClassSessionInstructorID: orig.ClassSessionInstructorID,
		ClassSessionDate:         newDate,
		ClassSessionTitle:        orig.ClassSessionTitle,
		ClassSessionDescription:  orig.ClassSessionDescription,
		ClassSessionSupersedesID: &supersedes,
		ClassSessionRescheduleSnapshot: datatypes.JSONMap{
			"date":         orig.ClassSessionDate.Format("2006-01-02"),
			"time_slot_id": orig.ClassSessionTimeSlotID.String(),
		},
	}
	if err := s.sessions.Reschedule(ctx, orig.ClassSessionID, replacement); err != nil {
		if c := conflictFromPG(err); c != nil {
			return nil, c, nil
		}
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// Kalah balapan: sudah di-disable penulis lain
			return nil, nil, ErrSessionNotFound
		}
		return nil, nil, err
	}
	return replacement, nil, nil
}
