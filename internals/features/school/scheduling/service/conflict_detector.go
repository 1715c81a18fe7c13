// file: internals/features/school/scheduling/service/conflict_detector.go
package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"kursusku_backend/internals/features/school/scheduling/repository"
)

// Candidate: satu triple (pengajar, tanggal, slot) yang mau diperiksa.
type Candidate struct {
	InstructorID uuid.UUID
	Date         time.Time
	TimeSlotID   uuid.UUID
}

// ConflictDetector: predikat murni terhadap snapshot data saat ini.
// Urutan pemeriksaan: pengajar -> cuti -> learner; bentrok PERTAMA menang.
type ConflictDetector struct {
	sessions repository.SessionRepository
	leaves   repository.LeaveRepository
}

func NewConflictDetector(sessions repository.SessionRepository, leaves repository.LeaveRepository) *ConflictDetector {
	return &ConflictDetector{sessions: sessions, leaves: leaves}
}

// Check: nil Conflict = slot bebas. Tidak ada efek samping.
func (d *ConflictDetector) Check(ctx context.Context, cand Candidate, learnerIDs []uuid.UUID, excludeSessionIDs []uuid.UUID) (*Conflict, error) {
	// 1) Pengajar sudah mengajar di slot yang sama?
	busy, err := d.sessions.FindActiveBySlot(ctx, cand.InstructorID, cand.Date, cand.TimeSlotID, excludeSessionIDs)
	if err != nil {
		return nil, fmt.Errorf("cek bentrok pengajar: %w", err)
	}
	if busy != nil {
		id := busy.ClassSessionID
		return &Conflict{
			Kind:          ConflictInstructorBusy,
			Message:       "pengajar sudah punya sesi pada slot ini",
			WithSessionID: &id,
		}, nil
	}

	// 2) Pengajar cuti (slot yang sama, atau satu hari penuh)?
	leave, err := d.leaves.FindBlocking(ctx, cand.InstructorID, cand.Date, cand.TimeSlotID)
	if err != nil {
		return nil, fmt.Errorf("cek cuti pengajar: %w", err)
	}
	if leave != nil {
		id := leave.InstructorLeaveID
		return &Conflict{
			Kind:          ConflictHoliday,
			Message:       "pengajar cuti pada tanggal ini",
			LeaveRecordID: &id,
		}, nil
	}

	// 3) Salah satu learner sudah punya sesi lain di slot yang sama?
	learnerID, with, err := d.sessions.FindActiveByLearnersAndSlot(ctx, learnerIDs, cand.Date, cand.TimeSlotID, excludeSessionIDs)
	if err != nil {
		return nil, fmt.Errorf("cek bentrok learner: %w", err)
	}
	if with != nil {
		lid := learnerID
		sid := with.ClassSessionID
		return &Conflict{
			Kind:          ConflictLearnerBusy,
			Message:       "learner sudah punya sesi pada slot ini",
			LearnerID:     &lid,
			WithSessionID: &sid,
		}, nil
	}

	return nil, nil
}

// FindLearnerConflicts: daftar LENGKAP learner yang bentrok pada (date, slot),
// bukan hanya yang pertama. Dipakai operasi checkLearnerConflicts.
func (d *ConflictDetector) FindLearnerConflicts(ctx context.Context, learnerIDs []uuid.UUID, date time.Time, timeSlotID uuid.UUID, excludeSessionIDs []uuid.UUID) ([]uuid.UUID, error) {
	ids, err := d.sessions.ListLearnersWithConflict(ctx, learnerIDs, date, timeSlotID, excludeSessionIDs)
	if err != nil {
		return nil, fmt.Errorf("cek bentrok learner: %w", err)
	}
	return ids, nil
}
