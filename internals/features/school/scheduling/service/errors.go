// file: internals/features/school/scheduling/service/errors.go
package service

import (
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
)

/* =========================================================
   Sentinel errors (kondisi abnormal; bentrok BUKAN error, lihat Conflict)
   ========================================================= */

var (
	ErrClassNotFound    = errors.New("kelas tidak ditemukan")
	ErrSessionNotFound  = errors.New("sesi tidak ditemukan")
	ErrTimeSlotNotFound = errors.New("slot waktu tidak ditemukan")

	ErrClassNotEditable  = errors.New("kelas tidak dapat diubah pada status saat ini")
	ErrIllegalTransition = errors.New("transisi status tidak diizinkan")

	// Sesi yang sudah lewat / sedang berjalan tidak boleh dijadwal ulang
	ErrSessionImmutable = errors.New("sesi sudah lewat dan tidak dapat diubah")

	ErrNoTimeSlotPattern = errors.New("kelas belum memiliki pola slot waktu")

	ErrValidation = errors.New("input tidak valid")
)

/* =========================================================
   Conflict: hasil bentrok yang DIHARAPKAN, dikembalikan sebagai data
   ========================================================= */

type ConflictKind string

const (
	ConflictInstructorBusy       ConflictKind = "instructor_busy"
	ConflictLearnerBusy          ConflictKind = "learner_busy"
	ConflictHoliday              ConflictKind = "holiday"
	ConflictPlannedCountExceeded ConflictKind = "planned_count_exceeded"
	ConflictValidation           ConflictKind = "validation"
)

type Conflict struct {
	Kind    ConflictKind `json:"kind"`
	Message string       `json:"message"`

	WithSessionID *uuid.UUID `json:"with_session_id,omitempty"`
	LearnerID     *uuid.UUID `json:"learner_id,omitempty"`
	LeaveRecordID *uuid.UUID `json:"leave_record_id,omitempty"`
}

func validationConflict(msg string) *Conflict {
	return &Conflict{Kind: ConflictValidation, Message: msg}
}

// conflictFromPG: pelanggaran unique index parsial pada insert balapan
// dipetakan ke bentrok pengajar, bukan error infrastruktur.
// 23505 = unique_violation, 23P01 = exclusion_violation.
func conflictFromPG(err error) *Conflict {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && (pgErr.Code == "23505" || pgErr.Code == "23P01") {
		return &Conflict{Kind: ConflictInstructorBusy, Message: "slot pengajar sudah terisi (balapan penulisan)"}
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && (string(pqErr.Code) == "23505" || string(pqErr.Code) == "23P01") {
		return &Conflict{Kind: ConflictInstructorBusy, Message: "slot pengajar sudah terisi (balapan penulisan)"}
	}
	return nil
}
