// file: internals/features/school/scheduling/service/bulk_provisioning_service.go
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"kursusku_backend/internals/features/school/scheduling/model"
	"kursusku_backend/internals/features/school/scheduling/repository"
)

// SessionCandidate: satu kandidat sesi di batch. Field pointer supaya
// "tidak diisi" bisa dibedakan dari nilai kosong.
type SessionCandidate struct {
	TimeSlotID   *uuid.UUID `json:"time_slot_id"`
	InstructorID *uuid.UUID `json:"instructor_id"`
	Date         *time.Time `json:"date"`
	Title        string     `json:"title"`
	Description  *string    `json:"description,omitempty"`
}

type CandidateConflict struct {
	Index     int              `json:"index"`
	Candidate SessionCandidate `json:"candidate"`
	Reason    *Conflict        `json:"reason"`
}

// BulkResult: kedua daftar SELALU ada. Batch yang bentrok seluruhnya adalah
// hasil normal, bukan error.
type BulkResult struct {
	Created   []model.ClassSessionModel `json:"created"`
	Conflicts []CandidateConflict       `json:"conflicts"`
}

// BulkProvisioningService: banyak percobaan create yang independen dan
// berurutan; bentrok kandidat ke-i tidak menghentikan kandidat ke-i+1.
type BulkProvisioningService struct {
	classes     repository.ClassRepository
	sessions    repository.SessionRepository
	enrollments repository.EnrollmentRepository
	detector    *ConflictDetector
	workflow    *ClassStatusWorkflow
}

func NewBulkProvisioningService(
	classes repository.ClassRepository,
	sessions repository.SessionRepository,
	enrollments repository.EnrollmentRepository,
	detector *ConflictDetector,
	workflow *ClassStatusWorkflow,
) *BulkProvisioningService {
	return &BulkProvisioningService{
		classes:     classes,
		sessions:    sessions,
		enrollments: enrollments,
		detector:    detector,
		workflow:    workflow,
	}
}

func (s *BulkProvisioningService) ProvisionMany(ctx context.Context, classID uuid.UUID, candidates []SessionCandidate, privileged bool) (*BulkResult, error) {
	if classID == uuid.Nil {
		return nil, fmt.Errorf("%w: class_id wajib diisi", ErrValidation)
	}

	cls, err := s.classes.GetByID(ctx, classID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrClassNotFound
		}
		return nil, err
	}
	if err := s.workflow.EnsureEditable(cls, privileged); err != nil {
		return nil, err
	}

	existing, err := s.sessions.CountActiveByClass(ctx, classID)
	if err != nil {
		return nil, err
	}
	learners, err := s.enrollments.ListLearnerIDsByClass(ctx, classID)
	if err != nil {
		return nil, err
	}

	res := &BulkResult{
		Created:   make([]model.ClassSessionModel, 0, len(candidates)),
		Conflicts: make([]CandidateConflict, 0),
	}

	for i, cand := range candidates {
		// Validasi field wajib, tanpa menyentuh detector
		if cand.Title == "" || cand.TimeSlotID == nil || cand.InstructorID == nil || cand.Date == nil {
			res.Conflicts = append(res.Conflicts, CandidateConflict{
				Index: i, Candidate: cand,
				Reason: validationConflict("time_slot_id, instructor_id, date, dan title wajib diisi"),
			})
			continue
		}

		// Plafon rencana sesi: hitung yang sudah ada + yang dibuat batch ini
		if existing+int64(len(res.Created)) >= int64(cls.ClassPlannedSessionCount) {
			res.Conflicts = append(res.Conflicts, CandidateConflict{
				Index: i, Candidate: cand,
				Reason: &Conflict{
					Kind:    ConflictPlannedCountExceeded,
					Message: fmt.Sprintf("rencana %d sesi sudah terpenuhi", cls.ClassPlannedSessionCount),
				},
			})
			continue
		}

		conflict, err := s.detector.Check(ctx, Candidate{
			InstructorID: *cand.InstructorID,
			Date:         *cand.Date,
			TimeSlotID:   *cand.TimeSlotID,
		}, learners, nil)
		if err != nil {
			return nil, err
		}
		if conflict != nil {
			res.Conflicts = append(res.Conflicts, CandidateConflict{Index: i, Candidate: cand, Reason: conflict})
			continue
		}

		row := model.ClassSessionModel{
			ClassSessionClassID:      classID,
			ClassSessionTimeSlotID:   *cand.TimeSlotID,
			ClassSessionInstructorID: *cand.InstructorID,
			ClassSessionDate:         *cand.Date,
			ClassSessionTitle:        cand.Title,
			ClassSessionDescription:  cand.Description,
		}
		if err := s.sessions.Create(ctx, &row); err != nil {
			if c := conflictFromPG(err); c != nil {
				res.Conflicts = append(res.Conflicts, CandidateConflict{Index: i, Candidate: cand, Reason: c})
				continue
			}
			return nil, err
		}
		res.Created = append(res.Created, row)
	}

	return res, nil
}
