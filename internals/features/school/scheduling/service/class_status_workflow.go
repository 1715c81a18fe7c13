// file: internals/features/school/scheduling/service/class_status_workflow.go
package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"kursusku_backend/internals/features/school/scheduling/model"
	"kursusku_backend/internals/features/school/scheduling/repository"
)

/* =========================================================
   Normalisasi label status (ejaan lama/alias -> kanonik)
   ========================================================= */

var statusAliases = map[string]model.ClassStatus{
	"draft":            model.ClassStatusDraft,
	"waiting":          model.ClassStatusWaiting,
	"waiting_approval": model.ClassStatusWaiting,
	"pending":          model.ClassStatusPending,
	"approved":         model.ClassStatusApproved,
	"published":        model.ClassStatusApproved,
	"active":           model.ClassStatusActive,
	"open":             model.ClassStatusActive,
	"on_going":         model.ClassStatusOnGoing,
	"ongoing":          model.ClassStatusOnGoing,
	"on-going":         model.ClassStatusOnGoing,
	"close":            model.ClassStatusClose,
	"closed":           model.ClassStatusClose,
	"cancel":           model.ClassStatusCancel,
	"cancelled":        model.ClassStatusCancel,
	"canceled":         model.ClassStatusCancel,
}

// NormalizeStatus: lookup murni; label tak dikenal ditolak, bukan ditebak.
func NormalizeStatus(raw string) (model.ClassStatus, bool) {
	s, ok := statusAliases[strings.ToLower(strings.TrimSpace(raw))]
	return s, ok
}

/* =========================================================
   Tabel transisi (state terminal tidak punya entri keluar)
   ========================================================= */

var classTransitions = map[model.ClassStatus][]model.ClassStatus{
	model.ClassStatusDraft:    {model.ClassStatusWaiting, model.ClassStatusCancel},
	model.ClassStatusWaiting:  {model.ClassStatusPending, model.ClassStatusDraft, model.ClassStatusCancel},
	model.ClassStatusPending:  {model.ClassStatusApproved, model.ClassStatusDraft, model.ClassStatusCancel},
	model.ClassStatusApproved: {model.ClassStatusActive, model.ClassStatusCancel},
	model.ClassStatusActive:   {model.ClassStatusOnGoing, model.ClassStatusCancel},
	model.ClassStatusOnGoing:  {model.ClassStatusClose, model.ClassStatusCancel},
}

type ClassStatusWorkflow struct {
	classes repository.ClassRepository
}

func NewClassStatusWorkflow(classes repository.ClassRepository) *ClassStatusWorkflow {
	return &ClassStatusWorkflow{classes: classes}
}

func (w *ClassStatusWorkflow) CanTransition(current, target model.ClassStatus) bool {
	if current.IsTerminal() {
		return false
	}
	for _, next := range classTransitions[current] {
		if next == target {
			return true
		}
	}
	return false
}

// EnsureEditable: gerbang semua mutasi sesi.
// Terminal selalu ditolak; editor non-privileged hanya boleh saat DRAFT.
func (w *ClassStatusWorkflow) EnsureEditable(cls *model.ClassModel, privileged bool) error {
	cur, ok := NormalizeStatus(string(cls.ClassStatus))
	if !ok {
		return fmt.Errorf("%w: status kelas tidak dikenal: %q", ErrValidation, cls.ClassStatus)
	}
	if cur.IsTerminal() {
		return ErrClassNotEditable
	}
	if !privileged && cur != model.ClassStatusDraft {
		return ErrClassNotEditable
	}
	return nil
}

// ChangeStatus: normalisasi -> cek tabel -> persist. State tidak diubah di memori.
func (w *ClassStatusWorkflow) ChangeStatus(ctx context.Context, classID uuid.UUID, rawTarget string) (*model.ClassModel, error) {
	target, ok := NormalizeStatus(rawTarget)
	if !ok {
		return nil, fmt.Errorf("%w: status tujuan tidak dikenal: %q", ErrValidation, rawTarget)
	}

	cls, err := w.classes.GetByID(ctx, classID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrClassNotFound
		}
		return nil, err
	}

	current, ok := NormalizeStatus(string(cls.ClassStatus))
	if !ok {
		return nil, fmt.Errorf("%w: status kelas tidak dikenal: %q", ErrValidation, cls.ClassStatus)
	}

	if !w.CanTransition(current, target) {
		return nil, fmt.Errorf("%w: %s -> %s", ErrIllegalTransition, current, target)
	}

	if err := w.classes.UpdateStatus(ctx, classID, target); err != nil {
		return nil, err
	}
	cls.ClassStatus = target
	return cls, nil
}
