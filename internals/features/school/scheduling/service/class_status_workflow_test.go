// file: internals/features/school/scheduling/service/class_status_workflow_test.go
package service

import (
	"context"
	"errors"
	"testing"

	"kursusku_backend/internals/features/school/scheduling/model"
)

func TestNormalizeStatusAliases(t *testing.T) {
	cases := map[string]model.ClassStatus{
		"draft":     model.ClassStatusDraft,
		"waiting":   model.ClassStatusWaiting,
		"pending":   model.ClassStatusPending,
		"approved":  model.ClassStatusApproved,
		"published": model.ClassStatusApproved,
		"active":    model.ClassStatusActive,
		"open":      model.ClassStatusActive,
		"ongoing":   model.ClassStatusOnGoing,
		"on_going":  model.ClassStatusOnGoing,
		"on-going":  model.ClassStatusOnGoing,
		"ON_GOING":  model.ClassStatusOnGoing,
		"close":     model.ClassStatusClose,
		"closed":    model.ClassStatusClose,
		"cancel":    model.ClassStatusCancel,
		"cancelled": model.ClassStatusCancel,
		"canceled":  model.ClassStatusCancel,
		" Active ":  model.ClassStatusActive,
	}
	for raw, want := range cases {
		got, ok := NormalizeStatus(raw)
		if !ok || got != want {
			t.Fatalf("NormalizeStatus(%q) = %v/%v, harus %v", raw, got, ok, want)
		}
	}

	if _, ok := NormalizeStatus("archived"); ok {
		t.Fatalf("label tak dikenal tidak boleh ditebak")
	}
}

func TestCanTransitionTable(t *testing.T) {
	f := newFixture()
	legal := [][2]model.ClassStatus{
		{model.ClassStatusDraft, model.ClassStatusWaiting},
		{model.ClassStatusDraft, model.ClassStatusCancel},
		{model.ClassStatusWaiting, model.ClassStatusPending},
		{model.ClassStatusWaiting, model.ClassStatusDraft},
		{model.ClassStatusPending, model.ClassStatusApproved},
		{model.ClassStatusPending, model.ClassStatusDraft},
		{model.ClassStatusApproved, model.ClassStatusActive},
		{model.ClassStatusActive, model.ClassStatusOnGoing},
		{model.ClassStatusOnGoing, model.ClassStatusClose},
		{model.ClassStatusOnGoing, model.ClassStatusCancel},
	}
	for _, tc := range legal {
		if !f.workflow.CanTransition(tc[0], tc[1]) {
			t.Fatalf("%s -> %s harus legal", tc[0], tc[1])
		}
	}

	illegal := [][2]model.ClassStatus{
		{model.ClassStatusDraft, model.ClassStatusApproved},
		{model.ClassStatusDraft, model.ClassStatusClose},
		{model.ClassStatusWaiting, model.ClassStatusActive},
		{model.ClassStatusApproved, model.ClassStatusDraft},
		{model.ClassStatusActive, model.ClassStatusClose},
	}
	for _, tc := range illegal {
		if f.workflow.CanTransition(tc[0], tc[1]) {
			t.Fatalf("%s -> %s harus ilegal", tc[0], tc[1])
		}
	}
}

func TestTerminalStatesHaveNoExit(t *testing.T) {
	f := newFixture()
	all := []model.ClassStatus{
		model.ClassStatusDraft, model.ClassStatusWaiting, model.ClassStatusPending,
		model.ClassStatusApproved, model.ClassStatusActive, model.ClassStatusOnGoing,
		model.ClassStatusClose, model.ClassStatusCancel,
	}
	for _, terminal := range []model.ClassStatus{model.ClassStatusClose, model.ClassStatusCancel} {
		for _, target := range all {
			if f.workflow.CanTransition(terminal, target) {
				t.Fatalf("%s terminal, %s -> %s harus ilegal", terminal, terminal, target)
			}
		}
	}
}

func TestChangeStatusPersists(t *testing.T) {
	f := newFixture()
	classID := uid(50)
	f.seedClass(classID, 5, uid(1), model.ClassStatusDraft)

	cls, err := f.workflow.ChangeStatus(context.Background(), classID, "waiting")
	if err != nil {
		t.Fatalf("ChangeStatus: %v", err)
	}
	if cls.ClassStatus != model.ClassStatusWaiting {
		t.Fatalf("hasil harus WAITING, dapat %s", cls.ClassStatus)
	}
	if f.st.classes[classID].ClassStatus != model.ClassStatusWaiting {
		t.Fatalf("status harus tersimpan di store")
	}

	// Alias juga diterima sebagai target
	if _, err := f.workflow.ChangeStatus(context.Background(), classID, "pending"); err != nil {
		t.Fatalf("ChangeStatus pending: %v", err)
	}
	if _, err := f.workflow.ChangeStatus(context.Background(), classID, "published"); err != nil {
		t.Fatalf("alias published harus diterima: %v", err)
	}
	if f.st.classes[classID].ClassStatus != model.ClassStatusApproved {
		t.Fatalf("alias published harus tersimpan sebagai APPROVED")
	}
}

func TestChangeStatusRejections(t *testing.T) {
	f := newFixture()
	classID := uid(50)
	f.seedClass(classID, 5, uid(1), model.ClassStatusDraft)

	if _, err := f.workflow.ChangeStatus(context.Background(), classID, "approved"); !errors.Is(err, ErrIllegalTransition) {
		t.Fatalf("DRAFT -> APPROVED harus ErrIllegalTransition, dapat %v", err)
	}
	if _, err := f.workflow.ChangeStatus(context.Background(), classID, "archived"); !errors.Is(err, ErrValidation) {
		t.Fatalf("label tak dikenal harus ErrValidation, dapat %v", err)
	}
	if _, err := f.workflow.ChangeStatus(context.Background(), uid(99), "waiting"); !errors.Is(err, ErrClassNotFound) {
		t.Fatalf("kelas hilang harus ErrClassNotFound, dapat %v", err)
	}
	if f.st.classes[classID].ClassStatus != model.ClassStatusDraft {
		t.Fatalf("penolakan tidak boleh mengubah status")
	}
}

func TestEnsureEditable(t *testing.T) {
	f := newFixture()
	cls := &model.ClassModel{ClassStatus: model.ClassStatusDraft}

	if err := f.workflow.EnsureEditable(cls, false); err != nil {
		t.Fatalf("DRAFT harus bisa diedit siapa pun: %v", err)
	}

	cls.ClassStatus = model.ClassStatusActive
	if err := f.workflow.EnsureEditable(cls, false); !errors.Is(err, ErrClassNotEditable) {
		t.Fatalf("non-privileged di ACTIVE harus ditolak, dapat %v", err)
	}
	if err := f.workflow.EnsureEditable(cls, true); err != nil {
		t.Fatalf("privileged di ACTIVE harus boleh: %v", err)
	}

	for _, terminal := range []model.ClassStatus{model.ClassStatusClose, model.ClassStatusCancel} {
		cls.ClassStatus = terminal
		if err := f.workflow.EnsureEditable(cls, true); !errors.Is(err, ErrClassNotEditable) {
			t.Fatalf("terminal %s harus ditolak siapa pun, dapat %v", terminal, err)
		}
	}
}
