// file: internals/features/school/scheduling/service/mock_repos_test.go
package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"kursusku_backend/internals/features/school/scheduling/model"
)

/* =========================================================
   Store in-memory + implementasi repository untuk pengujian.
   Create meniru unique index parsial: insert kedua pada
   (pengajar, tanggal, slot) aktif gagal dengan SQLSTATE 23505.
   ========================================================= */

type mockStore struct {
	classes     map[uuid.UUID]*model.ClassModel
	sessions    map[uuid.UUID]*model.ClassSessionModel
	enrollments map[uuid.UUID][]uuid.UUID // classID -> learnerIDs
	leaves      []*model.LeaveRecordModel
	timeSlots   map[uuid.UUID]*model.TimeSlotModel
	nextID      int
}

func newMockStore() *mockStore {
	return &mockStore{
		classes:     make(map[uuid.UUID]*model.ClassModel),
		sessions:    make(map[uuid.UUID]*model.ClassSessionModel),
		enrollments: make(map[uuid.UUID][]uuid.UUID),
		timeSlots:   make(map[uuid.UUID]*model.TimeSlotModel),
	}
}

func (st *mockStore) genID() uuid.UUID {
	st.nextID++
	return uuid.MustParse(fmt.Sprintf("99999999-0000-0000-0000-%012d", st.nextID))
}

func (st *mockStore) sortedSessions() []*model.ClassSessionModel {
	out := make([]*model.ClassSessionModel, 0, len(st.sessions))
	for _, s := range st.sessions {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].ClassSessionDate.Equal(out[j].ClassSessionDate) {
			return out[i].ClassSessionDate.Before(out[j].ClassSessionDate)
		}
		return out[i].ClassSessionID.String() < out[j].ClassSessionID.String()
	})
	return out
}

func contains(ids []uuid.UUID, id uuid.UUID) bool {
	for _, x := range ids {
		if x == id {
			return true
		}
	}
	return false
}

/* ===================== class ===================== */

type mockClassRepo struct{ st *mockStore }

func (r *mockClassRepo) GetByID(_ context.Context, id uuid.UUID) (*model.ClassModel, error) {
	cls, ok := r.st.classes[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *cls
	return &cp, nil
}

func (r *mockClassRepo) UpdateStatus(_ context.Context, id uuid.UUID, status model.ClassStatus) error {
	cls, ok := r.st.classes[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	cls.ClassStatus = status
	return nil
}

/* ===================== session ===================== */

type mockSessionRepo struct{ st *mockStore }

func (r *mockSessionRepo) GetByID(_ context.Context, id uuid.UUID) (*model.ClassSessionModel, error) {
	s, ok := r.st.sessions[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *s
	return &cp, nil
}

func (r *mockSessionRepo) insert(s *model.ClassSessionModel) error {
	for _, existing := range r.st.sessions {
		if !existing.ClassSessionDisabled &&
			existing.ClassSessionInstructorID == s.ClassSessionInstructorID &&
			existing.ClassSessionDate.Equal(s.ClassSessionDate) &&
			existing.ClassSessionTimeSlotID == s.ClassSessionTimeSlotID {
			return &pgconn.PgError{Code: "23505", ConstraintName: "uq_class_sessions_active_slot"}
		}
	}
	if s.ClassSessionID == uuid.Nil {
		s.ClassSessionID = r.st.genID()
	}
	cp := *s
	r.st.sessions[s.ClassSessionID] = &cp
	return nil
}

func (r *mockSessionRepo) Create(_ context.Context, s *model.ClassSessionModel) error {
	return r.insert(s)
}

func (r *mockSessionRepo) ListByClass(_ context.Context, classID uuid.UUID, includeDisabled bool) ([]model.ClassSessionModel, error) {
	var out []model.ClassSessionModel
	for _, s := range r.st.sortedSessions() {
		if s.ClassSessionClassID != classID {
			continue
		}
		if !includeDisabled && s.ClassSessionDisabled {
			continue
		}
		out = append(out, *s)
	}
	return out, nil
}

func (r *mockSessionRepo) ActiveIDsByClass(_ context.Context, classID uuid.UUID) ([]uuid.UUID, error) {
	var out []uuid.UUID
	for _, s := range r.st.sortedSessions() {
		if s.ClassSessionClassID == classID && !s.ClassSessionDisabled {
			out = append(out, s.ClassSessionID)
		}
	}
	return out, nil
}

func (r *mockSessionRepo) CountActiveByClass(_ context.Context, classID uuid.UUID) (int64, error) {
	var n int64
	for _, s := range r.st.sessions {
		if s.ClassSessionClassID == classID && !s.ClassSessionDisabled {
			n++
		}
	}
	return n, nil
}

func (r *mockSessionRepo) FindActiveBySlot(_ context.Context, instructorID uuid.UUID, date time.Time, timeSlotID uuid.UUID, excludeIDs []uuid.UUID) (*model.ClassSessionModel, error) {
	for _, s := range r.st.sortedSessions() {
		if s.ClassSessionDisabled || contains(excludeIDs, s.ClassSessionID) {
			continue
		}
		if s.ClassSessionInstructorID == instructorID &&
			s.ClassSessionDate.Equal(date) &&
			s.ClassSessionTimeSlotID == timeSlotID {
			cp := *s
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *mockSessionRepo) learnersOf(classID uuid.UUID) []uuid.UUID {
	return r.st.enrollments[classID]
}

func (r *mockSessionRepo) FindActiveByLearnersAndSlot(_ context.Context, learnerIDs []uuid.UUID, date time.Time, timeSlotID uuid.UUID, excludeIDs []uuid.UUID) (uuid.UUID, *model.ClassSessionModel, error) {
	for _, lid := range learnerIDs {
		for _, s := range r.st.sortedSessions() {
			if s.ClassSessionDisabled || contains(excludeIDs, s.ClassSessionID) {
				continue
			}
			if !s.ClassSessionDate.Equal(date) || s.ClassSessionTimeSlotID != timeSlotID {
				continue
			}
			if contains(r.learnersOf(s.ClassSessionClassID), lid) {
				cp := *s
				return lid, &cp, nil
			}
		}
	}
	return uuid.Nil, nil, nil
}

func (r *mockSessionRepo) ListLearnersWithConflict(ctx context.Context, learnerIDs []uuid.UUID, date time.Time, timeSlotID uuid.UUID, excludeIDs []uuid.UUID) ([]uuid.UUID, error) {
	var out []uuid.UUID
	for _, lid := range learnerIDs {
		got, _, err := r.FindActiveByLearnersAndSlot(ctx, []uuid.UUID{lid}, date, timeSlotID, excludeIDs)
		if err != nil {
			return nil, err
		}
		if got != uuid.Nil {
			out = append(out, lid)
		}
	}
	return out, nil
}

func (r *mockSessionRepo) Reschedule(_ context.Context, originalID uuid.UUID, replacement *model.ClassSessionModel) error {
	orig, ok := r.st.sessions[originalID]
	if !ok || orig.ClassSessionDisabled {
		return gorm.ErrRecordNotFound
	}
	orig.ClassSessionDisabled = true
	if err := r.insert(replacement); err != nil {
		// rollback seperti transaksi sungguhan
		orig.ClassSessionDisabled = false
		return err
	}
	return nil
}

/* ===================== enrollment ===================== */

type mockEnrollmentRepo struct{ st *mockStore }

func (r *mockEnrollmentRepo) ListLearnerIDsByClass(_ context.Context, classID uuid.UUID) ([]uuid.UUID, error) {
	return r.st.enrollments[classID], nil
}

/* ===================== leave ===================== */

type mockLeaveRepo struct{ st *mockStore }

func (r *mockLeaveRepo) Create(_ context.Context, l *model.LeaveRecordModel) error {
	if l.InstructorLeaveID == uuid.Nil {
		l.InstructorLeaveID = r.st.genID()
	}
	cp := *l
	r.st.leaves = append(r.st.leaves, &cp)
	return nil
}

func (r *mockLeaveRepo) ListByInstructor(_ context.Context, instructorID uuid.UUID) ([]model.LeaveRecordModel, error) {
	var out []model.LeaveRecordModel
	for _, l := range r.st.leaves {
		if l.InstructorLeaveInstructorID == instructorID {
			out = append(out, *l)
		}
	}
	return out, nil
}

func (r *mockLeaveRepo) FindBlocking(_ context.Context, instructorID uuid.UUID, date time.Time, timeSlotID uuid.UUID) (*model.LeaveRecordModel, error) {
	for _, l := range r.st.leaves {
		if l.InstructorLeaveInstructorID != instructorID || !l.InstructorLeaveDate.Equal(date) {
			continue
		}
		if l.InstructorLeaveTimeSlotID == nil || *l.InstructorLeaveTimeSlotID == timeSlotID {
			cp := *l
			return &cp, nil
		}
	}
	return nil, nil
}

/* ===================== time slot ===================== */

type mockTimeSlotRepo struct{ st *mockStore }

func (r *mockTimeSlotRepo) Create(_ context.Context, ts *model.TimeSlotModel) error {
	if ts.TimeSlotID == uuid.Nil {
		ts.TimeSlotID = r.st.genID()
	}
	cp := *ts
	r.st.timeSlots[ts.TimeSlotID] = &cp
	return nil
}

func (r *mockTimeSlotRepo) GetByID(_ context.Context, id uuid.UUID) (*model.TimeSlotModel, error) {
	ts, ok := r.st.timeSlots[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *ts
	return &cp, nil
}

func (r *mockTimeSlotRepo) List(_ context.Context, weekday *int) ([]model.TimeSlotModel, error) {
	var out []model.TimeSlotModel
	for _, ts := range r.st.timeSlots {
		if weekday != nil && ts.TimeSlotWeekday != *weekday {
			continue
		}
		out = append(out, *ts)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].TimeSlotID.String() < out[j].TimeSlotID.String() })
	return out, nil
}

/* =========================================================
   Fixture: seluruh engine di atas store yang sama
   ========================================================= */

type fixture struct {
	st        *mockStore
	detector  *ConflictDetector
	search    *SlotSearchService
	lifecycle *SessionLifecycleService
	bulk      *BulkProvisioningService
	makeup    *AutoMakeupService
	workflow  *ClassStatusWorkflow
}

func newFixture() *fixture {
	st := newMockStore()
	classes := &mockClassRepo{st: st}
	sessions := &mockSessionRepo{st: st}
	enrollments := &mockEnrollmentRepo{st: st}
	leaves := &mockLeaveRepo{st: st}
	timeSlots := &mockTimeSlotRepo{st: st}

	detector := NewConflictDetector(sessions, leaves)
	search := NewSlotSearchService(detector, sessions)
	workflow := NewClassStatusWorkflow(classes)

	return &fixture{
		st:        st,
		detector:  detector,
		search:    search,
		lifecycle: NewSessionLifecycleService(classes, sessions, enrollments, timeSlots, detector, workflow),
		bulk:      NewBulkProvisioningService(classes, sessions, enrollments, detector, workflow),
		makeup:    NewAutoMakeupService(classes, sessions, timeSlots, search),
		workflow:  workflow,
	}
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func uid(n int) uuid.UUID {
	return uuid.MustParse(fmt.Sprintf("00000000-0000-0000-0000-%012d", n))
}

func (f *fixture) seedClass(id uuid.UUID, planned int, instructorID uuid.UUID, status model.ClassStatus) *model.ClassModel {
	cls := &model.ClassModel{
		ClassID:                  id,
		ClassName:                "Kelas Uji",
		ClassPlannedSessionCount: planned,
		ClassInstructorID:        &instructorID,
		ClassStatus:              status,
	}
	f.st.classes[id] = cls
	return cls
}

func (f *fixture) seedTimeSlot(id uuid.UUID, weekday int, start, end string) *model.TimeSlotModel {
	ts := &model.TimeSlotModel{
		TimeSlotID:        id,
		TimeSlotLabel:     start + "-" + end,
		TimeSlotWeekday:   weekday,
		TimeSlotStartTime: start,
		TimeSlotEndTime:   end,
	}
	f.st.timeSlots[id] = ts
	return ts
}

func (f *fixture) seedSession(id, classID, slotID, instructorID uuid.UUID, d time.Time) *model.ClassSessionModel {
	s := &model.ClassSessionModel{
		ClassSessionID:           id,
		ClassSessionClassID:      classID,
		ClassSessionTimeSlotID:   slotID,
		ClassSessionInstructorID: instructorID,
		ClassSessionDate:         d,
		ClassSessionTitle:        "Pertemuan",
	}
	f.st.sessions[id] = s
	return s
}

func (f *fixture) seedLeave(instructorID uuid.UUID, d time.Time, slotID *uuid.UUID) {
	f.st.leaves = append(f.st.leaves, &model.LeaveRecordModel{
		InstructorLeaveID:           f.st.genID(),
		InstructorLeaveInstructorID: instructorID,
		InstructorLeaveDate:         d,
		InstructorLeaveTimeSlotID:   slotID,
	})
}

func (f *fixture) seedEnrollment(classID uuid.UUID, learnerIDs ...uuid.UUID) {
	f.st.enrollments[classID] = append(f.st.enrollments[classID], learnerIDs...)
}
