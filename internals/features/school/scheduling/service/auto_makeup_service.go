// file: internals/features/school/scheduling/service/auto_makeup_service.go
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

// makeupWindowDays: lebar satu jendela pencarian per saran.
// makeupMaxExpansions: jendela digeser maju 7 hari maksimal sebanyak ini.
const (
	makeupWindowDays    = 7
	makeupMaxExpansions = 4
)

// MakeupSuggestion: satu entri per sesi yang kurang; berhasil ATAU gagal
// dengan alasan. Sukses parsial adalah hasil normal.
type MakeupSuggestion struct {
	TimeSlotID uuid.UUID  `json:"time_slot_id"`
	Date       *time.Time `json:"date,omitempty"`
	Available  bool       `json:"available"`
	Reason     string     `json:"reason,omitempty"`
}

// makeupCursor: state round-robin + kursor tanggal, dithread eksplisit
// melalui loop supaya bisa diuji terpisah.
type makeupCursor struct {
	Cursor    time.Time
	SlotIndex int
}

type AutoMakeupService struct {
	classes   repository.ClassRepository
	sessions  repository.SessionRepository
	timeSlots repository.TimeSlotRepository
	search    *SlotSearchService
}

func NewAutoMakeupService(
	classes repository.ClassRepository,
	sessions repository.SessionRepository,
	timeSlots repository.TimeSlotRepository,
	search *SlotSearchService,
) *AutoMakeupService {
	return &AutoMakeupService{
		classes:   classes,
		sessions:  sessions,
		timeSlots: timeSlots,
		search:    search,
	}
}

// PlanMakeup: defisit = rencana - jumlah sesi aktif. Slot dipilih round-robin
// dari slot-slot yang sudah dipakai kelas (urut pemakaian pertama); kursor
// tanggal bergulir maju hanya saat sebuah saran berhasil.
func (s *AutoMakeupService) PlanMakeup(ctx context.Context, classID uuid.UUID) ([]MakeupSuggestion, error) {
	cls, err := s.classes.GetByID(ctx, classID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrClassNotFound
		}
		return nil, err
	}

	active, err := s.sessions.ListByClass(ctx, classID, false)
	if err != nil {
		return nil, err
	}

	deficit := cls.ClassPlannedSessionCount - len(active)
	if deficit <= 0 {
		return []MakeupSuggestion{}, nil
	}

	// Slot distinct urut pemakaian pertama (daftar sesi sudah urut tanggal)
	seen := make(map[uuid.UUID]bool)
	var slotIDs []uuid.UUID
	for _, sess := range active {
		if !seen[sess.ClassSessionTimeSlotID] {
			seen[sess.ClassSessionTimeSlotID] = true
			slotIDs = append(slotIDs, sess.ClassSessionTimeSlotID)
		}
	}
	if len(slotIDs) == 0 {
		return nil, ErrNoTimeSlotPattern
	}

	slotByID := make(map[uuid.UUID]*model.TimeSlotModel, len(slotIDs))
	for _, id := range slotIDs {
		ts, err := s.timeSlots.GetByID(ctx, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrTimeSlotNotFound
			}
			return nil, err
		}
		slotByID[id] = ts
	}

	instructorID := active[len(active)-1].ClassSessionInstructorID
	if cls.ClassInstructorID != nil {
		instructorID = *cls.ClassInstructorID
	}

	latest := active[0].ClassSessionDate
	for _, sess := range active {
		if sess.ClassSessionDate.After(latest) {
			latest = sess.ClassSessionDate
		}
	}

	st := makeupCursor{Cursor: latest.AddDate(0, 0, 1)}
	out := make([]MakeupSuggestion, 0, deficit)

	for i := 0; i < deficit; i++ {
		slotID := slotIDs[st.SlotIndex%len(slotIDs)]
		st.SlotIndex++
		ts := slotByID[slotID]

		var found *time.Time
		for exp := 0; exp < makeupMaxExpansions; exp++ {
			start := st.Cursor.AddDate(0, 0, exp*makeupWindowDays)
			end := start.AddDate(0, 0, makeupWindowDays-1)

			slots, err := s.search.FindSlots(ctx, SlotQuery{
				InstructorID:   instructorID,
				TimeSlotID:     slotID,
				Weekday:        ts.TimeSlotWeekday,
				DateStart:      start,
				DateEnd:        &end,
				MaxSuggestions: 1,
			})
			if err != nil {
				return nil, err
			}
			for _, cs := range slots {
				if cs.Available {
					d := cs.Date
					found = &d
					break
				}
			}
			if found != nil {
				break
			}
		}

		if found != nil {
			out = append(out, MakeupSuggestion{TimeSlotID: slotID, Date: found, Available: true})
			// Saran berikutnya tidak boleh dapat tanggal yang sama atau lebih awal
			st.Cursor = found.AddDate(0, 0, 1)
		} else {
			out = append(out, MakeupSuggestion{
				TimeSlotID: slotID,
				Available:  false,
				Reason: fmt.Sprintf("tidak menemukan tanggal kosong dalam %d jendela pencarian sejak %s",
					makeupMaxExpansions, st.Cursor.Format("2006-01-02")),
			})
		}
	}

	return out, nil
}
