// file: internals/features/school/scheduling/service/slot_search_service.go
package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"kursusku_backend/internals/features/school/scheduling/repository"
)

// maxSteppedDates: batas keras jumlah tanggal yang di-scan bila DateEnd kosong,
// supaya pencarian selalu berhingga.
const maxSteppedDates = 366

type SlotQuery struct {
	InstructorID   uuid.UUID
	TimeSlotID     uuid.UUID
	Weekday        int // ISO: 1=Senin .. 7=Minggu
	DateStart      time.Time
	DateEnd        *time.Time
	MaxSuggestions int

	// ExcludeClassID: sesi milik kelas ini tidak dihitung bentrok
	// (dipakai saat mengedit jadwal kelas itu sendiri)
	ExcludeClassID *uuid.UUID

	// EditMode: bentrok cuti dianggap tersedia. Keputusan produk jalur edit:
	// sesi lama sudah lolos cek cuti saat dibuat, validasi ulang di sini akan
	// memblokir edit rentang tanggal yang mendahului catatan cuti.
	// TODO(product): konfirmasi apakah supresi cuti di jalur edit memang disengaja.
	EditMode bool
}

type CandidateSlot struct {
	Date      time.Time `json:"date"`
	Available bool      `json:"available"`
	Reason    *Conflict `json:"reason,omitempty"`
}

// SlotSearchService: pencarian baca-saja; hasilnya advisory. Balapan antara
// "search" dan "commit" diselesaikan saat commit oleh unique index, bukan di sini.
type SlotSearchService struct {
	detector *ConflictDetector
	sessions repository.SessionRepository
}

func NewSlotSearchService(detector *ConflictDetector, sessions repository.SessionRepository) *SlotSearchService {
	return &SlotSearchService{detector: detector, sessions: sessions}
}

func isoWeekday(t time.Time) int {
	wd := int(t.Weekday())
	if wd == 0 {
		return 7
	}
	return wd
}

// FindSlots: tanggal-tanggal pada Weekday mulai DateStart, berhenti setelah
// MaxSuggestions tanggal tersedia atau rentang habis. Tanggal tidak tersedia di
// dalam jendela tetap dilaporkan dengan alasannya.
func (s *SlotSearchService) FindSlots(ctx context.Context, q SlotQuery) ([]CandidateSlot, error) {
	if q.Weekday < 1 || q.Weekday > 7 {
		return nil, fmt.Errorf("%w: weekday harus 1..7", ErrValidation)
	}
	if q.MaxSuggestions <= 0 {
		return nil, fmt.Errorf("%w: max_suggestions harus > 0", ErrValidation)
	}

	var exclude []uuid.UUID
	if q.ExcludeClassID != nil {
		ids, err := s.sessions.ActiveIDsByClass(ctx, *q.ExcludeClassID)
		if err != nil {
			return nil, fmt.Errorf("ambil sesi kelas pengecualian: %w", err)
		}
		exclude = ids
	}

	// Maju ke tanggal pertama yang jatuh pada weekday yang diminta
	date := q.DateStart
	for isoWeekday(date) != q.Weekday {
		date = date.AddDate(0, 0, 1)
	}

	out := make([]CandidateSlot, 0, q.MaxSuggestions)
	found := 0
	for step := 0; step < maxSteppedDates; step++ {
		if q.DateEnd != nil && date.After(*q.DateEnd) {
			break
		}

		conflict, err := s.detector.Check(ctx, Candidate{
			InstructorID: q.InstructorID,
			Date:         date,
			TimeSlotID:   q.TimeSlotID,
		}, nil, exclude)
		if err != nil {
			return nil, err
		}

		if conflict != nil && q.EditMode && conflict.Kind == ConflictHoliday {
			conflict = nil
		}

		if conflict == nil {
			out = append(out, CandidateSlot{Date: date, Available: true})
			found++
			if found >= q.MaxSuggestions {
				break
			}
		} else {
			out = append(out, CandidateSlot{Date: date, Available: false, Reason: conflict})
		}

		date = date.AddDate(0, 0, 7)
	}

	return out, nil
}
