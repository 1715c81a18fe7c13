// file: internals/features/school/scheduling/service/auto_makeup_service_test.go
package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"kursusku_backend/internals/features/school/scheduling/model"
)

func TestPlanMakeupNoDeficit(t *testing.T) {
	f := newFixture()
	instructor := uid(1)
	classID := uid(50)
	slot := uid(10)
	f.seedClass(classID, 2, instructor, model.ClassStatusActive)
	f.seedTimeSlot(slot, 1, "08:00:00", "10:00:00")
	f.seedSession(uid(100), classID, slot, instructor, date(2024, time.May, 6))
	f.seedSession(uid(101), classID, slot, instructor, date(2024, time.May, 13))

	got, err := f.makeup.PlanMakeup(context.Background(), classID)
	if err != nil {
		t.Fatalf("PlanMakeup: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("tanpa defisit harus kosong, dapat %d saran", len(got))
	}
}

func TestPlanMakeupNoPattern(t *testing.T) {
	f := newFixture()
	f.seedClass(uid(50), 3, uid(1), model.ClassStatusActive)

	_, err := f.makeup.PlanMakeup(context.Background(), uid(50))
	if !errors.Is(err, ErrNoTimeSlotPattern) {
		t.Fatalf("kelas tanpa sesi harus ErrNoTimeSlotPattern, dapat %v", err)
	}
}

// Defisit 3 dengan slot [A, B]: urutan round-robin A, B, A.
func TestPlanMakeupRoundRobin(t *testing.T) {
	f := newFixture()
	instructor := uid(1)
	classID := uid(50)
	slotA := uid(10) // Senin
	slotB := uid(11) // Rabu
	f.seedClass(classID, 5, instructor, model.ClassStatusActive)
	f.seedTimeSlot(slotA, 1, "08:00:00", "10:00:00")
	f.seedTimeSlot(slotB, 3, "13:00:00", "15:00:00")
	f.seedSession(uid(100), classID, slotA, instructor, date(2024, time.May, 6))
	f.seedSession(uid(101), classID, slotB, instructor, date(2024, time.May, 8))

	got, err := f.makeup.PlanMakeup(context.Background(), classID)
	if err != nil {
		t.Fatalf("PlanMakeup: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("defisit 3 harus menghasilkan 3 entri, dapat %d", len(got))
	}

	if got[0].TimeSlotID != slotA || got[1].TimeSlotID != slotB || got[2].TimeSlotID != slotA {
		t.Fatalf("urutan slot harus A, B, A, dapat %v %v %v", got[0].TimeSlotID, got[1].TimeSlotID, got[2].TimeSlotID)
	}

	for i, sug := range got {
		if !sug.Available || sug.Date == nil {
			t.Fatalf("saran ke-%d harus berhasil: %+v", i, sug)
		}
	}

	// Kursor bergulir: tanggal naik ketat, tidak ada yang menjiplak sesi lama
	if !got[0].Date.Equal(date(2024, time.May, 13)) {
		t.Fatalf("saran pertama harus Senin 13 Mei, dapat %s", got[0].Date)
	}
	if !got[1].Date.Equal(date(2024, time.May, 15)) {
		t.Fatalf("saran kedua harus Rabu 15 Mei, dapat %s", got[1].Date)
	}
	if !got[2].Date.Equal(date(2024, time.May, 20)) {
		t.Fatalf("saran ketiga harus Senin 20 Mei, dapat %s", got[2].Date)
	}
}

// Kegagalan satu saran tidak menghentikan sisanya; kursor tidak bergeser.
func TestPlanMakeupPartialFailure(t *testing.T) {
	f := newFixture()
	instructor := uid(1)
	classID := uid(50)
	slot := uid(10) // Senin
	f.seedClass(classID, 3, instructor, model.ClassStatusActive)
	f.seedTimeSlot(slot, 1, "08:00:00", "10:00:00")
	f.seedSession(uid(100), classID, slot, instructor, date(2024, time.May, 6))

	// Blokir semua Senin dalam jangkauan 4 jendela pencarian (kursor 7 Mei)
	for _, d := range []time.Time{
		date(2024, time.May, 13),
		date(2024, time.May, 20),
		date(2024, time.May, 27),
		date(2024, time.June, 3),
	} {
		f.seedLeave(instructor, d, nil)
	}

	got, err := f.makeup.PlanMakeup(context.Background(), classID)
	if err != nil {
		t.Fatalf("PlanMakeup: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("defisit 2 harus menghasilkan 2 entri, dapat %d", len(got))
	}
	for i, sug := range got {
		if sug.Available || sug.Date != nil || sug.Reason == "" {
			t.Fatalf("entri ke-%d harus gagal beralasan: %+v", i, sug)
		}
	}
	// Kursor tidak bergeser setelah gagal: kedua alasan menyebut titik awal yang sama
	if got[0].Reason != got[1].Reason {
		t.Fatalf("kursor harus tetap setelah kegagalan: %q vs %q", got[0].Reason, got[1].Reason)
	}
}

func TestPlanMakeupClassNotFound(t *testing.T) {
	f := newFixture()
	_, err := f.makeup.PlanMakeup(context.Background(), uid(50))
	if !errors.Is(err, ErrClassNotFound) {
		t.Fatalf("kelas hilang harus ErrClassNotFound, dapat %v", err)
	}
}
