// file: internals/features/school/scheduling/service/slot_search_service_test.go
package service

import (
	"context"
	"errors"
	"testing"
	"time"
)

func availableDates(slots []CandidateSlot) []time.Time {
	var out []time.Time
	for _, s := range slots {
		if s.Available {
			out = append(out, s.Date)
		}
	}
	return out
}

func TestFindSlotsBounded(t *testing.T) {
	f := newFixture()
	slot := uid(10)

	// Rentang kosong: 3 saran diminta, tepat 3 yang kembali
	got, err := f.search.FindSlots(context.Background(), SlotQuery{
		InstructorID:   uid(1),
		TimeSlotID:     slot,
		Weekday:        1, // Senin
		DateStart:      date(2024, time.May, 6),
		MaxSuggestions: 3,
	})
	if err != nil {
		t.Fatalf("FindSlots: %v", err)
	}
	avail := availableDates(got)
	if len(avail) != 3 {
		t.Fatalf("harus tepat 3 tanggal tersedia, dapat %d", len(avail))
	}
	want := []time.Time{date(2024, time.May, 6), date(2024, time.May, 13), date(2024, time.May, 20)}
	for i, d := range want {
		if !avail[i].Equal(d) {
			t.Fatalf("tanggal ke-%d harus %s, dapat %s", i, d, avail[i])
		}
	}
	for _, d := range avail {
		if isoWeekday(d) != 1 {
			t.Fatalf("%s bukan Senin", d)
		}
	}
}

func TestFindSlotsRespectsDateEnd(t *testing.T) {
	f := newFixture()
	end := date(2024, time.May, 13)

	got, err := f.search.FindSlots(context.Background(), SlotQuery{
		InstructorID:   uid(1),
		TimeSlotID:     uid(10),
		Weekday:        1,
		DateStart:      date(2024, time.May, 6),
		DateEnd:        &end,
		MaxSuggestions: 10,
	})
	if err != nil {
		t.Fatalf("FindSlots: %v", err)
	}
	for _, s := range got {
		if s.Date.After(end) {
			t.Fatalf("tanggal %s melewati batas akhir %s", s.Date, end)
		}
	}
	if n := len(availableDates(got)); n != 2 {
		t.Fatalf("rentang 6..13 Mei hanya memuat 2 Senin, dapat %d", n)
	}
}

// Skenario ujung-ke-ujung: pengajar sudah punya sesi Senin 2024-05-06.
func TestFindSlotsExcludesBookedMonday(t *testing.T) {
	f := newFixture()
	instructor := uid(1)
	slot := uid(10)
	f.seedSession(uid(100), uid(50), slot, instructor, date(2024, time.May, 6))
	end := date(2024, time.May, 20)

	got, err := f.search.FindSlots(context.Background(), SlotQuery{
		InstructorID:   instructor,
		TimeSlotID:     slot,
		Weekday:        1,
		DateStart:      date(2024, time.May, 6),
		DateEnd:        &end,
		MaxSuggestions: 5,
	})
	if err != nil {
		t.Fatalf("FindSlots: %v", err)
	}

	avail := availableDates(got)
	for _, d := range avail {
		if d.Equal(date(2024, time.May, 6)) {
			t.Fatalf("2024-05-06 sudah terisi, tidak boleh tersedia")
		}
	}
	if len(avail) != 2 || !avail[0].Equal(date(2024, time.May, 13)) || !avail[1].Equal(date(2024, time.May, 20)) {
		t.Fatalf("harus [13 Mei, 20 Mei], dapat %v", avail)
	}

	// Tanggal terisi tetap dilaporkan dengan alasannya
	if !got[0].Date.Equal(date(2024, time.May, 6)) || got[0].Available || got[0].Reason == nil {
		t.Fatalf("6 Mei harus dilaporkan tidak tersedia beserta alasan, dapat %+v", got[0])
	}
}

func TestFindSlotsEditModeSuppressesHoliday(t *testing.T) {
	f := newFixture()
	instructor := uid(1)
	slot := uid(10)
	monday := date(2024, time.May, 6)
	f.seedLeave(instructor, monday, nil)
	end := date(2024, time.May, 6)

	q := SlotQuery{
		InstructorID:   instructor,
		TimeSlotID:     slot,
		Weekday:        1,
		DateStart:      monday,
		DateEnd:        &end,
		MaxSuggestions: 1,
	}

	got, err := f.search.FindSlots(context.Background(), q)
	if err != nil {
		t.Fatalf("FindSlots: %v", err)
	}
	if len(got) != 1 || got[0].Available || got[0].Reason == nil || got[0].Reason.Kind != ConflictHoliday {
		t.Fatalf("jalur normal harus melaporkan cuti, dapat %+v", got)
	}

	q.EditMode = true
	got, err = f.search.FindSlots(context.Background(), q)
	if err != nil {
		t.Fatalf("FindSlots edit: %v", err)
	}
	if len(got) != 1 || !got[0].Available {
		t.Fatalf("jalur edit harus mengabaikan cuti, dapat %+v", got)
	}
}

func TestFindSlotsExcludeOwnClass(t *testing.T) {
	f := newFixture()
	instructor := uid(1)
	slot := uid(10)
	ownClass := uid(50)
	monday := date(2024, time.May, 6)
	f.seedSession(uid(100), ownClass, slot, instructor, monday)
	end := monday

	got, err := f.search.FindSlots(context.Background(), SlotQuery{
		InstructorID:   instructor,
		TimeSlotID:     slot,
		Weekday:        1,
		DateStart:      monday,
		DateEnd:        &end,
		MaxSuggestions: 1,
		ExcludeClassID: &ownClass,
	})
	if err != nil {
		t.Fatalf("FindSlots: %v", err)
	}
	if len(got) != 1 || !got[0].Available {
		t.Fatalf("sesi kelas sendiri tidak boleh menghalangi pencarian edit: %+v", got)
	}
}

func TestFindSlotsValidatesInput(t *testing.T) {
	f := newFixture()

	_, err := f.search.FindSlots(context.Background(), SlotQuery{
		InstructorID: uid(1), TimeSlotID: uid(10), Weekday: 0,
		DateStart: date(2024, time.May, 6), MaxSuggestions: 1,
	})
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("weekday 0 harus ditolak, dapat %v", err)
	}

	_, err = f.search.FindSlots(context.Background(), SlotQuery{
		InstructorID: uid(1), TimeSlotID: uid(10), Weekday: 1,
		DateStart: date(2024, time.May, 6), MaxSuggestions: 0,
	})
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("max_suggestions 0 harus ditolak, dapat %v", err)
	}
}
