// file: internals/features/school/scheduling/dto/slot_dto.go
package dto

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"kursusku_backend/internals/features/school/scheduling/service"
)

const dateLayout = "2006-01-02"

// ParseDate: tanggal "YYYY-MM-DD", dinormalkan ke midnight UTC
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("format tanggal harus YYYY-MM-DD: %q", s)
	}
	return t, nil
}

/* ===================== REQUEST ===================== */

type FindSlotsRequest struct {
	InstructorID   string  `query:"instructor_id" validate:"required,uuid"`
	TimeSlotID     string  `query:"time_slot_id" validate:"required,uuid"`
	Weekday        int     `query:"weekday" validate:"required,min=1,max=7"`
	StartDate      string  `query:"start_date" validate:"required"`
	EndDate        *string `query:"end_date"`
	MaxSuggestions int     `query:"max_suggestions" validate:"required,min=1,max=50"`
	ExcludeClassID *string `query:"exclude_class_id"`
}

func (r FindSlotsRequest) ToQuery(editMode bool) (service.SlotQuery, error) {
	instructorID, err := uuid.Parse(r.InstructorID)
	if err != nil {
		return service.SlotQuery{}, fmt.Errorf("instructor_id bukan UUID valid")
	}
	timeSlotID, err := uuid.Parse(r.TimeSlotID)
	if err != nil {
		return service.SlotQuery{}, fmt.Errorf("time_slot_id bukan UUID valid")
	}
	start, err := ParseDate(r.StartDate)
	if err != nil {
		return service.SlotQuery{}, err
	}

	q := service.SlotQuery{
		InstructorID:   instructorID,
		TimeSlotID:     timeSlotID,
		Weekday:        r.Weekday,
		DateStart:      start,
		MaxSuggestions: r.MaxSuggestions,
		EditMode:       editMode,
	}
	if r.EndDate != nil && *r.EndDate != "" {
		end, err := ParseDate(*r.EndDate)
		if err != nil {
			return service.SlotQuery{}, err
		}
		q.DateEnd = &end
	}
	if r.ExcludeClassID != nil && *r.ExcludeClassID != "" {
		id, err := uuid.Parse(*r.ExcludeClassID)
		if err != nil {
			return service.SlotQuery{}, fmt.Errorf("exclude_class_id bukan UUID valid")
		}
		q.ExcludeClassID = &id
	}
	return q, nil
}

/* ===================== RESPONSE ===================== */

type CandidateSlotResponse struct {
	Date      string            `json:"date"`
	Available bool              `json:"available"`
	Reason    *service.Conflict `json:"reason,omitempty"`
}

func NewCandidateSlotResponses(slots []service.CandidateSlot) []CandidateSlotResponse {
	out := make([]CandidateSlotResponse, 0, len(slots))
	for _, s := range slots {
		out = append(out, CandidateSlotResponse{
			Date:      s.Date.Format(dateLayout),
			Available: s.Available,
			Reason:    s.Reason,
		})
	}
	return out
}
