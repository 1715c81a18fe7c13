// file: internals/features/school/scheduling/dto/bulk_dto.go
package dto

import (
	"github.com/google/uuid"

	"kursusku_backend/internals/features/school/scheduling/service"
)

/* ===================== REQUEST ===================== */

// BulkCandidateRequest sengaja TANPA tag validate per field: kandidat yang
// kurang lengkap harus sampai ke service dan ditolak sebagai konflik validasi
// per item, bukan menggagalkan seluruh batch di controller.
type BulkCandidateRequest struct {
	TimeSlotID   *string `json:"time_slot_id"`
	InstructorID *string `json:"instructor_id"`
	Date         *string `json:"date"`
	Title        string  `json:"title"`
	Description  *string `json:"description,omitempty"`
}

type BulkProvisionRequest struct {
	Candidates []BulkCandidateRequest `json:"candidates" validate:"required,min=1,max=100"`
}

// ToCandidates: field yang gagal diparse diperlakukan sama dengan field kosong;
// service yang memutuskan konflik validasinya.
func (r BulkProvisionRequest) ToCandidates() []service.SessionCandidate {
	out := make([]service.SessionCandidate, 0, len(r.Candidates))
	for _, c := range r.Candidates {
		sc := service.SessionCandidate{Title: c.Title, Description: c.Description}
		if c.TimeSlotID != nil {
			if id, err := uuid.Parse(*c.TimeSlotID); err == nil {
				sc.TimeSlotID = &id
			}
		}
		if c.InstructorID != nil {
			if id, err := uuid.Parse(*c.InstructorID); err == nil {
				sc.InstructorID = &id
			}
		}
		if c.Date != nil {
			if d, err := ParseDate(*c.Date); err == nil {
				sc.Date = &d
			}
		}
		out = append(out, sc)
	}
	return out
}

/* ===================== RESPONSE ===================== */

type CandidateConflictResponse struct {
	Index  int               `json:"index"`
	Reason *service.Conflict `json:"reason"`
}

type BulkProvisionResponse struct {
	Created   []SessionResponse           `json:"created"`
	Conflicts []CandidateConflictResponse `json:"conflicts"`
}

func NewBulkProvisionResponse(res *service.BulkResult) BulkProvisionResponse {
	out := BulkProvisionResponse{
		Created:   NewSessionResponses(res.Created),
		Conflicts: make([]CandidateConflictResponse, 0, len(res.Conflicts)),
	}
	for _, c := range res.Conflicts {
		out.Conflicts = append(out.Conflicts, CandidateConflictResponse{Index: c.Index, Reason: c.Reason})
	}
	return out
}

/* ===================== MAKEUP ===================== */

type MakeupSuggestionResponse struct {
	TimeSlotID uuid.UUID `json:"time_slot_id"`
	Date       *string   `json:"date,omitempty"`
	Available  bool      `json:"available"`
	Reason     string    `json:"reason,omitempty"`
}

func NewMakeupSuggestionResponses(suggestions []service.MakeupSuggestion) []MakeupSuggestionResponse {
	out := make([]MakeupSuggestionResponse, 0, len(suggestions))
	for _, s := range suggestions {
		resp := MakeupSuggestionResponse{
			TimeSlotID: s.TimeSlotID,
			Available:  s.Available,
			Reason:     s.Reason,
		}
		if s.Date != nil {
			d := s.Date.Format(dateLayout)
			resp.Date = &d
		}
		out = append(out, resp)
	}
	return out
}

/* ===================== LEARNER CONFLICTS ===================== */

type LearnerConflictsResponse struct {
	HasConflicts bool        `json:"has_conflicts"`
	Conflicts    []uuid.UUID `json:"conflicts"`
}
