// file: internals/features/school/scheduling/dto/class_status_dto.go
package dto

import (
	"github.com/google/uuid"

	"kursusku_backend/internals/features/school/scheduling/model"
)

type ChangeClassStatusRequest struct {
	Status string `json:"status" validate:"required,max=30"`
}

type ClassResponse struct {
	ClassID             uuid.UUID         `json:"class_id"`
	ClassName           string            `json:"class_name"`
	ClassSlug           *string           `json:"class_slug,omitempty"`
	PlannedSessionCount int               `json:"planned_session_count"`
	PlannedStartDate    *string           `json:"planned_start_date,omitempty"`
	PlannedEndDate      *string           `json:"planned_end_date,omitempty"`
	InstructorID        *uuid.UUID        `json:"instructor_id,omitempty"`
	Status              model.ClassStatus `json:"status"`
}

func NewClassResponse(m *model.ClassModel) ClassResponse {
	resp := ClassResponse{
		ClassID:             m.ClassID,
		ClassName:           m.ClassName,
		ClassSlug:           m.ClassSlug,
		PlannedSessionCount: m.ClassPlannedSessionCount,
		InstructorID:        m.ClassInstructorID,
		Status:              m.ClassStatus,
	}
	if m.ClassPlannedStartDate != nil {
		d := m.ClassPlannedStartDate.Format(dateLayout)
		resp.PlannedStartDate = &d
	}
	if m.ClassPlannedEndDate != nil {
		d := m.ClassPlannedEndDate.Format(dateLayout)
		resp.PlannedEndDate = &d
	}
	return resp
}
