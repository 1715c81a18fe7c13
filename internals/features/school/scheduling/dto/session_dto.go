// file: internals/features/school/scheduling/dto/session_dto.go
package dto

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"kursusku_backend/internals/features/school/scheduling/model"
	"kursusku_backend/internals/features/school/scheduling/service"
)

/* ===================== REQUEST ===================== */

type CreateSessionRequest struct {
	ClassID      string  `json:"class_id" validate:"required,uuid"`
	TimeSlotID   string  `json:"time_slot_id" validate:"required,uuid"`
	InstructorID string  `json:"instructor_id" validate:"required,uuid"`
	Date         string  `json:"date" validate:"required"`
	Title        string  `json:"title" validate:"required,max=200"`
	Description  *string `json:"description,omitempty"`
}

func (r CreateSessionRequest) ToInput() (service.CreateSessionInput, error) {
	classID, err := uuid.Parse(r.ClassID)
	if err != nil {
		return service.CreateSessionInput{}, fmt.Errorf("class_id bukan UUID valid")
	}
	timeSlotID, err := uuid.Parse(r.TimeSlotID)
	if err != nil {
		return service.CreateSessionInput{}, fmt.Errorf("time_slot_id bukan UUID valid")
	}
	instructorID, err := uuid.Parse(r.InstructorID)
	if err != nil {
		return service.CreateSessionInput{}, fmt.Errorf("instructor_id bukan UUID valid")
	}
	date, err := ParseDate(r.Date)
	if err != nil {
		return service.CreateSessionInput{}, err
	}
	return service.CreateSessionInput{
		ClassID:      classID,
		TimeSlotID:   timeSlotID,
		InstructorID: instructorID,
		Date:         date,
		Title:        r.Title,
		Description:  r.Description,
	}, nil
}

type RescheduleSessionRequest struct {
	NewDate       string `json:"new_date" validate:"required"`
	NewTimeSlotID string `json:"new_time_slot_id" validate:"required,uuid"`
}

/* ===================== RESPONSE ===================== */

type SessionResponse struct {
	SessionID    uuid.UUID  `json:"session_id"`
	ClassID      uuid.UUID  `json:"class_id"`
	TimeSlotID   uuid.UUID  `json:"time_slot_id"`
	InstructorID uuid.UUID  `json:"instructor_id"`
	Date         string     `json:"date"`
	Title        string     `json:"title"`
	Description  *string    `json:"description,omitempty"`
	Disabled     bool       `json:"disabled"`
	SupersedesID *uuid.UUID `json:"supersedes_id,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
}

func NewSessionResponse(m *model.ClassSessionModel) SessionResponse {
	return SessionResponse{
		SessionID:    m.ClassSessionID,
		ClassID:      m.ClassSessionClassID,
		TimeSlotID:   m.ClassSessionTimeSlotID,
		InstructorID: m.ClassSessionInstructorID,
		Date:         m.ClassSessionDate.Format(dateLayout),
		Title:        m.ClassSessionTitle,
		Description:  m.ClassSessionDescription,
		Disabled:     m.ClassSessionDisabled,
		SupersedesID: m.ClassSessionSupersedesID,
		CreatedAt:    m.ClassSessionCreatedAt,
	}
}

func NewSessionResponses(rows []model.ClassSessionModel) []SessionResponse {
	out := make([]SessionResponse, 0, len(rows))
	for i := range rows {
		out = append(out, NewSessionResponse(&rows[i]))
	}
	return out
}
