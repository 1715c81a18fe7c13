// file: internals/features/school/scheduling/dto/time_slot_dto.go
package dto

import (
	"github.com/google/uuid"

	"kursusku_backend/internals/features/school/scheduling/model"
)

/* ===================== TIME SLOT ===================== */

type CreateTimeSlotRequest struct {
	Label     string `json:"label" validate:"required,max=100"`
	Weekday   int    `json:"weekday" validate:"required,min=1,max=7"`
	StartTime string `json:"start_time" validate:"required,datetime=15:04:05"`
	EndTime   string `json:"end_time" validate:"required,datetime=15:04:05"`
}

func (r CreateTimeSlotRequest) ToModel() *model.TimeSlotModel {
	return &model.TimeSlotModel{
		TimeSlotLabel:     r.Label,
		TimeSlotWeekday:   r.Weekday,
		TimeSlotStartTime: r.StartTime,
		TimeSlotEndTime:   r.EndTime,
	}
}

type TimeSlotResponse struct {
	TimeSlotID uuid.UUID `json:"time_slot_id"`
	Label      string    `json:"label"`
	Weekday    int       `json:"weekday"`
	StartTime  string    `json:"start_time"`
	EndTime    string    `json:"end_time"`
}

func NewTimeSlotResponse(m *model.TimeSlotModel) TimeSlotResponse {
	return TimeSlotResponse{
		TimeSlotID: m.TimeSlotID,
		Label:      m.TimeSlotLabel,
		Weekday:    m.TimeSlotWeekday,
		StartTime:  m.TimeSlotStartTime,
		EndTime:    m.TimeSlotEndTime,
	}
}

func NewTimeSlotResponses(rows []model.TimeSlotModel) []TimeSlotResponse {
	out := make([]TimeSlotResponse, 0, len(rows))
	for i := range rows {
		out = append(out, NewTimeSlotResponse(&rows[i]))
	}
	return out
}

/* ===================== INSTRUCTOR LEAVE ===================== */

type CreateLeaveRequest struct {
	InstructorID string  `json:"instructor_id" validate:"required,uuid"`
	Date         string  `json:"date" validate:"required"`
	TimeSlotID   *string `json:"time_slot_id,omitempty"`
	Reason       *string `json:"reason,omitempty" validate:"omitempty,max=200"`
}

func (r CreateLeaveRequest) ToModel() (*model.LeaveRecordModel, error) {
	instructorID, err := uuid.Parse(r.InstructorID)
	if err != nil {
		return nil, err
	}
	date, err := ParseDate(r.Date)
	if err != nil {
		return nil, err
	}
	row := &model.LeaveRecordModel{
		InstructorLeaveInstructorID: instructorID,
		InstructorLeaveDate:         date,
		InstructorLeaveReason:       r.Reason,
	}
	if r.TimeSlotID != nil && *r.TimeSlotID != "" {
		id, err := uuid.Parse(*r.TimeSlotID)
		if err != nil {
			return nil, err
		}
		row.InstructorLeaveTimeSlotID = &id
	}
	return row, nil
}

type LeaveResponse struct {
	LeaveID      uuid.UUID  `json:"leave_id"`
	InstructorID uuid.UUID  `json:"instructor_id"`
	Date         string     `json:"date"`
	TimeSlotID   *uuid.UUID `json:"time_slot_id,omitempty"`
	Reason       *string    `json:"reason,omitempty"`
}

func NewLeaveResponse(m *model.LeaveRecordModel) LeaveResponse {
	return LeaveResponse{
		LeaveID:      m.InstructorLeaveID,
		InstructorID: m.InstructorLeaveInstructorID,
		Date:         m.InstructorLeaveDate.Format(dateLayout),
		TimeSlotID:   m.InstructorLeaveTimeSlotID,
		Reason:       m.InstructorLeaveReason,
	}
}

func NewLeaveResponses(rows []model.LeaveRecordModel) []LeaveResponse {
	out := make([]LeaveResponse, 0, len(rows))
	for i := range rows {
		out = append(out, NewLeaveResponse(&rows[i]))
	}
	return out
}
