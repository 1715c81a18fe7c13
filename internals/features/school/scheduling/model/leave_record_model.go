// file: internals/features/school/scheduling/model/leave_record_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// LeaveRecordModel: tanggal terblokir milik pengajar.
// TimeSlotID nil = satu hari penuh terblokir.
type LeaveRecordModel struct {
	// PK
	InstructorLeaveID uuid.UUID `gorm:"column:instructor_leave_id;type:uuid;default:gen_random_uuid();primaryKey" json:"instructor_leave_id"`

	InstructorLeaveInstructorID uuid.UUID  `gorm:"column:instructor_leave_instructor_id;type:uuid;not null" json:"instructor_leave_instructor_id"`
	InstructorLeaveDate         time.Time  `gorm:"column:instructor_leave_date;type:date;not null" json:"instructor_leave_date"`
	InstructorLeaveTimeSlotID   *uuid.UUID `gorm:"column:instructor_leave_time_slot_id;type:uuid" json:"instructor_leave_time_slot_id,omitempty"`

	InstructorLeaveReason *string `gorm:"column:instructor_leave_reason;type:varchar(200)" json:"instructor_leave_reason,omitempty"`

	// Audit
	InstructorLeaveCreatedAt time.Time      `gorm:"column:instructor_leave_created_at;type:timestamptz;not null;autoCreateTime" json:"instructor_leave_created_at"`
	InstructorLeaveDeletedAt gorm.DeletedAt `gorm:"column:instructor_leave_deleted_at;index" json:"instructor_leave_deleted_at,omitempty"`
}

func (LeaveRecordModel) TableName() string { return "instructor_leaves" }
