// file: internals/features/school/scheduling/model/class_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ClassStatus string

const (
	ClassStatusDraft    ClassStatus = "DRAFT"
	ClassStatusWaiting  ClassStatus = "WAITING"
	ClassStatusPending  ClassStatus = "PENDING"
	ClassStatusApproved ClassStatus = "APPROVED"
	ClassStatusActive   ClassStatus = "ACTIVE"
	ClassStatusOnGoing  ClassStatus = "ON_GOING"
	ClassStatusClose    ClassStatus = "CLOSE"
	ClassStatusCancel   ClassStatus = "CANCEL"
)

// IsTerminal: CLOSE/CANCEL tidak punya transisi keluar
func (s ClassStatus) IsTerminal() bool {
	return s == ClassStatusClose || s == ClassStatusCancel
}

type ClassModel struct {
	// PK
	ClassID uuid.UUID `gorm:"column:class_id;type:uuid;default:gen_random_uuid();primaryKey" json:"class_id"`

	ClassName string  `gorm:"column:class_name;type:varchar(150);not null" json:"class_name"`
	ClassSlug *string `gorm:"column:class_slug;type:varchar(160);uniqueIndex" json:"class_slug,omitempty"`

	// Rencana sesi (CHECK >= 0 dipasang saat migrasi)
	ClassPlannedSessionCount int        `gorm:"column:class_planned_session_count;not null;default:0" json:"class_planned_session_count"`
	ClassPlannedStartDate    *time.Time `gorm:"column:class_planned_start_date;type:date" json:"class_planned_start_date,omitempty"`
	ClassPlannedEndDate      *time.Time `gorm:"column:class_planned_end_date;type:date" json:"class_planned_end_date,omitempty"`

	// Pengajar default (nullable: kelas bisa dibuat sebelum pengajar ditetapkan)
	ClassInstructorID *uuid.UUID `gorm:"column:class_instructor_id;type:uuid;index" json:"class_instructor_id,omitempty"`

	ClassStatus ClassStatus `gorm:"column:class_status;type:varchar(20);not null;default:'DRAFT'" json:"class_status"`

	// Audit
	ClassCreatedAt time.Time      `gorm:"column:class_created_at;type:timestamptz;not null;autoCreateTime" json:"class_created_at"`
	ClassUpdatedAt time.Time      `gorm:"column:class_updated_at;type:timestamptz;not null;autoUpdateTime" json:"class_updated_at"`
	ClassDeletedAt gorm.DeletedAt `gorm:"column:class_deleted_at;index" json:"class_deleted_at,omitempty"`
}

func (ClassModel) TableName() string { return "classes" }
