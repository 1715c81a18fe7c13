// file: internals/features/school/scheduling/model/class_session_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ClassSessionModel: satu pertemuan konkret sebuah kelas.
//
// Sesi tidak pernah dihapus oleh engine ini. Reschedule = disable baris lama +
// insert baris baru dengan supersedes_id menunjuk pendahulunya (audit trail
// sebagai relasi eksplisit, bukan mutasi in-place).
//
// Invariant slot aktif: index unik parsial
// (instructor_id, date, time_slot_id) WHERE NOT disabled — lihat MigrateScheduling.
type ClassSessionModel struct {
	// PK
	ClassSessionID uuid.UUID `gorm:"column:class_session_id;type:uuid;default:gen_random_uuid();primaryKey" json:"class_session_id"`

	ClassSessionClassID      uuid.UUID `gorm:"column:class_session_class_id;type:uuid;not null;index" json:"class_session_class_id"`
	ClassSessionTimeSlotID   uuid.UUID `gorm:"column:class_session_time_slot_id;type:uuid;not null" json:"class_session_time_slot_id"`
	ClassSessionInstructorID uuid.UUID `gorm:"column:class_session_instructor_id;type:uuid;not null" json:"class_session_instructor_id"`

	// Tanggal pertemuan (midnight UTC, granularitas hari)
	ClassSessionDate time.Time `gorm:"column:class_session_date;type:date;not null" json:"class_session_date"`

	ClassSessionTitle       string  `gorm:"column:class_session_title;type:varchar(200);not null" json:"class_session_title"`
	ClassSessionDescription *string `gorm:"column:class_session_description;type:text" json:"class_session_description,omitempty"`

	// Tombstone; baris disabled dipertahankan selamanya
	ClassSessionDisabled bool `gorm:"column:class_session_disabled;not null;default:false" json:"class_session_disabled"`

	// Link reschedule + snapshot jadwal lama (diisi saat reschedule)
	ClassSessionSupersedesID       *uuid.UUID        `gorm:"column:class_session_supersedes_id;type:uuid;index" json:"class_session_supersedes_id,omitempty"`
	ClassSessionRescheduleSnapshot datatypes.JSONMap `gorm:"column:class_session_reschedule_snapshot;type:jsonb" json:"class_session_reschedule_snapshot,omitempty"`

	// Audit
	ClassSessionCreatedAt time.Time      `gorm:"column:class_session_created_at;type:timestamptz;not null;autoCreateTime" json:"class_session_created_at"`
	ClassSessionUpdatedAt time.Time      `gorm:"column:class_session_updated_at;type:timestamptz;not null;autoUpdateTime" json:"class_session_updated_at"`
	ClassSessionDeletedAt gorm.DeletedAt `gorm:"column:class_session_deleted_at;index" json:"class_session_deleted_at,omitempty"`
}

func (ClassSessionModel) TableName() string { return "class_sessions" }
