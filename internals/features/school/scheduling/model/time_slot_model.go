// file: internals/features/school/scheduling/model/time_slot_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TimeSlotModel: template (weekday, start, end) yang dipakai ulang lintas kelas.
// Beberapa baris boleh punya jam sama tapi weekday beda.
type TimeSlotModel struct {
	// PK
	TimeSlotID uuid.UUID `gorm:"column:time_slot_id;type:uuid;default:gen_random_uuid();primaryKey" json:"time_slot_id"`

	TimeSlotLabel string `gorm:"column:time_slot_label;type:varchar(100);not null" json:"time_slot_label"`

	// ISO: 1=Senin .. 7=Minggu
	TimeSlotWeekday int `gorm:"column:time_slot_weekday;not null" json:"time_slot_weekday"`

	// "HH:mm:ss"
	TimeSlotStartTime string `gorm:"column:time_slot_start_time;type:time;not null" json:"time_slot_start_time"`
	TimeSlotEndTime   string `gorm:"column:time_slot_end_time;type:time;not null" json:"time_slot_end_time"`

	// Audit
	TimeSlotCreatedAt time.Time      `gorm:"column:time_slot_created_at;type:timestamptz;not null;autoCreateTime" json:"time_slot_created_at"`
	TimeSlotUpdatedAt time.Time      `gorm:"column:time_slot_updated_at;type:timestamptz;not null;autoUpdateTime" json:"time_slot_updated_at"`
	TimeSlotDeletedAt gorm.DeletedAt `gorm:"column:time_slot_deleted_at;index" json:"time_slot_deleted_at,omitempty"`
}

func (TimeSlotModel) TableName() string { return "class_time_slots" }
