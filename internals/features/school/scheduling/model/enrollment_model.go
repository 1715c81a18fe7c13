// file: internals/features/school/scheduling/model/enrollment_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// EnrollmentModel: peserta terdaftar pada sebuah kelas; dipakai menurunkan
// himpunan learner yang jadwalnya harus dicek saat create/reschedule sesi.
type EnrollmentModel struct {
	// PK
	ClassEnrollmentID uuid.UUID `gorm:"column:class_enrollment_id;type:uuid;default:gen_random_uuid();primaryKey" json:"class_enrollment_id"`

	ClassEnrollmentClassID   uuid.UUID `gorm:"column:class_enrollment_class_id;type:uuid;not null;index" json:"class_enrollment_class_id"`
	ClassEnrollmentLearnerID uuid.UUID `gorm:"column:class_enrollment_learner_id;type:uuid;not null" json:"class_enrollment_learner_id"`

	// Audit
	ClassEnrollmentCreatedAt time.Time      `gorm:"column:class_enrollment_created_at;type:timestamptz;not null;autoCreateTime" json:"class_enrollment_created_at"`
	ClassEnrollmentDeletedAt gorm.DeletedAt `gorm:"column:class_enrollment_deleted_at;index" json:"class_enrollment_deleted_at,omitempty"`
}

func (EnrollmentModel) TableName() string { return "class_enrollments" }
