package database

import (
	"fmt"
	"log"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"kursusku_backend/internals/configs"
	schedModel "kursusku_backend/internals/features/school/scheduling/model"
)

var DB *gorm.DB

func ConnectDB() {
	log.Println("🔌 Koneksi ke PostgreSQL...")

	// ✅ Gunakan URL/DSN lengkap + statement_timeout
	// Catatan: kalau pakai PgBouncer, ganti host/port ke port PgBouncer dan biarkan PreferSimpleProtocol=true
	sslmode := getenv("DB_SSLMODE", "require")
	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&application_name=kursusku&options=-c statement_timeout=3000",
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_HOST"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_NAME"),
		sslmode,
	)

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  dsn,
		PreferSimpleProtocol: true, // 👍 cocok untuk PgBouncer (transaction pooling)
	}), &gorm.Config{
		Logger: configs.NewGormLogger(),
	})
	if err != nil {
		log.Fatalf("❌ Gagal konek DB: %v", err)
	}
	DB = db
	log.Println("✅ DB connected.")
}

func TunePool() {
	sqlDB, err := DB.DB()
	if err != nil {
		log.Printf("pool tune err: %v", err)
		return
	}
	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxIdleTime(60 * time.Second)
	sqlDB.SetConnMaxLifetime(10 * time.Minute)
}

// MigrateScheduling menyiapkan tabel inti scheduling + index unik parsial.
// Index parsial di bawah yang menjadi serialisasi final untuk slot
// (instructor, date, time_slot): dua create bersamaan → satu kalah dengan 23505.
func MigrateScheduling() error {
	if err := DB.AutoMigrate(
		&schedModel.ClassModel{},
		&schedModel.TimeSlotModel{},
		&schedModel.ClassSessionModel{},
		&schedModel.EnrollmentModel{},
		&schedModel.LeaveRecordModel{},
	); err != nil {
		return err
	}

	stmts := []string{
		`CREATE UNIQUE INDEX IF NOT EXISTS uq_class_sessions_active_slot
		   ON class_sessions (class_session_instructor_id, class_session_date, class_session_time_slot_id)
		   WHERE class_session_disabled = FALSE AND class_session_deleted_at IS NULL`,
		`CREATE INDEX IF NOT EXISTS idx_class_sessions_class
		   ON class_sessions (class_session_class_id)
		   WHERE class_session_deleted_at IS NULL`,
		`CREATE INDEX IF NOT EXISTS idx_class_enrollments_learner
		   ON class_enrollments (class_enrollment_learner_id)
		   WHERE class_enrollment_deleted_at IS NULL`,
		`CREATE INDEX IF NOT EXISTS idx_instructor_leaves_instructor_date
		   ON instructor_leaves (instructor_leave_instructor_id, instructor_leave_date)
		   WHERE instructor_leave_deleted_at IS NULL`,
		`ALTER TABLE classes DROP CONSTRAINT IF EXISTS ck_classes_planned_count`,
		`ALTER TABLE classes ADD CONSTRAINT ck_classes_planned_count
		   CHECK (class_planned_session_count >= 0)`,
	}
	for _, s := range stmts {
		if err := DB.Exec(s).Error; err != nil {
			return err
		}
	}
	return nil
}

func WarmUpQueries() {
	// jalankan ringan supaya koneksi/pool terisi & siap
	go func() {
		time.Sleep(500 * time.Millisecond)
		if err := ping(); err != nil {
			log.Printf("warm-up ping err: %v", err)
		}
	}()
}

func ping() error {
	sqlDB, err := DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
