// file: internals/features/school/scheduling/controller/controller.go
package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
	"gorm.io/gorm"

	helper "kursusku_backend/internals/helpers"

	"kursusku_backend/internals/features/school/scheduling/repository"
	"kursusku_backend/internals/features/school/scheduling/service"
)

// SchedulingController: satu controller untuk seluruh permukaan penjadwalan.
// Alur handler: guard -> parse -> validate -> service -> Json*.
type SchedulingController struct {
	DB       *gorm.DB
	Validate *validator.Validate

	Repo      *repository.Repository
	Detector  *service.ConflictDetector
	Search    *service.SlotSearchService
	Lifecycle *service.SessionLifecycleService
	Bulk      *service.BulkProvisioningService
	Makeup    *service.AutoMakeupService
	Workflow  *service.ClassStatusWorkflow
}

func NewSchedulingController(db *gorm.DB) *SchedulingController {
	repo := repository.NewRepository(db)
	detector := service.NewConflictDetector(repo.Session, repo.Leave)
	search := service.NewSlotSearchService(detector, repo.Session)
	workflow := service.NewClassStatusWorkflow(repo.Class)

	return &SchedulingController{
		DB:       db,
		Validate: validator.New(),
		Repo:     repo,
		Detector: detector,
		Search:   search,
		Lifecycle: service.NewSessionLifecycleService(
			repo.Class, repo.Session, repo.Enrollment, repo.TimeSlot, detector, workflow,
		),
		Bulk: service.NewBulkProvisioningService(
			repo.Class, repo.Session, repo.Enrollment, detector, workflow,
		),
		Makeup:   service.NewAutoMakeupService(repo.Class, repo.Session, repo.TimeSlot, search),
		Workflow: workflow,
	}
}

/* =========================================================
   Terjemahan error service -> HTTP
   ========================================================= */

func writeServiceError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, service.ErrClassNotFound),
		errors.Is(err, service.ErrSessionNotFound),
		errors.Is(err, service.ErrTimeSlotNotFound):
		return helper.JsonError(c, fiber.StatusNotFound, err.Error())

	case errors.Is(err, service.ErrValidation):
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())

	case errors.Is(err, service.ErrClassNotEditable),
		errors.Is(err, service.ErrIllegalTransition):
		return helper.JsonError(c, fiber.StatusConflict, err.Error())

	case errors.Is(err, service.ErrSessionImmutable),
		errors.Is(err, service.ErrNoTimeSlotPattern):
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}
	return writePGError(c, err)
}

// writePGError: fallback pemetaan error Postgres yang lolos sampai controller
func writePGError(c *fiber.Ctx, err error) error {
	code := pgCode(err)
	switch code {
	case "23505", "23P01":
		return helper.JsonError(c, fiber.StatusConflict, "Data bentrok dengan baris yang sudah ada")
	case "23503":
		return helper.JsonError(c, fiber.StatusBadRequest, "Referensi data tidak valid")
	case "23514":
		return helper.JsonError(c, fiber.StatusBadRequest, "Data melanggar aturan penyimpanan")
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusNotFound, "Data tidak ditemukan")
	}
	return helper.JsonError(c, fiber.StatusInternalServerError, "Terjadi kesalahan pada server")
}

func pgCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code)
	}
	return ""
}
