// file: internals/features/school/scheduling/controller/session_controller.go
package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	helper "kursusku_backend/internals/helpers"
	middleware "kursusku_backend/internals/middlewares/auth"

	"kursusku_backend/internals/features/school/scheduling/dto"
)

// POST /scheduling/sessions
func (ctl *SchedulingController) CreateSession(c *fiber.Ctx) error {
	var req dto.CreateSessionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body tidak valid")
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	in, err := req.ToInput()
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	row, conflict, err := ctl.Lifecycle.Create(c.UserContext(), in, middleware.IsPrivileged(c))
	if err != nil {
		return writeServiceError(c, err)
	}
	if conflict != nil {
		return helper.JsonConflict(c, "Slot bentrok, sesi tidak dibuat", conflict)
	}
	return helper.JsonCreated(c, "Sesi berhasil dibuat", dto.NewSessionResponse(row))
}

// POST /scheduling/sessions/:id/reschedule
func (ctl *SchedulingController) RescheduleSession(c *fiber.Ctx) error {
	sessionID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID sesi bukan UUID valid")
	}

	var req dto.RescheduleSessionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body tidak valid")
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	newDate, err := dto.ParseDate(req.NewDate)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	newSlotID, err := uuid.Parse(req.NewTimeSlotID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "new_time_slot_id bukan UUID valid")
	}

	row, conflict, err := ctl.Lifecycle.Reschedule(c.UserContext(), sessionID, newDate, newSlotID, middleware.IsPrivileged(c))
	if err != nil {
		return writeServiceError(c, err)
	}
	if conflict != nil {
		return helper.JsonConflict(c, "Slot tujuan bentrok, sesi tidak dijadwal ulang", conflict)
	}
	return helper.JsonCreated(c, "Sesi berhasil dijadwal ulang", dto.NewSessionResponse(row))
}

// GET /scheduling/classes/:class_id/sessions
// include_disabled=true ikut menampilkan tombstone reschedule (jejak audit).
func (ctl *SchedulingController) ListClassSessions(c *fiber.Ctx) error {
	classID, err := uuid.Parse(c.Params("class_id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID kelas bukan UUID valid")
	}
	includeDisabled := c.QueryBool("include_disabled", false)

	rows, err := ctl.Repo.Session.ListByClass(c.UserContext(), classID, includeDisabled)
	if err != nil {
		return writePGError(c, err)
	}
	return helper.JsonOK(c, "Daftar sesi berhasil diambil", dto.NewSessionResponses(rows))
}
