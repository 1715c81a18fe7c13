// file: internals/features/school/scheduling/controller/time_slot_controller.go
package controller

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	helper "kursusku_backend/internals/helpers"

	"kursusku_backend/internals/features/school/scheduling/dto"
)

/* ===================== TIME SLOT ===================== */

// POST /scheduling/time-slots
func (ctl *SchedulingController) CreateTimeSlot(c *fiber.Ctx) error {
	var req dto.CreateTimeSlotRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body tidak valid")
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	row := req.ToModel()
	if err := ctl.Repo.TimeSlot.Create(c.UserContext(), row); err != nil {
		return writePGError(c, err)
	}
	return helper.JsonCreated(c, "Slot waktu berhasil dibuat", dto.NewTimeSlotResponse(row))
}

// GET /scheduling/time-slots?weekday=1
func (ctl *SchedulingController) ListTimeSlots(c *fiber.Ctx) error {
	var weekday *int
	if raw := c.Query("weekday"); raw != "" {
		wd, err := strconv.Atoi(raw)
		if err != nil || wd < 1 || wd > 7 {
			return helper.JsonError(c, fiber.StatusBadRequest, "weekday harus 1..7")
		}
		weekday = &wd
	}

	rows, err := ctl.Repo.TimeSlot.List(c.UserContext(), weekday)
	if err != nil {
		return writePGError(c, err)
	}
	return helper.JsonOK(c, "Daftar slot waktu berhasil diambil", dto.NewTimeSlotResponses(rows))
}

/* ===================== INSTRUCTOR LEAVE ===================== */

// POST /scheduling/leaves
func (ctl *SchedulingController) CreateLeave(c *fiber.Ctx) error {
	var req dto.CreateLeaveRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body tidak valid")
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	row, err := req.ToModel()
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctl.Repo.Leave.Create(c.UserContext(), row); err != nil {
		return writePGError(c, err)
	}
	return helper.JsonCreated(c, "Catatan cuti berhasil dibuat", dto.NewLeaveResponse(row))
}

// GET /scheduling/instructors/:instructor_id/leaves
func (ctl *SchedulingController) ListInstructorLeaves(c *fiber.Ctx) error {
	instructorID, err := uuid.Parse(c.Params("instructor_id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID pengajar bukan UUID valid")
	}

	rows, err := ctl.Repo.Leave.ListByInstructor(c.UserContext(), instructorID)
	if err != nil {
		return writePGError(c, err)
	}
	return helper.JsonOK(c, "Daftar cuti berhasil diambil", dto.NewLeaveResponses(rows))
}
