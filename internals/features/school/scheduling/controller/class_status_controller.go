// file: internals/features/school/scheduling/controller/class_status_controller.go
package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	helper "kursusku_backend/internals/helpers"

	"kursusku_backend/internals/features/school/scheduling/dto"
)

// POST /scheduling/classes/:class_id/status
func (ctl *SchedulingController) ChangeClassStatus(c *fiber.Ctx) error {
	classID, err := uuid.Parse(c.Params("class_id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID kelas bukan UUID valid")
	}

	var req dto.ChangeClassStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body tidak valid")
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	cls, err := ctl.Workflow.ChangeStatus(c.UserContext(), classID, req.Status)
	if err != nil {
		return writeServiceError(c, err)
	}
	return helper.JsonUpdated(c, "Status kelas berhasil diubah", dto.NewClassResponse(cls))
}
