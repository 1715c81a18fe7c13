// file: internals/features/school/scheduling/controller/slot_search_controller.go
package controller

import (
	"github.com/gofiber/fiber/v2"

	helper "kursusku_backend/internals/helpers"

	"kursusku_backend/internals/features/school/scheduling/dto"
)

// GET /scheduling/slots
func (ctl *SchedulingController) FindSlots(c *fiber.Ctx) error {
	return ctl.findSlots(c, false)
}

// GET /scheduling/slots/edit
// Jalur edit: bentrok cuti disupresi, lihat SlotQuery.EditMode.
func (ctl *SchedulingController) FindSlotsForEdit(c *fiber.Ctx) error {
	return ctl.findSlots(c, true)
}

func (ctl *SchedulingController) findSlots(c *fiber.Ctx, editMode bool) error {
	var req dto.FindSlotsRequest
	if err := c.QueryParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Query tidak valid")
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	q, err := req.ToQuery(editMode)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	slots, err := ctl.Search.FindSlots(c.UserContext(), q)
	if err != nil {
		return writeServiceError(c, err)
	}
	return helper.JsonOK(c, "Kandidat slot berhasil diambil", dto.NewCandidateSlotResponses(slots))
}
