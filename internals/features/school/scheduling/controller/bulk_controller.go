// file: internals/features/school/scheduling/controller/bulk_controller.go
package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	helper "kursusku_backend/internals/helpers"
	middleware "kursusku_backend/internals/middlewares/auth"

	"kursusku_backend/internals/features/school/scheduling/dto"
)

// POST /scheduling/classes/:class_id/sessions/bulk
// Selalu 200 dengan kedua daftar selama batch-nya sendiri jalan;
// batch yang bentrok seluruhnya bukan error.
func (ctl *SchedulingController) ProvisionSessions(c *fiber.Ctx) error {
	classID, err := uuid.Parse(c.Params("class_id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID kelas bukan UUID valid")
	}

	var req dto.BulkProvisionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body tidak valid")
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	res, err := ctl.Bulk.ProvisionMany(c.UserContext(), classID, req.ToCandidates(), middleware.IsPrivileged(c))
	if err != nil {
		return writeServiceError(c, err)
	}
	return helper.JsonOK(c, "Batch selesai diproses", dto.NewBulkProvisionResponse(res))
}

// GET /scheduling/classes/:class_id/learner-conflicts?date=...&time_slot_id=...
func (ctl *SchedulingController) CheckLearnerConflicts(c *fiber.Ctx) error {
	classID, err := uuid.Parse(c.Params("class_id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID kelas bukan UUID valid")
	}
	date, err := dto.ParseDate(c.Query("date"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	timeSlotID, err := uuid.Parse(c.Query("time_slot_id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "time_slot_id bukan UUID valid")
	}

	learners, err := ctl.Repo.Enrollment.ListLearnerIDsByClass(c.UserContext(), classID)
	if err != nil {
		return writePGError(c, err)
	}
	conflicting, err := ctl.Detector.FindLearnerConflicts(c.UserContext(), learners, date, timeSlotID, nil)
	if err != nil {
		return writePGError(c, err)
	}
	if conflicting == nil {
		conflicting = []uuid.UUID{}
	}
	return helper.JsonOK(c, "Pemeriksaan bentrok learner selesai", dto.LearnerConflictsResponse{
		HasConflicts: len(conflicting) > 0,
		Conflicts:    conflicting,
	})
}

// POST /scheduling/classes/:class_id/makeup-plan
func (ctl *SchedulingController) PlanMakeup(c *fiber.Ctx) error {
	classID, err := uuid.Parse(c.Params("class_id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID kelas bukan UUID valid")
	}

	suggestions, err := ctl.Makeup.PlanMakeup(c.UserContext(), classID)
	if err != nil {
		return writeServiceError(c, err)
	}
	return helper.JsonOK(c, "Rencana sesi pengganti berhasil dihitung", dto.NewMakeupSuggestionResponses(suggestions))
}
