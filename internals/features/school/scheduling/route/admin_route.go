// file: internals/features/school/scheduling/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"kursusku_backend/internals/middlewares"

	schedulingctl "kursusku_backend/internals/features/school/scheduling/controller"
)

// SchedulingAdminRoutes: seluruh operasi mutasi + baca, untuk grup admin.
func SchedulingAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := schedulingctl.NewSchedulingController(db)
	g := r.Group("/scheduling")

	// Pencarian slot
	g.Get("/slots", ctl.FindSlots)
	g.Get("/slots/edit", ctl.FindSlotsForEdit)

	// Siklus hidup sesi
	g.Post("/sessions", ctl.CreateSession)
	g.Post("/sessions/:id/reschedule", ctl.RescheduleSession)
	g.Get("/classes/:class_id/sessions", ctl.ListClassSessions)

	// Batch punya limiter sendiri, lebih ketat dari limiter global
	g.Post("/classes/:class_id/sessions/bulk", middlewares.BulkRateLimiter(), ctl.ProvisionSessions)

	g.Get("/classes/:class_id/learner-conflicts", ctl.CheckLearnerConflicts)
	g.Post("/classes/:class_id/makeup-plan", ctl.PlanMakeup)
	g.Post("/classes/:class_id/status", ctl.ChangeClassStatus)

	// Data penunjang engine
	g.Post("/time-slots", ctl.CreateTimeSlot)
	g.Get("/time-slots", ctl.ListTimeSlots)
	g.Post("/leaves", ctl.CreateLeave)
	g.Get("/instructors/:instructor_id/leaves", ctl.ListInstructorLeaves)
}
