// file: internals/features/school/scheduling/route/user_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	schedulingctl "kursusku_backend/internals/features/school/scheduling/controller"
)

// SchedulingUserRoutes: hanya operasi baca untuk pengguna biasa.
func SchedulingUserRoutes(r fiber.Router, db *gorm.DB) {
	ctl := schedulingctl.NewSchedulingController(db)
	g := r.Group("/scheduling")

	g.Get("/slots", ctl.FindSlots)
	g.Get("/classes/:class_id/sessions", ctl.ListClassSessions)
	g.Get("/classes/:class_id/learner-conflicts", ctl.CheckLearnerConflicts)
	g.Get("/time-slots", ctl.ListTimeSlots)
}
