// file: internals/route/index.go
package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"kursusku_backend/internals/configs"
	middleware "kursusku_backend/internals/middlewares/auth"

	schedulingRoute "kursusku_backend/internals/features/school/scheduling/route"
)

// SetupRoutes: dua grup permukaan.
//   /api/a : admin/owner, seluruh operasi penjadwalan
//   /api/u : pengguna login, baca-saja
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	api := app.Group("/api")

	admin := api.Group("/a",
		middleware.AuthJWT(middleware.AuthJWTOpts{
			Secret:              configs.JWTSecret,
			AllowCookieFallback: true,
		}),
		middleware.RequireAdmin(),
	)
	schedulingRoute.SchedulingAdminRoutes(admin, db)

	user := api.Group("/u",
		middleware.AuthJWT(middleware.AuthJWTOpts{
			Secret:              configs.JWTSecret,
			AllowCookieFallback: true,
		}),
	)
	schedulingRoute.SchedulingUserRoutes(user, db)
}
