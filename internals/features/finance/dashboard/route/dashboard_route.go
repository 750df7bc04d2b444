package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolhub_backend/internals/features/finance/dashboard/controller"
)

// DashboardAdminRoutes mounts finance reporting under /api/a.
func DashboardAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := controller.NewDashboardController(db)
	r.Get("/dashboard/finance", ctl.Finance)
}
