package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolhub_backend/internals/features/academics/results/controller"
)

// ResultUserRoutes mounts the gated results view under /api/u.
func ResultUserRoutes(r fiber.Router, db *gorm.DB) {
	ctl := controller.NewTermResultController(db)
	r.Get("/results", ctl.MyResults)
}

func ResultAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := controller.NewTermResultController(db)

	results := r.Group("/results")
	results.Get("/", ctl.List)
	results.Post("/", ctl.Create)
}
