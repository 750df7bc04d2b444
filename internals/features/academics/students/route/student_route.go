package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolhub_backend/internals/features/academics/students/controller"
)

func StudentUserRoutes(r fiber.Router, db *gorm.DB) {
	ctl := controller.NewStudentProfileController(db)
	r.Get("/students/me", ctl.Me)
}

func StudentAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := controller.NewStudentProfileController(db)

	students := r.Group("/students")
	students.Get("/", ctl.List)
	students.Post("/", ctl.Create)
	students.Put("/:id", ctl.Update)
	students.Delete("/:id", ctl.Delete)
}
