package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolhub_backend/internals/features/academics/academic_years/controller"
	authMiddleware "schoolhub_backend/internals/middlewares/auth"
)

// AcademicYearUserRoutes exposes the year list so clients can resolve
// year ids once and use them everywhere.
func AcademicYearUserRoutes(r fiber.Router, db *gorm.DB) {
	ctl := controller.NewAcademicYearController(db)
	r.Get("/academic-years", ctl.List)
}

func AcademicYearAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := controller.NewAcademicYearController(db)

	years := r.Group("/academic-years")
	years.Get("/", ctl.List)
	years.Post("/", authMiddleware.RequireManagement(), ctl.Create)
	years.Put("/:id", authMiddleware.RequireManagement(), ctl.Update)
	years.Delete("/:id", authMiddleware.RequireManagement(), ctl.Delete)
}
