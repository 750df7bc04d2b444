package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	yearRoute "schoolhub_backend/internals/features/academics/academic_years/route"
	resultRoute "schoolhub_backend/internals/features/academics/results/route"
	studentRoute "schoolhub_backend/internals/features/academics/students/route"
)

func AcademicUserRoutes(r fiber.Router, db *gorm.DB) {
	yearRoute.AcademicYearUserRoutes(r, db)
	studentRoute.StudentUserRoutes(r, db)
	resultRoute.ResultUserRoutes(r, db)
}

func AcademicAdminRoutes(r fiber.Router, db *gorm.DB) {
	yearRoute.AcademicYearAdminRoutes(r, db)
	studentRoute.StudentAdminRoutes(r, db)
	resultRoute.ResultAdminRoutes(r, db)
}
