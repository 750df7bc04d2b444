package routes

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolhub_backend/internals/constants"
	authMiddleware "schoolhub_backend/internals/middlewares/auth"
	routeDetails "schoolhub_backend/internals/route/details"
)

// SetupRoutes mounts every endpoint group.
//
//	/api/auth    login, register, session
//	/api/public  unauthenticated, gateway webhook lives here
//	/api/u       any authenticated user (students)
//	/api/a       staff and management only
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	log.Println("[INFO] Setting up AuthRoutes...")
	routeDetails.AuthRoutes(app, db)

	log.Println("[INFO] Setting up PUBLIC group...")
	public := app.Group("/api/public")

	log.Println("[INFO] Setting up PRIVATE (user) group...")
	private := app.Group("/api/u", authMiddleware.AuthMiddleware())

	log.Println("[INFO] Setting up ADMIN group (Auth + RoleCheck)...")
	admin := app.Group("/api/a",
		authMiddleware.AuthMiddleware(),
		authMiddleware.RequireRoles(constants.StaffRoles...),
	)

	log.Println("[INFO] Mounting Academic routes...")
	routeDetails.AcademicUserRoutes(private, db)
	routeDetails.AcademicAdminRoutes(admin, db)

	log.Println("[INFO] Mounting Finance routes...")
	routeDetails.FinancePublicRoutes(public, db)
	routeDetails.FinanceUserRoutes(private, db)
	routeDetails.FinanceAdminRoutes(admin, db)
}
