package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolhub_backend/internals/features/users/auth/controller"
	"schoolhub_backend/internals/middlewares"
	authMiddleware "schoolhub_backend/internals/middlewares/auth"
)

// AuthRoutes mounts /api/auth. Register and login are public but rate
// limited; me and logout require a valid token.
func AuthRoutes(app *fiber.App, db *gorm.DB) {
	ctl := controller.NewAuthController(db)

	grp := app.Group("/api/auth")
	grp.Post("/register", middlewares.RegisterRateLimiter(), ctl.Register)
	grp.Post("/login", middlewares.LoginRateLimiter(), ctl.Login)
	grp.Post("/google", middlewares.LoginRateLimiter(), ctl.LoginGoogle)

	grp.Post("/logout", authMiddleware.AuthMiddleware(), ctl.Logout)
	grp.Get("/me", authMiddleware.AuthMiddleware(), ctl.Me)
}
