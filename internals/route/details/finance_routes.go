package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dashboardRoute "schoolhub_backend/internals/features/finance/dashboard/route"
	feeRoute "schoolhub_backend/internals/features/finance/fees/route"
	paymentRoute "schoolhub_backend/internals/features/finance/payments/route"
)

func FinancePublicRoutes(r fiber.Router, db *gorm.DB) {
	paymentRoute.PaymentPublicRoutes(r, db)
}

func FinanceUserRoutes(r fiber.Router, db *gorm.DB) {
	feeRoute.FeeUserRoutes(r, db)
	paymentRoute.PaymentUserRoutes(r, db)
}

func FinanceAdminRoutes(r fiber.Router, db *gorm.DB) {
	feeRoute.FeeAdminRoutes(r, db)
	dashboardRoute.DashboardAdminRoutes(r, db)
}
