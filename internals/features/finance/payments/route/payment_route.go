package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolhub_backend/internals/features/finance/payments/controller"
	"schoolhub_backend/internals/middlewares"
)

// PaymentUserRoutes mounts checkout and payment history under /api/u.
func PaymentUserRoutes(r fiber.Router, db *gorm.DB) {
	ctl := controller.NewPaymentController(db)

	payments := r.Group("/payments")
	payments.Post("/checkout", middlewares.CheckoutRateLimiter(), ctl.Checkout)
	payments.Get("/", ctl.MyPayments)
	payments.Get("/:id", ctl.Status)
}

// PaymentPublicRoutes mounts the gateway callback under /api/public. The
// webhook authenticates by signature, not by session.
func PaymentPublicRoutes(r fiber.Router, db *gorm.DB) {
	webhookCtl := controller.NewPaymentWebhookController(db)
	r.Post("/payments/notification", webhookCtl.HandleNotification)
}
