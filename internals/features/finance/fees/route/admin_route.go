package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolhub_backend/internals/features/finance/fees/controller"
	authMiddleware "schoolhub_backend/internals/middlewares/auth"
)

// FeeAdminRoutes mounts fee management under /api/a. The caller group
// already enforces staff roles; changing fee amounts is narrowed further
// to management.
func FeeAdminRoutes(r fiber.Router, db *gorm.DB) {
	structureCtl := controller.NewFeeStructureController(db)
	txnCtl := controller.NewFeeTransactionController(db)

	structures := r.Group("/fee-structures")
	structures.Get("/", structureCtl.List)
	structures.Post("/", authMiddleware.RequireManagement(), structureCtl.Create)
	structures.Put("/:id", authMiddleware.RequireManagement(), structureCtl.Update)
	structures.Delete("/:id", authMiddleware.RequireManagement(), structureCtl.Delete)

	txns := r.Group("/fee-transactions")
	txns.Get("/", txnCtl.List)
	txns.Post("/", txnCtl.ManualCreate)
}
