package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolhub_backend/internals/features/finance/fees/controller"
)

// FeeUserRoutes mounts the student-facing fee endpoints under /api/u.
func FeeUserRoutes(r fiber.Router, db *gorm.DB) {
	structureCtl := controller.NewFeeStructureController(db)
	txnCtl := controller.NewFeeTransactionController(db)

	fees := r.Group("/fees")
	fees.Get("/structures", structureCtl.List)
	fees.Get("/transactions", txnCtl.MyTransactions)
	fees.Get("/summary", txnCtl.Summary)
}
