package controller

import (
	"errors"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"schoolhub_backend/internals/configs"
	feemodel "schoolhub_backend/internals/features/finance/fees/model"
	feeservice "schoolhub_backend/internals/features/finance/fees/service"
	"schoolhub_backend/internals/features/finance/payments/dto"
	"schoolhub_backend/internals/features/finance/payments/model"
	"schoolhub_backend/internals/features/finance/payments/service"
	helper "schoolhub_backend/internals/helpers"
)

type PaymentWebhookController struct {
	DB *gorm.DB
}

func NewPaymentWebhookController(db *gorm.DB) *PaymentWebhookController {
	return &PaymentWebhookController{DB: db}
}

// HandleNotification (POST /api/public/payments/notification): midtrans
// server-to-server callback. Always answers 200 once the notification is
// understood, otherwise the gateway keeps retrying a request we already
// rejected for a permanent reason.
func (ctl *PaymentWebhookController) HandleNotification(c *fiber.Ctx) error {
	var in dto.GatewayNotificationDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}
	if in.OrderID == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "order_id is required")
	}

	if !service.VerifySignature(in.OrderID, in.StatusCode, in.GrossAmount, configs.MidtransServerKey, in.SignatureKey) {
		log.Printf("[ERROR] webhook %s: signature mismatch", in.OrderID)
		return helper.JsonError(c, fiber.StatusForbidden, "invalid signature")
	}

	var payment model.Payment
	if err := ctl.DB.First(&payment, "payment_order_id = ?", in.OrderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "unknown order id")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	now := time.Now()
	next, ts := service.MapGatewayStatus(payment.PaymentStatus, in.TransactionStatus, in.FraudStatus, now)
	if next == payment.PaymentStatus {
		// duplicate delivery, nothing to do
		return helper.JsonOK(c, "ok", fiber.Map{"payment_status": payment.PaymentStatus})
	}

	if next != model.PaymentStatusPaid {
		payment.PaymentStatus = next
		payment.PaymentCanceledAt = ts.CanceledAt
		payment.PaymentFailedAt = ts.FailedAt
		if err := ctl.DB.Save(&payment).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
		}
		log.Printf("[INFO] webhook %s: payment %s -> %s", in.OrderID, payment.PaymentID, next)
		return helper.JsonOK(c, "ok", fiber.Map{"payment_status": next})
	}

	// Settlement: write the ledger row and settle the payment together.
	// The balance is re-checked inside the transaction because the
	// checkout-time validation may be stale by the time the gateway calls.
	ledgerErr := ctl.DB.Transaction(func(tx *gorm.DB) error {
		// The gateway retries deliveries and two can overlap. Re-read the
		// Payment under lock; only the first delivery writes the ledger.
		var locked model.Payment
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&locked, "payment_id = ?", payment.PaymentID).Error; err != nil {
			return err
		}
		if locked.IsPaid() {
			return service.ErrAlreadySettled
		}

		// Serialize balance computation per (student, year, term): a row
		// lock on existing ledger rows cannot block a concurrent INSERT
		// for a different order against the same balance.
		if err := tx.Exec("SELECT pg_advisory_xact_lock(hashtext(?))",
			service.TupleLockKey(payment.PaymentStudentID, payment.PaymentAcademicYearID, payment.PaymentTerm)).Error; err != nil {
			return err
		}

		var txns []feemodel.FeeTransaction
		if err := tx.
			Where("fee_transaction_student_id = ? AND fee_transaction_academic_year_id = ?",
				payment.PaymentStudentID, payment.PaymentAcademicYearID).
			Find(&txns).Error; err != nil {
			return err
		}

		var fs feemodel.FeeStructure
		if err := tx.First(&fs, "fee_structure_id = ?", payment.PaymentFeeStructureID).Error; err != nil {
			return err
		}

		balance := feeservice.ComputeBalance(fs.FeeStructureAmount, true, txns, payment.PaymentTerm, payment.PaymentAcademicYearID)
		if err := feeservice.ValidatePayment(balance, payment.PaymentAmount); err != nil {
			return err
		}

		cumulative := balance.AlreadyPaid + payment.PaymentAmount
		status := feeservice.DeriveStatus(cumulative, fs.FeeStructureAmount, nil, now)

		ledger := feemodel.FeeTransaction{
			FeeTransactionStudentID:      payment.PaymentStudentID,
			FeeTransactionAcademicYearID: payment.PaymentAcademicYearID,
			FeeTransactionTerm:           payment.PaymentTerm,
			FeeTransactionFeeStructureID: payment.PaymentFeeStructureID,
			FeeTransactionAmountPaid:     payment.PaymentAmount,
			FeeTransactionTotalAmount:    fs.FeeStructureAmount,
			FeeTransactionStatus:         status,
			FeeTransactionPaymentDate:    &now,
			FeeTransactionPaymentMethod:  "gateway",
			FeeTransactionGatewayOrderID: payment.PaymentOrderID,
		}
		if err := tx.Create(&ledger).Error; err != nil {
			return err
		}

		payment.PaymentStatus = model.PaymentStatusPaid
		payment.PaymentPaidAt = ts.PaidAt
		return tx.Save(&payment).Error
	})

	if errors.Is(ledgerErr, service.ErrAlreadySettled) {
		// duplicate delivery that raced past the status check above
		return helper.JsonOK(c, "ok", fiber.Map{"payment_status": model.PaymentStatusPaid})
	}
	if ledgerErr != nil {
		// Money moved but the ledger write failed. The payment is kept as
		// paid with a ledger_error flag so the summary endpoint can tell
		// the student, and an administrator resolves it by hand.
		log.Printf("[RECON] webhook %s: payment settled but ledger write failed: %v", in.OrderID, ledgerErr)
		payment.PaymentStatus = model.PaymentStatusPaid
		payment.PaymentPaidAt = ts.PaidAt
		if payment.PaymentMeta == nil {
			payment.PaymentMeta = datatypes.JSONMap{}
		}
		payment.PaymentMeta["ledger_error"] = true
		payment.PaymentMeta["ledger_error_detail"] = ledgerErr.Error()
		if err := ctl.DB.Save(&payment).Error; err != nil {
			log.Printf("[RECON] webhook %s: flagging ledger error failed too: %v", in.OrderID, err)
			return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
		}
		return helper.JsonOK(c, "ok", fiber.Map{"payment_status": model.PaymentStatusPaid, "ledger_error": true})
	}

	log.Printf("[INFO] webhook %s: payment %s settled", in.OrderID, payment.PaymentID)
	return helper.JsonOK(c, "ok", fiber.Map{"payment_status": model.PaymentStatusPaid})
}
