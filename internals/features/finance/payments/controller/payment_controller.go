package controller

import (
	"errors"
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	studentmodel "schoolhub_backend/internals/features/academics/students/model"
	feemodel "schoolhub_backend/internals/features/finance/fees/model"
	feeservice "schoolhub_backend/internals/features/finance/fees/service"
	"schoolhub_backend/internals/features/finance/payments/dto"
	"schoolhub_backend/internals/features/finance/payments/model"
	"schoolhub_backend/internals/features/finance/payments/service"
	helper "schoolhub_backend/internals/helpers"
)

type PaymentController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewPaymentController(db *gorm.DB) *PaymentController {
	return &PaymentController{DB: db, Validate: validator.New()}
}

// Checkout (POST /payments/checkout): validates the proposed amount
// against the reconciliation rules, then opens a gateway checkout. The
// ledger row is NOT written here; it is written by the webhook once the
// gateway reports success.
func (ctl *PaymentController) Checkout(c *fiber.Ctx) error {
	userID, err := helper.GetUserUUID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	var in dto.PaymentCheckoutDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}
	if err := ctl.Validate.Struct(in); err != nil {
		return helper.ValidationError(c, err)
	}

	var student studentmodel.StudentProfile
	if err := ctl.DB.First(&student, "student_profile_user_id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "student profile not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	// Reconcile: grade → fee structure → balance.
	grade, ok := feeservice.ResolveGrade(student.StudentProfileCurrentClass)
	if !ok {
		return helper.JsonErrorCode(c, fiber.StatusUnprocessableEntity, "GRADE_UNRESOLVABLE",
			"grade could not be resolved from your class label; fee is not available")
	}

	var structures []feemodel.FeeStructure
	if err := ctl.DB.
		Where("fee_structure_academic_year_id = ? AND fee_structure_fee_type = ?", in.PaymentAcademicYearID, feemodel.FeeTypeTuition).
		Find(&structures).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	fs, err := feeservice.LookupFeeStructure(structures, grade, feemodel.FeeTypeTuition, in.PaymentAcademicYearID)
	if err != nil {
		return helper.JsonErrorCode(c, fiber.StatusUnprocessableEntity, "FEE_UNKNOWN",
			"the fee for your grade and year is currently unknown; payment cannot be validated")
	}

	var txns []feemodel.FeeTransaction
	if err := ctl.DB.
		Where("fee_transaction_student_id = ? AND fee_transaction_academic_year_id = ?", student.StudentProfileID, in.PaymentAcademicYearID).
		Find(&txns).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	balance := feeservice.ComputeBalance(fs.FeeStructureAmount, true, txns, in.PaymentTerm, in.PaymentAcademicYearID)

	// Blank amount defaults to the full remaining balance.
	amount := balance.Remaining
	if in.PaymentAmount != nil {
		amount = *in.PaymentAmount
	}
	if err := feeservice.ValidatePayment(balance, amount); err != nil {
		return mapValidationError(c, err)
	}

	now := time.Now()
	orderID := service.GenOrderID("FEE")
	payment := model.Payment{
		PaymentStudentID:      student.StudentProfileID,
		PaymentUserID:         userID,
		PaymentFeeStructureID: fs.FeeStructureID,
		PaymentAcademicYearID: in.PaymentAcademicYearID,
		PaymentTerm:           in.PaymentTerm,
		PaymentAmount:         amount,
		PaymentCurrency:       "IDR",
		PaymentStatus:         model.PaymentStatusInitiated,
		PaymentProvider:       model.PaymentProviderMidtrans,
		PaymentOrderID:        &orderID,
		PaymentRequestedAt:    &now,
		PaymentMeta: datatypes.JSONMap{
			"full_fee_snapshot": fs.FeeStructureAmount,
			"grade":             grade,
		},
	}
	if err := ctl.DB.Create(&payment).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	email, _ := c.Locals("user_email").(string)
	token, redirectURL, err := service.GenerateSnapToken(service.CheckoutInput{
		OrderID:     orderID,
		Amount:      amount,
		Description: "Tuition " + string(in.PaymentTerm) + " term",
		Customer: service.CustomerInput{
			FullName: student.StudentProfileFullName,
			Email:    email,
		},
	})
	if err != nil {
		// gateway refused: close the attempt, nothing was charged
		payment.PaymentStatus = model.PaymentStatusFailed
		payment.PaymentFailedAt = &now
		if uerr := ctl.DB.Save(&payment).Error; uerr != nil {
			log.Printf("[ERROR] payment %s: mark failed after gateway error: %v", payment.PaymentID, uerr)
		}
		return helper.JsonErrorCode(c, fiber.StatusBadGateway, "GATEWAY_ERROR",
			"the payment gateway could not start the checkout; no charge was made")
	}

	payment.PaymentStatus = model.PaymentStatusPending
	payment.PaymentSnapToken = &token
	payment.PaymentCheckoutURL = &redirectURL
	if err := ctl.DB.Save(&payment).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonCreated(c, "checkout created", dto.PaymentCheckoutResponse{
		PaymentID:          payment.PaymentID,
		PaymentOrderID:     orderID,
		PaymentAmount:      amount,
		PaymentSnapToken:   token,
		PaymentCheckoutURL: redirectURL,
	})
}

// MyPayments (GET /payments): the caller's gateway payment attempts,
// including any flagged with a ledger error.
func (ctl *PaymentController) MyPayments(c *fiber.Ctx) error {
	userID, err := helper.GetUserUUID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	p := helper.ResolvePaging(c, 20, 100)

	q := ctl.DB.Model(&model.Payment{}).Where("payment_user_id = ?", userID)
	if v, err := helper.ParseUUIDQuery(c, "academic_year_id"); err == nil && v != uuid.Nil {
		q = q.Where("payment_academic_year_id = ?", v)
	}
	if v := c.Query("status"); v != "" {
		q = q.Where("payment_status = ?", v)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	var list []model.Payment
	if err := q.
		Order("payment_created_at DESC").
		Limit(p.Limit).
		Offset(p.Offset).
		Find(&list).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonList(c, "ok", dto.ToPaymentResponses(list), helper.BuildPagination(total, p))
}

// Status (GET /payments/:id) - checkout polling target. A settled payment
// whose ledger write failed answers with PAYMENT_NOT_RECORDED so the client
// can tell the user to contact an administrator instead of paying again.
func (ctl *PaymentController) Status(c *fiber.Ctx) error {
	userID, err := helper.GetUserUUID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid payment id")
	}

	var payment model.Payment
	if err := ctl.DB.First(&payment, "payment_id = ? AND payment_user_id = ?", id, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "payment not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	if payment.HasLedgerError() {
		orderID := ""
		if payment.PaymentOrderID != nil {
			orderID = *payment.PaymentOrderID
		}
		return helper.JsonErrorCode(c, fiber.StatusConflict, "PAYMENT_NOT_RECORDED",
			"payment "+orderID+" succeeded but was not recorded - contact an administrator")
	}
	return helper.JsonOK(c, "ok", dto.ToPaymentResponse(payment))
}

func mapValidationError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, feeservice.ErrFeeUnknown):
		return helper.JsonErrorCode(c, fiber.StatusUnprocessableEntity, "FEE_UNKNOWN", err.Error())
	case errors.Is(err, feeservice.ErrTermAlreadyPaid):
		return helper.JsonErrorCode(c, fiber.StatusConflict, "TERM_ALREADY_PAID", err.Error())
	case errors.Is(err, feeservice.ErrNonPositiveAmount):
		return helper.JsonErrorCode(c, fiber.StatusUnprocessableEntity, "AMOUNT_NOT_POSITIVE", err.Error())
	case errors.Is(err, feeservice.ErrExceedsBalance):
		return helper.JsonErrorCode(c, fiber.StatusUnprocessableEntity, "AMOUNT_EXCEEDS_BALANCE", err.Error())
	default:
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
}
