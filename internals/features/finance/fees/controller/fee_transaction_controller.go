package controller

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	studentmodel "schoolhub_backend/internals/features/academics/students/model"
	"schoolhub_backend/internals/features/finance/fees/dto"
	"schoolhub_backend/internals/features/finance/fees/model"
	"schoolhub_backend/internals/features/finance/fees/service"
	paymentservice "schoolhub_backend/internals/features/finance/payments/service"
	helper "schoolhub_backend/internals/helpers"
)

type FeeTransactionController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewFeeTransactionController(db *gorm.DB) *FeeTransactionController {
	return &FeeTransactionController{DB: db, Validate: validator.New()}
}

func buildTxnOrderClause(sortBy, order string) string {
	allowed := map[string]string{
		"created_at":   "fee_transaction_created_at",
		"payment_date": "fee_transaction_payment_date",
		"amount":       "fee_transaction_amount_paid",
		"status":       "fee_transaction_status",
	}
	col, ok := allowed[strings.ToLower(sortBy)]
	if !ok {
		col = allowed["created_at"]
	}
	dir := "DESC"
	if strings.EqualFold(order, "asc") {
		dir = "ASC"
	}
	return fmt.Sprintf("%s %s", col, dir)
}

// MyTransactions (GET /fees/transactions): the caller's own payment history.
// Query filters: academic_year_id, term, status, sort_by, order + paging.
func (ctl *FeeTransactionController) MyTransactions(c *fiber.Ctx) error {
	student, err := ctl.requireStudent(c)
	if err != nil {
		return err
	}
	p := helper.ResolvePaging(c, 20, 100)

	q := ctl.DB.Model(&model.FeeTransaction{}).
		Where("fee_transaction_student_id = ?", student.StudentProfileID)

	if v, err := helper.ParseUUIDQuery(c, "academic_year_id"); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid academic_year_id")
	} else if v != uuid.Nil {
		q = q.Where("fee_transaction_academic_year_id = ?", v)
	}
	if term := model.Term(c.Query("term")); term != "" {
		if !term.Valid() {
			return helper.JsonError(c, fiber.StatusBadRequest, "invalid term")
		}
		q = q.Where("fee_transaction_term = ?", term)
	}
	if v := c.Query("status"); v != "" {
		q = q.Where("fee_transaction_status = ?", v)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	var list []model.FeeTransaction
	if err := q.
		Order(buildTxnOrderClause(c.Query("sort_by"), c.Query("order"))).
		Limit(p.Limit).
		Offset(p.Offset).
		Find(&list).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonList(c, "ok", dto.ToFeeTransactionResponses(list), helper.BuildPagination(total, p))
}

// Summary (GET /fees/summary?academic_year_id=&term=): the reconciliation
// output for the caller's term: full fee (if resolvable), already paid,
// remaining, session pending, paid flag. A label without a parsable grade or
// a missing fee structure yields fee_known=false with no amounts, never a
// zero fee.
func (ctl *FeeTransactionController) Summary(c *fiber.Ctx) error {
	student, err := ctl.requireStudent(c)
	if err != nil {
		return err
	}

	yearID, err := helper.ParseUUIDQuery(c, "academic_year_id")
	if err != nil || yearID == uuid.Nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "academic_year_id is required")
	}
	term := model.Term(c.Query("term"))
	if !term.Valid() {
		return helper.JsonError(c, fiber.StatusBadRequest, "term must be first, second, or third")
	}

	summary, err := ctl.buildSummary(c, student, term, yearID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "ok", summary)
}

// buildSummary runs the pure reconciliation core over freshly loaded data.
// Shared by the summary endpoint and the checkout validation path.
func (ctl *FeeTransactionController) buildSummary(c *fiber.Ctx, student *studentmodel.StudentProfile, term model.Term, yearID uuid.UUID) (dto.FeeSummaryResponse, error) {
	var (
		gradePtr *int
		fullFee  int
		feeKnown bool
		dueDate  *time.Time
	)

	grade, ok := service.ResolveGrade(student.StudentProfileCurrentClass)
	if ok {
		gradePtr = &grade

		var structures []model.FeeStructure
		if err := ctl.DB.
			Where("fee_structure_academic_year_id = ? AND fee_structure_fee_type = ?", yearID, model.FeeTypeTuition).
			Find(&structures).Error; err != nil {
			return dto.FeeSummaryResponse{}, err
		}
		if fs, err := service.LookupFeeStructure(structures, grade, model.FeeTypeTuition, yearID); err == nil {
			fullFee = fs.FeeStructureAmount
			feeKnown = true
		}
	}

	var txns []model.FeeTransaction
	if err := ctl.DB.
		Where("fee_transaction_student_id = ? AND fee_transaction_academic_year_id = ?", student.StudentProfileID, yearID).
		Find(&txns).Error; err != nil {
		return dto.FeeSummaryResponse{}, err
	}
	for i := range txns {
		if txns[i].FeeTransactionTerm == term && txns[i].FeeTransactionDueDate != nil {
			dueDate = txns[i].FeeTransactionDueDate
			break
		}
	}

	balance := service.ComputeBalance(fullFee, feeKnown, txns, term, yearID)
	summary := dto.ToFeeSummaryResponse(balance, term, yearID, gradePtr, dueDate)
	ctl.flagUnrecordedPayments(c, student.StudentProfileID, term, yearID, &summary)
	return summary, nil
}

// flagUnrecordedPayments surfaces the reconciliation hazard: a gateway
// payment that settled but whose ledger write failed. Display only; it is
// resolved manually by an administrator, never retried here.
func (ctl *FeeTransactionController) flagUnrecordedPayments(c *fiber.Ctx, studentID uuid.UUID, term model.Term, yearID uuid.UUID, summary *dto.FeeSummaryResponse) {
	var n int64
	err := ctl.DB.Table("payments").
		Where("payment_student_id = ? AND payment_academic_year_id = ? AND payment_term = ?", studentID, yearID, term).
		Where("payment_status = 'paid'").
		Where("payment_meta ->> 'ledger_error' = 'true'").
		Where("payment_deleted_at IS NULL").
		Count(&n).Error
	if err != nil {
		// summary still useful without the flag
		return
	}
	if n > 0 {
		note := "a payment succeeded but was not recorded - contact an administrator"
		summary.UnrecordedNote = &note
	}
}

// ManualCreate (POST /fee-transactions, staff): records a cash or bank
// transfer taken at the school office. Validation mirrors the gateway path;
// status is derived server-side from the cumulative total.
func (ctl *FeeTransactionController) ManualCreate(c *fiber.Ctx) error {
	var in dto.FeeTransactionManualCreateDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}
	if err := ctl.Validate.Struct(in); err != nil {
		return helper.ValidationError(c, err)
	}

	var student studentmodel.StudentProfile
	if err := ctl.DB.First(&student, "student_profile_id = ?", in.FeeTransactionStudentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "student profile not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	grade, ok := service.ResolveGrade(student.StudentProfileCurrentClass)
	if !ok {
		return helper.JsonErrorCode(c, fiber.StatusUnprocessableEntity, "GRADE_UNRESOLVABLE",
			"grade could not be resolved from the student's class label")
	}

	var structures []model.FeeStructure
	if err := ctl.DB.
		Where("fee_structure_academic_year_id = ? AND fee_structure_fee_type = ?", in.FeeTransactionAcademicYearID, model.FeeTypeTuition).
		Find(&structures).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	fs, err := service.LookupFeeStructure(structures, grade, model.FeeTypeTuition, in.FeeTransactionAcademicYearID)
	if err != nil {
		return helper.JsonErrorCode(c, fiber.StatusUnprocessableEntity, "FEE_UNKNOWN",
			"no fee structure matches this student's grade and year")
	}

	var m model.FeeTransaction
	err = ctl.DB.Transaction(func(tx *gorm.DB) error {
		// Same serialization as the webhook: concurrent inserts against
		// one balance must queue behind the tuple lock.
		if err := tx.Exec("SELECT pg_advisory_xact_lock(hashtext(?))",
			paymentservice.TupleLockKey(student.StudentProfileID, in.FeeTransactionAcademicYearID, in.FeeTransactionTerm)).Error; err != nil {
			return err
		}

		var txns []model.FeeTransaction
		if err := tx.
			Where("fee_transaction_student_id = ? AND fee_transaction_academic_year_id = ?", student.StudentProfileID, in.FeeTransactionAcademicYearID).
			Find(&txns).Error; err != nil {
			return err
		}

		balance := service.ComputeBalance(fs.FeeStructureAmount, true, txns, in.FeeTransactionTerm, in.FeeTransactionAcademicYearID)
		if err := service.ValidatePayment(balance, in.FeeTransactionAmountPaid); err != nil {
			return err
		}

		now := time.Now()
		m = model.FeeTransaction{
			FeeTransactionStudentID:      student.StudentProfileID,
			FeeTransactionAcademicYearID: in.FeeTransactionAcademicYearID,
			FeeTransactionTerm:           in.FeeTransactionTerm,
			FeeTransactionFeeStructureID: fs.FeeStructureID,
			FeeTransactionAmountPaid:     in.FeeTransactionAmountPaid,
			FeeTransactionTotalAmount:    fs.FeeStructureAmount,
			FeeTransactionStatus: service.DeriveStatus(
				balance.AlreadyPaid+in.FeeTransactionAmountPaid, fs.FeeStructureAmount, in.FeeTransactionDueDate, now),
			FeeTransactionPaymentDate:   &now,
			FeeTransactionDueDate:       in.FeeTransactionDueDate,
			FeeTransactionPaymentMethod: in.FeeTransactionPaymentMethod,
			FeeTransactionRemarks:       in.FeeTransactionRemarks,
		}
		return tx.Create(&m).Error
	})
	if err != nil {
		return mapReconciliationError(c, err)
	}
	return helper.JsonCreated(c, "payment recorded", dto.ToFeeTransactionResponse(m))
}

// List (GET /fee-transactions, staff): all students, with filters.
func (ctl *FeeTransactionController) List(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, 100)

	q := ctl.DB.Model(&model.FeeTransaction{})
	if v, err := helper.ParseUUIDQuery(c, "student_id"); err == nil && v != uuid.Nil {
		q = q.Where("fee_transaction_student_id = ?", v)
	}
	if v, err := helper.ParseUUIDQuery(c, "academic_year_id"); err == nil && v != uuid.Nil {
		q = q.Where("fee_transaction_academic_year_id = ?", v)
	}
	if term := model.Term(c.Query("term")); term.Valid() {
		q = q.Where("fee_transaction_term = ?", term)
	}
	if v := c.Query("status"); v != "" {
		q = q.Where("fee_transaction_status = ?", v)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	var list []model.FeeTransaction
	if err := q.
		Order(buildTxnOrderClause(c.Query("sort_by"), c.Query("order"))).
		Limit(p.Limit).
		Offset(p.Offset).
		Find(&list).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonList(c, "ok", dto.ToFeeTransactionResponses(list), helper.BuildPagination(total, p))
}

func (ctl *FeeTransactionController) requireStudent(c *fiber.Ctx) (*studentmodel.StudentProfile, error) {
	userID, err := helper.GetUserUUID(c)
	if err != nil {
		return nil, helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	var student studentmodel.StudentProfile
	if err := ctl.DB.First(&student, "student_profile_user_id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, helper.JsonError(c, fiber.StatusNotFound, "student profile not found")
		}
		return nil, helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return &student, nil
}

// mapReconciliationError converts the fee service sentinels into stable API
// error codes.
func mapReconciliationError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, service.ErrFeeUnknown):
		return helper.JsonErrorCode(c, fiber.StatusUnprocessableEntity, "FEE_UNKNOWN", err.Error())
	case errors.Is(err, service.ErrTermAlreadyPaid):
		return helper.JsonErrorCode(c, fiber.StatusConflict, "TERM_ALREADY_PAID", err.Error())
	case errors.Is(err, service.ErrNonPositiveAmount):
		return helper.JsonErrorCode(c, fiber.StatusUnprocessableEntity, "AMOUNT_NOT_POSITIVE", err.Error())
	case errors.Is(err, service.ErrExceedsBalance):
		return helper.JsonErrorCode(c, fiber.StatusUnprocessableEntity, "AMOUNT_EXCEEDS_BALANCE", err.Error())
	default:
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
}
