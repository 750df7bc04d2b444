package controller

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	studentmodel "schoolhub_backend/internals/features/academics/students/model"
	feemodel "schoolhub_backend/internals/features/finance/fees/model"
	feeservice "schoolhub_backend/internals/features/finance/fees/service"
	helper "schoolhub_backend/internals/helpers"
)

type DashboardController struct {
	DB *gorm.DB
}

func NewDashboardController(db *gorm.DB) *DashboardController {
	return &DashboardController{DB: db}
}

type financeSummary struct {
	AcademicYearID uuid.UUID `json:"academic_year_id"`
	ExpectedTotal  int       `json:"expected_total"`
	CollectedTotal int       `json:"collected_total"`
	PendingTotal   int       `json:"pending_total"`
	OverdueTotal   int       `json:"overdue_total"`
	StudentCount   int       `json:"student_count"`
	UnbilledCount  int       `json:"unbilled_count"`
}

// Finance (GET /dashboard/finance?academic_year_id=...): collected, pending
// and overdue totals for one academic year. Overdue is the sum of unpaid
// balances on terms whose due date has passed, not an estimate.
func (ctl *DashboardController) Finance(c *fiber.Ctx) error {
	yearID, err := helper.ParseUUIDQuery(c, "academic_year_id")
	if err != nil || yearID == uuid.Nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "academic_year_id is required")
	}

	var students []studentmodel.StudentProfile
	if err := ctl.DB.Find(&students, "student_profile_academic_year_id = ?", yearID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	var structures []feemodel.FeeStructure
	if err := ctl.DB.
		Where("fee_structure_academic_year_id = ? AND fee_structure_fee_type = ?", yearID, feemodel.FeeTypeTuition).
		Find(&structures).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	var txns []feemodel.FeeTransaction
	if err := ctl.DB.Find(&txns, "fee_transaction_academic_year_id = ?", yearID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	out := financeSummary{AcademicYearID: yearID, StudentCount: len(students)}

	// Expected income: per student with a resolvable grade and a known
	// structure, the full fee across all terms. Students whose fee cannot
	// be determined are counted, not guessed at.
	for i := range students {
		grade, ok := feeservice.ResolveGrade(students[i].StudentProfileCurrentClass)
		if !ok {
			out.UnbilledCount++
			continue
		}
		fs, err := feeservice.LookupFeeStructure(structures, grade, feemodel.FeeTypeTuition, yearID)
		if err != nil {
			out.UnbilledCount++
			continue
		}
		out.ExpectedTotal += fs.FeeStructureAmount * feemodel.TermsPerYear
	}

	now := time.Now()
	type tuple struct {
		student uuid.UUID
		term    feemodel.Term
	}
	paidByTuple := map[tuple]int{}
	totalByTuple := map[tuple]int{}
	dueByTuple := map[tuple]*time.Time{}
	for i := range txns {
		k := tuple{txns[i].FeeTransactionStudentID, txns[i].FeeTransactionTerm}
		out.CollectedTotal += txns[i].FeeTransactionAmountPaid
		paidByTuple[k] += txns[i].FeeTransactionAmountPaid
		totalByTuple[k] = txns[i].FeeTransactionTotalAmount
		if txns[i].FeeTransactionDueDate != nil {
			dueByTuple[k] = txns[i].FeeTransactionDueDate
		}
	}
	for k, paid := range paidByTuple {
		remaining := totalByTuple[k] - paid
		if remaining <= 0 {
			continue
		}
		if due := dueByTuple[k]; due != nil && due.Before(now) {
			out.OverdueTotal += remaining
		}
	}

	out.PendingTotal = out.ExpectedTotal - out.CollectedTotal
	if out.PendingTotal < 0 {
		out.PendingTotal = 0
	}

	return helper.JsonOK(c, "ok", out)
}
