package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"schoolhub_backend/internals/features/academics/results/dto"
	"schoolhub_backend/internals/features/academics/results/model"
	studentmodel "schoolhub_backend/internals/features/academics/students/model"
	feemodel "schoolhub_backend/internals/features/finance/fees/model"
	feeservice "schoolhub_backend/internals/features/finance/fees/service"
	helper "schoolhub_backend/internals/helpers"
)

type TermResultController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewTermResultController(db *gorm.DB) *TermResultController {
	return &TermResultController{DB: db, Validate: validator.New()}
}

// MyResults (GET /results?academic_year_id=&term=): student view, gated on
// the term fee being fully paid. The gate is re-evaluated per request from
// the transaction list; nothing is cached.
func (ctl *TermResultController) MyResults(c *fiber.Ctx) error {
	userID, err := helper.GetUserUUID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	yearID, err := helper.ParseUUIDQuery(c, "academic_year_id")
	if err != nil || yearID == uuid.Nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "academic_year_id is required")
	}
	term := feemodel.Term(c.Query("term"))
	if !term.Valid() {
		return helper.JsonError(c, fiber.StatusBadRequest, "term must be first, second, or third")
	}

	var student studentmodel.StudentProfile
	if err := ctl.DB.First(&student, "student_profile_user_id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "student profile not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var txns []feemodel.FeeTransaction
	if err := ctl.DB.
		Where("fee_transaction_student_id = ? AND fee_transaction_academic_year_id = ?", student.StudentProfileID, yearID).
		Find(&txns).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	if !feeservice.CanViewResults(txns, term, yearID) {
		return helper.JsonErrorCode(c, fiber.StatusForbidden, "RESULTS_LOCKED",
			"results are locked until the term fee is fully paid")
	}

	var list []model.TermResult
	if err := ctl.DB.
		Where("term_result_student_id = ? AND term_result_academic_year_id = ? AND term_result_term = ?",
			student.StudentProfileID, yearID, term).
		Order("term_result_subject ASC").
		Find(&list).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "ok", dto.ToTermResultResponses(list))
}

// List (GET /results, staff): unrestricted, with filters.
func (ctl *TermResultController) List(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, 100)

	q := ctl.DB.Model(&model.TermResult{})
	if v, err := helper.ParseUUIDQuery(c, "student_id"); err == nil && v != uuid.Nil {
		q = q.Where("term_result_student_id = ?", v)
	}
	if v, err := helper.ParseUUIDQuery(c, "academic_year_id"); err == nil && v != uuid.Nil {
		q = q.Where("term_result_academic_year_id = ?", v)
	}
	if term := feemodel.Term(c.Query("term")); term.Valid() {
		q = q.Where("term_result_term = ?", term)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	var list []model.TermResult
	if err := q.
		Order("term_result_created_at DESC").
		Limit(p.Limit).
		Offset(p.Offset).
		Find(&list).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonList(c, "ok", dto.ToTermResultResponses(list), helper.BuildPagination(total, p))
}

// Create (POST /results, staff)
func (ctl *TermResultController) Create(c *fiber.Ctx) error {
	var in dto.TermResultCreateDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}
	if err := ctl.Validate.Struct(in); err != nil {
		return helper.ValidationError(c, err)
	}

	m := dto.TermResultCreateDTOToModel(in)
	if err := ctl.DB.Create(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonCreated(c, "created", dto.ToTermResultResponse(m))
}
