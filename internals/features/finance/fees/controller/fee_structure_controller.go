package controller

import (
	"errors"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"schoolhub_backend/internals/features/finance/fees/dto"
	"schoolhub_backend/internals/features/finance/fees/model"
	helper "schoolhub_backend/internals/helpers"
)

type FeeStructureController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewFeeStructureController(db *gorm.DB) *FeeStructureController {
	return &FeeStructureController{DB: db, Validate: validator.New()}
}

// List (GET /fees/structures)
// Query filters: academic_year_id, grade, fee_type + paging.
func (ctl *FeeStructureController) List(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 50, 200)

	q := ctl.DB.Model(&model.FeeStructure{})

	if v, err := helper.ParseUUIDQuery(c, "academic_year_id"); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid academic_year_id")
	} else if v != uuid.Nil {
		q = q.Where("fee_structure_academic_year_id = ?", v)
	}
	if v := c.Query("grade"); v != "" {
		grade, err := strconv.Atoi(v)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "invalid grade")
		}
		q = q.Where("fee_structure_grade = ?", grade)
	}
	if v := model.FeeType(c.Query("fee_type")); v != "" {
		if !v.Valid() {
			return helper.JsonError(c, fiber.StatusBadRequest, "invalid fee_type")
		}
		q = q.Where("fee_structure_fee_type = ?", v)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var list []model.FeeStructure
	if err := q.
		Order("fee_structure_grade ASC, fee_structure_fee_type ASC").
		Limit(p.Limit).
		Offset(p.Offset).
		Find(&list).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonList(c, "ok", dto.ToFeeStructureResponses(list), helper.BuildPagination(total, p))
}

// Create (POST /fee-structures): management only.
func (ctl *FeeStructureController) Create(c *fiber.Ctx) error {
	var in dto.FeeStructureCreateDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}
	if err := ctl.Validate.Struct(in); err != nil {
		return helper.ValidationError(c, err)
	}

	m := dto.FeeStructureCreateDTOToModel(in)
	if err := ctl.DB.Create(&m).Error; err != nil {
		if isUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict,
				"a fee structure for this grade, type, and year already exists")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonCreated(c, "created", dto.ToFeeStructureResponse(m))
}

// Update (PUT /fee-structures/:id): amount/description only; the
// matching key is immutable.
func (ctl *FeeStructureController) Update(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}
	var in dto.FeeStructureUpdateDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}
	if err := ctl.Validate.Struct(in); err != nil {
		return helper.ValidationError(c, err)
	}

	var m model.FeeStructure
	if err := ctl.DB.First(&m, "fee_structure_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "fee structure not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	dto.ApplyFeeStructureUpdate(&m, in)
	if err := ctl.DB.Save(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonUpdated(c, "updated", dto.ToFeeStructureResponse(m))
}

// Delete (DELETE /fee-structures/:id): soft delete.
func (ctl *FeeStructureController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}
	var m model.FeeStructure
	if err := ctl.DB.First(&m, "fee_structure_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "fee structure not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if err := ctl.DB.Delete(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonDeleted(c, "deleted", dto.ToFeeStructureResponse(m))
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23505"
	}
	return errors.Is(err, gorm.ErrDuplicatedKey)
}
