package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolhub_backend/internals/features/academics/academic_years/dto"
	"schoolhub_backend/internals/features/academics/academic_years/model"
	helper "schoolhub_backend/internals/helpers"
)

type AcademicYearController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewAcademicYearController(db *gorm.DB) *AcademicYearController {
	return &AcademicYearController{DB: db, Validate: validator.New()}
}

// List (GET /academic-years)
func (ctl *AcademicYearController) List(c *fiber.Ctx) error {
	q := ctl.DB.Model(&model.AcademicYear{})

	if v := c.Query("active"); v != "" {
		q = q.Where("academic_year_is_active = ?", strings.EqualFold(v, "true"))
	}

	var list []model.AcademicYear
	if err := q.Order("academic_year_name DESC").Find(&list).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "ok", dto.ToAcademicYearResponses(list))
}

// Create (POST /academic-years)
func (ctl *AcademicYearController) Create(c *fiber.Ctx) error {
	var in dto.AcademicYearCreateDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}
	if err := ctl.Validate.Struct(in); err != nil {
		return helper.ValidationError(c, err)
	}

	m := dto.AcademicYearCreateDTOToModel(in)
	if err := ctl.DB.Create(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return helper.JsonError(c, fiber.StatusConflict, "academic year already exists")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonCreated(c, "created", dto.ToAcademicYearResponse(m))
}

// Update (PUT /academic-years/:id)
func (ctl *AcademicYearController) Update(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}
	var in dto.AcademicYearUpdateDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}
	if err := ctl.Validate.Struct(in); err != nil {
		return helper.ValidationError(c, err)
	}

	var m model.AcademicYear
	if err := ctl.DB.First(&m, "academic_year_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "academic year not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	dto.ApplyAcademicYearUpdate(&m, in)
	if err := ctl.DB.Save(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonUpdated(c, "updated", dto.ToAcademicYearResponse(m))
}

// Delete (DELETE /academic-years/:id): soft delete
func (ctl *AcademicYearController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}
	var m model.AcademicYear
	if err := ctl.DB.First(&m, "academic_year_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "academic year not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if err := ctl.DB.Delete(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonDeleted(c, "deleted", dto.ToAcademicYearResponse(m))
}
