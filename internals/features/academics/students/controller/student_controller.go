package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"schoolhub_backend/internals/features/academics/students/dto"
	"schoolhub_backend/internals/features/academics/students/model"
	helper "schoolhub_backend/internals/helpers"
)

type StudentProfileController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewStudentProfileController(db *gorm.DB) *StudentProfileController {
	return &StudentProfileController{DB: db, Validate: validator.New()}
}

// Me (GET /students/me): the caller's own profile.
func (ctl *StudentProfileController) Me(c *fiber.Ctx) error {
	userID, err := helper.GetUserUUID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	var m model.StudentProfile
	if err := ctl.DB.First(&m, "student_profile_user_id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "student profile not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "ok", dto.ToStudentProfileResponse(m))
}

// List (GET /students): staff directory with filters and paging.
func (ctl *StudentProfileController) List(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, 100)

	q := ctl.DB.Model(&model.StudentProfile{})

	if v, err := helper.ParseUUIDQuery(c, "academic_year_id"); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid academic_year_id")
	} else if v != uuid.Nil {
		q = q.Where("student_profile_academic_year_id = ?", v)
	}
	if v := c.Query("class"); v != "" {
		q = q.Where("LOWER(student_profile_current_class) = ?", strings.ToLower(v))
	}
	if v := c.Query("search"); v != "" {
		q = q.Where("student_profile_full_name ILIKE ?", "%"+v+"%")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var list []model.StudentProfile
	if err := q.
		Order("student_profile_full_name ASC").
		Limit(p.Limit).
		Offset(p.Offset).
		Find(&list).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonList(c, "ok", dto.ToStudentProfileResponses(list), helper.BuildPagination(total, p))
}

// Create (POST /students)
func (ctl *StudentProfileController) Create(c *fiber.Ctx) error {
	var in dto.StudentProfileCreateDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}
	if err := ctl.Validate.Struct(in); err != nil {
		return helper.ValidationError(c, err)
	}

	m := dto.StudentProfileCreateDTOToModel(in)
	if err := ctl.DB.Create(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonCreated(c, "created", dto.ToStudentProfileResponse(m))
}

// Update (PUT /students/:id)
func (ctl *StudentProfileController) Update(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}
	var in dto.StudentProfileUpdateDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}
	if err := ctl.Validate.Struct(in); err != nil {
		return helper.ValidationError(c, err)
	}

	var m model.StudentProfile
	if err := ctl.DB.First(&m, "student_profile_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "student profile not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	dto.ApplyStudentProfileUpdate(&m, in)
	if err := ctl.DB.Save(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonUpdated(c, "updated", dto.ToStudentProfileResponse(m))
}

// Delete (DELETE /students/:id): soft delete
func (ctl *StudentProfileController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}
	var m model.StudentProfile
	if err := ctl.DB.First(&m, "student_profile_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "student profile not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if err := ctl.DB.Delete(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonDeleted(c, "deleted", dto.ToStudentProfileResponse(m))
}
