package dto

import (
	"time"

	"github.com/google/uuid"

	"schoolhub_backend/internals/features/academics/academic_years/model"
)

type AcademicYearCreateDTO struct {
	AcademicYearName     string `json:"academic_year_name" validate:"required,min=4,max=20"`
	AcademicYearIsActive bool   `json:"academic_year_is_active"`
}

type AcademicYearUpdateDTO struct {
	AcademicYearName     *string `json:"academic_year_name,omitempty" validate:"omitempty,min=4,max=20"`
	AcademicYearIsActive *bool   `json:"academic_year_is_active,omitempty"`
}

type AcademicYearResponse struct {
	AcademicYearID       uuid.UUID `json:"academic_year_id"`
	AcademicYearName     string    `json:"academic_year_name"`
	AcademicYearIsActive bool      `json:"academic_year_is_active"`
	AcademicYearCreatedAt time.Time `json:"academic_year_created_at"`
}

func ToAcademicYearResponse(m model.AcademicYear) AcademicYearResponse {
	return AcademicYearResponse{
		AcademicYearID:       m.AcademicYearID,
		AcademicYearName:     m.AcademicYearName,
		AcademicYearIsActive: m.AcademicYearIsActive,
		AcademicYearCreatedAt: m.AcademicYearCreatedAt,
	}
}

func ToAcademicYearResponses(list []model.AcademicYear) []AcademicYearResponse {
	out := make([]AcademicYearResponse, 0, len(list))
	for _, v := range list {
		out = append(out, ToAcademicYearResponse(v))
	}
	return out
}

func AcademicYearCreateDTOToModel(d AcademicYearCreateDTO) model.AcademicYear {
	return model.AcademicYear{
		AcademicYearName:     d.AcademicYearName,
		AcademicYearIsActive: d.AcademicYearIsActive,
	}
}

func ApplyAcademicYearUpdate(m *model.AcademicYear, d AcademicYearUpdateDTO) {
	if d.AcademicYearName != nil {
		m.AcademicYearName = *d.AcademicYearName
	}
	if d.AcademicYearIsActive != nil {
		m.AcademicYearIsActive = *d.AcademicYearIsActive
	}
}
