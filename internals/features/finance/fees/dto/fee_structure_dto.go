package dto

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"schoolhub_backend/internals/features/finance/fees/model"
)

////////////////////////////////////////////////////////////////////////////////
// FEE STRUCTURES: DTO
////////////////////////////////////////////////////////////////////////////////

type FeeStructureCreateDTO struct {
	FeeStructureAcademicYearID uuid.UUID     `json:"fee_structure_academic_year_id" validate:"required"`
	FeeStructureGrade          FlexibleInt   `json:"fee_structure_grade" validate:"required,min=1,max=13"`
	FeeStructureFeeType        model.FeeType `json:"fee_structure_fee_type" validate:"required,oneof=tuition examination transport hostel other"`
	FeeStructureAmount         int           `json:"fee_structure_amount" validate:"required,min=1"`
	FeeStructureDescription    *string       `json:"fee_structure_description,omitempty"`
}

// Partial update; matching-key fields stay immutable once referenced by
// transactions, only amount and description may move.
type FeeStructureUpdateDTO struct {
	FeeStructureAmount      *int    `json:"fee_structure_amount,omitempty" validate:"omitempty,min=1"`
	FeeStructureDescription *string `json:"fee_structure_description,omitempty"`
}

type FeeStructureResponse struct {
	FeeStructureID             uuid.UUID     `json:"fee_structure_id"`
	FeeStructureAcademicYearID uuid.UUID     `json:"fee_structure_academic_year_id"`
	FeeStructureGrade          int           `json:"fee_structure_grade"`
	FeeStructureFeeType        model.FeeType `json:"fee_structure_fee_type"`
	FeeStructureAmount         int           `json:"fee_structure_amount"`
	FeeStructureDescription    *string       `json:"fee_structure_description,omitempty"`
	FeeStructureCreatedAt      time.Time     `json:"fee_structure_created_at"`
	FeeStructureUpdatedAt      time.Time     `json:"fee_structure_updated_at"`
	FeeStructureDeletedAt      *time.Time    `json:"fee_structure_deleted_at,omitempty"`
}

////////////////////////////////////////////////////////////////////////////////
// MAPPERS: Model <-> DTO
////////////////////////////////////////////////////////////////////////////////

func ToFeeStructureResponse(m model.FeeStructure) FeeStructureResponse {
	return FeeStructureResponse{
		FeeStructureID:             m.FeeStructureID,
		FeeStructureAcademicYearID: m.FeeStructureAcademicYearID,
		FeeStructureGrade:          m.FeeStructureGrade,
		FeeStructureFeeType:        m.FeeStructureFeeType,
		FeeStructureAmount:         m.FeeStructureAmount,
		FeeStructureDescription:    m.FeeStructureDescription,
		FeeStructureCreatedAt:      m.FeeStructureCreatedAt,
		FeeStructureUpdatedAt:      m.FeeStructureUpdatedAt,
		FeeStructureDeletedAt:      toPtrTimeFromDeletedAt(m.FeeStructureDeletedAt),
	}
}

func ToFeeStructureResponses(list []model.FeeStructure) []FeeStructureResponse {
	out := make([]FeeStructureResponse, 0, len(list))
	for _, v := range list {
		out = append(out, ToFeeStructureResponse(v))
	}
	return out
}

func FeeStructureCreateDTOToModel(d FeeStructureCreateDTO) model.FeeStructure {
	return model.FeeStructure{
		FeeStructureAcademicYearID: d.FeeStructureAcademicYearID,
		FeeStructureGrade:          d.FeeStructureGrade.Int(),
		FeeStructureFeeType:        d.FeeStructureFeeType,
		FeeStructureAmount:         d.FeeStructureAmount,
		FeeStructureDescription:    d.FeeStructureDescription,
	}
}

func ApplyFeeStructureUpdate(m *model.FeeStructure, d FeeStructureUpdateDTO) {
	if d.FeeStructureAmount != nil {
		m.FeeStructureAmount = *d.FeeStructureAmount
	}
	if d.FeeStructureDescription != nil {
		m.FeeStructureDescription = d.FeeStructureDescription
	}
}

////////////////////////////////////////////////////////////////////////////////
// SMALL UTILS
////////////////////////////////////////////////////////////////////////////////

func toPtrTimeFromDeletedAt(d gorm.DeletedAt) *time.Time {
	if d.Valid {
		return &d.Time
	}
	return nil
}
