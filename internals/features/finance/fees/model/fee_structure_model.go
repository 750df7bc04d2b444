package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// FeeStructure is the reference record defining the full amount owed per
// grade/fee-type/academic-year. Long lived, managed by the management role.
type FeeStructure struct {
	// PK
	FeeStructureID uuid.UUID `json:"fee_structure_id" gorm:"column:fee_structure_id;type:uuid;default:gen_random_uuid();primaryKey"`

	// Matching key
	FeeStructureAcademicYearID uuid.UUID `json:"fee_structure_academic_year_id" gorm:"column:fee_structure_academic_year_id;type:uuid;not null;index:idx_fee_structures_year_grade_type,priority:1"`
	FeeStructureGrade          int       `json:"fee_structure_grade" gorm:"column:fee_structure_grade;type:smallint;not null;index:idx_fee_structures_year_grade_type,priority:2"`
	FeeStructureFeeType        FeeType   `json:"fee_structure_fee_type" gorm:"column:fee_structure_fee_type;type:fee_type;not null;index:idx_fee_structures_year_grade_type,priority:3"`

	// Full term fee, whole currency units
	FeeStructureAmount int `json:"fee_structure_amount" gorm:"column:fee_structure_amount;type:int;not null;check:fee_structure_amount >= 0"`

	FeeStructureDescription *string `json:"fee_structure_description,omitempty" gorm:"column:fee_structure_description;type:text"`

	// Timestamps
	FeeStructureCreatedAt time.Time      `json:"fee_structure_created_at" gorm:"column:fee_structure_created_at;type:timestamptz;not null;autoCreateTime"`
	FeeStructureUpdatedAt time.Time      `json:"fee_structure_updated_at" gorm:"column:fee_structure_updated_at;type:timestamptz;not null;autoUpdateTime"`
	FeeStructureDeletedAt gorm.DeletedAt `json:"fee_structure_deleted_at,omitempty" gorm:"column:fee_structure_deleted_at;type:timestamptz;index"`

	// A UNIQUE partial index over (year, grade, fee_type) WHERE deleted_at IS NULL
	// lives in the SQL migration; duplicates are a data-quality violation.
}

func (FeeStructure) TableName() string { return "fee_structures" }
