package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AcademicYear is reference data ("2025/2026"). Year identity is this uuid
// everywhere; clients send it once and every downstream comparison is plain
// equality.
type AcademicYear struct {
	AcademicYearID       uuid.UUID      `json:"academic_year_id" gorm:"column:academic_year_id;type:uuid;default:gen_random_uuid();primaryKey"`
	AcademicYearName     string         `json:"academic_year_name" gorm:"column:academic_year_name;type:varchar(20);not null;uniqueIndex"`
	AcademicYearIsActive bool           `json:"academic_year_is_active" gorm:"column:academic_year_is_active;type:boolean;not null;default:false;index"`
	AcademicYearCreatedAt time.Time     `json:"academic_year_created_at" gorm:"column:academic_year_created_at;type:timestamptz;not null;autoCreateTime"`
	AcademicYearUpdatedAt time.Time     `json:"academic_year_updated_at" gorm:"column:academic_year_updated_at;type:timestamptz;not null;autoUpdateTime"`
	AcademicYearDeletedAt gorm.DeletedAt `json:"academic_year_deleted_at,omitempty" gorm:"column:academic_year_deleted_at;type:timestamptz;index"`
}

func (AcademicYear) TableName() string { return "academic_years" }
