package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// StudentProfile links an auth user to a student record. current_class is a
// free-text label ("Grade 10 A"); no normalized grade column is guaranteed,
// the grade number is parsed out of the label by the fees service.
type StudentProfile struct {
	StudentProfileID uuid.UUID `json:"student_profile_id" gorm:"column:student_profile_id;type:uuid;default:gen_random_uuid();primaryKey"`

	StudentProfileUserID uuid.UUID `json:"student_profile_user_id" gorm:"column:student_profile_user_id;type:uuid;not null;uniqueIndex"`

	StudentProfileFullName       string    `json:"student_profile_full_name" gorm:"column:student_profile_full_name;type:varchar(120);not null"`
	StudentProfileCurrentClass   string    `json:"student_profile_current_class" gorm:"column:student_profile_current_class;type:varchar(60);not null"`
	StudentProfileAcademicYearID uuid.UUID `json:"student_profile_academic_year_id" gorm:"column:student_profile_academic_year_id;type:uuid;not null;index"`

	StudentProfileGuardianEmail *string `json:"student_profile_guardian_email,omitempty" gorm:"column:student_profile_guardian_email;type:varchar(120)"`
	StudentProfileGuardianPhone *string `json:"student_profile_guardian_phone,omitempty" gorm:"column:student_profile_guardian_phone;type:varchar(30)"`

	StudentProfileCreatedAt time.Time      `json:"student_profile_created_at" gorm:"column:student_profile_created_at;type:timestamptz;not null;autoCreateTime"`
	StudentProfileUpdatedAt time.Time      `json:"student_profile_updated_at" gorm:"column:student_profile_updated_at;type:timestamptz;not null;autoUpdateTime"`
	StudentProfileDeletedAt gorm.DeletedAt `json:"student_profile_deleted_at,omitempty" gorm:"column:student_profile_deleted_at;type:timestamptz;index"`
}

func (StudentProfile) TableName() string { return "student_profiles" }
