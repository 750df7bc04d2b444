package dto

import (
	"time"

	"github.com/google/uuid"

	"schoolhub_backend/internals/features/academics/students/model"
)

type StudentProfileCreateDTO struct {
	StudentProfileUserID         uuid.UUID `json:"student_profile_user_id" validate:"required"`
	StudentProfileFullName       string    `json:"student_profile_full_name" validate:"required,min=2,max=120"`
	StudentProfileCurrentClass   string    `json:"student_profile_current_class" validate:"required,max=60"`
	StudentProfileAcademicYearID uuid.UUID `json:"student_profile_academic_year_id" validate:"required"`
	StudentProfileGuardianEmail  *string   `json:"student_profile_guardian_email,omitempty" validate:"omitempty,email"`
	StudentProfileGuardianPhone  *string   `json:"student_profile_guardian_phone,omitempty" validate:"omitempty,max=30"`
}

type StudentProfileUpdateDTO struct {
	StudentProfileFullName       *string    `json:"student_profile_full_name,omitempty" validate:"omitempty,min=2,max=120"`
	StudentProfileCurrentClass   *string    `json:"student_profile_current_class,omitempty" validate:"omitempty,max=60"`
	StudentProfileAcademicYearID *uuid.UUID `json:"student_profile_academic_year_id,omitempty"`
	StudentProfileGuardianEmail  *string    `json:"student_profile_guardian_email,omitempty" validate:"omitempty,email"`
	StudentProfileGuardianPhone  *string    `json:"student_profile_guardian_phone,omitempty" validate:"omitempty,max=30"`
}

type StudentProfileResponse struct {
	StudentProfileID             uuid.UUID `json:"student_profile_id"`
	StudentProfileUserID         uuid.UUID `json:"student_profile_user_id"`
	StudentProfileFullName       string    `json:"student_profile_full_name"`
	StudentProfileCurrentClass   string    `json:"student_profile_current_class"`
	StudentProfileAcademicYearID uuid.UUID `json:"student_profile_academic_year_id"`
	StudentProfileGuardianEmail  *string   `json:"student_profile_guardian_email,omitempty"`
	StudentProfileGuardianPhone  *string   `json:"student_profile_guardian_phone,omitempty"`
	StudentProfileCreatedAt      time.Time `json:"student_profile_created_at"`
}

func ToStudentProfileResponse(m model.StudentProfile) StudentProfileResponse {
	return StudentProfileResponse{
		StudentProfileID:             m.StudentProfileID,
		StudentProfileUserID:         m.StudentProfileUserID,
		StudentProfileFullName:       m.StudentProfileFullName,
		StudentProfileCurrentClass:   m.StudentProfileCurrentClass,
		StudentProfileAcademicYearID: m.StudentProfileAcademicYearID,
		StudentProfileGuardianEmail:  m.StudentProfileGuardianEmail,
		StudentProfileGuardianPhone:  m.StudentProfileGuardianPhone,
		StudentProfileCreatedAt:      m.StudentProfileCreatedAt,
	}
}

func ToStudentProfileResponses(list []model.StudentProfile) []StudentProfileResponse {
	out := make([]StudentProfileResponse, 0, len(list))
	for _, v := range list {
		out = append(out, ToStudentProfileResponse(v))
	}
	return out
}

func StudentProfileCreateDTOToModel(d StudentProfileCreateDTO) model.StudentProfile {
	return model.StudentProfile{
		StudentProfileUserID:         d.StudentProfileUserID,
		StudentProfileFullName:       d.StudentProfileFullName,
		StudentProfileCurrentClass:   d.StudentProfileCurrentClass,
		StudentProfileAcademicYearID: d.StudentProfileAcademicYearID,
		StudentProfileGuardianEmail:  d.StudentProfileGuardianEmail,
		StudentProfileGuardianPhone:  d.StudentProfileGuardianPhone,
	}
}

func ApplyStudentProfileUpdate(m *model.StudentProfile, d StudentProfileUpdateDTO) {
	if d.StudentProfileFullName != nil {
		m.StudentProfileFullName = *d.StudentProfileFullName
	}
	if d.StudentProfileCurrentClass != nil {
		m.StudentProfileCurrentClass = *d.StudentProfileCurrentClass
	}
	if d.StudentProfileAcademicYearID != nil {
		m.StudentProfileAcademicYearID = *d.StudentProfileAcademicYearID
	}
	if d.StudentProfileGuardianEmail != nil {
		m.StudentProfileGuardianEmail = d.StudentProfileGuardianEmail
	}
	if d.StudentProfileGuardianPhone != nil {
		m.StudentProfileGuardianPhone = d.StudentProfileGuardianPhone
	}
}
