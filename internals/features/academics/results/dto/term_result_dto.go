package dto

import (
	"time"

	"github.com/google/uuid"

	"schoolhub_backend/internals/features/academics/results/model"
	feemodel "schoolhub_backend/internals/features/finance/fees/model"
)

type TermResultCreateDTO struct {
	TermResultStudentID      uuid.UUID     `json:"term_result_student_id" validate:"required"`
	TermResultAcademicYearID uuid.UUID     `json:"term_result_academic_year_id" validate:"required"`
	TermResultTerm           feemodel.Term `json:"term_result_term" validate:"required,oneof=first second third"`
	TermResultSubject        string        `json:"term_result_subject" validate:"required,max=60"`
	TermResultScore          int           `json:"term_result_score" validate:"min=0,max=100"`
	TermResultGradeLetter    *string       `json:"term_result_grade_letter,omitempty" validate:"omitempty,max=2"`
	TermResultRemarks        *string       `json:"term_result_remarks,omitempty"`
}

type TermResultResponse struct {
	TermResultID             uuid.UUID     `json:"term_result_id"`
	TermResultStudentID      uuid.UUID     `json:"term_result_student_id"`
	TermResultAcademicYearID uuid.UUID     `json:"term_result_academic_year_id"`
	TermResultTerm           feemodel.Term `json:"term_result_term"`
	TermResultSubject        string        `json:"term_result_subject"`
	TermResultScore          int           `json:"term_result_score"`
	TermResultGradeLetter    *string       `json:"term_result_grade_letter,omitempty"`
	TermResultRemarks        *string       `json:"term_result_remarks,omitempty"`
	TermResultCreatedAt      time.Time     `json:"term_result_created_at"`
}

func ToTermResultResponse(m model.TermResult) TermResultResponse {
	return TermResultResponse{
		TermResultID:             m.TermResultID,
		TermResultStudentID:      m.TermResultStudentID,
		TermResultAcademicYearID: m.TermResultAcademicYearID,
		TermResultTerm:           m.TermResultTerm,
		TermResultSubject:        m.TermResultSubject,
		TermResultScore:          m.TermResultScore,
		TermResultGradeLetter:    m.TermResultGradeLetter,
		TermResultRemarks:        m.TermResultRemarks,
		TermResultCreatedAt:      m.TermResultCreatedAt,
	}
}

func ToTermResultResponses(list []model.TermResult) []TermResultResponse {
	out := make([]TermResultResponse, 0, len(list))
	for _, v := range list {
		out = append(out, ToTermResultResponse(v))
	}
	return out
}

func TermResultCreateDTOToModel(d TermResultCreateDTO) model.TermResult {
	return model.TermResult{
		TermResultStudentID:      d.TermResultStudentID,
		TermResultAcademicYearID: d.TermResultAcademicYearID,
		TermResultTerm:           d.TermResultTerm,
		TermResultSubject:        d.TermResultSubject,
		TermResultScore:          d.TermResultScore,
		TermResultGradeLetter:    d.TermResultGradeLetter,
		TermResultRemarks:        d.TermResultRemarks,
	}
}
