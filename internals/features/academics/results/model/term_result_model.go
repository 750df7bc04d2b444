package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	feemodel "schoolhub_backend/internals/features/finance/fees/model"
)

// TermResult is one subject score for a (student, term, year). Visibility to
// the student is gated on the term fee being fully paid.
type TermResult struct {
	TermResultID uuid.UUID `json:"term_result_id" gorm:"column:term_result_id;type:uuid;default:gen_random_uuid();primaryKey"`

	TermResultStudentID      uuid.UUID     `json:"term_result_student_id" gorm:"column:term_result_student_id;type:uuid;not null;index:idx_term_results_tuple,priority:1"`
	TermResultAcademicYearID uuid.UUID     `json:"term_result_academic_year_id" gorm:"column:term_result_academic_year_id;type:uuid;not null;index:idx_term_results_tuple,priority:2"`
	TermResultTerm           feemodel.Term `json:"term_result_term" gorm:"column:term_result_term;type:term;not null;index:idx_term_results_tuple,priority:3"`

	TermResultSubject     string  `json:"term_result_subject" gorm:"column:term_result_subject;type:varchar(60);not null"`
	TermResultScore       int     `json:"term_result_score" gorm:"column:term_result_score;type:smallint;not null;check:term_result_score >= 0 AND term_result_score <= 100"`
	TermResultGradeLetter *string `json:"term_result_grade_letter,omitempty" gorm:"column:term_result_grade_letter;type:varchar(2)"`
	TermResultRemarks     *string `json:"term_result_remarks,omitempty" gorm:"column:term_result_remarks;type:text"`

	TermResultCreatedAt time.Time      `json:"term_result_created_at" gorm:"column:term_result_created_at;type:timestamptz;not null;autoCreateTime"`
	TermResultUpdatedAt time.Time      `json:"term_result_updated_at" gorm:"column:term_result_updated_at;type:timestamptz;not null;autoUpdateTime"`
	TermResultDeletedAt gorm.DeletedAt `json:"term_result_deleted_at,omitempty" gorm:"column:term_result_deleted_at;type:timestamptz;index"`
}

func (TermResult) TableName() string { return "term_results" }
