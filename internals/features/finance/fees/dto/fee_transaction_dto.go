package dto

import (
	"time"

	"github.com/google/uuid"

	"schoolhub_backend/internals/features/finance/fees/model"
	"schoolhub_backend/internals/features/finance/fees/service"
)

////////////////////////////////////////////////////////////////////////////////
// FEE TRANSACTIONS: DTO
////////////////////////////////////////////////////////////////////////////////

// No create DTO on purpose: ledger rows are written by the payment webhook
// (gateway flow) or the staff manual-entry endpoint, never from raw client
// JSON, and status is always server-derived.

type FeeTransactionResponse struct {
	FeeTransactionID             uuid.UUID               `json:"fee_transaction_id"`
	FeeTransactionStudentID      uuid.UUID               `json:"fee_transaction_student_id"`
	FeeTransactionAcademicYearID uuid.UUID               `json:"fee_transaction_academic_year_id"`
	FeeTransactionTerm           model.Term              `json:"fee_transaction_term"`
	FeeTransactionFeeStructureID uuid.UUID               `json:"fee_transaction_fee_structure_id"`
	FeeTransactionAmountPaid     int                     `json:"fee_transaction_amount_paid"`
	FeeTransactionTotalAmount    int                     `json:"fee_transaction_total_amount"`
	FeeTransactionStatus         model.TransactionStatus `json:"fee_transaction_status"`
	FeeTransactionPaymentDate    *time.Time              `json:"fee_transaction_payment_date,omitempty"`
	FeeTransactionDueDate        *time.Time              `json:"fee_transaction_due_date,omitempty"`
	FeeTransactionPaymentMethod  string                  `json:"fee_transaction_payment_method"`
	FeeTransactionGatewayOrderID *string                 `json:"fee_transaction_gateway_order_id,omitempty"`
	FeeTransactionRemarks        *string                 `json:"fee_transaction_remarks,omitempty"`
	FeeTransactionCreatedAt      time.Time               `json:"fee_transaction_created_at"`
}

// Manual entry by staff (cash / bank transfer at the school office).
type FeeTransactionManualCreateDTO struct {
	FeeTransactionStudentID      uuid.UUID  `json:"fee_transaction_student_id" validate:"required"`
	FeeTransactionAcademicYearID uuid.UUID  `json:"fee_transaction_academic_year_id" validate:"required"`
	FeeTransactionTerm           model.Term `json:"fee_transaction_term" validate:"required,oneof=first second third"`
	FeeTransactionAmountPaid     int        `json:"fee_transaction_amount_paid" validate:"required,min=1"`
	FeeTransactionPaymentMethod  string     `json:"fee_transaction_payment_method" validate:"required,oneof=cash bank_transfer"`
	FeeTransactionDueDate        *time.Time `json:"fee_transaction_due_date,omitempty"`
	FeeTransactionRemarks        *string    `json:"fee_transaction_remarks,omitempty"`
}

// FeeSummaryResponse is the reconciliation output produced for the UI:
// plain data for display and button enablement. full_fee is omitted when
// the fee is unknown so clients can never render a fabricated zero.
type FeeSummaryResponse struct {
	AcademicYearID uuid.UUID  `json:"academic_year_id"`
	Term           model.Term `json:"term"`
	Grade          *int       `json:"grade,omitempty"`
	FeeKnown       bool       `json:"fee_known"`
	FullFee        *int       `json:"full_fee,omitempty"`
	AlreadyPaid    int        `json:"already_paid"`
	Remaining      *int       `json:"remaining,omitempty"`
	SessionPending *int       `json:"session_pending,omitempty"`
	IsFullyPaid    bool       `json:"is_fully_paid"`
	DueDate        *time.Time `json:"due_date,omitempty"`
	UnrecordedNote *string    `json:"unrecorded_note,omitempty"`
}

////////////////////////////////////////////////////////////////////////////////
// MAPPERS
////////////////////////////////////////////////////////////////////////////////

func ToFeeTransactionResponse(m model.FeeTransaction) FeeTransactionResponse {
	return FeeTransactionResponse{
		FeeTransactionID:             m.FeeTransactionID,
		FeeTransactionStudentID:      m.FeeTransactionStudentID,
		FeeTransactionAcademicYearID: m.FeeTransactionAcademicYearID,
		FeeTransactionTerm:           m.FeeTransactionTerm,
		FeeTransactionFeeStructureID: m.FeeTransactionFeeStructureID,
		FeeTransactionAmountPaid:     m.FeeTransactionAmountPaid,
		FeeTransactionTotalAmount:    m.FeeTransactionTotalAmount,
		FeeTransactionStatus:         m.FeeTransactionStatus,
		FeeTransactionPaymentDate:    m.FeeTransactionPaymentDate,
		FeeTransactionDueDate:        m.FeeTransactionDueDate,
		FeeTransactionPaymentMethod:  m.FeeTransactionPaymentMethod,
		FeeTransactionGatewayOrderID: m.FeeTransactionGatewayOrderID,
		FeeTransactionRemarks:        m.FeeTransactionRemarks,
		FeeTransactionCreatedAt:      m.FeeTransactionCreatedAt,
	}
}

func ToFeeTransactionResponses(list []model.FeeTransaction) []FeeTransactionResponse {
	out := make([]FeeTransactionResponse, 0, len(list))
	for _, v := range list {
		out = append(out, ToFeeTransactionResponse(v))
	}
	return out
}

func ToFeeSummaryResponse(b service.Balance, term model.Term, yearID uuid.UUID, grade *int, dueDate *time.Time) FeeSummaryResponse {
	resp := FeeSummaryResponse{
		AcademicYearID: yearID,
		Term:           term,
		Grade:          grade,
		FeeKnown:       b.FeeKnown,
		AlreadyPaid:    b.AlreadyPaid,
		IsFullyPaid:    b.IsFullyPaid,
		DueDate:        dueDate,
	}
	if b.FeeKnown {
		full, remaining, pending := b.FullFee, b.Remaining, b.SessionPending
		resp.FullFee = &full
		resp.Remaining = &remaining
		resp.SessionPending = &pending
	}
	return resp
}
