package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// FeeTransaction is one payment record against a term fee. Several rows may
// exist per (student, term, year): part-payments. Rows are append-only;
// cumulative amount_paid across them drives the status.
type FeeTransaction struct {
	// PK
	FeeTransactionID uuid.UUID `json:"fee_transaction_id" gorm:"column:fee_transaction_id;type:uuid;default:gen_random_uuid();primaryKey"`

	// Tuple
	FeeTransactionStudentID      uuid.UUID `json:"fee_transaction_student_id" gorm:"column:fee_transaction_student_id;type:uuid;not null;index:idx_fee_transactions_tuple,priority:1"`
	FeeTransactionAcademicYearID uuid.UUID `json:"fee_transaction_academic_year_id" gorm:"column:fee_transaction_academic_year_id;type:uuid;not null;index:idx_fee_transactions_tuple,priority:2"`
	FeeTransactionTerm           Term      `json:"fee_transaction_term" gorm:"column:fee_transaction_term;type:term;not null;index:idx_fee_transactions_tuple,priority:3"`

	FeeTransactionFeeStructureID uuid.UUID `json:"fee_transaction_fee_structure_id" gorm:"column:fee_transaction_fee_structure_id;type:uuid;not null;index"`

	// Amounts, whole currency units. TotalAmount is the full term fee
	// snapshotted at payment time.
	FeeTransactionAmountPaid  int `json:"fee_transaction_amount_paid" gorm:"column:fee_transaction_amount_paid;type:int;not null;check:fee_transaction_amount_paid > 0"`
	FeeTransactionTotalAmount int `json:"fee_transaction_total_amount" gorm:"column:fee_transaction_total_amount;type:int;not null;check:fee_transaction_total_amount >= 0"`

	// Server-derived, never client-supplied.
	FeeTransactionStatus TransactionStatus `json:"fee_transaction_status" gorm:"column:fee_transaction_status;type:fee_transaction_status;not null;default:'pending'"`

	FeeTransactionPaymentDate *time.Time `json:"fee_transaction_payment_date,omitempty" gorm:"column:fee_transaction_payment_date;type:timestamptz"`
	FeeTransactionDueDate     *time.Time `json:"fee_transaction_due_date,omitempty" gorm:"column:fee_transaction_due_date;type:date"`

	FeeTransactionPaymentMethod  string  `json:"fee_transaction_payment_method" gorm:"column:fee_transaction_payment_method;type:varchar(30);not null;default:'gateway'"`
	FeeTransactionGatewayOrderID *string `json:"fee_transaction_gateway_order_id,omitempty" gorm:"column:fee_transaction_gateway_order_id;type:varchar(80);uniqueIndex"`
	FeeTransactionRemarks        *string `json:"fee_transaction_remarks,omitempty" gorm:"column:fee_transaction_remarks;type:text"`

	// Timestamps
	FeeTransactionCreatedAt time.Time      `json:"fee_transaction_created_at" gorm:"column:fee_transaction_created_at;type:timestamptz;not null;autoCreateTime"`
	FeeTransactionUpdatedAt time.Time      `json:"fee_transaction_updated_at" gorm:"column:fee_transaction_updated_at;type:timestamptz;not null;autoUpdateTime"`
	FeeTransactionDeletedAt gorm.DeletedAt `json:"fee_transaction_deleted_at,omitempty" gorm:"column:fee_transaction_deleted_at;type:timestamptz;index"`
}

func (FeeTransaction) TableName() string { return "fee_transactions" }

/* ===================== Helpers ===================== */

func (t *FeeTransaction) IsPaid() bool {
	return t.FeeTransactionStatus == TransactionStatusPaid
}

// MatchesTuple reports whether the row belongs to the (term, year) pair.
func (t *FeeTransaction) MatchesTuple(term Term, yearID uuid.UUID) bool {
	return t.FeeTransactionTerm == term && t.FeeTransactionAcademicYearID == yearID
}
