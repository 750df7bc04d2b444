package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	feemodel "schoolhub_backend/internals/features/finance/fees/model"
)

/* ===================== Enums (string) ===================== */
/* Aligned with the Postgres ENUM payment_status */

const (
	PaymentStatusInitiated = "initiated"
	PaymentStatusPending   = "pending"
	PaymentStatusPaid      = "paid"
	PaymentStatusFailed    = "failed"
	PaymentStatusCanceled  = "canceled"
	PaymentStatusExpired   = "expired"
)

const PaymentProviderMidtrans = "midtrans"

/* ===================== Model ===================== */

// Payment is the gateway leg of a fee payment. The ledger row
// (FeeTransaction) is only written after the gateway reports success; until
// then this record is the sole trace of the attempt.
type Payment struct {
	PaymentID uuid.UUID `gorm:"column:payment_id;type:uuid;default:gen_random_uuid();primaryKey" json:"payment_id"`

	PaymentStudentID uuid.UUID `gorm:"column:payment_student_id;type:uuid;not null;index" json:"payment_student_id"`
	PaymentUserID    uuid.UUID `gorm:"column:payment_user_id;type:uuid;not null" json:"payment_user_id"`

	PaymentFeeStructureID uuid.UUID     `gorm:"column:payment_fee_structure_id;type:uuid;not null" json:"payment_fee_structure_id"`
	PaymentAcademicYearID uuid.UUID     `gorm:"column:payment_academic_year_id;type:uuid;not null" json:"payment_academic_year_id"`
	PaymentTerm           feemodel.Term `gorm:"column:payment_term;type:term;not null" json:"payment_term"`

	// Amounts, whole currency units.
	PaymentAmount   int    `gorm:"column:payment_amount;not null;check:payment_amount > 0" json:"payment_amount"`
	PaymentCurrency string `gorm:"column:payment_currency;type:varchar(8);not null;default:'IDR'" json:"payment_currency"`

	PaymentStatus   string  `gorm:"column:payment_status;type:payment_status;not null;default:'initiated'" json:"payment_status"`
	PaymentProvider string  `gorm:"column:payment_provider;type:varchar(20);not null;default:'midtrans'" json:"payment_provider"`
	PaymentOrderID  *string `gorm:"column:payment_order_id;type:varchar(80);uniqueIndex" json:"payment_order_id,omitempty"`

	PaymentSnapToken   *string `gorm:"column:payment_snap_token" json:"payment_snap_token,omitempty"`
	PaymentCheckoutURL *string `gorm:"column:payment_checkout_url" json:"payment_checkout_url,omitempty"`

	PaymentRequestedAt *time.Time `gorm:"column:payment_requested_at" json:"payment_requested_at,omitempty"`
	PaymentPaidAt      *time.Time `gorm:"column:payment_paid_at" json:"payment_paid_at,omitempty"`
	PaymentFailedAt    *time.Time `gorm:"column:payment_failed_at" json:"payment_failed_at,omitempty"`
	PaymentCanceledAt  *time.Time `gorm:"column:payment_canceled_at" json:"payment_canceled_at,omitempty"`

	// ledger_error=true marks a settled payment whose ledger write failed;
	// resolved manually, never retried automatically.
	PaymentMeta datatypes.JSONMap `gorm:"column:payment_meta;type:jsonb" json:"payment_meta,omitempty"`

	CreatedAt time.Time      `gorm:"column:payment_created_at;autoCreateTime" json:"payment_created_at"`
	UpdatedAt time.Time      `gorm:"column:payment_updated_at;autoUpdateTime" json:"payment_updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:payment_deleted_at;index" json:"payment_deleted_at,omitempty"`
}

func (Payment) TableName() string { return "payments" }

/* ===================== Helpers ===================== */

func (p *Payment) IsPaid() bool {
	return p.PaymentStatus == PaymentStatusPaid
}

func (p *Payment) IsOpen() bool {
	switch p.PaymentStatus {
	case PaymentStatusInitiated, PaymentStatusPending:
		return true
	default:
		return false
	}
}

func (p *Payment) HasLedgerError() bool {
	if p.PaymentMeta == nil {
		return false
	}
	v, ok := p.PaymentMeta["ledger_error"].(bool)
	return ok && v
}
