package dto

import (
	"time"

	"github.com/google/uuid"

	feemodel "schoolhub_backend/internals/features/finance/fees/model"
	"schoolhub_backend/internals/features/finance/payments/model"
)

////////////////////////////////////////////////////////////////////////////////
// PAYMENTS: DTO
////////////////////////////////////////////////////////////////////////////////

// Checkout request. amount nil means "pay the full remaining balance".
type PaymentCheckoutDTO struct {
	PaymentAcademicYearID uuid.UUID     `json:"payment_academic_year_id" validate:"required"`
	PaymentTerm           feemodel.Term `json:"payment_term" validate:"required,oneof=first second third"`
	PaymentAmount         *int          `json:"payment_amount,omitempty"`
}

type PaymentCheckoutResponse struct {
	PaymentID          uuid.UUID `json:"payment_id"`
	PaymentOrderID     string    `json:"payment_order_id"`
	PaymentAmount      int       `json:"payment_amount"`
	PaymentSnapToken   string    `json:"payment_snap_token"`
	PaymentCheckoutURL string    `json:"payment_checkout_url"`
}

type PaymentResponse struct {
	PaymentID             uuid.UUID     `json:"payment_id"`
	PaymentStudentID      uuid.UUID     `json:"payment_student_id"`
	PaymentAcademicYearID uuid.UUID     `json:"payment_academic_year_id"`
	PaymentTerm           feemodel.Term `json:"payment_term"`
	PaymentAmount         int           `json:"payment_amount"`
	PaymentCurrency       string        `json:"payment_currency"`
	PaymentStatus         string        `json:"payment_status"`
	PaymentOrderID        *string       `json:"payment_order_id,omitempty"`
	PaymentCheckoutURL    *string       `json:"payment_checkout_url,omitempty"`
	PaymentRequestedAt    *time.Time    `json:"payment_requested_at,omitempty"`
	PaymentPaidAt         *time.Time    `json:"payment_paid_at,omitempty"`
	PaymentLedgerError    bool          `json:"payment_ledger_error"`
	PaymentCreatedAt      time.Time     `json:"payment_created_at"`
}

// Midtrans HTTP notification payload (the fields this service consumes).
type GatewayNotificationDTO struct {
	OrderID           string `json:"order_id"`
	StatusCode        string `json:"status_code"`
	GrossAmount       string `json:"gross_amount"`
	TransactionStatus string `json:"transaction_status"`
	FraudStatus       string `json:"fraud_status"`
	SignatureKey      string `json:"signature_key"`
	PaymentType       string `json:"payment_type"`
	TransactionID     string `json:"transaction_id"`
}

////////////////////////////////////////////////////////////////////////////////
// MAPPERS
////////////////////////////////////////////////////////////////////////////////

func ToPaymentResponse(m model.Payment) PaymentResponse {
	return PaymentResponse{
		PaymentID:             m.PaymentID,
		PaymentStudentID:      m.PaymentStudentID,
		PaymentAcademicYearID: m.PaymentAcademicYearID,
		PaymentTerm:           m.PaymentTerm,
		PaymentAmount:         m.PaymentAmount,
		PaymentCurrency:       m.PaymentCurrency,
		PaymentStatus:         m.PaymentStatus,
		PaymentOrderID:        m.PaymentOrderID,
		PaymentCheckoutURL:    m.PaymentCheckoutURL,
		PaymentRequestedAt:    m.PaymentRequestedAt,
		PaymentPaidAt:         m.PaymentPaidAt,
		PaymentLedgerError:    m.HasLedgerError(),
		PaymentCreatedAt:      m.CreatedAt,
	}
}

func ToPaymentResponses(list []model.Payment) []PaymentResponse {
	out := make([]PaymentResponse, 0, len(list))
	for _, v := range list {
		out = append(out, ToPaymentResponse(v))
	}
	return out
}
