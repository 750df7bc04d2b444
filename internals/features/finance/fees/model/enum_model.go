package model

/* ===================== Enums (string) ===================== */
/* Aligned with the Postgres ENUMs: fee_type, term, fee_transaction_status */

type FeeType string

const (
	FeeTypeTuition     FeeType = "tuition"
	FeeTypeExamination FeeType = "examination"
	FeeTypeTransport   FeeType = "transport"
	FeeTypeHostel      FeeType = "hostel"
	FeeTypeOther       FeeType = "other"
)

func (t FeeType) Valid() bool {
	switch t {
	case FeeTypeTuition, FeeTypeExamination, FeeTypeTransport, FeeTypeHostel, FeeTypeOther:
		return true
	}
	return false
}

type Term string

const (
	TermFirst  Term = "first"
	TermSecond Term = "second"
	TermThird  Term = "third"
)

// TermsPerYear: billing periods per academic year.
const TermsPerYear = 3

func (t Term) Valid() bool {
	switch t {
	case TermFirst, TermSecond, TermThird:
		return true
	}
	return false
}

type TransactionStatus string

const (
	TransactionStatusPending TransactionStatus = "pending"
	TransactionStatusPartial TransactionStatus = "partial"
	TransactionStatusPaid    TransactionStatus = "paid"
	TransactionStatusOverdue TransactionStatus = "overdue"
)
