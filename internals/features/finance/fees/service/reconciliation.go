package service

import (
	"errors"
	"regexp"
	"time"

	"github.com/google/uuid"

	"schoolhub_backend/internals/features/finance/fees/model"
)

/* =========================================================
   Domain errors
========================================================= */

var (
	ErrUnresolvableGrade    = errors.New("grade could not be resolved from class label")
	ErrFeeStructureNotFound = errors.New("no fee structure matches grade/type/year")
	ErrFeeUnknown           = errors.New("full term fee is unknown")
	ErrTermAlreadyPaid      = errors.New("term is already fully paid")
	ErrNonPositiveAmount    = errors.New("payment amount must be positive")
	ErrExceedsBalance       = errors.New("payment amount exceeds remaining balance")
)

/* =========================================================
   Grade resolution
========================================================= */

var (
	gradeKeywordRe = regexp.MustCompile(`(?i)grade\s*(\d+)`)
	leadingDigitRe = regexp.MustCompile(`^(\d+)`)
	anyDigitRe     = regexp.MustCompile(`(\d+)`)
)

// ResolveGrade extracts the numeric grade from a free-text class label such
// as "Grade 10 A" or "10A". Ordered fallback, first match wins:
//  1. "Grade <digits>" (case-insensitive)
//  2. leading digit sequence
//  3. any digit sequence
//
// ok is false when the label carries no digits (e.g. "SS2" has digits, but
// "Nursery Blue" does not); callers must treat that as "fee cannot be
// computed", never as grade zero.
func ResolveGrade(label string) (grade int, ok bool) {
	for _, re := range []*regexp.Regexp{gradeKeywordRe, leadingDigitRe, anyDigitRe} {
		if m := re.FindStringSubmatch(label); m != nil {
			n := 0
			for _, ch := range m[1] {
				n = n*10 + int(ch-'0')
				if n > 1<<20 { // absurd label, refuse rather than overflow
					return 0, false
				}
			}
			return n, true
		}
	}
	return 0, false
}

/* =========================================================
   Fee structure lookup
========================================================= */

// LookupFeeStructure finds the fee structure for (grade, feeType, yearID).
// Year ids are canonical uuids by the time data reaches here (normalized at
// the JSON boundary), so plain equality suffices. Exactly one match is
// expected; with duplicate reference rows the first in iteration order wins.
func LookupFeeStructure(list []model.FeeStructure, grade int, feeType model.FeeType, yearID uuid.UUID) (*model.FeeStructure, error) {
	for i := range list {
		fs := &list[i]
		if fs.FeeStructureGrade == grade &&
			fs.FeeStructureFeeType == feeType &&
			fs.FeeStructureAcademicYearID == yearID {
			return fs, nil
		}
	}
	return nil, ErrFeeStructureNotFound
}

/* =========================================================
   Balance computation
========================================================= */

// Balance is the reconciliation output for one (student, term, year) tuple.
// Pure data: re-derivable at any time from the transaction and fee-structure
// snapshots, never persisted.
type Balance struct {
	FeeKnown       bool `json:"fee_known"`
	FullFee        int  `json:"full_fee,omitempty"`
	AlreadyPaid    int  `json:"already_paid"`
	Remaining      int  `json:"remaining,omitempty"`
	SessionPending int  `json:"session_pending,omitempty"`
	IsFullyPaid    bool `json:"is_fully_paid"`
}

// ComputeBalance derives the paid/remaining amounts for a term from the
// student's transaction history. txns is the student's full transaction list
// for the academic year (any term); rows outside yearID are ignored.
//
// When feeKnown is false, FullFee/Remaining/SessionPending are meaningless
// and stay zero with FeeKnown=false; callers must not display them.
func ComputeBalance(fullFee int, feeKnown bool, txns []model.FeeTransaction, term model.Term, yearID uuid.UUID) Balance {
	b := Balance{FeeKnown: feeKnown}

	yearPaid := 0
	for i := range txns {
		t := &txns[i]
		if t.FeeTransactionAcademicYearID != yearID {
			continue
		}
		yearPaid += t.FeeTransactionAmountPaid
		if t.FeeTransactionTerm != term {
			continue
		}
		b.AlreadyPaid += t.FeeTransactionAmountPaid
		if t.IsPaid() {
			b.IsFullyPaid = true
		}
	}

	if !feeKnown {
		return b
	}

	b.FullFee = fullFee
	b.Remaining = fullFee - b.AlreadyPaid
	if b.Remaining < 0 {
		b.Remaining = 0
	}
	b.SessionPending = fullFee*model.TermsPerYear - yearPaid
	if b.SessionPending < 0 {
		b.SessionPending = 0
	}
	return b
}

/* =========================================================
   Payment validation
========================================================= */

// ValidatePayment applies the submission rules in order: unknown fee, term
// already paid, non-positive amount, amount over the remaining balance.
func ValidatePayment(b Balance, proposed int) error {
	if !b.FeeKnown {
		return ErrFeeUnknown
	}
	if b.IsFullyPaid || (b.FullFee > 0 && b.AlreadyPaid >= b.FullFee) {
		return ErrTermAlreadyPaid
	}
	if proposed <= 0 {
		return ErrNonPositiveAmount
	}
	if proposed > b.Remaining {
		return ErrExceedsBalance
	}
	return nil
}

/* =========================================================
   Status derivation (server side only)
========================================================= */

// DeriveStatus computes a transaction's status from the cumulative paid
// amount after the payment lands. Clients never supply a status.
func DeriveStatus(cumulativePaid, fullFee int, dueDate *time.Time, now time.Time) model.TransactionStatus {
	switch {
	case fullFee > 0 && cumulativePaid >= fullFee:
		return model.TransactionStatusPaid
	case cumulativePaid > 0:
		return model.TransactionStatusPartial
	case dueDate != nil && now.After(*dueDate):
		return model.TransactionStatusOverdue
	default:
		return model.TransactionStatusPending
	}
}

/* =========================================================
   Results gating
========================================================= */

// CanViewResults: results for (student, term, year) are visible only once at
// least one transaction for that tuple has status paid. Re-evaluated per
// request; holds no state of its own.
func CanViewResults(txns []model.FeeTransaction, term model.Term, yearID uuid.UUID) bool {
	for i := range txns {
		if txns[i].MatchesTuple(term, yearID) && txns[i].IsPaid() {
			return true
		}
	}
	return false
}
