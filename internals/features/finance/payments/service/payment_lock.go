package service

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	feemodel "schoolhub_backend/internals/features/finance/fees/model"
)

// ErrAlreadySettled means another delivery of the same settlement got there
// first and the ledger row exists. Callers treat it as success.
var ErrAlreadySettled = errors.New("payment already settled")

// TupleLockKey is the advisory-lock key serializing ledger writes per
// (student, year, term). Row locks on existing fee_transactions rows cannot
// block a concurrent INSERT against the same balance, so every writer takes
// pg_advisory_xact_lock(hashtext(key)) before computing the balance.
func TupleLockKey(studentID, yearID uuid.UUID, term feemodel.Term) string {
	return fmt.Sprintf("fee_ledger:%s:%s:%s", studentID, yearID, term)
}
