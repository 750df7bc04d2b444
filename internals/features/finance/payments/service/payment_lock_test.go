package service

import (
	"testing"

	"github.com/google/uuid"

	feemodel "schoolhub_backend/internals/features/finance/fees/model"
)

func TestTupleLockKey(t *testing.T) {
	studentA := uuid.MustParse("6ba7b810-9dad-11d1-80b4-00c04fd430c8")
	studentB := uuid.MustParse("6ba7b811-9dad-11d1-80b4-00c04fd430c8")
	year := uuid.MustParse("6ba7b812-9dad-11d1-80b4-00c04fd430c8")

	// stable: the webhook and the manual-entry path must contend on the
	// same lock for the same balance
	if a, b := TupleLockKey(studentA, year, feemodel.TermFirst), TupleLockKey(studentA, year, feemodel.TermFirst); a != b {
		t.Errorf("same tuple produced different keys: %q vs %q", a, b)
	}

	// distinct per tuple component: unrelated balances must not queue
	// behind each other
	base := TupleLockKey(studentA, year, feemodel.TermFirst)
	variants := map[string]string{
		"different student": TupleLockKey(studentB, year, feemodel.TermFirst),
		"different term":    TupleLockKey(studentA, year, feemodel.TermSecond),
		"different year":    TupleLockKey(studentA, studentB, feemodel.TermFirst),
	}
	for name, key := range variants {
		if key == base {
			t.Errorf("%s collided with base key %q", name, base)
		}
	}
}
