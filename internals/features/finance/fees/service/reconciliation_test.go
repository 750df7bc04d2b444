package service

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"schoolhub_backend/internals/features/finance/fees/model"
)

var (
	yearA = uuid.MustParse("11111111-1111-1111-1111-111111111111")
	yearB = uuid.MustParse("22222222-2222-2222-2222-222222222222")
)

func TestResolveGrade(t *testing.T) {
	tests := []struct {
		name  string
		label string
		want  int
		ok    bool
	}{
		{name: "grade keyword with section", label: "Grade 10 A", want: 10, ok: true},
		{name: "grade keyword lowercase", label: "grade 7", want: 7, ok: true},
		{name: "grade keyword no space", label: "Grade9", want: 9, ok: true},
		{name: "leading digits", label: "10A", want: 10, ok: true},
		{name: "digits in the middle", label: "SS2", want: 2, ok: true},
		{name: "digits after words", label: "Primary 4 Blue", want: 4, ok: true},
		{name: "keyword wins over leading digits", label: "12 Grade 3", want: 3, ok: true},
		{name: "no digits at all", label: "Nursery Blue", ok: false},
		{name: "empty label", label: "", ok: false},
		{name: "whitespace only", label: "   ", ok: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ResolveGrade(tt.label)
			if ok != tt.ok {
				t.Fatalf("ResolveGrade(%q) ok = %v, want %v", tt.label, ok, tt.ok)
			}
			if ok && got != tt.want {
				t.Errorf("ResolveGrade(%q) = %d, want %d", tt.label, got, tt.want)
			}
			if !ok && got != 0 {
				t.Errorf("ResolveGrade(%q) returned %d with ok=false, want 0", tt.label, got)
			}
		})
	}
}

func TestLookupFeeStructure(t *testing.T) {
	list := []model.FeeStructure{
		{FeeStructureGrade: 9, FeeStructureFeeType: model.FeeTypeTuition, FeeStructureAcademicYearID: yearA, FeeStructureAmount: 45000},
		{FeeStructureGrade: 10, FeeStructureFeeType: model.FeeTypeTuition, FeeStructureAcademicYearID: yearA, FeeStructureAmount: 50000},
		{FeeStructureGrade: 10, FeeStructureFeeType: model.FeeTypeExamination, FeeStructureAcademicYearID: yearA, FeeStructureAmount: 8000},
		{FeeStructureGrade: 10, FeeStructureFeeType: model.FeeTypeTuition, FeeStructureAcademicYearID: yearB, FeeStructureAmount: 52000},
		// duplicate of row 1; first match must win
		{FeeStructureGrade: 10, FeeStructureFeeType: model.FeeTypeTuition, FeeStructureAcademicYearID: yearA, FeeStructureAmount: 99999},
	}

	tests := []struct {
		name    string
		grade   int
		feeType model.FeeType
		yearID  uuid.UUID
		want    int
		wantErr error
	}{
		{name: "exact match", grade: 10, feeType: model.FeeTypeTuition, yearID: yearA, want: 50000},
		{name: "type discriminates", grade: 10, feeType: model.FeeTypeExamination, yearID: yearA, want: 8000},
		{name: "year discriminates", grade: 10, feeType: model.FeeTypeTuition, yearID: yearB, want: 52000},
		{name: "missing grade", grade: 11, feeType: model.FeeTypeTuition, yearID: yearA, wantErr: ErrFeeStructureNotFound},
		{name: "missing type", grade: 9, feeType: model.FeeTypeHostel, yearID: yearA, wantErr: ErrFeeStructureNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs, err := LookupFeeStructure(list, tt.grade, tt.feeType, tt.yearID)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("LookupFeeStructure() error = %v, want %v", err, tt.wantErr)
			}
			if err == nil && fs.FeeStructureAmount != tt.want {
				t.Errorf("LookupFeeStructure() amount = %d, want %d", fs.FeeStructureAmount, tt.want)
			}
		})
	}
}

func txn(term model.Term, yearID uuid.UUID, paid int, status model.TransactionStatus) model.FeeTransaction {
	return model.FeeTransaction{
		FeeTransactionAcademicYearID: yearID,
		FeeTransactionTerm:           term,
		FeeTransactionAmountPaid:     paid,
		FeeTransactionStatus:         status,
	}
}

func TestComputeBalance(t *testing.T) {
	tests := []struct {
		name     string
		fullFee  int
		feeKnown bool
		txns     []model.FeeTransaction
		term     model.Term
		want     Balance
	}{
		{
			name: "no prior payment", fullFee: 50000, feeKnown: true, term: model.TermFirst,
			want: Balance{FeeKnown: true, FullFee: 50000, Remaining: 50000, SessionPending: 150000},
		},
		{
			name: "one part payment", fullFee: 50000, feeKnown: true, term: model.TermFirst,
			txns: []model.FeeTransaction{txn(model.TermFirst, yearA, 20000, model.TransactionStatusPartial)},
			want: Balance{FeeKnown: true, FullFee: 50000, AlreadyPaid: 20000, Remaining: 30000, SessionPending: 130000},
		},
		{
			name: "part payments accumulate", fullFee: 50000, feeKnown: true, term: model.TermFirst,
			txns: []model.FeeTransaction{
				txn(model.TermFirst, yearA, 20000, model.TransactionStatusPartial),
				txn(model.TermFirst, yearA, 15000, model.TransactionStatusPartial),
			},
			want: Balance{FeeKnown: true, FullFee: 50000, AlreadyPaid: 35000, Remaining: 15000, SessionPending: 115000},
		},
		{
			name: "other terms count only toward session pending", fullFee: 50000, feeKnown: true, term: model.TermSecond,
			txns: []model.FeeTransaction{
				txn(model.TermFirst, yearA, 50000, model.TransactionStatusPaid),
				txn(model.TermSecond, yearA, 10000, model.TransactionStatusPartial),
			},
			want: Balance{FeeKnown: true, FullFee: 50000, AlreadyPaid: 10000, Remaining: 40000, SessionPending: 90000},
		},
		{
			name: "other academic years ignored", fullFee: 50000, feeKnown: true, term: model.TermFirst,
			txns: []model.FeeTransaction{
				txn(model.TermFirst, yearB, 50000, model.TransactionStatusPaid),
			},
			want: Balance{FeeKnown: true, FullFee: 50000, Remaining: 50000, SessionPending: 150000},
		},
		{
			name: "remaining never negative", fullFee: 50000, feeKnown: true, term: model.TermFirst,
			txns: []model.FeeTransaction{txn(model.TermFirst, yearA, 60000, model.TransactionStatusPaid)},
			want: Balance{FeeKnown: true, FullFee: 50000, AlreadyPaid: 60000, Remaining: 0, SessionPending: 90000, IsFullyPaid: true},
		},
		{
			name: "fully paid flag from status", fullFee: 50000, feeKnown: true, term: model.TermFirst,
			txns: []model.FeeTransaction{txn(model.TermFirst, yearA, 50000, model.TransactionStatusPaid)},
			want: Balance{FeeKnown: true, FullFee: 50000, AlreadyPaid: 50000, Remaining: 0, SessionPending: 100000, IsFullyPaid: true},
		},
		{
			name: "unknown fee yields no amounts", feeKnown: false, term: model.TermFirst,
			txns: []model.FeeTransaction{txn(model.TermFirst, yearA, 20000, model.TransactionStatusPartial)},
			want: Balance{FeeKnown: false, AlreadyPaid: 20000},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeBalance(tt.fullFee, tt.feeKnown, tt.txns, tt.term, yearA)
			if got != tt.want {
				t.Errorf("ComputeBalance() = %+v, want %+v", got, tt.want)
			}
			// idempotence: same snapshot, same result
			if again := ComputeBalance(tt.fullFee, tt.feeKnown, tt.txns, tt.term, yearA); again != got {
				t.Errorf("ComputeBalance() not idempotent: %+v then %+v", got, again)
			}
		})
	}
}

func TestValidatePayment(t *testing.T) {
	known := Balance{FeeKnown: true, FullFee: 50000, AlreadyPaid: 20000, Remaining: 30000}

	tests := []struct {
		name     string
		balance  Balance
		proposed int
		wantErr  error
	}{
		{name: "unknown fee rejected regardless of amount", balance: Balance{FeeKnown: false}, proposed: 100, wantErr: ErrFeeUnknown},
		{name: "already paid rejected", balance: Balance{FeeKnown: true, FullFee: 50000, AlreadyPaid: 50000, IsFullyPaid: true}, proposed: 1, wantErr: ErrTermAlreadyPaid},
		{name: "zero amount rejected", balance: known, proposed: 0, wantErr: ErrNonPositiveAmount},
		{name: "negative amount rejected", balance: known, proposed: -5, wantErr: ErrNonPositiveAmount},
		{name: "one unit over balance rejected", balance: known, proposed: 30001, wantErr: ErrExceedsBalance},
		{name: "exact balance accepted", balance: known, proposed: 30000},
		{name: "partial amount accepted", balance: known, proposed: 100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := ValidatePayment(tt.balance, tt.proposed); !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidatePayment() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestDeriveStatus(t *testing.T) {
	now := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	past := now.AddDate(0, 0, -1)
	future := now.AddDate(0, 0, 30)

	tests := []struct {
		name    string
		paid    int
		fullFee int
		due     *time.Time
		want    model.TransactionStatus
	}{
		{name: "full payment is paid", paid: 50000, fullFee: 50000, want: model.TransactionStatusPaid},
		{name: "overpayment is paid", paid: 60000, fullFee: 50000, want: model.TransactionStatusPaid},
		{name: "partial payment is partial", paid: 1, fullFee: 50000, want: model.TransactionStatusPartial},
		{name: "nothing paid before due date is pending", paid: 0, fullFee: 50000, due: &future, want: model.TransactionStatusPending},
		{name: "nothing paid past due date is overdue", paid: 0, fullFee: 50000, due: &past, want: model.TransactionStatusOverdue},
		{name: "no due date stays pending", paid: 0, fullFee: 50000, want: model.TransactionStatusPending},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DeriveStatus(tt.paid, tt.fullFee, tt.due, now); got != tt.want {
				t.Errorf("DeriveStatus() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestCanViewResults(t *testing.T) {
	tests := []struct {
		name string
		txns []model.FeeTransaction
		term model.Term
		want bool
	}{
		{name: "no transactions", term: model.TermFirst, want: false},
		{
			name: "partial payment does not unlock",
			txns: []model.FeeTransaction{txn(model.TermFirst, yearA, 20000, model.TransactionStatusPartial)},
			term: model.TermFirst,
		},
		{
			name: "paid unlocks",
			txns: []model.FeeTransaction{txn(model.TermFirst, yearA, 50000, model.TransactionStatusPaid)},
			term: model.TermFirst, want: true,
		},
		{
			name: "paid other term does not unlock this one",
			txns: []model.FeeTransaction{txn(model.TermFirst, yearA, 50000, model.TransactionStatusPaid)},
			term: model.TermSecond,
		},
		{
			name: "paid other year does not unlock",
			txns: []model.FeeTransaction{txn(model.TermFirst, yearB, 50000, model.TransactionStatusPaid)},
			term: model.TermFirst,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CanViewResults(tt.txns, tt.term, yearA); got != tt.want {
				t.Errorf("CanViewResults() = %v, want %v", got, tt.want)
			}
		})
	}
}

// End-to-end of the student payment flow over the pure core: resolve the
// grade from the class label, find the fee, compute the balance, validate a
// proposed payment, then recompute after the payment lands.
func TestPaymentFlowScenarios(t *testing.T) {
	structures := []model.FeeStructure{
		{FeeStructureGrade: 10, FeeStructureFeeType: model.FeeTypeTuition, FeeStructureAcademicYearID: yearA, FeeStructureAmount: 50000},
	}

	t.Run("fresh term accepts part payment then caps the rest", func(t *testing.T) {
		grade, ok := ResolveGrade("Grade 10 A")
		if !ok {
			t.Fatal("grade should resolve")
		}
		fs, err := LookupFeeStructure(structures, grade, model.FeeTypeTuition, yearA)
		if err != nil {
			t.Fatalf("lookup: %v", err)
		}

		b := ComputeBalance(fs.FeeStructureAmount, true, nil, model.TermFirst, yearA)
		if b.Remaining != 50000 {
			t.Fatalf("remaining = %d, want 50000", b.Remaining)
		}
		if err := ValidatePayment(b, 20000); err != nil {
			t.Fatalf("20000 should be accepted: %v", err)
		}

		// payment lands; status derived server-side
		status := DeriveStatus(20000, fs.FeeStructureAmount, nil, time.Now())
		history := []model.FeeTransaction{txn(model.TermFirst, yearA, 20000, status)}

		b = ComputeBalance(fs.FeeStructureAmount, true, history, model.TermFirst, yearA)
		if b.Remaining != 30000 {
			t.Fatalf("remaining after payment = %d, want 30000", b.Remaining)
		}
		if err := ValidatePayment(b, 30001); !errors.Is(err, ErrExceedsBalance) {
			t.Errorf("exceeding payment must be rejected, got %v", err)
		}
	})

	t.Run("missing fee structure disables submission", func(t *testing.T) {
		_, err := LookupFeeStructure(structures, 11, model.FeeTypeTuition, yearA)
		if !errors.Is(err, ErrFeeStructureNotFound) {
			t.Fatalf("lookup error = %v, want ErrFeeStructureNotFound", err)
		}
		b := ComputeBalance(0, false, nil, model.TermFirst, yearA)
		for _, amount := range []int{1, 50000, 1000000} {
			if err := ValidatePayment(b, amount); !errors.Is(err, ErrFeeUnknown) {
				t.Errorf("ValidatePayment(%d) = %v, want ErrFeeUnknown", amount, err)
			}
		}
	})

	t.Run("label without any digits shows no fee", func(t *testing.T) {
		if _, ok := ResolveGrade("Reception"); ok {
			t.Fatal("digit-free label must not resolve")
		}
	})

	t.Run("already paid term rejects any further payment", func(t *testing.T) {
		history := []model.FeeTransaction{txn(model.TermFirst, yearA, 50000, model.TransactionStatusPaid)}
		b := ComputeBalance(50000, true, history, model.TermFirst, yearA)
		for _, amount := range []int{1, 100, 50000} {
			if err := ValidatePayment(b, amount); !errors.Is(err, ErrTermAlreadyPaid) {
				t.Errorf("ValidatePayment(%d) = %v, want ErrTermAlreadyPaid", amount, err)
			}
		}
	})
}
