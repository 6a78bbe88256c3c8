package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// LoanStatus is the lifecycle state of a loan. Returned is terminal.
type LoanStatus string

const (
	LoanStatusIssued   LoanStatus = "issued"
	LoanStatusReturned LoanStatus = "returned"
)

func (s LoanStatus) String() string { return string(s) }

func (s LoanStatus) IsValid() bool {
	switch s {
	case LoanStatusIssued, LoanStatusReturned:
		return true
	}
	return false
}

// Loan is one borrowing event of a book copy.
type Loan struct {
	ID               int64           `db:"issue_id"`
	BookID           int64           `db:"book_id"`
	BorrowerID       int64           `db:"student_id"`
	IssueDate        time.Time       `db:"issue_date"`
	DueDate          time.Time       `db:"return_date"`
	ActualReturnDate *time.Time      `db:"actual_return_date"`
	FineAmount       decimal.Decimal `db:"fine_amount"`
	Status           LoanStatus      `db:"status"`
}

// IsActive reports whether the loan has not been returned yet.
func (l Loan) IsActive() bool {
	return l.Status == LoanStatusIssued
}

// DaysOverdue returns how many whole days past the due date on is; zero if not late.
func (l Loan) DaysOverdue(on time.Time) int {
	return max(0, DaysBetween(l.DueDate, on))
}

// LoanFilter selects loans from the ledger. Nil fields are not applied.
type LoanFilter struct {
	BorrowerID *int64
	BookID     *int64
	Status     *LoanStatus
	Limit      int
}

// OverdueLoan is an active loan past its due date with the fine accrued so far.
type OverdueLoan struct {
	Loan
	DaysOverdue int
	AccruedFine decimal.Decimal
}

// DateOf truncates t to a calendar date at UTC midnight.
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DaysBetween returns the number of calendar days from a to b (negative if b is before a).
func DaysBetween(a, b time.Time) int {
	return int(DateOf(b).Sub(DateOf(a)).Hours() / 24)
}
