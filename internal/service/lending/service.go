// Package lending implements the Lending Engine: it issues and returns book
// copies, keeping the loan ledger and the inventory copy counts in one unit of work.
package lending

import (
	"context"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"github.com/heartmarshall/campus-lending/internal/domain"
)

type bookRepo interface {
	GetByIDForUpdate(ctx context.Context, id int64) (*domain.Book, error)
	AdjustAvailable(ctx context.Context, id int64, delta int) error
	FindCopyCountMismatches(ctx context.Context) ([]domain.CopyCountMismatch, error)
}

type loanRepo interface {
	Create(ctx context.Context, bookID, borrowerID int64, issueDate, dueDate time.Time) (int64, error)
	GetByID(ctx context.Context, id int64) (*domain.Loan, error)
	GetByIDForUpdate(ctx context.Context, id int64) (*domain.Loan, error)
	FindActive(ctx context.Context, bookID, borrowerID int64) (*domain.Loan, error)
	Close(ctx context.Context, id int64, actualReturnDate time.Time, fine decimal.Decimal) error
	List(ctx context.Context, filter domain.LoanFilter) ([]domain.Loan, error)
	ListOverdue(ctx context.Context, asOf time.Time) ([]domain.Loan, error)
}

type borrowerDirectory interface {
	Exists(ctx context.Context, borrowerID int64) (bool, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Policy holds the lending rules: how long a loan lasts and what a late day costs.
type Policy struct {
	LoanPeriodDays int
	FineRatePerDay decimal.Decimal
}

// DefaultPolicy is a 14-day loan with a fine of 2 per late day.
func DefaultPolicy() Policy {
	return Policy{LoanPeriodDays: 14, FineRatePerDay: decimal.NewFromInt(2)}
}

// DueDate returns the due date of a loan issued on the given day.
func (p Policy) DueDate(issued time.Time) time.Time {
	return domain.DateOf(issued).AddDate(0, 0, p.LoanPeriodDays)
}

// Fine returns the fine for a loan due on due and returned on returned:
// the rate times the whole days late, zero when returned on or before the due date.
func (p Policy) Fine(due, returned time.Time) decimal.Decimal {
	days := max(0, domain.DaysBetween(due, returned))
	return p.FineRatePerDay.Mul(decimal.NewFromInt(int64(days)))
}

// Service provides issue and return operations.
type Service struct {
	books     bookRepo
	loans     loanRepo
	borrowers borrowerDirectory
	tx        txManager
	policy    Policy
	log       *slog.Logger
}

// NewService creates a new Lending service.
func NewService(
	log *slog.Logger,
	books bookRepo,
	loans loanRepo,
	borrowers borrowerDirectory,
	tx txManager,
	policy Policy,
) *Service {
	return &Service{
		books:     books,
		loans:     loans,
		borrowers: borrowers,
		tx:        tx,
		policy:    policy,
		log:       log.With("service", "lending"),
	}
}
