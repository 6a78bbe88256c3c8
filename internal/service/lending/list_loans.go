package lending

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/heartmarshall/campus-lending/internal/domain"
)

// GetLoan returns a single loan record.
func (s *Service) GetLoan(ctx context.Context, loanID int64) (*domain.Loan, error) {
	if loanID <= 0 {
		return nil, domain.NewValidationError("loan_id", "must be positive")
	}

	loan, err := s.loans.GetByID(ctx, loanID)
	if err != nil {
		return nil, fmt.Errorf("get loan: %w", err)
	}
	return loan, nil
}

// ListLoans returns loan history matching the input, newest first.
func (s *Service) ListLoans(ctx context.Context, input ListLoansInput) ([]domain.Loan, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	loans, err := s.loans.List(ctx, input.filter())
	if err != nil {
		return nil, fmt.Errorf("list loans: %w", err)
	}
	return loans, nil
}

// ListOverdue returns active loans past their due date on today together
// with the fine each would be charged if returned today.
func (s *Service) ListOverdue(ctx context.Context, today time.Time) ([]domain.OverdueLoan, error) {
	if today.IsZero() {
		return nil, domain.NewValidationError("today", "required")
	}

	loans, err := s.loans.ListOverdue(ctx, today)
	if err != nil {
		return nil, fmt.Errorf("list overdue loans: %w", err)
	}

	overdue := make([]domain.OverdueLoan, 0, len(loans))
	for _, l := range loans {
		overdue = append(overdue, domain.OverdueLoan{
			Loan:        l,
			DaysOverdue: l.DaysOverdue(today),
			AccruedFine: s.policy.Fine(l.DueDate, today),
		})
	}
	return overdue, nil
}

// VerifyCopyCounts reconciles every book's available count against the ledger
// and returns the books that disagree. An empty result means the invariant holds.
func (s *Service) VerifyCopyCounts(ctx context.Context) ([]domain.CopyCountMismatch, error) {
	mismatches, err := s.books.FindCopyCountMismatches(ctx)
	if err != nil {
		return nil, fmt.Errorf("verify copy counts: %w", err)
	}

	for _, m := range mismatches {
		s.log.WarnContext(ctx, "copy count mismatch",
			slog.Int64("book_id", m.BookID),
			slog.Int("available_copies", m.AvailableCopies),
			slog.Int("expected_available", m.ExpectedAvailable()),
		)
	}
	return mismatches, nil
}
