package lending

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/campus-lending/internal/domain"
)

// ReturnBook closes an issued loan, charges the fine for late days and puts
// the copy back into inventory. Returning a loan twice yields domain.ErrInvalidState.
func (s *Service) ReturnBook(ctx context.Context, input ReturnBookInput) (*ReturnResult, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	returnDate := domain.DateOf(input.Today)

	var result ReturnResult
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		loan, err := s.loans.GetByIDForUpdate(txCtx, input.LoanID)
		if err != nil {
			return fmt.Errorf("get loan: %w", err)
		}

		if !loan.IsActive() {
			return fmt.Errorf("loan %d: already returned: %w", loan.ID, domain.ErrInvalidState)
		}

		// Lock order is loan then book; issue only ever takes the book lock.
		if _, err := s.books.GetByIDForUpdate(txCtx, loan.BookID); err != nil {
			return fmt.Errorf("get book: %w", err)
		}

		fine := s.policy.Fine(loan.DueDate, returnDate)

		if err := s.loans.Close(txCtx, loan.ID, returnDate, fine); err != nil {
			return fmt.Errorf("close loan: %w", err)
		}

		if err := s.books.AdjustAvailable(txCtx, loan.BookID, 1); err != nil {
			return fmt.Errorf("increment available copies: %w", err)
		}

		loan.Status = domain.LoanStatusReturned
		loan.ActualReturnDate = &returnDate
		loan.FineAmount = fine

		result = ReturnResult{
			Fine:        fine,
			DaysOverdue: loan.DaysOverdue(returnDate),
			Loan:        *loan,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "book returned",
		slog.Int64("loan_id", result.Loan.ID),
		slog.Int64("book_id", result.Loan.BookID),
		slog.Int("days_overdue", result.DaysOverdue),
		slog.String("fine", result.Fine.StringFixed(2)),
	)

	return &result, nil
}
