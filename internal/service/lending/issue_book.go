package lending

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/campus-lending/internal/domain"
)

// IssueBook lends one copy of a book to a borrower. The book row stays locked
// until the loan is recorded and the available count is decremented, so two
// callers racing for the last copy cannot both succeed.
func (s *Service) IssueBook(ctx context.Context, input IssueBookInput) (*IssueResult, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	issueDate := domain.DateOf(input.Today)
	dueDate := s.policy.DueDate(issueDate)

	var loanID int64
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		book, err := s.books.GetByIDForUpdate(txCtx, input.BookID)
		if err != nil {
			return fmt.Errorf("get book: %w", err)
		}

		if book.AvailableCopies <= 0 {
			return fmt.Errorf("book %d %q: no copies available: %w", book.ID, book.Title, domain.ErrUnavailable)
		}

		exists, err := s.borrowers.Exists(txCtx, input.BorrowerID)
		if err != nil {
			return fmt.Errorf("check borrower: %w", err)
		}
		if !exists {
			return fmt.Errorf("borrower %d: %w", input.BorrowerID, domain.ErrNotFound)
		}

		active, err := s.loans.FindActive(txCtx, input.BookID, input.BorrowerID)
		if err != nil {
			return fmt.Errorf("find active loan: %w", err)
		}
		if active != nil {
			return fmt.Errorf("borrower %d already holds book %d on loan %d: %w",
				input.BorrowerID, input.BookID, active.ID, domain.ErrConflict)
		}

		loanID, err = s.loans.Create(txCtx, input.BookID, input.BorrowerID, issueDate, dueDate)
		if err != nil {
			return fmt.Errorf("create loan: %w", err)
		}

		if err := s.books.AdjustAvailable(txCtx, input.BookID, -1); err != nil {
			return fmt.Errorf("decrement available copies: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "book issued",
		slog.Int64("loan_id", loanID),
		slog.Int64("book_id", input.BookID),
		slog.Int64("borrower_id", input.BorrowerID),
		slog.Time("due_date", dueDate),
	)

	return &IssueResult{
		LoanID:  loanID,
		DueDate: dueDate,
		Loan: domain.Loan{
			ID:         loanID,
			BookID:     input.BookID,
			BorrowerID: input.BorrowerID,
			IssueDate:  issueDate,
			DueDate:    dueDate,
			Status:     domain.LoanStatusIssued,
		},
	}, nil
}
