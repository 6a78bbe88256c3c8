package inventory

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/campus-lending/internal/domain"
)

// DeleteBook removes a book from the catalog.
// Returns domain.ErrInvalidState while any copy is out on loan.
func (s *Service) DeleteBook(ctx context.Context, bookID int64) error {
	if bookID <= 0 {
		return domain.NewValidationError("book_id", "must be positive")
	}

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		book, err := s.books.GetByIDForUpdate(txCtx, bookID)
		if err != nil {
			return fmt.Errorf("get book: %w", err)
		}

		if book.HasOutstandingCopies() {
			return fmt.Errorf("book %d: %d copies on loan: %w", bookID, book.IssuedCopies(), domain.ErrInvalidState)
		}

		if err := s.books.Delete(txCtx, bookID); err != nil {
			return fmt.Errorf("delete book: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.log.InfoContext(ctx, "book deleted", slog.Int64("book_id", bookID))

	return nil
}
