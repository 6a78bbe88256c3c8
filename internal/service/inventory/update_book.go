package inventory

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/campus-lending/internal/domain"
)

// UpdateBook applies a sparse update to a book. Changing the total copies
// recomputes the available copies so that loans on record stay covered.
// Returns domain.ErrInvalidState if the new total is below the issued count.
func (s *Service) UpdateBook(ctx context.Context, input UpdateBookInput) (*domain.Book, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	upd := input.Fields
	upd.Title = trimPtr(upd.Title)
	upd.Author = trimPtr(upd.Author)
	upd.ISBN = trimPtr(upd.ISBN)
	upd.Publisher = trimPtr(upd.Publisher)

	var updated *domain.Book
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		current, err := s.books.GetByIDForUpdate(txCtx, input.BookID)
		if err != nil {
			return fmt.Errorf("get book: %w", err)
		}

		var available *int
		if upd.TotalCopies != nil {
			issued := current.IssuedCopies()
			if *upd.TotalCopies < issued {
				return fmt.Errorf("book %d: total copies %d below %d issued: %w",
					input.BookID, *upd.TotalCopies, issued, domain.ErrInvalidState)
			}
			n := *upd.TotalCopies - issued
			available = &n
		}

		if err := s.books.Update(txCtx, input.BookID, upd, available); err != nil {
			return fmt.Errorf("update book: %w", err)
		}

		updated, err = s.books.GetByID(txCtx, input.BookID)
		if err != nil {
			return fmt.Errorf("reload book: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "book updated",
		slog.Int64("book_id", updated.ID),
		slog.Int("total_copies", updated.TotalCopies),
		slog.Int("available_copies", updated.AvailableCopies),
	)

	return updated, nil
}
