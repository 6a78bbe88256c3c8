package inventory

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/campus-lending/internal/domain"
)

// AddBook catalogs a new book with all of its copies available and returns its id.
// Returns domain.ErrAlreadyExists if the ISBN is already cataloged.
func (s *Service) AddBook(ctx context.Context, input AddBookInput) (int64, error) {
	if err := input.Validate(); err != nil {
		return 0, err
	}

	book := &domain.Book{
		Title:         strings.TrimSpace(input.Title),
		Author:        strings.TrimSpace(input.Author),
		ISBN:          strings.TrimSpace(input.ISBN),
		Publisher:     strings.TrimSpace(input.Publisher),
		YearPublished: input.YearPublished,
		TotalCopies:   input.TotalCopies,
	}

	exists, err := s.books.ExistsByISBN(ctx, book.ISBN)
	if err != nil {
		return 0, fmt.Errorf("check isbn: %w", err)
	}
	if exists {
		return 0, fmt.Errorf("book isbn %s: %w", book.ISBN, domain.ErrAlreadyExists)
	}

	// The unique constraint still guards a concurrent insert of the same ISBN.
	id, err := s.books.Create(ctx, book)
	if err != nil {
		return 0, fmt.Errorf("create book: %w", err)
	}

	s.log.InfoContext(ctx, "book added",
		slog.Int64("book_id", id),
		slog.String("isbn", book.ISBN),
		slog.Int("total_copies", book.TotalCopies),
	)

	return id, nil
}
