package inventory

import (
	"context"
	"fmt"
	"strings"

	"github.com/heartmarshall/campus-lending/internal/domain"
)

// GetBook returns a single book.
func (s *Service) GetBook(ctx context.Context, bookID int64) (*domain.Book, error) {
	if bookID <= 0 {
		return nil, domain.NewValidationError("book_id", "must be positive")
	}

	book, err := s.books.GetByID(ctx, bookID)
	if err != nil {
		return nil, fmt.Errorf("get book: %w", err)
	}
	return book, nil
}

// ListBooks returns the whole catalog ordered by title.
func (s *Service) ListBooks(ctx context.Context) ([]domain.Book, error) {
	books, err := s.books.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list books: %w", err)
	}
	return books, nil
}

// SearchBooks matches the term case-insensitively against title, author,
// isbn and publisher.
func (s *Service) SearchBooks(ctx context.Context, input SearchBooksInput) ([]domain.Book, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	books, err := s.books.Search(ctx, strings.TrimSpace(input.Term))
	if err != nil {
		return nil, fmt.Errorf("search books: %w", err)
	}
	return books, nil
}
