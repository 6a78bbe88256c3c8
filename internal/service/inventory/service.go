// Package inventory implements the Inventory Store: the book catalog and the
// copy counts that lending keeps in step with the loan ledger.
package inventory

import (
	"context"
	"log/slog"
	"strings"

	"github.com/heartmarshall/campus-lending/internal/domain"
)

type bookRepo interface {
	GetByID(ctx context.Context, id int64) (*domain.Book, error)
	GetByIDForUpdate(ctx context.Context, id int64) (*domain.Book, error)
	ExistsByISBN(ctx context.Context, isbn string) (bool, error)
	List(ctx context.Context) ([]domain.Book, error)
	Search(ctx context.Context, term string) ([]domain.Book, error)
	Create(ctx context.Context, b *domain.Book) (int64, error)
	Update(ctx context.Context, id int64, upd domain.BookUpdate, availableCopies *int) error
	Delete(ctx context.Context, id int64) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service provides catalog operations.
type Service struct {
	books bookRepo
	tx    txManager
	log   *slog.Logger
}

// NewService creates a new Inventory service.
func NewService(log *slog.Logger, books bookRepo, tx txManager) *Service {
	return &Service{
		books: books,
		tx:    tx,
		log:   log.With("service", "inventory"),
	}
}

// trimPtr trims whitespace in place, keeping nil as "not provided".
func trimPtr(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	return &v
}
