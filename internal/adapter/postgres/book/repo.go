// Package book implements the Inventory Store persistence for catalog entries
// and their copy counts using PostgreSQL.
package book

import (
	"context"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"

	postgres "github.com/heartmarshall/campus-lending/internal/adapter/postgres"
	"github.com/heartmarshall/campus-lending/internal/domain"
)

const (
	table = "books"

	colID              = "book_id"
	colTitle           = "title"
	colAuthor          = "author"
	colISBN            = "isbn"
	colPublisher       = "publisher"
	colYearPublished   = "year_published"
	colTotalCopies     = "total_copies"
	colAvailableCopies = "available_copies"
)

var columns = []string{
	colID, colTitle, colAuthor, colISBN, colPublisher,
	colYearPublished, colTotalCopies, colAvailableCopies,
}

// Repo provides book persistence backed by PostgreSQL.
type Repo struct {
	gw *postgres.Gateway
}

// New creates a new book repository.
func New(db postgres.Querier) *Repo {
	return &Repo{gw: postgres.NewGateway(db)}
}

func selectBooks() sq.SelectBuilder {
	return postgres.Builder().Select(columns...).From(table)
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a book by primary key.
// Returns domain.ErrNotFound if the book does not exist.
func (r *Repo) GetByID(ctx context.Context, id int64) (*domain.Book, error) {
	var b domain.Book
	if err := r.gw.FetchOne(ctx, &b, selectBooks().Where(sq.Eq{colID: id})); err != nil {
		return nil, postgres.MapError(err, "book", id)
	}
	return &b, nil
}

// GetByIDForUpdate returns a book and locks its row until the surrounding
// transaction ends. Must be called inside TxManager.RunInTx.
func (r *Repo) GetByIDForUpdate(ctx context.Context, id int64) (*domain.Book, error) {
	if !postgres.InTx(ctx) {
		return nil, fmt.Errorf("book %d: row lock requested outside a transaction", id)
	}

	var b domain.Book
	query := selectBooks().Where(sq.Eq{colID: id}).Suffix("FOR UPDATE")
	if err := r.gw.FetchOne(ctx, &b, query); err != nil {
		return nil, postgres.MapError(err, "book", id)
	}
	return &b, nil
}

// ExistsByISBN reports whether a book with the given ISBN is already cataloged.
func (r *Repo) ExistsByISBN(ctx context.Context, isbn string) (bool, error) {
	var exists bool
	query := postgres.Builder().
		Select("1").
		Prefix("SELECT EXISTS (").
		From(table).
		Where(sq.Eq{colISBN: isbn}).
		Suffix(")")
	if err := r.gw.FetchOne(ctx, &exists, query); err != nil {
		return false, postgres.MapError(err, "book isbn", isbn)
	}
	return exists, nil
}

// List returns every book ordered by title.
// Returns an empty slice (not nil) when the catalog is empty.
func (r *Repo) List(ctx context.Context) ([]domain.Book, error) {
	books := []domain.Book{}
	if err := r.gw.FetchAll(ctx, &books, selectBooks().OrderBy(colTitle, colID)); err != nil {
		return nil, postgres.MapError(err, "books", "list")
	}
	return books, nil
}

// Search performs a case-insensitive substring match over title, author, isbn
// and publisher, ordered by title. LIKE wildcards in term are matched literally.
func (r *Repo) Search(ctx context.Context, term string) ([]domain.Book, error) {
	pattern := "%" + escapeLike(term) + "%"

	query := selectBooks().
		Where(sq.Or{
			sq.ILike{colTitle: pattern},
			sq.ILike{colAuthor: pattern},
			sq.ILike{colISBN: pattern},
			sq.ILike{colPublisher: pattern},
		}).
		OrderBy(colTitle, colID)

	books := []domain.Book{}
	if err := r.gw.FetchAll(ctx, &books, query); err != nil {
		return nil, postgres.MapError(err, "books search", term)
	}
	return books, nil
}

const copyCountMismatchSQL = `
SELECT b.book_id, b.total_copies, b.available_copies, count(i.issue_id) AS active_loans
FROM books b
LEFT JOIN book_issues i ON i.book_id = b.book_id AND i.status = 'issued'
GROUP BY b.book_id, b.total_copies, b.available_copies
HAVING b.available_copies <> b.total_copies - count(i.issue_id)
ORDER BY b.book_id`

// FindCopyCountMismatches returns books whose available count disagrees with
// the number of active loans in the ledger. Empty when the invariant holds.
func (r *Repo) FindCopyCountMismatches(ctx context.Context) ([]domain.CopyCountMismatch, error) {
	result := []domain.CopyCountMismatch{}
	if err := r.gw.FetchAll(ctx, &result, sq.Expr(copyCountMismatchSQL)); err != nil {
		return nil, postgres.MapError(err, "books", "verify copy counts")
	}
	return result, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new book with available copies equal to total copies and
// returns its id. Returns domain.ErrAlreadyExists on an ISBN collision.
func (r *Repo) Create(ctx context.Context, b *domain.Book) (int64, error) {
	insert := postgres.Builder().
		Insert(table).
		Columns(colTitle, colAuthor, colISBN, colPublisher, colYearPublished, colTotalCopies, colAvailableCopies).
		Values(b.Title, b.Author, b.ISBN, b.Publisher, b.YearPublished, b.TotalCopies, b.TotalCopies).
		Suffix("RETURNING " + colID)

	var id int64
	if err := r.gw.FetchOne(ctx, &id, insert); err != nil {
		return 0, postgres.MapError(err, "book isbn", b.ISBN)
	}
	return id, nil
}

// Update applies the sparse descriptor to a book. When availableCopies is non-nil
// it is written in the same statement as the descriptor's total copies.
// Returns domain.ErrNotFound if the book does not exist.
func (r *Repo) Update(ctx context.Context, id int64, upd domain.BookUpdate, availableCopies *int) error {
	set := setClause(upd)
	if availableCopies != nil {
		set[colAvailableCopies] = *availableCopies
	}
	if len(set) == 0 {
		return nil
	}

	stmt := postgres.Builder().Update(table).SetMap(set).Where(sq.Eq{colID: id})

	affected, err := r.gw.Execute(ctx, stmt)
	if err != nil {
		return postgres.MapError(err, "book", id)
	}
	if affected == 0 {
		return fmt.Errorf("book %d: %w", id, domain.ErrNotFound)
	}
	return nil
}

// AdjustAvailable changes available copies by delta, refusing any change that
// would leave the count outside [0, total_copies].
// Returns domain.ErrInvalidState when the guard rejects the change.
func (r *Repo) AdjustAvailable(ctx context.Context, id int64, delta int) error {
	stmt := postgres.Builder().
		Update(table).
		Set(colAvailableCopies, sq.Expr(colAvailableCopies+" + ?", delta)).
		Where(sq.Eq{colID: id}).
		Where(sq.Expr(colAvailableCopies+" + ? BETWEEN 0 AND "+colTotalCopies, delta))

	affected, err := r.gw.Execute(ctx, stmt)
	if err != nil {
		return postgres.MapError(err, "book", id)
	}
	if affected == 0 {
		return fmt.Errorf("book %d: adjust available copies by %d: %w", id, delta, domain.ErrInvalidState)
	}
	return nil
}

// Delete removes a book. Returns domain.ErrNotFound if it does not exist.
// Loan history referencing the book is kept.
func (r *Repo) Delete(ctx context.Context, id int64) error {
	affected, err := r.gw.Execute(ctx, postgres.Builder().Delete(table).Where(sq.Eq{colID: id}))
	if err != nil {
		return postgres.MapError(err, "book", id)
	}
	if affected == 0 {
		return fmt.Errorf("book %d: %w", id, domain.ErrNotFound)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

// setClause maps the descriptor onto fixed column names. Column names never
// come from caller input.
func setClause(upd domain.BookUpdate) map[string]any {
	set := make(map[string]any)
	if upd.Title != nil {
		set[colTitle] = *upd.Title
	}
	if upd.Author != nil {
		set[colAuthor] = *upd.Author
	}
	if upd.ISBN != nil {
		set[colISBN] = *upd.ISBN
	}
	if upd.Publisher != nil {
		set[colPublisher] = *upd.Publisher
	}
	if upd.YearPublished != nil {
		set[colYearPublished] = *upd.YearPublished
	}
	if upd.TotalCopies != nil {
		set[colTotalCopies] = *upd.TotalCopies
	}
	return set
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
