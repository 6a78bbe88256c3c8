// Package loan implements the Loan Ledger: persistence of issue records and
// their lifecycle status. It performs no business validation beyond lookups.
package loan

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/shopspring/decimal"

	postgres "github.com/heartmarshall/campus-lending/internal/adapter/postgres"
	"github.com/heartmarshall/campus-lending/internal/domain"
)

const (
	table = "book_issues"

	colID               = "issue_id"
	colBookID           = "book_id"
	colStudentID        = "student_id"
	colIssueDate        = "issue_date"
	colReturnDate       = "return_date"
	colActualReturnDate = "actual_return_date"
	colFineAmount       = "fine_amount"
	colStatus           = "status"

	activeLoanIndex = "book_issues_active_uidx"

	defaultListLimit = 100
	maxListLimit     = 1000
)

var columns = []string{
	colID, colBookID, colStudentID, colIssueDate, colReturnDate,
	colActualReturnDate, colFineAmount, colStatus,
}

// Repo provides loan persistence backed by PostgreSQL.
type Repo struct {
	gw *postgres.Gateway
}

// New creates a new loan repository.
func New(db postgres.Querier) *Repo {
	return &Repo{gw: postgres.NewGateway(db)}
}

func selectLoans() sq.SelectBuilder {
	return postgres.Builder().Select(columns...).From(table)
}

// Create inserts an issued loan and returns its id.
// Returns domain.ErrConflict if the borrower already holds an active loan for the book.
func (r *Repo) Create(ctx context.Context, bookID, borrowerID int64, issueDate, dueDate time.Time) (int64, error) {
	insert := postgres.Builder().
		Insert(table).
		Columns(colBookID, colStudentID, colIssueDate, colReturnDate, colFineAmount, colStatus).
		Values(bookID, borrowerID, domain.DateOf(issueDate), domain.DateOf(dueDate), decimal.Zero, domain.LoanStatusIssued.String()).
		Suffix("RETURNING " + colID)

	var id int64
	if err := r.gw.FetchOne(ctx, &id, insert); err != nil {
		if postgres.IsUniqueViolation(err, activeLoanIndex) {
			return 0, fmt.Errorf("loan book %d borrower %d: %w", bookID, borrowerID, domain.ErrConflict)
		}
		return 0, postgres.MapError(err, "loan book", bookID)
	}
	return id, nil
}

// GetByID returns a loan by primary key.
// Returns domain.ErrNotFound if the loan does not exist.
func (r *Repo) GetByID(ctx context.Context, id int64) (*domain.Loan, error) {
	var l domain.Loan
	if err := r.gw.FetchOne(ctx, &l, selectLoans().Where(sq.Eq{colID: id})); err != nil {
		return nil, postgres.MapError(err, "loan", id)
	}
	return &l, nil
}

// GetByIDForUpdate returns a loan and locks its row for the rest of the transaction.
func (r *Repo) GetByIDForUpdate(ctx context.Context, id int64) (*domain.Loan, error) {
	if !postgres.InTx(ctx) {
		return nil, fmt.Errorf("loan %d: row lock requested outside a transaction", id)
	}

	var l domain.Loan
	if err := r.gw.FetchOne(ctx, &l, selectLoans().Where(sq.Eq{colID: id}).Suffix("FOR UPDATE")); err != nil {
		return nil, postgres.MapError(err, "loan", id)
	}
	return &l, nil
}

// FindActive returns the issued loan for (bookID, borrowerID), or nil if none exists.
func (r *Repo) FindActive(ctx context.Context, bookID, borrowerID int64) (*domain.Loan, error) {
	loans := []domain.Loan{}
	query := selectLoans().
		Where(sq.Eq{
			colBookID:    bookID,
			colStudentID: borrowerID,
			colStatus:    domain.LoanStatusIssued.String(),
		}).
		Limit(1)

	if err := r.gw.FetchAll(ctx, &loans, query); err != nil {
		return nil, postgres.MapError(err, "active loan book", bookID)
	}
	if len(loans) == 0 {
		return nil, nil
	}
	return &loans[0], nil
}

// Close marks an issued loan as returned. The status guard makes the
// transition one-way: closing a returned loan yields domain.ErrInvalidState.
func (r *Repo) Close(ctx context.Context, id int64, actualReturnDate time.Time, fine decimal.Decimal) error {
	stmt := postgres.Builder().
		Update(table).
		Set(colActualReturnDate, domain.DateOf(actualReturnDate)).
		Set(colFineAmount, fine).
		Set(colStatus, domain.LoanStatusReturned.String()).
		Where(sq.Eq{colID: id, colStatus: domain.LoanStatusIssued.String()})

	affected, err := r.gw.Execute(ctx, stmt)
	if err != nil {
		return postgres.MapError(err, "loan", id)
	}
	if affected == 1 {
		return nil
	}

	// Distinguish a missing loan from one that is already returned.
	if _, err := r.GetByID(ctx, id); err != nil {
		return err
	}
	return fmt.Errorf("loan %d: already returned: %w", id, domain.ErrInvalidState)
}

// List returns loans matching the filter, newest first.
func (r *Repo) List(ctx context.Context, filter domain.LoanFilter) ([]domain.Loan, error) {
	query := selectLoans().OrderBy(colIssueDate+" DESC", colID+" DESC")

	eq := sq.Eq{}
	if filter.BorrowerID != nil {
		eq[colStudentID] = *filter.BorrowerID
	}
	if filter.BookID != nil {
		eq[colBookID] = *filter.BookID
	}
	if filter.Status != nil {
		eq[colStatus] = filter.Status.String()
	}
	if len(eq) > 0 {
		query = query.Where(eq)
	}

	query = query.Limit(uint64(clampLimit(filter.Limit)))

	loans := []domain.Loan{}
	if err := r.gw.FetchAll(ctx, &loans, query); err != nil {
		return nil, postgres.MapError(err, "loans", "list")
	}
	return loans, nil
}

// ListOverdue returns active loans whose due date is strictly before asOf, oldest due first.
func (r *Repo) ListOverdue(ctx context.Context, asOf time.Time) ([]domain.Loan, error) {
	query := selectLoans().
		Where(sq.Eq{colStatus: domain.LoanStatusIssued.String()}).
		Where(sq.Lt{colReturnDate: domain.DateOf(asOf)}).
		OrderBy(colReturnDate, colID)

	loans := []domain.Loan{}
	if err := r.gw.FetchAll(ctx, &loans, query); err != nil {
		return nil, postgres.MapError(err, "loans", "overdue")
	}
	return loans, nil
}

func clampLimit(n int) int {
	if n <= 0 {
		return defaultListLimit
	}
	return min(n, maxListLimit)
}
