package console

import (
	"context"
	"flag"

	"github.com/heartmarshall/campus-lending/internal/domain"
	"github.com/heartmarshall/campus-lending/internal/service/inventory"
	"github.com/heartmarshall/campus-lending/internal/service/lending"
)

// ---------------------------------------------------------------------------
// Inventory
// ---------------------------------------------------------------------------

func (h *Handler) addBook(ctx context.Context, fs *flag.FlagSet, args []string) (any, error) {
	title := fs.String("title", "", "book title")
	author := fs.String("author", "", "author")
	isbn := fs.String("isbn", "", "unique ISBN")
	publisher := fs.String("publisher", "", "publisher")
	year := fs.Int("year", 0, "year published")
	copies := fs.Int("copies", 1, "total copies")
	if err := parseFlags(fs, args); err != nil {
		return nil, err
	}

	input := inventory.AddBookInput{
		Title:       *title,
		Author:      *author,
		ISBN:        *isbn,
		Publisher:   *publisher,
		TotalCopies: *copies,
	}
	if isSet(fs, "year") {
		input.YearPublished = year
	}

	id, err := h.inventory.AddBook(ctx, input)
	if err != nil {
		return nil, err
	}
	return map[string]int64{"book_id": id}, nil
}

func (h *Handler) updateBook(ctx context.Context, fs *flag.FlagSet, args []string) (any, error) {
	id := fs.Int64("id", 0, "book id")
	title := fs.String("title", "", "book title")
	author := fs.String("author", "", "author")
	isbn := fs.String("isbn", "", "unique ISBN")
	publisher := fs.String("publisher", "", "publisher")
	year := fs.Int("year", 0, "year published")
	copies := fs.Int("copies", 0, "total copies")
	if err := parseFlags(fs, args); err != nil {
		return nil, err
	}

	// Only flags present on the command line become part of the update.
	var upd domain.BookUpdate
	if isSet(fs, "title") {
		upd.Title = title
	}
	if isSet(fs, "author") {
		upd.Author = author
	}
	if isSet(fs, "isbn") {
		upd.ISBN = isbn
	}
	if isSet(fs, "publisher") {
		upd.Publisher = publisher
	}
	if isSet(fs, "year") {
		upd.YearPublished = year
	}
	if isSet(fs, "copies") {
		upd.TotalCopies = copies
	}

	var book *domain.Book
	err := h.withRetry(ctx, func(ctx context.Context) error {
		var err error
		book, err = h.inventory.UpdateBook(ctx, inventory.UpdateBookInput{BookID: *id, Fields: upd})
		return err
	})
	if err != nil {
		return nil, err
	}
	return toBookView(*book), nil
}

func (h *Handler) deleteBook(ctx context.Context, fs *flag.FlagSet, args []string) (any, error) {
	id := fs.Int64("id", 0, "book id")
	if err := parseFlags(fs, args); err != nil {
		return nil, err
	}

	err := h.withRetry(ctx, func(ctx context.Context) error {
		return h.inventory.DeleteBook(ctx, *id)
	})
	if err != nil {
		return nil, err
	}
	return map[string]int64{"deleted_book_id": *id}, nil
}

func (h *Handler) getBook(ctx context.Context, fs *flag.FlagSet, args []string) (any, error) {
	id := fs.Int64("id", 0, "book id")
	if err := parseFlags(fs, args); err != nil {
		return nil, err
	}

	book, err := h.inventory.GetBook(ctx, *id)
	if err != nil {
		return nil, err
	}
	return toBookView(*book), nil
}

func (h *Handler) listBooks(ctx context.Context, fs *flag.FlagSet, args []string) (any, error) {
	if err := parseFlags(fs, args); err != nil {
		return nil, err
	}

	books, err := h.inventory.ListBooks(ctx)
	if err != nil {
		return nil, err
	}
	return toBookViews(books), nil
}

func (h *Handler) searchBooks(ctx context.Context, fs *flag.FlagSet, args []string) (any, error) {
	term := fs.String("term", "", "text to match in title, author, isbn or publisher")
	if err := parseFlags(fs, args); err != nil {
		return nil, err
	}

	books, err := h.inventory.SearchBooks(ctx, inventory.SearchBooksInput{Term: *term})
	if err != nil {
		return nil, err
	}
	return toBookViews(books), nil
}

// ---------------------------------------------------------------------------
// Lending
// ---------------------------------------------------------------------------

func (h *Handler) issue(ctx context.Context, fs *flag.FlagSet, args []string) (any, error) {
	bookID := fs.Int64("book", 0, "book id")
	borrowerID := fs.Int64("borrower", 0, "borrower (student) id")
	date := fs.String("date", "", "issue date, defaults to today")
	if err := parseFlags(fs, args); err != nil {
		return nil, err
	}

	today, err := h.parseDate("date", *date)
	if err != nil {
		return nil, err
	}

	var res *lending.IssueResult
	err = h.withRetry(ctx, func(ctx context.Context) error {
		var err error
		res, err = h.lending.IssueBook(ctx, lending.IssueBookInput{BookID: *bookID, BorrowerID: *borrowerID, Today: today})
		return err
	})
	if err != nil {
		return nil, err
	}
	return toLoanView(res.Loan), nil
}

func (h *Handler) returnLoan(ctx context.Context, fs *flag.FlagSet, args []string) (any, error) {
	loanID := fs.Int64("loan", 0, "loan id")
	date := fs.String("date", "", "return date, defaults to today")
	if err := parseFlags(fs, args); err != nil {
		return nil, err
	}

	today, err := h.parseDate("date", *date)
	if err != nil {
		return nil, err
	}

	var res *lending.ReturnResult
	err = h.withRetry(ctx, func(ctx context.Context) error {
		var err error
		res, err = h.lending.ReturnBook(ctx, lending.ReturnBookInput{LoanID: *loanID, Today: today})
		return err
	})
	if err != nil {
		return nil, err
	}
	return toReturnView(res), nil
}

func (h *Handler) getLoan(ctx context.Context, fs *flag.FlagSet, args []string) (any, error) {
	id := fs.Int64("id", 0, "loan id")
	if err := parseFlags(fs, args); err != nil {
		return nil, err
	}

	loan, err := h.lending.GetLoan(ctx, *id)
	if err != nil {
		return nil, err
	}
	return toLoanView(*loan), nil
}

func (h *Handler) loans(ctx context.Context, fs *flag.FlagSet, args []string) (any, error) {
	borrowerID := fs.Int64("borrower", 0, "borrower id")
	bookID := fs.Int64("book", 0, "book id")
	status := fs.String("status", "", "issued or returned")
	limit := fs.Int("limit", 0, "maximum rows")
	if err := parseFlags(fs, args); err != nil {
		return nil, err
	}

	loans, err := h.lending.ListLoans(ctx, lending.ListLoansInput{
		BorrowerID: *borrowerID,
		BookID:     *bookID,
		Status:     *status,
		Limit:      *limit,
	})
	if err != nil {
		return nil, err
	}
	return toLoanViews(loans), nil
}

func (h *Handler) overdue(ctx context.Context, fs *flag.FlagSet, args []string) (any, error) {
	date := fs.String("date", "", "reference date, defaults to today")
	if err := parseFlags(fs, args); err != nil {
		return nil, err
	}

	today, err := h.parseDate("date", *date)
	if err != nil {
		return nil, err
	}

	loans, err := h.lending.ListOverdue(ctx, today)
	if err != nil {
		return nil, err
	}
	return toOverdueViews(loans), nil
}

func (h *Handler) verify(ctx context.Context, fs *flag.FlagSet, args []string) (any, error) {
	if err := parseFlags(fs, args); err != nil {
		return nil, err
	}

	mismatches, err := h.lending.VerifyCopyCounts(ctx)
	if err != nil {
		return nil, err
	}
	return toMismatchViews(mismatches), nil
}
