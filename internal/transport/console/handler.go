// Package console exposes the lending subsystem as one-shot commands that
// return a structured Outcome instead of raising errors to the caller.
package console

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"sort"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"

	"github.com/heartmarshall/campus-lending/internal/domain"
	"github.com/heartmarshall/campus-lending/internal/service/inventory"
	"github.com/heartmarshall/campus-lending/internal/service/lending"
	"github.com/heartmarshall/campus-lending/pkg/ctxutil"
	"github.com/heartmarshall/campus-lending/pkg/retry"
)

type inventoryService interface {
	AddBook(ctx context.Context, input inventory.AddBookInput) (int64, error)
	UpdateBook(ctx context.Context, input inventory.UpdateBookInput) (*domain.Book, error)
	DeleteBook(ctx context.Context, bookID int64) error
	GetBook(ctx context.Context, bookID int64) (*domain.Book, error)
	ListBooks(ctx context.Context) ([]domain.Book, error)
	SearchBooks(ctx context.Context, input inventory.SearchBooksInput) ([]domain.Book, error)
}

type lendingService interface {
	IssueBook(ctx context.Context, input lending.IssueBookInput) (*lending.IssueResult, error)
	ReturnBook(ctx context.Context, input lending.ReturnBookInput) (*lending.ReturnResult, error)
	GetLoan(ctx context.Context, loanID int64) (*domain.Loan, error)
	ListLoans(ctx context.Context, input lending.ListLoansInput) ([]domain.Loan, error)
	ListOverdue(ctx context.Context, today time.Time) ([]domain.OverdueLoan, error)
	VerifyCopyCounts(ctx context.Context) ([]domain.CopyCountMismatch, error)
}

// RetryPolicy controls how Busy failures of mutating commands are retried.
type RetryPolicy struct {
	Attempts  int
	BaseDelay time.Duration
}

type command struct {
	usage string
	run   func(ctx context.Context, fs *flag.FlagSet, args []string) (any, error)
}

// Handler parses console commands and dispatches them to the services.
type Handler struct {
	inventory inventoryService
	lending   lendingService
	retry     RetryPolicy
	now       func() time.Time
	log       *slog.Logger
	commands  map[string]command
}

// NewHandler creates a console Handler.
func NewHandler(log *slog.Logger, inv inventoryService, lend lendingService, rp RetryPolicy) *Handler {
	h := &Handler{
		inventory: inv,
		lending:   lend,
		retry:     rp,
		now:       time.Now,
		log:       log.With("transport", "console"),
	}
	h.commands = map[string]command{
		"add-book":     {"-title T -isbn I [-author A] [-publisher P] [-year Y] [-copies N]", h.addBook},
		"update-book":  {"-id N [-title T] [-author A] [-isbn I] [-publisher P] [-year Y] [-copies N]", h.updateBook},
		"delete-book":  {"-id N", h.deleteBook},
		"get-book":     {"-id N", h.getBook},
		"list-books":   {"", h.listBooks},
		"search-books": {"-term T", h.searchBooks},
		"issue":        {"-book N -borrower N [-date YYYY-MM-DD]", h.issue},
		"return":       {"-loan N [-date YYYY-MM-DD]", h.returnLoan},
		"get-loan":     {"-id N", h.getLoan},
		"loans":        {"[-borrower N] [-book N] [-status issued|returned] [-limit N]", h.loans},
		"overdue":      {"[-date YYYY-MM-DD]", h.overdue},
		"verify":       {"", h.verify},
	}
	return h
}

// Execute runs one command given as argv-style arguments and reports its outcome.
func (h *Handler) Execute(ctx context.Context, args []string) Outcome {
	ctx, opID := ctxutil.NewOperationID(ctx)

	if len(args) == 0 {
		return Present(ctx, h.log, domain.NewValidationError("command", "required; one of: "+h.commandList()))
	}

	name := args[0]
	cmd, ok := h.commands[name]
	if !ok {
		return Present(ctx, h.log, domain.NewValidationError("command", fmt.Sprintf("unknown command %q; one of: %s", name, h.commandList())))
	}

	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	start := time.Now()
	data, err := cmd.run(ctx, fs, args[1:])
	if err != nil {
		h.log.DebugContext(ctx, "command failed",
			slog.String("command", name),
			slog.String("operation_id", opID),
			slog.String("error", err.Error()),
		)
		return Present(ctx, h.log, err)
	}

	h.log.DebugContext(ctx, "command completed",
		slog.String("command", name),
		slog.String("operation_id", opID),
		slog.Duration("duration", time.Since(start)),
	)
	return Success(ctx, data)
}

// Usage returns a help text listing every command and its flags.
func (h *Handler) Usage() string {
	names := h.commandNames()
	var b strings.Builder
	b.WriteString("commands:\n")
	for _, n := range names {
		fmt.Fprintf(&b, "  %-13s %s\n", n, h.commands[n].usage)
	}
	return b.String()
}

// Write renders an outcome as a single JSON document followed by a newline.
func Write(w io.Writer, out Outcome) error {
	enc := jsoniter.ConfigCompatibleWithStandardLibrary.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func (h *Handler) commandNames() []string {
	names := make([]string, 0, len(h.commands))
	for n := range h.commands {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

func (h *Handler) commandList() string {
	return strings.Join(h.commandNames(), ", ")
}

// withRetry re-runs fn while it fails with domain.ErrBusy.
func (h *Handler) withRetry(ctx context.Context, fn func(ctx context.Context) error) error {
	return retry.OnBusy(ctx, h.retry.Attempts, h.retry.BaseDelay, fn)
}

// ---------------------------------------------------------------------------
// Flag helpers
// ---------------------------------------------------------------------------

func parseFlags(fs *flag.FlagSet, args []string) error {
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return domain.NewValidationError("flags", "help requested")
		}
		return domain.NewValidationError("flags", err.Error())
	}
	if fs.NArg() > 0 {
		return domain.NewValidationError("flags", fmt.Sprintf("unexpected argument %q", fs.Arg(0)))
	}
	return nil
}

// isSet reports whether the flag was given on the command line.
func isSet(fs *flag.FlagSet, name string) bool {
	found := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == name {
			found = true
		}
	})
	return found
}

// parseDate reads a YYYY-MM-DD date, defaulting to today when empty.
func (h *Handler) parseDate(field, value string) (time.Time, error) {
	if value == "" {
		return domain.DateOf(h.now()), nil
	}
	t, err := time.Parse(DateLayout, value)
	if err != nil {
		return time.Time{}, domain.NewValidationError(field, "must be a date in YYYY-MM-DD format")
	}
	return t, nil
}
