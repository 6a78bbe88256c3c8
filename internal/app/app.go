package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/campus-lending/internal/adapter/postgres"
	"github.com/heartmarshall/campus-lending/internal/adapter/postgres/book"
	"github.com/heartmarshall/campus-lending/internal/adapter/postgres/borrower"
	"github.com/heartmarshall/campus-lending/internal/adapter/postgres/loan"
	"github.com/heartmarshall/campus-lending/internal/config"
	"github.com/heartmarshall/campus-lending/internal/service/inventory"
	"github.com/heartmarshall/campus-lending/internal/service/lending"
	"github.com/heartmarshall/campus-lending/internal/transport/console"
)

// App holds the wired lending subsystem for one process.
type App struct {
	pool    *pgxpool.Pool
	handler *console.Handler
	log     *slog.Logger
}

// New connects to the database and wires repositories, services, and the
// console handler. The caller owns the returned App and must Close it.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	txm := postgres.NewTxManager(pool, cfg.Database.LockTimeout)

	books := book.New(pool)
	loans := loan.New(pool)
	borrowers := borrower.New(pool)

	inventorySvc := inventory.NewService(logger, books, txm)
	lendingSvc := lending.NewService(logger, books, loans, borrowers, txm, lending.Policy{
		LoanPeriodDays: cfg.Lending.LoanPeriodDays,
		FineRatePerDay: cfg.Lending.FineRatePerDay,
	})

	handler := console.NewHandler(logger, inventorySvc, lendingSvc, console.RetryPolicy{
		Attempts:  cfg.Lending.BusyRetryAttempts,
		BaseDelay: cfg.Lending.BusyRetryBaseDelay,
	})

	return &App{pool: pool, handler: handler, log: logger}, nil
}

// Execute runs one console command.
func (a *App) Execute(ctx context.Context, args []string) console.Outcome {
	return a.handler.Execute(ctx, args)
}

// Usage returns the console help text.
func (a *App) Usage() string {
	return a.handler.Usage()
}

// Close releases the connection pool.
func (a *App) Close() {
	a.pool.Close()
}

// Run is the application entry point. It loads configuration, initializes
// the logger, executes the command in args, and writes its outcome to out.
// The returned code is 0 on success, 1 when the command failed, and 2 when
// the process could not start.
func Run(ctx context.Context, args []string, out io.Writer) int {
	if len(args) > 0 {
		switch args[0] {
		case "version":
			fmt.Fprintln(out, BuildVersion())
			return 0
		case "help", "-h", "--help":
			// Usage does not depend on configuration; an unwired handler is enough.
			fmt.Fprint(out, console.NewHandler(slog.New(slog.DiscardHandler), nil, nil, console.RetryPolicy{}).Usage())
			return 0
		}
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(out, err)
		return 2
	}

	logger := NewLogger(cfg.Log)

	logger.Debug("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.Int("loan_period_days", cfg.Lending.LoanPeriodDays),
		slog.String("fine_rate_per_day", cfg.Lending.FineRatePerDay.String()),
	)

	a, err := New(ctx, cfg, logger)
	if err != nil {
		logger.Error("startup failed", slog.String("error", err.Error()))
		return 2
	}
	defer a.Close()

	outcome := a.Execute(ctx, args)
	if err := console.Write(out, outcome); err != nil {
		logger.Error("write outcome", slog.String("error", err.Error()))
		return 1
	}
	if !outcome.OK {
		return 1
	}
	return 0
}
