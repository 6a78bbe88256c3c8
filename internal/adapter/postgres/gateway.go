package postgres

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
)

// Gateway executes parameterized statements built with squirrel and maps rows
// onto records with scany. It uses the transaction from context when present.
//
// Errors are returned unmapped so callers can attach entity context via MapError.
type Gateway struct {
	db Querier
}

// NewGateway creates a Gateway over db (a pool in production, a pgxmock pool in tests).
func NewGateway(db Querier) *Gateway {
	return &Gateway{db: db}
}

// Execute runs a write statement and returns the number of affected rows.
func (g *Gateway) Execute(ctx context.Context, stmt sq.Sqlizer) (int64, error) {
	query, args, err := stmt.ToSql()
	if err != nil {
		return 0, fmt.Errorf("build statement: %w", err)
	}

	tag, err := QuerierFromCtx(ctx, g.db).Exec(ctx, query, args...)
	if err != nil {
		return 0, err
	}

	return tag.RowsAffected(), nil
}

// FetchOne scans exactly one row into dst. Returns an error wrapping
// pgx.ErrNoRows when the statement yields nothing.
func (g *Gateway) FetchOne(ctx context.Context, dst any, stmt sq.Sqlizer) error {
	query, args, err := stmt.ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}

	return pgxscan.Get(ctx, QuerierFromCtx(ctx, g.db), dst, query, args...)
}

// FetchAll scans all rows into dst, which must be a pointer to a slice.
func (g *Gateway) FetchAll(ctx context.Context, dst any, stmt sq.Sqlizer) error {
	query, args, err := stmt.ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}

	return pgxscan.Select(ctx, QuerierFromCtx(ctx, g.db), dst, query, args...)
}
