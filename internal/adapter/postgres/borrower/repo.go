// Package borrower answers identity lookups against the student records that
// the lending subsystem treats as its borrower directory.
package borrower

import (
	"context"

	sq "github.com/Masterminds/squirrel"

	postgres "github.com/heartmarshall/campus-lending/internal/adapter/postgres"
)

// Directory checks borrower existence in the students table.
type Directory struct {
	gw *postgres.Gateway
}

// New creates a new borrower directory.
func New(db postgres.Querier) *Directory {
	return &Directory{gw: postgres.NewGateway(db)}
}

// Exists reports whether a student with the given id is registered.
func (d *Directory) Exists(ctx context.Context, borrowerID int64) (bool, error) {
	query := postgres.Builder().
		Select("1").
		Prefix("SELECT EXISTS (").
		From("students").
		Where(sq.Eq{"student_id": borrowerID}).
		Suffix(")")

	var exists bool
	if err := d.gw.FetchOne(ctx, &exists, query); err != nil {
		return false, postgres.MapError(err, "borrower", borrowerID)
	}
	return exists, nil
}
