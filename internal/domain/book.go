package domain

// Book is a catalog entry together with its copy counts.
// AvailableCopies always equals TotalCopies minus the number of active loans.
type Book struct {
	ID              int64  `db:"book_id"`
	Title           string `db:"title"`
	Author          string `db:"author"`
	ISBN            string `db:"isbn"`
	Publisher       string `db:"publisher"`
	YearPublished   *int   `db:"year_published"`
	TotalCopies     int    `db:"total_copies"`
	AvailableCopies int    `db:"available_copies"`
}

// IssuedCopies returns the number of copies currently out on loan.
func (b Book) IssuedCopies() int {
	return b.TotalCopies - b.AvailableCopies
}

// HasOutstandingCopies reports whether any copy is currently on loan.
func (b Book) HasOutstandingCopies() bool {
	return b.TotalCopies != b.AvailableCopies
}

// BookUpdate is a sparse update descriptor: nil means "leave unchanged",
// a non-nil pointer (including to an empty string) means "set to this value".
type BookUpdate struct {
	Title         *string
	Author        *string
	ISBN          *string
	Publisher     *string
	YearPublished *int
	TotalCopies   *int
}

// IsEmpty reports whether the descriptor carries no changes.
func (u BookUpdate) IsEmpty() bool {
	return u.Title == nil && u.Author == nil && u.ISBN == nil &&
		u.Publisher == nil && u.YearPublished == nil && u.TotalCopies == nil
}

// CopyCountMismatch describes a book whose available count disagrees with the ledger.
type CopyCountMismatch struct {
	BookID          int64 `db:"book_id"`
	TotalCopies     int   `db:"total_copies"`
	AvailableCopies int   `db:"available_copies"`
	ActiveLoans     int   `db:"active_loans"`
}

// ExpectedAvailable returns the available count implied by the ledger.
func (m CopyCountMismatch) ExpectedAvailable() int {
	return m.TotalCopies - m.ActiveLoans
}
