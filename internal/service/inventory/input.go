package inventory

import (
	"strings"

	"github.com/heartmarshall/campus-lending/internal/domain"
)

const (
	maxTitleLength      = 500
	maxSearchTermLength = 200
	minYearPublished    = 1000
	maxYearPublished    = 9999
)

// AddBookInput holds the parameters for cataloging a book.
type AddBookInput struct {
	Title         string
	Author        string
	ISBN          string
	Publisher     string
	YearPublished *int
	TotalCopies   int
}

// Validate checks all fields and collects all errors.
func (i AddBookInput) Validate() error {
	var errs []domain.FieldError

	title := strings.TrimSpace(i.Title)
	if title == "" {
		errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
	}
	if len(title) > maxTitleLength {
		errs = append(errs, domain.FieldError{Field: "title", Message: "max 500 characters"})
	}
	if strings.TrimSpace(i.ISBN) == "" {
		errs = append(errs, domain.FieldError{Field: "isbn", Message: "required"})
	}
	if i.TotalCopies < 0 {
		errs = append(errs, domain.FieldError{Field: "total_copies", Message: "must not be negative"})
	}
	if fe, ok := validateYear(i.YearPublished); !ok {
		errs = append(errs, fe)
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateBookInput holds a sparse update: nil fields are left unchanged.
type UpdateBookInput struct {
	BookID int64
	Fields domain.BookUpdate
}

// Validate checks all fields and collects all errors.
func (i UpdateBookInput) Validate() error {
	var errs []domain.FieldError

	if i.BookID <= 0 {
		errs = append(errs, domain.FieldError{Field: "book_id", Message: "must be positive"})
	}

	f := i.Fields
	if f.IsEmpty() {
		errs = append(errs, domain.FieldError{Field: "input", Message: "at least one field must be provided"})
	}
	if f.Title != nil {
		title := strings.TrimSpace(*f.Title)
		if title == "" {
			errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
		}
		if len(title) > maxTitleLength {
			errs = append(errs, domain.FieldError{Field: "title", Message: "max 500 characters"})
		}
	}
	if f.ISBN != nil && strings.TrimSpace(*f.ISBN) == "" {
		errs = append(errs, domain.FieldError{Field: "isbn", Message: "required"})
	}
	if f.TotalCopies != nil && *f.TotalCopies < 0 {
		errs = append(errs, domain.FieldError{Field: "total_copies", Message: "must not be negative"})
	}
	if fe, ok := validateYear(f.YearPublished); !ok {
		errs = append(errs, fe)
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// SearchBooksInput holds a free-text catalog query.
type SearchBooksInput struct {
	Term string
}

// Validate checks all fields and collects all errors.
func (i SearchBooksInput) Validate() error {
	term := strings.TrimSpace(i.Term)
	if term == "" {
		return domain.NewValidationError("term", "required")
	}
	if len(term) > maxSearchTermLength {
		return domain.NewValidationError("term", "max 200 characters")
	}
	return nil
}

func validateYear(year *int) (domain.FieldError, bool) {
	if year == nil {
		return domain.FieldError{}, true
	}
	if *year < minYearPublished || *year > maxYearPublished {
		return domain.FieldError{Field: "year_published", Message: "must be a four-digit year"}, false
	}
	return domain.FieldError{}, true
}
