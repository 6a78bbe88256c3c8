package lending

import (
	"time"

	"github.com/heartmarshall/campus-lending/internal/domain"
)

// IssueBookInput holds the parameters for lending a copy.
type IssueBookInput struct {
	BookID     int64
	BorrowerID int64
	Today      time.Time
}

// Validate checks all fields and collects all errors.
func (i IssueBookInput) Validate() error {
	var errs []domain.FieldError

	if i.BookID <= 0 {
		errs = append(errs, domain.FieldError{Field: "book_id", Message: "must be positive"})
	}
	if i.BorrowerID <= 0 {
		errs = append(errs, domain.FieldError{Field: "borrower_id", Message: "must be positive"})
	}
	if i.Today.IsZero() {
		errs = append(errs, domain.FieldError{Field: "today", Message: "required"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ReturnBookInput holds the parameters for returning a loan.
type ReturnBookInput struct {
	LoanID int64
	Today  time.Time
}

// Validate checks all fields and collects all errors.
func (i ReturnBookInput) Validate() error {
	var errs []domain.FieldError

	if i.LoanID <= 0 {
		errs = append(errs, domain.FieldError{Field: "loan_id", Message: "must be positive"})
	}
	if i.Today.IsZero() {
		errs = append(errs, domain.FieldError{Field: "today", Message: "required"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ListLoansInput filters the loan history. Zero ids mean "any".
type ListLoansInput struct {
	BorrowerID int64
	BookID     int64
	Status     string
	Limit      int
}

// Validate checks all fields and collects all errors.
func (i ListLoansInput) Validate() error {
	var errs []domain.FieldError

	if i.BorrowerID < 0 {
		errs = append(errs, domain.FieldError{Field: "borrower_id", Message: "must not be negative"})
	}
	if i.BookID < 0 {
		errs = append(errs, domain.FieldError{Field: "book_id", Message: "must not be negative"})
	}
	if i.Status != "" && !domain.LoanStatus(i.Status).IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "must be issued or returned"})
	}
	if i.Limit < 0 {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "must not be negative"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func (i ListLoansInput) filter() domain.LoanFilter {
	f := domain.LoanFilter{Limit: i.Limit}
	if i.BorrowerID > 0 {
		f.BorrowerID = &i.BorrowerID
	}
	if i.BookID > 0 {
		f.BookID = &i.BookID
	}
	if i.Status != "" {
		status := domain.LoanStatus(i.Status)
		f.Status = &status
	}
	return f
}
