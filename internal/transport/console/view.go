package console

import (
	"time"

	"github.com/heartmarshall/campus-lending/internal/domain"
	"github.com/heartmarshall/campus-lending/internal/service/lending"
)

// DateLayout is the calendar date format accepted and printed by the console.
const DateLayout = "2006-01-02"

type bookView struct {
	ID              int64  `json:"book_id"`
	Title           string `json:"title"`
	Author          string `json:"author"`
	ISBN            string `json:"isbn"`
	Publisher       string `json:"publisher"`
	YearPublished   *int   `json:"year_published"`
	TotalCopies     int    `json:"total_copies"`
	AvailableCopies int    `json:"available_copies"`
}

type loanView struct {
	ID               int64   `json:"loan_id"`
	BookID           int64   `json:"book_id"`
	BorrowerID       int64   `json:"borrower_id"`
	IssueDate        string  `json:"issue_date"`
	DueDate          string  `json:"due_date"`
	ActualReturnDate *string `json:"actual_return_date"`
	FineAmount       string  `json:"fine_amount"`
	Status           string  `json:"status"`
}

type overdueView struct {
	loanView
	DaysOverdue int    `json:"days_overdue"`
	AccruedFine string `json:"accrued_fine"`
}

type returnView struct {
	Fine        string   `json:"fine"`
	DaysOverdue int      `json:"days_overdue"`
	Loan        loanView `json:"loan"`
}

type mismatchView struct {
	BookID            int64 `json:"book_id"`
	TotalCopies       int   `json:"total_copies"`
	AvailableCopies   int   `json:"available_copies"`
	ActiveLoans       int   `json:"active_loans"`
	ExpectedAvailable int   `json:"expected_available"`
}

func formatDate(t time.Time) string {
	return t.Format(DateLayout)
}

func toBookView(b domain.Book) bookView {
	return bookView{
		ID:              b.ID,
		Title:           b.Title,
		Author:          b.Author,
		ISBN:            b.ISBN,
		Publisher:       b.Publisher,
		YearPublished:   b.YearPublished,
		TotalCopies:     b.TotalCopies,
		AvailableCopies: b.AvailableCopies,
	}
}

func toBookViews(books []domain.Book) []bookView {
	out := make([]bookView, 0, len(books))
	for _, b := range books {
		out = append(out, toBookView(b))
	}
	return out
}

func toLoanView(l domain.Loan) loanView {
	v := loanView{
		ID:         l.ID,
		BookID:     l.BookID,
		BorrowerID: l.BorrowerID,
		IssueDate:  formatDate(l.IssueDate),
		DueDate:    formatDate(l.DueDate),
		FineAmount: l.FineAmount.StringFixed(2),
		Status:     l.Status.String(),
	}
	if l.ActualReturnDate != nil {
		d := formatDate(*l.ActualReturnDate)
		v.ActualReturnDate = &d
	}
	return v
}

func toLoanViews(loans []domain.Loan) []loanView {
	out := make([]loanView, 0, len(loans))
	for _, l := range loans {
		out = append(out, toLoanView(l))
	}
	return out
}

func toOverdueViews(loans []domain.OverdueLoan) []overdueView {
	out := make([]overdueView, 0, len(loans))
	for _, l := range loans {
		out = append(out, overdueView{
			loanView:    toLoanView(l.Loan),
			DaysOverdue: l.DaysOverdue,
			AccruedFine: l.AccruedFine.StringFixed(2),
		})
	}
	return out
}

func toReturnView(r *lending.ReturnResult) returnView {
	return returnView{
		Fine:        r.Fine.StringFixed(2),
		DaysOverdue: r.DaysOverdue,
		Loan:        toLoanView(r.Loan),
	}
}

func toMismatchViews(ms []domain.CopyCountMismatch) []mismatchView {
	out := make([]mismatchView, 0, len(ms))
	for _, m := range ms {
		out = append(out, mismatchView{
			BookID:            m.BookID,
			TotalCopies:       m.TotalCopies,
			AvailableCopies:   m.AvailableCopies,
			ActiveLoans:       m.ActiveLoans,
			ExpectedAvailable: m.ExpectedAvailable(),
		})
	}
	return out
}
