package lending

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/heartmarshall/campus-lending/internal/domain"
)

// IssueResult describes a newly created loan.
type IssueResult struct {
	LoanID  int64
	DueDate time.Time
	Loan    domain.Loan
}

// ReturnResult describes a closed loan and the fine charged for it.
type ReturnResult struct {
	Fine        decimal.Decimal
	DaysOverdue int
	Loan        domain.Loan
}
