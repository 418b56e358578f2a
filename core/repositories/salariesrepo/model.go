package salariesrepo

import (
	"time"

	"github.com/jrazmi/shopkeep/core/scaffolding/fop"
	"github.com/shopspring/decimal"
)

// DefaultOrderBy is newest first.
var DefaultOrderBy = fop.NewBy("created_at", fop.DESC)

// OrderableFields maps API field names to database columns.
var OrderableFields = map[string]string{
	"createdAt": "created_at",
	"period":    "period",
	"net":       "net",
	"paidOn":    "paid_on",
}

// Salary is one month of pay for one employee. Paid net salaries count
// against the financial summary.
type Salary struct {
	ID         int64           `db:"id"`
	EmployeeID int64           `db:"employee_id"`
	Period     string          `db:"period"`
	Gross      decimal.Decimal `db:"gross"`
	Deductions decimal.Decimal `db:"deductions"`
	Net        decimal.Decimal `db:"net"`
	IsPaid     bool            `db:"is_paid"`
	PaidOn     *time.Time      `db:"paid_on"`
	CreatedAt  time.Time       `db:"created_at"`
}

// CreateSalary contains fields for recording a salary run. A zero Net
// is derived from Gross minus Deductions.
type CreateSalary struct {
	EmployeeID int64           `db:"employee_id"`
	Period     string          `db:"period"`
	Gross      decimal.Decimal `db:"gross"`
	Deductions decimal.Decimal `db:"deductions"`
	Net        decimal.Decimal `db:"net"`
	IsPaid     bool            `db:"is_paid"`
	PaidOn     *time.Time      `db:"paid_on"`
}

// Filter narrows salary listings. Nil fields are ignored.
type Filter struct {
	EmployeeID *int64
	Period     *string
	IsPaid     *bool
}
