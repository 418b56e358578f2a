package employeesrepo

import (
	"errors"
	"time"

	"github.com/jrazmi/shopkeep/core/scaffolding/fop"
	"github.com/shopspring/decimal"
)

var ErrEmployeeNotFound = errors.New("employee not found")

// DefaultOrderBy is newest first.
var DefaultOrderBy = fop.NewBy("created_at", fop.DESC)

// OrderableFields maps API field names to database columns.
var OrderableFields = map[string]string{
	"createdAt":     "created_at",
	"name":          "name",
	"joinedOn":      "joined_on",
	"monthlySalary": "monthly_salary",
}

// Employee is a member of staff paid through the salaries ledger.
type Employee struct {
	ID            int64           `db:"id"`
	Name          string          `db:"name"`
	Position      *string         `db:"position"`
	Phone         *string         `db:"phone"`
	MonthlySalary decimal.Decimal `db:"monthly_salary"`
	IsActive      bool            `db:"is_active"`
	JoinedOn      *time.Time      `db:"joined_on"`
	CreatedAt     time.Time       `db:"created_at"`
}

// CreateEmployee contains fields for registering a new employee.
type CreateEmployee struct {
	Name          string          `db:"name"`
	Position      *string         `db:"position"`
	Phone         *string         `db:"phone"`
	MonthlySalary decimal.Decimal `db:"monthly_salary"`
	IsActive      bool            `db:"is_active"`
	JoinedOn      *time.Time      `db:"joined_on"`
}

// Filter narrows employee listings. Nil fields are ignored.
type Filter struct {
	IsActive *bool
	Name     *string
}
