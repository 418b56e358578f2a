package expensesrepo

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
	"spentOn":   "spent_on",
	"amount":    "amount",
	"category":  "category",
}

// Expense is a single outgoing cost entry.
type Expense struct {
	ID        int64           `db:"id"`
	Label     string          `db:"label"`
	Category  *string         `db:"category"`
	Amount    decimal.Decimal `db:"amount"`
	SpentOn   time.Time       `db:"spent_on"`
	CreatedAt time.Time       `db:"created_at"`
}

// CreateExpense contains fields for recording an expense.
type CreateExpense struct {
	Label    string          `db:"label"`
	Category *string         `db:"category"`
	Amount   decimal.Decimal `db:"amount"`
	SpentOn  time.Time       `db:"spent_on"`
}

// Filter narrows expense listings. Nil fields are ignored.
type Filter struct {
	Category    *string
	SpentAfter  *time.Time
	SpentBefore *time.Time
}
