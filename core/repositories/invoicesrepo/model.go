package invoicesrepo

import (
	"errors"
	"time"

	"github.com/jrazmi/shopkeep/core/scaffolding/fop"
	"github.com/shopspring/decimal"
)

var ErrInvoiceNotFound = errors.New("invoice not found")

// DefaultOrderBy is newest first.
var DefaultOrderBy = fop.NewBy("created_at", fop.DESC)

// OrderableFields maps API field names to database columns.
var OrderableFields = map[string]string{
	"createdAt":    "created_at",
	"issuedOn":     "issued_on",
	"total":        "total",
	"invoiceNo":    "invoice_no",
	"customerName": "customer_name",
}

// Invoice is a sales invoice issued to a customer. Paid invoices feed
// the income side of the financial summary.
type Invoice struct {
	ID           int64           `db:"id"`
	InvoiceNo    string          `db:"invoice_no"`
	CustomerName string          `db:"customer_name"`
	Description  *string         `db:"description"`
	Total        decimal.Decimal `db:"total"`
	IsPaid       bool            `db:"is_paid"`
	IssuedOn     time.Time       `db:"issued_on"`
	CreatedAt    time.Time       `db:"created_at"`
}

// CreateInvoice contains fields for recording a new invoice. A blank
// InvoiceNo is replaced with a generated one.
type CreateInvoice struct {
	InvoiceNo    string          `db:"invoice_no"`
	CustomerName string          `db:"customer_name"`
	Description  *string         `db:"description"`
	Total        decimal.Decimal `db:"total"`
	IsPaid       bool            `db:"is_paid"`
	IssuedOn     time.Time       `db:"issued_on"`
}

// Filter narrows invoice listings. Nil fields are ignored.
type Filter struct {
	IsPaid       *bool
	CustomerName *string
	IssuedAfter  *time.Time
	IssuedBefore *time.Time
}
