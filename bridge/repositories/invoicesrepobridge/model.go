package invoicesrepobridge

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Invoice is the wire representation of a sales invoice. Dates render
// as YYYY-MM-DD, timestamps as RFC3339, money as decimal strings.
type Invoice struct {
	ID           int64           `json:"id"`
	InvoiceNo    string          `json:"invoice_no"`
	CustomerName string          `json:"customer_name"`
	Description  string          `json:"description,omitempty"`
	Total        decimal.Decimal `json:"total"`
	IsPaid       bool            `json:"is_paid"`
	IssuedOn     string          `json:"issued_on"`
	CreatedAt    string          `json:"created_at"`
}

// CreateInvoiceInput is the POST payload. A blank invoice_no gets a
// generated one; a blank issued_on falls back to today.
type CreateInvoiceInput struct {
	InvoiceNo    string          `json:"invoice_no"`
	CustomerName string          `json:"customer_name"`
	Description  string          `json:"description"`
	Total        decimal.Decimal `json:"total"`
	IsPaid       bool            `json:"is_paid"`
	IssuedOn     string          `json:"issued_on"`
}

// Validate implements the web validator interface.
func (i CreateInvoiceInput) Validate() error {
	if i.CustomerName == "" {
		return fmt.Errorf("customer_name is required")
	}
	if i.Total.IsNegative() {
		return fmt.Errorf("total cannot be negative")
	}
	return nil
}
