package reportsrepobridge

import (
	"github.com/shopspring/decimal"
)

// FinancialSummary is the wire representation of the dashboard money
// overview. NetBalance is income minus every outgoing bucket.
type FinancialSummary struct {
	InvoiceIncome   decimal.Decimal `json:"invoice_income"`
	ExpenseTotal    decimal.Decimal `json:"expense_total"`
	WithdrawalTotal decimal.Decimal `json:"withdrawal_total"`
	SalaryTotal     decimal.Decimal `json:"salary_total"`
	NetBalance      decimal.Decimal `json:"net_balance"`
}
