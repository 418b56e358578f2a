package reportsrepo

import "github.com/shopspring/decimal"

// FinancialSummary aggregates the ledger for the dashboard header.
type FinancialSummary struct {
	InvoiceIncome   decimal.Decimal `db:"invoice_income"`
	ExpenseTotal    decimal.Decimal `db:"expense_total"`
	WithdrawalTotal decimal.Decimal `db:"withdrawal_total"`
	SalaryTotal     decimal.Decimal `db:"salary_total"`
}

// NetBalance is paid invoice income minus expenses, withdrawals, and
// paid net salaries.
func (s FinancialSummary) NetBalance() decimal.Decimal {
	return s.InvoiceIncome.Sub(s.ExpenseTotal).Sub(s.WithdrawalTotal).Sub(s.SalaryTotal)
}
