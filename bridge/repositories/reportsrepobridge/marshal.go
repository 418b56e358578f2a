package reportsrepobridge

import (
	"github.com/jrazmi/shopkeep/core/repositories/reportsrepo"
)

// MarshalToBridge converts a core model to the bridge model.
func MarshalToBridge(summary reportsrepo.FinancialSummary) FinancialSummary {
	return FinancialSummary{
		InvoiceIncome:   summary.InvoiceIncome,
		ExpenseTotal:    summary.ExpenseTotal,
		WithdrawalTotal: summary.WithdrawalTotal,
		SalaryTotal:     summary.SalaryTotal,
		NetBalance:      summary.NetBalance(),
	}
}
