package salariesrepobridge

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Salary is the wire representation of one month of pay for one
// employee. Money renders as decimal strings.
type Salary struct {
	ID         int64           `json:"id"`
	EmployeeID int64           `json:"employee_id"`
	Period     string          `json:"period"`
	Gross      decimal.Decimal `json:"gross"`
	Deductions decimal.Decimal `json:"deductions"`
	Net        decimal.Decimal `json:"net"`
	IsPaid     bool            `json:"is_paid"`
	PaidOn     string          `json:"paid_on,omitempty"`
	CreatedAt  string          `json:"created_at"`
}

// CreateSalaryInput is the POST payload. A zero net is derived from
// gross minus deductions.
type CreateSalaryInput struct {
	EmployeeID int64           `json:"employee_id"`
	Period     string          `json:"period"`
	Gross      decimal.Decimal `json:"gross"`
	Deductions decimal.Decimal `json:"deductions"`
	Net        decimal.Decimal `json:"net"`
	IsPaid     bool            `json:"is_paid"`
	PaidOn     string          `json:"paid_on"`
}

// Validate implements the web validator interface.
func (i CreateSalaryInput) Validate() error {
	if i.EmployeeID == 0 {
		return fmt.Errorf("employee_id is required")
	}
	if i.Period == "" {
		return fmt.Errorf("period is required")
	}
	if i.Gross.IsNegative() || i.Deductions.IsNegative() || i.Net.IsNegative() {
		return fmt.Errorf("amounts cannot be negative")
	}
	return nil
}
