package employeesrepobridge

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Employee is the wire representation of a staff member. Dates render
// as YYYY-MM-DD, timestamps as RFC3339, money as decimal strings.
type Employee struct {
	ID            int64           `json:"id"`
	Name          string          `json:"name"`
	Position      string          `json:"position,omitempty"`
	Phone         string          `json:"phone,omitempty"`
	MonthlySalary decimal.Decimal `json:"monthly_salary"`
	IsActive      bool            `json:"is_active"`
	JoinedOn      string          `json:"joined_on,omitempty"`
	CreatedAt     string          `json:"created_at"`
}

// CreateEmployeeInput is the POST payload. IsActive defaults to true
// when omitted.
type CreateEmployeeInput struct {
	Name          string          `json:"name"`
	Position      string          `json:"position"`
	Phone         string          `json:"phone"`
	MonthlySalary decimal.Decimal `json:"monthly_salary"`
	IsActive      *bool           `json:"is_active"`
	JoinedOn      string          `json:"joined_on"`
}

// Validate implements the web validator interface.
func (i CreateEmployeeInput) Validate() error {
	if i.Name == "" {
		return fmt.Errorf("name is required")
	}
	if i.MonthlySalary.IsNegative() {
		return fmt.Errorf("monthly_salary cannot be negative")
	}
	return nil
}
