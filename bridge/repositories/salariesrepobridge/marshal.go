package salariesrepobridge

import (
	"fmt"
	"time"

	"github.com/jrazmi/shopkeep/core/repositories/salariesrepo"
	"github.com/jrazmi/shopkeep/sdk/validation"
)

// MarshalToBridge converts a core model to the bridge model.
func MarshalToBridge(salary salariesrepo.Salary) Salary {
	return Salary{
		ID:         salary.ID,
		EmployeeID: salary.EmployeeID,
		Period:     salary.Period,
		Gross:      salary.Gross,
		Deductions: salary.Deductions,
		Net:        salary.Net,
		IsPaid:     salary.IsPaid,
		PaidOn:     formatDatePtr(salary.PaidOn),
		CreatedAt:  salary.CreatedAt.Format(time.RFC3339),
	}
}

// MarshalListToBridge converts a list of core models to bridge models.
func MarshalListToBridge(salaries []salariesrepo.Salary) []Salary {
	bridgeSalaries := make([]Salary, len(salaries))
	for i, salary := range salaries {
		bridgeSalaries[i] = MarshalToBridge(salary)
	}
	return bridgeSalaries
}

// MarshalCreateToRepository converts bridge create input to repository input.
func MarshalCreateToRepository(input CreateSalaryInput) (salariesrepo.CreateSalary, error) {
	create := salariesrepo.CreateSalary{
		EmployeeID: input.EmployeeID,
		Period:     input.Period,
		Gross:      input.Gross,
		Deductions: input.Deductions,
		Net:        input.Net,
		IsPaid:     input.IsPaid,
	}

	if input.PaidOn != "" {
		paid, err := validation.ParseFlexibleDate(input.PaidOn)
		if err != nil {
			return salariesrepo.CreateSalary{}, fmt.Errorf("invalid paid_on: %w", err)
		}
		create.PaidOn = &paid
	}

	return create, nil
}

func formatDatePtr(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(time.DateOnly)
}
