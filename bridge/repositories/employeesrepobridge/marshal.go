package employeesrepobridge

import (
	"fmt"
	"time"

	"github.com/jrazmi/shopkeep/core/repositories/employeesrepo"
	"github.com/jrazmi/shopkeep/sdk/validation"
)

// MarshalToBridge converts a core model to the bridge model.
func MarshalToBridge(employee employeesrepo.Employee) Employee {
	return Employee{
		ID:            employee.ID,
		Name:          employee.Name,
		Position:      validation.GetStringOrEmpty(employee.Position),
		Phone:         validation.GetStringOrEmpty(employee.Phone),
		MonthlySalary: employee.MonthlySalary,
		IsActive:      employee.IsActive,
		JoinedOn:      formatDatePtr(employee.JoinedOn),
		CreatedAt:     employee.CreatedAt.Format(time.RFC3339),
	}
}

// MarshalListToBridge converts a list of core models to bridge models.
func MarshalListToBridge(employees []employeesrepo.Employee) []Employee {
	bridgeEmployees := make([]Employee, len(employees))
	for i, employee := range employees {
		bridgeEmployees[i] = MarshalToBridge(employee)
	}
	return bridgeEmployees
}

// MarshalCreateToRepository converts bridge create input to repository input.
func MarshalCreateToRepository(input CreateEmployeeInput) (employeesrepo.CreateEmployee, error) {
	create := employeesrepo.CreateEmployee{
		Name:          input.Name,
		MonthlySalary: input.MonthlySalary,
		IsActive:      true,
	}

	if input.Position != "" {
		create.Position = validation.StringPtr(input.Position)
	}
	if input.Phone != "" {
		create.Phone = validation.StringPtr(input.Phone)
	}
	if input.IsActive != nil {
		create.IsActive = *input.IsActive
	}
	if input.JoinedOn != "" {
		joined, err := validation.ParseFlexibleDate(input.JoinedOn)
		if err != nil {
			return employeesrepo.CreateEmployee{}, fmt.Errorf("invalid joined_on: %w", err)
		}
		create.JoinedOn = &joined
	}

	return create, nil
}

func formatDatePtr(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(time.DateOnly)
}
