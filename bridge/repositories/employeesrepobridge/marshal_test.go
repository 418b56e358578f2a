package employeesrepobridge_test

import (
	"testing"

	"github.com/jrazmi/shopkeep/bridge/repositories/employeesrepobridge"
	"github.com/shopspring/decimal"
)

func TestMarshalCreateToRepository_ActiveDefaultsTrue(t *testing.T) {
	input := employeesrepobridge.CreateEmployeeInput{
		Name:          "Nadia",
		MonthlySalary: decimal.RequireFromString("2500"),
	}

	create, err := employeesrepobridge.MarshalCreateToRepository(input)
	if err != nil {
		t.Fatalf("marshaling create input: %s", err)
	}
	if !create.IsActive {
		t.Errorf("expected IsActive to default to true")
	}
	if create.Position != nil || create.Phone != nil || create.JoinedOn != nil {
		t.Errorf("expected empty optional fields to stay nil")
	}
}

func TestMarshalCreateToRepository_ExplicitInactive(t *testing.T) {
	inactive := false
	input := employeesrepobridge.CreateEmployeeInput{
		Name:          "Omar",
		MonthlySalary: decimal.RequireFromString("1800"),
		IsActive:      &inactive,
	}

	create, err := employeesrepobridge.MarshalCreateToRepository(input)
	if err != nil {
		t.Fatalf("marshaling create input: %s", err)
	}
	if create.IsActive {
		t.Errorf("expected explicit is_active=false to be kept")
	}
}

func TestMarshalCreateToRepository_ParsesJoinedOn(t *testing.T) {
	input := employeesrepobridge.CreateEmployeeInput{
		Name:          "Lina",
		MonthlySalary: decimal.RequireFromString("3200"),
		JoinedOn:      "2026-02-01",
	}

	create, err := employeesrepobridge.MarshalCreateToRepository(input)
	if err != nil {
		t.Fatalf("marshaling create input: %s", err)
	}
	if create.JoinedOn == nil {
		t.Fatalf("expected joined_on to be parsed")
	}
	if got := create.JoinedOn.Format("2006-01-02"); got != "2026-02-01" {
		t.Errorf("got joined_on %s, want 2026-02-01", got)
	}

	input.JoinedOn = "next payday"
	if _, err := employeesrepobridge.MarshalCreateToRepository(input); err == nil {
		t.Errorf("expected error for unparseable joined_on")
	}
}
