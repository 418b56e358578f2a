package statementsrepobridge_test

import (
	"testing"

	"github.com/jrazmi/shopkeep/bridge/repositories/statementsrepobridge"
	"github.com/shopspring/decimal"
)

func TestCreateStatementEntryInput_Validate(t *testing.T) {
	tests := []struct {
		name    string
		input   statementsrepobridge.CreateStatementEntryInput
		wantErr bool
	}{
		{
			name: "debit only",
			input: statementsrepobridge.CreateStatementEntryInput{
				Description: "supplier payment",
				Debit:       decimal.NewFromInt(100),
			},
		},
		{
			name: "credit only",
			input: statementsrepobridge.CreateStatementEntryInput{
				Description: "customer deposit",
				Credit:      decimal.NewFromInt(250),
			},
		},
		{
			name: "both sides set",
			input: statementsrepobridge.CreateStatementEntryInput{
				Description: "confused",
				Debit:       decimal.NewFromInt(10),
				Credit:      decimal.NewFromInt(10),
			},
			wantErr: true,
		},
		{
			name: "neither side set",
			input: statementsrepobridge.CreateStatementEntryInput{
				Description: "empty",
			},
			wantErr: true,
		},
		{
			name: "negative amount",
			input: statementsrepobridge.CreateStatementEntryInput{
				Description: "negative",
				Debit:       decimal.NewFromInt(-5),
			},
			wantErr: true,
		},
		{
			name: "missing description",
			input: statementsrepobridge.CreateStatementEntryInput{
				Debit: decimal.NewFromInt(5),
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.input.Validate()
			if tt.wantErr && err == nil {
				t.Errorf("expected validation error")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}
