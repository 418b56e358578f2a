package depositsrepobridge_test

import (
	"testing"

	"github.com/jrazmi/shopkeep/bridge/repositories/depositsrepobridge"
	"github.com/shopspring/decimal"
)

func TestCreateDepositInput_Validate(t *testing.T) {
	tests := []struct {
		name    string
		input   depositsrepobridge.CreateDepositInput
		wantErr bool
	}{
		{
			name:  "cash deposit",
			input: depositsrepobridge.CreateDepositInput{Method: "cash", Amount: decimal.RequireFromString("150")},
		},
		{
			name:  "bank deposit",
			input: depositsrepobridge.CreateDepositInput{Method: "bank", Amount: decimal.RequireFromString("99.50")},
		},
		{
			name:    "unknown method",
			input:   depositsrepobridge.CreateDepositInput{Method: "wire", Amount: decimal.RequireFromString("10")},
			wantErr: true,
		},
		{
			name:    "missing method",
			input:   depositsrepobridge.CreateDepositInput{Amount: decimal.RequireFromString("10")},
			wantErr: true,
		},
		{
			name:    "negative amount",
			input:   depositsrepobridge.CreateDepositInput{Method: "cash", Amount: decimal.RequireFromString("-5")},
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
				t.Errorf("unexpected validation error: %s", err)
			}
		})
	}
}
