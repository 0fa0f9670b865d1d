package payroll

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestComputePay(t *testing.T) {
	tests := []struct {
		name       string
		totalHours string
		hourlyRate string
		wantGross  string
		wantNet    string
	}{
		{
			name:       "full period at standard rate",
			totalHours: "15.5",
			hourlyRate: "20",
			wantGross:  "310",
			wantNet:    "310",
		},
		{
			name:       "fractional result rounds to cents",
			totalHours: "8.33",
			hourlyRate: "17.5",
			wantGross:  "145.78",
			wantNet:    "145.78",
		},
		{
			name:       "zero hours",
			totalHours: "0",
			hourlyRate: "20",
			wantGross:  "0",
			wantNet:    "0",
		},
		{
			name:       "zero rate",
			totalHours: "40",
			hourlyRate: "0",
			wantGross:  "0",
			wantNet:    "0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hours := decimal.RequireFromString(tt.totalHours)
			rate := decimal.RequireFromString(tt.hourlyRate)

			gross, deductions, net := ComputePay(hours, rate)

			assert.Equal(t, tt.wantGross, gross.String())
			assert.True(t, deductions.IsZero())
			assert.Equal(t, tt.wantNet, net.String())
		})
	}
}
