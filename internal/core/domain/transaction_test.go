package domain_test

import (
	"testing"

	"github.com/corebank/bank_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestTransaction_SignedAmount(t *testing.T) {
	tests := []struct {
		name string
		txn  domain.Transaction
		want decimal.Decimal
	}{
		{
			name: "credit is positive",
			txn: domain.Transaction{
				TransactionType: domain.Credit,
				Amount:          decimal.NewFromFloat(250.00),
			},
			want: decimal.NewFromFloat(250.00),
		},
		{
			name: "debit is negative",
			txn: domain.Transaction{
				TransactionType: domain.Debit,
				Amount:          decimal.NewFromFloat(100.00),
			},
			want: decimal.NewFromFloat(-100.00),
		},
		{
			name: "zero amount stays zero",
			txn: domain.Transaction{
				TransactionType: domain.Debit,
				Amount:          decimal.Zero,
			},
			want: decimal.Zero,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.txn.SignedAmount()
			assert.True(t, tt.want.Equal(got), "want %s, got %s", tt.want, got)
		})
	}
}

func TestTransaction_SignedAmountSumsToBalance(t *testing.T) {
	// A balance is the sum of its transactions' signed amounts in order.
	txns := []domain.Transaction{
		{TransactionType: domain.Credit, Amount: decimal.NewFromInt(1000)},
		{TransactionType: domain.Credit, Amount: decimal.NewFromInt(250)},
		{TransactionType: domain.Debit, Amount: decimal.NewFromInt(100)},
	}

	sum := decimal.Zero
	for _, txn := range txns {
		sum = sum.Add(txn.SignedAmount())
	}

	assert.True(t, decimal.NewFromInt(1150).Equal(sum), "got %s", sum)
}
