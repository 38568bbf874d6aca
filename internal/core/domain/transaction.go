package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType indicates whether a transaction credits or debits an account.
type TransactionType string

const (
	Debit  TransactionType = "DEBIT"
	Credit TransactionType = "CREDIT"
)

// Transaction is an immutable record of a single balance-affecting event tied
// to one account. TransactionID is sequential in recording order, starting at 1.
// BalanceAfter captures the owning account's balance immediately after the
// transaction was applied.
type Transaction struct {
	TransactionID   int64           `json:"transactionID"`
	AccountID       int64           `json:"accountID"`
	TransactionType TransactionType `json:"transactionType"`
	Amount          decimal.Decimal `json:"amount"` // Positive value
	Description     string          `json:"description"`
	Timestamp       time.Time       `json:"timestamp"`
	BalanceAfter    decimal.Decimal `json:"balanceAfter"`
}

// SignedAmount returns the amount with the sign implied by the transaction
// type: positive for credits, negative for debits. An account's balance always
// equals the sum of its transactions' signed amounts, in the order applied.
func (t Transaction) SignedAmount() decimal.Decimal {
	if t.TransactionType == Debit {
		return t.Amount.Neg()
	}
	return t.Amount
}
