package dto

import (
	"time"

	"github.com/corebank/bank_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// AmountRequest defines the body of a deposit or withdrawal.
type AmountRequest struct {
	Amount      decimal.Decimal `json:"amount" binding:"gt=0"`
	Description string          `json:"description"`
}

// TransferRequest defines the body of a transfer between two accounts.
type TransferRequest struct {
	FromAccountID int64           `json:"fromAccountID" binding:"required"`
	ToAccountID   int64           `json:"toAccountID" binding:"required"`
	Amount        decimal.Decimal `json:"amount" binding:"gt=0"`
	Description   string          `json:"description"`
}

// CalculateInterestRequest defines the body of an interest application.
// AnnualRate is optional; the configured default rate applies when omitted.
type CalculateInterestRequest struct {
	AnnualRate *decimal.Decimal `json:"annualRate" binding:"omitempty,gt=0"`
}

// TransactionResponse defines the data returned for a single transaction row.
type TransactionResponse struct {
	TransactionID   int64                  `json:"transactionID"`
	AccountID       int64                  `json:"accountID"`
	TransactionType domain.TransactionType `json:"transactionType"`
	Amount          decimal.Decimal        `json:"amount"`
	Description     string                 `json:"description"`
	Timestamp       time.Time              `json:"timestamp"`
	BalanceAfter    decimal.Decimal        `json:"balanceAfter"`
}

// TransferResponse returns both legs of a completed transfer, debit first.
type TransferResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
}

// StatementResponse defines the data returned for an account statement:
// the account's transactions, most recent first.
type StatementResponse struct {
	AccountID    int64                 `json:"accountID"`
	WindowDays   int                   `json:"windowDays"`
	Transactions []TransactionResponse `json:"transactions"`
}

// InterestResponse defines the data returned after an interest application.
type InterestResponse struct {
	AccountID  int64           `json:"accountID"`
	AnnualRate decimal.Decimal `json:"annualRate"`
	Interest   decimal.Decimal `json:"interest"`
}

// ToTransactionResponse converts a domain.Transaction to its DTO.
func ToTransactionResponse(txn *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		TransactionID:   txn.TransactionID,
		AccountID:       txn.AccountID,
		TransactionType: txn.TransactionType,
		Amount:          txn.Amount,
		Description:     txn.Description,
		Timestamp:       txn.Timestamp,
		BalanceAfter:    txn.BalanceAfter,
	}
}

// ToTransactionResponses converts a slice of domain.Transaction to DTOs.
func ToTransactionResponses(txns []domain.Transaction) []TransactionResponse {
	res := make([]TransactionResponse, len(txns))
	for i := range txns {
		res[i] = ToTransactionResponse(&txns[i])
	}
	return res
}
