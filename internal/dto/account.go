package dto

import (
	"time"

	"github.com/corebank/bank_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateAccountRequest defines the data needed to open a new account.
// InitialDeposit is optional and defaults to zero; a positive value is posted
// as an "Initial deposit" credit transaction.
type CreateAccountRequest struct {
	CustomerName   string          `json:"customerName" binding:"required"`
	InitialDeposit decimal.Decimal `json:"initialDeposit" binding:"gte=0"`
}

// AccountResponse defines the data returned for an account snapshot.
type AccountResponse struct {
	AccountID    int64                `json:"accountID"`
	CustomerName string               `json:"customerName"`
	Balance      decimal.Decimal      `json:"balance"`
	Status       domain.AccountStatus `json:"status"`
	CreatedAt    time.Time            `json:"createdAt"`
}

// BalanceResponse defines the data returned for a balance query.
type BalanceResponse struct {
	AccountID int64           `json:"accountID"`
	Balance   decimal.Decimal `json:"balance"`
}

// ListAccountsResponse wraps the list of accounts.
type ListAccountsResponse struct {
	Accounts []AccountResponse `json:"accounts"`
}

// ToAccountResponse converts a domain.Account to an AccountResponse DTO.
func ToAccountResponse(acc *domain.Account) AccountResponse {
	return AccountResponse{
		AccountID:    acc.AccountID,
		CustomerName: acc.CustomerName,
		Balance:      acc.Balance,
		Status:       acc.Status,
		CreatedAt:    acc.CreatedAt,
	}
}

// ToListAccountsResponse converts a slice of domain.Account to the list DTO.
func ToListAccountsResponse(accounts []domain.Account) ListAccountsResponse {
	res := make([]AccountResponse, len(accounts))
	for i := range accounts {
		res[i] = ToAccountResponse(&accounts[i])
	}
	return ListAccountsResponse{Accounts: res}
}
