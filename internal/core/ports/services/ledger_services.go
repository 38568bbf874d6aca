package services

import (
	"context"

	"github.com/corebank/bank_ledger_app/internal/core/domain"
	"github.com/corebank/bank_ledger_app/internal/dto"
	"github.com/shopspring/decimal"
)

// LedgerSvcFacade defines the ledger operations exposed to the transport layer.
type LedgerSvcFacade interface {
	// CreateAccount opens a new account and, for a positive initial deposit,
	// posts the opening credit transaction.
	CreateAccount(ctx context.Context, req dto.CreateAccountRequest) (*domain.Account, error)

	// Deposit credits the account and returns the recorded transaction.
	Deposit(ctx context.Context, accountID int64, req dto.AmountRequest) (*domain.Transaction, error)

	// Withdraw debits the account and returns the recorded transaction.
	// Fails with apperrors.ErrInsufficientFunds when the amount exceeds the
	// current balance; the balance is left untouched in that case.
	Withdraw(ctx context.Context, accountID int64, req dto.AmountRequest) (*domain.Transaction, error)

	// Transfer atomically debits the source account and credits the
	// destination, recording exactly two transactions (debit leg first).
	Transfer(ctx context.Context, req dto.TransferRequest) ([]domain.Transaction, error)

	// GetBalance returns the account's current balance.
	GetBalance(ctx context.Context, accountID int64) (decimal.Decimal, error)

	// GetAccountInfo returns a snapshot of the account's current fields.
	GetAccountInfo(ctx context.Context, accountID int64) (*domain.Account, error)

	// ListAccounts returns snapshots of all accounts.
	ListAccounts(ctx context.Context) ([]domain.Account, error)

	// GenerateStatement returns the account's transactions, most recent
	// first, restricted to the last windowDays days; windowDays <= 0 returns
	// the full history.
	GenerateStatement(ctx context.Context, accountID int64, windowDays int) ([]domain.Transaction, error)

	// CalculateInterest computes one day of simple interest on the current
	// balance at the given annual rate and, when positive, posts it as a
	// credit transaction. Returns the posted amount (zero when nothing was
	// posted).
	CalculateInterest(ctx context.Context, accountID int64, annualRate decimal.Decimal) (decimal.Decimal, error)
}

// ServiceContainer bundles the service facades handed to the HTTP layer.
type ServiceContainer struct {
	Ledger LedgerSvcFacade
}
