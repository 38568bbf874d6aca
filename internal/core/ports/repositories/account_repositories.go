package repositories

import (
	"context"

	"github.com/corebank/bank_ledger_app/internal/core/domain"
)

// AccountRepository defines persistence operations for accounts.
type AccountRepository interface {
	// SaveAccount stores a new account, assigns it the next sequential
	// account ID and returns that ID.
	SaveAccount(ctx context.Context, account domain.Account) (int64, error)

	// FindAccountByID returns a snapshot of the account with the given ID, or
	// apperrors.ErrNotFound if it does not exist.
	FindAccountByID(ctx context.Context, accountID int64) (*domain.Account, error)

	// ListAccounts returns snapshots of all accounts in ascending account ID order.
	ListAccounts(ctx context.Context) ([]domain.Account, error)
}
