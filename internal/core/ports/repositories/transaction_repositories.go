package repositories

import (
	"context"
	"time"

	"github.com/corebank/bank_ledger_app/internal/core/domain"
)

// TransactionRepository defines persistence operations for the append-only
// transaction log.
type TransactionRepository interface {
	// ApplyTransactions records one or more transaction legs atomically: every
	// referenced account must exist (apperrors.ErrNotFound otherwise), each
	// leg's signed amount is added to its account balance, and the completed
	// rows are appended to the log with sequential transaction IDs, timestamps
	// and the post-mutation BalanceAfter. Either all legs are applied or none.
	//
	// The arithmetic itself is unconditional; balance floor checks are the
	// caller's responsibility.
	ApplyTransactions(ctx context.Context, legs []domain.Transaction) ([]domain.Transaction, error)

	// FindTransactionsByAccountID returns the account's transactions, most
	// recent first. Transactions recorded before since are excluded; a zero
	// since returns the full history.
	FindTransactionsByAccountID(ctx context.Context, accountID int64, since time.Time) ([]domain.Transaction, error)
}
