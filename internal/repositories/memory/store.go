// Package memory implements the repository ports over process memory. All
// ledger state lives in one Store for the duration of a single run; there is
// no persistence layer behind it.
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/corebank/bank_ledger_app/internal/apperrors"
	"github.com/corebank/bank_ledger_app/internal/core/domain"
)

// Store holds every account and the append-only transaction log. A single
// mutex guards all state, so each repository call is atomic and multi-leg
// applies can never be observed half done.
type Store struct {
	mu            sync.RWMutex
	accounts      map[int64]domain.Account
	transactions  []domain.Transaction
	nextAccountID int64
	nextTxnID     int64
}

// NewStore creates an empty store. Account IDs are assigned sequentially
// starting at accountIDBase; transaction IDs start at 1.
func NewStore(accountIDBase int64) *Store {
	return &Store{
		accounts:      make(map[int64]domain.Account),
		nextAccountID: accountIDBase,
		nextTxnID:     1,
	}
}

// SaveAccount stores a new account under the next sequential account ID and
// returns that ID. IDs are never reused.
func (s *Store) SaveAccount(ctx context.Context, account domain.Account) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	account.AccountID = s.nextAccountID
	s.nextAccountID++
	s.accounts[account.AccountID] = account
	return account.AccountID, nil
}

// FindAccountByID returns a snapshot of the account, or apperrors.ErrNotFound.
func (s *Store) FindAccountByID(ctx context.Context, accountID int64) (*domain.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	account, ok := s.accounts[accountID]
	if !ok {
		return nil, fmt.Errorf("%w: account %d", apperrors.ErrNotFound, accountID)
	}
	return &account, nil
}

// ListAccounts returns snapshots of all accounts in ascending account ID order.
func (s *Store) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	accounts := make([]domain.Account, 0, len(s.accounts))
	for _, account := range s.accounts {
		accounts = append(accounts, account)
	}
	sort.Slice(accounts, func(i, j int) bool { return accounts[i].AccountID < accounts[j].AccountID })
	return accounts, nil
}

// ApplyTransactions records the given legs atomically under one critical
// section: all referenced accounts are verified first, then every leg's signed
// amount is added to its account balance and the completed row is appended to
// the log. The arithmetic is unconditional; balance floor checks belong to the
// caller.
func (s *Store) ApplyTransactions(ctx context.Context, legs []domain.Transaction) ([]domain.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range legs {
		if _, ok := s.accounts[legs[i].AccountID]; !ok {
			return nil, fmt.Errorf("%w: account %d", apperrors.ErrNotFound, legs[i].AccountID)
		}
	}

	now := time.Now().UTC()
	applied := make([]domain.Transaction, len(legs))
	for i := range legs {
		account := s.accounts[legs[i].AccountID]
		account.Balance = account.Balance.Add(legs[i].SignedAmount())
		s.accounts[account.AccountID] = account

		txn := legs[i]
		txn.TransactionID = s.nextTxnID
		s.nextTxnID++
		txn.Timestamp = now
		txn.BalanceAfter = account.Balance
		s.transactions = append(s.transactions, txn)
		applied[i] = txn
	}
	return applied, nil
}

// FindTransactionsByAccountID returns the account's transactions, most recent
// first. Rows recorded before since are excluded; a zero since returns the
// full history.
func (s *Store) FindTransactionsByAccountID(ctx context.Context, accountID int64, since time.Time) ([]domain.Transaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	// The log is append-only, so walking it backwards yields newest first.
	var out []domain.Transaction
	for i := len(s.transactions) - 1; i >= 0; i-- {
		txn := s.transactions[i]
		if txn.AccountID != accountID {
			continue
		}
		if !since.IsZero() && txn.Timestamp.Before(since) {
			continue
		}
		out = append(out, txn)
	}
	return out, nil
}
