package memory_test

import (
	"context"
	"testing"
	"time"

	"github.com/corebank/bank_ledger_app/internal/apperrors"
	"github.com/corebank/bank_ledger_app/internal/core/domain"
	"github.com/corebank/bank_ledger_app/internal/repositories/memory"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAccount(name string) domain.Account {
	return domain.Account{
		CustomerName: name,
		Balance:      decimal.Zero,
		Status:       domain.Active,
		CreatedAt:    time.Now().UTC(),
	}
}

func TestSaveAccount_SequentialIDsFromBase(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore(1001)

	first, err := store.SaveAccount(ctx, newAccount("Alice"))
	require.NoError(t, err)
	second, err := store.SaveAccount(ctx, newAccount("Bob"))
	require.NoError(t, err)

	assert.Equal(t, int64(1001), first)
	assert.Equal(t, int64(1002), second)
}

func TestFindAccountByID_NotFound(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore(1001)

	_, err := store.FindAccountByID(ctx, 9999)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestApplyTransactions_MutatesBalanceAndAppendsLog(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore(1001)
	accountID, err := store.SaveAccount(ctx, newAccount("Alice"))
	require.NoError(t, err)

	applied, err := store.ApplyTransactions(ctx, []domain.Transaction{{
		AccountID:       accountID,
		TransactionType: domain.Credit,
		Amount:          decimal.NewFromInt(100),
		Description:     "Deposit",
	}})
	require.NoError(t, err)
	require.Len(t, applied, 1)
	assert.Equal(t, int64(1), applied[0].TransactionID)
	assert.True(t, decimal.NewFromInt(100).Equal(applied[0].BalanceAfter))
	assert.False(t, applied[0].Timestamp.IsZero())

	applied, err = store.ApplyTransactions(ctx, []domain.Transaction{{
		AccountID:       accountID,
		TransactionType: domain.Debit,
		Amount:          decimal.NewFromInt(40),
		Description:     "Withdrawal",
	}})
	require.NoError(t, err)
	assert.Equal(t, int64(2), applied[0].TransactionID)
	assert.True(t, decimal.NewFromInt(60).Equal(applied[0].BalanceAfter))

	account, err := store.FindAccountByID(ctx, accountID)
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(60).Equal(account.Balance))
}

func TestApplyTransactions_UnknownAccountLeavesStateUntouched(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore(1001)
	accountID, err := store.SaveAccount(ctx, newAccount("Alice"))
	require.NoError(t, err)

	// Second leg references a missing account: neither leg may apply.
	_, err = store.ApplyTransactions(ctx, []domain.Transaction{
		{AccountID: accountID, TransactionType: domain.Debit, Amount: decimal.NewFromInt(10)},
		{AccountID: 9999, TransactionType: domain.Credit, Amount: decimal.NewFromInt(10)},
	})
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	account, err := store.FindAccountByID(ctx, accountID)
	require.NoError(t, err)
	assert.True(t, account.Balance.IsZero(), "balance mutated by failed apply: %s", account.Balance)

	txns, err := store.FindTransactionsByAccountID(ctx, accountID, time.Time{})
	require.NoError(t, err)
	assert.Empty(t, txns)
}

func TestFindTransactionsByAccountID_FiltersAndOrders(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore(1001)
	alice, err := store.SaveAccount(ctx, newAccount("Alice"))
	require.NoError(t, err)
	bob, err := store.SaveAccount(ctx, newAccount("Bob"))
	require.NoError(t, err)

	for i, leg := range []domain.Transaction{
		{AccountID: alice, TransactionType: domain.Credit, Amount: decimal.NewFromInt(100)},
		{AccountID: bob, TransactionType: domain.Credit, Amount: decimal.NewFromInt(50)},
		{AccountID: alice, TransactionType: domain.Debit, Amount: decimal.NewFromInt(25)},
	} {
		_, err := store.ApplyTransactions(ctx, []domain.Transaction{leg})
		require.NoError(t, err, "leg %d", i)
	}

	txns, err := store.FindTransactionsByAccountID(ctx, alice, time.Time{})
	require.NoError(t, err)
	require.Len(t, txns, 2)
	// Most recent first: transaction IDs strictly descending, Alice's rows only.
	assert.Equal(t, int64(3), txns[0].TransactionID)
	assert.Equal(t, int64(1), txns[1].TransactionID)
	for _, txn := range txns {
		assert.Equal(t, alice, txn.AccountID)
	}

	// A cutoff in the future excludes everything.
	txns, err = store.FindTransactionsByAccountID(ctx, alice, time.Now().UTC().Add(time.Hour))
	require.NoError(t, err)
	assert.Empty(t, txns)
}

func TestListAccounts_AscendingIDOrder(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore(1001)
	for _, name := range []string{"Alice", "Bob", "Carol"} {
		_, err := store.SaveAccount(ctx, newAccount(name))
		require.NoError(t, err)
	}

	accounts, err := store.ListAccounts(ctx)
	require.NoError(t, err)
	require.Len(t, accounts, 3)
	for i := 1; i < len(accounts); i++ {
		assert.Less(t, accounts[i-1].AccountID, accounts[i].AccountID)
	}
}
