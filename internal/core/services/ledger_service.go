package services

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/corebank/bank_ledger_app/internal/apperrors"
	"github.com/corebank/bank_ledger_app/internal/core/domain"
	portsrepo "github.com/corebank/bank_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/corebank/bank_ledger_app/internal/core/ports/services"
	"github.com/corebank/bank_ledger_app/internal/dto"
	"github.com/corebank/bank_ledger_app/internal/middleware"
	"github.com/shopspring/decimal"
)

const (
	initialDepositDescription = "Initial deposit"
	interestDescription       = "Daily interest payment"

	daysPerYear = 365

	// Interest is posted at this precision so the returned amount matches the
	// recorded transaction exactly.
	interestPrecision = 4
)

// LedgerService implements the ledger operations over the repository ports:
// opening accounts, recording deposits, withdrawals and transfers, statement
// generation and simple daily interest.
type LedgerService struct {
	accountRepo portsrepo.AccountRepository
	txnRepo     portsrepo.TransactionRepository

	// mu serializes all mutating operations, so a funds check and the apply
	// that follows it form one atomic step even under concurrent callers.
	mu sync.Mutex
}

// NewLedgerService creates a new LedgerService.
func NewLedgerService(accountRepo portsrepo.AccountRepository, txnRepo portsrepo.TransactionRepository) *LedgerService {
	return &LedgerService{
		accountRepo: accountRepo,
		txnRepo:     txnRepo,
	}
}

var _ portssvc.LedgerSvcFacade = (*LedgerService)(nil)

// CreateAccount opens a new account with the given customer name. The account
// starts at a zero balance; a positive initial deposit is then posted as a
// credit transaction, so the balance always equals the sum of recorded
// transactions.
func (s *LedgerService) CreateAccount(ctx context.Context, req dto.CreateAccountRequest) (*domain.Account, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if req.InitialDeposit.IsNegative() {
		return nil, fmt.Errorf("%w: initial deposit must not be negative", apperrors.ErrValidation)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	account := domain.Account{
		CustomerName: req.CustomerName,
		Balance:      decimal.Zero,
		Status:       domain.Active,
		CreatedAt:    time.Now().UTC(),
	}

	accountID, err := s.accountRepo.SaveAccount(ctx, account)
	if err != nil {
		logger.Error("Failed to save account in repository", slog.String("error", err.Error()))
		return nil, err
	}
	account.AccountID = accountID

	if req.InitialDeposit.IsPositive() {
		txn, err := s.applyTransaction(ctx, accountID, domain.Credit, req.InitialDeposit, initialDepositDescription)
		if err != nil {
			logger.Error("Failed to post initial deposit", slog.String("error", err.Error()), slog.Int64("account_id", accountID))
			return nil, err
		}
		account.Balance = txn.BalanceAfter
	}

	logger.Info("Account created", slog.Int64("account_id", accountID), slog.String("customer_name", account.CustomerName))
	return &account, nil
}

// Deposit credits the account and returns the recorded transaction.
func (s *LedgerService) Deposit(ctx context.Context, accountID int64, req dto.AmountRequest) (*domain.Transaction, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := validateAmount(req.Amount); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.accountRepo.FindAccountByID(ctx, accountID); err != nil {
		return nil, err
	}

	txn, err := s.applyTransaction(ctx, accountID, domain.Credit, req.Amount, defaultDescription(req.Description, "Deposit"))
	if err != nil {
		return nil, err
	}

	logger.Info("Deposit recorded", slog.Int64("account_id", accountID), slog.String("amount", req.Amount.String()))
	return txn, nil
}

// Withdraw debits the account after checking that the amount does not exceed
// the current balance. Overdrafts are never permitted: a failed withdrawal
// leaves the balance untouched and records nothing.
func (s *LedgerService) Withdraw(ctx context.Context, accountID int64, req dto.AmountRequest) (*domain.Transaction, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := validateAmount(req.Amount); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if req.Amount.GreaterThan(account.Balance) {
		return nil, fmt.Errorf("%w: balance %s, requested %s", apperrors.ErrInsufficientFunds, account.Balance.String(), req.Amount.String())
	}

	txn, err := s.applyTransaction(ctx, accountID, domain.Debit, req.Amount, defaultDescription(req.Description, "Withdrawal"))
	if err != nil {
		return nil, err
	}

	logger.Info("Withdrawal recorded", slog.Int64("account_id", accountID), slog.String("amount", req.Amount.String()))
	return txn, nil
}

// Transfer moves the amount from the source account to the destination as one
// atomic operation: both legs are validated up front and applied together, so
// a partial transfer can never be observed. Exactly two transactions are
// recorded, the debit on the source first.
func (s *LedgerService) Transfer(ctx context.Context, req dto.TransferRequest) ([]domain.Transaction, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := validateAmount(req.Amount); err != nil {
		return nil, err
	}
	if req.FromAccountID == req.ToAccountID {
		return nil, fmt.Errorf("%w: cannot transfer to the same account", apperrors.ErrValidation)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	from, err := s.accountRepo.FindAccountByID(ctx, req.FromAccountID)
	if err != nil {
		return nil, err
	}
	if _, err := s.accountRepo.FindAccountByID(ctx, req.ToAccountID); err != nil {
		return nil, err
	}
	if req.Amount.GreaterThan(from.Balance) {
		return nil, fmt.Errorf("%w: balance %s, requested %s", apperrors.ErrInsufficientFunds, from.Balance.String(), req.Amount.String())
	}

	description := defaultDescription(req.Description, fmt.Sprintf("Transfer %d -> %d", req.FromAccountID, req.ToAccountID))
	legs := []domain.Transaction{
		{AccountID: req.FromAccountID, TransactionType: domain.Debit, Amount: req.Amount, Description: description},
		{AccountID: req.ToAccountID, TransactionType: domain.Credit, Amount: req.Amount, Description: description},
	}

	applied, err := s.txnRepo.ApplyTransactions(ctx, legs)
	if err != nil {
		logger.Error("Failed to apply transfer", slog.String("error", err.Error()))
		return nil, err
	}

	logger.Info("Transfer recorded",
		slog.Int64("from_account_id", req.FromAccountID),
		slog.Int64("to_account_id", req.ToAccountID),
		slog.String("amount", req.Amount.String()),
	)
	return applied, nil
}

// GetBalance returns the account's current balance.
func (s *LedgerService) GetBalance(ctx context.Context, accountID int64) (decimal.Decimal, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		return decimal.Zero, err
	}
	return account.Balance, nil
}

// GetAccountInfo returns a snapshot of the account's current fields.
func (s *LedgerService) GetAccountInfo(ctx context.Context, accountID int64) (*domain.Account, error) {
	return s.accountRepo.FindAccountByID(ctx, accountID)
}

// ListAccounts returns snapshots of all accounts.
func (s *LedgerService) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	return s.accountRepo.ListAccounts(ctx)
}

// GenerateStatement returns the account's transactions, most recent first,
// restricted to the last windowDays days. windowDays <= 0 returns the full
// history.
func (s *LedgerService) GenerateStatement(ctx context.Context, accountID int64, windowDays int) ([]domain.Transaction, error) {
	if _, err := s.accountRepo.FindAccountByID(ctx, accountID); err != nil {
		return nil, err
	}

	var since time.Time
	if windowDays > 0 {
		since = time.Now().UTC().AddDate(0, 0, -windowDays)
	}
	return s.txnRepo.FindTransactionsByAccountID(ctx, accountID, since)
}

// CalculateInterest computes one day of simple interest on the current balance
// at the given annual rate and, when positive, posts it as a credit
// transaction. Each call applies a single day's interest on the balance at
// that moment; there is no compounding schedule.
func (s *LedgerService) CalculateInterest(ctx context.Context, accountID int64, annualRate decimal.Decimal) (decimal.Decimal, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if annualRate.IsNegative() {
		return decimal.Zero, fmt.Errorf("%w: annual rate must not be negative", apperrors.ErrValidation)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		return decimal.Zero, err
	}

	dailyRate := annualRate.Div(decimal.NewFromInt(daysPerYear))
	interest := account.Balance.Mul(dailyRate).Round(interestPrecision)
	if !interest.IsPositive() {
		return decimal.Zero, nil
	}

	if _, err := s.applyTransaction(ctx, accountID, domain.Credit, interest, interestDescription); err != nil {
		return decimal.Zero, err
	}

	logger.Info("Interest posted",
		slog.Int64("account_id", accountID),
		slog.String("annual_rate", annualRate.String()),
		slog.String("interest", interest.String()),
	)
	return interest, nil
}

// applyTransaction records a single credit or debit against the account. The
// balance arithmetic is unconditional; funds checks happen in the callers
// before this point. Callers hold s.mu.
func (s *LedgerService) applyTransaction(ctx context.Context, accountID int64, txnType domain.TransactionType, amount decimal.Decimal, description string) (*domain.Transaction, error) {
	applied, err := s.txnRepo.ApplyTransactions(ctx, []domain.Transaction{{
		AccountID:       accountID,
		TransactionType: txnType,
		Amount:          amount,
		Description:     description,
	}})
	if err != nil {
		return nil, err
	}
	return &applied[0], nil
}

func validateAmount(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return fmt.Errorf("%w: amount must be positive", apperrors.ErrValidation)
	}
	return nil
}

func defaultDescription(description, fallback string) string {
	if description == "" {
		return fallback
	}
	return description
}
