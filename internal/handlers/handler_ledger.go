package handlers

import (
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/corebank/bank_ledger_app/internal/apperrors"
	portssvc "github.com/corebank/bank_ledger_app/internal/core/ports/services"
	"github.com/corebank/bank_ledger_app/internal/dto"
	"github.com/corebank/bank_ledger_app/internal/middleware"
	"github.com/corebank/bank_ledger_app/internal/platform/config"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// ledgerHandler handles HTTP requests that record transactions.
type ledgerHandler struct {
	ledgerService     portssvc.LedgerSvcFacade
	defaultAnnualRate decimal.Decimal
}

// newLedgerHandler creates a new ledgerHandler.
func newLedgerHandler(ls portssvc.LedgerSvcFacade, defaultAnnualRate decimal.Decimal) *ledgerHandler {
	return &ledgerHandler{
		ledgerService:     ls,
		defaultAnnualRate: defaultAnnualRate,
	}
}

// registerLedgerRoutes registers routes that mutate account balances.
func registerLedgerRoutes(rg *gin.RouterGroup, cfg *config.Config, ledgerService portssvc.LedgerSvcFacade) {
	h := newLedgerHandler(ledgerService, cfg.DefaultAnnualRate)

	accounts := rg.Group("/accounts")
	{
		accounts.POST("/:accountID/deposit", h.deposit)
		accounts.POST("/:accountID/withdraw", h.withdraw)
		accounts.POST("/:accountID/interest", h.applyInterest)
	}
	rg.POST("/transfers", h.transfer)
}

// deposit godoc
// @Summary Deposit into an account
// @Description Credits the account and records the transaction
// @Tags ledger
// @Accept  json
// @Produce  json
// @Param   accountID path int true "Account ID"
// @Param   deposit body dto.AmountRequest true "Deposit details"
// @Success 201 {object} dto.TransactionResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 404 {object} map[string]string "Account not found"
// @Failure 500 {object} map[string]string "Failed to record deposit"
// @Router /accounts/{accountID}/deposit [post]
func (h *ledgerHandler) deposit(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	accountID, ok := accountIDParam(c)
	if !ok {
		return
	}

	var req dto.AmountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for Deposit", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	txn, err := h.ledgerService.Deposit(c.Request.Context(), accountID, req)
	if err != nil {
		h.writeLedgerError(c, err, "Failed to record deposit")
		return
	}

	c.JSON(http.StatusCreated, dto.ToTransactionResponse(txn))
}

// withdraw godoc
// @Summary Withdraw from an account
// @Description Debits the account and records the transaction; overdrafts are rejected
// @Tags ledger
// @Accept  json
// @Produce  json
// @Param   accountID path int true "Account ID"
// @Param   withdrawal body dto.AmountRequest true "Withdrawal details"
// @Success 201 {object} dto.TransactionResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 404 {object} map[string]string "Account not found"
// @Failure 409 {object} map[string]string "Insufficient funds"
// @Failure 500 {object} map[string]string "Failed to record withdrawal"
// @Router /accounts/{accountID}/withdraw [post]
func (h *ledgerHandler) withdraw(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	accountID, ok := accountIDParam(c)
	if !ok {
		return
	}

	var req dto.AmountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for Withdraw", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	txn, err := h.ledgerService.Withdraw(c.Request.Context(), accountID, req)
	if err != nil {
		h.writeLedgerError(c, err, "Failed to record withdrawal")
		return
	}

	c.JSON(http.StatusCreated, dto.ToTransactionResponse(txn))
}

// transfer godoc
// @Summary Transfer between accounts
// @Description Atomically debits the source and credits the destination account
// @Tags ledger
// @Accept  json
// @Produce  json
// @Param   transfer body dto.TransferRequest true "Transfer details"
// @Success 201 {object} dto.TransferResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 404 {object} map[string]string "Account not found"
// @Failure 409 {object} map[string]string "Insufficient funds"
// @Failure 500 {object} map[string]string "Failed to record transfer"
// @Router /transfers [post]
func (h *ledgerHandler) transfer(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.TransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for Transfer", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	transactions, err := h.ledgerService.Transfer(c.Request.Context(), req)
	if err != nil {
		h.writeLedgerError(c, err, "Failed to record transfer")
		return
	}

	c.JSON(http.StatusCreated, dto.TransferResponse{Transactions: dto.ToTransactionResponses(transactions)})
}

// applyInterest godoc
// @Summary Apply daily interest
// @Description Computes one day of simple interest on the current balance and posts it as a credit
// @Tags ledger
// @Accept  json
// @Produce  json
// @Param   accountID path int true "Account ID"
// @Param   interest body dto.CalculateInterestRequest false "Optional annual rate override"
// @Success 200 {object} dto.InterestResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 404 {object} map[string]string "Account not found"
// @Failure 500 {object} map[string]string "Failed to apply interest"
// @Router /accounts/{accountID}/interest [post]
func (h *ledgerHandler) applyInterest(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	accountID, ok := accountIDParam(c)
	if !ok {
		return
	}

	// The body is optional; an empty body means the configured default rate.
	var req dto.CalculateInterestRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		logger.Warn("Failed to bind JSON for ApplyInterest", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	annualRate := h.defaultAnnualRate
	if req.AnnualRate != nil {
		annualRate = *req.AnnualRate
	}

	interest, err := h.ledgerService.CalculateInterest(c.Request.Context(), accountID, annualRate)
	if err != nil {
		h.writeLedgerError(c, err, "Failed to apply interest")
		return
	}

	c.JSON(http.StatusOK, dto.InterestResponse{
		AccountID:  accountID,
		AnnualRate: annualRate,
		Interest:   interest,
	})
}

// writeLedgerError maps service errors onto HTTP responses: validation errors
// to 400, missing accounts to 404, insufficient funds to 409, the rest to 500.
func (h *ledgerHandler) writeLedgerError(c *gin.Context, err error, fallback string) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	switch {
	case errors.Is(err, apperrors.ErrValidation):
		logger.Warn("Validation error", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrNotFound):
		logger.Warn("Account not found", slog.String("error", err.Error()))
		c.JSON(http.StatusNotFound, gin.H{"error": "Account not found"})
	case errors.Is(err, apperrors.ErrInsufficientFunds):
		logger.Warn("Insufficient funds", slog.String("error", err.Error()))
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		logger.Error("Service error", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": fallback})
	}
}
