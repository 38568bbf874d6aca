package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// AccountStatus indicates the lifecycle state of an account.
type AccountStatus string

const (
	// Active is the only status in use; no closure or freeze operations exist yet.
	Active AccountStatus = "ACTIVE"
)

// Account represents a named balance-holding entity within the ledger.
// AccountID is a sequential integer assigned by the repository on save and
// never reused. Balance is mutated only by transaction processing.
type Account struct {
	AccountID    int64           `json:"accountID"`
	CustomerName string          `json:"customerName"`
	Balance      decimal.Decimal `json:"balance"`
	Status       AccountStatus   `json:"status"`
	CreatedAt    time.Time       `json:"createdAt"`
}
