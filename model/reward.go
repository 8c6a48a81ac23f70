package model

import (
	"database/sql"
	"github.com/shopspring/decimal"
	"time"
)

// RewardRule ...
type RewardRule struct {
	ID   int64  `db:"id"`
	Name string `db:"name"`

	Min  decimal.Decimal `db:"min_amount"`
	Max  decimal.Decimal `db:"max_amount"`
	Mean decimal.Decimal `db:"mean_amount"`
	Beta decimal.Decimal `db:"beta"`

	// FirstActionReward is W, the fixed reward of a qualifying first action
	FirstActionReward decimal.NullDecimal `db:"first_action_reward"`
}

// NullRewardRule ...
type NullRewardRule struct {
	Valid bool
	Rule  RewardRule
}

// RewardIssuance records a reward hand-off to the ledger, used for reconciliation
type RewardIssuance struct {
	ID           int64  `db:"id"`
	Reference    string `db:"reference"`
	AssignmentID int64  `db:"assignment_id"`
	UserID       int64  `db:"user_id"`
	RewardRuleID int64  `db:"reward_rule_id"`

	Amount      decimal.Decimal `db:"amount"`
	FirstAction bool            `db:"first_action"`

	Status        IssuanceStatus `db:"status"`
	TransactionID sql.NullString `db:"transaction_id"`
	Attempts      int            `db:"attempts"`

	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// IssuanceStatus ...
type IssuanceStatus int

const (
	// IssuanceStatusPending ...
	IssuanceStatusPending IssuanceStatus = 1
	// IssuanceStatusIssued ...
	IssuanceStatusIssued IssuanceStatus = 2
	// IssuanceStatusFailed needs reconciliation
	IssuanceStatusFailed IssuanceStatus = 3
	// IssuanceStatusZero when sampled amount is zero, nothing sent to ledger
	IssuanceStatusZero IssuanceStatus = 4
)
