package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/QuangTung97/promo-engagement/model"
)

// Reward stores reward issuance records
type Reward interface {
	InsertIssuance(ctx context.Context, issuance model.RewardIssuance) (int64, error)
	// LockIssuances holds an exclusive lock on the reward class of a user until the transaction ends.
	// Must be called inside a transaction.
	LockIssuances(ctx context.Context, userID int64, rewardRuleID int64) error
	// CountIssuances counts issuances of a user within a reward class, reading the latest committed rows
	CountIssuances(ctx context.Context, userID int64, rewardRuleID int64) (int64, error)
	UpdateIssuanceResult(
		ctx context.Context, id int64, status model.IssuanceStatus, transactionID sql.NullString,
	) error
	// FindIssuancesToReconcile returns pending or failed issuances last updated before updatedBefore
	FindIssuancesToReconcile(ctx context.Context, updatedBefore time.Time, limit int) ([]model.RewardIssuance, error)
}

type rewardImpl struct {
}

// NewReward ...
func NewReward() Reward {
	return &rewardImpl{}
}

// InsertIssuance ...
func (r *rewardImpl) InsertIssuance(ctx context.Context, issuance model.RewardIssuance) (int64, error) {
	query := `
INSERT INTO reward_issuance (
	reference, assignment_id, user_id, reward_rule_id,
	amount, first_action, status, transaction_id, attempts
) VALUES (
	:reference, :assignment_id, :user_id, :reward_rule_id,
	:amount, :first_action, :status, :transaction_id, :attempts
)
`
	res, err := GetTx(ctx).NamedExecContext(ctx, query, issuance)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// LockIssuances inserts the lock row when missing, both paths take a record lock
func (r *rewardImpl) LockIssuances(ctx context.Context, userID int64, rewardRuleID int64) error {
	query := `
INSERT INTO reward_issuance_lock (user_id, reward_rule_id) VALUES (?, ?)
ON DUPLICATE KEY UPDATE user_id = user_id
`
	_, err := GetTx(ctx).ExecContext(ctx, query, userID, rewardRuleID)
	return err
}

// CountIssuances ...
func (r *rewardImpl) CountIssuances(ctx context.Context, userID int64, rewardRuleID int64) (int64, error) {
	query := `SELECT COUNT(*) FROM reward_issuance WHERE user_id = ? AND reward_rule_id = ? LOCK IN SHARE MODE`
	var count int64
	err := GetReadonly(ctx).GetContext(ctx, &count, query, userID, rewardRuleID)
	return count, err
}

// UpdateIssuanceResult ...
func (r *rewardImpl) UpdateIssuanceResult(
	ctx context.Context, id int64, status model.IssuanceStatus, transactionID sql.NullString,
) error {
	query := `
UPDATE reward_issuance SET status = ?, transaction_id = ?, attempts = attempts + 1
WHERE id = ?
`
	_, err := GetTx(ctx).ExecContext(ctx, query, status, transactionID, id)
	return err
}

// FindIssuancesToReconcile ...
func (r *rewardImpl) FindIssuancesToReconcile(
	ctx context.Context, updatedBefore time.Time, limit int,
) ([]model.RewardIssuance, error) {
	query := `
SELECT id, reference, assignment_id, user_id, reward_rule_id, amount, first_action,
	status, transaction_id, attempts, created_at, updated_at
FROM reward_issuance
WHERE status IN (?, ?) AND updated_at < ?
ORDER BY id LIMIT ?
`
	var result []model.RewardIssuance
	err := GetReadonly(ctx).SelectContext(ctx, &result, query,
		model.IssuanceStatusPending, model.IssuanceStatusFailed, updatedBefore, limit)
	return result, err
}
