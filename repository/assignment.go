package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/QuangTung97/promo-engagement/model"
	"github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
)

//go:generate otelwrap --out assignment_wrappers.go . Assignment

// ErrOpenAssignmentExists when the user already has a non terminal assignment of the campaign
var ErrOpenAssignmentExists = errors.New("open assignment already exists")

// Assignment ...
type Assignment interface {
	GetAssignment(ctx context.Context, id int64) (model.NullAssignment, error)

	// The Find methods for the sweep return rows with id > afterID ordered by id,
	// the last id of a page is the cursor for the next one.

	FindPending(ctx context.Context, afterID int64, limit int) ([]model.Assignment, error)
	// FindDueForResend returns delivered assignments of resendable card types with delivered_at <= deliveredBefore
	// and resend_count < maxResends, not yet expired at now
	FindDueForResend(
		ctx context.Context, deliveredBefore time.Time, now time.Time, maxResends int, afterID int64, limit int,
	) ([]model.Assignment, error)
	// FindExpired returns delivered assignments with expires_at < now
	FindExpired(ctx context.Context, now time.Time, afterID int64, limit int) ([]model.Assignment, error)

	// ConditionalUpdate writes a only if the stored row still has the expected status and a.Version.
	// Returns false when the precondition fails. Must be called inside a transaction.
	ConditionalUpdate(ctx context.Context, a model.Assignment, expected model.AssignmentStatus) (bool, error)

	InsertAssignment(ctx context.Context, a model.Assignment) (int64, error)
	InsertResponse(ctx context.Context, r model.AssignmentResponse) error
	FindResponses(ctx context.Context, assignmentID int64) ([]model.AssignmentResponse, error)
}

type assignmentImpl struct {
}

// NewAssignment ...
func NewAssignment() Assignment {
	return &assignmentImpl{}
}

const assignmentColumns = `id, user_id, campaign_id, step_seq, status, version,
	resend_count, target_delivery_at, delivered_at, responded_at, expires_at,
	answer, reward_amount, created_at, updated_at`

// GetAssignment ...
func (r *assignmentImpl) GetAssignment(ctx context.Context, id int64) (model.NullAssignment, error) {
	query := `SELECT ` + assignmentColumns + ` FROM assignment WHERE id = ?`

	var result model.Assignment
	err := GetReadonly(ctx).GetContext(ctx, &result, query, id)
	if err == sql.ErrNoRows {
		return model.NullAssignment{}, nil
	}
	if err != nil {
		return model.NullAssignment{}, err
	}
	return model.NullAssignment{Valid: true, Assignment: result}, nil
}

// FindPending ...
func (r *assignmentImpl) FindPending(ctx context.Context, afterID int64, limit int) ([]model.Assignment, error) {
	query := `SELECT ` + assignmentColumns + ` FROM assignment
WHERE status = ? AND id > ? ORDER BY id LIMIT ?`

	var result []model.Assignment
	err := GetReadonly(ctx).SelectContext(ctx, &result, query, model.AssignmentStatusPending, afterID, limit)
	return result, err
}

// FindDueForResend ...
func (r *assignmentImpl) FindDueForResend(
	ctx context.Context, deliveredBefore time.Time, now time.Time, maxResends int, afterID int64, limit int,
) ([]model.Assignment, error) {
	query, args, err := sqlx.In(`SELECT `+assignmentColumns+` FROM assignment
WHERE status = ? AND id > ? AND delivered_at <= ? AND expires_at >= ? AND resend_count < ?
AND campaign_id IN (SELECT id FROM campaign WHERE card_type IN (?))
ORDER BY id LIMIT ?`,
		model.AssignmentStatusDelivered, afterID, deliveredBefore, now, maxResends,
		model.ResendableCardTypes(), limit,
	)
	if err != nil {
		return nil, err
	}

	var result []model.Assignment
	err = GetReadonly(ctx).SelectContext(ctx, &result, query, args...)
	return result, err
}

// FindExpired ...
func (r *assignmentImpl) FindExpired(
	ctx context.Context, now time.Time, afterID int64, limit int,
) ([]model.Assignment, error) {
	query := `SELECT ` + assignmentColumns + ` FROM assignment
WHERE status = ? AND id > ? AND expires_at < ?
ORDER BY id LIMIT ?`

	var result []model.Assignment
	err := GetReadonly(ctx).SelectContext(ctx, &result, query,
		model.AssignmentStatusDelivered, afterID, now, limit)
	return result, err
}

// ConditionalUpdate ...
func (r *assignmentImpl) ConditionalUpdate(
	ctx context.Context, a model.Assignment, expected model.AssignmentStatus,
) (bool, error) {
	query := `
UPDATE assignment SET
	step_seq = ?, status = ?, version = version + 1,
	resend_count = ?, target_delivery_at = ?, delivered_at = ?, responded_at = ?, expires_at = ?,
	answer = ?, reward_amount = ?
WHERE id = ? AND status = ? AND version = ?
`
	res, err := GetTx(ctx).ExecContext(ctx, query,
		a.StepSeq, a.Status,
		a.ResendCount, a.TargetDeliveryAt, a.DeliveredAt, a.RespondedAt, a.ExpiresAt,
		a.Answer, a.RewardAmount,
		a.ID, expected, a.Version,
	)
	if err != nil {
		return false, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected == 1, nil
}

const mysqlErrDuplicateEntry = 1062

// InsertAssignment ...
func (r *assignmentImpl) InsertAssignment(ctx context.Context, a model.Assignment) (int64, error) {
	query := `
INSERT INTO assignment (
	user_id, campaign_id, step_seq, status, version, resend_count,
	target_delivery_at, delivered_at, responded_at, expires_at, answer, reward_amount
) VALUES (
	:user_id, :campaign_id, :step_seq, :status, :version, :resend_count,
	:target_delivery_at, :delivered_at, :responded_at, :expires_at, :answer, :reward_amount
)
`
	res, err := GetTx(ctx).NamedExecContext(ctx, query, a)
	if err != nil {
		var mysqlErr *mysql.MySQLError
		if errors.As(err, &mysqlErr) && mysqlErr.Number == mysqlErrDuplicateEntry {
			return 0, ErrOpenAssignmentExists
		}
		return 0, err
	}
	return res.LastInsertId()
}

// InsertResponse ...
func (r *assignmentImpl) InsertResponse(ctx context.Context, resp model.AssignmentResponse) error {
	query := `
INSERT INTO assignment_response (assignment_id, step_seq, kind, answers)
VALUES (:assignment_id, :step_seq, :kind, :answers)
`
	_, err := GetTx(ctx).NamedExecContext(ctx, query, resp)
	return err
}

// FindResponses ...
func (r *assignmentImpl) FindResponses(ctx context.Context, assignmentID int64) ([]model.AssignmentResponse, error) {
	query := `
SELECT id, assignment_id, step_seq, kind, answers, created_at
FROM assignment_response WHERE assignment_id = ? ORDER BY id
`
	var result []model.AssignmentResponse
	err := GetReadonly(ctx).SelectContext(ctx, &result, query, assignmentID)
	return result, err
}
