package ledger

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/QuangTung97/promo-engagement/service/engagement"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
)

// ErrReferenceConflict when a reference was already used for another user or amount
var ErrReferenceConflict = errors.New("ledger reference reused with different entry")

// Entry is one row of the points ledger
type Entry struct {
	ID        int64           `db:"id"`
	Reference string          `db:"reference"`
	UserID    int64           `db:"user_id"`
	Amount    decimal.Decimal `db:"amount"`
}

// Ledger credits points in the point_ledger table, implements engagement.Ledger
type Ledger struct {
	db *sqlx.DB
}

var _ engagement.Ledger = &Ledger{}

// New ...
func New(db *sqlx.DB) *Ledger {
	return &Ledger{db: db}
}

// Issue credits amount to the user once per reference, returns the ledger entry id as transaction id.
// Issuing again with the same reference returns the existing entry.
func (l *Ledger) Issue(ctx context.Context, userID int64, amount decimal.Decimal, reference string) (string, error) {
	if reference == "" {
		return "", errors.New("ledger reference must not be empty")
	}
	if !amount.IsPositive() {
		return "", fmt.Errorf("ledger amount must be positive, got %s", amount)
	}

	tx, err := l.db.BeginTxx(ctx, nil)
	if err != nil {
		return "", err
	}
	defer func() { _ = tx.Rollback() }()

	query := `
INSERT INTO point_ledger (reference, user_id, amount)
VALUES (?, ?, ?)
ON DUPLICATE KEY UPDATE id = LAST_INSERT_ID(id)
`
	res, err := tx.ExecContext(ctx, query, reference, userID, amount.StringFixed(2))
	if err != nil {
		return "", err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return "", err
	}

	var entry Entry
	err = tx.GetContext(ctx, &entry, `SELECT id, reference, user_id, amount FROM point_ledger WHERE id = ?`, id)
	if err != nil {
		return "", err
	}
	if entry.UserID != userID || !entry.Amount.Equal(amount.Round(2)) {
		return "", fmt.Errorf("%w: %s", ErrReferenceConflict, reference)
	}

	if err := tx.Commit(); err != nil {
		return "", err
	}
	return strconv.FormatInt(entry.ID, 10), nil
}

// Balance sums the points credited to a user
func (l *Ledger) Balance(ctx context.Context, userID int64) (decimal.Decimal, error) {
	var total decimal.NullDecimal
	err := l.db.GetContext(ctx, &total, `SELECT SUM(amount) FROM point_ledger WHERE user_id = ?`, userID)
	if err != nil {
		return decimal.Zero, err
	}
	if !total.Valid {
		return decimal.Zero, nil
	}
	return total.Decimal, nil
}
