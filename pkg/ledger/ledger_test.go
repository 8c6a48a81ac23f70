package ledger

import (
	"context"
	"errors"
	"testing"

	"github.com/QuangTung97/promo-engagement/pkg/integration"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func newLedgerTest() *Ledger {
	tc := integration.NewTestCase()
	tc.Truncate("point_ledger")
	return New(tc.DB)
}

func newDecimal(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestLedger_Issue__Idempotent_On_Reference(t *testing.T) {
	l := newLedgerTest()
	ctx := context.Background()

	txID, err := l.Issue(ctx, 101, newDecimal("2.35"), "ref-01")
	assert.Equal(t, nil, err)
	assert.NotEqual(t, "", txID)

	again, err := l.Issue(ctx, 101, newDecimal("2.35"), "ref-01")
	assert.Equal(t, nil, err)
	assert.Equal(t, txID, again)

	other, err := l.Issue(ctx, 101, newDecimal("1.00"), "ref-02")
	assert.Equal(t, nil, err)
	assert.NotEqual(t, txID, other)

	balance, err := l.Balance(ctx, 101)
	assert.Equal(t, nil, err)
	assert.Equal(t, "3.35", balance.StringFixed(2))
}

func TestLedger_Issue__Reference_Conflict(t *testing.T) {
	l := newLedgerTest()
	ctx := context.Background()

	_, err := l.Issue(ctx, 101, newDecimal("2.35"), "ref-01")
	assert.Equal(t, nil, err)

	_, err = l.Issue(ctx, 102, newDecimal("2.35"), "ref-01")
	assert.True(t, errors.Is(err, ErrReferenceConflict))

	balance, err := l.Balance(ctx, 102)
	assert.Equal(t, nil, err)
	assert.True(t, balance.IsZero())
}

func TestLedger_Issue__Invalid_Input(t *testing.T) {
	l := &Ledger{}

	_, err := l.Issue(context.Background(), 101, newDecimal("1.00"), "")
	assert.Equal(t, "ledger reference must not be empty", err.Error())

	_, err = l.Issue(context.Background(), 101, decimal.Zero, "ref-01")
	assert.Equal(t, "ledger amount must be positive, got 0", err.Error())
}
