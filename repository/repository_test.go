package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/shopspring/decimal"
)

func newContext() context.Context {
	return context.Background()
}

func newTime(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	return t.UTC()
}

func newNullTime(s string) sql.NullTime {
	return sql.NullTime{Valid: true, Time: newTime(s)}
}

func newDecimal(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func newNullDecimal(s string) decimal.NullDecimal {
	return decimal.NewNullDecimal(newDecimal(s))
}

func newNullInt64(n int64) sql.NullInt64 {
	return sql.NullInt64{Valid: true, Int64: n}
}
