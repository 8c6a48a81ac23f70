package config

import (
	"time"

	"github.com/QuangTung97/promo-engagement/model"
	"github.com/shopspring/decimal"
)

// TTLConfig is the offer lifetime per card type
type TTLConfig struct {
	Microsurvey time.Duration `mapstructure:"microsurvey"`
	GoEarly     time.Duration `mapstructure:"go_early"`
	GoLater     time.Duration `mapstructure:"go_later"`
	ChangeMode  time.Duration `mapstructure:"change_mode"`
	Default     time.Duration `mapstructure:"default"`
}

// EngineConfig ...
type EngineConfig struct {
	SlotSize             time.Duration `mapstructure:"slot_size"`
	ResendToleranceSlots int           `mapstructure:"resend_tolerance_slots"`
	ResendDelay          time.Duration `mapstructure:"resend_delay"`
	MaxResends           int           `mapstructure:"max_resends"`
	TTL                  TTLConfig     `mapstructure:"ttl"`

	DefaultFirstActionReward string `mapstructure:"default_first_action_reward"`

	SweepInterval  time.Duration `mapstructure:"sweep_interval"`
	SweepBatchSize int           `mapstructure:"sweep_batch_size"`
	SweepWorkers   int           `mapstructure:"sweep_workers"`
	ReconcileAfter time.Duration `mapstructure:"reconcile_after"`
	LockTTL        time.Duration `mapstructure:"lock_ttl"`
}

// TTLOf ...
func (c EngineConfig) TTLOf(cardType model.CardType) time.Duration {
	switch cardType {
	case model.CardTypeMicrosurvey:
		return c.TTL.Microsurvey
	case model.CardTypeGoEarly:
		return c.TTL.GoEarly
	case model.CardTypeGoLater:
		return c.TTL.GoLater
	case model.CardTypeChangeMode:
		return c.TTL.ChangeMode
	default:
		return c.TTL.Default
	}
}

// FirstActionReward panics on a malformed amount, config is validated at startup
func (c EngineConfig) FirstActionReward() decimal.Decimal {
	return decimal.RequireFromString(c.DefaultFirstActionReward)
}

// DefaultEngineConfig ...
func DefaultEngineConfig() EngineConfig {
	return EngineConfig{
		SlotSize:             15 * time.Minute,
		ResendToleranceSlots: 2,
		ResendDelay:          10 * time.Minute,
		MaxResends:           2,
		TTL: TTLConfig{
			Microsurvey: 5 * time.Minute,
			GoEarly:     30 * time.Minute,
			GoLater:     30 * time.Minute,
			ChangeMode:  30 * time.Minute,
			Default:     30 * 24 * time.Hour,
		},
		DefaultFirstActionReward: "1.00",

		SweepInterval:  time.Minute,
		SweepBatchSize: 500,
		SweepWorkers:   4,
		ReconcileAfter: 5 * time.Minute,
		LockTTL:        50 * time.Second,
	}
}

func parseDecimal(s string) (decimal.Decimal, error) {
	return decimal.NewFromString(s)
}
