// Package reward computes bounded variable rewards for completed engagement actions.
package reward

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/QuangTung97/promo-engagement/model"
	"github.com/QuangTung97/promo-engagement/pkg/otellib"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// ErrInvalidRule ...
var ErrInvalidRule = errors.New("invalid reward rule")

// Outcome ...
type Outcome int

const (
	// OutcomeFirstAction fixed reward of a qualifying first action
	OutcomeFirstAction Outcome = 1
	// OutcomeSampled draw within (min, max]
	OutcomeSampled Outcome = 2
	// OutcomeZero draw at or below min, no reward
	OutcomeZero Outcome = 3
	// OutcomeCapped draw above max, capped to max
	OutcomeCapped Outcome = 4
)

func (o Outcome) String() string {
	switch o {
	case OutcomeFirstAction:
		return "first_action"
	case OutcomeSampled:
		return "sampled"
	case OutcomeZero:
		return "zero"
	case OutcomeCapped:
		return "capped"
	default:
		return "unknown"
	}
}

// Result ...
type Result struct {
	Amount  decimal.Decimal
	Raw     decimal.Decimal // draw rounded to 2 dp, before clamping
	Outcome Outcome
}

// Sampler is safe for concurrent use
type Sampler struct {
	mu  sync.Mutex
	rng *rand.Rand

	defaultFirstAction decimal.Decimal
	outcomes           *prometheus.CounterVec
}

type samplerOptions struct {
	seed               int64
	defaultFirstAction decimal.Decimal
	registerer         prometheus.Registerer
}

// Option ...
type Option func(opts *samplerOptions)

// WithSeed makes draws reproducible, for tests and simulations
func WithSeed(seed int64) Option {
	return func(opts *samplerOptions) {
		opts.seed = seed
	}
}

// WithDefaultFirstActionReward used when a rule has no W
func WithDefaultFirstActionReward(d decimal.Decimal) Option {
	return func(opts *samplerOptions) {
		opts.defaultFirstAction = d
	}
}

// WithRegisterer registers the outcome counter
func WithRegisterer(reg prometheus.Registerer) Option {
	return func(opts *samplerOptions) {
		opts.registerer = reg
	}
}

// DefaultFirstActionReward ...
var DefaultFirstActionReward = decimal.New(100, -2)

// NewSampler ...
func NewSampler(options ...Option) *Sampler {
	opts := samplerOptions{
		seed:               time.Now().UnixNano(),
		defaultFirstAction: DefaultFirstActionReward,
	}
	for _, fn := range options {
		fn(&opts)
	}

	outcomes := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "engagement",
		Name:      "reward_outcome_total",
		Help:      "Number of reward samples by outcome",
	}, []string{"outcome"})
	if opts.registerer != nil {
		opts.registerer.MustRegister(outcomes)
	}

	return &Sampler{
		rng:                rand.New(rand.NewSource(opts.seed)),
		defaultFirstAction: opts.defaultFirstAction,
		outcomes:           outcomes,
	}
}

// ValidateRule checks min <= mean <= max and beta > 0
func ValidateRule(rule model.RewardRule) error {
	if !rule.Beta.IsPositive() {
		return fmt.Errorf("%w: beta must be positive, rule %d", ErrInvalidRule, rule.ID)
	}
	if rule.Min.GreaterThan(rule.Mean) || rule.Mean.GreaterThan(rule.Max) {
		return fmt.Errorf("%w: require min <= mean <= max, rule %d", ErrInvalidRule, rule.ID)
	}
	return nil
}

// Sample returns the reward for an action, rounded to 2 decimal places.
// A first action never draws, so the distribution parameters are validated only for a draw.
func (s *Sampler) Sample(ctx context.Context, rule model.RewardRule, firstAction bool) (Result, error) {
	if firstAction {
		amount := s.defaultFirstAction
		if rule.FirstActionReward.Valid {
			amount = rule.FirstActionReward.Decimal
		}
		amount = amount.Round(2)
		s.observe(OutcomeFirstAction)
		return Result{Amount: amount, Raw: amount, Outcome: OutcomeFirstAction}, nil
	}

	if err := ValidateRule(rule); err != nil {
		return Result{}, err
	}

	mean, _ := rule.Mean.Float64()
	beta, _ := rule.Beta.Float64()
	alpha := ShapeOf(mean, beta)

	s.mu.Lock()
	draw := Gamma(s.rng, alpha, beta)
	s.mu.Unlock()

	raw := decimal.NewFromFloat(draw).Round(2)
	logger := otellib.Extract(ctx)

	switch {
	case raw.LessThanOrEqual(rule.Min):
		logger.Info("reward below minimum, no reward",
			zap.Int64("reward_rule_id", rule.ID),
			zap.String("raw", raw.String()),
			zap.String("min", rule.Min.String()),
			zap.String("outcome", OutcomeZero.String()),
		)
		s.observe(OutcomeZero)
		return Result{Amount: decimal.Zero, Raw: raw, Outcome: OutcomeZero}, nil

	case raw.GreaterThan(rule.Max):
		logger.Info("reward above maximum, capped",
			zap.Int64("reward_rule_id", rule.ID),
			zap.String("raw", raw.String()),
			zap.String("max", rule.Max.String()),
			zap.String("outcome", OutcomeCapped.String()),
		)
		s.observe(OutcomeCapped)
		return Result{Amount: rule.Max, Raw: raw, Outcome: OutcomeCapped}, nil

	default:
		s.observe(OutcomeSampled)
		return Result{Amount: raw, Raw: raw, Outcome: OutcomeSampled}, nil
	}
}

func (s *Sampler) observe(o Outcome) {
	s.outcomes.WithLabelValues(o.String()).Inc()
}
