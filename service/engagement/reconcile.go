package engagement

import (
	"context"

	"github.com/QuangTung97/promo-engagement/pkg/otellib"
	"go.uber.org/zap"
)

// ReconcileResult ...
type ReconcileResult struct {
	Scanned int
	Issued  int
	Failed  int
}

// Reconcile re-issues pending or failed rewards with their original reference
func (s *Service) Reconcile(ctx context.Context) (ReconcileResult, error) {
	now := s.now()

	issuances, err := s.rewardRepo.FindIssuancesToReconcile(
		s.provider.Readonly(ctx), now.Add(-s.conf.ReconcileAfter), s.conf.SweepBatchSize)
	if err != nil {
		return ReconcileResult{}, err
	}

	result := ReconcileResult{Scanned: len(issuances)}
	for _, issuance := range issuances {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		_, err := s.issue(ctx, issuance)
		if err != nil {
			result.Failed++
			continue
		}
		result.Issued++
	}

	otellib.Extract(ctx).Info("reconcile finished",
		zap.Int("scanned", result.Scanned),
		zap.Int("issued", result.Issued),
		zap.Int("failed", result.Failed),
	)
	return result, nil
}
