package engagement

import (
	"context"
	"encoding/binary"
	"sync"
	"time"

	"github.com/QuangTung97/promo-engagement/model"
	"github.com/QuangTung97/promo-engagement/pkg/otellib"
	"github.com/QuangTung97/promo-engagement/pkg/timeslot"
	"github.com/twmb/murmur3"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type sweepAction int

const (
	sweepActionNone sweepAction = iota
	sweepActionExpire
	sweepActionResend
	sweepActionDeliver
)

func (a sweepAction) String() string {
	switch a {
	case sweepActionExpire:
		return "expire"
	case sweepActionResend:
		return "resend"
	case sweepActionDeliver:
		return "deliver"
	default:
		return "none"
	}
}

// SweepResult ...
type SweepResult struct {
	Scanned   int
	Expired   int
	Resent    int
	Delivered int
	Unchanged int

	// Conflicts counts assignments changed concurrently between the read and the transition
	Conflicts int
	Failures  int
}

func (r *SweepResult) add(action sweepAction, err error) {
	if err != nil {
		if IsPreconditionFailure(err) {
			r.Conflicts++
		} else {
			r.Failures++
		}
		return
	}

	switch action {
	case sweepActionExpire:
		r.Expired++
	case sweepActionResend:
		r.Resent++
	case sweepActionDeliver:
		r.Delivered++
	default:
		r.Unchanged++
	}
}

// decide is pure, expiry always takes precedence over a resend
func (s *Service) decide(a model.Assignment, campaign model.Campaign, now time.Time) sweepAction {
	switch a.Status {
	case model.AssignmentStatusDelivered:
		if offerExpired(a, now) || campaignEnded(campaign, now) {
			return sweepActionExpire
		}
		if ok, _ := s.resendDue(a, campaign, now); ok {
			return sweepActionResend
		}
		return sweepActionNone

	case model.AssignmentStatusPending:
		if campaignEnded(campaign, now) {
			return sweepActionExpire
		}
		if !campaign.IsRunning(now) {
			return sweepActionNone
		}
		window, err := timeslot.DailyWindow(campaign.FromTime, campaign.ToTime)
		if err != nil {
			return sweepActionNone
		}
		if window.Contains(timeslot.ClockOf(now)) {
			return sweepActionDeliver
		}
		return sweepActionNone

	default:
		return sweepActionNone
	}
}

// collectCandidates drops assignments already in seen and adds the rest to it
func collectCandidates(seen map[int64]struct{}, lists ...[]model.Assignment) []model.Assignment {
	var result []model.Assignment
	for _, list := range lists {
		for _, a := range list {
			if _, existed := seen[a.ID]; existed {
				continue
			}
			seen[a.ID] = struct{}{}
			result = append(result, a)
		}
	}
	return result
}

func userPartition(userID int64, n int) int {
	var data [8]byte
	binary.BigEndian.PutUint64(data[:], uint64(userID))
	return int(murmur3.Sum32(data[:]) % uint32(n))
}

// partitionByUser keeps all assignments of a user in the same partition
func partitionByUser(candidates []model.Assignment, n int) [][]model.Assignment {
	if n < 1 {
		n = 1
	}
	partitions := make([][]model.Assignment, n)
	for _, a := range candidates {
		index := userPartition(a.UserID, n)
		partitions[index] = append(partitions[index], a)
	}
	return partitions
}

type sweepPageFunc func(ctx context.Context, afterID int64, limit int) ([]model.Assignment, error)

// Sweep reads due assignments without locking, then transitions each one by conditional update.
// Every source is paged by id until exhausted, rows left unchanged never hide the rows after them.
// A failure on one assignment does not abort the batch.
func (s *Service) Sweep(ctx context.Context) (SweepResult, error) {
	now := s.now()
	readCtx := s.provider.Readonly(ctx)
	deliveredBefore := now.Add(-s.conf.ResendDelay)

	sources := []sweepPageFunc{
		func(ctx context.Context, afterID int64, limit int) ([]model.Assignment, error) {
			return s.assignmentRepo.FindExpired(ctx, now, afterID, limit)
		},
		func(ctx context.Context, afterID int64, limit int) ([]model.Assignment, error) {
			return s.assignmentRepo.FindDueForResend(ctx, deliveredBefore, now, s.conf.MaxResends, afterID, limit)
		},
		func(ctx context.Context, afterID int64, limit int) ([]model.Assignment, error) {
			return s.assignmentRepo.FindPending(ctx, afterID, limit)
		},
	}

	var result SweepResult
	seen := map[int64]struct{}{}

	var err error
	for _, find := range sources {
		err = s.sweepPages(ctx, readCtx, find, now, seen, &result)
		if err != nil {
			break
		}
	}

	logger := otellib.Extract(ctx)
	logger.Info("sweep finished",
		zap.Time("now", now),
		zap.Int("scanned", result.Scanned),
		zap.Int("expired", result.Expired),
		zap.Int("resent", result.Resent),
		zap.Int("delivered", result.Delivered),
		zap.Int("unchanged", result.Unchanged),
		zap.Int("conflicts", result.Conflicts),
		zap.Int("failures", result.Failures),
	)
	return result, err
}

func (s *Service) sweepPages(
	ctx context.Context, readCtx context.Context, find sweepPageFunc,
	now time.Time, seen map[int64]struct{}, result *SweepResult,
) error {
	batch := s.conf.SweepBatchSize
	if batch < 1 {
		batch = 1
	}

	var afterID int64
	for {
		page, err := find(readCtx, afterID, batch)
		if err != nil {
			return err
		}

		err = s.sweepBatch(ctx, collectCandidates(seen, page), now, result)
		if err != nil {
			return err
		}

		if len(page) < batch {
			return nil
		}
		afterID = page[len(page)-1].ID
	}
}

// sweepBatch returns an error only when ctx is done
func (s *Service) sweepBatch(ctx context.Context, candidates []model.Assignment, now time.Time, result *SweepResult) error {
	var mut sync.Mutex
	result.Scanned += len(candidates)

	g, gctx := errgroup.WithContext(ctx)
	for _, partition := range partitionByUser(candidates, s.conf.SweepWorkers) {
		partition := partition
		if len(partition) == 0 {
			continue
		}

		g.Go(func() error {
			for _, a := range partition {
				if err := gctx.Err(); err != nil {
					return err
				}
				action, err := s.sweepOne(gctx, a, now)

				mut.Lock()
				result.add(action, err)
				mut.Unlock()
			}
			return nil
		})
	}
	return g.Wait()
}

func (s *Service) sweepOne(ctx context.Context, a model.Assignment, now time.Time) (sweepAction, error) {
	logger := assignmentLogger(ctx, a)

	campaign, err := s.getCampaign(s.provider.Readonly(ctx), a.CampaignID)
	if err != nil {
		s.logFailure(logger, "sweep load campaign", err)
		return sweepActionNone, err
	}

	action := s.decide(a, campaign, now)
	s.metrics.sweepAction(action)

	switch action {
	case sweepActionExpire:
		err = s.expire(ctx, a)
		if err != nil {
			s.logFailure(logger, "sweep expire", err)
		}
	case sweepActionResend, sweepActionDeliver:
		_, err = s.composeAndDeliver(ctx, a, now)
	}
	return action, err
}
