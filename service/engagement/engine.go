package engagement

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/QuangTung97/promo-engagement/model"
	"github.com/QuangTung97/promo-engagement/pkg/otellib"
	"github.com/QuangTung97/promo-engagement/pkg/reward"
	"github.com/QuangTung97/promo-engagement/pkg/survey"
	"github.com/QuangTung97/promo-engagement/pkg/timeslot"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

func validTime(t time.Time) sql.NullTime {
	return sql.NullTime{Valid: true, Time: t}
}

func offerExpired(a model.Assignment, now time.Time) bool {
	return a.ExpiresAt.Valid && now.After(a.ExpiresAt.Time)
}

func campaignEnded(c model.Campaign, now time.Time) bool {
	return c.Status != model.CampaignStatusActive || !now.Before(c.EndTime)
}

func assignmentLogger(ctx context.Context, a model.Assignment) *zap.Logger {
	return otellib.Extract(ctx).With(
		zap.Int64("assignment_id", a.ID),
		zap.Int64("user_id", a.UserID),
		zap.Int64("campaign_id", a.CampaignID),
		zap.Int("step_seq", a.StepSeq),
	)
}

func (s *Service) logFailure(logger *zap.Logger, msg string, err error) {
	switch {
	case errors.Is(err, ErrPreconditionFailed):
		s.metrics.conflicts.Inc()
		logger.Info(msg, zap.Error(err))
	case IsPreconditionFailure(err), IsValidationError(err):
		logger.Info(msg, zap.Error(err))
	case IsCollaboratorFailure(err):
		logger.Warn(msg, zap.Error(err))
	default:
		logger.Error(msg, zap.Error(err))
	}
}

// resendDue returns the reason when a delivered assignment must not be resent yet
func (s *Service) resendDue(a model.Assignment, campaign model.Campaign, now time.Time) (bool, string) {
	if !campaign.CardType.Resendable() {
		return false, "card type " + campaign.CardType.String() + " is not resendable"
	}
	if a.ResendCount >= s.conf.MaxResends {
		return false, fmt.Sprintf("max resends %d reached", s.conf.MaxResends)
	}
	if !a.DeliveredAt.Valid || now.Sub(a.DeliveredAt.Time) < s.conf.ResendDelay {
		return false, "resend delay not elapsed"
	}

	target := a.TargetDeliveryAt
	if !target.Valid {
		target = a.DeliveredAt
	}
	window := s.slots.WindowAround(timeslot.ClockOf(target.Time.UTC()), s.conf.ResendToleranceSlots)
	if !window.Contains(timeslot.ClockOf(now)) {
		return false, "outside delivery window " + window.String()
	}
	return true, ""
}

func (s *Service) updateStatus(ctx context.Context, updated model.Assignment, expected model.AssignmentStatus) error {
	ok, err := s.assignmentRepo.ConditionalUpdate(ctx, updated, expected)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: assignment %d expected %s version %d",
			ErrPreconditionFailed, updated.ID, expected, updated.Version)
	}
	return nil
}

func (s *Service) expire(ctx context.Context, a model.Assignment) error {
	updated := a
	updated.Status = model.AssignmentStatusExpired

	err := s.provider.Transact(ctx, func(ctx context.Context) error {
		return s.updateStatus(ctx, updated, a.Status)
	})
	if err != nil {
		return err
	}

	s.metrics.transition(a.Status, model.AssignmentStatusExpired)
	assignmentLogger(ctx, a).Info("assignment expired", zap.String("from", a.Status.String()))
	return nil
}

// ComposeAndDeliver delivers a pending assignment or resends a delivered one that is due for resend
func (s *Service) ComposeAndDeliver(ctx context.Context, assignmentID int64) error {
	a, err := s.getAssignment(s.provider.Readonly(ctx), assignmentID)
	if err != nil {
		return err
	}
	_, err = s.composeAndDeliver(ctx, a, s.now())
	return err
}

func (s *Service) composeAndDeliver(
	ctx context.Context, a model.Assignment, now time.Time,
) (model.Assignment, error) {
	logger := assignmentLogger(ctx, a)

	if a.Status.IsTerminal() {
		logger.Warn("compose on terminal assignment ignored", zap.String("status", a.Status.String()))
		return a, nil
	}

	readCtx := s.provider.Readonly(ctx)
	campaign, err := s.getCampaign(readCtx, a.CampaignID)
	if err != nil {
		return a, err
	}

	if campaignEnded(campaign, now) {
		if err := s.expire(ctx, a); err != nil {
			s.logFailure(logger, "expire assignment of ended campaign", err)
			return a, err
		}
		return a, fmt.Errorf("%w: campaign %d", ErrCampaignEnded, campaign.ID)
	}

	switch a.Status {
	case model.AssignmentStatusPending:
		if now.Before(campaign.StartTime) {
			return a, fmt.Errorf("%w: campaign %d not started", ErrNotDeliverable, campaign.ID)
		}

	case model.AssignmentStatusDelivered:
		if offerExpired(a, now) {
			if err := s.expire(ctx, a); err != nil {
				s.logFailure(logger, "expire assignment", err)
				return a, err
			}
			return a, ErrOfferExpired
		}
		if ok, reason := s.resendDue(a, campaign, now); !ok {
			return a, fmt.Errorf("%w: %s", ErrNotDeliverable, reason)
		}

	default:
		return a, fmt.Errorf("%w: status %s", ErrNotDeliverable, a.Status)
	}

	step, err := s.getStep(readCtx, a.CampaignID, a.StepSeq)
	if err != nil {
		return a, err
	}
	user, err := s.getUser(readCtx, a.UserID)
	if err != nil {
		return a, err
	}

	rendered, err := s.renderer.Render(ctx, campaign.CardType, user.Language, TemplateParams{
		CampaignName: campaign.Name,
		Content:      step.Content,
		StepSeq:      step.Seq,
	})
	if err != nil {
		s.metrics.collaboratorFailure("renderer")
		err = fmt.Errorf("%w: %v", ErrRenderFailed, err)
		s.logFailure(logger, "render notification", err)
		return a, err
	}

	expiresAt := now.Add(s.conf.TTLOf(campaign.CardType))

	updated := a
	updated.Status = model.AssignmentStatusDelivered
	updated.DeliveredAt = validTime(now)
	updated.ExpiresAt = validTime(expiresAt)
	if a.Status == model.AssignmentStatusDelivered {
		updated.ResendCount++
	}
	if !updated.TargetDeliveryAt.Valid {
		updated.TargetDeliveryAt = validTime(now)
	}

	msg := Message{
		UserID:       a.UserID,
		AssignmentID: a.ID,
		CampaignID:   a.CampaignID,
		StepSeq:      a.StepSeq,
		CardType:     campaign.CardType,

		Title: rendered.Title,
		Body:  rendered.Body,

		Push:        user.NotificationEnabled,
		Calendar:    user.CalendarEnabled,
		Choices:     step.Choices,
		MultiSelect: step.MultiSelect,
		ExpiresAt:   expiresAt,
	}

	// the status change is rolled back when the dispatch fails
	err = s.provider.Transact(ctx, func(ctx context.Context) error {
		if err := s.updateStatus(ctx, updated, a.Status); err != nil {
			return err
		}
		if err := s.dispatcher.Send(ctx, msg); err != nil {
			s.metrics.collaboratorFailure("dispatcher")
			return fmt.Errorf("%w: %v", ErrDispatchFailed, err)
		}
		return nil
	})
	if err != nil {
		s.logFailure(logger, "deliver assignment", err)
		return a, err
	}

	updated.Version++
	s.metrics.transition(a.Status, model.AssignmentStatusDelivered)
	logger.Info("assignment delivered",
		zap.Int("resend_count", updated.ResendCount),
		zap.Time("expires_at", expiresAt),
	)
	return updated, nil
}

type resolution struct {
	claimed model.AssignmentStatus
	final   model.AssignmentStatus
	next    int
	answers string
}

func resolveResponse(campaign model.Campaign, step model.Step, resp Response) (resolution, error) {
	switch resp.Kind {
	case model.ResponseKindSkip:
		return resolution{
			claimed: model.AssignmentStatusRespondedSkip,
			final:   model.AssignmentStatusSkipped,
		}, nil

	case model.ResponseKindAccept:
		if campaign.CardType == model.CardTypeMicrosurvey {
			return resolution{}, fmt.Errorf("%w: microsurvey requires an answer", ErrInvalidResponse)
		}
		return resolution{
			claimed: model.AssignmentStatusRespondedAccept,
			final:   model.AssignmentStatusCompleted,
		}, nil

	case model.ResponseKindAnswer:
		if campaign.CardType != model.CardTypeMicrosurvey {
			return resolution{}, fmt.Errorf("%w: card type %s takes no answer", ErrInvalidResponse, campaign.CardType)
		}
		next, err := survey.NextStep(step, resp.Answers)
		if err != nil {
			return resolution{}, fmt.Errorf("%w: %w", ErrInvalidAnswer, err)
		}

		final := model.AssignmentStatusCompleted
		if next != model.StepComplete {
			final = model.AssignmentStatusPending
		}

		answers := append([]string(nil), resp.Answers...)
		sort.Strings(answers)
		return resolution{
			claimed: model.AssignmentStatusRespondedAnswer,
			final:   final,
			next:    next,
			answers: strings.Join(answers, ","),
		}, nil

	default:
		return resolution{}, fmt.Errorf("%w: unknown kind %d", ErrInvalidResponse, resp.Kind)
	}
}

func (s *Service) getRewardRule(ctx context.Context, id int64) (model.RewardRule, error) {
	nullRule, err := s.campaignRepo.GetRewardRule(ctx, id)
	if err != nil {
		return model.RewardRule{}, err
	}
	if !nullRule.Valid {
		return model.RewardRule{}, fmt.Errorf("%w: rule %d not found", ErrInvalidRewardRule, id)
	}
	if err := reward.ValidateRule(nullRule.Rule); err != nil {
		return model.RewardRule{}, fmt.Errorf("%w: %w", ErrInvalidRewardRule, err)
	}
	return nullRule.Rule, nil
}

// RecordResponse applies a user response to a delivered assignment.
// The delivered to responded transition is the idempotency point, a duplicate response never pays twice.
func (s *Service) RecordResponse(ctx context.Context, resp Response) (ResponseResult, error) {
	now := s.now()
	readCtx := s.provider.Readonly(ctx)

	a, err := s.getAssignment(readCtx, resp.AssignmentID)
	if err != nil {
		return ResponseResult{}, err
	}
	logger := assignmentLogger(ctx, a).With(zap.String("kind", resp.Kind.String()))

	if a.Status.IsTerminal() {
		logger.Info("response on terminal assignment", zap.String("status", a.Status.String()))
		return ResponseResult{}, fmt.Errorf("%w: status %s", ErrAssignmentTerminal, a.Status)
	}
	if a.Status != model.AssignmentStatusDelivered {
		err := fmt.Errorf("%w: assignment %d is %s", ErrPreconditionFailed, a.ID, a.Status)
		s.logFailure(logger, "record response", err)
		return ResponseResult{}, err
	}
	if offerExpired(a, now) {
		if err := s.expire(ctx, a); err != nil {
			s.logFailure(logger, "expire late response", err)
			return ResponseResult{}, err
		}
		return ResponseResult{}, ErrOfferExpired
	}

	campaign, err := s.getCampaign(readCtx, a.CampaignID)
	if err != nil {
		return ResponseResult{}, err
	}
	step, err := s.getStep(readCtx, a.CampaignID, a.StepSeq)
	if err != nil {
		return ResponseResult{}, err
	}

	res, err := resolveResponse(campaign, step, resp)
	if err != nil {
		logger.Info("reject response", zap.Error(err))
		return ResponseResult{}, err
	}

	payable := res.final == model.AssignmentStatusCompleted && campaign.RewardRuleID.Valid
	var rule model.RewardRule
	if payable {
		rule, err = s.getRewardRule(readCtx, campaign.RewardRuleID.Int64)
		if err != nil {
			logger.Error("load reward rule", zap.Error(err))
			return ResponseResult{}, err
		}
	}

	claim := a
	claim.Status = res.claimed
	claim.RespondedAt = validTime(now)
	if res.answers != "" {
		claim.Answer = sql.NullString{Valid: true, String: res.answers}
	}

	final := claim
	final.Version = a.Version + 1
	final.Status = res.final
	if res.next != model.StepComplete {
		final.StepSeq = res.next
		final.DeliveredAt = sql.NullTime{}
		final.ExpiresAt = sql.NullTime{}
		final.ResendCount = 0
	}

	var issuance model.RewardIssuance
	err = s.provider.Transact(ctx, func(ctx context.Context) error {
		if err := s.updateStatus(ctx, claim, model.AssignmentStatusDelivered); err != nil {
			return err
		}

		if payable {
			// concurrent responses of the same user must not both see a zero count
			if err := s.rewardRepo.LockIssuances(ctx, a.UserID, rule.ID); err != nil {
				return err
			}
			count, err := s.rewardRepo.CountIssuances(ctx, a.UserID, rule.ID)
			if err != nil {
				return err
			}
			firstAction := count == 0

			sampled, err := s.sampler.Sample(ctx, rule, firstAction)
			if err != nil {
				return fmt.Errorf("%w: %w", ErrInvalidRewardRule, err)
			}

			final.RewardAmount = decimal.NullDecimal{Valid: true, Decimal: sampled.Amount}
			issuance = model.RewardIssuance{
				Reference:    uuid.NewString(),
				AssignmentID: a.ID,
				UserID:       a.UserID,
				RewardRuleID: rule.ID,
				Amount:       sampled.Amount,
				FirstAction:  firstAction,
				Status:       model.IssuanceStatusPending,
			}
			if sampled.Amount.IsZero() {
				issuance.Status = model.IssuanceStatusZero
			}

			id, err := s.rewardRepo.InsertIssuance(ctx, issuance)
			if err != nil {
				return err
			}
			issuance.ID = id
		}

		if err := s.updateStatus(ctx, final, res.claimed); err != nil {
			return err
		}

		return s.assignmentRepo.InsertResponse(ctx, model.AssignmentResponse{
			AssignmentID: a.ID,
			StepSeq:      a.StepSeq,
			Kind:         resp.Kind,
			Answers:      res.answers,
		})
	})
	if err != nil {
		s.logFailure(logger, "record response", err)
		return ResponseResult{}, err
	}

	final.Version++
	s.metrics.transition(model.AssignmentStatusDelivered, res.claimed)
	s.metrics.transition(res.claimed, res.final)
	logger.Info("response recorded",
		zap.String("status", res.final.String()),
		zap.Int("next_step", res.next),
	)

	result := ResponseResult{
		Assignment:   final,
		NextStep:     res.next,
		Reward:       final.RewardAmount,
		RewardStatus: issuance.Status,
	}

	if issuance.Status == model.IssuanceStatusPending {
		result.RewardStatus, _ = s.issue(ctx, issuance)
	}

	if res.next != model.StepComplete {
		delivered, err := s.composeAndDeliver(ctx, final, now)
		if err != nil {
			logger.Warn("deliver next step, left pending for sweep", zap.Error(err))
		} else {
			result.Assignment = delivered
		}
	}

	return result, nil
}

// issue hands the reward to the ledger. A failure leaves the issuance for reconciliation.
func (s *Service) issue(ctx context.Context, issuance model.RewardIssuance) (model.IssuanceStatus, error) {
	logger := otellib.Extract(ctx).With(
		zap.Int64("assignment_id", issuance.AssignmentID),
		zap.Int64("user_id", issuance.UserID),
		zap.String("reference", issuance.Reference),
		zap.String("amount", issuance.Amount.String()),
	)

	status := model.IssuanceStatusIssued
	var transactionID sql.NullString

	txID, issueErr := s.ledger.Issue(ctx, issuance.UserID, issuance.Amount, issuance.Reference)
	if issueErr != nil {
		s.metrics.collaboratorFailure("ledger")
		issueErr = fmt.Errorf("%w: %v", ErrLedgerFailed, issueErr)
		logger.Error("issue reward", zap.Error(issueErr), zap.Bool("needs_reconcile", true))
		status = model.IssuanceStatusFailed
	} else {
		transactionID = sql.NullString{Valid: true, String: txID}
	}

	err := s.provider.Transact(ctx, func(ctx context.Context) error {
		return s.rewardRepo.UpdateIssuanceResult(ctx, issuance.ID, status, transactionID)
	})
	if err != nil {
		logger.Error("update issuance result", zap.Error(err), zap.Bool("needs_reconcile", true))
		return issuance.Status, err
	}

	if issueErr != nil {
		return status, issueErr
	}
	logger.Info("reward issued", zap.String("transaction_id", txID))
	return status, nil
}
