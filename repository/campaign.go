package repository

import (
	"context"
	"database/sql"

	"github.com/QuangTung97/promo-engagement/model"
)

//go:generate moq -out repository_mocks.go . Campaign Reward User

// Campaign reads campaign, step and reward rule definitions
type Campaign interface {
	GetCampaign(ctx context.Context, id int64) (model.NullCampaign, error)
	GetStep(ctx context.Context, campaignID int64, seq int) (model.NullStep, error)
	GetRewardRule(ctx context.Context, id int64) (model.NullRewardRule, error)

	UpsertCampaign(ctx context.Context, campaign model.Campaign) error
	UpsertStep(ctx context.Context, step model.Step) error
	UpsertRewardRule(ctx context.Context, rule model.RewardRule) error
}

type campaignImpl struct {
}

// NewCampaign ...
func NewCampaign() Campaign {
	return &campaignImpl{}
}

// GetCampaign ...
func (c *campaignImpl) GetCampaign(ctx context.Context, id int64) (model.NullCampaign, error) {
	query := `
SELECT id, name, status, card_type, reward_rule_id, start_time, end_time,
	from_time, to_time, geofence, persona_tags, created_at, updated_at
FROM campaign WHERE id = ?
`
	var result model.Campaign
	err := GetReadonly(ctx).GetContext(ctx, &result, query, id)
	if err == sql.ErrNoRows {
		return model.NullCampaign{}, nil
	}
	if err != nil {
		return model.NullCampaign{}, err
	}
	return model.NullCampaign{Valid: true, Campaign: result}, nil
}

// GetStep ...
func (c *campaignImpl) GetStep(ctx context.Context, campaignID int64, seq int) (model.NullStep, error) {
	query := `
SELECT campaign_id, seq, content, multi_select, choices, branches
FROM campaign_step WHERE campaign_id = ? AND seq = ?
`
	var result model.Step
	err := GetReadonly(ctx).GetContext(ctx, &result, query, campaignID, seq)
	if err == sql.ErrNoRows {
		return model.NullStep{}, nil
	}
	if err != nil {
		return model.NullStep{}, err
	}
	return model.NullStep{Valid: true, Step: result}, nil
}

// GetRewardRule ...
func (c *campaignImpl) GetRewardRule(ctx context.Context, id int64) (model.NullRewardRule, error) {
	query := `
SELECT id, name, min_amount, max_amount, mean_amount, beta, first_action_reward
FROM reward_rule WHERE id = ?
`
	var result model.RewardRule
	err := GetReadonly(ctx).GetContext(ctx, &result, query, id)
	if err == sql.ErrNoRows {
		return model.NullRewardRule{}, nil
	}
	if err != nil {
		return model.NullRewardRule{}, err
	}
	return model.NullRewardRule{Valid: true, Rule: result}, nil
}

// UpsertCampaign ...
func (c *campaignImpl) UpsertCampaign(ctx context.Context, campaign model.Campaign) error {
	query := `
INSERT INTO campaign (
	id, name, status, card_type, reward_rule_id, start_time, end_time,
	from_time, to_time, geofence, persona_tags
) VALUES (
	:id, :name, :status, :card_type, :reward_rule_id, :start_time, :end_time,
	:from_time, :to_time, :geofence, :persona_tags
) AS NEW
ON DUPLICATE KEY UPDATE
	name = NEW.name,
	status = NEW.status,
	card_type = NEW.card_type,
	reward_rule_id = NEW.reward_rule_id,
	start_time = NEW.start_time,
	end_time = NEW.end_time,
	from_time = NEW.from_time,
	to_time = NEW.to_time,
	geofence = NEW.geofence,
	persona_tags = NEW.persona_tags
`
	_, err := GetTx(ctx).NamedExecContext(ctx, query, campaign)
	return err
}

// UpsertStep ...
func (c *campaignImpl) UpsertStep(ctx context.Context, step model.Step) error {
	query := `
INSERT INTO campaign_step (campaign_id, seq, content, multi_select, choices, branches)
VALUES (:campaign_id, :seq, :content, :multi_select, :choices, :branches) AS NEW
ON DUPLICATE KEY UPDATE
	content = NEW.content,
	multi_select = NEW.multi_select,
	choices = NEW.choices,
	branches = NEW.branches
`
	_, err := GetTx(ctx).NamedExecContext(ctx, query, step)
	return err
}

// UpsertRewardRule ...
func (c *campaignImpl) UpsertRewardRule(ctx context.Context, rule model.RewardRule) error {
	query := `
INSERT INTO reward_rule (id, name, min_amount, max_amount, mean_amount, beta, first_action_reward)
VALUES (:id, :name, :min_amount, :max_amount, :mean_amount, :beta, :first_action_reward) AS NEW
ON DUPLICATE KEY UPDATE
	name = NEW.name,
	min_amount = NEW.min_amount,
	max_amount = NEW.max_amount,
	mean_amount = NEW.mean_amount,
	beta = NEW.beta,
	first_action_reward = NEW.first_action_reward
`
	_, err := GetTx(ctx).NamedExecContext(ctx, query, rule)
	return err
}
