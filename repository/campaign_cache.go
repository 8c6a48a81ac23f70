package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/QuangTung97/promo-engagement/model"
	"github.com/QuangTung97/promo-engagement/pkg/otellib"
	"go.uber.org/zap"
)

// LocalCache is the in-process tier (pkg/memtable)
type LocalCache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte)
	Delete(key string)
}

// RemoteCache is the shared tier (pkg/cacheclient)
type RemoteCache interface {
	Get(key string) ([]byte, bool, error)
	Set(key string, value []byte) error
	Delete(key string) error
}

type cachedCampaign struct {
	Campaign
	local  LocalCache
	remote RemoteCache
}

// NewCachedCampaign caches definitions, which are immutable while a campaign runs.
// remote can be nil.
func NewCachedCampaign(repo Campaign, local LocalCache, remote RemoteCache) Campaign {
	return &cachedCampaign{
		Campaign: repo,
		local:    local,
		remote:   remote,
	}
}

func campaignKey(id int64) string {
	return fmt.Sprintf("eng:camp:%d", id)
}

func stepKey(campaignID int64, seq int) string {
	return fmt.Sprintf("eng:step:%d:%d", campaignID, seq)
}

func rewardRuleKey(id int64) string {
	return fmt.Sprintf("eng:rule:%d", id)
}

// getCached returns found = false on any cache miss or cache failure
func (c *cachedCampaign) getCached(ctx context.Context, key string, dest interface{}) bool {
	if data, ok := c.local.Get(key); ok {
		if json.Unmarshal(data, dest) == nil {
			return true
		}
	}

	if c.remote == nil {
		return false
	}
	data, found, err := c.remote.Get(key)
	if err != nil {
		otellib.Extract(ctx).Warn("definition cache get failed", zap.String("key", key), zap.Error(err))
		return false
	}
	if !found {
		return false
	}
	if json.Unmarshal(data, dest) != nil {
		return false
	}
	c.local.Set(key, data)
	return true
}

func (c *cachedCampaign) setCached(ctx context.Context, key string, value interface{}) {
	data, err := json.Marshal(value)
	if err != nil {
		return
	}
	c.local.Set(key, data)
	if c.remote == nil {
		return
	}
	if err := c.remote.Set(key, data); err != nil {
		otellib.Extract(ctx).Warn("definition cache set failed", zap.String("key", key), zap.Error(err))
	}
}

func (c *cachedCampaign) invalidate(ctx context.Context, key string) {
	c.local.Delete(key)
	if c.remote == nil {
		return
	}
	if err := c.remote.Delete(key); err != nil {
		otellib.Extract(ctx).Warn("definition cache delete failed", zap.String("key", key), zap.Error(err))
	}
}

// GetCampaign ...
func (c *cachedCampaign) GetCampaign(ctx context.Context, id int64) (model.NullCampaign, error) {
	key := campaignKey(id)

	var campaign model.Campaign
	if c.getCached(ctx, key, &campaign) {
		return model.NullCampaign{Valid: true, Campaign: campaign}, nil
	}

	result, err := c.Campaign.GetCampaign(ctx, id)
	if err != nil || !result.Valid {
		return result, err
	}
	c.setCached(ctx, key, result.Campaign)
	return result, nil
}

// GetStep ...
func (c *cachedCampaign) GetStep(ctx context.Context, campaignID int64, seq int) (model.NullStep, error) {
	key := stepKey(campaignID, seq)

	var step model.Step
	if c.getCached(ctx, key, &step) {
		return model.NullStep{Valid: true, Step: step}, nil
	}

	result, err := c.Campaign.GetStep(ctx, campaignID, seq)
	if err != nil || !result.Valid {
		return result, err
	}
	c.setCached(ctx, key, result.Step)
	return result, nil
}

// GetRewardRule ...
func (c *cachedCampaign) GetRewardRule(ctx context.Context, id int64) (model.NullRewardRule, error) {
	key := rewardRuleKey(id)

	var rule model.RewardRule
	if c.getCached(ctx, key, &rule) {
		return model.NullRewardRule{Valid: true, Rule: rule}, nil
	}

	result, err := c.Campaign.GetRewardRule(ctx, id)
	if err != nil || !result.Valid {
		return result, err
	}
	c.setCached(ctx, key, result.Rule)
	return result, nil
}

// UpsertCampaign ...
func (c *cachedCampaign) UpsertCampaign(ctx context.Context, campaign model.Campaign) error {
	if err := c.Campaign.UpsertCampaign(ctx, campaign); err != nil {
		return err
	}
	c.invalidate(ctx, campaignKey(campaign.ID))
	return nil
}

// UpsertStep ...
func (c *cachedCampaign) UpsertStep(ctx context.Context, step model.Step) error {
	if err := c.Campaign.UpsertStep(ctx, step); err != nil {
		return err
	}
	c.invalidate(ctx, stepKey(step.CampaignID, step.Seq))
	return nil
}

// UpsertRewardRule ...
func (c *cachedCampaign) UpsertRewardRule(ctx context.Context, rule model.RewardRule) error {
	if err := c.Campaign.UpsertRewardRule(ctx, rule); err != nil {
		return err
	}
	c.invalidate(ctx, rewardRuleKey(rule.ID))
	return nil
}
