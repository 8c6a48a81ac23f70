package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/QuangTung97/promo-engagement/model"
	"github.com/QuangTung97/promo-engagement/pkg/memtable"
	"github.com/stretchr/testify/assert"
)

type fakeRemoteCache struct {
	data   map[string][]byte
	getErr error
	sets   int
}

func newFakeRemoteCache() *fakeRemoteCache {
	return &fakeRemoteCache{data: map[string][]byte{}}
}

func (c *fakeRemoteCache) Get(key string) ([]byte, bool, error) {
	if c.getErr != nil {
		return nil, false, c.getErr
	}
	data, ok := c.data[key]
	return data, ok, nil
}

func (c *fakeRemoteCache) Set(key string, value []byte) error {
	c.sets++
	c.data[key] = value
	return nil
}

func (c *fakeRemoteCache) Delete(key string) error {
	delete(c.data, key)
	return nil
}

type cachedCampaignTest struct {
	repo   *CampaignMock
	local  *memtable.MemTable
	remote *fakeRemoteCache
	cached Campaign
}

func newCachedCampaignTest() *cachedCampaignTest {
	c := &cachedCampaignTest{
		repo:   &CampaignMock{},
		local:  memtable.New(1024*1024, 0),
		remote: newFakeRemoteCache(),
	}
	c.cached = NewCachedCampaign(c.repo, c.local, c.remote)
	return c
}

func newCachedCampaign() model.Campaign {
	return model.Campaign{
		ID:           12,
		Name:         "Commute survey",
		Status:       model.CampaignStatusActive,
		CardType:     model.CardTypeMicrosurvey,
		RewardRuleID: newNullInt64(21),
		StartTime:    newTime("2022-04-01T00:00:00Z"),
		EndTime:      newTime("2022-05-01T00:00:00Z"),
	}
}

func TestCachedCampaign_GetCampaign__Read_Through(t *testing.T) {
	c := newCachedCampaignTest()

	c.repo.GetCampaignFunc = func(ctx context.Context, id int64) (model.NullCampaign, error) {
		return model.NullCampaign{Valid: true, Campaign: newCachedCampaign()}, nil
	}

	result, err := c.cached.GetCampaign(newContext(), 12)
	assert.Equal(t, nil, err)
	assert.Equal(t, model.NullCampaign{Valid: true, Campaign: newCachedCampaign()}, result)
	assert.Equal(t, 1, len(c.repo.GetCampaignCalls()))
	assert.Equal(t, 1, c.remote.sets)

	// second call hits local cache
	result, err = c.cached.GetCampaign(newContext(), 12)
	assert.Equal(t, nil, err)
	assert.Equal(t, model.NullCampaign{Valid: true, Campaign: newCachedCampaign()}, result)
	assert.Equal(t, 1, len(c.repo.GetCampaignCalls()))
}

func TestCachedCampaign_GetCampaign__Remote_Hit_Fills_Local(t *testing.T) {
	c := newCachedCampaignTest()

	other := NewCachedCampaign(&CampaignMock{
		GetCampaignFunc: func(ctx context.Context, id int64) (model.NullCampaign, error) {
			return model.NullCampaign{Valid: true, Campaign: newCachedCampaign()}, nil
		},
	}, memtable.New(1024*1024, 0), c.remote)

	_, err := other.GetCampaign(newContext(), 12)
	assert.Equal(t, nil, err)

	result, err := c.cached.GetCampaign(newContext(), 12)
	assert.Equal(t, nil, err)
	assert.Equal(t, true, result.Valid)
	assert.Equal(t, 0, len(c.repo.GetCampaignCalls()))

	_, ok := c.local.Get(campaignKey(12))
	assert.Equal(t, true, ok)
}

func TestCachedCampaign_GetCampaign__Not_Found_Not_Cached(t *testing.T) {
	c := newCachedCampaignTest()

	c.repo.GetCampaignFunc = func(ctx context.Context, id int64) (model.NullCampaign, error) {
		return model.NullCampaign{}, nil
	}

	result, err := c.cached.GetCampaign(newContext(), 12)
	assert.Equal(t, nil, err)
	assert.Equal(t, model.NullCampaign{}, result)

	_, err = c.cached.GetCampaign(newContext(), 12)
	assert.Equal(t, nil, err)
	assert.Equal(t, 2, len(c.repo.GetCampaignCalls()))
	assert.Equal(t, 0, c.remote.sets)
}

func TestCachedCampaign_GetStep__Remote_Error_Falls_Back_To_DB(t *testing.T) {
	c := newCachedCampaignTest()
	c.remote.getErr = errors.New("memcache down")

	step := model.Step{
		CampaignID: 12,
		Seq:        1,
		Content:    "How do you commute?",
		Choices:    model.Choices{{Key: "A", Label: "Car"}},
		Branches:   model.Branches{{Next: model.StepComplete}},
	}
	c.repo.GetStepFunc = func(ctx context.Context, campaignID int64, seq int) (model.NullStep, error) {
		return model.NullStep{Valid: true, Step: step}, nil
	}

	result, err := c.cached.GetStep(newContext(), 12, 1)
	assert.Equal(t, nil, err)
	assert.Equal(t, model.NullStep{Valid: true, Step: step}, result)

	result, err = c.cached.GetStep(newContext(), 12, 1)
	assert.Equal(t, nil, err)
	assert.Equal(t, model.NullStep{Valid: true, Step: step}, result)
	assert.Equal(t, 1, len(c.repo.GetStepCalls()))
}

func TestCachedCampaign_UpsertRewardRule__Invalidate(t *testing.T) {
	c := newCachedCampaignTest()

	rule := model.RewardRule{
		ID:   21,
		Name: "commute points",
		Min:  newDecimal("0.5"),
		Max:  newDecimal("5"),
		Mean: newDecimal("2"),
		Beta: newDecimal("0.8"),
	}
	c.repo.GetRewardRuleFunc = func(ctx context.Context, id int64) (model.NullRewardRule, error) {
		return model.NullRewardRule{Valid: true, Rule: rule}, nil
	}
	c.repo.UpsertRewardRuleFunc = func(ctx context.Context, rule model.RewardRule) error {
		return nil
	}

	_, err := c.cached.GetRewardRule(newContext(), 21)
	assert.Equal(t, nil, err)

	err = c.cached.UpsertRewardRule(newContext(), rule)
	assert.Equal(t, nil, err)

	_, ok := c.local.Get(rewardRuleKey(21))
	assert.Equal(t, false, ok)
	_, ok = c.remote.data[rewardRuleKey(21)]
	assert.Equal(t, false, ok)

	result, err := c.cached.GetRewardRule(newContext(), 21)
	assert.Equal(t, nil, err)
	assert.Equal(t, model.NullRewardRule{Valid: true, Rule: rule}, result)
	assert.Equal(t, 2, len(c.repo.GetRewardRuleCalls()))
}
