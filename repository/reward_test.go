package repository

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/QuangTung97/promo-engagement/model"
	"github.com/QuangTung97/promo-engagement/pkg/integration"
	"github.com/stretchr/testify/assert"
)

type rewardTest struct {
	provider Provider
	repo     Reward
}

func newRewardTest() *rewardTest {
	tc := integration.NewTestCase()
	tc.Truncate("reward_issuance", "reward_issuance_lock")

	return &rewardTest{
		provider: NewProvider(tc.DB),
		repo:     NewReward(),
	}
}

func (r *rewardTest) insert(t *testing.T, issuance model.RewardIssuance) int64 {
	var id int64
	err := r.provider.Transact(newContext(), func(ctx context.Context) error {
		var err error
		id, err = r.repo.InsertIssuance(ctx, issuance)
		return err
	})
	assert.Equal(t, nil, err)
	return id
}

func newIssuance(reference string, assignmentID int64, userID int64) model.RewardIssuance {
	return model.RewardIssuance{
		Reference:    reference,
		AssignmentID: assignmentID,
		UserID:       userID,
		RewardRuleID: 21,
		Amount:       newDecimal("2.35"),
		FirstAction:  true,
		Status:       model.IssuanceStatusPending,
	}
}

func TestReward_Insert_And_Count(t *testing.T) {
	r := newRewardTest()
	ctx := r.provider.Readonly(newContext())

	count, err := r.repo.CountIssuances(ctx, 101, 21)
	assert.Equal(t, nil, err)
	assert.Equal(t, int64(0), count)

	r.insert(t, newIssuance("ref-01", 1, 101))
	r.insert(t, newIssuance("ref-02", 2, 101))
	r.insert(t, newIssuance("ref-03", 3, 102))

	count, err = r.repo.CountIssuances(ctx, 101, 21)
	assert.Equal(t, nil, err)
	assert.Equal(t, int64(2), count)

	count, err = r.repo.CountIssuances(ctx, 101, 22)
	assert.Equal(t, nil, err)
	assert.Equal(t, int64(0), count)
}

func TestReward_Insert__One_Issuance_Per_Assignment(t *testing.T) {
	r := newRewardTest()

	r.insert(t, newIssuance("ref-01", 1, 101))

	err := r.provider.Transact(newContext(), func(ctx context.Context) error {
		_, err := r.repo.InsertIssuance(ctx, newIssuance("ref-02", 1, 101))
		return err
	})
	assert.Error(t, err)
}

func TestReward_UpdateIssuanceResult_And_Reconcile(t *testing.T) {
	r := newRewardTest()

	issuedID := r.insert(t, newIssuance("ref-01", 1, 101))
	failedID := r.insert(t, newIssuance("ref-02", 2, 101))
	pendingID := r.insert(t, newIssuance("ref-03", 3, 102))

	err := r.provider.Transact(newContext(), func(ctx context.Context) error {
		err := r.repo.UpdateIssuanceResult(ctx, issuedID, model.IssuanceStatusIssued,
			sql.NullString{Valid: true, String: "tx-01"})
		if err != nil {
			return err
		}
		return r.repo.UpdateIssuanceResult(ctx, failedID, model.IssuanceStatusFailed, sql.NullString{})
	})
	assert.Equal(t, nil, err)

	ctx := r.provider.Readonly(newContext())

	result, err := r.repo.FindIssuancesToReconcile(ctx, newTime("2100-01-01T00:00:00Z"), 10)
	assert.Equal(t, nil, err)
	assert.Equal(t, 2, len(result))

	assert.Equal(t, failedID, result[0].ID)
	assert.Equal(t, model.IssuanceStatusFailed, result[0].Status)
	assert.Equal(t, 1, result[0].Attempts)
	assert.Equal(t, "ref-02", result[0].Reference)
	assert.Equal(t, "2.35", result[0].Amount.StringFixed(2))

	assert.Equal(t, pendingID, result[1].ID)
	assert.Equal(t, model.IssuanceStatusPending, result[1].Status)
	assert.Equal(t, 0, result[1].Attempts)

	result, err = r.repo.FindIssuancesToReconcile(ctx, newTime("2000-01-01T00:00:00Z"), 10)
	assert.Equal(t, nil, err)
	assert.Equal(t, 0, len(result))
}

func TestReward_LockIssuances__Serializes_First_Action_Check(t *testing.T) {
	r := newRewardTest()

	locked := make(chan struct{})
	firstDone := make(chan error, 1)
	go func() {
		firstDone <- r.provider.Transact(newContext(), func(ctx context.Context) error {
			if err := r.repo.LockIssuances(ctx, 101, 21); err != nil {
				return err
			}
			close(locked)

			time.Sleep(100 * time.Millisecond)
			_, err := r.repo.InsertIssuance(ctx, newIssuance("ref-01", 1, 101))
			return err
		})
	}()
	<-locked

	var count int64
	err := r.provider.Transact(newContext(), func(ctx context.Context) error {
		if err := r.repo.LockIssuances(ctx, 101, 21); err != nil {
			return err
		}
		var err error
		count, err = r.repo.CountIssuances(ctx, 101, 21)
		return err
	})
	assert.Equal(t, nil, err)
	assert.Equal(t, nil, <-firstDone)

	// the second transaction waited for the first one to commit
	assert.Equal(t, int64(1), count)
}
