package repository

import (
	"context"
	"database/sql"
	"testing"

	"github.com/QuangTung97/promo-engagement/model"
	"github.com/QuangTung97/promo-engagement/pkg/integration"
	"github.com/stretchr/testify/assert"
)

type assignmentTest struct {
	tc       *integration.TestCase
	provider Provider
	repo     Assignment
}

func newAssignmentTest() *assignmentTest {
	tc := integration.NewTestCase()
	tc.Truncate("assignment", "assignment_response")

	return &assignmentTest{
		tc:       tc,
		provider: NewProvider(tc.DB),
		repo:     NewAssignment(),
	}
}

func (a *assignmentTest) insert(t *testing.T, assignment model.Assignment) int64 {
	var id int64
	err := a.provider.Transact(newContext(), func(ctx context.Context) error {
		var err error
		id, err = a.repo.InsertAssignment(ctx, assignment)
		return err
	})
	assert.Equal(t, nil, err)
	return id
}

func (a *assignmentTest) get(t *testing.T, id int64) model.Assignment {
	result, err := a.repo.GetAssignment(a.provider.Readonly(newContext()), id)
	assert.Equal(t, nil, err)
	assert.Equal(t, true, result.Valid)

	assignment := result.Assignment
	assignment.CreatedAt = newTime("2000-01-01T00:00:00Z")
	assignment.UpdatedAt = newTime("2000-01-01T00:00:00Z")
	return assignment
}

func idsOf(list []model.Assignment) []int64 {
	var ids []int64
	for _, a := range list {
		ids = append(ids, a.ID)
	}
	return ids
}

func newDeliveredAssignment(userID int64, deliveredAt string, expiresAt string) model.Assignment {
	return model.Assignment{
		UserID:      userID,
		CampaignID:  12,
		StepSeq:     1,
		Status:      model.AssignmentStatusDelivered,
		Version:     1,
		DeliveredAt: newNullTime(deliveredAt),
		ExpiresAt:   newNullTime(expiresAt),
	}
}

func TestAssignment_Insert_And_Get(t *testing.T) {
	a := newAssignmentTest()

	result, err := a.repo.GetAssignment(a.provider.Readonly(newContext()), 1)
	assert.Equal(t, nil, err)
	assert.Equal(t, model.NullAssignment{}, result)

	id := a.insert(t, model.Assignment{
		UserID:           101,
		CampaignID:       12,
		StepSeq:          1,
		Status:           model.AssignmentStatusPending,
		TargetDeliveryAt: newNullTime("2022-04-10T08:00:00Z"),
	})

	assert.Equal(t, model.Assignment{
		ID:               id,
		UserID:           101,
		CampaignID:       12,
		StepSeq:          1,
		Status:           model.AssignmentStatusPending,
		TargetDeliveryAt: newNullTime("2022-04-10T08:00:00Z"),
		CreatedAt:        newTime("2000-01-01T00:00:00Z"),
		UpdatedAt:        newTime("2000-01-01T00:00:00Z"),
	}, a.get(t, id))
}

func TestAssignment_Insert__One_Open_Assignment_Per_User_And_Campaign(t *testing.T) {
	a := newAssignmentTest()

	id := a.insert(t, model.Assignment{
		UserID: 101, CampaignID: 12, StepSeq: 1, Status: model.AssignmentStatusPending,
	})

	err := a.provider.Transact(newContext(), func(ctx context.Context) error {
		_, err := a.repo.InsertAssignment(ctx, model.Assignment{
			UserID: 101, CampaignID: 12, StepSeq: 1, Status: model.AssignmentStatusPending,
		})
		return err
	})
	assert.Equal(t, ErrOpenAssignmentExists, err)

	// other campaign is allowed
	a.insert(t, model.Assignment{
		UserID: 101, CampaignID: 13, StepSeq: 1, Status: model.AssignmentStatusPending,
	})

	// after the first one is terminal, a new assignment can be created
	err = a.provider.Transact(newContext(), func(ctx context.Context) error {
		assignment := a.get(t, id)
		assignment.Status = model.AssignmentStatusExpired
		updated, err := a.repo.ConditionalUpdate(ctx, assignment, model.AssignmentStatusPending)
		assert.Equal(t, true, updated)
		return err
	})
	assert.Equal(t, nil, err)

	a.insert(t, model.Assignment{
		UserID: 101, CampaignID: 12, StepSeq: 1, Status: model.AssignmentStatusPending,
	})
}

func TestAssignment_ConditionalUpdate(t *testing.T) {
	a := newAssignmentTest()

	id := a.insert(t, newDeliveredAssignment(101, "2022-04-10T08:00:00Z", "2022-04-10T08:05:00Z"))
	assignment := a.get(t, id)

	claimed := assignment
	claimed.Status = model.AssignmentStatusRespondedAnswer
	claimed.RespondedAt = newNullTime("2022-04-10T08:02:00Z")
	claimed.Answer = sql.NullString{Valid: true, String: "A"}

	// Update OK
	err := a.provider.Transact(newContext(), func(ctx context.Context) error {
		updated, err := a.repo.ConditionalUpdate(ctx, claimed, model.AssignmentStatusDelivered)
		assert.Equal(t, true, updated)
		return err
	})
	assert.Equal(t, nil, err)

	result := a.get(t, id)
	assert.Equal(t, model.AssignmentStatusRespondedAnswer, result.Status)
	assert.Equal(t, int64(2), result.Version)
	assert.Equal(t, newNullTime("2022-04-10T08:02:00Z"), result.RespondedAt)
	assert.Equal(t, sql.NullString{Valid: true, String: "A"}, result.Answer)

	// Stale version, same status as stored
	stale := claimed
	stale.Status = model.AssignmentStatusCompleted
	err = a.provider.Transact(newContext(), func(ctx context.Context) error {
		updated, err := a.repo.ConditionalUpdate(ctx, stale, model.AssignmentStatusRespondedAnswer)
		assert.Equal(t, false, updated)
		return err
	})
	assert.Equal(t, nil, err)

	// Current version, wrong expected status
	current := result
	current.Status = model.AssignmentStatusExpired
	err = a.provider.Transact(newContext(), func(ctx context.Context) error {
		updated, err := a.repo.ConditionalUpdate(ctx, current, model.AssignmentStatusDelivered)
		assert.Equal(t, false, updated)
		return err
	})
	assert.Equal(t, nil, err)

	assert.Equal(t, model.AssignmentStatusRespondedAnswer, a.get(t, id).Status)
}

func (a *assignmentTest) upsertCampaign(t *testing.T, id int64, cardType model.CardType) {
	err := a.provider.Transact(newContext(), func(ctx context.Context) error {
		return NewCampaign().UpsertCampaign(ctx, model.Campaign{
			ID:        id,
			Name:      "campaign",
			Status:    model.CampaignStatusActive,
			CardType:  cardType,
			StartTime: newTime("2022-04-01T00:00:00Z"),
			EndTime:   newTime("2022-05-01T00:00:00Z"),
		})
	})
	assert.Equal(t, nil, err)
}

func TestAssignment_Find_For_Sweep(t *testing.T) {
	a := newAssignmentTest()
	a.tc.Truncate("campaign")
	a.upsertCampaign(t, 11, model.CardTypeGoEarly)
	a.upsertCampaign(t, 12, model.CardTypeMicrosurvey)

	pendingID := a.insert(t, model.Assignment{
		UserID: 100, CampaignID: 12, StepSeq: 1, Status: model.AssignmentStatusPending,
	})
	expiredID := a.insert(t, newDeliveredAssignment(101, "2022-04-10T07:00:00Z", "2022-04-10T07:30:00Z"))

	due := newDeliveredAssignment(102, "2022-04-10T07:40:00Z", "2022-04-10T08:10:00Z")
	due.CampaignID = 11
	dueID := a.insert(t, due)

	a.insert(t, newDeliveredAssignment(103, "2022-04-10T07:58:00Z", "2022-04-10T08:28:00Z"))

	// microsurvey is never resent
	a.insert(t, newDeliveredAssignment(104, "2022-04-10T07:40:00Z", "2022-04-10T08:10:00Z"))

	maxed := newDeliveredAssignment(105, "2022-04-10T07:40:00Z", "2022-04-10T08:10:00Z")
	maxed.CampaignID = 11
	maxed.ResendCount = 2
	a.insert(t, maxed)

	ctx := a.provider.Readonly(newContext())
	now := newTime("2022-04-10T08:00:00Z")

	pending, err := a.repo.FindPending(ctx, 0, 10)
	assert.Equal(t, nil, err)
	assert.Equal(t, []int64{pendingID}, idsOf(pending))

	pending, err = a.repo.FindPending(ctx, pendingID, 10)
	assert.Equal(t, nil, err)
	assert.Equal(t, 0, len(pending))

	expired, err := a.repo.FindExpired(ctx, now, 0, 10)
	assert.Equal(t, nil, err)
	assert.Equal(t, []int64{expiredID}, idsOf(expired))

	result, err := a.repo.FindDueForResend(ctx, newTime("2022-04-10T07:50:00Z"), now, 2, 0, 10)
	assert.Equal(t, nil, err)
	assert.Equal(t, []int64{dueID}, idsOf(result))

	result, err = a.repo.FindDueForResend(ctx, newTime("2022-04-10T07:50:00Z"), now, 3, 0, 10)
	assert.Equal(t, nil, err)
	assert.Equal(t, 2, len(result))
	assert.Equal(t, dueID, result[0].ID)
}

func TestAssignment_Find_For_Sweep__Keyset_Pages(t *testing.T) {
	a := newAssignmentTest()

	var ids []int64
	for userID := int64(101); userID <= 105; userID++ {
		ids = append(ids, a.insert(t, newDeliveredAssignment(userID, "2022-04-10T07:00:00Z", "2022-04-10T07:30:00Z")))
	}

	ctx := a.provider.Readonly(newContext())
	now := newTime("2022-04-10T08:00:00Z")

	var pages [][]int64
	var afterID int64
	for {
		page, err := a.repo.FindExpired(ctx, now, afterID, 2)
		assert.Equal(t, nil, err)
		pages = append(pages, idsOf(page))
		if len(page) < 2 {
			break
		}
		afterID = page[len(page)-1].ID
	}

	assert.Equal(t, [][]int64{
		{ids[0], ids[1]},
		{ids[2], ids[3]},
		{ids[4]},
	}, pages)
}

func TestAssignment_Responses(t *testing.T) {
	a := newAssignmentTest()

	err := a.provider.Transact(newContext(), func(ctx context.Context) error {
		err := a.repo.InsertResponse(ctx, model.AssignmentResponse{
			AssignmentID: 7, StepSeq: 1, Kind: model.ResponseKindAnswer, Answers: "A",
		})
		if err != nil {
			return err
		}
		return a.repo.InsertResponse(ctx, model.AssignmentResponse{
			AssignmentID: 7, StepSeq: 2, Kind: model.ResponseKindAnswer, Answers: "C,D",
		})
	})
	assert.Equal(t, nil, err)

	responses, err := a.repo.FindResponses(a.provider.Readonly(newContext()), 7)
	assert.Equal(t, nil, err)
	assert.Equal(t, 2, len(responses))
	assert.Equal(t, 1, responses[0].StepSeq)
	assert.Equal(t, "A", responses[0].Answers)
	assert.Equal(t, 2, responses[1].StepSeq)
	assert.Equal(t, "C,D", responses[1].Answers)
	assert.Equal(t, model.ResponseKindAnswer, responses[1].Kind)

	responses, err = a.repo.FindResponses(a.provider.Readonly(newContext()), 8)
	assert.Equal(t, nil, err)
	assert.Equal(t, 0, len(responses))
}
