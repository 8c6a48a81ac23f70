package engagement

import (
	"context"
	"database/sql"
	"sort"
	"sync"
	"time"

	"github.com/QuangTung97/promo-engagement/model"
	"github.com/QuangTung97/promo-engagement/repository"
)

type fakeClock struct {
	mut sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mut.Lock()
	defer c.mut.Unlock()
	return c.now
}

func (c *fakeClock) Set(t time.Time) {
	c.mut.Lock()
	defer c.mut.Unlock()
	c.now = t
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mut.Lock()
	defer c.mut.Unlock()
	c.now = c.now.Add(d)
}

type fakeTxKey struct{}

type fakeTx struct {
	undo    []func()
	release []func()
}

type issuanceLockKey struct {
	userID       int64
	rewardRuleID int64
}

// memDB is an in-memory assignment and reward store with conditional update semantics
type memDB struct {
	mut sync.Mutex

	clock *fakeClock

	nextID      int64
	assignments map[int64]model.Assignment
	responses   []model.AssignmentResponse
	issuances   map[int64]model.RewardIssuance
	locks       map[issuanceLockKey]*sync.Mutex

	// cardTypeOf stands in for the campaign join of the resend query
	cardTypeOf func(campaignID int64) model.CardType

	// afterCount runs after every issuance count, outside of the store mutex
	afterCount func()

	// beforeUpdate runs once, before the next conditional update is applied
	beforeUpdate func(a model.Assignment)
}

var _ repository.Assignment = &memDB{}
var _ repository.Reward = &memDB{}

func newMemDB(clock *fakeClock) *memDB {
	return &memDB{
		clock:       clock,
		assignments: map[int64]model.Assignment{},
		issuances:   map[int64]model.RewardIssuance{},
		locks:       map[issuanceLockKey]*sync.Mutex{},
	}
}

func mustTx(ctx context.Context) *fakeTx {
	tx, ok := ctx.Value(fakeTxKey{}).(*fakeTx)
	if !ok {
		panic("write outside transaction")
	}
	return tx
}

func (db *memDB) rollback(tx *fakeTx) {
	db.mut.Lock()
	defer db.mut.Unlock()

	for i := len(tx.undo) - 1; i >= 0; i-- {
		tx.undo[i]()
	}
}

func (db *memDB) get(id int64) model.Assignment {
	db.mut.Lock()
	defer db.mut.Unlock()
	return db.assignments[id]
}

func (db *memDB) put(a model.Assignment) model.Assignment {
	db.mut.Lock()
	defer db.mut.Unlock()

	if a.ID == 0 {
		db.nextID++
		a.ID = db.nextID
	}
	db.assignments[a.ID] = a
	return a
}

func (db *memDB) allIssuances() []model.RewardIssuance {
	db.mut.Lock()
	defer db.mut.Unlock()

	var result []model.RewardIssuance
	for _, iss := range db.issuances {
		result = append(result, iss)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})
	return result
}

func (db *memDB) takeHook() func(a model.Assignment) {
	db.mut.Lock()
	defer db.mut.Unlock()

	hook := db.beforeUpdate
	db.beforeUpdate = nil
	return hook
}

func (db *memDB) filter(afterID int64, limit int, fn func(a model.Assignment) bool) []model.Assignment {
	db.mut.Lock()
	defer db.mut.Unlock()

	var result []model.Assignment
	for _, a := range db.assignments {
		if a.ID > afterID && fn(a) {
			result = append(result, a)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})
	if len(result) > limit {
		result = result[:limit]
	}
	return result
}

func (db *memDB) GetAssignment(_ context.Context, id int64) (model.NullAssignment, error) {
	db.mut.Lock()
	defer db.mut.Unlock()

	a, ok := db.assignments[id]
	if !ok {
		return model.NullAssignment{}, nil
	}
	return model.NullAssignment{Valid: true, Assignment: a}, nil
}

func (db *memDB) FindPending(_ context.Context, afterID int64, limit int) ([]model.Assignment, error) {
	return db.filter(afterID, limit, func(a model.Assignment) bool {
		return a.Status == model.AssignmentStatusPending
	}), nil
}

func (db *memDB) FindDueForResend(
	_ context.Context, deliveredBefore time.Time, now time.Time, maxResends int, afterID int64, limit int,
) ([]model.Assignment, error) {
	return db.filter(afterID, limit, func(a model.Assignment) bool {
		return a.Status == model.AssignmentStatusDelivered &&
			!a.DeliveredAt.Time.After(deliveredBefore) &&
			!a.ExpiresAt.Time.Before(now) &&
			a.ResendCount < maxResends &&
			db.cardTypeOf(a.CampaignID).Resendable()
	}), nil
}

func (db *memDB) FindExpired(_ context.Context, now time.Time, afterID int64, limit int) ([]model.Assignment, error) {
	return db.filter(afterID, limit, func(a model.Assignment) bool {
		return a.Status == model.AssignmentStatusDelivered && a.ExpiresAt.Time.Before(now)
	}), nil
}

func (db *memDB) ConditionalUpdate(
	ctx context.Context, a model.Assignment, expected model.AssignmentStatus,
) (bool, error) {
	tx := mustTx(ctx)

	if hook := db.takeHook(); hook != nil {
		hook(a)
	}

	db.mut.Lock()
	defer db.mut.Unlock()

	current, ok := db.assignments[a.ID]
	if !ok || current.Status != expected || current.Version != a.Version {
		return false, nil
	}

	a.Version = current.Version + 1
	db.assignments[a.ID] = a
	tx.undo = append(tx.undo, func() {
		db.assignments[a.ID] = current
	})
	return true, nil
}

func (db *memDB) InsertAssignment(ctx context.Context, a model.Assignment) (int64, error) {
	tx := mustTx(ctx)

	db.mut.Lock()
	defer db.mut.Unlock()

	for _, existing := range db.assignments {
		if existing.UserID == a.UserID && existing.CampaignID == a.CampaignID && !existing.Status.IsTerminal() {
			return 0, repository.ErrOpenAssignmentExists
		}
	}

	db.nextID++
	a.ID = db.nextID
	db.assignments[a.ID] = a
	tx.undo = append(tx.undo, func() {
		delete(db.assignments, a.ID)
	})
	return a.ID, nil
}

func (db *memDB) InsertResponse(ctx context.Context, r model.AssignmentResponse) error {
	tx := mustTx(ctx)

	db.mut.Lock()
	defer db.mut.Unlock()

	r.ID = int64(len(db.responses) + 1)
	r.CreatedAt = db.clock.Now()
	db.responses = append(db.responses, r)
	size := len(db.responses) - 1
	tx.undo = append(tx.undo, func() {
		db.responses = db.responses[:size]
	})
	return nil
}

func (db *memDB) FindResponses(_ context.Context, assignmentID int64) ([]model.AssignmentResponse, error) {
	db.mut.Lock()
	defer db.mut.Unlock()

	var result []model.AssignmentResponse
	for _, r := range db.responses {
		if r.AssignmentID == assignmentID {
			result = append(result, r)
		}
	}
	return result, nil
}

func (db *memDB) InsertIssuance(ctx context.Context, issuance model.RewardIssuance) (int64, error) {
	tx := mustTx(ctx)

	db.mut.Lock()
	defer db.mut.Unlock()

	db.nextID++
	issuance.ID = db.nextID
	issuance.CreatedAt = db.clock.Now()
	issuance.UpdatedAt = db.clock.Now()
	db.issuances[issuance.ID] = issuance
	tx.undo = append(tx.undo, func() {
		delete(db.issuances, issuance.ID)
	})
	return issuance.ID, nil
}

// LockIssuances holds a per user and reward class mutex until the transaction ends
func (db *memDB) LockIssuances(ctx context.Context, userID int64, rewardRuleID int64) error {
	tx := mustTx(ctx)
	key := issuanceLockKey{userID: userID, rewardRuleID: rewardRuleID}

	db.mut.Lock()
	lock, ok := db.locks[key]
	if !ok {
		lock = &sync.Mutex{}
		db.locks[key] = lock
	}
	db.mut.Unlock()

	lock.Lock()
	tx.release = append(tx.release, lock.Unlock)
	return nil
}

func (db *memDB) CountIssuances(_ context.Context, userID int64, rewardRuleID int64) (int64, error) {
	db.mut.Lock()
	var count int64
	for _, iss := range db.issuances {
		if iss.UserID == userID && iss.RewardRuleID == rewardRuleID {
			count++
		}
	}
	hook := db.afterCount
	db.mut.Unlock()

	if hook != nil {
		hook()
	}
	return count, nil
}

func (db *memDB) UpdateIssuanceResult(
	ctx context.Context, id int64, status model.IssuanceStatus, transactionID sql.NullString,
) error {
	tx := mustTx(ctx)

	db.mut.Lock()
	defer db.mut.Unlock()

	old, ok := db.issuances[id]
	if !ok {
		return nil
	}
	updated := old
	updated.Status = status
	updated.TransactionID = transactionID
	updated.Attempts++
	updated.UpdatedAt = db.clock.Now()
	db.issuances[id] = updated
	tx.undo = append(tx.undo, func() {
		db.issuances[id] = old
	})
	return nil
}

func (db *memDB) FindIssuancesToReconcile(
	_ context.Context, updatedBefore time.Time, limit int,
) ([]model.RewardIssuance, error) {
	db.mut.Lock()
	defer db.mut.Unlock()

	var result []model.RewardIssuance
	for _, iss := range db.issuances {
		if iss.Status != model.IssuanceStatusPending && iss.Status != model.IssuanceStatusFailed {
			continue
		}
		if iss.UpdatedAt.Before(updatedBefore) {
			result = append(result, iss)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})
	if len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}

type fakeProvider struct {
	db *memDB
}

var _ repository.Provider = &fakeProvider{}

func (p *fakeProvider) Transact(ctx context.Context, fn func(ctx context.Context) error) error {
	if _, ok := ctx.Value(fakeTxKey{}).(*fakeTx); ok {
		return fn(ctx)
	}

	tx := &fakeTx{}
	err := fn(context.WithValue(ctx, fakeTxKey{}, tx))
	if err != nil {
		p.db.rollback(tx)
	}
	for _, release := range tx.release {
		release()
	}
	return err
}

func (p *fakeProvider) Readonly(ctx context.Context) context.Context {
	return ctx
}
