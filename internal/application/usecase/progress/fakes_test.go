package progress

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/habit-tracker/backend/internal/domain/entity"
	domainerror "github.com/habit-tracker/backend/internal/domain/error"
)

// In-memory fakes shared by the tests in this package.

type fakeGoalRepo struct {
	goals map[uuid.UUID]*entity.Goal
}

func newFakeGoalRepo(goals ...*entity.Goal) *fakeGoalRepo {
	repo := &fakeGoalRepo{goals: make(map[uuid.UUID]*entity.Goal)}
	for _, g := range goals {
		repo.goals[g.ID] = g
	}
	return repo
}

func (r *fakeGoalRepo) Create(_ context.Context, goal *entity.Goal) error {
	r.goals[goal.ID] = goal
	return nil
}

func (r *fakeGoalRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Goal, error) {
	goal, ok := r.goals[id]
	if !ok {
		return nil, domainerror.ErrGoalNotFound
	}
	copied := *goal
	return &copied, nil
}

func (r *fakeGoalRepo) FindByUserID(_ context.Context, userID uuid.UUID) ([]*entity.Goal, error) {
	var out []*entity.Goal
	for _, g := range r.goals {
		if g.UserID == userID {
			copied := *g
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (r *fakeGoalRepo) FindActiveByUserID(_ context.Context, userID uuid.UUID) ([]*entity.Goal, error) {
	var out []*entity.Goal
	for _, g := range r.goals {
		if g.UserID == userID && g.IsActive {
			copied := *g
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (r *fakeGoalRepo) FindActiveWithDeadline(_ context.Context, userID *uuid.UUID) ([]*entity.Goal, error) {
	var out []*entity.Goal
	for _, g := range r.goals {
		if g.IsActive && g.EndDate != nil && (userID == nil || g.UserID == *userID) {
			copied := *g
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (r *fakeGoalRepo) Update(_ context.Context, goal *entity.Goal) error {
	if _, ok := r.goals[goal.ID]; !ok {
		return domainerror.ErrGoalNotFound
	}
	copied := *goal
	r.goals[goal.ID] = &copied
	return nil
}

func (r *fakeGoalRepo) UpdateAggregate(_ context.Context, id uuid.UUID, currentAmount decimal.Decimal, isActive bool) error {
	goal, ok := r.goals[id]
	if !ok {
		return domainerror.ErrGoalNotFound
	}
	goal.CurrentAmount = currentAmount
	goal.IsActive = isActive
	return nil
}

func (r *fakeGoalRepo) MarkReminderSent(_ context.Context, id uuid.UUID, at time.Time) error {
	goal, ok := r.goals[id]
	if !ok {
		return domainerror.ErrGoalNotFound
	}
	goal.LastReminderSent = &at
	return nil
}

func (r *fakeGoalRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.goals, id)
	return nil
}

type fakeProgressRepo struct {
	entries map[uuid.UUID]map[string]*entity.ProgressEntry // goalID -> date -> entry
}

func newFakeProgressRepo() *fakeProgressRepo {
	return &fakeProgressRepo{entries: make(map[uuid.UUID]map[string]*entity.ProgressEntry)}
}

func (r *fakeProgressRepo) Upsert(_ context.Context, entry *entity.ProgressEntry) error {
	day := entry.RecordedDate.Format("2006-01-02")
	if r.entries[entry.GoalID] == nil {
		r.entries[entry.GoalID] = make(map[string]*entity.ProgressEntry)
	}
	copied := *entry
	r.entries[entry.GoalID][day] = &copied
	return nil
}

func (r *fakeProgressRepo) SumByGoal(_ context.Context, goalID uuid.UUID) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, entry := range r.entries[goalID] {
		total = total.Add(entry.Amount)
	}
	return total, nil
}

func (r *fakeProgressRepo) ListByGoal(_ context.Context, goalID uuid.UUID) ([]*entity.ProgressEntry, error) {
	var out []*entity.ProgressEntry
	for _, entry := range r.entries[goalID] {
		copied := *entry
		out = append(out, &copied)
	}
	return out, nil
}

type fakeCache struct {
	invalidations int
	store         map[uuid.UUID][]byte
}

func newFakeCache() *fakeCache {
	return &fakeCache{store: make(map[uuid.UUID][]byte)}
}

func (c *fakeCache) Get(_ context.Context, userID uuid.UUID) ([]byte, error) {
	return c.store[userID], nil
}

func (c *fakeCache) Set(_ context.Context, userID uuid.UUID, payload []byte) error {
	c.store[userID] = payload
	return nil
}

func (c *fakeCache) Invalidate(_ context.Context, userID uuid.UUID) error {
	c.invalidations++
	delete(c.store, userID)
	return nil
}

type fixedClock struct {
	now time.Time
}

func (c *fixedClock) Now() time.Time {
	return c.now
}

func (c *fixedClock) advanceDays(days int) {
	c.now = c.now.AddDate(0, 0, days)
}
