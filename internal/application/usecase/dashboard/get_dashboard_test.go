package dashboard

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/habit-tracker/backend/internal/domain/entity"
)

type fakeGoalRepo struct {
	goals []*entity.Goal
	calls int
}

func (r *fakeGoalRepo) Create(ctx context.Context, goal *entity.Goal) error { return nil }

func (r *fakeGoalRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Goal, error) {
	return nil, nil
}

func (r *fakeGoalRepo) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Goal, error) {
	return nil, nil
}

func (r *fakeGoalRepo) FindActiveByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Goal, error) {
	r.calls++
	var out []*entity.Goal
	for _, g := range r.goals {
		if g.UserID == userID && g.IsActive {
			out = append(out, g)
		}
	}
	return out, nil
}

func (r *fakeGoalRepo) FindActiveWithDeadline(ctx context.Context, userID *uuid.UUID) ([]*entity.Goal, error) {
	return nil, nil
}

func (r *fakeGoalRepo) Update(ctx context.Context, goal *entity.Goal) error { return nil }

func (r *fakeGoalRepo) UpdateAggregate(ctx context.Context, id uuid.UUID, currentAmount decimal.Decimal, isActive bool) error {
	return nil
}

func (r *fakeGoalRepo) MarkReminderSent(ctx context.Context, id uuid.UUID, at time.Time) error {
	return nil
}

func (r *fakeGoalRepo) Delete(ctx context.Context, id uuid.UUID) error { return nil }

type fakeCache struct {
	entries map[uuid.UUID][]byte
	sets    int
}

func newFakeCache() *fakeCache {
	return &fakeCache{entries: make(map[uuid.UUID][]byte)}
}

func (c *fakeCache) Get(ctx context.Context, userID uuid.UUID) ([]byte, error) {
	return c.entries[userID], nil
}

func (c *fakeCache) Set(ctx context.Context, userID uuid.UUID, payload []byte) error {
	c.sets++
	c.entries[userID] = payload
	return nil
}

func (c *fakeCache) Invalidate(ctx context.Context, userID uuid.UUID) error {
	delete(c.entries, userID)
	return nil
}

type fixedClock struct {
	now time.Time
}

func (c *fixedClock) Now() time.Time { return c.now }

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func activeGoal(userID uuid.UUID, goalType string, current, target int64, endDate *time.Time) *entity.Goal {
	goal := entity.NewGoal(userID, goalType, goalType, decimal.NewFromInt(target), "units",
		date(2025, time.June, 1), endDate, nil, entity.ReminderNever)
	goal.CurrentAmount = decimal.NewFromInt(current)
	return goal
}

func TestGetDashboardAggregates(t *testing.T) {
	userID := uuid.New()
	clock := &fixedClock{now: date(2025, time.June, 15).Add(9 * time.Hour)}

	past := date(2025, time.June, 10)
	future := date(2025, time.June, 25)

	repo := &fakeGoalRepo{goals: []*entity.Goal{
		activeGoal(userID, "running", 12, 10, &future),
		activeGoal(userID, "reading", 2, 10, &past),
		activeGoal(userID, "meditation", 5, 10, nil),
	}}

	uc := NewGetDashboardUseCase(repo, newFakeCache(), clock)
	out, err := uc.Execute(context.Background(), GetDashboardInput{UserID: userID})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if out.TotalActiveGoals != 3 {
		t.Fatalf("expected 3 active goals, got %d", out.TotalActiveGoals)
	}
	if out.CompletedGoals != 1 {
		t.Errorf("expected 1 completed goal, got %d", out.CompletedGoals)
	}
	if out.OverdueGoals != 1 {
		t.Errorf("expected 1 overdue goal, got %d", out.OverdueGoals)
	}

	byType := make(map[string]GoalStats)
	for _, g := range out.Goals {
		byType[g.GoalType] = g
	}

	running := byType["running"]
	if running.ProgressPercentage != 100 {
		t.Errorf("expected completed goal capped at 100%%, got %.1f", running.ProgressPercentage)
	}
	if running.DaysRemaining == nil || *running.DaysRemaining != 10 {
		t.Errorf("expected 10 days remaining, got %v", running.DaysRemaining)
	}
	if running.IsOverdue {
		t.Error("goal with a future deadline should not be overdue")
	}

	reading := byType["reading"]
	if !reading.IsOverdue {
		t.Error("goal past its end date should be overdue")
	}
	if reading.ProgressPercentage != 20 {
		t.Errorf("expected 20%%, got %.1f", reading.ProgressPercentage)
	}

	meditation := byType["meditation"]
	if meditation.DaysRemaining != nil {
		t.Errorf("open-ended goal should have nil daysRemaining, got %v", meditation.DaysRemaining)
	}
	if meditation.IsOverdue {
		t.Error("open-ended goal can never be overdue")
	}
}

func TestGetDashboardServesFromCache(t *testing.T) {
	userID := uuid.New()
	clock := &fixedClock{now: date(2025, time.June, 15)}
	repo := &fakeGoalRepo{goals: []*entity.Goal{
		activeGoal(userID, "running", 3, 10, nil),
	}}
	cache := newFakeCache()

	uc := NewGetDashboardUseCase(repo, cache, clock)

	first, err := uc.Execute(context.Background(), GetDashboardInput{UserID: userID})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.calls != 1 || cache.sets != 1 {
		t.Fatalf("expected one repo read and one cache write, got %d/%d", repo.calls, cache.sets)
	}

	second, err := uc.Execute(context.Background(), GetDashboardInput{UserID: userID})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.calls != 1 {
		t.Errorf("second read should be served from cache, repo called %d times", repo.calls)
	}
	if second.TotalActiveGoals != first.TotalActiveGoals {
		t.Errorf("cached output diverged: %d vs %d", second.TotalActiveGoals, first.TotalActiveGoals)
	}
}

func TestGetDashboardRecomputesOnCorruptCacheEntry(t *testing.T) {
	userID := uuid.New()
	clock := &fixedClock{now: date(2025, time.June, 15)}
	repo := &fakeGoalRepo{goals: []*entity.Goal{
		activeGoal(userID, "running", 3, 10, nil),
	}}
	cache := newFakeCache()
	cache.entries[userID] = []byte("{not json")

	uc := NewGetDashboardUseCase(repo, cache, clock)
	out, err := uc.Execute(context.Background(), GetDashboardInput{UserID: userID})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.calls != 1 {
		t.Errorf("corrupt cache entry should trigger a recompute, repo called %d times", repo.calls)
	}
	if out.TotalActiveGoals != 1 {
		t.Errorf("expected 1 active goal, got %d", out.TotalActiveGoals)
	}

	var roundTrip GetDashboardOutput
	if err := json.Unmarshal(cache.entries[userID], &roundTrip); err != nil {
		t.Fatalf("cache should hold a fresh valid entry: %v", err)
	}
}
