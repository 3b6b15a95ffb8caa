package goal

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/habit-tracker/backend/internal/domain/entity"
	domainerror "github.com/habit-tracker/backend/internal/domain/error"
)

type fakeGoalRepo struct {
	goals map[uuid.UUID]*entity.Goal
}

func newFakeGoalRepo() *fakeGoalRepo {
	return &fakeGoalRepo{goals: make(map[uuid.UUID]*entity.Goal)}
}

func (r *fakeGoalRepo) Create(ctx context.Context, goal *entity.Goal) error {
	copied := *goal
	r.goals[goal.ID] = &copied
	return nil
}

func (r *fakeGoalRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Goal, error) {
	goal, ok := r.goals[id]
	if !ok || goal.DeletedAt != nil {
		return nil, domainerror.ErrGoalNotFound
	}
	copied := *goal
	return &copied, nil
}

func (r *fakeGoalRepo) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Goal, error) {
	var out []*entity.Goal
	for _, g := range r.goals {
		if g.UserID == userID && g.DeletedAt == nil {
			copied := *g
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (r *fakeGoalRepo) FindActiveByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Goal, error) {
	var out []*entity.Goal
	for _, g := range r.goals {
		if g.UserID == userID && g.IsActive && g.DeletedAt == nil {
			copied := *g
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (r *fakeGoalRepo) FindActiveWithDeadline(ctx context.Context, userID *uuid.UUID) ([]*entity.Goal, error) {
	return nil, nil
}

func (r *fakeGoalRepo) Update(ctx context.Context, goal *entity.Goal) error {
	copied := *goal
	r.goals[goal.ID] = &copied
	return nil
}

func (r *fakeGoalRepo) UpdateAggregate(ctx context.Context, id uuid.UUID, currentAmount decimal.Decimal, isActive bool) error {
	return nil
}

func (r *fakeGoalRepo) MarkReminderSent(ctx context.Context, id uuid.UUID, at time.Time) error {
	return nil
}

func (r *fakeGoalRepo) Delete(ctx context.Context, id uuid.UUID) error {
	goal, ok := r.goals[id]
	if !ok {
		return domainerror.ErrGoalNotFound
	}
	now := time.Now().UTC()
	goal.DeletedAt = &now
	return nil
}

type fakeCache struct {
	invalidations int
}

func (c *fakeCache) Get(ctx context.Context, userID uuid.UUID) ([]byte, error) { return nil, nil }

func (c *fakeCache) Set(ctx context.Context, userID uuid.UUID, payload []byte) error { return nil }

func (c *fakeCache) Invalidate(ctx context.Context, userID uuid.UUID) error {
	c.invalidations++
	return nil
}

type fixedClock struct {
	now time.Time
}

func (c *fixedClock) Now() time.Time { return c.now }

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func TestCreateGoalDerivesEndDateFromDuration(t *testing.T) {
	repo := newFakeGoalRepo()
	clock := &fixedClock{now: date(2025, time.June, 1).Add(14 * time.Hour)}
	uc := NewCreateGoalUseCase(repo, clock)

	days := 30
	out, err := uc.Execute(context.Background(), CreateGoalInput{
		UserID:       uuid.New(),
		GoalType:     "running",
		Description:  "Run 100km",
		TargetAmount: decimal.NewFromInt(100),
		TargetUnit:   "km",
		DurationDays: &days,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	goal := out.Goal
	if !goal.StartDate.Equal(date(2025, time.June, 1)) {
		t.Errorf("start date should be today's calendar date, got %v", goal.StartDate)
	}
	if goal.EndDate == nil || !goal.EndDate.Equal(date(2025, time.July, 1)) {
		t.Errorf("expected end date 2025-07-01, got %v", goal.EndDate)
	}
	if !goal.IsActive {
		t.Error("new goals start active")
	}
	if goal.ReminderFrequency != entity.ReminderNever {
		t.Errorf("omitted frequency should default to never, got %q", goal.ReminderFrequency)
	}
	if _, ok := repo.goals[goal.ID]; !ok {
		t.Error("goal was not persisted")
	}
}

func TestCreateGoalDerivesDurationFromEndDate(t *testing.T) {
	repo := newFakeGoalRepo()
	clock := &fixedClock{now: date(2025, time.June, 1)}
	uc := NewCreateGoalUseCase(repo, clock)

	end := date(2025, time.June, 15)
	out, err := uc.Execute(context.Background(), CreateGoalInput{
		UserID:            uuid.New(),
		GoalType:          "reading",
		TargetAmount:      decimal.NewFromInt(5),
		TargetUnit:        "books",
		EndDate:           &end,
		ReminderFrequency: "weekly",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Goal.DurationDays == nil || *out.Goal.DurationDays != 14 {
		t.Errorf("expected 14 derived duration days, got %v", out.Goal.DurationDays)
	}
}

func TestCreateGoalValidation(t *testing.T) {
	repo := newFakeGoalRepo()
	clock := &fixedClock{now: date(2025, time.June, 1)}
	uc := NewCreateGoalUseCase(repo, clock)

	tests := []struct {
		name    string
		input   CreateGoalInput
		wantErr error
	}{
		{
			name: "missing goal type",
			input: CreateGoalInput{
				UserID:       uuid.New(),
				TargetAmount: decimal.NewFromInt(10),
				TargetUnit:   "km",
			},
			wantErr: domainerror.ErrMissingGoalFields,
		},
		{
			name: "missing user",
			input: CreateGoalInput{
				GoalType:     "running",
				TargetAmount: decimal.NewFromInt(10),
				TargetUnit:   "km",
			},
			wantErr: domainerror.ErrMissingGoalFields,
		},
		{
			name: "negative target",
			input: CreateGoalInput{
				UserID:       uuid.New(),
				GoalType:     "running",
				TargetAmount: decimal.NewFromInt(-1),
				TargetUnit:   "km",
			},
			wantErr: domainerror.ErrInvalidTargetAmount,
		},
		{
			name: "bogus frequency",
			input: CreateGoalInput{
				UserID:            uuid.New(),
				GoalType:          "running",
				TargetAmount:      decimal.NewFromInt(10),
				TargetUnit:        "km",
				ReminderFrequency: "hourly",
			},
			wantErr: domainerror.ErrInvalidReminderFrequency,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), tt.input)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}

	if len(repo.goals) != 0 {
		t.Errorf("invalid inputs must not persist goals, found %d", len(repo.goals))
	}
}

func TestGetGoalEnforcesOwnership(t *testing.T) {
	repo := newFakeGoalRepo()
	clock := &fixedClock{now: date(2025, time.June, 1)}
	create := NewCreateGoalUseCase(repo, clock)

	owner := uuid.New()
	created, err := create.Execute(context.Background(), CreateGoalInput{
		UserID:       owner,
		GoalType:     "running",
		TargetAmount: decimal.NewFromInt(10),
		TargetUnit:   "km",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	uc := NewGetGoalUseCase(repo)

	out, err := uc.Execute(context.Background(), GetGoalInput{UserID: owner, GoalID: created.Goal.ID})
	if err != nil {
		t.Fatalf("owner read failed: %v", err)
	}
	if out.Goal.ID != created.Goal.ID {
		t.Errorf("wrong goal returned")
	}

	_, err = uc.Execute(context.Background(), GetGoalInput{UserID: uuid.New(), GoalID: created.Goal.ID})
	if !errors.Is(err, domainerror.ErrGoalNotFound) {
		t.Errorf("foreign goal should look missing, got %v", err)
	}

	_, err = uc.Execute(context.Background(), GetGoalInput{UserID: owner, GoalID: uuid.New()})
	if !errors.Is(err, domainerror.ErrGoalNotFound) {
		t.Errorf("unknown goal should be not found, got %v", err)
	}
}

func TestDeleteGoalSoftDeletesAndInvalidatesCache(t *testing.T) {
	repo := newFakeGoalRepo()
	clock := &fixedClock{now: date(2025, time.June, 1)}
	create := NewCreateGoalUseCase(repo, clock)

	owner := uuid.New()
	created, err := create.Execute(context.Background(), CreateGoalInput{
		UserID:       owner,
		GoalType:     "running",
		TargetAmount: decimal.NewFromInt(10),
		TargetUnit:   "km",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	cache := &fakeCache{}
	uc := NewDeleteGoalUseCase(repo, cache)

	if err := uc.Execute(context.Background(), DeleteGoalInput{UserID: uuid.New(), GoalID: created.Goal.ID}); !errors.Is(err, domainerror.ErrGoalNotFound) {
		t.Errorf("foreign delete should look missing, got %v", err)
	}
	if cache.invalidations != 0 {
		t.Error("failed delete must not touch the cache")
	}

	if err := uc.Execute(context.Background(), DeleteGoalInput{UserID: owner, GoalID: created.Goal.ID}); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if cache.invalidations != 1 {
		t.Errorf("expected one cache invalidation, got %d", cache.invalidations)
	}

	get := NewGetGoalUseCase(repo)
	if _, err := get.Execute(context.Background(), GetGoalInput{UserID: owner, GoalID: created.Goal.ID}); !errors.Is(err, domainerror.ErrGoalNotFound) {
		t.Errorf("deleted goal should be not found, got %v", err)
	}
}

func TestListGoalsFiltersActive(t *testing.T) {
	repo := newFakeGoalRepo()
	clock := &fixedClock{now: date(2025, time.June, 1)}
	create := NewCreateGoalUseCase(repo, clock)

	owner := uuid.New()
	for _, goalType := range []string{"running", "reading"} {
		if _, err := create.Execute(context.Background(), CreateGoalInput{
			UserID:       owner,
			GoalType:     goalType,
			TargetAmount: decimal.NewFromInt(10),
			TargetUnit:   "units",
		}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	for _, g := range repo.goals {
		if g.GoalType == "reading" {
			g.IsActive = false
		}
	}

	uc := NewListGoalsUseCase(repo)

	all, err := uc.Execute(context.Background(), ListGoalsInput{UserID: owner})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(all.Goals) != 2 {
		t.Errorf("expected 2 goals, got %d", len(all.Goals))
	}

	active, err := uc.Execute(context.Background(), ListGoalsInput{UserID: owner, ActiveOnly: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(active.Goals) != 1 || active.Goals[0].GoalType != "running" {
		t.Errorf("expected only the running goal, got %d", len(active.Goals))
	}
}
