package usecase

import (
	"context"
	"errors"
	"strings"

	"timeflow/internal/goal"
	"timeflow/internal/goal/repository"
	"timeflow/internal/model"
)

func (uc *implUseCase) Create(ctx context.Context, input goal.CreateGoalInput) (goal.CreateGoalOutput, error) {
	if err := validateInput(input); err != nil {
		return goal.CreateGoalOutput{}, err
	}

	created, err := uc.repo.CreateGoal(ctx, repository.CreateGoalOptions{
		Name:           strings.TrimSpace(input.Name),
		TimePeriod:     input.TimePeriod,
		TargetHours:    input.TargetHours,
		Comparison:     input.Comparison,
		EligibleTagIDs: input.EligibleTagIDs,
	})
	if err != nil {
		uc.l.Errorf(ctx, "goal.usecase.Create: %v", err)
		return goal.CreateGoalOutput{}, err
	}

	return goal.CreateGoalOutput{Goal: created}, nil
}

func (uc *implUseCase) List(ctx context.Context) (goal.ListGoalsOutput, error) {
	goals, err := uc.repo.ListGoals(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "goal.usecase.List: %v", err)
		return goal.ListGoalsOutput{}, err
	}

	return goal.ListGoalsOutput{Goals: goals}, nil
}

func (uc *implUseCase) Detail(ctx context.Context, id string) (goal.DetailGoalOutput, error) {
	g, err := uc.repo.GetOneGoal(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return goal.DetailGoalOutput{}, goal.ErrGoalNotFound
		}
		uc.l.Errorf(ctx, "goal.usecase.Detail: %v", err)
		return goal.DetailGoalOutput{}, err
	}

	return goal.DetailGoalOutput{Goal: g}, nil
}

func (uc *implUseCase) Update(ctx context.Context, input goal.UpdateGoalInput) (goal.UpdateGoalOutput, error) {
	if input.TimePeriod != "" && !validPeriod(input.TimePeriod) {
		return goal.UpdateGoalOutput{}, goal.ErrInvalidPeriod
	}
	if input.Comparison != "" && !validComparison(input.Comparison) {
		return goal.UpdateGoalOutput{}, goal.ErrInvalidComparison
	}

	updated, err := uc.repo.UpdateGoal(ctx, repository.UpdateGoalOptions{
		ID:             input.ID,
		Name:           strings.TrimSpace(input.Name),
		TimePeriod:     input.TimePeriod,
		TargetHours:    input.TargetHours,
		Comparison:     input.Comparison,
		EligibleTagIDs: input.EligibleTagIDs,
	})
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return goal.UpdateGoalOutput{}, goal.ErrGoalNotFound
		}
		uc.l.Errorf(ctx, "goal.usecase.Update: %v", err)
		return goal.UpdateGoalOutput{}, err
	}

	return goal.UpdateGoalOutput{Goal: updated}, nil
}

func (uc *implUseCase) Delete(ctx context.Context, id string) error {
	if err := uc.repo.DeleteGoal(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return goal.ErrGoalNotFound
		}
		uc.l.Errorf(ctx, "goal.usecase.Delete: %v", err)
		return err
	}

	return nil
}

func validateInput(input goal.CreateGoalInput) error {
	if strings.TrimSpace(input.Name) == "" {
		return goal.ErrEmptyName
	}
	if !validPeriod(input.TimePeriod) {
		return goal.ErrInvalidPeriod
	}
	if !validComparison(input.Comparison) {
		return goal.ErrInvalidComparison
	}
	if input.TargetHours <= 0 {
		return goal.ErrInvalidTarget
	}
	if len(input.EligibleTagIDs) == 0 {
		return goal.ErrNoEligibleTags
	}
	return nil
}

func validPeriod(p model.TimePeriod) bool {
	switch p {
	case model.PeriodDaily, model.PeriodWeekly, model.PeriodMonthly:
		return true
	}
	return false
}

func validComparison(c model.Comparison) bool {
	switch c {
	case model.ComparisonAtLeast, model.ComparisonNoMoreThan:
		return true
	}
	return false
}
