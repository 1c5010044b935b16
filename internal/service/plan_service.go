package service

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"sharecircle/internal/errors"
	"sharecircle/internal/model"
	"sharecircle/internal/repository"
)

// PlanInput carries a new plan.
type PlanInput struct {
	Name         string
	Priorities   []int
	GroupSize    *int
	Participants json.RawMessage
	Date         *time.Time
	Expiration   *time.Time
	Confirmed    bool
	Archived     bool
	Repeats      *int
}

// PlanService creates plans and shows them to their owner and the owner's
// friends.
type PlanService interface {
	Create(ctx context.Context, ownerID uuid.UUID, in PlanInput) (*model.Plan, error)
	Get(ctx context.Context, userID, planID uuid.UUID) (*model.Plan, error)
}

type planService struct {
	plans    repository.PlanRepository
	profiles repository.ProfileRepository
}

// NewPlanService creates a new plan service.
func NewPlanService(plans repository.PlanRepository, profiles repository.ProfileRepository) PlanService {
	return &planService{plans: plans, profiles: profiles}
}

func (s *planService) Create(ctx context.Context, ownerID uuid.UUID, in PlanInput) (*model.Plan, error) {
	name := strings.TrimSpace(in.Name)
	var problems []string
	if name == "" {
		problems = append(problems, "name is required")
	}
	for _, p := range in.Priorities {
		if p < model.PriorityPrivate || p > model.PriorityHigh {
			problems = append(problems, "priorities must be between 0 and 2")
			break
		}
	}
	if in.GroupSize != nil && *in.GroupSize < 0 {
		problems = append(problems, "groupSize must not be negative")
	}
	if in.Repeats != nil && *in.Repeats < 0 {
		problems = append(problems, "repeats must not be negative")
	}
	if len(problems) > 0 {
		return nil, errors.NewValidationError(problems...)
	}

	plan := &model.Plan{
		OwnerID:    ownerID,
		Name:       name,
		Priorities: datatypes.JSONSlice[int](in.Priorities),
		GroupSize:  model.DefaultGroupSize,
		Date:       in.Date,
		Expiration: in.Expiration,
		Confirmed:  in.Confirmed,
		Archived:   in.Archived,
		Repeats:    in.Repeats,
	}
	if in.GroupSize != nil {
		plan.GroupSize = *in.GroupSize
	}
	if present(in.Participants) {
		plan.Participants = datatypes.JSON(in.Participants)
	}

	if err := s.plans.Create(ctx, plan); err != nil {
		if isMissingReference(err) {
			return nil, errors.ErrProfileNotFound
		}
		return nil, fmt.Errorf("create plan: %w", err)
	}
	return plan, nil
}

func (s *planService) Get(ctx context.Context, userID, planID uuid.UUID) (*model.Plan, error) {
	plan, err := s.plans.FindByID(ctx, planID)
	if err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.ErrPlanNotFound
		}
		return nil, fmt.Errorf("find plan: %w", err)
	}

	if plan.OwnerID != userID {
		friends, err := s.profiles.IsFriend(ctx, plan.OwnerID, userID)
		if err != nil {
			return nil, fmt.Errorf("check friendship: %w", err)
		}
		if !friends {
			return nil, errors.ErrNotYourFriend
		}
	}
	return plan, nil
}
