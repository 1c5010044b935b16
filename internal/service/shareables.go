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
)

// ShareableInput carries a new shareable. Nil pointers take defaults.
type ShareableInput struct {
	Name         string
	Type         model.ShareableType
	Priority     *int
	GroupSize    *int
	Participants json.RawMessage
	Date         *time.Time
	Expiration   *time.Time
	Confirmed    *bool
	Archived     *bool
	Repeats      *int
}

// ShareablePatch carries the fields present in an update request. The owner
// is never patchable. Date, Expiration and Repeats are nullable columns and
// can be cleared with an explicit null.
type ShareablePatch struct {
	Name         *string
	Type         *model.ShareableType
	Priority     *int
	GroupSize    *int
	Participants json.RawMessage
	Date         Optional[time.Time]
	Expiration   Optional[time.Time]
	Confirmed    *bool
	Archived     *bool
	Repeats      Optional[int]
}

func validateShareableFields(name *string, typ *model.ShareableType, priority, groupSize, repeats *int, participants json.RawMessage) []string {
	var problems []string
	if name != nil && strings.TrimSpace(*name) == "" {
		problems = append(problems, "name is required")
	}
	if typ != nil && !typ.Valid() {
		problems = append(problems, "type must be one of giving, requesting, plans")
	}
	if priority != nil && (*priority < model.PriorityPrivate || *priority > model.PriorityHigh) {
		problems = append(problems, "priority must be between 0 and 2")
	}
	if groupSize != nil && *groupSize < 0 {
		problems = append(problems, "groupSize must not be negative")
	}
	if repeats != nil && *repeats < 0 {
		problems = append(problems, "repeats must not be negative")
	}
	if present(participants) {
		var list []interface{}
		if json.Unmarshal(participants, &list) != nil {
			problems = append(problems, "participants must be a list")
		}
	}
	return problems
}

// AddShareable validates and stores a new shareable owned by ownerID.
func (s *relationshipService) AddShareable(ctx context.Context, ownerID uuid.UUID, in ShareableInput) (*model.Shareable, error) {
	name := strings.TrimSpace(in.Name)
	if problems := validateShareableFields(&name, &in.Type, in.Priority, in.GroupSize, in.Repeats, in.Participants); len(problems) > 0 {
		return nil, errors.NewValidationError(problems...)
	}

	shareable := &model.Shareable{
		OwnerID:    ownerID,
		Name:       name,
		Type:       in.Type,
		Priority:   model.PriorityPrivate,
		GroupSize:  model.DefaultGroupSize,
		Date:       in.Date,
		Expiration: in.Expiration,
		Repeats:    in.Repeats,
	}
	if in.Priority != nil {
		shareable.Priority = *in.Priority
	}
	if in.GroupSize != nil {
		shareable.GroupSize = *in.GroupSize
	}
	if in.Confirmed != nil {
		shareable.Confirmed = *in.Confirmed
	}
	if in.Archived != nil {
		shareable.Archived = *in.Archived
	}
	if present(in.Participants) {
		shareable.Participants = datatypes.JSON(in.Participants)
	}

	if err := s.shareables.Create(ctx, shareable); err != nil {
		if isMissingReference(err) {
			return nil, errors.ErrProfileNotFound
		}
		return nil, fmt.Errorf("create shareable: %w", err)
	}

	s.cache.Invalidate(ctx, ownerID)
	return shareable, nil
}

func (s *relationshipService) ListShareables(ctx context.Context, ownerID uuid.UUID) ([]model.Shareable, error) {
	shareables, err := s.shareables.ListByOwner(ctx, ownerID, model.PriorityPrivate)
	if err != nil {
		return nil, fmt.Errorf("list shareables: %w", err)
	}
	for i := range shareables {
		shareables[i].Normalize()
	}
	return shareables, nil
}

// UpdateShareable applies patch when userID owns the shareable. Unknown ids
// are reported as not owned.
func (s *relationshipService) UpdateShareable(ctx context.Context, userID, shareableID uuid.UUID, patch ShareablePatch) (*model.Shareable, error) {
	if problems := validateShareableFields(patch.Name, patch.Type, patch.Priority, patch.GroupSize, patch.Repeats.Value, patch.Participants); len(problems) > 0 {
		return nil, errors.NewValidationError(problems...)
	}

	fields := map[string]interface{}{}
	if patch.Name != nil {
		fields["name"] = strings.TrimSpace(*patch.Name)
	}
	if patch.Type != nil {
		fields["type"] = *patch.Type
	}
	if patch.Priority != nil {
		fields["priority"] = *patch.Priority
	}
	if patch.GroupSize != nil {
		fields["group_size"] = *patch.GroupSize
	}
	if present(patch.Participants) {
		fields["participants"] = datatypes.JSON(patch.Participants)
	}
	if patch.Date.Set {
		fields["date"] = patch.Date.column()
	}
	if patch.Expiration.Set {
		fields["expiration"] = patch.Expiration.column()
	}
	if patch.Confirmed != nil {
		fields["confirmed"] = *patch.Confirmed
	}
	if patch.Archived != nil {
		fields["archived"] = *patch.Archived
	}
	if patch.Repeats.Set {
		fields["repeats"] = patch.Repeats.column()
	}

	ok, err := s.shareables.UpdateOwned(ctx, shareableID, userID, fields)
	if err != nil {
		return nil, fmt.Errorf("update shareable: %w", err)
	}
	if !ok {
		return nil, errors.ErrNotOwner
	}

	s.cache.Invalidate(ctx, userID)

	updated, err := s.shareables.FindOwned(ctx, shareableID, userID)
	if err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.ErrNotOwner
		}
		return nil, fmt.Errorf("reload shareable: %w", err)
	}
	updated.Normalize()
	return updated, nil
}

// DeleteShareable removes the shareable when userID owns it.
func (s *relationshipService) DeleteShareable(ctx context.Context, userID, shareableID uuid.UUID) error {
	ok, err := s.shareables.DeleteOwned(ctx, shareableID, userID)
	if err != nil {
		return fmt.Errorf("delete shareable: %w", err)
	}
	if !ok {
		return errors.ErrNotOwner
	}
	s.cache.Invalidate(ctx, userID)
	return nil
}
