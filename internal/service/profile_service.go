package service

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"sharecircle/internal/auth"
	"sharecircle/internal/errors"
	"sharecircle/internal/model"
	"sharecircle/internal/repository"
)

// ProfilePatch lists the editable profile fields. Empty values are left
// untouched.
type ProfilePatch struct {
	FirstName    string
	LastName     string
	PictureURL   string
	Email        string
	Contact      json.RawMessage
	Availability json.RawMessage
}

// ProfileService reads, edits and deletes the caller's own profile.
type ProfileService interface {
	Get(ctx context.Context, id uuid.UUID) (*model.Profile, error)
	Update(ctx context.Context, id uuid.UUID, patch ProfilePatch) (*model.Profile, error)
	// Delete removes the profile of identity together with its account,
	// shareables, plans and every link to it, then revokes all of its tokens.
	Delete(ctx context.Context, identity auth.Identity) error
}

type profileService struct {
	profiles   repository.ProfileRepository
	accounts   repository.AccountRepository
	tx         repository.Transactor
	cache      *ProfileCache
	tokenStore auth.TokenStoreInterface
	validate   *validator.Validate
	log        logrus.FieldLogger
}

// NewProfileService creates a new profile service.
func NewProfileService(
	profiles repository.ProfileRepository,
	accounts repository.AccountRepository,
	tx repository.Transactor,
	cache *ProfileCache,
	tokenStore auth.TokenStoreInterface,
	log logrus.FieldLogger,
) ProfileService {
	return &profileService{
		profiles:   profiles,
		accounts:   accounts,
		tx:         tx,
		cache:      cache,
		tokenStore: tokenStore,
		validate:   validator.New(),
		log:        log,
	}
}

// Get retrieves a profile by ID with caching.
func (s *profileService) Get(ctx context.Context, id uuid.UUID) (*model.Profile, error) {
	if cached, ok := s.cache.Get(ctx, id); ok {
		return cached, nil
	}

	profile, err := s.profiles.FindByID(ctx, id)
	if err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.ErrProfileNotFound
		}
		return nil, fmt.Errorf("find profile: %w", err)
	}

	s.cache.Set(ctx, profile)
	return profile, nil
}

func (s *profileService) Update(ctx context.Context, id uuid.UUID, patch ProfilePatch) (*model.Profile, error) {
	fields, email, err := s.patchFields(patch)
	if err != nil {
		return nil, err
	}

	if email != "" {
		owner, err := s.accounts.FindByEmail(ctx, email)
		switch {
		case err == nil && owner.ID != id:
			return nil, errors.ErrEmailInUse
		case err != nil && !stderrors.Is(err, gorm.ErrRecordNotFound):
			return nil, fmt.Errorf("check email: %w", err)
		}
	}

	err = s.tx.WithinTransaction(ctx, func(ctx context.Context, repos repository.Repositories) error {
		exists, err := repos.Profiles.Exists(ctx, id)
		if err != nil {
			return err
		}
		if !exists {
			return errors.ErrProfileNotFound
		}
		if err := repos.Profiles.Update(ctx, id, fields); err != nil {
			if isDuplicate(err) {
				return errors.ErrEmailInUse
			}
			return fmt.Errorf("update profile: %w", err)
		}
		if email != "" {
			if err := repos.Accounts.UpdateEmail(ctx, id, email); err != nil {
				if isDuplicate(err) {
					return errors.ErrEmailInUse
				}
				return fmt.Errorf("update account email: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.cache.Invalidate(ctx, id)
	return s.Get(ctx, id)
}

func (s *profileService) patchFields(patch ProfilePatch) (map[string]interface{}, string, error) {
	fields := map[string]interface{}{}
	var problems []string

	if v := strings.TrimSpace(patch.FirstName); v != "" {
		fields["first_name"] = v
	}
	if v := strings.TrimSpace(patch.LastName); v != "" {
		fields["last_name"] = v
	}
	if v := strings.TrimSpace(patch.PictureURL); v != "" {
		fields["picture_url"] = v
	}

	email := strings.ToLower(strings.TrimSpace(patch.Email))
	if email != "" {
		if s.validate.Var(email, "email") != nil {
			problems = append(problems, "email is invalid")
		} else {
			fields["email"] = email
		}
	}

	if present(patch.Contact) {
		var list []interface{}
		if json.Unmarshal(patch.Contact, &list) != nil {
			problems = append(problems, "contact must be a list")
		} else {
			fields["contact"] = datatypes.JSON(patch.Contact)
		}
	}
	if present(patch.Availability) {
		var obj map[string]interface{}
		if json.Unmarshal(patch.Availability, &obj) != nil {
			problems = append(problems, "availability must be an object")
		} else {
			fields["availability"] = datatypes.JSON(patch.Availability)
		}
	}

	if len(problems) > 0 {
		return nil, "", errors.NewValidationError(problems...)
	}
	return fields, email, nil
}

func (s *profileService) Delete(ctx context.Context, identity auth.Identity) error {
	id := identity.ProfileID
	var related []uuid.UUID

	err := s.tx.WithinTransaction(ctx, func(ctx context.Context, repos repository.Repositories) error {
		exists, err := repos.Profiles.Exists(ctx, id)
		if err != nil {
			return err
		}
		if !exists {
			return errors.ErrProfileNotFound
		}

		if related, err = repos.Profiles.RelatedIDs(ctx, id); err != nil {
			return fmt.Errorf("list related profiles: %w", err)
		}
		if err := repos.Profiles.Unlink(ctx, id); err != nil {
			return fmt.Errorf("unlink profile: %w", err)
		}
		if err := repos.Shareables.DeleteByOwner(ctx, id); err != nil {
			return fmt.Errorf("delete shareables: %w", err)
		}
		if err := repos.Plans.DeleteByOwner(ctx, id); err != nil {
			return fmt.Errorf("delete plans: %w", err)
		}
		if err := repos.Profiles.Delete(ctx, id); err != nil {
			return fmt.Errorf("delete profile: %w", err)
		}
		if err := repos.Accounts.Delete(ctx, id); err != nil {
			return fmt.Errorf("delete account: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.cache.Invalidate(ctx, append(related, id)...)

	if s.tokenStore != nil {
		if err := s.tokenStore.Revoke(ctx, identity); err != nil {
			s.log.WithError(err).WithField("profile_id", id).Warn("revoke token after profile deletion")
		}
		// other sessions of the deleted profile must stop passing the gate too
		if err := s.tokenStore.RevokeProfile(ctx, id); err != nil {
			s.log.WithError(err).WithField("profile_id", id).Warn("revoke profile tokens after deletion")
		}
	}
	s.log.WithFields(logrus.Fields{"profile_id": id, "unlinked": len(related)}).Info("profile deleted")
	return nil
}

// present reports whether raw holds a JSON value other than null.
func present(raw json.RawMessage) bool {
	v := strings.TrimSpace(string(raw))
	return v != "" && v != "null"
}
