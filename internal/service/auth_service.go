package service

import (
	"context"
	stderrors "errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"sharecircle/internal/auth"
	"sharecircle/internal/errors"
	"sharecircle/internal/model"
	"sharecircle/internal/repository"
)

const bcryptCost = 10

// SignupInput carries the fields accepted on signup.
type SignupInput struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
}

// AuthResult is returned by signup and signin.
type AuthResult struct {
	Token string `json:"token"`
	Name  string `json:"name"`
}

// AuthService handles authentication operations.
type AuthService interface {
	Signup(ctx context.Context, in SignupInput) (*AuthResult, error)
	Signin(ctx context.Context, email, password string) (*AuthResult, error)
	Signout(ctx context.Context, identity auth.Identity) error
}

type authService struct {
	accountRepo repository.AccountRepository
	profileRepo repository.ProfileRepository
	tx          repository.Transactor
	jwtService  *auth.JWTService
	tokenStore  auth.TokenStoreInterface
}

// NewAuthService creates a new authentication service.
func NewAuthService(
	accountRepo repository.AccountRepository,
	profileRepo repository.ProfileRepository,
	tx repository.Transactor,
	jwtService *auth.JWTService,
	tokenStore auth.TokenStoreInterface,
) AuthService {
	return &authService{
		accountRepo: accountRepo,
		profileRepo: profileRepo,
		tx:          tx,
		jwtService:  jwtService,
		tokenStore:  tokenStore,
	}
}

// Signup creates an account and its profile with the same id, then signs a
// token for it.
func (s *authService) Signup(ctx context.Context, in SignupInput) (*AuthResult, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))

	var missing []string
	if email == "" {
		missing = append(missing, "email is required")
	}
	if in.Password == "" {
		missing = append(missing, "password is required")
	}
	if len(missing) > 0 {
		return nil, errors.NewValidationError(missing...)
	}

	existing, err := s.accountRepo.FindByEmail(ctx, email)
	if err == nil && existing != nil {
		return nil, errors.ErrEmailInUse
	}
	if err != nil && !stderrors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("check account existence: %w", err)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	id := uuid.New()
	profile := &model.Profile{
		ID:        id,
		FirstName: strings.TrimSpace(in.FirstName),
		LastName:  strings.TrimSpace(in.LastName),
		Email:     email,
	}
	err = s.tx.WithinTransaction(ctx, func(ctx context.Context, repos repository.Repositories) error {
		account := &model.Account{ID: id, Email: email, PasswordHash: string(hashedPassword)}
		if err := repos.Accounts.Create(ctx, account); err != nil {
			if isDuplicate(err) {
				return errors.ErrEmailInUse
			}
			return fmt.Errorf("create account: %w", err)
		}
		if err := repos.Profiles.Create(ctx, profile); err != nil {
			if isDuplicate(err) {
				return errors.ErrEmailInUse
			}
			return fmt.Errorf("create profile: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.issue(id, profile.DisplayName())
}

// Signin checks credentials and signs a fresh token.
func (s *authService) Signin(ctx context.Context, email, password string) (*AuthResult, error) {
	account, err := s.accountRepo.FindByEmail(ctx, email)
	if err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("find account: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)); err != nil {
		return nil, errors.ErrInvalidCredentials
	}

	profile, err := s.profileRepo.FindByEmail(ctx, account.Email)
	if err != nil {
		return nil, fmt.Errorf("find profile: %w", err)
	}

	return s.issue(account.ID, profile.DisplayName())
}

// Signout revokes the caller's token until it would have expired.
func (s *authService) Signout(ctx context.Context, identity auth.Identity) error {
	if s.tokenStore == nil {
		return nil
	}
	return s.tokenStore.Revoke(ctx, identity)
}

func (s *authService) issue(id uuid.UUID, name string) (*AuthResult, error) {
	token, err := s.jwtService.Sign(auth.Identity{ProfileID: id})
	if err != nil {
		return nil, fmt.Errorf("sign token: %w", err)
	}
	return &AuthResult{Token: token, Name: name}, nil
}
