package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"sharecircle/internal/auth"
	"sharecircle/internal/errors"
	"sharecircle/internal/model"
	"sharecircle/internal/repository"
)

func TestAuthService_Signup(t *testing.T) {
	tests := []struct {
		name          string
		input         SignupInput
		setupMock     func(*MockAccountRepository, *MockProfileRepository)
		expectedError error
		expectedTx    int
	}{
		{
			name:  "successful signup",
			input: SignupInput{Email: "Jon@Snow.com", Password: "ghost", FirstName: "Jon", LastName: "Snow"},
			setupMock: func(a *MockAccountRepository, p *MockProfileRepository) {
				a.On("FindByEmail", mock.Anything, "jon@snow.com").Return(nil, gorm.ErrRecordNotFound)
				a.On("Create", mock.Anything, mock.MatchedBy(func(acc *model.Account) bool {
					return acc.Email == "jon@snow.com" &&
						bcrypt.CompareHashAndPassword([]byte(acc.PasswordHash), []byte("ghost")) == nil
				})).Return(nil)
				p.On("Create", mock.Anything, mock.MatchedBy(func(pr *model.Profile) bool {
					return pr.FirstName == "Jon" && pr.Email == "jon@snow.com"
				})).Return(nil)
			},
			expectedTx: 1,
		},
		{
			name:  "email already in use",
			input: SignupInput{Email: "jon@snow.com", Password: "ghost"},
			setupMock: func(a *MockAccountRepository, p *MockProfileRepository) {
				a.On("FindByEmail", mock.Anything, "jon@snow.com").Return(&model.Account{Email: "jon@snow.com"}, nil)
			},
			expectedError: errors.ErrEmailInUse,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			accounts := new(MockAccountRepository)
			profiles := new(MockProfileRepository)
			tt.setupMock(accounts, profiles)
			tx := &MockTransactor{repos: repository.Repositories{Accounts: accounts, Profiles: profiles}}

			jwtService := auth.NewJWTService("test-secret", time.Hour)
			svc := NewAuthService(accounts, profiles, tx, jwtService, new(MockTokenStore))

			result, err := svc.Signup(context.Background(), tt.input)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, result)
			} else {
				require.NoError(t, err)
				assert.Equal(t, "Jon", result.Name)
				identity, err := jwtService.Verify(result.Token)
				require.NoError(t, err)
				assert.NotEqual(t, uuid.Nil, identity.ProfileID)
			}
			assert.Equal(t, tt.expectedTx, tx.calls)

			accounts.AssertExpectations(t)
			profiles.AssertExpectations(t)
		})
	}
}

func TestAuthService_SignupValidation(t *testing.T) {
	svc := NewAuthService(new(MockAccountRepository), new(MockProfileRepository), &MockTransactor{},
		auth.NewJWTService("test-secret", time.Hour), nil)

	_, err := svc.Signup(context.Background(), SignupInput{FirstName: "Jon"})

	var verr *errors.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, []string{"email is required", "password is required"}, verr.Messages)
}

func TestAuthService_SignupEmailTakenAtInsert(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	h.signup(t, "Jon", "jon@snow.com")

	svc := NewAuthService(emailBlindAccounts{h.repos.Accounts}, h.repos.Profiles, h.tx, h.jwt, h.tokens)

	_, err := svc.Signup(ctx, SignupInput{Email: "JON@snow.com", Password: "other", FirstName: "Aegon"})
	assert.ErrorIs(t, err, errors.ErrEmailInUse)
	assert.Equal(t, "EMAIL_IN_USE", errors.MapErrorToHTTP(err).Code)

	// the losing signup left nothing behind
	result, err := h.auth.Signin(ctx, "jon@snow.com", "secret")
	require.NoError(t, err)
	assert.Equal(t, "Jon", result.Name)
}

func TestAuthService_Signin(t *testing.T) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte("ghost"), bcryptCost)
	require.NoError(t, err)
	accountID := uuid.New()

	tests := []struct {
		name          string
		email         string
		password      string
		setupMock     func(*MockAccountRepository, *MockProfileRepository)
		expectedError error
	}{
		{
			name:     "successful signin",
			email:    "jon@snow.com",
			password: "ghost",
			setupMock: func(a *MockAccountRepository, p *MockProfileRepository) {
				a.On("FindByEmail", mock.Anything, "jon@snow.com").Return(&model.Account{
					ID:           accountID,
					Email:        "jon@snow.com",
					PasswordHash: string(hashedPassword),
				}, nil)
				p.On("FindByEmail", mock.Anything, "jon@snow.com").Return(&model.Profile{ID: accountID, FirstName: "Jon"}, nil)
			},
		},
		{
			name:     "unknown email",
			email:    "nobody@snow.com",
			password: "ghost",
			setupMock: func(a *MockAccountRepository, p *MockProfileRepository) {
				a.On("FindByEmail", mock.Anything, "nobody@snow.com").Return(nil, gorm.ErrRecordNotFound)
			},
			expectedError: errors.ErrInvalidCredentials,
		},
		{
			name:     "wrong password",
			email:    "jon@snow.com",
			password: "wildfire",
			setupMock: func(a *MockAccountRepository, p *MockProfileRepository) {
				a.On("FindByEmail", mock.Anything, "jon@snow.com").Return(&model.Account{
					ID:           accountID,
					Email:        "jon@snow.com",
					PasswordHash: string(hashedPassword),
				}, nil)
			},
			expectedError: errors.ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			accounts := new(MockAccountRepository)
			profiles := new(MockProfileRepository)
			tt.setupMock(accounts, profiles)

			jwtService := auth.NewJWTService("test-secret", time.Hour)
			svc := NewAuthService(accounts, profiles, &MockTransactor{}, jwtService, nil)

			result, err := svc.Signin(context.Background(), tt.email, tt.password)

			if tt.expectedError != nil {
				assert.Equal(t, tt.expectedError, err)
				assert.Nil(t, result)
			} else {
				require.NoError(t, err)
				assert.Equal(t, "Jon", result.Name)
				identity, err := jwtService.Verify(result.Token)
				require.NoError(t, err)
				assert.Equal(t, accountID, identity.ProfileID)
			}

			accounts.AssertExpectations(t)
			profiles.AssertExpectations(t)
		})
	}
}

func TestAuthService_Signout(t *testing.T) {
	store := new(MockTokenStore)
	identity := auth.Identity{ProfileID: uuid.New(), TokenID: "jti"}
	store.On("Revoke", mock.Anything, identity).Return(nil)

	svc := NewAuthService(new(MockAccountRepository), new(MockProfileRepository), &MockTransactor{},
		auth.NewJWTService("test-secret", time.Hour), store)

	require.NoError(t, svc.Signout(context.Background(), identity))
	store.AssertExpectations(t)
}
