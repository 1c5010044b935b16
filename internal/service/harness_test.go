package service

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"sharecircle/internal/auth"
	"sharecircle/internal/logging"
	"sharecircle/internal/metrics"
	"sharecircle/internal/model"
	"sharecircle/internal/repository"
	"sharecircle/internal/testutil"
)

type harness struct {
	repos    repository.Repositories
	tx       repository.Transactor
	redis    *miniredis.Miniredis
	metrics  *metrics.Metrics
	jwt      *auth.JWTService
	tokens   *auth.TokenStore
	cache    *ProfileCache
	auth     AuthService
	profiles ProfileService
	rel      RelationshipService
	feed     FeedService
	plans    PlanService
}

func newHarness(t *testing.T) *harness {
	t.Helper()

	gdb := testutil.NewDB(t)
	client, mr := testutil.NewRedis(t)
	repos := repository.New(gdb)
	tx := repository.NewTransactor(gdb)
	m := metrics.New()
	log := logging.Discard()
	tokens := auth.NewTokenStore(client, time.Hour)
	pc := NewProfileCache(client)
	jwtService := auth.NewJWTService("test-secret", time.Hour)

	return &harness{
		repos:    repos,
		tx:       tx,
		redis:    mr,
		metrics:  m,
		jwt:      jwtService,
		tokens:   tokens,
		cache:    pc,
		auth:     NewAuthService(repos.Accounts, repos.Profiles, tx, jwtService, tokens),
		profiles: NewProfileService(repos.Profiles, repos.Accounts, tx, pc, tokens, log),
		rel:      NewRelationshipService(repos.Profiles, repos.Shareables, tx, pc, m, log),
		feed:     NewFeedService(repos.Profiles, repos.Shareables, m),
		plans:    NewPlanService(repos.Plans, repos.Profiles),
	}
}

// signin returns the identity carried by a freshly issued token.
func (h *harness) signin(t *testing.T, email string) auth.Identity {
	t.Helper()
	res, err := h.auth.Signin(context.Background(), email, "secret")
	require.NoError(t, err)
	identity, err := h.jwt.Verify(res.Token)
	require.NoError(t, err)
	return identity
}

// emailBlindAccounts never finds an account by email, as when a concurrent
// request claims the address between the check and the write.
type emailBlindAccounts struct {
	repository.AccountRepository
}

func (emailBlindAccounts) FindByEmail(context.Context, string) (*model.Account, error) {
	return nil, gorm.ErrRecordNotFound
}

// signup registers a user and returns its profile id.
func (h *harness) signup(t *testing.T, first, email string) uuid.UUID {
	t.Helper()
	_, err := h.auth.Signup(context.Background(), SignupInput{Email: email, Password: "secret", FirstName: first})
	require.NoError(t, err)
	p, err := h.repos.Profiles.FindByEmail(context.Background(), email)
	require.NoError(t, err)
	return p.ID
}

// befriend runs the full request / confirm cycle.
func (h *harness) befriend(t *testing.T, a, b uuid.UUID, bEmail string) {
	t.Helper()
	ctx := context.Background()
	require.NoError(t, h.rel.SendRequest(ctx, a, bEmail))
	_, err := h.rel.ConfirmRequest(ctx, b, a)
	require.NoError(t, err)
	// keep link timestamps strictly ordered
	time.Sleep(time.Millisecond)
}

func (h *harness) share(t *testing.T, owner uuid.UUID, name string, priority int, typ model.ShareableType) *model.Shareable {
	t.Helper()
	s, err := h.rel.AddShareable(context.Background(), owner, ShareableInput{Name: name, Type: typ, Priority: &priority})
	require.NoError(t, err)
	time.Sleep(time.Millisecond)
	return s
}

// counterValue reads a counter from the harness registry. label filters by
// any label value; empty matches the first series.
func (h *harness) counterValue(t *testing.T, name, label string) float64 {
	t.Helper()
	families, err := h.metrics.Registry.Gather()
	require.NoError(t, err)
	for _, mf := range families {
		if mf.GetName() != name {
			continue
		}
		for _, m := range mf.GetMetric() {
			if label == "" {
				return m.GetCounter().GetValue()
			}
			for _, lp := range m.GetLabel() {
				if lp.GetValue() == label {
					return m.GetCounter().GetValue()
				}
			}
		}
	}
	return 0
}
