// Package seed fills a development database with fake profiles, friendships
// and shareables. It goes through the services so seeded data obeys the same
// rules as data created over the API.
package seed

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"sharecircle/internal/model"
	"sharecircle/internal/repository"
	"sharecircle/internal/service"
)

// DefaultPassword is set on every seeded account.
const DefaultPassword = "password123"

// Options controls how much data Run creates.
type Options struct {
	Profiles      int
	FriendsPer    int
	ShareablesPer int
	// Seed makes the generated names and items reproducible. Zero picks a
	// random seed.
	Seed int64
}

// Result counts what Run created.
type Result struct {
	Profiles    int
	Friendships int
	Shareables  int
}

type seededProfile struct {
	id    uuid.UUID
	email string
}

// Seeder creates demo data through the auth and relationship services.
type Seeder struct {
	auth          service.AuthService
	relationships service.RelationshipService
	profiles      repository.ProfileRepository
	log           logrus.FieldLogger
}

// NewSeeder creates a seeder.
func NewSeeder(auth service.AuthService, relationships service.RelationshipService, profiles repository.ProfileRepository, log logrus.FieldLogger) *Seeder {
	return &Seeder{auth: auth, relationships: relationships, profiles: profiles, log: log}
}

// Run signs up opts.Profiles users, links each to the next opts.FriendsPer
// users in a ring and posts opts.ShareablesPer shareables for each of them.
func (s *Seeder) Run(ctx context.Context, opts Options) (*Result, error) {
	faker := gofakeit.New(opts.Seed)
	res := &Result{}

	seeded := make([]seededProfile, 0, opts.Profiles)
	for i := 0; i < opts.Profiles; i++ {
		first, last := faker.FirstName(), faker.LastName()
		email := fmt.Sprintf("%s.%s%d@example.com", emailPart(first), emailPart(last), i)

		if _, err := s.auth.Signup(ctx, service.SignupInput{
			Email:     email,
			Password:  DefaultPassword,
			FirstName: first,
			LastName:  last,
		}); err != nil {
			return res, fmt.Errorf("signup %s: %w", email, err)
		}
		profile, err := s.profiles.FindByEmail(ctx, email)
		if err != nil {
			return res, fmt.Errorf("load profile %s: %w", email, err)
		}
		seeded = append(seeded, seededProfile{id: profile.ID, email: email})
		res.Profiles++
	}

	friendsPer := opts.FriendsPer
	if friendsPer > len(seeded)-1 {
		friendsPer = len(seeded) - 1
	}
	linked := make(map[[2]uuid.UUID]bool)
	for i, requester := range seeded {
		for step := 1; step <= friendsPer; step++ {
			target := seeded[(i+step)%len(seeded)]
			if linked[pairKey(requester.id, target.id)] {
				continue
			}
			if err := s.relationships.SendRequest(ctx, requester.id, target.email); err != nil {
				return res, fmt.Errorf("friend request %s -> %s: %w", requester.email, target.email, err)
			}
			if _, err := s.relationships.ConfirmRequest(ctx, target.id, requester.id); err != nil {
				return res, fmt.Errorf("confirm %s -> %s: %w", requester.email, target.email, err)
			}
			linked[pairKey(requester.id, target.id)] = true
			res.Friendships++
		}
	}

	types := []string{
		string(model.ShareableTypeGiving),
		string(model.ShareableTypeRequesting),
		string(model.ShareableTypePlans),
	}
	now := time.Now()
	for _, p := range seeded {
		for j := 0; j < opts.ShareablesPer; j++ {
			priority := faker.Number(model.PriorityPrivate, model.PriorityHigh)
			groupSize := faker.Number(1, 8)
			in := service.ShareableInput{
				Name:      faker.Adjective() + " " + faker.Noun(),
				Type:      model.ShareableType(faker.RandomString(types)),
				Priority:  &priority,
				GroupSize: &groupSize,
			}
			if in.Type == model.ShareableTypePlans {
				date := faker.DateRange(now, now.Add(60*24*time.Hour))
				in.Date = &date
			}
			if _, err := s.relationships.AddShareable(ctx, p.id, in); err != nil {
				return res, fmt.Errorf("add shareable for %s: %w", p.email, err)
			}
			res.Shareables++
		}
	}

	s.log.WithFields(logrus.Fields{
		"profiles":    res.Profiles,
		"friendships": res.Friendships,
		"shareables":  res.Shareables,
	}).Info("seed complete")
	return res, nil
}

func pairKey(a, b uuid.UUID) [2]uuid.UUID {
	if a.String() > b.String() {
		a, b = b, a
	}
	return [2]uuid.UUID{a, b}
}

// emailPart keeps the ASCII letters of a name, lowercased.
func emailPart(name string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z':
			return r
		case r >= 'A' && r <= 'Z':
			return r + ('a' - 'A')
		}
		return -1
	}, name)
}
