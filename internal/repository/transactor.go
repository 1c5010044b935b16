package repository

import (
	"context"

	"gorm.io/gorm"
)

// Repositories bundles every store bound to the same connection or
// transaction.
type Repositories struct {
	Accounts   AccountRepository
	Profiles   ProfileRepository
	Shareables ShareableRepository
	Plans      PlanRepository
}

// New builds all repositories on db.
func New(db *gorm.DB) Repositories {
	return Repositories{
		Accounts:   NewAccountRepository(db),
		Profiles:   NewProfileRepository(db),
		Shareables: NewShareableRepository(db),
		Plans:      NewPlanRepository(db),
	}
}

// Transactor runs multi-row mutations atomically.
type Transactor interface {
	// WithinTransaction commits when fn returns nil and rolls back otherwise.
	// fn must only use the repositories it is handed.
	WithinTransaction(ctx context.Context, fn func(ctx context.Context, repos Repositories) error) error
}

type gormTransactor struct {
	db *gorm.DB
}

// NewTransactor creates a Transactor backed by gorm transactions.
func NewTransactor(db *gorm.DB) Transactor {
	return &gormTransactor{db: db}
}

// WithinTransaction executes fn within a database transaction.
func (t *gormTransactor) WithinTransaction(ctx context.Context, fn func(ctx context.Context, repos Repositories) error) error {
	return t.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(ctx, New(tx))
	})
}
