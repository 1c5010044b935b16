package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"sharecircle/internal/model"
)

// ShareableRepository persists shareables. Mutations are scoped to the owner
// so a single statement both checks ownership and applies the change.
type ShareableRepository interface {
	Create(ctx context.Context, shareable *model.Shareable) error
	// ListByOwner returns the owner's shareables with priority >= minPriority
	// in creation order.
	ListByOwner(ctx context.Context, ownerID uuid.UUID, minPriority int) ([]model.Shareable, error)
	// ListFeedCandidates returns high-priority giving/requesting shareables
	// owned by any of ownerIDs, oldest first.
	ListFeedCandidates(ctx context.Context, ownerIDs []uuid.UUID) ([]model.Shareable, error)
	FindOwned(ctx context.Context, id, ownerID uuid.UUID) (*model.Shareable, error)
	// UpdateOwned reports false when no shareable with id belongs to ownerID.
	UpdateOwned(ctx context.Context, id, ownerID uuid.UUID, fields map[string]interface{}) (bool, error)
	// DeleteOwned reports false when no shareable with id belongs to ownerID.
	DeleteOwned(ctx context.Context, id, ownerID uuid.UUID) (bool, error)
	DeleteByOwner(ctx context.Context, ownerID uuid.UUID) error
}

type shareableRepository struct {
	db *gorm.DB
}

// NewShareableRepository creates a new shareable repository.
func NewShareableRepository(db *gorm.DB) ShareableRepository {
	return &shareableRepository{db: db}
}

func (r *shareableRepository) Create(ctx context.Context, shareable *model.Shareable) error {
	shareable.Normalize()
	return r.db.WithContext(ctx).Create(shareable).Error
}

func (r *shareableRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID, minPriority int) ([]model.Shareable, error) {
	shareables := []model.Shareable{}
	err := r.db.WithContext(ctx).
		Where("owner_id = ? AND priority >= ?", ownerID, minPriority).
		Order("created_at ASC").
		Find(&shareables).Error
	return shareables, err
}

func (r *shareableRepository) ListFeedCandidates(ctx context.Context, ownerIDs []uuid.UUID) ([]model.Shareable, error) {
	shareables := []model.Shareable{}
	if len(ownerIDs) == 0 {
		return shareables, nil
	}
	err := r.db.WithContext(ctx).
		Where("owner_id IN ?", ownerIDs).
		Where("priority = ?", model.PriorityHigh).
		Where("type IN ?", []model.ShareableType{model.ShareableTypeGiving, model.ShareableTypeRequesting}).
		Order("created_at ASC").
		Find(&shareables).Error
	return shareables, err
}

func (r *shareableRepository) FindOwned(ctx context.Context, id, ownerID uuid.UUID) (*model.Shareable, error) {
	var shareable model.Shareable
	if err := r.db.WithContext(ctx).
		Where("id = ? AND owner_id = ?", id, ownerID).
		First(&shareable).Error; err != nil {
		return nil, err
	}
	return &shareable, nil
}

func (r *shareableRepository) UpdateOwned(ctx context.Context, id, ownerID uuid.UUID, fields map[string]interface{}) (bool, error) {
	db := r.db.WithContext(ctx).Model(&model.Shareable{}).Where("id = ? AND owner_id = ?", id, ownerID)
	if len(fields) > 0 {
		res := db.Updates(fields)
		if res.Error != nil {
			return false, res.Error
		}
		if res.RowsAffected > 0 {
			return true, nil
		}
	}
	// MySQL counts only changed rows, so an unchanged match still needs a lookup.
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.Shareable{}).
		Where("id = ? AND owner_id = ?", id, ownerID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *shareableRepository) DeleteOwned(ctx context.Context, id, ownerID uuid.UUID) (bool, error) {
	res := r.db.WithContext(ctx).
		Where("id = ? AND owner_id = ?", id, ownerID).
		Delete(&model.Shareable{})
	return res.RowsAffected > 0, res.Error
}

func (r *shareableRepository) DeleteByOwner(ctx context.Context, ownerID uuid.UUID) error {
	return r.db.WithContext(ctx).Where("owner_id = ?", ownerID).Delete(&model.Shareable{}).Error
}
