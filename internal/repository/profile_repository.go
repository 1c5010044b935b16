package repository

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"sharecircle/internal/model"
)

// ProfileRepository persists profiles and the friend / pending-friend link
// tables. Link inserts are idempotent.
type ProfileRepository interface {
	Create(ctx context.Context, profile *model.Profile) error
	// FindByID loads the profile with its friends, pending requests and
	// shareables, each in creation order.
	FindByID(ctx context.Context, id uuid.UUID) (*model.Profile, error)
	// FindByEmail loads only the profile row.
	FindByEmail(ctx context.Context, email string) (*model.Profile, error)
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
	Update(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error
	Delete(ctx context.Context, id uuid.UUID) error

	AddPending(ctx context.Context, profileID, requesterID uuid.UUID) error
	HasPending(ctx context.Context, profileID, requesterID uuid.UUID) (bool, error)
	RemovePending(ctx context.Context, profileID, requesterID uuid.UUID) error

	AddFriend(ctx context.Context, profileID, friendID uuid.UUID) error
	IsFriend(ctx context.Context, profileID, friendID uuid.UUID) (bool, error)
	// RemoveFriend deletes one direction and reports how many rows went away.
	RemoveFriend(ctx context.Context, profileID, friendID uuid.UUID) (int64, error)

	FriendIDs(ctx context.Context, profileID uuid.UUID) ([]uuid.UUID, error)
	PendingIDs(ctx context.Context, profileID uuid.UUID) ([]uuid.UUID, error)
	FriendSummaries(ctx context.Context, profileID uuid.UUID) ([]model.FriendSummary, error)
	PendingSummaries(ctx context.Context, profileID uuid.UUID) ([]model.FriendSummary, error)
	// RelatedIDs lists every profile that references profileID in a link
	// table, in either direction.
	RelatedIDs(ctx context.Context, profileID uuid.UUID) ([]uuid.UUID, error)
	// Unlink removes profileID from every link table row.
	Unlink(ctx context.Context, profileID uuid.UUID) error
}

type profileRepository struct {
	db *gorm.DB
}

// NewProfileRepository builds a GORM-backed repository.
func NewProfileRepository(db *gorm.DB) ProfileRepository {
	return &profileRepository{db: db}
}

func (r *profileRepository) Create(ctx context.Context, profile *model.Profile) error {
	profile.Email = strings.ToLower(strings.TrimSpace(profile.Email))
	profile.Normalize()
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(profile).Error
}

func (r *profileRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Profile, error) {
	var profile model.Profile
	err := r.db.WithContext(ctx).
		Preload("Shareables", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at ASC")
		}).
		Where("id = ?", id).
		First(&profile).Error
	if err != nil {
		return nil, err
	}

	if profile.Friends, err = r.FriendIDs(ctx, id); err != nil {
		return nil, err
	}
	if profile.PendingFriends, err = r.PendingIDs(ctx, id); err != nil {
		return nil, err
	}
	profile.Normalize()
	return &profile, nil
}

func (r *profileRepository) FindByEmail(ctx context.Context, email string) (*model.Profile, error) {
	var profile model.Profile
	if err := r.db.WithContext(ctx).
		Where("email = ?", strings.ToLower(strings.TrimSpace(email))).
		First(&profile).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *profileRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.Profile{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *profileRepository) Update(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error {
	if len(fields) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Model(&model.Profile{}).Where("id = ?", id).Updates(fields).Error
}

func (r *profileRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Profile{}).Error
}

func (r *profileRepository) AddPending(ctx context.Context, profileID, requesterID uuid.UUID) error {
	link := model.PendingFriendLink{ProfileID: profileID, RequesterID: requesterID, CreatedAt: time.Now()}
	return r.db.WithContext(ctx).Omit(clause.Associations).Clauses(clause.OnConflict{DoNothing: true}).Create(&link).Error
}

func (r *profileRepository) HasPending(ctx context.Context, profileID, requesterID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.PendingFriendLink{}).
		Where("profile_id = ? AND requester_id = ?", profileID, requesterID).
		Count(&count).Error
	return count > 0, err
}

func (r *profileRepository) RemovePending(ctx context.Context, profileID, requesterID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("profile_id = ? AND requester_id = ?", profileID, requesterID).
		Delete(&model.PendingFriendLink{}).Error
}

func (r *profileRepository) AddFriend(ctx context.Context, profileID, friendID uuid.UUID) error {
	link := model.FriendLink{ProfileID: profileID, FriendID: friendID, CreatedAt: time.Now()}
	return r.db.WithContext(ctx).Omit(clause.Associations).Clauses(clause.OnConflict{DoNothing: true}).Create(&link).Error
}

func (r *profileRepository) IsFriend(ctx context.Context, profileID, friendID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.FriendLink{}).
		Where("profile_id = ? AND friend_id = ?", profileID, friendID).
		Count(&count).Error
	return count > 0, err
}

func (r *profileRepository) RemoveFriend(ctx context.Context, profileID, friendID uuid.UUID) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("profile_id = ? AND friend_id = ?", profileID, friendID).
		Delete(&model.FriendLink{})
	return res.RowsAffected, res.Error
}

func (r *profileRepository) FriendIDs(ctx context.Context, profileID uuid.UUID) ([]uuid.UUID, error) {
	ids := []uuid.UUID{}
	err := r.db.WithContext(ctx).Model(&model.FriendLink{}).
		Where("profile_id = ?", profileID).
		Order("created_at ASC").
		Pluck("friend_id", &ids).Error
	return ids, err
}

func (r *profileRepository) PendingIDs(ctx context.Context, profileID uuid.UUID) ([]uuid.UUID, error) {
	ids := []uuid.UUID{}
	err := r.db.WithContext(ctx).Model(&model.PendingFriendLink{}).
		Where("profile_id = ?", profileID).
		Order("created_at ASC").
		Pluck("requester_id", &ids).Error
	return ids, err
}

func (r *profileRepository) FriendSummaries(ctx context.Context, profileID uuid.UUID) ([]model.FriendSummary, error) {
	return r.summaries(ctx, "profile_friends", "friend_id", profileID)
}

func (r *profileRepository) PendingSummaries(ctx context.Context, profileID uuid.UUID) ([]model.FriendSummary, error) {
	return r.summaries(ctx, "profile_pending_friends", "requester_id", profileID)
}

func (r *profileRepository) summaries(ctx context.Context, table, column string, profileID uuid.UUID) ([]model.FriendSummary, error) {
	out := []model.FriendSummary{}
	err := r.db.WithContext(ctx).
		Table(table+" AS l").
		Select("p.id, p.first_name, p.last_name, p.picture_url").
		Joins("JOIN profiles p ON p.id = l."+column).
		Where("l.profile_id = ?", profileID).
		Order("l.created_at ASC").
		Scan(&out).Error
	return out, err
}

func (r *profileRepository) RelatedIDs(ctx context.Context, profileID uuid.UUID) ([]uuid.UUID, error) {
	seen := map[uuid.UUID]struct{}{}
	var out []uuid.UUID
	add := func(ids []uuid.UUID) {
		for _, id := range ids {
			if _, ok := seen[id]; ok || id == profileID {
				continue
			}
			seen[id] = struct{}{}
			out = append(out, id)
		}
	}

	queries := []struct {
		model  interface{}
		where  string
		column string
	}{
		{&model.FriendLink{}, "profile_id = ?", "friend_id"},
		{&model.FriendLink{}, "friend_id = ?", "profile_id"},
		{&model.PendingFriendLink{}, "profile_id = ?", "requester_id"},
		{&model.PendingFriendLink{}, "requester_id = ?", "profile_id"},
	}
	for _, q := range queries {
		var ids []uuid.UUID
		if err := r.db.WithContext(ctx).Model(q.model).Where(q.where, profileID).Pluck(q.column, &ids).Error; err != nil {
			return nil, err
		}
		add(ids)
	}
	return out, nil
}

func (r *profileRepository) Unlink(ctx context.Context, profileID uuid.UUID) error {
	db := r.db.WithContext(ctx)
	if err := db.Where("profile_id = ? OR friend_id = ?", profileID, profileID).
		Delete(&model.FriendLink{}).Error; err != nil {
		return err
	}
	return db.Where("profile_id = ? OR requester_id = ?", profileID, profileID).
		Delete(&model.PendingFriendLink{}).Error
}
