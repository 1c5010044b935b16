package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ShareableType classifies a shareable post.
type ShareableType string

const (
	ShareableTypeGiving     ShareableType = "giving"
	ShareableTypeRequesting ShareableType = "requesting"
	ShareableTypePlans      ShareableType = "plans"
)

// Valid reports whether t is one of the known shareable types.
func (t ShareableType) Valid() bool {
	switch t {
	case ShareableTypeGiving, ShareableTypeRequesting, ShareableTypePlans:
		return true
	}
	return false
}

// Shareable priorities. Only PriorityHigh items surface in feeds.
const (
	PriorityPrivate = 0
	PriorityLow     = 1
	PriorityHigh    = 2
)

// DefaultGroupSize is used when a shareable is created without a group size.
const DefaultGroupSize = 2

// Shareable is an offer ("giving"), a request ("requesting") or a social plan
// ("plans") posted by its owner.
type Shareable struct {
	ID           uuid.UUID      `json:"id" gorm:"type:char(36);primaryKey"`
	OwnerID      uuid.UUID      `json:"ownerId" gorm:"type:char(36);not null;index:idx_shareables_owner_created"`
	Name         string         `json:"name" gorm:"size:255;not null"`
	Priority     int            `json:"priority" gorm:"not null;default:0;index"`
	GroupSize    int            `json:"groupSize" gorm:"not null"`
	Participants datatypes.JSON `json:"participants"`
	Date         *time.Time     `json:"date"`
	Expiration   *time.Time     `json:"expiration"`
	Confirmed    bool           `json:"confirmed" gorm:"not null;default:false"`
	Archived     bool           `json:"archived" gorm:"not null;default:false"`
	// Repeats: nil does not repeat, 0 repeats indefinitely, N > 0 repeats N times.
	Repeats   *int          `json:"repeats"`
	Type      ShareableType `json:"type" gorm:"type:varchar(20);index"`
	CreatedAt time.Time     `json:"createdAt" gorm:"index:idx_shareables_owner_created"`
	UpdatedAt time.Time     `json:"updatedAt"`
}

// BeforeCreate sets UUID before creating the record.
func (s *Shareable) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// Normalize replaces a missing participants list with an empty one.
func (s *Shareable) Normalize() {
	if len(s.Participants) == 0 {
		s.Participants = datatypes.JSON("[]")
	}
}

// InFeed reports whether the shareable is shown in friends' feeds.
func (s *Shareable) InFeed() bool {
	return s.Priority == PriorityHigh &&
		(s.Type == ShareableTypeGiving || s.Type == ShareableTypeRequesting)
}

// FeedItem is a friend's shareable annotated with its owner.
type FeedItem struct {
	Shareable
	Owner string `json:"owner"`
}
