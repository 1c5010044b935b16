package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Profile is the social identity of an account. Friends and pending friend
// requests live in link tables and are filled in by the repository.
type Profile struct {
	ID           uuid.UUID      `json:"id" gorm:"type:char(36);primaryKey"`
	FirstName    string         `json:"firstName" gorm:"size:255"`
	LastName     string         `json:"lastName" gorm:"size:255"`
	PictureURL   string         `json:"pictureUrl" gorm:"size:1024"`
	Email        string         `json:"email" gorm:"uniqueIndex;size:255;not null"`
	Contact      datatypes.JSON `json:"contact"`
	Availability datatypes.JSON `json:"availability"`
	CreatedAt    time.Time      `json:"createdAt"`
	UpdatedAt    time.Time      `json:"updatedAt"`

	Friends        []uuid.UUID `json:"friends" gorm:"-"`
	PendingFriends []uuid.UUID `json:"pendingFriends" gorm:"-"`
	Shareables     []Shareable `json:"shareables" gorm:"foreignKey:OwnerID"`
}

// Normalize replaces nil list fields with empty ones so they serialize as [].
func (p *Profile) Normalize() {
	if p.Friends == nil {
		p.Friends = []uuid.UUID{}
	}
	if p.PendingFriends == nil {
		p.PendingFriends = []uuid.UUID{}
	}
	if p.Shareables == nil {
		p.Shareables = []Shareable{}
	}
	if len(p.Contact) == 0 {
		p.Contact = datatypes.JSON("[]")
	}
	if len(p.Availability) == 0 {
		p.Availability = datatypes.JSON("{}")
	}
	for i := range p.Shareables {
		p.Shareables[i].Normalize()
	}
}

// DisplayName is the name shown next to a profile's posts.
func (p *Profile) DisplayName() string {
	return p.FirstName
}

// FriendLink is one direction of a confirmed friendship. A friendship between
// A and B is stored as both (A,B) and (B,A). Both ends must be live profiles;
// deleting either one removes the link.
type FriendLink struct {
	ProfileID uuid.UUID `gorm:"type:char(36);primaryKey"`
	FriendID  uuid.UUID `gorm:"type:char(36);primaryKey;index"`
	CreatedAt time.Time `gorm:"index"`

	Profile *Profile `json:"-" gorm:"foreignKey:ProfileID;constraint:OnDelete:CASCADE"`
	Friend  *Profile `json:"-" gorm:"foreignKey:FriendID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for GORM
func (FriendLink) TableName() string {
	return "profile_friends"
}

// PendingFriendLink is an inbound, unconfirmed friend request from
// RequesterID to ProfileID.
type PendingFriendLink struct {
	ProfileID   uuid.UUID `gorm:"type:char(36);primaryKey"`
	RequesterID uuid.UUID `gorm:"type:char(36);primaryKey;index"`
	CreatedAt   time.Time `gorm:"index"`

	Profile   *Profile `json:"-" gorm:"foreignKey:ProfileID;constraint:OnDelete:CASCADE"`
	Requester *Profile `json:"-" gorm:"foreignKey:RequesterID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for GORM
func (PendingFriendLink) TableName() string {
	return "profile_pending_friends"
}

// FriendSummary is the minimal projection of a profile used in friend lists.
type FriendSummary struct {
	ID         uuid.UUID `json:"id"`
	FirstName  string    `json:"firstName"`
	LastName   string    `json:"lastName"`
	PictureURL string    `json:"pictureUrl"`
}

// FriendProfile is what a profile may see of one of its friends.
type FriendProfile struct {
	ID           uuid.UUID      `json:"id"`
	FirstName    string         `json:"firstName"`
	LastName     string         `json:"lastName"`
	PictureURL   string         `json:"pictureUrl"`
	Email        string         `json:"email"`
	Contact      datatypes.JSON `json:"contact"`
	Availability datatypes.JSON `json:"availability"`
	Shareables   []Shareable    `json:"shareables"`
}
